package catalog

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseLines splits a text list, trimming lines and dropping blanks and
// '#' comments.
func ParseLines(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out
}

// ParseImageManifest accepts either a JSON array of references or an object
// with an "images" array. Any other well-formed JSON yields an empty list.
func ParseImageManifest(raw []byte) ([]string, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("parse image manifest: %w", err)
	}
	switch m := v.(type) {
	case []any:
		return stringsOf(m), nil
	case map[string]any:
		if list, ok := m["images"].([]any); ok {
			return stringsOf(list), nil
		}
	}
	return []string{}, nil
}

func stringsOf(in []any) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if s, ok := v.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}
