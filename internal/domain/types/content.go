package types

// Content is the value revealed under a selected slot. It is a closed set:
// only ImageContent, TextContent and FeatureContent implement it, and callers
// switch over those three types.
type Content interface {
	Kind() Kind
	Value() string
	sealed()
}

// ImageContent references an image asset (path or URL).
type ImageContent struct {
	Ref string `json:"ref"`
}

// TextContent carries a prompt string.
type TextContent struct {
	Text string `json:"text"`
}

// FeatureContent carries a feature tag.
type FeatureContent struct {
	Feature string `json:"feature"`
}

func (ImageContent) Kind() Kind   { return KindImage }
func (TextContent) Kind() Kind    { return KindText }
func (FeatureContent) Kind() Kind { return KindFeature }

func (c ImageContent) Value() string   { return c.Ref }
func (c TextContent) Value() string    { return c.Text }
func (c FeatureContent) Value() string { return c.Feature }

func (ImageContent) sealed()   {}
func (TextContent) sealed()    {}
func (FeatureContent) sealed() {}

// Assignment maps slot indices to their revealed content.
type Assignment map[int]Content

// Clone returns a shallow copy; Content values are immutable.
func (a Assignment) Clone() Assignment {
	out := make(Assignment, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Equal reports whether both assignments hold the same kind and value per slot.
func (a Assignment) Equal(b Assignment) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		w, ok := b[k]
		if !ok {
			return false
		}
		if v == nil || w == nil {
			if v != w {
				return false
			}
			continue
		}
		if v.Kind() != w.Kind() || v.Value() != w.Value() {
			return false
		}
	}
	return true
}

// Slot is one of the nine board positions.
type Slot struct {
	Index    int
	Selected bool
	Content  Content // nil until assigned
}
