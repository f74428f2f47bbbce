package types

// Fallback values used when a catalog list is empty.
const (
	DefaultImage   = "/images/image%20693.png"
	DefaultPrompt  = "Imagine a world where..."
	DefaultFeature = "Offline-first sync"
)

// Catalog is the read-only asset snapshot for a session.
type Catalog struct {
	Prompts  []string `json:"prompts"`
	Features []string `json:"features"`
	Images   []string `json:"images"`
}

// List returns the asset list backing kind k.
func (c Catalog) List(k Kind) []string {
	switch k {
	case KindImage:
		return c.Images
	case KindText:
		return c.Prompts
	case KindFeature:
		return c.Features
	default:
		return nil
	}
}

// Fallback returns the fixed value substituted when the list for k is empty.
func Fallback(k Kind) string {
	switch k {
	case KindImage:
		return DefaultImage
	case KindText:
		return DefaultPrompt
	case KindFeature:
		return DefaultFeature
	default:
		return ""
	}
}

// Empty reports whether every list is empty.
func (c Catalog) Empty() bool {
	return len(c.Prompts) == 0 && len(c.Features) == 0 && len(c.Images) == 0
}
