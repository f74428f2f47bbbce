package types

// RevealView is the composed region a capture rasterizes: the first image,
// feature and prompt among the selected slots, in selection order. Empty
// fields mean the round revealed no content of that kind.
type RevealView struct {
	Image   string `json:"image,omitempty"`
	Feature string `json:"feature,omitempty"`
	Prompt  string `json:"prompt,omitempty"`
}

// IsZero reports whether the view carries no content at all, i.e. it is not
// attached to a revealed round.
func (v RevealView) IsZero() bool {
	return v.Image == "" && v.Feature == "" && v.Prompt == ""
}
