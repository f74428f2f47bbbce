package types

import "fmt"

const (
	// SlotCount is the number of face-down cards on the board.
	SlotCount = 9
	// MaxSelected is the number of cards a round reveals.
	MaxSelected = 3
)

// Kind is the content category assigned to a revealed slot.
type Kind string

const (
	KindImage   Kind = "image"
	KindText    Kind = "text"
	KindFeature Kind = "feature"
)

// AllKinds lists every kind in canonical assignment order.
var AllKinds = [...]Kind{KindImage, KindText, KindFeature}

// String returns the string form of the kind.
func (k Kind) String() string { return string(k) }

// State is the phase of a reveal round.
type State int

const (
	StateSelecting State = iota
	StateRevealed
)

// String returns the string form of the state.
func (s State) String() string {
	switch s {
	case StateSelecting:
		return "selecting"
	case StateRevealed:
		return "revealed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Platform identifies a social share target.
type Platform string

const (
	PlatformX        Platform = "x"
	PlatformFacebook Platform = "facebook"
	PlatformTelegram Platform = "telegram"
)

// Platforms lists the supported share targets in display order.
var Platforms = [...]Platform{PlatformX, PlatformFacebook, PlatformTelegram}

// String returns the string form of the platform.
func (p Platform) String() string { return string(p) }
