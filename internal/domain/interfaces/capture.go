package interfaces

import (
	"context"

	domaintypes "cardreveal/internal/domain/types"
)

// Capturer rasterizes a composed reveal view into a PNG.
//
// Capture must not mutate any game state. Failures wrap ErrCaptureFailed.
type Capturer interface {
	Capture(ctx context.Context, view domaintypes.RevealView) ([]byte, error)
}
