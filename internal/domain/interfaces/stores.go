package interfaces

import (
	"context"

	domaintypes "cardreveal/internal/domain/types"
)

// ArtifactStore persists uploaded captures on the server side.
type ArtifactStore interface {
	// Put stores data and returns the artifact record, including the name it
	// can later be fetched under.
	Put(ctx context.Context, data []byte, contentType string) (domaintypes.Artifact, error)
	// Get returns the artifact stored under name, or ErrArtifactNotFound.
	Get(ctx context.Context, name string) (domaintypes.Artifact, error)
}
