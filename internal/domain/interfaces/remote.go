package interfaces

import "context"

// Uploader is the client side of the persistence collaborator: it sends a
// capture to the reveal server and returns a publicly resolvable URL.
type Uploader interface {
	Upload(ctx context.Context, data []byte, contentType string) (string, error)
}
