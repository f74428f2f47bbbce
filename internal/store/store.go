package store

import (
	"fmt"
	"io"
	"strings"

	"cardreveal/internal/domain"
)

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Store is an ArtifactStore that owns resources.
type Store interface {
	domain.ArtifactStore
	io.Closer
}

// Open returns the store for backend rooted at path. For the file backend
// path is a directory; for sqlite it is the database file.
func Open(backend, path string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendFile:
		return NewArtifactFileStore(path)
	case BackendSQLite:
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
