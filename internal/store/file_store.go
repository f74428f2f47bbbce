package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"cardreveal/internal/crypto"
	"cardreveal/internal/domain"
)

const indexFile = "index.json"

// ArtifactFileStore stores captures as files under dir.
type ArtifactFileStore struct {
	dir string
	mu  sync.Mutex
	now func() time.Time
}

// NewArtifactFileStore returns an ArtifactFileStore rooted at dir, creating
// the directory if needed.
func NewArtifactFileStore(dir string) (*ArtifactFileStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("storage dir is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &ArtifactFileStore{dir: dir, now: time.Now}, nil
}

// Put writes data and records its metadata in the index.
func (s *ArtifactFileStore) Put(ctx context.Context, data []byte, contentType string) (domain.Artifact, error) {
	if err := ctx.Err(); err != nil {
		return domain.Artifact{}, err
	}
	if len(data) == 0 {
		return domain.Artifact{}, fmt.Errorf("artifact data is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	index, err := s.loadIndex()
	if err != nil {
		return domain.Artifact{}, err
	}

	name := crypto.ArtifactName(data)
	if a, ok := index[name]; ok {
		// Same bytes, same name. Keep the original record.
		a.Data = data
		return a, nil
	}

	if err := writeFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return domain.Artifact{}, fmt.Errorf("write artifact: %w", err)
	}
	a := domain.Artifact{
		Name:        name,
		ContentType: contentType,
		Size:        len(data),
		CreatedAt:   s.now().UTC(),
	}
	index[name] = a
	if err := writeJSON(filepath.Join(s.dir, indexFile), index, 0o644); err != nil {
		return domain.Artifact{}, fmt.Errorf("write index: %w", err)
	}

	a.Data = data
	return a, nil
}

// Get returns the artifact stored under name.
func (s *ArtifactFileStore) Get(ctx context.Context, name string) (domain.Artifact, error) {
	if err := ctx.Err(); err != nil {
		return domain.Artifact{}, err
	}
	if !crypto.ValidArtifactName(name) {
		return domain.Artifact{}, fmt.Errorf("%w: %q", domain.ErrArtifactNotFound, name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	index, err := s.loadIndex()
	if err != nil {
		return domain.Artifact{}, err
	}
	a, ok := index[name]
	if !ok {
		return domain.Artifact{}, fmt.Errorf("%w: %q", domain.ErrArtifactNotFound, name)
	}

	b, err := readFile(filepath.Join(s.dir, name))
	if err != nil {
		return domain.Artifact{}, fmt.Errorf("read artifact: %w", err)
	}
	if b == nil {
		return domain.Artifact{}, fmt.Errorf("%w: %q", domain.ErrArtifactNotFound, name)
	}
	a.Data = b
	return a, nil
}

// Close is a no-op; the file store holds no open handles.
func (s *ArtifactFileStore) Close() error { return nil }

func (s *ArtifactFileStore) loadIndex() (map[string]domain.Artifact, error) {
	index := make(map[string]domain.Artifact)
	if err := readJSON(filepath.Join(s.dir, indexFile), &index); err != nil {
		return nil, fmt.Errorf("read index: %w", err)
	}
	return index, nil
}

// Compile-time assertion that ArtifactFileStore implements Store.
var _ Store = (*ArtifactFileStore)(nil)
