package domain

import "errors"

// Recoverable failures of the reveal pipeline. None of them should block a
// round: callers degrade (fallback assets, link-only sharing) instead.
var (
	ErrCaptureFailed    = errors.New("capture failed")
	ErrUploadFailed     = errors.New("upload failed")
	ErrAssetUnavailable = errors.New("asset unavailable")
)

var (
	ErrArtifactNotFound = errors.New("artifact not found")
	ErrUnknownPlatform  = errors.New("unknown share platform")
)
