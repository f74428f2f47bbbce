// Package remote provides HTTP clients for the reveal server.
//
// Client implements two domain ports against a running revealserver:
//   - domain.AssetCatalog, fetching /api/prompts, /api/features and
//     /api/images concurrently.
//   - domain.Uploader, posting captures to /api/upload as multipart form
//     data and returning the public URL the server assigns.
//
// All requests accept a context for cancellation and deadlines. Non-2xx
// statuses are returned as errors with the method, path and status text.
// Catalog lists that fail come back empty alongside an error wrapping
// domain.ErrAssetUnavailable; upload failures wrap domain.ErrUploadFailed.
package remote
