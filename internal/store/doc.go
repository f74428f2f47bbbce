// Package store persists uploaded reveal captures for the reveal server.
//
// It contains two implementations of domain.ArtifactStore:
//   - ArtifactFileStore writes each capture as a file, with metadata kept in
//     an index.json sidecar. Writes go through a temp file and rename.
//   - SQLiteStore keeps captures as blobs in a single SQLite database.
//
// Artifacts are named by content digest (see internal/crypto), so storing
// the same bytes twice yields the same name. Both stores are safe for
// concurrent use.
package store
