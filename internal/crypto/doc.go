// Package crypto holds the hashing used to name stored artifacts.
//
// Artifacts are content addressed: the same capture always maps to the same
// name, so repeated uploads of one reveal do not pile up on disk.
package crypto
