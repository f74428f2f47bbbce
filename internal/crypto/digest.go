package crypto

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// ArtifactPrefix and ArtifactExt frame every stored artifact name.
const (
	ArtifactPrefix = "card-"
	ArtifactExt    = ".png"
)

// Digest returns a short hex digest of data.
//
// It hashes with BLAKE2b-256 and truncates to 10 bytes (20 hex chars).
func Digest(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:10])
}

// ArtifactName returns the stored file name for a PNG capture.
func ArtifactName(data []byte) string {
	return ArtifactPrefix + Digest(data) + ArtifactExt
}

// ValidArtifactName reports whether name has the shape ArtifactName
// produces. It rejects anything that could escape a storage directory.
func ValidArtifactName(name string) bool {
	if len(name) != len(ArtifactPrefix)+20+len(ArtifactExt) {
		return false
	}
	if name[:len(ArtifactPrefix)] != ArtifactPrefix || name[len(name)-len(ArtifactExt):] != ArtifactExt {
		return false
	}
	_, err := hex.DecodeString(name[len(ArtifactPrefix) : len(name)-len(ArtifactExt)])
	return err == nil
}
