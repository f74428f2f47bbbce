package crypto_test

import (
	"strings"
	"testing"

	"cardreveal/internal/crypto"
)

func TestDigest_StableAndShort(t *testing.T) {
	a := crypto.Digest([]byte("png bytes"))
	b := crypto.Digest([]byte("png bytes"))
	if a != b {
		t.Fatalf("digest not stable: %s vs %s", a, b)
	}
	if len(a) != 20 {
		t.Fatalf("digest length = %d, want 20", len(a))
	}
	if a == crypto.Digest([]byte("other bytes")) {
		t.Fatal("distinct inputs collided")
	}
}

func TestArtifactName_RoundTripsValidation(t *testing.T) {
	name := crypto.ArtifactName([]byte{1, 2, 3})
	if !strings.HasPrefix(name, "card-") || !strings.HasSuffix(name, ".png") {
		t.Fatalf("unexpected name %q", name)
	}
	if !crypto.ValidArtifactName(name) {
		t.Fatalf("%q should validate", name)
	}
}

func TestValidArtifactName_Rejects(t *testing.T) {
	for _, name := range []string{
		"",
		"card-.png",
		"../etc/passwd",
		"card-zzzzzzzzzzzzzzzzzzzz.png",
		"card-0123456789abcdef0123.jpg",
		"card-0123456789abcdef0123/.png",
	} {
		if crypto.ValidArtifactName(name) {
			t.Errorf("%q should not validate", name)
		}
	}
}
