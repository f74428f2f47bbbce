package assign_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardreveal/internal/assign"
	"cardreveal/internal/domain"
)

// seqRNG returns values from a pre-set sequence and counts draws.
type seqRNG struct {
	values []int
	calls  int
}

func (r *seqRNG) Intn(n int) int {
	v := 0
	if len(r.values) > 0 {
		v = r.values[r.calls%len(r.values)] % n
	}
	r.calls++
	return v
}

func fullCatalog() domain.Catalog {
	return domain.Catalog{
		Prompts:  []string{"p0", "p1", "p2"},
		Features: []string{"f0", "f1"},
		Images:   []string{"/img/a.png", "/img/b.png"},
	}
}

func kindsOf(a domain.Assignment) map[domain.Kind]int {
	out := make(map[domain.Kind]int)
	for _, c := range a {
		out[c.Kind()]++
	}
	return out
}

func TestReconcile_ThreeSlotsGetEachKindOnce(t *testing.T) {
	got := assign.Reconcile([]int{4, 0, 8}, nil, fullCatalog(), assign.SystemRNG{})

	require.Len(t, got, 3)
	assert.Equal(t, map[domain.Kind]int{
		domain.KindImage:   1,
		domain.KindText:    1,
		domain.KindFeature: 1,
	}, kindsOf(got))
}

func TestReconcile_CanonicalOrderFollowsSelectionOrder(t *testing.T) {
	rng := &seqRNG{values: []int{0}}
	got := assign.Reconcile([]int{7, 2, 5}, nil, fullCatalog(), rng)

	assert.Equal(t, domain.ImageContent{Ref: "/img/a.png"}, got[7])
	assert.Equal(t, domain.TextContent{Text: "p0"}, got[2])
	assert.Equal(t, domain.FeatureContent{Feature: "f0"}, got[5])
}

func TestReconcile_IncrementalSelectionKeepsUniqueness(t *testing.T) {
	cat := fullCatalog()
	rng := assign.SystemRNG{}

	a := assign.Reconcile([]int{3}, nil, cat, rng)
	b := assign.Reconcile([]int{3, 6}, a, cat, rng)
	c := assign.Reconcile([]int{3, 6, 1}, b, cat, rng)

	assert.Equal(t, a[3], b[3])
	assert.Equal(t, b[3], c[3])
	assert.Equal(t, b[6], c[6])
	assert.Len(t, kindsOf(c), 3)
}

func TestReconcile_ReselectPreservesUntouchedSlots(t *testing.T) {
	cat := fullCatalog()
	rng := assign.SystemRNG{}

	full := assign.Reconcile([]int{0, 1, 2}, nil, cat, rng)
	dropped := assign.Reconcile([]int{0, 2}, full, cat, rng)
	refilled := assign.Reconcile([]int{0, 2, 4}, dropped, cat, rng)

	assert.Equal(t, full[0], refilled[0])
	assert.Equal(t, full[2], refilled[2])
	assert.NotContains(t, refilled, 1)
	// The new slot inherits the only kind that left the board.
	assert.Equal(t, full[1].Kind(), refilled[4].Kind())
	assert.Len(t, kindsOf(refilled), 3)
}

func TestReconcile_Idempotent(t *testing.T) {
	cat := fullCatalog()
	sel := []int{1, 5, 8}
	first := assign.Reconcile(sel, nil, cat, assign.SystemRNG{})

	rng := &seqRNG{}
	second := assign.Reconcile(sel, first, cat, rng)
	third := assign.Reconcile(sel, second, cat, rng)

	assert.True(t, first.Equal(second))
	assert.True(t, second.Equal(third))
	assert.Zero(t, rng.calls, "unchanged selection must not draw")
}

func TestReconcile_DropsDeselectedSlots(t *testing.T) {
	prior := domain.Assignment{
		1: domain.TextContent{Text: "kept"},
		2: domain.ImageContent{Ref: "gone"},
	}
	got := assign.Reconcile([]int{1}, prior, fullCatalog(), &seqRNG{})

	assert.Equal(t, domain.Assignment{1: domain.TextContent{Text: "kept"}}, got)
}

func TestReconcile_AllKindsUsedFallsBackToRandomKind(t *testing.T) {
	prior := domain.Assignment{
		0: domain.ImageContent{Ref: "i"},
		1: domain.TextContent{Text: "t"},
		2: domain.FeatureContent{Feature: "f"},
	}
	// First draw picks the kind (2 => feature), second the value index.
	rng := &seqRNG{values: []int{2, 1}}
	got := assign.Reconcile([]int{0, 1, 2, 3}, prior, fullCatalog(), rng)

	require.Len(t, got, 4)
	assert.Equal(t, domain.FeatureContent{Feature: "f1"}, got[3])
	assert.Equal(t, 2, rng.calls)
}

func TestReconcile_EmptyImagesUsesDefaultImage(t *testing.T) {
	cat := domain.Catalog{
		Prompts:  []string{"Imagine a world where..."},
		Features: []string{"Offline-first sync"},
	}
	got := assign.Reconcile([]int{2, 5, 7}, nil, cat, assign.SystemRNG{})

	var image domain.Content
	for _, c := range got {
		if c.Kind() == domain.KindImage {
			image = c
		}
	}
	require.NotNil(t, image)
	assert.Equal(t, domain.ImageContent{Ref: domain.DefaultImage}, image)
}

func TestDraw_EmptyListsUseFallbacks(t *testing.T) {
	var empty domain.Catalog
	rng := &seqRNG{}

	assert.Equal(t, domain.ImageContent{Ref: domain.DefaultImage}, assign.Draw(domain.KindImage, empty, rng))
	assert.Equal(t, domain.TextContent{Text: domain.DefaultPrompt}, assign.Draw(domain.KindText, empty, rng))
	assert.Equal(t, domain.FeatureContent{Feature: domain.DefaultFeature}, assign.Draw(domain.KindFeature, empty, rng))
	assert.Zero(t, rng.calls)
}

func TestDraw_UnknownKindPanics(t *testing.T) {
	assert.Panics(t, func() {
		assign.Draw(domain.Kind("sound"), fullCatalog(), &seqRNG{})
	})
}

func TestRemainingKinds_CanonicalOrder(t *testing.T) {
	got := assign.RemainingKinds(map[domain.Kind]bool{domain.KindText: true})
	assert.Equal(t, []domain.Kind{domain.KindImage, domain.KindFeature}, got)
}

func TestSeededRNG_Reproducible(t *testing.T) {
	cat := domain.Catalog{
		Prompts:  []string{"p1", "p2", "p3"},
		Features: []string{"f1", "f2", "f3"},
		Images:   []string{"i1", "i2", "i3"},
	}
	sel := []int{2, 5, 7}
	a := assign.Reconcile(sel, nil, cat, assign.NewSeededRNG(42))
	b := assign.Reconcile(sel, nil, cat, assign.NewSeededRNG(42))
	if !a.Equal(b) {
		t.Fatalf("same seed produced different assignments: %v vs %v", a, b)
	}
}
