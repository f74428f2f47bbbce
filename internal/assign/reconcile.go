package assign

import (
	"fmt"
	"math/rand/v2"

	"cardreveal/internal/domain"
)

// SystemRNG delegates to math/rand/v2 (auto-seeded).
type SystemRNG struct{}

// Intn returns a random int in [0, n).
func (SystemRNG) Intn(n int) int { return rand.IntN(n) }

// SeededRNG is a reproducible RNG for replaying a round.
type SeededRNG struct{ r *rand.Rand }

// NewSeededRNG returns a PCG-backed RNG seeded with seed.
func NewSeededRNG(seed uint64) *SeededRNG {
	return &SeededRNG{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Intn returns a random int in [0, n).
func (s *SeededRNG) Intn(n int) int { return s.r.IntN(n) }

var (
	_ domain.RNG = SystemRNG{}
	_ domain.RNG = (*SeededRNG)(nil)
)

// Reconcile returns the assignment for selection.
//
// Prior content is kept for every slot that is still selected. Each newly
// selected slot, in selection order, takes the next kind not already present
// among the kept slots. When every kind is already on the board a uniformly
// random kind is used instead; the three-card cap keeps that branch
// unreachable today, but nothing here depends on the cap.
//
// Calling Reconcile again with the returned assignment and an unchanged
// selection returns an equal assignment and draws nothing from rng.
func Reconcile(selection []int, prior domain.Assignment, catalog domain.Catalog, rng domain.RNG) domain.Assignment {
	next := make(domain.Assignment, len(selection))
	used := make(map[domain.Kind]bool, len(domain.AllKinds))

	for _, idx := range selection {
		if c, ok := prior[idx]; ok && c != nil {
			next[idx] = c
			used[c.Kind()] = true
		}
	}

	remaining := RemainingKinds(used)
	for _, idx := range selection {
		if _, ok := next[idx]; ok {
			continue
		}
		var kind domain.Kind
		if len(remaining) > 0 {
			kind, remaining = remaining[0], remaining[1:]
		} else {
			kind = domain.AllKinds[rng.Intn(len(domain.AllKinds))]
		}
		next[idx] = Draw(kind, catalog, rng)
	}
	return next
}

// RemainingKinds returns the kinds missing from used, in canonical order.
func RemainingKinds(used map[domain.Kind]bool) []domain.Kind {
	out := make([]domain.Kind, 0, len(domain.AllKinds))
	for _, k := range domain.AllKinds {
		if !used[k] {
			out = append(out, k)
		}
	}
	return out
}

// Draw picks one value of the given kind from catalog, falling back to the
// fixed default when the list is empty.
func Draw(kind domain.Kind, catalog domain.Catalog, rng domain.RNG) domain.Content {
	value := domain.Fallback(kind)
	if list := catalog.List(kind); len(list) > 0 {
		value = list[rng.Intn(len(list))]
	}

	switch kind {
	case domain.KindImage:
		return domain.ImageContent{Ref: value}
	case domain.KindText:
		return domain.TextContent{Text: value}
	case domain.KindFeature:
		return domain.FeatureContent{Feature: value}
	default:
		panic(fmt.Sprintf("assign: unknown content kind %q", kind))
	}
}
