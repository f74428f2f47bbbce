package game_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardreveal/internal/domain"
	"cardreveal/internal/game"
)

func TestSelection_ToggleAddsAndRemoves(t *testing.T) {
	var s game.Selection

	require.True(t, s.Toggle(4))
	require.True(t, s.Toggle(1))
	assert.Equal(t, []int{4, 1}, s.Slots())

	require.True(t, s.Toggle(4))
	assert.Equal(t, []int{1}, s.Slots())
	assert.False(t, s.Contains(4))
}

func TestSelection_FullIsNoOp(t *testing.T) {
	var s game.Selection
	for _, i := range []int{0, 1, 2} {
		require.True(t, s.Toggle(i))
	}

	assert.False(t, s.Toggle(3))
	assert.True(t, s.Full())
	assert.Equal(t, []int{0, 1, 2}, s.Slots())

	// Deselecting still works on a full selection.
	assert.True(t, s.Toggle(1))
	assert.Equal(t, []int{0, 2}, s.Slots())
}

func TestSelection_OutOfRangeIsNoOp(t *testing.T) {
	var s game.Selection
	for _, i := range []int{-1, domain.SlotCount, 100} {
		assert.False(t, s.Toggle(i), "index %d", i)
	}
	assert.Zero(t, s.Len())
}

func TestSelection_RandomTogglesKeepInvariant(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	var s game.Selection

	for step := 0; step < 5000; step++ {
		s.Toggle(r.IntN(domain.SlotCount+4) - 2)

		slots := s.Slots()
		require.LessOrEqual(t, len(slots), domain.MaxSelected)
		seen := make(map[int]bool, len(slots))
		for _, idx := range slots {
			require.GreaterOrEqual(t, idx, 0)
			require.Less(t, idx, domain.SlotCount)
			require.False(t, seen[idx], "duplicate index %d at step %d", idx, step)
			seen[idx] = true
		}
	}
}

func TestSelection_SlotsReturnsCopy(t *testing.T) {
	var s game.Selection
	s.Toggle(2)
	out := s.Slots()
	out[0] = 8

	assert.Equal(t, []int{2}, s.Slots())
}
