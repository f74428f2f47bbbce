package game

import (
	"slices"

	"cardreveal/internal/domain"
)

// Selection is the ordered set of chosen slot indices (at most
// domain.MaxSelected, no duplicates). Insertion order is selection order.
type Selection struct {
	slots []int
}

// Toggle deselects index if it is selected, otherwise appends it when there
// is room. Out-of-range indices and a full selection are silent no-ops. It
// reports whether the selection changed.
func (s *Selection) Toggle(index int) bool {
	if index < 0 || index >= domain.SlotCount {
		return false
	}
	if i := slices.Index(s.slots, index); i >= 0 {
		s.slots = slices.Delete(s.slots, i, i+1)
		return true
	}
	if len(s.slots) >= domain.MaxSelected {
		return false
	}
	s.slots = append(s.slots, index)
	return true
}

// Contains reports whether index is selected.
func (s *Selection) Contains(index int) bool { return slices.Contains(s.slots, index) }

// Len returns the number of selected slots.
func (s *Selection) Len() int { return len(s.slots) }

// Full reports whether no more slots can be added.
func (s *Selection) Full() bool { return len(s.slots) >= domain.MaxSelected }

// Slots returns a copy of the selected indices in selection order.
func (s *Selection) Slots() []int { return slices.Clone(s.slots) }

// Clear empties the selection.
func (s *Selection) Clear() { s.slots = nil }
