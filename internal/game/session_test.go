package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardreveal/internal/domain"
	"cardreveal/internal/game"
)

func scenarioCatalog() domain.Catalog {
	return domain.Catalog{
		Prompts:  []string{"Imagine a world where..."},
		Features: []string{"Offline-first sync"},
		Images:   []string{"/img/a.png"},
	}
}

func TestSession_ThirdToggleReveals(t *testing.T) {
	s := game.NewSession(scenarioCatalog())

	require.True(t, s.Toggle(2))
	require.True(t, s.Toggle(5))
	assert.Equal(t, domain.StateSelecting, s.State())
	assert.False(t, s.ModalOpen())

	require.True(t, s.Toggle(7))
	assert.Equal(t, domain.StateRevealed, s.State())
	assert.True(t, s.ModalOpen())

	got := s.Assignment()
	require.Len(t, got, 3)
	values := map[domain.Kind]string{}
	for _, idx := range []int{2, 5, 7} {
		c, ok := got[idx]
		require.True(t, ok, "slot %d unassigned", idx)
		_, dup := values[c.Kind()]
		require.False(t, dup, "kind %s repeated", c.Kind())
		values[c.Kind()] = c.Value()
	}
	assert.Equal(t, map[domain.Kind]string{
		domain.KindImage:   "/img/a.png",
		domain.KindText:    "Imagine a world where...",
		domain.KindFeature: "Offline-first sync",
	}, values)
}

func TestSession_ContentAssignedOnSelect(t *testing.T) {
	s := game.NewSession(scenarioCatalog())
	s.Toggle(3)

	slot := s.Slot(3)
	assert.True(t, slot.Selected)
	assert.Equal(t, domain.ImageContent{Ref: "/img/a.png"}, slot.Content)
	assert.Nil(t, s.Slot(4).Content)
}

func TestSession_ToggleWhileRevealedIsNoOp(t *testing.T) {
	s := game.NewSession(scenarioCatalog())
	for _, i := range []int{0, 1, 2} {
		s.Toggle(i)
	}
	before := s.Assignment()

	assert.False(t, s.Toggle(0))
	assert.False(t, s.Toggle(8))
	assert.Equal(t, []int{0, 1, 2}, s.Selection())
	assert.True(t, before.Equal(s.Assignment()))
}

func TestSession_CloseModalKeepsRevealed(t *testing.T) {
	s := game.NewSession(scenarioCatalog())
	assert.False(t, s.CloseModal(), "no modal while selecting")

	for _, i := range []int{0, 1, 2} {
		s.Toggle(i)
	}
	require.True(t, s.CloseModal())
	assert.Equal(t, domain.StateRevealed, s.State())
	assert.False(t, s.ModalOpen())
	assert.False(t, s.CloseModal())
}

func TestSession_ResetClearsAndAllowsNewRound(t *testing.T) {
	s := game.NewSession(scenarioCatalog())
	for _, i := range []int{0, 4, 8} {
		s.Toggle(i)
	}

	require.True(t, s.Reset())
	assert.Equal(t, domain.StateSelecting, s.State())
	assert.False(t, s.ModalOpen())
	assert.Empty(t, s.Selection())
	assert.Empty(t, s.Assignment())

	for _, i := range []int{1, 3, 5} {
		require.True(t, s.Toggle(i))
	}
	assert.Equal(t, domain.StateRevealed, s.State())
	kinds := map[domain.Kind]bool{}
	for _, c := range s.Assignment() {
		kinds[c.Kind()] = true
	}
	assert.Len(t, kinds, 3)
}

func TestSession_ResetWhileSelectingIsNoOp(t *testing.T) {
	s := game.NewSession(scenarioCatalog())
	s.Toggle(1)

	assert.False(t, s.Reset())
	assert.Equal(t, []int{1}, s.Selection())
}

func TestSession_TicketGoesStaleAfterReset(t *testing.T) {
	s := game.NewSession(scenarioCatalog())
	for _, i := range []int{0, 1, 2} {
		s.Toggle(i)
	}
	ticket := s.Ticket()
	assert.True(t, s.Current(ticket))

	s.CloseModal()
	assert.True(t, s.Current(ticket), "closing the modal keeps the round")

	s.Reset()
	assert.False(t, s.Current(ticket))
	assert.True(t, s.Current(s.Ticket()))
}

func TestSession_ViewUsesFirstOfEachKind(t *testing.T) {
	s := game.NewSession(scenarioCatalog())
	assert.True(t, s.View().IsZero())

	for _, i := range []int{6, 7, 8} {
		s.Toggle(i)
	}
	assert.Equal(t, domain.RevealView{
		Image:   "/img/a.png",
		Prompt:  "Imagine a world where...",
		Feature: "Offline-first sync",
	}, s.View())
}

func TestSession_EmptyImagesRevealsDefaultImage(t *testing.T) {
	cat := scenarioCatalog()
	cat.Images = nil
	s := game.NewSession(cat)
	for _, i := range []int{2, 5, 7} {
		s.Toggle(i)
	}

	assert.Equal(t, domain.DefaultImage, s.View().Image)
}
