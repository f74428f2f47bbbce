package game

import (
	"go.uber.org/zap"

	"cardreveal/internal/assign"
	"cardreveal/internal/domain"
)

// Ticket identifies the round an asynchronous operation was started in.
type Ticket struct {
	generation uint64
}

// Session is the reveal state machine:
//
//	Selecting --3rd selection--> Revealed (modal open)
//	Revealed  --CloseModal-----> Revealed (modal closed)
//	Revealed  --Reset----------> Selecting (board cleared)
//
// Every other call is a no-op.
type Session struct {
	catalog domain.Catalog
	rng     domain.RNG
	logger  *zap.Logger

	selection  Selection
	assignment domain.Assignment
	state      domain.State
	modalOpen  bool
	generation uint64
}

// Option configures a Session.
type Option func(*Session)

// WithRNG overrides the random source used for content draws.
func WithRNG(rng domain.RNG) Option {
	return func(s *Session) { s.rng = rng }
}

// WithLogger attaches a logger for state transitions.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// NewSession starts a round in the Selecting state over catalog.
func NewSession(catalog domain.Catalog, opts ...Option) *Session {
	s := &Session{
		catalog:    catalog,
		rng:        assign.SystemRNG{},
		logger:     zap.NewNop(),
		assignment: domain.Assignment{},
		state:      domain.StateSelecting,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Toggle selects or deselects a slot while selecting, reconciles content,
// and reveals the round once the third slot is chosen. It reports whether
// anything changed.
func (s *Session) Toggle(index int) bool {
	if s.state != domain.StateSelecting {
		return false
	}
	if !s.selection.Toggle(index) {
		return false
	}

	next := assign.Reconcile(s.selection.Slots(), s.assignment, s.catalog, s.rng)
	if !next.Equal(s.assignment) {
		s.assignment = next
	}

	if s.selection.Len() == domain.MaxSelected {
		s.state = domain.StateRevealed
		s.modalOpen = true
		s.logger.Debug("round revealed",
			zap.Ints("selection", s.selection.Slots()),
			zap.Uint64("generation", s.generation),
		)
	}
	return true
}

// CloseModal hides the reveal modal. Only meaningful while revealed.
func (s *Session) CloseModal() bool {
	if s.state != domain.StateRevealed || !s.modalOpen {
		return false
	}
	s.modalOpen = false
	return true
}

// Reset clears the board and returns to Selecting. Any Ticket issued before
// the reset becomes stale.
func (s *Session) Reset() bool {
	if s.state != domain.StateRevealed {
		return false
	}
	s.selection.Clear()
	s.assignment = domain.Assignment{}
	s.state = domain.StateSelecting
	s.modalOpen = false
	s.generation++
	s.logger.Debug("round reset", zap.Uint64("generation", s.generation))
	return true
}

// State returns the current phase.
func (s *Session) State() domain.State { return s.state }

// ModalOpen reports whether the reveal modal is visible.
func (s *Session) ModalOpen() bool { return s.state == domain.StateRevealed && s.modalOpen }

// Selection returns the selected slots in selection order.
func (s *Session) Selection() []int { return s.selection.Slots() }

// Assignment returns a copy of the current slot→content mapping.
func (s *Session) Assignment() domain.Assignment { return s.assignment.Clone() }

// Catalog returns the asset snapshot the session draws from.
func (s *Session) Catalog() domain.Catalog { return s.catalog }

// Slot returns the board position at index.
func (s *Session) Slot(index int) domain.Slot {
	return domain.Slot{
		Index:    index,
		Selected: s.selection.Contains(index),
		Content:  s.assignment[index],
	}
}

// Slots returns all board positions.
func (s *Session) Slots() [domain.SlotCount]domain.Slot {
	var out [domain.SlotCount]domain.Slot
	for i := range out {
		out[i] = s.Slot(i)
	}
	return out
}

// Ticket returns a token for work started in the current round.
func (s *Session) Ticket() Ticket { return Ticket{generation: s.generation} }

// Current reports whether t was issued in the current round. Results of
// asynchronous work holding a stale ticket must be discarded.
func (s *Session) Current(t Ticket) bool { return t.generation == s.generation }

// View composes the reveal region from the first content of each kind in
// selection order. It is the zero view until the round is revealed.
func (s *Session) View() domain.RevealView {
	var v domain.RevealView
	if s.state != domain.StateRevealed {
		return v
	}
	for _, idx := range s.selection.Slots() {
		switch c := s.assignment[idx].(type) {
		case domain.ImageContent:
			if v.Image == "" {
				v.Image = c.Ref
			}
		case domain.TextContent:
			if v.Prompt == "" {
				v.Prompt = c.Text
			}
		case domain.FeatureContent:
			if v.Feature == "" {
				v.Feature = c.Feature
			}
		case nil:
		}
	}
	return v
}
