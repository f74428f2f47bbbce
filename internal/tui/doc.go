// Package tui is the interactive terminal front end for a reveal round.
//
// The board is a 3x3 grid of face-down cards. Picking a card flips it and
// shows the content it was dealt; the third pick reveals the round and
// opens the result panel, from which the capture can be saved or shared.
// Save and share run as background commands tagged with the round they
// started in, so a result that arrives after a reset is dropped.
package tui
