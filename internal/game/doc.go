// Package game runs a single reveal round.
//
// Selection owns the ordered set of chosen slots. Session owns the round
// state (selecting or revealed), the modal flag, and the slot→content
// assignment, and is the only place those change. A Session is not safe for
// concurrent use; it is driven from one goroutine (the TUI update loop or a
// CLI command). Asynchronous work started from a round carries a Ticket so
// that results arriving after a Reset can be recognised and dropped.
package game
