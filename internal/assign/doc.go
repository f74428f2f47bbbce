// Package assign decides what each selected card reveals.
//
// Reconcile is a pure function of the current selection, the previous
// assignment and the asset catalog: slots that stay selected keep their
// content, and newly selected slots receive kinds not yet on the board, in
// canonical order (image, text, feature). Values are drawn uniformly from
// the catalog list for the kind, with fixed fallbacks for empty lists.
package assign
