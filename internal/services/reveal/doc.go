// Package reveal runs the export side of a revealed round.
//
// It glues the capture backend, the uploader and the share link builder:
//   - Save captures the view and writes card-reveal.png to the output dir.
//   - Share captures, uploads, and builds the platform share URL. Capture
//     and upload failures are not fatal: the result degrades to a share of
//     the generic destination and records why.
//
// The service works on domain.RevealView values and never sees a session,
// so results can be computed off the UI goroutine and discarded by the
// caller if the round has since been reset.
package reveal
