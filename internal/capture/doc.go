// Package capture turns a revealed round into a PNG.
//
// Two backends implement domain.Capturer:
//
//   - Raster composites the view in-process with golang.org/x/image. It
//     needs no external programs and is the default.
//   - Browser renders the view as an HTML page in headless Chrome (via
//     go-rod) and screenshots the card element.
//
// Both use a fixed background colour and pixel ratio, and both fail with an
// error wrapping domain.ErrCaptureFailed when the view is empty or an image
// it references cannot be loaded. Neither touches game state.
package capture
