// Package app wires application dependencies for the CLIs.
//
// It builds the concrete catalog, capture backend, uploader, artifact store
// and reveal service from config.Config, exposing them via the Wire struct
// for commands to use.
package app
