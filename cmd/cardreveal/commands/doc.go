// Package commands defines the cardreveal CLI and wires dependencies for subcommands.
//
// Commands
//
//   - play                 Play a round in the terminal UI
//   - reveal <a> <b> <c>   Play a round non-interactively by picking slots 1-9
//   - share <platform>     Print a share URL for an already uploaded image
//   - catalog              Show how many prompts, features and images loaded
//
// # Implementation
//
// The root command loads configuration (flags, CARDREVEAL_* environment,
// optional TOML file), builds the logger and then the dependency graph
// (catalog, capture backend, uploader, reveal service) before any
// subcommand runs. The play command sends logs to a file so they never draw
// over the terminal UI.
package commands
