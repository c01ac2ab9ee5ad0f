// Package cli defines the Cobra command tree for the init-ai CLI. Each file
// in this package builds one top-level command (list, init, template, config,
// version) and the root command falls back to an interactive action menu.
// Command implementations delegate to internal packages for business logic
// and only handle flag parsing, I/O formatting, and user interaction.
package cli
