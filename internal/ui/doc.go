// Package ui holds the terminal-facing pieces of the CLI: prompts, styled
// status lines and markdown rendering.
//
// Prompts come in two flavours. When both ends are terminals a bubbletea
// picker is used; otherwise a numbered line menu reads from the input
// stream, which keeps scripted and test runs deterministic.
package ui
