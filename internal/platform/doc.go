// Package platform provides small cross-platform filesystem probes used by
// the template registry and config store: symlink detection without following
// the link, existence checks that treat dangling links as present, and
// directory creation with the default modes.
package platform
