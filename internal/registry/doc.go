// Package registry manages the template store: a flat directory where each
// template is a <name>.md file. The directory listing is the index, so every
// call re-reads the filesystem and nothing is cached between calls.
//
// Storage goes through the Store interface; DirStore is the filesystem
// implementation the package-level operations use.
package registry
