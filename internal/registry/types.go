package registry

import "io"

const (
	// Extension is the only file extension recognized as a template.
	Extension = ".md"

	// MaxTemplateSize is the largest source file Install accepts (10 MiB).
	MaxTemplateSize int64 = 10 * 1024 * 1024
)

// Template is an installed template.
type Template struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// Store is the backing storage for templates, keyed by name.
type Store interface {
	// List returns the names of all stored templates in ascending order.
	List() ([]string, error)
	// Has reports whether a template with name is stored.
	Has(name string) (bool, error)
	// Get returns the raw bytes of a template.
	Get(name string) ([]byte, error)
	// Put stores a new template. It never overwrites an existing one.
	Put(name string, r io.Reader) error
	// Delete removes a template.
	Delete(name string) error
}
