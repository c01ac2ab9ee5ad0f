package platform

import "os"

// Default modes for directories and files created by the CLI. The process
// umask still applies.
const (
	DirPerm  os.FileMode = 0755
	FilePerm os.FileMode = 0644
)

// MkdirAll creates path and any parents with DirPerm. An existing directory
// is left as is.
func MkdirAll(path string) error {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return nil
	}
	return os.MkdirAll(path, DirPerm)
}
