package platform

import (
	"errors"
	"io/fs"
	"os"
)

// IsSymlink reports whether path itself is a symbolic link. The link is not
// followed. A missing path returns false and the Lstat error.
func IsSymlink(path string) (bool, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return false, err
	}
	return info.Mode()&fs.ModeSymlink != 0, nil
}

// Exists reports whether any directory entry is present at path. Dangling
// symlinks count as present because a write to that name would not create a
// fresh file.
func Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// IsRegularFile reports whether path resolves, following symlinks, to a
// regular file.
func IsRegularFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
