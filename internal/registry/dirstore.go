package registry

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rexfelix/ini-ai/internal/apperr"
	"github.com/rexfelix/ini-ai/internal/platform"
)

var _ Store = (*DirStore)(nil)

// DirStore keeps templates as <Root>/<name>.md files.
type DirStore struct {
	Root string
}

// NewDirStore returns a DirStore rooted at dir.
func NewDirStore(dir string) *DirStore {
	return &DirStore{Root: dir}
}

// Path returns the file path for name.
func (s *DirStore) Path(name string) string {
	return filepath.Join(s.Root, name+Extension)
}

// EnsureRoot creates the root directory if it is missing.
func (s *DirStore) EnsureRoot() error {
	if err := platform.MkdirAll(s.Root); err != nil {
		return apperr.IO(err, "cannot create template directory %s", s.Root).WithPath(s.Root)
	}
	return nil
}

// List scans the immediate entries of Root. A missing Root yields no names.
// Symlinks are followed when deciding whether an entry is a regular file.
func (s *DirStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.Root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, apperr.IO(err, "cannot read template directory %s", s.Root).WithPath(s.Root)
	}

	var names []string
	for _, entry := range entries {
		fileName := entry.Name()
		if filepath.Ext(fileName) != Extension {
			continue
		}
		stem := strings.TrimSuffix(fileName, Extension)
		if stem == "" {
			continue
		}
		if !platform.IsRegularFile(filepath.Join(s.Root, fileName)) {
			continue
		}
		names = append(names, stem)
	}

	sort.Strings(names)
	return names, nil
}

// Has reports whether any entry exists at name's path.
func (s *DirStore) Has(name string) (bool, error) {
	path := s.Path(name)
	ok, err := platform.Exists(path)
	if err != nil {
		return false, apperr.IO(err, "checking template %s", path).WithPath(path).WithName(name)
	}
	return ok, nil
}

// Get reads name's file.
func (s *DirStore) Get(name string) ([]byte, error) {
	path := s.Path(name)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, notFound(name, path)
		}
		return nil, apperr.IO(err, "cannot read template file %s", path).WithPath(path).WithName(name)
	}
	return data, nil
}

// Put creates name's file exclusively and copies r into it. A partially
// written file is removed if the copy fails.
func (s *DirStore) Put(name string, r io.Reader) error {
	if err := s.EnsureRoot(); err != nil {
		return err
	}

	path := s.Path(name)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, platform.FilePerm)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return alreadyExists(name, path)
		}
		return apperr.IO(err, "cannot create template file %s", path).WithPath(path).WithName(name)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return apperr.IO(err, "cannot write template file %s", path).WithPath(path).WithName(name)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return apperr.IO(err, "cannot write template file %s", path).WithPath(path).WithName(name)
	}
	return nil
}

// Delete removes name's file.
func (s *DirStore) Delete(name string) error {
	path := s.Path(name)
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return notFound(name, path)
		}
		return apperr.IO(err, "cannot delete template %s", path).WithPath(path).WithName(name)
	}
	return nil
}

func notFound(name, path string) error {
	return apperr.New(apperr.KindNotFound, "template '%s' not found", name).WithPath(path).WithName(name)
}

func alreadyExists(name, path string) error {
	return apperr.New(apperr.KindAlreadyExists, "template '%s' already exists", name).WithPath(path).WithName(name)
}
