package registry

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/rexfelix/ini-ai/internal/apperr"
	"github.com/rexfelix/ini-ai/internal/bundled"
	"github.com/rexfelix/ini-ai/internal/config"
	"github.com/rexfelix/ini-ai/internal/platform"
)

// List returns the templates in cfg's template directory sorted by name. A
// missing directory is an empty registry, not an error.
func List(cfg *config.Config) ([]Template, error) {
	s := NewDirStore(cfg.TemplatePath)
	names, err := s.List()
	if err != nil {
		return nil, err
	}

	templates := make([]Template, 0, len(names))
	for _, name := range names {
		templates = append(templates, Template{Name: name, Path: s.Path(name)})
	}

	slog.Debug("templates_listed", slog.String("dir", s.Root), slog.Int("count", len(templates)))
	return templates, nil
}

// Install copies the markdown file at source into the store as name. The
// source is validated before the destination is looked at, so a bad source
// never reports a name collision. Checks run in this order: source exists,
// .md extension (a file named just ".md" has none), size limit, not a
// symlink, destination free.
func Install(source, name string, cfg *config.Config) error {
	info, err := os.Stat(source)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return apperr.New(apperr.KindNotFound, "file not found: %s", source).WithPath(source)
		}
		return apperr.IO(err, "cannot access %s", source).WithPath(source)
	}

	if filepath.Ext(source) != Extension || filepath.Base(source) == Extension {
		return apperr.New(apperr.KindInvalidFormat, "only markdown (%s) files can be installed: %s", Extension, source).WithPath(source)
	}

	if info.Size() > MaxTemplateSize {
		return apperr.New(apperr.KindTooLarge, "file %s is larger than 10 MiB", source).WithPath(source)
	}

	isLink, err := platform.IsSymlink(source)
	if err != nil {
		return apperr.IO(err, "cannot access %s", source).WithPath(source)
	}
	if isLink {
		return apperr.New(apperr.KindUnsupportedFileType, "symbolic links are not supported: %s", source).WithPath(source)
	}
	if !info.Mode().IsRegular() {
		return apperr.New(apperr.KindUnsupportedFileType, "not a regular file: %s", source).WithPath(source)
	}

	if err := ValidateName(name); err != nil {
		return err
	}

	s := NewDirStore(cfg.TemplatePath)
	if err := s.EnsureRoot(); err != nil {
		return err
	}

	exists, err := s.Has(name)
	if err != nil {
		return err
	}
	if exists {
		return alreadyExists(name, s.Path(name))
	}

	f, err := os.Open(source)
	if err != nil {
		return apperr.IO(err, "cannot open %s", source).WithPath(source)
	}
	defer f.Close()

	if err := s.Put(name, f); err != nil {
		return fmt.Errorf("installing %s: %w", source, err)
	}

	slog.Debug("template_installed", slog.String("name", name), slog.String("source", source), slog.String("dest", s.Path(name)))
	return nil
}

// Remove deletes the template called name.
func Remove(name string, cfg *config.Config) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	s := NewDirStore(cfg.TemplatePath)
	if err := s.Delete(name); err != nil {
		return err
	}

	slog.Debug("template_removed", slog.String("name", name))
	return nil
}

// GetContent returns the full text of the template called name. Content that
// is not valid UTF-8 is reported as an IO error.
func GetContent(name string, cfg *config.Config) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}

	s := NewDirStore(cfg.TemplatePath)
	data, err := s.Get(name)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		path := s.Path(name)
		return "", apperr.IO(errors.New("invalid UTF-8"), "cannot read template file %s", path).WithPath(path).WithName(name)
	}
	return string(data), nil
}

// InstallDefault writes each bundled template whose file is not present yet.
// Existing files are left untouched, including edited, empty or corrupt
// copies of a bundled template.
func InstallDefault(cfg *config.Config) error {
	s := NewDirStore(cfg.TemplatePath)
	if err := s.EnsureRoot(); err != nil {
		return err
	}

	for _, t := range bundled.Templates() {
		exists, err := s.Has(t.Name)
		if err != nil {
			return err
		}
		if exists {
			slog.Debug("default_template_skipped", slog.String("name", t.Name))
			continue
		}

		err = s.Put(t.Name, strings.NewReader(t.Content))
		if errors.Is(err, apperr.ErrAlreadyExists) {
			continue
		}
		if err != nil {
			return fmt.Errorf("installing default template %s: %w", t.Name, err)
		}
		slog.Debug("default_template_installed", slog.String("name", t.Name), slog.String("dest", s.Path(t.Name)))
	}
	return nil
}
