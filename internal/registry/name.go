package registry

import (
	"path/filepath"
	"strings"

	"github.com/rexfelix/ini-ai/internal/apperr"
)

// ValidateName checks that name can be used as a template file stem: it must
// be a single, non-empty path element.
func ValidateName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return apperr.New(apperr.KindInvalidFormat, "template name must not be empty")
	case name == "." || name == "..":
		return apperr.New(apperr.KindInvalidFormat, "invalid template name %q", name).WithName(name)
	case strings.ContainsAny(name, `/\`+"\x00"):
		return apperr.New(apperr.KindInvalidFormat, "template name %q must not contain path separators", name).WithName(name)
	}
	return nil
}

// NameFromFile derives a template name from a file path by stripping the
// directory and the final extension ("docs/Team.md" → "Team"). Dotfiles keep
// their full name.
func NameFromFile(path string) string {
	base := filepath.Base(path)
	if ext := filepath.Ext(base); ext != base {
		base = strings.TrimSuffix(base, ext)
	}
	return base
}
