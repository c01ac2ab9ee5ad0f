// Package project writes the selected template into a project as
// rules/TEAM_RULES.md. It never prompts: whether an existing file may be
// replaced is decided by the caller before Initialize runs.
package project

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/rexfelix/ini-ai/internal/apperr"
	"github.com/rexfelix/ini-ai/internal/config"
	"github.com/rexfelix/ini-ai/internal/platform"
	"github.com/rexfelix/ini-ai/internal/registry"
)

const (
	// OutputDir is the directory, relative to the project root, holding the output file.
	OutputDir = "rules"
	// OutputFile is the name of the generated rules file.
	OutputFile = "TEAM_RULES.md"
)

// RelOutputPath is the output path relative to the project root, for messages.
var RelOutputPath = filepath.Join(OutputDir, OutputFile)

// OutputPath returns the full path of the rules file for a project.
func OutputPath(projectDir string) string {
	return filepath.Join(projectDir, OutputDir, OutputFile)
}

// OutputExists reports whether the rules file is present in projectDir.
func OutputExists(projectDir string) bool {
	_, err := os.Stat(OutputPath(projectDir))
	return err == nil
}

// Initialize creates the rules directory if needed and writes the content of
// templateName to the rules file, replacing whatever was there. The write is
// a plain overwrite, not an atomic rename.
func Initialize(projectDir, templateName string, cfg *config.Config) error {
	dir := filepath.Join(projectDir, OutputDir)
	if err := platform.MkdirAll(dir); err != nil {
		return apperr.IO(err, "cannot create %s directory", OutputDir).WithPath(dir)
	}

	content, err := registry.GetContent(templateName, cfg)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return apperr.New(apperr.KindNotFound, "template '%s' not found in %s", templateName, cfg.TemplatePath).
				WithName(templateName).WithPath(cfg.TemplatePath)
		}
		return fmt.Errorf("reading template '%s': %w", templateName, err)
	}

	out := OutputPath(projectDir)
	if err := os.WriteFile(out, []byte(content), platform.FilePerm); err != nil {
		return apperr.IO(err, "cannot write %s", RelOutputPath).WithPath(out)
	}

	slog.Debug("project_initialized", slog.String("template", templateName), slog.String("output", out))
	return nil
}
