// Package doctor runs health checks on the init-ai configuration, the
// template directory and the current project, printing one status line per
// check. With fix enabled it repairs what it safely can: a missing template
// directory and a missing bundled default template.
package doctor

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/rexfelix/ini-ai/internal/bundled"
	"github.com/rexfelix/ini-ai/internal/config"
	"github.com/rexfelix/ini-ai/internal/platform"
	"github.com/rexfelix/ini-ai/internal/project"
	"github.com/rexfelix/ini-ai/internal/registry"
)

// Status line markers.
const (
	markOK   = "[ OK ]"
	markMiss = "[MISS]"
	markWarn = "[WARN]"
	markFail = "[FAIL]"
	markFix  = "[FIX ]"
	markInfo = "[ -- ]"
)

// Report summarizes a run. Problems counts MISS and FAIL lines that were not
// fixed; warnings are informational.
type Report struct {
	Problems int
	Fixed    int
	Warnings int
}

// OK reports whether no unfixed problems were found.
func (r Report) OK() bool { return r.Problems == 0 }

type checker struct {
	w      io.Writer
	cli    string
	fix    bool
	report Report
}

func (c *checker) ok(format string, args ...any) {
	fmt.Fprintf(c.w, "  %s %s\n", markOK, fmt.Sprintf(format, args...))
}

func (c *checker) info(format string, args ...any) {
	fmt.Fprintf(c.w, "  %s %s\n", markInfo, fmt.Sprintf(format, args...))
}

func (c *checker) warn(format string, args ...any) {
	c.report.Warnings++
	fmt.Fprintf(c.w, "  %s %s\n", markWarn, fmt.Sprintf(format, args...))
}

func (c *checker) miss(format string, args ...any) {
	c.report.Problems++
	fmt.Fprintf(c.w, "  %s %s\n", markMiss, fmt.Sprintf(format, args...))
}

func (c *checker) fail(format string, args ...any) {
	c.report.Problems++
	fmt.Fprintf(c.w, "  %s %s\n", markFail, fmt.Sprintf(format, args...))
}

// fixFailed reports a repair that did not work; the problem stays counted.
func (c *checker) fixFailed(format string, args ...any) {
	fmt.Fprintf(c.w, "  %s %s\n", markFail, fmt.Sprintf(format, args...))
}

func (c *checker) fixed(format string, args ...any) {
	c.report.Problems--
	c.report.Fixed++
	fmt.Fprintf(c.w, "  %s %s\n", markFix, fmt.Sprintf(format, args...))
}

// Run checks the installation and the project in projectDir. cliName is used
// in hints that suggest a command to run.
func Run(w io.Writer, projectDir, cliName string, fix bool) (Report, error) {
	c := &checker{w: w, cli: cliName, fix: fix}

	fmt.Fprintln(w, "Configuration:")
	cfg, err := c.checkConfig()
	if err != nil {
		return c.report, err
	}

	if cfg != nil {
		fmt.Fprintln(w, "Templates:")
		if c.checkTemplateDir(cfg) {
			c.checkTemplates(cfg)
			c.checkDefaultTemplate(cfg)
		}
	}

	fmt.Fprintln(w, "Project:")
	c.checkProject(projectDir)

	return c.report, nil
}

// checkConfig returns the loaded config, or nil when it is missing or broken.
func (c *checker) checkConfig() (*config.Config, error) {
	path, err := config.Locate()
	if err != nil {
		return nil, err
	}

	exists, err := config.Exists()
	if err != nil {
		return nil, err
	}
	if !exists {
		c.miss("%s does not exist", path)
		fmt.Fprintf(c.w, "         Run '%s config --set-template-path <path>' to create it\n", c.cli)
		return nil, nil
	}

	cfg, err := config.Load()
	if err != nil {
		c.fail("%s: %v", path, err)
		return nil, nil
	}
	c.ok("%s", path)
	c.ok("template_path: %s", cfg.TemplatePath)
	return cfg, nil
}

// checkTemplateDir reports whether the template directory is usable.
func (c *checker) checkTemplateDir(cfg *config.Config) bool {
	dir := cfg.TemplatePath
	info, err := os.Stat(dir)
	if errors.Is(err, os.ErrNotExist) {
		c.miss("%s does not exist", dir)
		if !c.fix {
			return false
		}
		if err := platform.MkdirAll(dir); err != nil {
			c.fixFailed("could not create %s: %v", dir, err)
			return false
		}
		c.fixed("created %s", dir)
		return true
	}
	if err != nil {
		c.fail("%s: %v", dir, err)
		return false
	}
	if !info.IsDir() {
		c.fail("%s exists but is not a directory", dir)
		return false
	}
	c.ok("%s exists", dir)
	return true
}

// checkTemplates lists the installed templates and warns about entries the
// registry ignores.
func (c *checker) checkTemplates(cfg *config.Config) {
	templates, err := registry.List(cfg)
	if err != nil {
		c.fail("listing templates: %v", err)
		return
	}
	switch len(templates) {
	case 0:
		c.warn("no templates installed")
	case 1:
		c.ok("1 template installed")
	default:
		c.ok("%d templates installed", len(templates))
	}

	known := make([]string, 0, len(templates))
	for _, t := range templates {
		known = append(known, t.Name+registry.Extension)
	}

	entries, err := os.ReadDir(cfg.TemplatePath)
	if err != nil {
		return
	}
	for _, e := range entries {
		if slices.Contains(known, e.Name()) {
			continue
		}
		path := filepath.Join(cfg.TemplatePath, e.Name())
		switch {
		case e.IsDir():
			c.warn("%s is a directory and is ignored", path)
		case filepath.Ext(e.Name()) == registry.Extension:
			c.warn("%s is not a readable regular file and is ignored", path)
		default:
			c.warn("%s is not a %s file and is ignored", path, registry.Extension)
		}
	}
}

// checkDefaultTemplate verifies the configured default template is present.
func (c *checker) checkDefaultTemplate(cfg *config.Config) {
	name := cfg.DefaultTemplate
	if name == "" {
		return
	}

	exists, err := registry.NewDirStore(cfg.TemplatePath).Has(name)
	if err != nil {
		c.fail("checking default template %q: %v", name, err)
		return
	}
	if exists {
		c.ok("default template %q is installed", name)
		return
	}

	c.miss("default template %q is not installed", name)
	if !c.fix || !isBundled(name) {
		return
	}
	if err := registry.InstallDefault(cfg); err != nil {
		c.fixFailed("could not install %q: %v", name, err)
		return
	}
	c.fixed("installed default template %q", name)
}

func (c *checker) checkProject(projectDir string) {
	if project.OutputExists(projectDir) {
		c.ok("%s exists", project.RelOutputPath)
		return
	}
	c.info("%s not created yet; run '%s init'", project.RelOutputPath, c.cli)
}

func isBundled(name string) bool {
	for _, t := range bundled.Templates() {
		if t.Name == name {
			return true
		}
	}
	return false
}
