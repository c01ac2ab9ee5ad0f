package cli

import (
	"encoding/json"
	"fmt"

	"github.com/rexfelix/ini-ai/internal/apperr"
	"github.com/rexfelix/ini-ai/internal/bundled"
	"github.com/rexfelix/ini-ai/internal/config"
	"github.com/rexfelix/ini-ai/internal/project"
	"github.com/rexfelix/ini-ai/internal/registry"
	"github.com/spf13/cobra"
)

// The helpers below are shared by the subcommands and the interactive menu.

func (a *app) listTemplates(cmd *cobra.Command, cfg *config.Config, asJSON bool) error {
	templates, err := registry.List(cfg)
	if err != nil {
		return err
	}

	if asJSON {
		data, err := json.MarshalIndent(templates, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling template list: %w", err)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}

	p := a.printer(cmd)
	if len(templates) == 0 {
		p.Warn("No templates available.")
		p.Plain("Add one with '%s template install <file>'.", cmd.Root().Name())
		return nil
	}

	p.Header("Available templates:")
	for i, t := range templates {
		p.Plain("  %d. %s", i+1, p.Accent(t.Name))
	}
	return nil
}

// selectTemplate asks the user to pick one of the installed templates.
func (a *app) selectTemplate(cmd *cobra.Command, cfg *config.Config, title string) (string, error) {
	templates, err := registry.List(cfg)
	if err != nil {
		return "", err
	}
	if len(templates) == 0 {
		return "", apperr.New(apperr.KindNotFound,
			"no templates available; add one with '%s template install <file>'", cmd.Root().Name()).
			WithPath(cfg.TemplatePath)
	}

	names := make([]string, len(templates))
	for i, t := range templates {
		names[i] = t.Name
	}

	idx, err := a.prompt(cmd).Select(title, names)
	if err != nil {
		return "", err
	}
	return names[idx], nil
}

// initProject writes the named template to rules/TEAM_RULES.md in the
// working directory. An empty name is chosen interactively. An existing
// output file is only replaced after confirmation unless force is set.
func (a *app) initProject(cmd *cobra.Command, cfg *config.Config, name string, force bool) error {
	if name == "" {
		var err error
		name, err = a.selectTemplate(cmd, cfg, "Select a template:")
		if err != nil {
			return err
		}
	}
	if err := registry.ValidateName(name); err != nil {
		return err
	}

	wd, err := workDir()
	if err != nil {
		return err
	}

	if project.OutputExists(wd) {
		question := fmt.Sprintf("%s already exists. Overwrite?", project.RelOutputPath)
		if err := a.confirm(cmd, question, force); err != nil {
			return err
		}
	}

	if err := project.Initialize(wd, name, cfg); err != nil {
		return err
	}

	p := a.printer(cmd)
	p.Success("Created %s (template: %s)", project.RelOutputPath, p.Accent(name))
	return nil
}

// defaultName is the template name used when none is given for file.
func defaultName(file string) string {
	return registry.NameFromFile(file)
}

// installTemplate copies file into the store. An empty name defaults to the
// file name without its extension.
func (a *app) installTemplate(cmd *cobra.Command, cfg *config.Config, file, name string) error {
	if name == "" {
		name = defaultName(file)
	}
	if err := registry.Install(file, name, cfg); err != nil {
		return err
	}

	p := a.printer(cmd)
	p.Success("Installed template '%s'.", p.Accent(name))
	return nil
}

// removeTemplate deletes the named template after confirmation.
func (a *app) removeTemplate(cmd *cobra.Command, cfg *config.Config, name string, yes bool) error {
	if err := registry.ValidateName(name); err != nil {
		return err
	}
	if err := a.confirm(cmd, fmt.Sprintf("Remove template '%s'?", name), yes); err != nil {
		return err
	}
	if err := registry.Remove(name, cfg); err != nil {
		return err
	}

	p := a.printer(cmd)
	p.Success("Removed template '%s'.", p.Accent(name))
	return nil
}

// setTemplatePath stores path as the template directory and installs the
// bundled templates into it.
func (a *app) setTemplatePath(cmd *cobra.Command, path string) (*config.Config, error) {
	cfg, err := config.SetTemplatePath(path)
	if err != nil {
		return nil, err
	}

	p := a.printer(cmd)
	p.Success("Template path set: %s", p.Accent(cfg.TemplatePath))

	if err := registry.InstallDefault(cfg); err != nil {
		return nil, err
	}
	p.Success("Default template '%s' is installed.", p.Accent(bundled.DefaultName))
	return cfg, nil
}
