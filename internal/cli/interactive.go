package cli

import (
	"errors"

	"github.com/rexfelix/ini-ai/internal/apperr"
	"github.com/rexfelix/ini-ai/internal/branding"
	"github.com/rexfelix/ini-ai/internal/config"
	"github.com/rexfelix/ini-ai/internal/ui"
	"github.com/spf13/cobra"
)

// action is one entry of the interactive menu.
type action struct {
	label string
	run   func(cmd *cobra.Command, cfg *config.Config) (*config.Config, error)
}

func (a *app) actions() []action {
	return []action{
		{"Initialize project", a.actionInit},
		{"List templates", a.actionList},
		{"Install template", a.actionInstall},
		{"Remove template", a.actionRemove},
		{"Set template path", a.actionSetPath},
		{"Quit", nil},
	}
}

// runInteractive makes sure a template path is configured and then loops
// over the action menu until the user quits or input ends. A failing action
// or an invalid menu answer is reported and the menu is shown again; any
// other prompt failure ends the session with that error. If the last action
// failed, that error is returned on quit so the exit status reflects it.
func (a *app) runInteractive(cmd *cobra.Command, args []string) error {
	p := a.printer(cmd)
	p.Header("=== %s interactive mode ===", branding.DisplayName())

	cfg, err := a.loadOrSetup(cmd)
	if err != nil {
		return a.handleCancel(cmd, err)
	}

	actions := a.actions()
	labels := make([]string, len(actions))
	for i, act := range actions {
		labels[i] = act.label
	}

	var lastErr error
	for {
		idx, err := a.prompt(cmd).Select("What would you like to do?", labels)
		if errors.Is(err, ui.ErrCancelled) {
			return alreadyReported(lastErr)
		}
		if errors.Is(err, ui.ErrInvalidSelection) {
			p.Error("%s", err)
			continue
		}
		if err != nil {
			return err
		}

		act := actions[idx]
		if act.run == nil {
			return alreadyReported(lastErr)
		}

		next, err := act.run(cmd, cfg)
		if err := a.handleCancel(cmd, err); err != nil {
			p.Error("%s", err)
			lastErr = err
			continue
		}
		lastErr = nil
		if next != nil {
			cfg = next
		}
	}
}

// loadOrSetup loads the config, asking for a template path first when none
// has been set.
func (a *app) loadOrSetup(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, apperr.ErrNotConfigured) {
		return nil, err
	}

	a.printer(cmd).Warn("No template path is configured yet.")
	def, err := config.DefaultTemplatePath()
	if err != nil {
		return nil, err
	}
	path, err := a.prompt(cmd).Input("Where should templates be stored?", def)
	if err != nil {
		return nil, err
	}
	return a.setTemplatePath(cmd, path)
}

func (a *app) actionInit(cmd *cobra.Command, cfg *config.Config) (*config.Config, error) {
	return nil, a.initProject(cmd, cfg, "", false)
}

func (a *app) actionList(cmd *cobra.Command, cfg *config.Config) (*config.Config, error) {
	return nil, a.listTemplates(cmd, cfg, false)
}

func (a *app) actionInstall(cmd *cobra.Command, cfg *config.Config) (*config.Config, error) {
	file, err := a.prompt(cmd).Input("Path of the markdown file to install", "")
	if err != nil {
		return nil, err
	}
	if file == "" {
		return nil, apperr.New(apperr.KindInvalidFormat, "no file given")
	}

	name, err := a.prompt(cmd).Input("Template name", defaultName(file))
	if err != nil {
		return nil, err
	}
	return nil, a.installTemplate(cmd, cfg, file, name)
}

func (a *app) actionRemove(cmd *cobra.Command, cfg *config.Config) (*config.Config, error) {
	name, err := a.selectTemplate(cmd, cfg, "Select a template to remove:")
	if err != nil {
		return nil, err
	}
	return nil, a.removeTemplate(cmd, cfg, name, false)
}

func (a *app) actionSetPath(cmd *cobra.Command, cfg *config.Config) (*config.Config, error) {
	path, err := a.prompt(cmd).Input("Where should templates be stored?", cfg.TemplatePath)
	if err != nil {
		return nil, err
	}
	return a.setTemplatePath(cmd, path)
}
