package cli

import (
	"github.com/rexfelix/ini-ai/internal/config"
	"github.com/spf13/cobra"
)

func (a *app) newConfigCmd() *cobra.Command {
	var templatePath string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change settings",
		Long: `Show the current settings, or set the template directory with
--set-template-path. Setting the path also installs the default template.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("set-template-path") {
				_, err := a.setTemplatePath(cmd, templatePath)
				return err
			}
			return a.showConfig(cmd)
		},
	}

	cmd.Flags().StringVar(&templatePath, "set-template-path", "", "Directory to store templates in")
	return cmd
}

func (a *app) showConfig(cmd *cobra.Command) error {
	p := a.printer(cmd)

	exists, err := config.Exists()
	if err != nil {
		return err
	}
	if !exists {
		p.Note("Usage: %s config --set-template-path <path>", cmd.Root().Name())
		return nil
	}

	path, err := config.Locate()
	if err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	p.Plain("config file:      %s", path)
	p.Plain("template_path:    %s", cfg.TemplatePath)
	p.Plain("default_template: %s", cfg.DefaultTemplate)
	return nil
}
