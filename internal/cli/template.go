package cli

import (
	"fmt"

	"github.com/rexfelix/ini-ai/internal/config"
	"github.com/rexfelix/ini-ai/internal/registry"
	"github.com/rexfelix/ini-ai/internal/ui"
	"github.com/spf13/cobra"
)

func (a *app) newTemplateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Manage installed templates",
		Long:  `Install, remove, and show the markdown templates in the template directory.`,
	}

	cmd.AddCommand(
		a.newTemplateInstallCmd(),
		a.newTemplateRemoveCmd(),
		a.newTemplateShowCmd(),
	)
	return cmd
}

func (a *app) newTemplateInstallCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "install <file>",
		Short: "Install a markdown file as a template",
		Long: `Copy a markdown file into the template directory. The template is named
after the file (without .md) unless --name is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return a.installTemplate(cmd, cfg, args[0], name)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Template name (defaults to the file name)")
	return cmd
}

func (a *app) newTemplateRemoveCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "remove <name>",
		Aliases: []string{"rm"},
		Short:   "Remove an installed template",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return a.handleCancel(cmd, a.removeTemplate(cmd, cfg, args[0], yes))
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Remove without asking for confirmation")
	return cmd
}

func (a *app) newTemplateShowCmd() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Print the content of a template",
		Long: `Print a template. On a terminal the markdown is rendered; with --raw, or
when output is redirected, the file content is printed as is.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			content, err := registry.GetContent(args[0], cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if raw || !ui.IsTTY(out) {
				_, err = fmt.Fprint(out, content)
				return err
			}

			r, err := ui.NewRenderer(ui.DefaultWrapWidth, "")
			if err != nil {
				return err
			}
			rendered, err := r.Render(content)
			if err != nil {
				return fmt.Errorf("rendering template '%s': %w", args[0], err)
			}
			_, err = fmt.Fprint(out, rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print the markdown source without rendering")
	return cmd
}
