package cli

import (
	"github.com/rexfelix/ini-ai/internal/config"
	"github.com/spf13/cobra"
)

func (a *app) newInitCmd() *cobra.Command {
	var (
		templateFlag string
		force        bool
	)

	cmd := &cobra.Command{
		Use:   "init [template]",
		Short: "Write a template to rules/TEAM_RULES.md",
		Long: `Write the content of a template to rules/TEAM_RULES.md in the current
directory, creating the rules directory if needed.

Without a template name the template is chosen interactively. An existing
rules file is only replaced after confirmation, unless --force is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			name := templateFlag
			if len(args) > 0 {
				name = args[0]
			}
			return a.handleCancel(cmd, a.initProject(cmd, cfg, name, force))
		},
	}

	cmd.Flags().StringVarP(&templateFlag, "template", "t", "", "Template name (same as the positional argument)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing rules file without asking")
	return cmd
}
