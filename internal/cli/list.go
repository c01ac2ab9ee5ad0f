package cli

import (
	"github.com/rexfelix/ini-ai/internal/config"
	"github.com/spf13/cobra"
)

func (a *app) newListCmd() *cobra.Command {
	var listJSON bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List installed templates",
		Long:    `List the templates in the configured template directory, sorted by name.`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return a.listTemplates(cmd, cfg, listJSON)
		},
	}

	cmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	return cmd
}
