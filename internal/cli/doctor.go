package cli

import (
	"fmt"

	"github.com/rexfelix/ini-ai/internal/doctor"
	"github.com/spf13/cobra"
)

func (a *app) newDoctorCmd() *cobra.Command {
	var fix bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Health check for the init-ai setup",
		Long: `Check the config file, the template directory and the rules file of the
current project. With --fix, a missing template directory is created and a
missing bundled default template is reinstalled.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			wd, err := workDir()
			if err != nil {
				return err
			}

			report, err := doctor.Run(cmd.OutOrStdout(), wd, cmd.Root().Name(), fix)
			if err != nil {
				return err
			}
			if !report.OK() {
				return fmt.Errorf("doctor found %d problem(s)", report.Problems)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&fix, "fix", false, "Repair missing directories and default templates")
	return cmd
}
