package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/rexfelix/ini-ai/internal/apperr"
	"github.com/rexfelix/ini-ai/internal/branding"
	"github.com/rexfelix/ini-ai/internal/buildinfo"
	"github.com/rexfelix/ini-ai/internal/logging"
	"github.com/rexfelix/ini-ai/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries the state shared by the commands of one invocation.
type app struct {
	build    buildinfo.Info
	settings *viper.Viper
	prompter ui.Prompter
}

// NewRootCmd builds the command tree for one invocation.
func NewRootCmd(build buildinfo.Info) *cobra.Command {
	a := &app{build: build, settings: viper.New()}

	rootCmd := &cobra.Command{
		Use:   branding.CLIName(),
		Short: branding.Description(),
		Long: branding.DisplayName() + ` copies a team rules template into the current project as
rules/TEAM_RULES.md and manages the local library of templates it copies from.

Run without a command to use the interactive menu.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupDefault(logging.Config{
				Level:  a.settings.GetString("log_level"),
				Format: a.settings.GetString("log_format"),
				Output: cmd.ErrOrStderr(),
			})
		},
		RunE: a.runInteractive,
	}

	defaults := logging.DefaultConfig()
	flags := rootCmd.PersistentFlags()
	flags.String("log-level", defaults.Level, "Log level (debug, info, warn, error)")
	flags.String("log-format", defaults.Format, "Log format (text, json)")

	a.settings.SetEnvPrefix(branding.EnvPrefix())
	a.settings.AutomaticEnv()
	_ = a.settings.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = a.settings.BindPFlag("log_format", flags.Lookup("log-format"))

	rootCmd.AddCommand(
		a.newListCmd(),
		a.newInitCmd(),
		a.newTemplateCmd(),
		a.newConfigCmd(),
		a.newDoctorCmd(),
		a.newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the root command with build info injected via ldflags. Errors
// are printed to stderr as a single marked line unless they were already
// shown to the user.
func Execute(version, commit, date string) error {
	cmd := NewRootCmd(buildinfo.New(version, commit, date))
	if err := cmd.Execute(); err != nil {
		printError(os.Stderr, err)
		return err
	}
	return nil
}

// reportedError wraps an error that has already been printed.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// alreadyReported marks err as printed; nil stays nil.
func alreadyReported(err error) error {
	if err == nil {
		return nil
	}
	return &reportedError{err: err}
}

func printError(w io.Writer, err error) {
	kind := apperr.KindOf(err)
	if kind == "" {
		kind = "UNKNOWN"
	}
	slog.Debug("command_failed", slog.String("kind", string(kind)), slog.String("error", err.Error()))

	var reported *reportedError
	if errors.As(err, &reported) {
		return
	}
	ui.NewPrinter(w).Error("%s", err)
}

// prompt returns the prompter for this invocation. The same instance is
// reused so a line prompter keeps its buffered input between questions.
func (a *app) prompt(cmd *cobra.Command) ui.Prompter {
	if a.prompter == nil {
		a.prompter = ui.New(cmd.InOrStdin(), cmd.OutOrStdout())
	}
	return a.prompter
}

func (a *app) printer(cmd *cobra.Command) *ui.Printer {
	return ui.NewPrinter(cmd.OutOrStdout())
}

// handleCancel turns a cancelled prompt into a notice and a clean exit.
func (a *app) handleCancel(cmd *cobra.Command, err error) error {
	if errors.Is(err, ui.ErrCancelled) || errors.Is(err, errDeclined) {
		a.printer(cmd).Note("Operation cancelled.")
		return nil
	}
	return err
}

// errDeclined is returned when the user answers no to a confirmation.
var errDeclined = errors.New("declined")

// confirm asks question unless skip is set. A "no" answer is errDeclined.
func (a *app) confirm(cmd *cobra.Command, question string, skip bool) error {
	if skip {
		return nil
	}
	ok, err := a.prompt(cmd).Confirm(question, false)
	if err != nil {
		return err
	}
	if !ok {
		return errDeclined
	}
	return nil
}

func workDir() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}
	return wd, nil
}
