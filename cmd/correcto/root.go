package main

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/correcto/internal/tui/app"
)

var errNotTerminal = errors.New("interactive mode needs a terminal; use 'correcto check' to read from a file or stdin")

// isTerminal is replaced in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "correcto",
		Short:         "Correcto checks spelling with an external spellchecker",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal() {
				return errNotTerminal
			}
			return runInteractive(cmd, flags)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "Path to configuration file")
	pf.StringVar(&flags.checkerPath, "checker", "", "Path to the spellchecker executable")
	pf.DurationVar(&flags.timeout, "timeout", 0, "Maximum time allowed for one check (e.g. 30s)")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	pf.StringVar(&flags.logFile, "log-file", "", "Append logs to this file")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newCheckCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func runInteractive(cmd *cobra.Command, flags *rootFlags) error {
	// The view owns the terminal, so logs only go to a configured file.
	appCtx, err := newAppContext(flags, io.Discard)
	if err != nil {
		return err
	}
	defer appCtx.Close()

	log := appCtx.Logger.With("command.root")
	log.WithFields(map[string]any{
		"checker": appCtx.Config.Checker.Path,
		"timeout": appCtx.Config.Checker.Timeout.String(),
	}).Debug("configuration loaded")

	return app.Run(cmd.Context(), appCtx.Checker, app.Options{Title: appCtx.Config.UI.Title}, log)
}
