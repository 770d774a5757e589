package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newCheckCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Check a file or stdin without the interactive view",
		Long: `Send text to the spellchecker and print the formatted results.

Reads from the named file, or from standard input when no file is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readCheckInput(cmd, args)
			if err != nil {
				return err
			}

			fallback := io.Discard
			if flags.verbose {
				fallback = cmd.ErrOrStderr()
			}
			appCtx, err := newAppContext(flags, fallback)
			if err != nil {
				return err
			}
			defer appCtx.Close()

			log := appCtx.Logger.With("command.check")
			report, err := appCtx.Checker.Check(cmd.Context(), text)
			if err != nil {
				log.Error(err, "check failed")
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), report.Text())
			fmt.Fprintln(cmd.ErrOrStderr(), report.Summary())
			return nil
		},
	}

	return cmd
}

func readCheckInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read input file: %w", err)
	}
	return string(data), nil
}
