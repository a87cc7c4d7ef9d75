package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newSetCmd(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "set <ident=action>...",
		Short: "Request status changes",
		Long: `Request changes in order and report which were accepted.

An action is a status name (NoInst, KeepInstalled, Install, Update, Del,
Protected, Taboo) or one of up-to-date, installed, deleted and unset.
Changes are requested with the rank given by --causer (default: user).
The exit code is 1 if any change was rejected.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(rootOpts, cmd, args)
		},
	}
}

func runSet(opts *RootOptions, cmd *cobra.Command, args []string) error {
	sess, err := openSession(opts, cmd)
	if err != nil {
		return err
	}
	results, err := applyAll(sess, args)
	if err != nil {
		return err
	}

	rejected := 0
	for _, r := range results {
		if !r.OK {
			rejected++
		}
	}

	out := cmd.OutOrStdout()
	if opts.Format != "text" {
		if err := encode(out, opts.Format, results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			verdict := color.GreenString("ok      ")
			if !r.OK {
				verdict = color.RedString("rejected")
			}
			if _, err := fmt.Fprintf(out, "%s %s=%s\n", verdict, r.Ident, r.Action); err != nil {
				return err
			}
		}
		for _, r := range results {
			if err := writeLine(out, r.sel); err != nil {
				return err
			}
		}
	}

	if rejected > 0 {
		return &ExitError{Code: ExitFailure, Message: fmt.Sprintf("%d of %d changes rejected", rejected, len(results))}
	}
	return nil
}
