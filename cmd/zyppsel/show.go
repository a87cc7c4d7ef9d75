package main

import (
	"github.com/spf13/cobra"

	selectable "github.com/albertocavalcante/go-selectable"
)

func newShowCmd(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <ident>",
		Short: "Show every object of one Selectable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(rootOpts, cmd, args[0])
		},
	}
}

func runShow(opts *RootOptions, cmd *cobra.Command, arg string) error {
	sess, err := openSession(opts, cmd)
	if err != nil {
		return err
	}
	s, err := sess.lookup(arg)
	if err != nil {
		return err
	}
	if opts.Format != "text" {
		return encode(cmd.OutOrStdout(), opts.Format, selectable.Summarize(s))
	}
	return selectable.Dump(cmd.OutOrStdout(), s)
}
