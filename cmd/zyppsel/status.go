package main

import (
	"github.com/spf13/cobra"

	selectable "github.com/albertocavalcante/go-selectable"
)

func newStatusCmd(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status [ident...]",
		Short: "List the status of Selectables",
		Long: `List one line per Selectable: status code, identity, installed count and
object, available count and candidate. Without arguments every Selectable
in the manifest is listed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(rootOpts, cmd, args)
		},
	}
}

func runStatus(opts *RootOptions, cmd *cobra.Command, args []string) error {
	sess, err := openSession(opts, cmd)
	if err != nil {
		return err
	}

	var sels []*selectable.Selectable
	if len(args) == 0 {
		for s := range sess.proxy.All() {
			sels = append(sels, s)
		}
	}
	for _, arg := range args {
		s, err := sess.lookup(arg)
		if err != nil {
			return err
		}
		sels = append(sels, s)
	}

	out := cmd.OutOrStdout()
	if opts.Format != "text" {
		sums := make([]selectable.Summary, 0, len(sels))
		for _, s := range sels {
			sums = append(sums, selectable.Summarize(s))
		}
		return encode(out, opts.Format, sums)
	}
	for _, s := range sels {
		if err := writeLine(out, s); err != nil {
			return err
		}
	}
	return nil
}
