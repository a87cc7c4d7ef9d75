package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	selectable "github.com/albertocavalcante/go-selectable"
)

type diffOptions struct {
	UpToDate bool
}

func newDiffCmd(rootOpts *RootOptions) *cobra.Command {
	opts := &diffOptions{}
	cmd := &cobra.Command{
		Use:   "diff [ident=action...]",
		Short: "Preview what a commit would do",
		Long: `Apply the given changes (see 'zyppsel set') and list the resulting
transaction: installs, deletes, upgrades, downgrades and reinstalls.
Rejected changes are reported on stderr and do not fail the command.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(rootOpts, opts, cmd, args)
		},
	}
	cmd.Flags().BoolVar(&opts.UpToDate, "up-to-date", false, "bring every installed Selectable up to date first")
	return cmd
}

func runDiff(rootOpts *RootOptions, opts *diffOptions, cmd *cobra.Command, args []string) error {
	sess, err := openSession(rootOpts, cmd)
	if err != nil {
		return err
	}
	sess.proxy.SaveState()

	if opts.UpToDate {
		for s := range sess.proxy.All() {
			if s.HasInstalledObj() && !s.SetUpToDate(sess.causer) {
				sess.logger.Warn("rejected", "ident", s.Ident().String(), "action", actionUpToDate)
			}
		}
	}
	if _, err := applyAll(sess, args); err != nil {
		return err
	}

	changes := &selectable.Changes{}
	if sess.proxy.DiffState() {
		changes = selectable.PendingChanges(sess.proxy)
	}

	out := cmd.OutOrStdout()
	if rootOpts.Format != "text" {
		return encode(out, rootOpts.Format, changes)
	}
	return writeChanges(out, changes)
}

func writeChanges(w io.Writer, c *selectable.Changes) error {
	if c.IsEmpty() {
		_, err := fmt.Fprintln(w, "Nothing to do.")
		return err
	}
	for _, ch := range c.Installs {
		fmt.Fprintf(w, "%s %s %s (%s)\n", color.GreenString("install  "), ch.Ident, ch.Edition, ch.Causer)
	}
	for _, r := range c.Upgrades {
		fmt.Fprintf(w, "%s %s %s -> %s (%s)\n", color.GreenString("upgrade  "), r.Ident, r.OldEdition, r.NewEdition, r.Causer)
	}
	for _, r := range c.Downgrades {
		fmt.Fprintf(w, "%s %s %s -> %s (%s)\n", color.YellowString("downgrade"), r.Ident, r.OldEdition, r.NewEdition, r.Causer)
	}
	for _, r := range c.Reinstalls {
		fmt.Fprintf(w, "%s %s %s (%s)\n", color.CyanString("reinstall"), r.Ident, r.NewEdition, r.Causer)
	}
	for _, ch := range c.Deletes {
		fmt.Fprintf(w, "%s %s %s (%s)\n", color.RedString("delete   "), ch.Ident, ch.Edition, ch.Causer)
	}
	_, err := fmt.Fprintf(w, "%d change(s).\n", c.TotalChanges())
	return err
}
