// Command zyppsel inspects and drives the statuses of the Selectables
// described by a pool manifest.
//
//	zyppsel --manifest system.zypp status
//	zyppsel --manifest system.zypp show amarok
//	zyppsel --manifest system.zypp set amarok=Update telnet=Del
//	zyppsel --manifest system.zypp diff --up-to-date
package main

import (
	"fmt"
	"io"
	"os"
)

// Version and Commit are overridden at build time.
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	runMain(os.Args, os.Stdout, os.Stderr, os.Exit)
}

// execute runs the CLI command with the provided args and output writers.
func execute(args []string, stdout, stderr io.Writer) error {
	cmd := newRootCmd()
	cmd.Version = fmt.Sprintf("%s (%s)", Version, Commit)
	if len(args) > 0 {
		args = args[1:]
	}
	cmd.SetArgs(append([]string{}, args...))
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.Execute()
}

// runMain executes the CLI and exits with the code carried by the error.
func runMain(args []string, stdout, stderr io.Writer, exit func(int)) {
	if err := execute(args, stdout, stderr); err != nil {
		_, _ = fmt.Fprintln(stderr, "Error:", err)
		exit(exitCode(err))
	}
}
