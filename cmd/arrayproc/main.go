// Command arrayproc runs the integer array exercises on the console.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/roach88/arrayproc/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	if err == nil {
		os.Exit(cli.ExitSuccess)
	}

	// ExitErrors have already been reported by the command's formatter.
	// Anything else comes from cobra before a subcommand ran (unknown
	// command, bad root flag) and is a command-line error.
	var exitErr *cli.ExitError
	if !errors.As(err, &exitErr) {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.ExitCommandError)
	}
	os.Exit(exitErr.Code)
}
