// sdr is the CLI for Short Distance Runner, a bug tracker kept next to the code.
package main

import (
	"fmt"
	"os"

	"sdr/internal/cmd"
)

var (
	run    = func() error { return cmd.Execute() }
	osExit = os.Exit
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		osExit(1)
	}
}
