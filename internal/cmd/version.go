package cmd

import (
	"context"

	"sdr/internal/dispatch"
)

// Version is the current version of sdr. It can be overridden at build
// time via -ldflags "-X sdr/internal/cmd.Version=1.2.3".
var Version = "0.3.0"

func newVersionCmd(provider *AppProvider) dispatch.Entry {
	return dispatch.Entry{
		Name:        "version",
		Description: "Prints version information.",
		Run: func(context.Context, []string) error {
			provider.Printer().Printf("sdr version %s\n", Version)
			return nil
		},
	}
}
