package cmd

import (
	"context"

	"sdr/internal/config"
	"sdr/internal/dispatch"
)

// newOptionTable builds the options recognised anywhere on the command line.
// Handlers only record overrides; the App is opened afterwards.
func newOptionTable(provider *AppProvider) dispatch.Table {
	return dispatch.Table{
		{
			Name:        "--username",
			Arity:       1,
			Usage:       "<name>",
			Description: "Temporarily sets the username.",
			Run: func(_ context.Context, args []string) error {
				provider.Config.User = args[0]
				return nil
			},
		},
		{
			Name:        "--dbpath",
			Arity:       1,
			Usage:       "<path>",
			Description: "Temporarily sets the database path.",
			Run: func(_ context.Context, args []string) error {
				provider.Config.DBPath = args[0]
				return nil
			},
		},
		{
			Name:        "-speak",
			Description: "Reads printed bugs aloud.",
			Run: func(context.Context, []string) error {
				provider.Config.Speak = true
				return nil
			},
		},
		{
			Name:        "--nocolor",
			Description: "Disables coloured output.",
			Run: func(context.Context, []string) error {
				provider.Config.Color = config.ColorNever
				return nil
			},
		},
	}
}
