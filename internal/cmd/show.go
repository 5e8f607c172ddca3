package cmd

import (
	"context"

	"sdr/internal/dispatch"
)

func newShowCmd(provider *AppProvider) dispatch.Entry {
	return dispatch.Entry{
		Name:        "show",
		Arity:       1,
		Usage:       "<id>",
		Description: "Shows a bug with its owner, priority and notes.",
		Run: func(ctx context.Context, args []string) error {
			app, err := provider.Get(ctx)
			if err != nil {
				return err
			}
			id, ok := app.parseID(args[0])
			if !ok {
				return nil
			}

			bug, err := app.Tracker.Get(id)
			if err != nil {
				return app.reportLookup(id, err)
			}
			app.Printer.PrintDetail(bug)
			return nil
		},
	}
}
