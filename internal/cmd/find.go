package cmd

import (
	"context"

	"sdr/internal/dispatch"
)

func newFindCmd(provider *AppProvider) dispatch.Entry {
	return dispatch.Entry{
		Name:        "find",
		Arity:       1,
		Usage:       "<pattern>",
		Description: "Finds bugs whose description matches a pattern.",
		Run: func(ctx context.Context, args []string) error {
			app, err := provider.Get(ctx)
			if err != nil {
				return err
			}
			app.printSorted(app.Tracker.FindByDescription(args[0]))
			return nil
		},
	}
}

func newFstatCmd(provider *AppProvider) dispatch.Entry {
	return dispatch.Entry{
		Name:        "fstat",
		Arity:       1,
		Usage:       "<pattern>",
		Description: "Finds bugs whose status matches a pattern.",
		Run: func(ctx context.Context, args []string) error {
			app, err := provider.Get(ctx)
			if err != nil {
				return err
			}
			app.printSorted(app.Tracker.FindByStatus(args[0]))
			return nil
		},
	}
}
