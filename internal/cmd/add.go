package cmd

import (
	"context"
	"errors"

	"sdr/internal/bugstorage"
	"sdr/internal/dispatch"
)

func newAddCmd(provider *AppProvider) dispatch.Entry {
	return dispatch.Entry{
		Name:        "add",
		Arity:       2,
		Usage:       "<description> <status>",
		Description: "Adds a new bug owned by the current user.",
		Run: func(ctx context.Context, args []string) error {
			app, err := provider.Get(ctx)
			if err != nil {
				return err
			}

			id, err := app.Tracker.AddBug(ctx, args[0], args[1])
			if errors.Is(err, bugstorage.ErrInvalidValue) {
				app.Printer.Printf("Cannot add bug: %v\n", err)
				return nil
			}
			if err != nil {
				return err
			}

			bug, err := app.Tracker.Get(id)
			if err != nil {
				return err
			}
			app.Printer.PrintBug(bug)
			return nil
		},
	}
}
