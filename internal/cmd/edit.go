package cmd

import (
	"context"
	"errors"

	"sdr/internal/bugstorage"
	"sdr/internal/dispatch"
	"sdr/internal/tracker"
)

func newStatCmd(provider *AppProvider) dispatch.Entry {
	return dispatch.Entry{
		Name:        "stat",
		Arity:       2,
		Usage:       "<id> <status>",
		Description: "Sets the status of a bug.",
		Run: func(ctx context.Context, args []string) error {
			return setField(ctx, provider, args[0], tracker.FieldStatus, args[1])
		},
	}
}

func newPrioCmd(provider *AppProvider) dispatch.Entry {
	return dispatch.Entry{
		Name:        "prio",
		Arity:       2,
		Usage:       "<id> <priority>",
		Description: "Sets the priority of a bug. Lower numbers list first.",
		Run: func(ctx context.Context, args []string) error {
			return setField(ctx, provider, args[0], tracker.FieldPriority, args[1])
		},
	}
}

func newNoteCmd(provider *AppProvider) dispatch.Entry {
	return dispatch.Entry{
		Name:        "note",
		Arity:       2,
		Usage:       "<id> <text>",
		Description: "Appends a note to a bug.",
		Run: func(ctx context.Context, args []string) error {
			app, err := provider.Get(ctx)
			if err != nil {
				return err
			}
			id, ok := app.parseID(args[0])
			if !ok {
				return nil
			}

			bug, err := app.Tracker.AppendNote(ctx, id, args[1])
			if err != nil {
				return app.reportLookup(id, err)
			}
			app.Printer.PrintBug(bug)
			return nil
		},
	}
}

// setField updates one field of the bug named by rawID and prints the result.
func setField(ctx context.Context, provider *AppProvider, rawID string, field tracker.Field, value string) error {
	app, err := provider.Get(ctx)
	if err != nil {
		return err
	}
	id, ok := app.parseID(rawID)
	if !ok {
		return nil
	}

	bug, err := app.Tracker.SetField(ctx, id, field, value)
	if field == tracker.FieldPriority && errors.Is(err, bugstorage.ErrInvalidValue) {
		app.Printer.Printf("Invalid priority %q\n", value)
		return nil
	}
	if err != nil {
		return app.reportLookup(id, err)
	}
	app.Printer.PrintBug(bug)
	return nil
}
