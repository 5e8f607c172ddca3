package cmd

import (
	"context"
	"fmt"

	"sdr/internal/dispatch"
)

func newUpdateCmd(provider *AppProvider) dispatch.Entry {
	return dispatch.Entry{
		Name:        "update",
		Description: "Rewrites the database file.",
		Run: func(ctx context.Context, _ []string) error {
			app, err := provider.Get(ctx)
			if err != nil {
				return err
			}
			if err := app.Tracker.Save(ctx); err != nil {
				return err
			}
			app.Logger.Debug("database rewritten", "path", app.Tracker.Path(), "bugs", len(app.Tracker.Bugs()))
			app.Printer.Success(fmt.Sprintf("Saved %d bug(s) to %s", len(app.Tracker.Bugs()), app.Tracker.Path()))
			return nil
		},
	}
}
