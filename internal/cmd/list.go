package cmd

import (
	"context"
	"strings"

	"sdr/internal/dispatch"
)

func newListCmd(provider *AppProvider) dispatch.Entry {
	return dispatch.Entry{
		Name:        "list",
		Arity:       1,
		Usage:       "[bugs|users|mine]",
		Description: "Lists a number of properties in database.",
		Run: func(ctx context.Context, args []string) error {
			app, err := provider.Get(ctx)
			if err != nil {
				return err
			}

			switch strings.ToLower(args[0]) {
			case "bugs":
				app.printSorted(app.Tracker.Bugs())
			case "mine":
				app.printSorted(app.Tracker.Mine())
			case "users":
				users, _ := app.Tracker.ListByUser()
				for _, u := range users {
					app.Printer.Println(app.Printer.Styles().ID.Render(u))
				}
			default:
				app.Printer.Printf("Unknown list type %q\n", args[0])
			}
			return nil
		},
	}
}
