package cmd

import (
	"context"

	"sdr/internal/dispatch"
	"sdr/internal/workspace"
)

func newMkusrCmd(provider *AppProvider) dispatch.Entry {
	return dispatch.Entry{
		Name:        "mkusr",
		Arity:       1,
		Usage:       "<username>",
		Description: "Creates a user file in the current directory.",
		Run: func(_ context.Context, args []string) error {
			path, err := workspace.WriteUserFile(provider.WorkDir, args[0])
			if err != nil {
				return err
			}
			provider.Printer().Success("Created user file " + path)
			return nil
		},
	}
}

func newUserCmd(provider *AppProvider) dispatch.Entry {
	return dispatch.Entry{
		Name:        "user",
		Description: "Prints the current username.",
		Run: func(context.Context, []string) error {
			p := provider.Printer()
			p.Println(p.Styles().ID.Render(provider.Settings().User))
			return nil
		},
	}
}
