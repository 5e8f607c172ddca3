package cmd

import (
	"context"

	"sdr/internal/dispatch"
	"sdr/internal/ui"
)

func newHelpCmd(provider *AppProvider, d *dispatch.Dispatcher) dispatch.Entry {
	return dispatch.Entry{
		Name:        "help",
		Description: "Prints this list of commands and options.",
		Run: func(context.Context, []string) error {
			p := provider.Printer()
			p.Println("Usage: [command] [arguments] [options]")
			p.Println("Command description:")
			printEntries(p, d.Commands)
			p.Println()
			p.Println("Option description:")
			printEntries(p, d.Options)
			return nil
		},
	}
}

func printEntries(p *ui.Printer, table dispatch.Table) {
	s := p.Styles()
	for _, e := range table {
		p.Printf("%s: Takes %d parameter(s).\n", s.ID.Render(e.Name), e.Arity)
		p.Printf("  %s %s\n", s.Text.Render(e.Description), describe(e.Name, e.Usage))
	}
}
