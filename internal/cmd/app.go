// Package cmd implements the sdr command-line interface.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"sdr/internal/bugstorage"
	"sdr/internal/config"
	"sdr/internal/tracker"
	"sdr/internal/ui"
)

// App holds application state shared across commands.
type App struct {
	Tracker *tracker.Tracker
	Config  config.Config
	Printer *ui.Printer
	Logger  *slog.Logger
	WorkDir string // directory sdr was started in
	Out     io.Writer
	Err     io.Writer
}

// parseID converts a bug ID argument. Invalid IDs are reported to the user
// and ok is false.
func (a *App) parseID(s string) (id int, ok bool) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		a.Printer.Printf("Invalid bug id %q\n", s)
		return 0, false
	}
	return id, true
}

// reportLookup turns recoverable repository errors into user-facing
// messages. Any other error is returned unchanged.
func (a *App) reportLookup(id int, err error) error {
	switch {
	case errors.Is(err, bugstorage.ErrNotFound):
		a.Printer.Printf("No such bug: %d\n", id)
		return nil
	case errors.Is(err, bugstorage.ErrInvalidValue):
		a.Printer.Printf("Cannot update bug %d: %v\n", id, err)
		return nil
	}
	return err
}

// printSorted writes bugs ordered by ascending priority.
func (a *App) printSorted(bugs []*bugstorage.Bug) {
	sorted := append([]*bugstorage.Bug(nil), bugs...)
	bugstorage.SortByPriority(sorted)
	a.Printer.PrintBugs(sorted)
}

// describe formats a help line: "'<name> <usage>'".
func describe(name, usage string) string {
	if usage == "" {
		return fmt.Sprintf("'%s'", name)
	}
	return fmt.Sprintf("'%s %s'", name, usage)
}
