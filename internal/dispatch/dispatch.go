// Package dispatch maps a flat argument list onto option and command
// handlers registered with a fixed arity.
//
// Dispatch runs in two passes. The option pass finds option names anywhere
// in the list, runs their handlers and removes the consumed tokens. The
// command pass then looks only at the first remaining token. Names match
// case-insensitively. Unknown names are ignored unless Strict is set.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrUnknownCommand is returned by RunCommand in strict mode when the first
// token matches no registered command.
var ErrUnknownCommand = errors.New("unknown command")

// Entry is a named handler consuming exactly Arity arguments.
type Entry struct {
	Name        string
	Arity       int
	Usage       string // argument synopsis shown in help, e.g. "<id> <status>"
	Description string
	Run         func(ctx context.Context, args []string) error
}

// Table is an ordered list of entries. Earlier entries win when names
// collide.
type Table []Entry

// Lookup returns the first entry whose name matches name case-insensitively.
func (t Table) Lookup(name string) (Entry, bool) {
	for _, e := range t {
		if strings.EqualFold(e.Name, name) {
			return e, true
		}
	}
	return Entry{}, false
}

// Dispatcher runs option and command tables against an argument list.
type Dispatcher struct {
	Options  Table
	Commands Table

	// Err receives argument-count errors. Nil discards them.
	Err io.Writer

	// Strict makes an unmatched command token an error instead of a no-op.
	Strict bool
}

// Run performs the option pass followed by the command pass.
func (d *Dispatcher) Run(ctx context.Context, args []string) error {
	rest, err := d.ParseOptions(ctx, args)
	if err != nil {
		return err
	}
	return d.RunCommand(ctx, rest)
}

// ParseOptions runs every option found in args and returns args with the
// option names and their arguments removed. Options are processed in table
// order; each occurrence of an option runs its handler again. An occurrence
// followed by too few tokens is reported and left in place.
func (d *Dispatcher) ParseOptions(ctx context.Context, args []string) ([]string, error) {
	for _, opt := range d.Options {
		start := 0
		for {
			i := indexFold(args, opt.Name, start)
			if i < 0 {
				break
			}
			end := i + 1 + opt.Arity
			if end > len(args) {
				d.argumentError("option", opt)
				break
			}

			params := append([]string(nil), args[i+1:end]...)
			if err := opt.Run(ctx, params); err != nil {
				return args, fmt.Errorf("option %s: %w", opt.Name, err)
			}
			args = append(args[:i], args[end:]...)
			start = i
		}
	}
	return args, nil
}

// RunCommand matches args[0] against the command table and runs the first
// match with the Arity tokens following it. Extra tokens are ignored. A match
// with too few tokens is reported and its handler is not called.
func (d *Dispatcher) RunCommand(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return nil
	}

	cmd, ok := d.Commands.Lookup(args[0])
	if !ok {
		if d.Strict {
			return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
		}
		return nil
	}

	rest := args[1:]
	if len(rest) < cmd.Arity {
		d.argumentError("command", cmd)
		return nil
	}
	return cmd.Run(ctx, append([]string(nil), rest[:cmd.Arity]...))
}

func (d *Dispatcher) argumentError(kind string, e Entry) {
	if d.Err == nil {
		return
	}
	fmt.Fprintf(d.Err, "Argument error: %s %q requires %d argument(s).\n", kind, e.Name, e.Arity)
}

// indexFold returns the index of the first token at or after start equal to
// name under case folding, or -1.
func indexFold(args []string, name string, start int) int {
	for i := start; i < len(args); i++ {
		if strings.EqualFold(args[i], name) {
			return i
		}
	}
	return -1
}
