package dispatch

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
)

// recorder collects handler invocations.
type recorder struct {
	calls [][]string
}

func (r *recorder) entry(name string, arity int) Entry {
	return Entry{
		Name:  name,
		Arity: arity,
		Run: func(_ context.Context, args []string) error {
			r.calls = append(r.calls, append([]string{name}, args...))
			return nil
		},
	}
}

func TestParseOptionsStripsAnywhere(t *testing.T) {
	rec := &recorder{}
	d := &Dispatcher{Options: Table{
		rec.entry("--username", 1),
		rec.entry("--dbpath", 1),
		rec.entry("-speak", 0),
	}}

	args := []string{"add", "--DBPATH", "/tmp/db.yaml", "crash", "-speak", "new", "--username", "bob"}
	rest, err := d.ParseOptions(context.Background(), args)
	if err != nil {
		t.Fatal(err)
	}

	if want := []string{"add", "crash", "new"}; !reflect.DeepEqual(rest, want) {
		t.Errorf("remaining args = %v, want %v", rest, want)
	}
	want := [][]string{
		{"--username", "bob"},
		{"--dbpath", "/tmp/db.yaml"},
		{"-speak"},
	}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Errorf("calls = %v, want %v", rec.calls, want)
	}
}

func TestParseOptionsRepeated(t *testing.T) {
	rec := &recorder{}
	d := &Dispatcher{Options: Table{rec.entry("--username", 1)}}

	rest, err := d.ParseOptions(context.Background(), []string{"--username", "a", "user", "--username", "b"})
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"user"}; !reflect.DeepEqual(rest, want) {
		t.Errorf("remaining args = %v, want %v", rest, want)
	}
	if len(rec.calls) != 2 || rec.calls[1][1] != "b" {
		t.Errorf("calls = %v, want two calls ending with b", rec.calls)
	}
}

func TestParseOptionsTooFewArguments(t *testing.T) {
	rec := &recorder{}
	var errOut bytes.Buffer
	d := &Dispatcher{
		Options: Table{rec.entry("--dbpath", 1), rec.entry("-speak", 0)},
		Err:     &errOut,
	}

	rest, err := d.ParseOptions(context.Background(), []string{"-speak", "list", "--dbpath"})
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"list", "--dbpath"}; !reflect.DeepEqual(rest, want) {
		t.Errorf("remaining args = %v, want %v", rest, want)
	}
	if len(rec.calls) != 1 || rec.calls[0][0] != "-speak" {
		t.Errorf("calls = %v, want only -speak", rec.calls)
	}
	if !strings.Contains(errOut.String(), `Argument error: option "--dbpath" requires 1 argument(s).`) {
		t.Errorf("error output = %q", errOut.String())
	}
}

func TestParseOptionsHandlerError(t *testing.T) {
	boom := errors.New("boom")
	d := &Dispatcher{Options: Table{{
		Name: "--x", Arity: 0,
		Run: func(context.Context, []string) error { return boom },
	}}}
	if _, err := d.ParseOptions(context.Background(), []string{"--x"}); !errors.Is(err, boom) {
		t.Errorf("ParseOptions() error = %v, want boom", err)
	}
}

func TestRunCommandArityBoundary(t *testing.T) {
	tests := []struct {
		name      string
		arity     int
		args      []string
		wantCall  []string
		wantError bool
	}{
		{"zero arity alone", 0, []string{"user"}, []string{"user"}, false},
		{"zero arity extra ignored", 0, []string{"user", "x"}, []string{"user"}, false},
		{"exact arity", 2, []string{"add", "a", "b"}, []string{"add", "a", "b"}, false},
		{"extra tokens ignored", 1, []string{"find", "a", "b"}, []string{"find", "a"}, false},
		{"one short", 2, []string{"add", "a"}, nil, true},
		{"no arguments", 1, []string{"find"}, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			var errOut bytes.Buffer
			d := &Dispatcher{
				Commands: Table{rec.entry(tt.args[0], tt.arity)},
				Err:      &errOut,
			}
			if err := d.RunCommand(context.Background(), tt.args); err != nil {
				t.Fatalf("RunCommand: %v", err)
			}

			if tt.wantCall == nil {
				if len(rec.calls) != 0 {
					t.Errorf("handler called with %v", rec.calls)
				}
			} else if len(rec.calls) != 1 || !reflect.DeepEqual(rec.calls[0], tt.wantCall) {
				t.Errorf("calls = %v, want [%v]", rec.calls, tt.wantCall)
			}
			if gotErr := errOut.Len() > 0; gotErr != tt.wantError {
				t.Errorf("argument error reported = %v, want %v (%q)", gotErr, tt.wantError, errOut.String())
			}
		})
	}
}

func TestRunCommandFirstMatchWins(t *testing.T) {
	rec := &recorder{}
	var second bool
	d := &Dispatcher{Commands: Table{
		rec.entry("list", 1),
		{Name: "LIST", Arity: 0, Run: func(context.Context, []string) error { second = true; return nil }},
	}}
	if err := d.RunCommand(context.Background(), []string{"List", "bugs"}); err != nil {
		t.Fatal(err)
	}
	if len(rec.calls) != 1 || second {
		t.Errorf("calls = %v, second = %v; want only the first entry", rec.calls, second)
	}
}

func TestRunCommandOnlyFirstToken(t *testing.T) {
	rec := &recorder{}
	d := &Dispatcher{Commands: Table{rec.entry("user", 0)}}
	if err := d.RunCommand(context.Background(), []string{"bogus", "user"}); err != nil {
		t.Fatal(err)
	}
	if len(rec.calls) != 0 {
		t.Errorf("calls = %v, want none", rec.calls)
	}
}

func TestRunCommandUnknown(t *testing.T) {
	rec := &recorder{}
	var errOut bytes.Buffer
	d := &Dispatcher{Commands: Table{rec.entry("user", 0)}, Err: &errOut}

	if err := d.RunCommand(context.Background(), []string{"frobnicate"}); err != nil {
		t.Errorf("lenient RunCommand() error = %v, want nil", err)
	}
	if errOut.Len() != 0 {
		t.Errorf("lenient mode reported %q", errOut.String())
	}

	d.Strict = true
	if err := d.RunCommand(context.Background(), []string{"frobnicate"}); !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("strict RunCommand() error = %v, want ErrUnknownCommand", err)
	}
}

func TestRunCommandEmpty(t *testing.T) {
	d := &Dispatcher{Strict: true}
	if err := d.RunCommand(context.Background(), nil); err != nil {
		t.Errorf("RunCommand(nil) = %v, want nil", err)
	}
}

func TestRunCombinesPasses(t *testing.T) {
	rec := &recorder{}
	d := &Dispatcher{
		Options:  Table{rec.entry("--username", 1)},
		Commands: Table{rec.entry("stat", 2)},
	}
	if err := d.Run(context.Background(), []string{"stat", "--username", "bob", "1", "closed"}); err != nil {
		t.Fatal(err)
	}
	want := [][]string{{"--username", "bob"}, {"stat", "1", "closed"}}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Errorf("calls = %v, want %v", rec.calls, want)
	}
}

func TestHandlerArgsAreCopies(t *testing.T) {
	var captured []string
	d := &Dispatcher{
		Options: Table{{Name: "--u", Arity: 1, Run: func(_ context.Context, args []string) error { captured = args; return nil }}},
	}
	if _, err := d.ParseOptions(context.Background(), []string{"--u", "bob", "tail", "end"}); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(captured, []string{"bob"}) {
		t.Errorf("captured = %v, want [bob] after shifting", captured)
	}
}

func TestLookup(t *testing.T) {
	table := Table{{Name: "help"}, {Name: "user"}}
	if e, ok := table.Lookup("HELP"); !ok || e.Name != "help" {
		t.Errorf("Lookup(HELP) = %v, %v", e, ok)
	}
	if _, ok := table.Lookup("nope"); ok {
		t.Error("Lookup(nope) found an entry")
	}
}
