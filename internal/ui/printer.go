package ui

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"sdr/internal/bugstorage"
	"sdr/internal/logging"
)

// Printer writes bug records and messages to an output stream.
type Printer struct {
	out     io.Writer
	styles  Styles
	speaker Speaker
	logger  *slog.Logger
}

// PrinterOption configures a Printer.
type PrinterOption func(*Printer)

// WithSpeaker announces every printed bug through s.
func WithSpeaker(s Speaker) PrinterOption {
	return func(p *Printer) {
		p.speaker = s
	}
}

// WithLogger sets the logger for announcement failures.
func WithLogger(l *slog.Logger) PrinterOption {
	return func(p *Printer) {
		p.logger = l
	}
}

// NewPrinter creates a Printer writing to out.
func NewPrinter(out io.Writer, color bool, opts ...PrinterOption) *Printer {
	p := &Printer{
		out:    out,
		styles: NewStyles(out, color),
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Styles returns the styles bound to the printer's stream.
func (p *Printer) Styles() Styles {
	return p.styles
}

// FormatBug renders the one-line form: bug[<id>|<status>]: <description>.
func (p *Printer) FormatBug(b *bugstorage.Bug) string {
	return fmt.Sprintf("bug[%s|%s]: %s",
		p.styles.ID.Render(strconv.Itoa(b.ID)),
		p.styles.ID.Render(b.Status),
		p.styles.Text.Render(b.Description))
}

// PrintBug writes the one-line form of b.
func (p *Printer) PrintBug(b *bugstorage.Bug) {
	fmt.Fprintln(p.out, p.FormatBug(b))
	p.announce(b)
}

// PrintBugs writes each bug in order.
func (p *Printer) PrintBugs(bugs []*bugstorage.Bug) {
	for _, b := range bugs {
		p.PrintBug(b)
	}
}

// PrintDetail writes the one-line form followed by owner, priority and notes.
func (p *Printer) PrintDetail(b *bugstorage.Bug) {
	p.PrintBug(b)
	fmt.Fprintf(p.out, "  user: %s\n", b.User)
	if b.Priority != nil {
		fmt.Fprintf(p.out, "  priority: %d\n", *b.Priority)
	}
	if len(b.Notes) > 0 {
		fmt.Fprintln(p.out, "  notes:")
		for _, n := range b.Notes {
			fmt.Fprintf(p.out, "    - %s\n", n)
		}
	}
}

// Println writes an unstyled line.
func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.out, a...)
}

// Printf writes unstyled formatted text.
func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.out, format, a...)
}

// Success writes msg in the confirmation style.
func (p *Printer) Success(msg string) {
	fmt.Fprintln(p.out, p.styles.OK.Render(msg))
}

// Warn writes msg in the warning style.
func (p *Printer) Warn(msg string) {
	fmt.Fprintln(p.out, p.styles.Warn.Render(msg))
}

func (p *Printer) announce(b *bugstorage.Bug) {
	if p.speaker == nil {
		return
	}
	text := fmt.Sprintf("bug %d, %s: %s", b.ID, b.Status, b.Description)
	if err := p.speaker.Say(text); err != nil {
		p.logger.Debug("announcement failed", "bug", b.ID, "error", err)
	}
}
