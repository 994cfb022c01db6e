// Package printer writes styled, user-facing messages. A *Printer travels in
// the context so workflows and boundary adapters report to the same output.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/colonyops/probar/internal/core/styles"
)

type ctxKey struct{}

// Printer renders informational, warning, error and success lines to w.
type Printer struct {
	w     io.Writer
	plain bool
}

// New creates a Printer writing styled output to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// NewPlain creates a Printer that writes without styling or symbols, used
// in tests and when output is not a terminal.
func NewPlain(w io.Writer) *Printer {
	return &Printer{w: w, plain: true}
}

// NewContext returns a copy of ctx carrying p.
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the Printer stored in ctx, or one writing to stderr.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok && p != nil {
		return p
	}
	return New(os.Stderr)
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.w
}

func (p *Printer) line(symbol string, render func(...string) string, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if p.plain {
		_, _ = fmt.Fprintln(p.w, msg)
		return
	}
	if symbol != "" {
		msg = symbol + " " + msg
	}
	_, _ = fmt.Fprintln(p.w, render(msg))
}

// Printf writes an unstyled line.
func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.w, format+"\n", args...)
}

// Infof writes an informational line.
func (p *Printer) Infof(format string, args ...any) {
	p.line("•", styles.InfoStyle.Render, format, args...)
}

// Warnf writes a warning line. Used for cancellations and degraded paths.
func (p *Printer) Warnf(format string, args ...any) {
	p.line("!", styles.WarningStyle.Render, format, args...)
}

// Errorf writes an error line.
func (p *Printer) Errorf(format string, args ...any) {
	p.line("✗", styles.ErrorStyle.Render, format, args...)
}

// Successf writes a success line.
func (p *Printer) Successf(format string, args ...any) {
	p.line("✓", styles.SuccessStyle.Render, format, args...)
}

// Success writes a success title followed by a muted detail.
func (p *Printer) Success(title, detail string) {
	if p.plain {
		_, _ = fmt.Fprintf(p.w, "%s: %s\n", title, detail)
		return
	}
	_, _ = fmt.Fprintf(p.w, "%s %s\n", styles.SuccessStyle.Render("✓ "+title), styles.MutedStyle.Render(detail))
}

// Section writes a bold section heading.
func (p *Printer) Section(title string) {
	if p.plain {
		_, _ = fmt.Fprintln(p.w, title)
		return
	}
	_, _ = fmt.Fprintln(p.w, styles.TitleStyle.Render(title))
}

// Item writes one numbered entry of a list.
func (p *Printer) Item(n int, text string) {
	if p.plain {
		_, _ = fmt.Fprintf(p.w, "%d: %s\n", n, text)
		return
	}
	_, _ = fmt.Fprintf(p.w, "%s %s\n", styles.MutedStyle.Render(fmt.Sprintf("%d:", n)), text)
}
