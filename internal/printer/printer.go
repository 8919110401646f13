// Package printer writes styled, human facing CLI output. Commands obtain a
// Printer from their context with Ctx.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/colonyops/multipaste/internal/core/styles"
)

type ctxKey struct{}

// Printer writes status lines prefixed with a styled marker.
type Printer struct {
	out io.Writer
}

// New returns a Printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{out: w}
}

// NewContext stores p in ctx.
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the Printer stored in ctx, or one that writes to stderr.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok && p != nil {
		return p
	}
	return New(os.Stderr)
}

func (p *Printer) line(marker, msg string) {
	if marker == "" {
		_, _ = fmt.Fprintln(p.out, msg)
		return
	}
	_, _ = fmt.Fprintln(p.out, marker+" "+msg)
}

// Printf writes an unmarked line.
func (p *Printer) Printf(format string, args ...any) {
	p.line("", fmt.Sprintf(format, args...))
}

// Section writes a bold heading followed by a divider.
func (p *Printer) Section(title string) {
	p.line("", styles.TextForegroundBoldStyle.Render(title))
	p.line("", styles.DividerStyle.Render("────────────────────────"))
}

// Success writes msg with a success marker.
func (p *Printer) Success(msg string) {
	p.line(styles.TextSuccessStyle.Render("✔"), msg)
}

func (p *Printer) Successf(format string, args ...any) {
	p.Success(fmt.Sprintf(format, args...))
}

func (p *Printer) Infof(format string, args ...any) {
	p.line(styles.TextPrimaryBoldStyle.Render("•"), fmt.Sprintf(format, args...))
}

func (p *Printer) Warnf(format string, args ...any) {
	p.line(styles.TextWarningStyle.Render("!"), fmt.Sprintf(format, args...))
}

func (p *Printer) Errorf(format string, args ...any) {
	p.line(styles.TextErrorStyle.Render("✘"), fmt.Sprintf(format, args...))
}

// Cancelled reports an aborted interactive prompt.
func (p *Printer) Cancelled() {
	p.line(styles.TextMutedStyle.Render("-"), "cancelled")
}
