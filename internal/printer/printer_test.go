package printer

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestPrinter_Lines(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	p.Successf("saved %d tabs", 2)
	p.Infof("library: %s", "/tmp/docs")
	p.Warnf("count mismatch")
	p.Errorf("boom")
	p.Printf("  plain")
	p.Cancelled()

	want := "✔ saved 2 tabs\n" +
		"• library: /tmp/docs\n" +
		"! count mismatch\n" +
		"✘ boom\n" +
		"  plain\n" +
		"- cancelled\n"
	assert.Equal(t, want, ansi.Strip(buf.String()))
}

func TestCtx(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	ctx := NewContext(context.Background(), p)
	assert.Same(t, p, Ctx(ctx))

	assert.NotNil(t, Ctx(context.Background()))
}
