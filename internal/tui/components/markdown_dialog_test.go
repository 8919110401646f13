package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colonyops/multipaste/pkg/tuitest"
)

func TestMarkdownDialog(t *testing.T) {
	src := "# About\n\nKeep **snippets** in tabs.\n\n" + strings.Repeat("- line\n", 60)
	d := NewMarkdownDialog("About multipaste", src, 100, 30)

	before := tuitest.StripANSI(d.Overlay("", 100, 30))
	assert.Contains(t, before, "About multipaste")
	assert.Contains(t, before, "snippets")
	assert.NotContains(t, before, "**snippets**")

	d.Update(tuitest.KeyPress('j'))
	after := d.Overlay("", 100, 30)
	assert.NotEqual(t, before, tuitest.StripANSI(after))

	assert.False(t, d.Closed())
	d.Update(tuitest.KeyEsc())
	assert.True(t, d.Closed())
}

func TestRenderMarkdown(t *testing.T) {
	out := tuitest.StripANSI(RenderMarkdown("## Keys\n\n`enter` copies", 60))
	assert.Contains(t, out, "Keys")
	assert.Contains(t, out, "enter")
}
