package components

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colonyops/multipaste/pkg/tuitest"
)

func TestNewDocumentInfoDialog(t *testing.T) {
	d := NewDocumentInfoDialog(DocumentSummary{
		Path:   "/tmp/snippets.json",
		Author: "multipaste",
		Dirty:  true,
		Tabs: []TabSummary{
			{Name: "Work", Cells: 4, Active: true},
			{Name: "Shell commands", Cells: 1},
			{Name: "Empty", Cells: 0},
		},
	}, 120, 40)

	out := tuitest.StripANSI(d.Overlay("", 120, 40))
	assert.Contains(t, out, "Document Info")
	assert.Contains(t, out, "/tmp/snippets.json")
	assert.Contains(t, out, "● State")
	assert.Contains(t, out, "unsaved changes")
	assert.Contains(t, out, "3 tabs, 5 cells")
	assert.Contains(t, out, "▸ Work            ████████████ 4 cells")
	assert.Contains(t, out, "  Shell commands  ███░░░░░░░░░ 1 cell")
	assert.Contains(t, out, "  Empty           ░░░░░░░░░░░░ 0 cells")
}

func TestNewDocumentInfoDialog_Untitled(t *testing.T) {
	d := NewDocumentInfoDialog(DocumentSummary{Author: "me"}, 80, 30)

	out := tuitest.StripANSI(d.Overlay("", 80, 30))
	assert.Contains(t, out, "(untitled)")
	assert.Contains(t, out, "✔ State")
	assert.Contains(t, out, "No tabs.")
}

func TestCellBar(t *testing.T) {
	tests := []struct {
		n, most int
		want    string
	}{
		{n: 0, most: 0, want: "░░░░░░░░░░░░ 0 cells"},
		{n: 3, most: 3, want: "████████████ 3 cells"},
		{n: 1, most: 2, want: "██████░░░░░░ 1 cell"},
		{n: 1, most: 100, want: "█░░░░░░░░░░░ 1 cell"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d_of_%d", tt.n, tt.most), func(t *testing.T) {
			assert.Equal(t, tt.want, cellBar(tt.n, tt.most))
		})
	}
}

func TestInfoDialog_TruncatesLongValues(t *testing.T) {
	long := "/home/user/" + strings.Repeat("nested/", 30) + "doc.json"
	d := NewInfoDialog("Info", []InfoSection{{Rows: []InfoRow{{Key: "File", Value: long}}}}, 80, 24)

	out := tuitest.StripANSI(d.Overlay("", 80, 24))
	assert.NotContains(t, out, "doc.json")
	assert.Contains(t, out, "…")
}

func TestInfoDialog_ScrollAndKeys(t *testing.T) {
	rows := make([]InfoRow, 0, 50)
	for i := range 50 {
		rows = append(rows, InfoRow{Key: fmt.Sprintf("%02d:00:00", i), Value: "Copied \"Greeting\""})
	}
	d := NewInfoDialog("Notifications", []InfoSection{{Heading: "Recent", Rows: rows}}, 70, 18)

	before := d.Overlay("", 70, 18)
	assert.Contains(t, tuitest.StripANSI(before), "Notifications (0%)")

	assert.False(t, d.HandleKey("j"))
	assert.NotEqual(t, before, d.Overlay("", 70, 18))

	assert.False(t, d.HandleKey("k"))
	assert.Equal(t, before, d.Overlay("", 70, 18))

	assert.True(t, d.HandleKey("esc"))
	assert.True(t, d.HandleKey("q"))
}
