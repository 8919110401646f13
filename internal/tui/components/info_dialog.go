package components

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/colonyops/multipaste/internal/core/styles"
)

const (
	infoMaxHeight = 30
	infoMargin    = 4
	infoChrome    = 6 // title + divider + help + border
	infoMinWidth  = 50
	infoHelp      = "j/k scroll • esc close"

	cellBarWidth = 12
)

// Tone colors the value of an info row.
type Tone int

const (
	ToneNormal Tone = iota
	ToneOK
	ToneWarn
	ToneError
)

// InfoRow is one key/value line. Keys within a section are aligned.
type InfoRow struct {
	Key   string
	Value string
	Tone  Tone
}

// InfoSection groups rows under a heading. Empty is shown when there are no
// rows.
type InfoSection struct {
	Heading string
	Rows    []InfoRow
	Empty   string
}

// TabSummary describes one tab in the document info dialog.
type TabSummary struct {
	Name   string
	Cells  int
	Active bool
}

// DocumentSummary is the data shown by NewDocumentInfoDialog.
type DocumentSummary struct {
	Path   string
	Author string
	Dirty  bool
	Tabs   []TabSummary
}

// InfoDialog is a scrollable read-only dialog of key/value sections.
type InfoDialog struct {
	title    string
	viewport viewport.Model
}

func infoSize(width, height int) (int, int) {
	w := min(max(width*2/3, infoMinWidth), width-infoMargin)
	h := min(height-infoMargin, infoMaxHeight)
	return w, h
}

// NewInfoDialog lays out sections for a terminal of the given size.
func NewInfoDialog(title string, sections []InfoSection, width, height int) *InfoDialog {
	w, h := infoSize(width, height)
	// border and padding take four columns
	inner := max(w-4, 1)

	vp := viewport.New(viewport.WithWidth(inner), viewport.WithHeight(max(h-infoChrome, 1)))
	vp.SetContent(renderSections(sections, inner))
	return &InfoDialog{title: title, viewport: vp}
}

// NewDocumentInfoDialog shows the file, save state and a per-tab cell
// histogram of the open document.
func NewDocumentInfoDialog(doc DocumentSummary, width, height int) *InfoDialog {
	path := doc.Path
	if path == "" {
		path = "(untitled)"
	}
	state := InfoRow{Key: "State", Value: "saved", Tone: ToneOK}
	if doc.Dirty {
		state = InfoRow{Key: "State", Value: "unsaved changes", Tone: ToneWarn}
	}

	total, most := 0, 0
	for _, t := range doc.Tabs {
		total += t.Cells
		most = max(most, t.Cells)
	}

	tabs := make([]InfoRow, 0, len(doc.Tabs))
	for _, t := range doc.Tabs {
		name := "  " + t.Name
		if t.Active {
			name = "▸ " + t.Name
		}
		tabs = append(tabs, InfoRow{Key: name, Value: cellBar(t.Cells, most)})
	}

	sections := []InfoSection{
		{
			Heading: "Document",
			Rows: []InfoRow{
				{Key: "File", Value: path},
				{Key: "Author", Value: doc.Author},
				state,
				{Key: "Totals", Value: fmt.Sprintf("%d tabs, %d cells", len(doc.Tabs), total)},
			},
		},
		{Heading: "Tabs", Rows: tabs, Empty: "No tabs."},
	}
	return NewInfoDialog("Document Info", sections, width, height)
}

// cellBar renders n relative to the largest tab as a fixed width bar.
func cellBar(n, most int) string {
	filled := 0
	if most > 0 {
		filled = (n*cellBarWidth + most - 1) / most
	}
	noun := "cells"
	if n == 1 {
		noun = "cell"
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", cellBarWidth-filled) + fmt.Sprintf(" %d %s", n, noun)
}

func renderSections(sections []InfoSection, width int) string {
	rule := styles.TextSurfaceStyle.Render(strings.Repeat("─", max(width-2, 1)))

	var lines []string
	for i, s := range sections {
		if i > 0 {
			lines = append(lines, "")
		}
		if s.Heading != "" {
			lines = append(lines, styles.HelpDialogSectionStyle.Render(s.Heading), rule)
		}
		if len(s.Rows) == 0 && s.Empty != "" {
			lines = append(lines, styles.TextMutedStyle.Render(s.Empty))
			continue
		}

		keyWidth := 0
		for _, r := range s.Rows {
			keyWidth = max(keyWidth, lipgloss.Width(r.Key))
		}
		for _, r := range s.Rows {
			lines = append(lines, renderRow(r, keyWidth, width))
		}
	}
	return strings.Join(lines, "\n")
}

func renderRow(r InfoRow, keyWidth, width int) string {
	key := r.Key + strings.Repeat(" ", keyWidth-lipgloss.Width(r.Key))
	room := max(width-keyWidth-4, 8)
	value := ansi.Truncate(r.Value, room, "…")

	icon := "  "
	switch r.Tone {
	case ToneOK:
		icon = styles.TextSuccessStyle.Render("✔") + " "
		value = styles.TextSuccessStyle.Render(value)
	case ToneWarn:
		icon = styles.TextWarningStyle.Render("●") + " "
		value = styles.TextWarningStyle.Render(value)
	case ToneError:
		icon = styles.TextErrorStyle.Render("✘") + " "
		value = styles.TextErrorStyle.Render(value)
	default:
		value = styles.TextMutedStyle.Render(value)
	}
	return icon + styles.TextForegroundBoldStyle.Render(key) + "  " + value
}

// HandleKey scrolls on j/k and reports whether the key closes the dialog.
func (d *InfoDialog) HandleKey(key string) (closed bool) {
	switch key {
	case "j", "down":
		d.viewport.ScrollDown(1)
	case "k", "up":
		d.viewport.ScrollUp(1)
	case "esc", "q", "enter":
		return true
	}
	return false
}

// Overlay renders the dialog centered over background.
func (d *InfoDialog) Overlay(background string, width, height int) string {
	w, h := infoSize(width, height)

	title := d.title
	if d.viewport.TotalLineCount() > d.viewport.VisibleLineCount() {
		title += styles.TextMutedStyle.Render(fmt.Sprintf(" (%.0f%%)", d.viewport.ScrollPercent()*100))
	}

	body := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.ModalTitleStyle.Render(title),
		styles.TextSurfaceStyle.Render(strings.Repeat("─", max(w-6, 1))),
		d.viewport.View(),
		styles.ModalHelpStyle.Render(infoHelp),
	)
	return center(background, styles.ModalStyle.Width(w).Height(h).Render(body), width, height)
}
