package components

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"

	"github.com/colonyops/multipaste/internal/core/logging"
	"github.com/colonyops/multipaste/internal/core/styles"
)

const (
	markdownModalMaxWidth  = 90
	markdownModalMaxHeight = 32
	markdownModalMargin    = 4
	markdownModalChrome    = 7
	markdownModalPadding   = 6
)

// MarkdownDialog shows a scrollable markdown page rendered with the theme's
// glamour style.
type MarkdownDialog struct {
	title    string
	source   string
	viewport viewport.Model
	closed   bool
}

// NewMarkdownDialog renders source for a width x height screen.
func NewMarkdownDialog(title, source string, width, height int) *MarkdownDialog {
	modalWidth, modalHeight := markdownModalSize(width, height)

	vp := viewport.New(
		viewport.WithWidth(modalWidth-markdownModalPadding),
		viewport.WithHeight(max(modalHeight-markdownModalChrome, 1)),
	)

	d := &MarkdownDialog{
		title:    title,
		source:   source,
		viewport: vp,
	}
	d.viewport.SetContent(RenderMarkdown(source, modalWidth-markdownModalPadding))
	return d
}

func markdownModalSize(width, height int) (int, int) {
	return max(min(width-markdownModalMargin, markdownModalMaxWidth), 20),
		max(min(height-markdownModalMargin, markdownModalMaxHeight), 10)
}

// RenderMarkdown renders source with glamour. The raw source is returned when
// rendering fails.
func RenderMarkdown(source string, width int) string {
	log := logging.Component(logging.CmpMarkdown)

	style := styles.GlamourStyle()
	noMargin := uint(0)
	style.Document.Margin = &noMargin

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStyles(style),
		glamour.WithWordWrap(max(width, 10)),
	)
	if err != nil {
		log.Debug().Err(err).Msg("failed to create markdown renderer, showing raw content")
		return source
	}

	rendered, err := renderer.Render(source)
	if err != nil {
		log.Debug().Err(err).Msg("failed to render markdown, showing raw content")
		return source
	}

	return strings.Trim(rendered, "\n")
}

// Update scrolls the page and closes it on esc, q, or enter.
func (d *MarkdownDialog) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "esc", "q", "enter":
			d.closed = true
			return nil
		case "j", "down":
			d.viewport.ScrollDown(1)
			return nil
		case "k", "up":
			d.viewport.ScrollUp(1)
			return nil
		}
	}

	var cmd tea.Cmd
	d.viewport, cmd = d.viewport.Update(msg)
	return cmd
}

// Closed reports whether the user dismissed the dialog.
func (d *MarkdownDialog) Closed() bool { return d.closed }

// Overlay renders the dialog centered over background.
func (d *MarkdownDialog) Overlay(background string, width, height int) string {
	modalWidth, modalHeight := markdownModalSize(width, height)

	scrollInfo := ""
	if d.viewport.TotalLineCount() > d.viewport.VisibleLineCount() {
		scrollInfo = styles.TextMutedStyle.Render(
			fmt.Sprintf(" (%.0f%%)", d.viewport.ScrollPercent()*100),
		)
	}

	divider := styles.TextSurfaceStyle.Render(strings.Repeat("─", max(modalWidth-markdownModalPadding, 1)))
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.ModalTitleStyle.Render(d.title+scrollInfo),
		divider,
		d.viewport.View(),
		styles.ModalHelpStyle.Render("[j/k] scroll  [esc] close"),
	)

	modal := styles.ModalStyle.
		Width(modalWidth).
		Height(modalHeight).
		Render(content)

	return center(background, modal, width, height)
}
