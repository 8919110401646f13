package tui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/colonyops/multipaste/internal/core/styles"
)

const (
	minListWidth = 24
	chromeHeight = 3 // tab bar + spacer + status bar
)

// View renders the TUI.
func (m Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render composes the main view with the active modal and toasts.
func (m Model) render() string {
	w, h := m.size()
	mainView := m.renderMain(w, h)

	var content string
	switch {
	case m.state == stateFormInput && m.formDialog != nil:
		content = overlayCenter(mainView, styles.ModalStyle.Render(m.formDialog.View()), w, h)
	case m.state == stateConfirming:
		content = m.confirmModal.Overlay(mainView, w, h)
	case m.state == stateNotice:
		content = m.notice.Overlay(mainView, w, h)
	case m.state == stateShowingHelp && m.helpDialog != nil:
		content = m.helpDialog.Overlay(mainView, w, h)
	case m.state == stateShowingAbout && m.markdownDialog != nil:
		content = m.markdownDialog.Overlay(mainView, w, h)
	case m.state == stateShowingInfo && m.infoDialog != nil:
		content = m.infoDialog.Overlay(mainView, w, h)
	default:
		content = mainView
	}

	// Apply toast overlay on top of everything
	if m.toastController.HasToasts() {
		content = m.toastView.Overlay(content, w, h)
	}
	return content
}

func overlayCenter(background, modal string, width, height int) string {
	bgLayer := lipgloss.NewLayer(background)
	modalLayer := lipgloss.NewLayer(modal)
	x := max((width-lipgloss.Width(modal))/2, 0)
	y := max((height-lipgloss.Height(modal))/2, 0)
	modalLayer.X(x).Y(y).Z(1)
	return lipgloss.NewCompositor(bgLayer, modalLayer).Render()
}

// renderMain renders the tab bar, the cell list with its preview, and the
// status bar.
func (m Model) renderMain(w, h int) string {
	bodyH := max(h-chromeHeight, 3)
	listW, previewW := paneWidths(w)

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderCellList(listW, bodyH),
		" ",
		m.renderPreview(previewW, bodyH),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTabBar(w),
		"",
		body,
		m.renderStatusBar(w),
	)
}

func paneWidths(w int) (int, int) {
	listW := max(w*2/5, minListWidth)
	return listW, max(w-listW-1, 10)
}

func (m Model) renderTabBar(w int) string {
	parts := []string{styles.TabBrandingStyle.Render(styles.IconClipboard + " multipaste")}
	if m.svc.Dirty() {
		parts = append(parts, " "+styles.TabDirtyStyle.Render(styles.IconDirty))
	}
	parts = append(parts, " ")

	for i, t := range m.svc.Workspace().Tabs() {
		label := t.Name
		if label == "" {
			label = "(unnamed)"
		}
		if i == m.activeTab {
			parts = append(parts, styles.TabActiveStyle.Render(label))
		} else {
			parts = append(parts, styles.TabInactiveStyle.Render(label))
		}
	}

	return ansi.Truncate(lipgloss.JoinHorizontal(lipgloss.Top, parts...), w, "…")
}

func (m Model) renderCellList(w, h int) string {
	lines := make([]string, 0, h)
	switch {
	case m.state == stateFiltering:
		lines = append(lines, m.filterInput.View())
	case m.filterQuery != "":
		lines = append(lines, styles.TextMutedStyle.Render("/"+m.filterQuery))
	}

	rows := m.rows()
	t := m.currentTab()

	if len(rows) == 0 {
		empty := "No cells. Press a to add one or p to paste."
		if m.filterQuery != "" {
			empty = "No matching cells."
		}
		lines = append(lines, styles.TextMutedStyle.Render(ansi.Wordwrap(empty, w, "")))
	} else {
		avail := max(h-len(lines), 1)
		start := max(m.cursor-avail+1, 0)
		for i := start; i < len(rows) && i-start < avail; i++ {
			name := t.Cells[rows[i].index].Name
			if name == "" {
				name = "(unnamed)"
			}
			name = ansi.Truncate(name, w-2, "…")

			if i == m.cursor {
				lines = append(lines, styles.CellSelectedStyle.Render("› ")+highlightName(name, rows[i].matched, styles.CellSelectedStyle))
			} else {
				lines = append(lines, "  "+highlightName(name, rows[i].matched, styles.CellNormalStyle))
			}
		}
	}

	return lipgloss.NewStyle().Width(w).Height(h).MaxHeight(h).Render(strings.Join(lines, "\n"))
}

// previewHeight is the number of text lines visible in the preview pane.
func (m Model) previewHeight() int {
	_, h := m.size()
	return max(h-chromeHeight-4, 1)
}

// previewContent returns the selected cell's text wrapped to the preview
// width.
func (m Model) previewContent() (string, string, bool) {
	t := m.currentTab()
	idx, ok := m.selectedCell()
	if t == nil || !ok {
		return "", "", false
	}

	w, _ := m.size()
	_, previewW := paneWidths(w)
	c := t.Cells[idx]
	return c.Name, lipgloss.NewStyle().Width(max(previewW-4, 1)).Render(c.Text), true
}

// maxPreviewOffset is the largest useful scroll offset of the preview pane.
func (m Model) maxPreviewOffset() int {
	_, text, ok := m.previewContent()
	if !ok {
		return 0
	}
	return max(lipgloss.Height(text)-m.previewHeight(), 0)
}

func (m Model) renderPreview(w, h int) string {
	innerW := max(w-4, 1)
	box := styles.PreviewBoxStyle.Width(w).Height(h)

	name, text, ok := m.previewContent()
	if !ok {
		return box.Render(styles.TextMutedStyle.Render("Nothing selected"))
	}

	vp := viewport.New(
		viewport.WithWidth(innerW),
		viewport.WithHeight(m.previewHeight()),
	)
	vp.SetContent(text)
	vp.SetYOffset(m.previewOffset)

	return box.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		styles.TextPrimaryBoldStyle.Render(ansi.Truncate(name, innerW, "…")),
		styles.TextSurfaceStyle.Render(strings.Repeat("─", innerW)),
		vp.View(),
	))
}

func (m Model) renderStatusBar(w int) string {
	path := m.svc.Path()
	if path == "" {
		path = "[untitled]"
	}

	ws := m.svc.Workspace()
	cells := 0
	if t := m.currentTab(); t != nil {
		cells = t.Len()
	}

	left := fmt.Sprintf("%s %s", styles.IconCell, path)
	middle := fmt.Sprintf("tab %d/%d • %d cells", m.activeTab+1, ws.Len(), cells)
	right := "? help"

	gap := max(w-lipgloss.Width(left)-lipgloss.Width(middle)-lipgloss.Width(right)-4, 1)
	line := left + "  " + middle + strings.Repeat(" ", gap) + right
	return styles.StatusBarStyle.Render(ansi.Truncate(line, w, "…"))
}
