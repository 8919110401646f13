package tui

import (
	"errors"
	"path/filepath"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/multipaste/internal/app"
	"github.com/colonyops/multipaste/internal/core/document"
	"github.com/colonyops/multipaste/internal/core/notify"
	"github.com/colonyops/multipaste/internal/store/jsonfile"
	"github.com/colonyops/multipaste/internal/tui/components"
)

// addedDefaultTTL is how long the "Added Default Tab" notice stays visible.
const addedDefaultTTL = 3 * time.Second

const exampleSourcePrefix = "example:"

// --- Workspace edits ---

func (m Model) closeTab(tabID string) (tea.Model, tea.Cmd) {
	idx := m.svc.Workspace().IndexOf(tabID)
	if idx < 0 {
		return m, nil
	}

	addedDefault, err := m.svc.RemoveTab(idx)
	if err != nil {
		return m, m.notifyError("close tab: %v", err)
	}

	if m.activeTab > idx {
		m.activeTab--
	}
	m.clampSelection()
	m.clearFilter()

	if addedDefault {
		m.notifyBus.Notice(addedDefaultTTL, "Added Default Tab")
		return m, m.ensureToastTick()
	}
	return m, nil
}

func (m Model) deleteCell(t target) (tea.Model, tea.Cmd) {
	tabIdx := m.svc.Workspace().IndexOf(t.tabID)
	if tabIdx < 0 {
		return m, nil
	}
	if err := m.svc.RemoveCell(tabIdx, t.cell); err != nil {
		return m, m.notifyError("delete cell: %v", err)
	}
	m.clampSelection()
	return m, nil
}

func (m Model) moveTab(delta int) (tea.Model, tea.Cmd) {
	to := m.activeTab + delta
	if to < 0 || to >= m.svc.Workspace().Len() {
		return m, nil
	}
	if err := m.svc.MoveTab(m.activeTab, to); err != nil {
		return m, m.notifyError("move tab: %v", err)
	}
	m.activeTab = to
	return m, nil
}

func (m Model) moveCell(delta int) (tea.Model, tea.Cmd) {
	if m.filterQuery != "" {
		m.notifyBus.Warnf("clear the filter to reorder cells")
		return m, m.ensureToastTick()
	}

	idx, ok := m.selectedCell()
	if !ok {
		return m, nil
	}
	to := idx + delta
	if to < 0 || to >= m.currentTab().Len() {
		return m, nil
	}
	if err := m.svc.MoveCell(m.activeTab, idx, to); err != nil {
		return m, m.notifyError("move cell: %v", err)
	}
	m.cursor = to
	return m, nil
}

// --- Commands ---

func (m Model) save() (tea.Model, tea.Cmd) {
	if m.svc.Path() == "" {
		return m.openPathForm(formSaveAs, nil)
	}
	return m, m.saveCmd(m.svc.Path())
}

// saveCmd snapshots the workspace now and writes the snapshot off the update
// loop.
func (m Model) saveCmd(path string) tea.Cmd {
	svc, ctx := m.svc, m.ctx()
	doc, rev := svc.Snapshot()
	watcher := m.opts.Watcher
	return func() tea.Msg {
		if watcher != nil {
			watcher.Mute(path)
			defer watcher.Mute(path)
		}
		err := svc.Write(ctx, path, doc)
		return documentSavedMsg{path: path, rev: rev, err: err}
	}
}

func (m Model) loadCmd(mode loadMode, path string) tea.Cmd {
	svc, ctx := m.svc, m.ctx()
	return func() tea.Msg {
		res, err := svc.Load(ctx, path)
		return documentLoadedMsg{mode: mode, source: path, result: res, err: err}
	}
}

func (m Model) loadExampleCmd(name string) tea.Cmd {
	svc, ctx := m.svc, m.ctx()
	return func() tea.Msg {
		res, err := svc.LoadExample(ctx, name)
		return documentLoadedMsg{mode: loadImport, source: exampleSourcePrefix + name, result: res, err: err}
	}
}

func (m Model) copySelected() (tea.Model, tea.Cmd) {
	t := m.currentTab()
	idx, ok := m.selectedCell()
	if t == nil || !ok {
		return m, nil
	}

	c := t.Cells[idx]
	svc, ctx := m.svc, m.ctx()
	return m, func() tea.Msg {
		return cellCopiedMsg{name: c.Name, err: svc.CopyText(ctx, c.Name, c.Text)}
	}
}

func (m Model) pasteCmd(tabID string) tea.Cmd {
	svc, ctx := m.svc, m.ctx()
	return func() tea.Msg {
		text, err := svc.PasteText(ctx)
		return clipboardPastedMsg{tabID: tabID, text: text, err: err}
	}
}

// --- Command results ---

func (m Model) handleDocumentLoaded(msg documentLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if msg.mode == loadReload {
			return m, m.notifyError("reload %s: %v", displayName(msg.source), msg.err)
		}
		return m.showError("Load Document", loadErrorMessage(msg.err))
	}

	var report app.LoadReport
	switch msg.mode {
	case loadOpen:
		report = m.svc.ApplyOpen(m.ctx(), msg.source, msg.result)
		m.selectTab(0)
		m.watchDocument(msg.source)
	case loadReload:
		if m.svc.Dirty() || !samePath(m.svc.Path(), msg.source) {
			return m, nil
		}
		active := m.activeTab
		report = m.svc.ApplyOpen(m.ctx(), msg.source, msg.result)
		m.activeTab = min(active, m.svc.Workspace().Len()-1)
		m.clampSelection()
		m.notifyBus.Infof("Reloaded %s from disk", displayName(msg.source))
		return m, m.ensureToastTick()
	case loadImport:
		before := m.svc.Workspace().Len()
		report = m.svc.ApplyImport(m.ctx(), msg.source, msg.result)
		if report.Tabs > 0 {
			m.selectTab(before)
		}
	}

	m.notifyBus.Infof("Loaded %s: %d tabs, %d cells", displayName(msg.source), report.Tabs, report.Cells)
	for _, w := range report.Warnings {
		m.notifyBus.Warnf("%s", w)
	}
	if report.Dropped > 0 {
		m.notifyBus.Warnf("skipped %d cells that had no tab", report.Dropped)
	}
	if report.AddedDefault {
		m.notifyBus.Notice(addedDefaultTTL, "Added Default Tab")
	}
	return m, m.ensureToastTick()
}

func (m Model) handleDocumentSaved(msg documentSavedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		return m.showError("Save Document", msg.err.Error())
	}
	if m.svc.MarkSaved(msg.path, msg.rev) {
		m.watchDocument(msg.path)
	}
	return m, m.notifyInfo("Saved %s", displayName(msg.path))
}

func (m Model) handleCellCopied(msg cellCopiedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		return m, m.notifyError("%v", msg.err)
	}
	return m, m.notifyInfo("Copied %q", msg.name)
}

func (m Model) handleClipboardPasted(msg clipboardPastedMsg) (tea.Model, tea.Cmd) {
	if errors.Is(msg.err, app.ErrEmptyClipboard) {
		m.notifyBus.Warnf("clipboard is empty")
		return m, m.ensureToastTick()
	}
	if msg.err != nil {
		return m, m.notifyError("%v", msg.err)
	}

	tabIdx := m.svc.Workspace().IndexOf(msg.tabID)
	if tabIdx < 0 {
		return m, m.notifyError("tab no longer exists")
	}

	idx, err := m.svc.AddCellFromText(tabIdx, "", msg.text)
	if err != nil {
		return m, m.notifyError("paste: %v", err)
	}
	t, _ := m.svc.Workspace().Tab(tabIdx)
	name := t.Cells[idx].Name
	if tabIdx == m.activeTab && m.state != stateFiltering {
		m.clearFilter()
		m.selectCell(idx)
	}
	return m, m.notifyInfo("Pasted %q", name)
}

// showError opens a blocking error notice. When another modal is open the
// error is shown as a toast instead.
func (m Model) showError(title, message string) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateNormal, stateFiltering:
		m.filterInput.Blur()
		m.notice = components.NewErrorModal(title, message)
		m.state = stateNotice
		return m, nil
	}
	return m, m.notifyError("%s: %s", title, message)
}

// loadErrorMessage explains a failed load by error kind.
func loadErrorMessage(err error) string {
	switch {
	case errors.Is(err, jsonfile.ErrFileOpen):
		return "Not able to open the JSON file.\n\n" + err.Error()
	case errors.Is(err, document.ErrJSONSyntax):
		return "The JSON file has syntax errors, please check it.\n\n" + err.Error()
	case errors.Is(err, document.ErrMalformedDocument):
		return "The file is valid JSON but not a multipaste document.\n\n" + err.Error()
	}
	return err.Error()
}

func displayName(source string) string {
	if strings.HasPrefix(source, exampleSourcePrefix) {
		return source
	}
	return filepath.Base(source)
}

// --- Info dialogs ---

func (m *Model) showDocumentInfo() {
	summary := components.DocumentSummary{
		Path:   m.svc.Path(),
		Author: m.svc.Author(),
		Dirty:  m.svc.Dirty(),
	}
	for i, t := range m.svc.Workspace().Tabs() {
		summary.Tabs = append(summary.Tabs, components.TabSummary{Name: t.Name, Cells: t.Len(), Active: i == m.activeTab})
	}

	w, h := m.size()
	m.infoDialog = components.NewDocumentInfoDialog(summary, w, h)
	m.state = stateShowingInfo
}

func (m *Model) showNotifications() {
	history, err := m.notifyBus.History()
	if err != nil {
		m.notifyBus.Errorf("notification history: %v", err)
		return
	}

	rows := make([]components.InfoRow, 0, len(history))
	for _, n := range history {
		tone := components.ToneNormal
		switch n.Level {
		case notify.LevelError:
			tone = components.ToneError
		case notify.LevelWarning:
			tone = components.ToneWarn
		}
		rows = append(rows, components.InfoRow{
			Key:   n.CreatedAt.Format(time.TimeOnly),
			Value: n.Message,
			Tone:  tone,
		})
	}

	w, h := m.size()
	section := components.InfoSection{Heading: "Recent", Rows: rows, Empty: "No notifications yet."}
	m.infoDialog = components.NewInfoDialog("Notifications", []components.InfoSection{section}, w, h)
	m.state = stateShowingInfo
}
