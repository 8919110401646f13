package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"

	"github.com/colonyops/multipaste/internal/examples"
	"github.com/colonyops/multipaste/internal/tui/components"
	"github.com/colonyops/multipaste/internal/tui/components/form"
)

const maxNameLength = 64

// confirmAction is the operation run when a confirmation is accepted.
type confirmAction int

const (
	confirmNone confirmAction = iota
	confirmCloseTab
	confirmDeleteCell
	confirmDiscardOpen
	confirmQuit
)

// formKind identifies which form is open.
type formKind int

const (
	formAddCell formKind = iota
	formEditCell
	formRenameTab
	formSaveAs
	formOpen
	formImport
	formExample
)

func (m Model) confirm(action confirmAction, title, message string) (tea.Model, tea.Cmd) {
	m.confirmModal = components.NewConfirmModal(title, message)
	m.confirmAction = action
	m.state = stateConfirming
	return m, nil
}

func (m Model) handleConfirmKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.confirmModal, _ = m.confirmModal.Update(msg)

	switch {
	case m.confirmModal.Confirmed():
		action := m.confirmAction
		m.confirmAction = confirmNone
		m.state = stateNormal
		return m.runConfirmed(action)
	case m.confirmModal.Cancelled():
		m.confirmAction = confirmNone
		m.state = stateNormal
	}
	return m, nil
}

func (m Model) runConfirmed(action confirmAction) (tea.Model, tea.Cmd) {
	switch action {
	case confirmCloseTab:
		return m.closeTab(m.target.tabID)
	case confirmDeleteCell:
		return m.deleteCell(m.target)
	case confirmDiscardOpen:
		return m.requestPathForm(formOpen)
	case confirmQuit:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) showForm(kind formKind, dialog *form.Dialog) (tea.Model, tea.Cmd) {
	m.formDialog = dialog
	m.formKind = kind
	m.state = stateFormInput
	return m, dialog.Init()
}

func (m Model) handleFormKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.formDialog, cmd = m.formDialog.Update(msg)

	switch {
	case m.formDialog.Submitted():
		values := m.formDialog.FormValues()
		m.formDialog = nil
		m.state = stateNormal
		return m.submitForm(values)
	case m.formDialog.Cancelled():
		m.formDialog = nil
		m.state = stateNormal
		return m, nil
	}
	return m, cmd
}

func (m Model) openCellForm(kind formKind) (tea.Model, tea.Cmd) {
	t := m.currentTab()
	if t == nil {
		return m, nil
	}

	title := "Add Cell"
	var name, text string
	m.target = target{tabID: t.ID, cell: -1}

	if kind == formEditCell {
		idx, ok := m.selectedCell()
		if !ok {
			return m, nil
		}
		title = "Edit Cell"
		name, text = t.Cells[idx].Name, t.Cells[idx].Text
		m.target.cell = idx
	}

	w, h := m.size()
	nameField := form.NewTextField("Name", "cell name", name).
		WithValidation(form.FieldValidation{Required: true, MaxLength: maxNameLength})
	nameField.SetWidth(min(w-16, 72))
	textField := form.NewTextAreaField("Text", "text copied by this cell", text)
	textField.SetSize(min(w-16, 72), min(max(h-18, 3), 12))

	dialog := form.NewDialog(title, []form.Field{nameField, textField}, []string{"name", "text"})
	return m.showForm(kind, dialog)
}

func (m Model) openRenameTabForm() (tea.Model, tea.Cmd) {
	t := m.currentTab()
	if t == nil {
		return m, nil
	}
	m.target = target{tabID: t.ID}

	nameField := form.NewTextField("Name", "tab name", t.Name).
		WithValidation(form.FieldValidation{Required: true, MaxLength: maxNameLength})
	return m.showForm(formRenameTab, form.NewDialog("Rename Tab", []form.Field{nameField}, []string{"name"}))
}

// requestPathForm lists the recent documents off the update loop before the
// open or import form is shown.
func (m Model) requestPathForm(kind formKind) (tea.Model, tea.Cmd) {
	svc, ctx := m.svc, m.ctx()
	return m, func() tea.Msg {
		paths, err := svc.Recent(ctx)
		return recentListedMsg{kind: kind, paths: paths, err: err}
	}
}

func (m Model) handleRecentListed(msg recentListedMsg) (tea.Model, tea.Cmd) {
	if m.state != stateNormal {
		return m, nil
	}
	if msg.err != nil {
		log.Warn().Err(msg.err).Msg("list recent documents")
	}
	return m.openPathForm(msg.kind, msg.paths)
}

// openPathForm asks for a document path. Recent documents other than the
// current one are offered in a list above the path input.
func (m Model) openPathForm(kind formKind, recentPaths []string) (tea.Model, tea.Cmd) {
	var title, defaultVal string
	switch kind {
	case formSaveAs:
		title, defaultVal = "Save Document", m.svc.Path()
	case formOpen:
		title = "Open Document"
	case formImport:
		title = "Import Document"
	}

	var options []form.Option
	for _, p := range recentPaths {
		if p == m.svc.Path() {
			continue
		}
		options = append(options, form.Option{Value: p, Label: filepath.Base(p), Detail: filepath.Dir(p)})
	}

	pathField := form.NewTextField("Path", "document name or path/to/file.json", defaultVal).
		WithValidation(form.FieldValidation{Required: len(options) == 0})

	if len(options) == 0 {
		return m.showForm(kind, form.NewDialog(title, []form.Field{pathField}, []string{"path"}))
	}

	recentField := form.NewSelectFormField("Recent", options, "")
	return m.showForm(kind, form.NewDialog(title, []form.Field{recentField, pathField}, []string{"recent", "path"}))
}

func (m Model) openExampleForm() (tea.Model, tea.Cmd) {
	all := examples.List()
	options := make([]form.Option, 0, len(all))
	for _, e := range all {
		options = append(options, form.Option{Value: e.Name, Label: e.Title, Detail: e.Category})
	}

	field := form.NewSelectFormField("Example", options, "")
	return m.showForm(formExample, form.NewDialog("Load Example", []form.Field{field}, []string{"example"}))
}

func (m Model) submitForm(values map[string]string) (tea.Model, tea.Cmd) {
	name := strings.TrimSpace(values["name"])

	switch m.formKind {
	case formAddCell, formEditCell, formRenameTab:
		tabIdx := m.svc.Workspace().IndexOf(m.target.tabID)
		if tabIdx < 0 {
			return m, m.notifyError("tab no longer exists")
		}
		return m.applyEdit(tabIdx, name, values["text"])
	case formSaveAs:
		return m, m.saveCmd(m.resolvePath(values["path"]))
	case formOpen, formImport:
		path := strings.TrimSpace(values["path"])
		if path == "" {
			path = values["recent"]
		}
		if path == "" {
			return m, nil
		}
		mode := loadOpen
		if m.formKind == formImport {
			mode = loadImport
		}
		return m, m.loadCmd(mode, m.resolvePath(path))
	case formExample:
		if values["example"] == "" {
			return m, nil
		}
		return m, m.loadExampleCmd(values["example"])
	}
	return m, nil
}

func (m Model) applyEdit(tabIdx int, name, text string) (tea.Model, tea.Cmd) {
	switch m.formKind {
	case formAddCell:
		idx, err := m.svc.AddCell(tabIdx, name, text)
		if err != nil {
			return m, m.notifyError("add cell: %v", err)
		}
		if tabIdx == m.activeTab {
			m.clearFilter()
			m.selectCell(idx)
		}
	case formEditCell:
		if err := m.svc.UpdateCell(tabIdx, m.target.cell, name, text); err != nil {
			return m, m.notifyError("edit cell: %v", err)
		}
	case formRenameTab:
		if err := m.svc.RenameTab(tabIdx, name); err != nil {
			return m, m.notifyError("rename tab: %v", err)
		}
	}
	return m, nil
}

func (m Model) resolvePath(input string) string {
	return m.opts.ResolvePath(strings.TrimSpace(input))
}

func (m Model) requestCloseTab() (tea.Model, tea.Cmd) {
	t := m.currentTab()
	if t == nil {
		return m, nil
	}
	m.target = target{tabID: t.ID}

	if m.opts.ConfirmClose {
		return m.confirm(confirmCloseTab, "Delete Confirmation", fmt.Sprintf("Delete tab %q and its %d cells?", t.Name, t.Len()))
	}
	return m.closeTab(t.ID)
}

func (m Model) requestDeleteCell() (tea.Model, tea.Cmd) {
	t := m.currentTab()
	idx, ok := m.selectedCell()
	if t == nil || !ok {
		return m, nil
	}
	m.target = target{tabID: t.ID, cell: idx}

	if m.opts.ConfirmClose {
		return m.confirm(confirmDeleteCell, "Delete Confirmation", fmt.Sprintf("Delete cell %q?", t.Cells[idx].Name))
	}
	return m.deleteCell(m.target)
}
