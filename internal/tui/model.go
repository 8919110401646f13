package tui

import (
	"context"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/multipaste/internal/app"
	"github.com/colonyops/multipaste/internal/core/logging"
	"github.com/colonyops/multipaste/internal/core/notify"
	"github.com/colonyops/multipaste/internal/core/styles"
	"github.com/colonyops/multipaste/internal/tui/components"
	"github.com/colonyops/multipaste/internal/tui/components/form"
	tuinotify "github.com/colonyops/multipaste/internal/tui/notify"
)

// UIState represents the current state of the TUI.
type UIState int

const (
	stateNormal UIState = iota
	stateFiltering
	stateConfirming
	stateFormInput
	stateNotice
	stateShowingHelp
	stateShowingAbout
	stateShowingInfo
)

// Options configures the TUI behavior.
type Options struct {
	ConfirmClose  bool                // ask before closing a tab or deleting a cell
	ResolvePath   func(string) string // maps a typed document name to a file path
	Notifications notify.Store        // notification history (optional)
	Warnings      []string            // startup warnings to display as toasts
	Watcher       DocumentWatcher     // reports external changes to the open document (optional)
}

// target identifies the tab and cell a pending confirmation or form acts on.
type target struct {
	tabID string
	cell  int
}

// Model is the main Bubble Tea model for the TUI.
type Model struct {
	svc      *app.Service
	opts     Options
	keys     KeyMap
	state    UIState
	width    int
	height   int
	quitting bool

	// Selection
	activeTab     int
	cursor        int
	previewOffset int

	// Filtering
	filterInput textinput.Model
	filterQuery string

	// Modals
	confirmModal   components.ConfirmModal
	confirmAction  confirmAction
	formDialog     *form.Dialog
	formKind       formKind
	target         target
	notice         components.NoticeModal
	helpDialog     *components.HelpDialog
	markdownDialog *components.MarkdownDialog
	infoDialog     *components.InfoDialog

	// Notifications
	notifyBus       *tuinotify.Bus
	toastController *ToastController
	toastView       *ToastView
}

// New creates a TUI model over the workspace owned by svc.
func New(svc *app.Service, opts Options) Model {
	if opts.ResolvePath == nil {
		opts.ResolvePath = func(s string) string { return s }
	}

	filterInput := textinput.New()
	filterInput.Prompt = "/"
	filterStyles := textinput.DefaultStyles(true)
	filterStyles.Focused.Prompt = styles.TextPrimaryStyle
	filterStyles.Cursor.Color = styles.ColorPrimary
	filterInput.SetStyles(filterStyles)

	notifyBus := tuinotify.NewBus(opts.Notifications)
	toastCtrl := NewToastController()
	toastView := NewToastView(toastCtrl)

	notifyBus.Subscribe(func(n notify.Notification) {
		toastCtrl.Push(n)
	})

	return Model{
		svc:             svc,
		opts:            opts,
		keys:            DefaultKeyMap(),
		filterInput:     filterInput,
		notifyBus:       notifyBus,
		toastController: toastCtrl,
		toastView:       toastView,
	}
}

// Init publishes startup warnings and starts watching the open document.
func (m Model) Init() tea.Cmd {
	for _, w := range m.opts.Warnings {
		m.notifyBus.Warnf("%s", w)
	}

	m.watchDocument(m.svc.Path())
	return tea.Batch(m.ensureToastTick(), m.waitForChange())
}

// Update handles incoming messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	// Timers
	case toastTickMsg:
		return m.handleToastTick(msg)

	// Command results
	case documentLoadedMsg:
		return m.handleDocumentLoaded(msg)
	case documentSavedMsg:
		return m.handleDocumentSaved(msg)
	case cellCopiedMsg:
		return m.handleCellCopied(msg)
	case clipboardPastedMsg:
		return m.handleClipboardPasted(msg)
	case recentListedMsg:
		return m.handleRecentListed(msg)
	case documentChangedMsg:
		return m.handleDocumentChanged(msg)

	// Notifications
	case notificationMsg:
		return m.handleNotification(msg)

	// Input
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	return m.handleFallthrough(msg)
}

// handleFallthrough forwards unhandled messages, such as cursor blinks, to the
// focused input.
func (m Model) handleFallthrough(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.state {
	case stateFormInput:
		if m.formDialog != nil {
			m.formDialog, cmd = m.formDialog.Update(msg)
		}
	case stateFiltering:
		m.filterInput, cmd = m.filterInput.Update(msg)
	case stateShowingAbout:
		if m.markdownDialog != nil {
			cmd = m.markdownDialog.Update(msg)
		}
	}
	return m, cmd
}

// handleKey routes a key press to the active modal or the main view.
func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateNotice:
		m.notice, _ = m.notice.Update(msg)
		if m.notice.Dismissed() {
			m.state = stateNormal
		}
		return m, nil
	case stateConfirming:
		return m.handleConfirmKey(msg)
	case stateFormInput:
		return m.handleFormKey(msg)
	case stateShowingHelp:
		switch msg.String() {
		case "esc", "q", "?", "enter":
			m.state = stateNormal
			m.helpDialog = nil
		}
		return m, nil
	case stateShowingAbout:
		cmd := m.markdownDialog.Update(msg)
		if m.markdownDialog.Closed() {
			m.state = stateNormal
			m.markdownDialog = nil
		}
		return m, cmd
	case stateShowingInfo:
		if m.infoDialog.HandleKey(msg.String()) {
			m.state = stateNormal
			m.infoDialog = nil
		}
		return m, nil
	case stateFiltering:
		return m.handleFilterKey(msg)
	}

	return m.handleNormalKey(msg)
}

// handleFilterKey edits the fuzzy filter. Enter keeps the filter applied and
// esc clears it.
func (m Model) handleFilterKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.clearFilter()
		m.state = stateNormal
		return m, nil
	case "enter":
		m.filterInput.Blur()
		m.state = stateNormal
		return m, nil
	case "down", "ctrl+n":
		m.moveCursor(1)
		return m, nil
	case "up", "ctrl+p":
		m.moveCursor(-1)
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	if q := m.filterInput.Value(); q != m.filterQuery {
		m.filterQuery = q
		m.cursor = 0
		m.previewOffset = 0
	}
	return m, cmd
}

func (m *Model) clearFilter() {
	m.filterInput.Blur()
	m.filterInput.SetValue("")
	m.filterQuery = ""
	m.cursor = 0
	m.previewOffset = 0
}

func (m Model) handleNormalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return m.requestQuit()
	case msg.String() == "esc":
		if m.filterQuery != "" {
			m.clearFilter()
			return m, nil
		}
		m.toastController.DismissAll()
		return m, nil

	// Tabs
	case key.Matches(msg, k.NextTab):
		m.selectTab(m.activeTab + 1)
	case key.Matches(msg, k.PrevTab):
		m.selectTab(m.activeTab - 1)
	case key.Matches(msg, k.NewTab):
		idx := m.svc.AddTab("")
		m.selectTab(idx)
	case key.Matches(msg, k.RenameTab):
		return m.openRenameTabForm()
	case key.Matches(msg, k.CloseTab):
		return m.requestCloseTab()
	case key.Matches(msg, k.MoveTabL):
		return m.moveTab(-1)
	case key.Matches(msg, k.MoveTabR):
		return m.moveTab(1)

	// Cells
	case key.Matches(msg, k.Down):
		m.moveCursor(1)
	case key.Matches(msg, k.Up):
		m.moveCursor(-1)
	case msg.String() == "ctrl+d":
		m.previewOffset = min(m.previewOffset+max(m.previewHeight()/2, 1), m.maxPreviewOffset())
	case msg.String() == "ctrl+u":
		m.previewOffset = max(m.previewOffset-max(m.previewHeight()/2, 1), 0)
	case key.Matches(msg, k.Copy):
		return m.copySelected()
	case key.Matches(msg, k.Paste):
		return m, m.pasteCmd(m.activeTabID())
	case key.Matches(msg, k.AddCell):
		return m.openCellForm(formAddCell)
	case key.Matches(msg, k.EditCell):
		return m.openCellForm(formEditCell)
	case key.Matches(msg, k.DeleteCell):
		return m.requestDeleteCell()
	case key.Matches(msg, k.MoveCellDown):
		return m.moveCell(1)
	case key.Matches(msg, k.MoveCellUp):
		return m.moveCell(-1)
	case key.Matches(msg, k.Filter):
		m.state = stateFiltering
		m.filterInput.SetValue(m.filterQuery)
		m.filterInput.CursorEnd()
		return m, m.filterInput.Focus()

	// Documents
	case key.Matches(msg, k.Save):
		return m.save()
	case key.Matches(msg, k.SaveAs):
		return m.openPathForm(formSaveAs, nil)
	case key.Matches(msg, k.Open):
		if m.svc.Dirty() {
			return m.confirm(confirmDiscardOpen, "Open Document", "Discard unsaved changes?")
		}
		return m.requestPathForm(formOpen)
	case key.Matches(msg, k.Import):
		return m.requestPathForm(formImport)
	case key.Matches(msg, k.Example):
		return m.openExampleForm()

	// General
	case key.Matches(msg, k.Info):
		m.showDocumentInfo()
	case key.Matches(msg, k.Notifications):
		m.showNotifications()
	case key.Matches(msg, k.Help):
		m.helpDialog = components.NewHelpDialog("Keyboard Shortcuts", m.keys.HelpSections())
		m.state = stateShowingHelp
	case key.Matches(msg, k.About):
		w, h := m.size()
		m.markdownDialog = components.NewMarkdownDialog("About multipaste", aboutMarkdown, w, h)
		m.state = stateShowingAbout
	}

	return m, nil
}

func (m Model) requestQuit() (tea.Model, tea.Cmd) {
	if m.svc.Dirty() {
		return m.confirm(confirmQuit, "Quit", "Quit without saving changes?")
	}
	m.quitting = true
	return m, tea.Quit
}

// ctx returns the context used for service calls made by the TUI.
func (m Model) ctx() context.Context {
	return logging.WithCommand(context.Background(), "tui")
}

// size returns the terminal size, falling back to 80x24 before the first
// WindowSizeMsg.
func (m Model) size() (int, int) {
	w, h := m.width, m.height
	if w == 0 {
		w = 80
	}
	if h == 0 {
		h = 24
	}
	return w, h
}

// ensureToastTick returns a command to start the toast tick timer when toasts
// are visible.
func (m *Model) ensureToastTick() tea.Cmd {
	if m.toastController.HasToasts() {
		return scheduleToastTick()
	}
	return nil
}

// notifyError publishes an error-level notification and returns a command
// to start the toast tick timer if needed.
func (m *Model) notifyError(format string, args ...any) tea.Cmd {
	m.notifyBus.Errorf(format, args...)
	return m.ensureToastTick()
}

// notifyInfo publishes an info-level notification.
func (m *Model) notifyInfo(format string, args ...any) tea.Cmd {
	m.notifyBus.Infof(format, args...)
	return m.ensureToastTick()
}

func (m Model) handleToastTick(_ toastTickMsg) (tea.Model, tea.Cmd) {
	m.toastController.Tick()
	if m.toastController.HasToasts() {
		return m, scheduleToastTick()
	}
	return m, nil
}

func (m Model) handleNotification(msg notificationMsg) (tea.Model, tea.Cmd) {
	m.notifyBus.Publish(msg.notification)
	return m, m.ensureToastTick()
}
