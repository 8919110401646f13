package tui

import (
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"

	"github.com/colonyops/multipaste/internal/store/jsonfile"
)

// DocumentWatcher reports changes to the open document made by other
// processes.
type DocumentWatcher interface {
	Watch(path string) error
	Mute(path string)
	Events() <-chan jsonfile.DocumentEvent
}

// watchDocument points the watcher at path. Failures only lose change
// detection, so they are logged.
func (m Model) watchDocument(path string) {
	if m.opts.Watcher == nil || path == "" {
		return
	}
	if err := m.opts.Watcher.Watch(path); err != nil {
		log.Debug().Err(err).Str("path", path).Msg("watch document")
	}
}

// waitForChange blocks on the next watcher event. Exactly one wait is
// outstanding at a time; handleDocumentChanged re-arms it.
func (m Model) waitForChange() tea.Cmd {
	if m.opts.Watcher == nil {
		return nil
	}
	events := m.opts.Watcher.Events()
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return documentChangedMsg{path: ev.Path}
	}
}

// handleDocumentChanged reloads a clean workspace from disk. A dirty workspace
// is kept and the user is warned instead.
func (m Model) handleDocumentChanged(msg documentChangedMsg) (tea.Model, tea.Cmd) {
	wait := m.waitForChange()

	current := m.svc.Path()
	if current == "" || !samePath(current, msg.path) {
		return m, wait
	}

	if m.svc.Dirty() {
		m.notifyBus.Warnf("%s changed on disk; saving will overwrite it", displayName(current))
		return m, tea.Batch(wait, m.ensureToastTick())
	}

	return m, tea.Batch(wait, m.loadCmd(loadReload, current))
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
