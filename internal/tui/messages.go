package tui

import (
	"github.com/colonyops/multipaste/internal/app"
	"github.com/colonyops/multipaste/internal/core/document"
	"github.com/colonyops/multipaste/internal/core/notify"
)

// loadMode selects how a loaded document is merged into the workspace.
type loadMode int

const (
	loadOpen loadMode = iota
	loadImport
	// loadReload replaces the workspace with a newer copy of the current file.
	loadReload
)

// documentLoadedMsg carries the result of reading a document off the update
// loop.
type documentLoadedMsg struct {
	mode   loadMode
	source string
	result document.Result
	err    error
}

// documentSavedMsg reports a finished write of the snapshot taken at rev.
type documentSavedMsg struct {
	path string
	rev  app.Revision
	err  error
}

// cellCopiedMsg reports a finished clipboard copy.
type cellCopiedMsg struct {
	name string
	err  error
}

// clipboardPastedMsg carries clipboard text destined for the tab with tabID.
type clipboardPastedMsg struct {
	tabID string
	text  string
	err   error
}

// notificationMsg publishes a notification from a command.
type notificationMsg struct {
	notification notify.Notification
}

// recentListedMsg carries the recent documents for an open or import form.
type recentListedMsg struct {
	kind  formKind
	paths []string
	err   error
}

// documentChangedMsg reports that another process changed the open document.
type documentChangedMsg struct {
	path string
}
