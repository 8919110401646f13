package clip

import "fmt"

// DefaultTabName is the name of the tab created when a workspace would
// otherwise be empty.
const DefaultTabName = "Default"

// Workspace is the live, ordered set of tabs. It always holds at least one
// tab.
type Workspace struct {
	tabs []*Tab
}

// NewWorkspace returns a workspace holding a single empty Default tab.
func NewWorkspace() *Workspace {
	return &Workspace{tabs: []*Tab{NewTab(DefaultTabName)}}
}

// Tabs returns the tabs in display order. The slice must not be modified.
func (w *Workspace) Tabs() []*Tab {
	return w.tabs
}

// Len returns the number of tabs.
func (w *Workspace) Len() int {
	return len(w.tabs)
}

// Tab returns the tab at index i.
func (w *Workspace) Tab(i int) (*Tab, error) {
	if i < 0 || i >= len(w.tabs) {
		return nil, fmt.Errorf("tab %d: %w", i, ErrOutOfRange)
	}
	return w.tabs[i], nil
}

// IndexOf returns the index of the tab with the given ID, or -1.
func (w *Workspace) IndexOf(id string) int {
	for i, t := range w.tabs {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// FindTab returns the index of the first tab with the given name, or -1.
func (w *Workspace) FindTab(name string) int {
	for i, t := range w.tabs {
		if t.Name == name {
			return i
		}
	}
	return -1
}

// TabNames returns the names of all tabs in order.
func (w *Workspace) TabNames() []string {
	names := make([]string, len(w.tabs))
	for i, t := range w.tabs {
		names[i] = t.Name
	}
	return names
}

// AddTab appends an empty tab with the given name.
func (w *Workspace) AddTab(name string) *Tab {
	t := NewTab(name)
	w.tabs = append(w.tabs, t)
	return t
}

// NewTab appends an empty tab named "Tab N", where N is the tab count after
// the append.
func (w *Workspace) NewTab() *Tab {
	return w.AddTab(fmt.Sprintf("Tab %d", len(w.tabs)+1))
}

// RenameTab sets the display name of the tab at index i. Like AddTab and
// document loads it stores name verbatim; input surfaces trim typed names.
// An empty name is allowed.
func (w *Workspace) RenameTab(i int, name string) error {
	t, err := w.Tab(i)
	if err != nil {
		return err
	}
	t.Name = name
	return nil
}

// RemoveTab deletes the tab at index i. When the last tab is removed a new
// Default tab is created and addedDefault reports true.
func (w *Workspace) RemoveTab(i int) (addedDefault bool, err error) {
	if i < 0 || i >= len(w.tabs) {
		return false, fmt.Errorf("tab %d: %w", i, ErrOutOfRange)
	}
	w.tabs = append(w.tabs[:i], w.tabs[i+1:]...)
	return w.ensureTab(), nil
}

// MoveTab moves the tab at index from to index to.
func (w *Workspace) MoveTab(from, to int) error {
	if from < 0 || from >= len(w.tabs) {
		return fmt.Errorf("tab %d: %w", from, ErrOutOfRange)
	}
	if to < 0 || to >= len(w.tabs) {
		return fmt.Errorf("tab %d: %w", to, ErrOutOfRange)
	}
	if from == to {
		return nil
	}

	t := w.tabs[from]
	w.tabs = append(w.tabs[:from], w.tabs[from+1:]...)
	w.tabs = append(w.tabs[:to], append([]*Tab{t}, w.tabs[to:]...)...)
	return nil
}

// ApplyResult summarizes what Apply created.
type ApplyResult struct {
	Tabs  int
	Cells int
	// Dropped counts cell events that arrived before any tab event.
	Dropped int
}

// Apply replays creation events onto the workspace, appending new tabs after
// the existing ones. Cell events attach to the tab created by the most recent
// tab event in the same batch.
func (w *Workspace) Apply(events []Event) ApplyResult {
	var (
		res     ApplyResult
		current *Tab
	)

	for _, ev := range events {
		switch ev.Kind {
		case EventTab:
			current = w.AddTab(ev.TabName)
			res.Tabs++
		case EventCell:
			if current == nil {
				res.Dropped++
				continue
			}
			current.AddCell(ev.CellName, ev.CellText)
			res.Cells++
		}
	}

	return res
}

// Replace discards every tab and rebuilds the workspace from events. If the
// events create no tabs, a Default tab is created and addedDefault reports
// true.
func (w *Workspace) Replace(events []Event) (res ApplyResult, addedDefault bool) {
	w.tabs = nil
	res = w.Apply(events)
	return res, w.ensureTab()
}

func (w *Workspace) ensureTab() bool {
	if len(w.tabs) > 0 {
		return false
	}
	w.tabs = append(w.tabs, NewTab(DefaultTabName))
	return true
}
