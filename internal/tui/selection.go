package tui

import "github.com/colonyops/multipaste/internal/core/clip"

func (m Model) currentTab() *clip.Tab {
	t, err := m.svc.Workspace().Tab(m.activeTab)
	if err != nil {
		return nil
	}
	return t
}

func (m Model) activeTabID() string {
	if t := m.currentTab(); t != nil {
		return t.ID
	}
	return ""
}

// rows returns the visible cells of the active tab.
func (m Model) rows() []cellRow {
	t := m.currentTab()
	if t == nil {
		return nil
	}
	return filterCells(t.Cells, m.filterQuery)
}

// selectedCell returns the index of the highlighted cell within the active
// tab.
func (m Model) selectedCell() (int, bool) {
	rows := m.rows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return 0, false
	}
	return rows[m.cursor].index, true
}

// selectTab activates tab i, wrapping around at both ends.
func (m *Model) selectTab(i int) {
	n := m.svc.Workspace().Len()
	m.activeTab = ((i % n) + n) % n
	m.clearFilter()
}

func (m *Model) moveCursor(delta int) {
	n := len(m.rows())
	if n == 0 {
		m.cursor = 0
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), n-1)
	m.previewOffset = 0
}

// selectCell moves the cursor onto the row showing cell idx.
func (m *Model) selectCell(idx int) {
	for i, r := range m.rows() {
		if r.index == idx {
			m.cursor = i
			m.previewOffset = 0
			return
		}
	}
}

// clampSelection keeps the active tab and cursor in range after the workspace
// shrinks.
func (m *Model) clampSelection() {
	m.activeTab = min(max(m.activeTab, 0), m.svc.Workspace().Len()-1)
	m.cursor = min(m.cursor, max(len(m.rows())-1, 0))
}
