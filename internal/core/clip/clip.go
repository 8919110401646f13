// Package clip holds the in-memory model of a clipboard workspace: named tabs
// of named text cells.
package clip

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrOutOfRange is returned when a tab or cell index does not exist.
var ErrOutOfRange = errors.New("index out of range")

// Cell is a single named text entry.
type Cell struct {
	Name string
	Text string
}

// Tab is a named, ordered collection of cells. The tab owns its cells.
type Tab struct {
	// ID identifies the tab for the lifetime of the process. It is never
	// persisted.
	ID    string
	Name  string
	Cells []Cell
}

// NewTab creates an empty tab with a fresh ID.
func NewTab(name string) *Tab {
	return &Tab{
		ID:    uuid.NewString(),
		Name:  name,
		Cells: []Cell{},
	}
}

// Len returns the number of cells in the tab.
func (t *Tab) Len() int {
	return len(t.Cells)
}

// Cell returns the cell at index i.
func (t *Tab) Cell(i int) (Cell, error) {
	if i < 0 || i >= len(t.Cells) {
		return Cell{}, fmt.Errorf("cell %d: %w", i, ErrOutOfRange)
	}
	return t.Cells[i], nil
}

// AddCell appends a cell and returns its index.
func (t *Tab) AddCell(name, text string) int {
	t.Cells = append(t.Cells, Cell{Name: name, Text: text})
	return len(t.Cells) - 1
}

// UpdateCell replaces the cell at index i.
func (t *Tab) UpdateCell(i int, c Cell) error {
	if i < 0 || i >= len(t.Cells) {
		return fmt.Errorf("cell %d: %w", i, ErrOutOfRange)
	}
	t.Cells[i] = c
	return nil
}

// RemoveCell deletes the cell at index i, preserving the order of the rest.
func (t *Tab) RemoveCell(i int) error {
	if i < 0 || i >= len(t.Cells) {
		return fmt.Errorf("cell %d: %w", i, ErrOutOfRange)
	}
	t.Cells = append(t.Cells[:i], t.Cells[i+1:]...)
	return nil
}

// MoveCell moves the cell at index from to index to.
func (t *Tab) MoveCell(from, to int) error {
	if from < 0 || from >= len(t.Cells) {
		return fmt.Errorf("cell %d: %w", from, ErrOutOfRange)
	}
	if to < 0 || to >= len(t.Cells) {
		return fmt.Errorf("cell %d: %w", to, ErrOutOfRange)
	}
	if from == to {
		return nil
	}

	c := t.Cells[from]
	t.Cells = append(t.Cells[:from], t.Cells[from+1:]...)
	t.Cells = append(t.Cells[:to], append([]Cell{c}, t.Cells[to:]...)...)
	return nil
}

// FindCell returns the index of the first cell with the given name, or -1.
func (t *Tab) FindCell(name string) int {
	for i, c := range t.Cells {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// CellNames returns the names of all cells in order.
func (t *Tab) CellNames() []string {
	names := make([]string, len(t.Cells))
	for i, c := range t.Cells {
		names[i] = c.Name
	}
	return names
}
