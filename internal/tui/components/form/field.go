// Package form provides the small field set used by the cell editor, the
// prompts, and the example picker.
package form

import tea "charm.land/bubbletea/v2"

// Field is the interface implemented by all form field types.
type Field interface {
	Update(msg tea.Msg) (Field, tea.Cmd)
	View() string
	Focus() tea.Cmd
	Blur()
	Focused() bool
	Value() string
	Label() string
	// Validate returns an error message, or "" when the value is acceptable.
	// The message is kept and shown under the field until the next edit.
	Validate() string
}
