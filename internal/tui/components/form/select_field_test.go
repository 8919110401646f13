package form

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
)

func TestSelectFormField(t *testing.T) {
	options := []Option{
		{Value: "c", Label: "C", Detail: "coding"},
		{Value: "python", Label: "Python", Detail: "coding"},
		{Value: "info", Label: "Personal info", Detail: "templates"},
	}

	t.Run("creation with no default", func(t *testing.T) {
		f := NewSelectFormField("Example", options, "")
		assert.Equal(t, "Example", f.Label())
		assert.False(t, f.Focused())
		assert.Equal(t, "c", f.Value())
	})

	t.Run("creation with default value", func(t *testing.T) {
		f := NewSelectFormField("Example", options, "python")
		assert.Equal(t, "python", f.Value())
	})

	t.Run("creation with invalid default falls back to first", func(t *testing.T) {
		f := NewSelectFormField("Example", options, "cobol")
		assert.Equal(t, "c", f.Value())
	})

	t.Run("empty options", func(t *testing.T) {
		f := NewSelectFormField("Example", nil, "")
		assert.Empty(t, f.Value())
		assert.Equal(t, "nothing selected", f.Validate())
	})

	t.Run("update ignored when not focused", func(t *testing.T) {
		f := NewSelectFormField("Example", options, "")
		field, _ := f.Update(tea.KeyPressMsg(tea.Key{Code: 'j'}))
		assert.Equal(t, "c", field.Value())
	})

	t.Run("update processes input when focused", func(t *testing.T) {
		f := NewSelectFormField("Example", options, "")
		f.Focus()

		field, _ := f.Update(tea.KeyPressMsg(tea.Key{Code: 'j'}))
		assert.Equal(t, "python", field.Value())
		assert.Empty(t, field.Validate())
	})

	t.Run("view shows labels and details", func(t *testing.T) {
		f := NewSelectFormField("Example", options, "")
		view := f.View()
		assert.Contains(t, view, "Example")
		assert.Contains(t, view, "Python")
		assert.Contains(t, view, "coding")
		assert.False(t, f.IsFiltering())
	})
}
