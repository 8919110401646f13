package form

import (
	"io"

	"charm.land/bubbles/v2/list"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/multipaste/internal/core/styles"
)

// SelectFormField is a single-select form field wrapping list.Model. Typing
// "/" filters the options.
type SelectFormField struct {
	list    list.Model
	options []Option
	label   string
	focused bool
}

// selectDelegate renders items in a single-select list.
type selectDelegate struct{}

func (d selectDelegate) Height() int                             { return 1 }
func (d selectDelegate) Spacing() int                            { return 0 }
func (d selectDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d selectDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(selectItem)
	if !ok {
		return
	}

	style := styles.TextForegroundStyle
	cursor := "  "
	if index == m.Index() {
		style = styles.SelectFieldItemSelectedStyle
		cursor = "> "
	}

	_, _ = io.WriteString(w, cursor)
	_, _ = io.WriteString(w, style.Render(item.option.Label))
	if item.option.Detail != "" {
		_, _ = io.WriteString(w, "  "+styles.TextMutedStyle.Render(item.option.Detail))
	}
}

// NewSelectFormField creates a single-select field. defaultVal pre-selects the
// option with a matching Value.
func NewSelectFormField(label string, options []Option, defaultVal string) *SelectFormField {
	items := make([]list.Item, len(options))
	selected := -1
	for i, opt := range options {
		items[i] = selectItem{option: opt, index: i}
		if opt.Value == defaultVal {
			selected = i
		}
	}

	const maxVisible = 10
	height := max(min(len(options), maxVisible), 1)

	l := list.New(items, selectDelegate{}, defaultFieldWidth, height)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowFilter(false)
	l.SetShowHelp(false)
	l.SetShowPagination(len(options) > maxVisible)
	l.Styles.TitleBar = lipgloss.NewStyle()

	l.FilterInput.Prompt = "/ "
	filterStyles := textinput.DefaultStyles(true)
	filterStyles.Focused.Prompt = styles.TextPrimaryStyle
	filterStyles.Cursor.Color = styles.ColorPrimary
	l.FilterInput.SetStyles(filterStyles)

	if selected >= 0 {
		l.Select(selected)
	}

	return &SelectFormField{
		list:    l,
		options: options,
		label:   label,
	}
}

func (f *SelectFormField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	var cmd tea.Cmd
	f.list, cmd = f.list.Update(msg)
	return f, cmd
}

func (f *SelectFormField) View() string {
	body := f.list.View()
	if f.list.SettingFilter() {
		body = lipgloss.JoinVertical(lipgloss.Left, f.list.FilterInput.View(), body)
	}
	return renderField(f.label, body, "", f.focused)
}

func (f *SelectFormField) Focus() tea.Cmd {
	f.focused = true
	return nil
}

func (f *SelectFormField) Blur() {
	f.focused = false
}

// Validate fails only when there is nothing to select.
func (f *SelectFormField) Validate() string {
	if f.Value() == "" {
		return "nothing selected"
	}
	return ""
}

func (f *SelectFormField) Focused() bool { return f.focused }
func (f *SelectFormField) Label() string { return f.label }

// Value returns the Value of the highlighted option.
func (f *SelectFormField) Value() string {
	item := f.list.SelectedItem()
	if item == nil {
		return ""
	}
	if si, ok := item.(selectItem); ok && si.index >= 0 && si.index < len(f.options) {
		return f.options[si.index].Value
	}
	return ""
}

// IsFiltering returns whether the list is currently filtering.
func (f *SelectFormField) IsFiltering() bool {
	return f.list.SettingFilter()
}
