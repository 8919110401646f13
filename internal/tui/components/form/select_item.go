package form

// Option is a selectable value with its display text.
type Option struct {
	Value string
	Label string
	// Detail is rendered muted after the label.
	Detail string
}

// selectItem is the list item used by the select field.
type selectItem struct {
	option Option
	index  int
}

func (i selectItem) FilterValue() string { return i.option.Label + " " + i.option.Detail }
