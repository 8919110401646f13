package tui

import (
	"charm.land/bubbles/v2/key"

	"github.com/colonyops/multipaste/internal/tui/components"
)

// KeyMap holds the bindings of the main view.
type KeyMap struct {
	NextTab   key.Binding
	PrevTab   key.Binding
	Down      key.Binding
	Up        key.Binding
	NewTab    key.Binding
	RenameTab key.Binding
	CloseTab  key.Binding
	MoveTabL  key.Binding
	MoveTabR  key.Binding

	AddCell      key.Binding
	EditCell     key.Binding
	DeleteCell   key.Binding
	MoveCellDown key.Binding
	MoveCellUp   key.Binding
	Copy         key.Binding
	Paste        key.Binding
	Filter       key.Binding

	Save    key.Binding
	SaveAs  key.Binding
	Open    key.Binding
	Import  key.Binding
	Example key.Binding

	Info          key.Binding
	Notifications key.Binding
	Help          key.Binding
	About         key.Binding
	Quit          key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextTab:   key.NewBinding(key.WithKeys("tab", "l", "right"), key.WithHelp("tab/l", "next tab")),
		PrevTab:   key.NewBinding(key.WithKeys("shift+tab", "h", "left"), key.WithHelp("shift+tab/h", "previous tab")),
		Down:      key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "next cell")),
		Up:        key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "previous cell")),
		NewTab:    key.NewBinding(key.WithKeys("T"), key.WithHelp("T", "new tab")),
		RenameTab: key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "rename tab")),
		CloseTab:  key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "close tab")),
		MoveTabL:  key.NewBinding(key.WithKeys("<"), key.WithHelp("<", "move tab left")),
		MoveTabR:  key.NewBinding(key.WithKeys(">"), key.WithHelp(">", "move tab right")),

		AddCell:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add cell")),
		EditCell:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit cell")),
		DeleteCell:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete cell")),
		MoveCellDown: key.NewBinding(key.WithKeys("J"), key.WithHelp("J", "move cell down")),
		MoveCellUp:   key.NewBinding(key.WithKeys("K"), key.WithHelp("K", "move cell up")),
		Copy:         key.NewBinding(key.WithKeys("enter", "y"), key.WithHelp("enter/y", "copy cell")),
		Paste:        key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "paste as new cell")),
		Filter:       key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter cells")),

		Save:    key.NewBinding(key.WithKeys("s", "ctrl+s"), key.WithHelp("s", "save")),
		SaveAs:  key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "save as")),
		Open:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open file")),
		Import:  key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "import file")),
		Example: key.NewBinding(key.WithKeys("E"), key.WithHelp("E", "load example")),

		Info:          key.NewBinding(key.WithKeys("I"), key.WithHelp("I", "document info")),
		Notifications: key.NewBinding(key.WithKeys("N"), key.WithHelp("N", "notifications")),
		Help:          key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		About:         key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "about")),
		Quit:          key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// HelpSections groups the bindings for the help dialog.
func (k KeyMap) HelpSections() []components.HelpDialogSection {
	return []components.HelpDialogSection{
		components.SectionFromBindings("Tabs", k.NextTab, k.PrevTab, k.NewTab, k.RenameTab, k.CloseTab, k.MoveTabL, k.MoveTabR),
		components.SectionFromBindings("Cells", k.Down, k.Up, k.Copy, k.Paste, k.AddCell, k.EditCell, k.DeleteCell, k.MoveCellDown, k.MoveCellUp, k.Filter),
		components.SectionFromBindings("Documents", k.Save, k.SaveAs, k.Open, k.Import, k.Example, k.Info),
		components.SectionFromBindings("General", k.Notifications, k.Help, k.About, k.Quit),
	}
}
