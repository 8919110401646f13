package clip

// EventKind identifies what a creation event builds.
type EventKind int

const (
	// EventTab starts a new tab. Subsequent cell events belong to it.
	EventTab EventKind = iota
	// EventCell appends a cell to the most recently created tab.
	EventCell
)

func (k EventKind) String() string {
	switch k {
	case EventTab:
		return "tab"
	case EventCell:
		return "cell"
	default:
		return "unknown"
	}
}

// Event is a single tab or cell creation instruction produced when a document
// is read.
type Event struct {
	Kind     EventKind
	TabName  string
	CellName string
	CellText string
}

// TabEvent builds an EventTab.
func TabEvent(name string) Event {
	return Event{Kind: EventTab, TabName: name}
}

// CellEvent builds an EventCell.
func CellEvent(name, text string) Event {
	return Event{Kind: EventCell, CellName: name, CellText: text}
}
