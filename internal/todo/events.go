package todo

import "github.com/Makepad-fr/mytodo/internal/model"

type EventKind int

const (
	ItemAdded EventKind = iota
	ItemToggled
	ItemEditStarted
	ItemEditCanceled
	ItemEdited
	ItemCopied
	ItemRemoved
	FilterChanged
)

var eventNames = map[EventKind]string{
	ItemAdded:        "item_added",
	ItemToggled:      "item_toggled",
	ItemEditStarted:  "item_edit_started",
	ItemEditCanceled: "item_edit_canceled",
	ItemEdited:       "item_edited",
	ItemCopied:       "item_copied",
	ItemRemoved:      "item_removed",
	FilterChanged:    "filter_changed",
}

func (k EventKind) String() string {
	if s, ok := eventNames[k]; ok {
		return s
	}
	return "unknown"
}

// Event is emitted by the store after the change is applied and visibility
// has been recomputed. Task is nil for FilterChanged.
type Event struct {
	Kind   EventKind
	Task   *Task
	Filter model.Filter
}

// Notice is the user-facing message for an event, empty when there is none.
func (e Event) Notice() string {
	switch e.Kind {
	case ItemAdded:
		return "Added New To-Do Item"
	case ItemEdited:
		return "Updated Item successfully!"
	case ItemRemoved:
		return "Deleted Item successfully!"
	case ItemCopied:
		return "Content copied to Clipboard!"
	}
	return ""
}

// Listener receives store events synchronously, in subscription order.
type Listener func(Event)
