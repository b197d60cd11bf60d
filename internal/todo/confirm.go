package todo

// ConfirmState is the state of the delete confirmation workflow.
type ConfirmState int

const (
	Idle ConfirmState = iota
	AwaitingConfirmation
)

func (s ConfirmState) String() string {
	if s == AwaitingConfirmation {
		return "awaiting_confirmation"
	}
	return "idle"
}

// DeleteDialog is the modal shown before a task is removed.
var DeleteDialog = Dialog{
	Title:   "Please confirm",
	Body:    "Do you really want to delete this item?",
	Confirm: "Yes",
	Cancel:  "No",
}

// DeleteConfirmation gates removal behind a single modal. There is one
// pending slot: a second Request replaces the first target, there is no queue.
type DeleteConfirmation struct {
	store   *Store
	host    Host
	pending *Task
}

func NewDeleteConfirmation(store *Store, host Host) *DeleteConfirmation {
	dc := &DeleteConfirmation{store: store, host: host}
	// a removal from any path must not leave the slot pointing at a dead task
	store.Subscribe(func(e Event) {
		if e.Kind == ItemRemoved && e.Task != nil && e.Task == dc.pending {
			dc.pending = nil
		}
	})
	return dc
}

func (dc *DeleteConfirmation) State() ConfirmState {
	if dc.pending != nil {
		return AwaitingConfirmation
	}
	return Idle
}

func (dc *DeleteConfirmation) Pending() (*Task, bool) {
	return dc.pending, dc.pending != nil
}

// Request captures t and opens the modal.
func (dc *DeleteConfirmation) Request(t *Task) error {
	if !dc.store.Contains(t) {
		return errDangling("request delete", t)
	}
	dc.pending = t
	dc.host.OpenModal(DeleteDialog)
	dc.host.Render()
	return nil
}

// Confirm removes the pending task. It reports whether anything was removed;
// with nothing pending it does nothing.
func (dc *DeleteConfirmation) Confirm() (bool, error) {
	t := dc.pending
	if t == nil {
		return false, nil
	}
	dc.pending = nil
	dc.host.CloseModal()
	if !dc.store.Remove(t) {
		dc.host.Render()
		return false, errDangling("confirm delete", t)
	}
	return true, nil
}

// Cancel closes the modal without touching the list. No-op when idle.
func (dc *DeleteConfirmation) Cancel() {
	if dc.pending == nil {
		return
	}
	dc.pending = nil
	dc.host.CloseModal()
	dc.host.Render()
}
