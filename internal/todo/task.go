package todo

import (
	"fmt"

	"github.com/Makepad-fr/mytodo/internal/model"
)

// Task is one entry of the list. Tasks are created by Store.Add and belong to
// that store until removed; hosts read them through Snapshot.
type Task struct {
	id      string
	text    string
	done    bool
	mode    model.Mode
	draft   string // edit buffer, only meaningful in ModeEdit
	visible bool

	owner *Store // nil once removed
}

func (t *Task) ID() string       { return t.id }
func (t *Task) Text() string     { return t.text }
func (t *Task) Done() bool       { return t.done }
func (t *Task) Mode() model.Mode { return t.mode }
func (t *Task) Draft() string    { return t.draft }
func (t *Task) Visible() bool    { return t.visible }
func (t *Task) Editing() bool    { return t.mode == model.ModeEdit }

func (t *Task) Snapshot() model.Item {
	return model.Item{ID: t.id, Text: t.text, Done: t.done, Mode: t.mode, Visible: t.visible}
}

// ToggleDone flips completion. The mode is left alone.
func (t *Task) ToggleDone() {
	t.done = !t.done
	t.changed(ItemToggled)
}

// EnterEdit switches to the inline editor, seeding the draft from the text.
func (t *Task) EnterEdit() {
	t.mode = model.ModeEdit
	t.draft = t.text
	t.changed(ItemEditStarted)
}

func (t *Task) SetDraft(s string) { t.draft = s }

// SaveEdit stores newText as is and returns to view mode, whatever mode the
// task was in. Blank or duplicate text is accepted.
func (t *Task) SaveEdit(newText string) {
	t.text = newText
	t.mode = model.ModeView
	t.draft = ""
	t.changed(ItemEdited)
}

// CancelEdit leaves the editor and drops the draft; the text is unchanged.
func (t *Task) CancelEdit() {
	if t.mode != model.ModeEdit {
		return
	}
	t.mode = model.ModeView
	t.draft = ""
	t.changed(ItemEditCanceled)
}

// RequestDelete does not delete: it hands the task to dc, which asks the user first.
func (t *Task) RequestDelete(dc *DeleteConfirmation) error {
	return dc.Request(t)
}

// CopyText writes the text to clip. Nothing about the task changes.
func (t *Task) CopyText(clip Clipboard) error {
	if err := clip.WriteAll(t.text); err != nil {
		return fmt.Errorf("copy: %w", err)
	}
	t.changed(ItemCopied)
	return nil
}

func (t *Task) changed(kind EventKind) {
	if t.owner != nil {
		t.owner.taskChanged(t, kind)
	}
}
