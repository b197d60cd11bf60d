package todo

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// InputBuffer stages the text of a task that does not exist yet.
type InputBuffer struct {
	store *Store
	draft string
	count int
}

func NewInputBuffer(store *Store) *InputBuffer {
	return &InputBuffer{store: store}
}

func (b *InputBuffer) OnTextChanged(s string) {
	b.draft = s
	b.count = utf8.RuneCountInString(s)
}

func (b *InputBuffer) Draft() string { return b.draft }

func (b *InputBuffer) Count() int { return b.count }

// Counter is the caption under the input, e.g. "8 chars".
func (b *InputBuffer) Counter() string { return fmt.Sprintf("%d chars", b.count) }

// Submit adds the draft as a new task and clears the buffer. A blank draft
// is ignored without complaint; the return value says whether a task was added.
func (b *InputBuffer) Submit() bool {
	if strings.TrimSpace(b.draft) == "" {
		return false
	}
	if _, err := b.store.Add(b.draft); err != nil {
		return false
	}
	b.draft = ""
	b.count = 0
	return true
}
