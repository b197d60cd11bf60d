package todo

import (
	"errors"
	"testing"

	"github.com/Makepad-fr/mytodo/internal/model"
)

type fakeHost struct {
	renders int
	notices []string
	dialog  *Dialog
	opened  int
	closed  int
}

func (h *fakeHost) Render()           { h.renders++ }
func (h *fakeHost) Notify(msg string) { h.notices = append(h.notices, msg) }

func (h *fakeHost) OpenModal(d Dialog) {
	h.dialog = &d
	h.opened++
}

func (h *fakeHost) CloseModal() {
	h.dialog = nil
	h.closed++
}

func (h *fakeHost) lastNotice() string {
	if len(h.notices) == 0 {
		return ""
	}
	return h.notices[len(h.notices)-1]
}

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

func newTestSession(t *testing.T) (*Session, *fakeHost) {
	t.Helper()
	h := &fakeHost{}
	return NewSession(h), h
}

func mustAdd(t *testing.T, s *Store, text string) *Task {
	t.Helper()
	task, err := s.Add(text)
	if err != nil {
		t.Fatalf("add %q: %v", text, err)
	}
	return task
}

func texts(items []model.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Text)
	}
	return out
}

func ids(items []model.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func isDangling(err error) bool {
	var de DanglingReferenceError
	return errors.As(err, &de)
}
