package todo

import (
	"strings"

	"github.com/google/uuid"

	"github.com/Makepad-fr/mytodo/internal/model"
)

// Store owns the ordered task list. Insertion order is display order and
// never changes; filters only flip per-task visibility.
type Store struct {
	tasks     []*Task
	filter    model.Filter // filter used by the last recomputation
	listeners []*Listener
	newID     func() string
}

func NewStore() *Store {
	return &Store{newID: uuid.NewString}
}

// Add appends a task with the trimmed text. Blank text returns ErrEmptyInput
// and leaves the list untouched.
func (s *Store) Add(text string) (*Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyInput
	}
	t := &Task{
		id:    s.newID(),
		text:  text,
		mode:  model.ModeView,
		owner: s,
	}
	s.tasks = append(s.tasks, t)
	s.recomputeVisibility(s.filter)
	s.emit(Event{Kind: ItemAdded, Task: t, Filter: s.filter})
	return t, nil
}

// Remove drops t by identity, so tasks sharing the same text are never
// confused. It reports whether t was in the list.
func (s *Store) Remove(t *Task) bool {
	i := s.indexOf(t)
	if i < 0 {
		return false
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	t.owner = nil
	s.recomputeVisibility(s.filter)
	s.emit(Event{Kind: ItemRemoved, Task: t, Filter: s.filter})
	return true
}

// recomputeVisibility applies f to every task and remembers it as the
// filter for later changes. Only FilterController picks f; the store
// reuses it for its own mutations.
func (s *Store) recomputeVisibility(f model.Filter) {
	s.filter = f
	for _, t := range s.tasks {
		t.visible = model.Visible(t.done, f)
	}
}

// Filter reports the filter visibility was last computed with; it always
// matches the session's FilterController.
func (s *Store) Filter() model.Filter { return s.filter }

func (s *Store) Len() int { return len(s.tasks) }

// At returns the i-th task in insertion order, nil when out of range.
func (s *Store) At(i int) *Task {
	if i < 0 || i >= len(s.tasks) {
		return nil
	}
	return s.tasks[i]
}

func (s *Store) Find(id string) *Task {
	for _, t := range s.tasks {
		if t.id == id {
			return t
		}
	}
	return nil
}

func (s *Store) Contains(t *Task) bool { return s.indexOf(t) >= 0 }

// Items snapshots every task in order.
func (s *Store) Items() []model.Item {
	out := make([]model.Item, 0, len(s.tasks))
	for _, t := range s.tasks {
		out = append(out, t.Snapshot())
	}
	return out
}

// Visible snapshots the tasks the current filter shows, in order.
func (s *Store) Visible() []model.Item {
	out := make([]model.Item, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.visible {
			out = append(out, t.Snapshot())
		}
	}
	return out
}

// VisibleTask returns the i-th visible task, nil when out of range.
func (s *Store) VisibleTask(i int) *Task {
	if i < 0 {
		return nil
	}
	for _, t := range s.tasks {
		if !t.visible {
			continue
		}
		if i == 0 {
			return t
		}
		i--
	}
	return nil
}

func (s *Store) Stats() (done, pending int) {
	for _, t := range s.tasks {
		if t.done {
			done++
		} else {
			pending++
		}
	}
	return
}

// Subscribe registers fn for every future event. The returned func removes it.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	l := &fn
	s.listeners = append(s.listeners, l)
	return func() {
		for i, x := range s.listeners {
			if x == l {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) taskChanged(t *Task, kind EventKind) {
	s.recomputeVisibility(s.filter)
	s.emit(Event{Kind: kind, Task: t, Filter: s.filter})
}

// emitFilter is used by FilterController once the new filter is applied.
func (s *Store) emitFilter() {
	s.emit(Event{Kind: FilterChanged, Filter: s.filter})
}

func (s *Store) emit(e Event) {
	// copy: a listener may unsubscribe while we iterate
	ls := append([]*Listener(nil), s.listeners...)
	for _, l := range ls {
		(*l)(e)
	}
}

func (s *Store) indexOf(t *Task) int {
	if t == nil {
		return -1
	}
	for i, x := range s.tasks {
		if x == t {
			return i
		}
	}
	return -1
}
