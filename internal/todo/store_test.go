package todo

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Makepad-fr/mytodo/internal/model"
)

func TestStore_AddAppendsInOrder(t *testing.T) {
	s := NewStore()
	want := []string{}
	for i := 0; i < 5; i++ {
		text := fmt.Sprintf("task %d", i)
		mustAdd(t, s, text)
		want = append(want, text)
		if s.Len() != i+1 {
			t.Fatalf("len after %d adds = %d", i+1, s.Len())
		}
	}
	if got := texts(s.Items()); !equalStrings(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
}

func TestStore_AddTrimsAndDefaults(t *testing.T) {
	s := NewStore()
	task := mustAdd(t, s, "  Buy milk \n")
	if task.Text() != "Buy milk" {
		t.Fatalf("text = %q, want trimmed", task.Text())
	}
	if task.Done() || task.Mode() != model.ModeView || !task.Visible() {
		t.Fatalf("unexpected defaults: %+v", task.Snapshot())
	}
	if task.ID() == "" {
		t.Fatalf("expected an id")
	}
}

func TestStore_AddBlankIsRejected(t *testing.T) {
	s := NewStore()
	mustAdd(t, s, "keep")
	for _, in := range []string{"", "   ", "\t\n"} {
		task, err := s.Add(in)
		if !errors.Is(err, ErrEmptyInput) {
			t.Fatalf("Add(%q) err = %v, want ErrEmptyInput", in, err)
		}
		if task != nil {
			t.Fatalf("Add(%q) returned a task", in)
		}
	}
	if got := texts(s.Items()); !equalStrings(got, []string{"keep"}) {
		t.Fatalf("list changed: %v", got)
	}
}

func TestStore_IDsAreUnique(t *testing.T) {
	s := NewStore()
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		task := mustAdd(t, s, "same")
		if seen[task.ID()] {
			t.Fatalf("duplicate id %s", task.ID())
		}
		seen[task.ID()] = true
	}
}

func TestStore_RemoveByIdentity(t *testing.T) {
	s := NewStore()
	a := mustAdd(t, s, "dup")
	b := mustAdd(t, s, "dup")
	c := mustAdd(t, s, "other")

	if !s.Remove(b) {
		t.Fatalf("remove b reported false")
	}
	got := ids(s.Items())
	if !equalStrings(got, []string{a.ID(), c.ID()}) {
		t.Fatalf("ids after remove = %v", got)
	}
	if s.Remove(b) {
		t.Fatalf("second remove of b should be a no-op")
	}
	if s.Len() != 2 {
		t.Fatalf("len = %d, want 2", s.Len())
	}
	if s.Remove(nil) {
		t.Fatalf("remove(nil) should be a no-op")
	}
}

func TestStore_VisibilityPerFilter(t *testing.T) {
	for n := 0; n <= 6; n++ {
		s := NewStore()
		var wantActive, wantDone []string
		for i := 0; i < n; i++ {
			task := mustAdd(t, s, fmt.Sprintf("t%d", i))
			if i%2 == 1 {
				task.ToggleDone()
				wantDone = append(wantDone, task.ID())
			} else {
				wantActive = append(wantActive, task.ID())
			}
		}
		all := ids(s.Items())

		s.recomputeVisibility(model.FilterAll)
		if got := ids(s.Visible()); !equalStrings(got, all) {
			t.Fatalf("n=%d all: %v, want %v", n, got, all)
		}
		s.recomputeVisibility(model.FilterActive)
		if got := ids(s.Visible()); !equalStrings(got, wantActive) {
			t.Fatalf("n=%d active: %v, want %v", n, got, wantActive)
		}
		s.recomputeVisibility(model.FilterDone)
		if got := ids(s.Visible()); !equalStrings(got, wantDone) {
			t.Fatalf("n=%d done: %v, want %v", n, got, wantDone)
		}
		if got := ids(s.Items()); !equalStrings(got, all) {
			t.Fatalf("n=%d filtering reordered the list: %v", n, got)
		}
	}
}

func TestStore_ToggleRecomputesUnderActiveFilter(t *testing.T) {
	s := NewStore()
	a := mustAdd(t, s, "a")
	b := mustAdd(t, s, "b")
	s.recomputeVisibility(model.FilterActive)

	a.ToggleDone()
	if a.Visible() {
		t.Fatalf("done task still visible under active filter")
	}
	if !b.Visible() || b.Done() {
		t.Fatalf("toggle leaked to another task: %+v", b.Snapshot())
	}
	if got := s.VisibleTask(0); got != b {
		t.Fatalf("VisibleTask(0) = %v, want b", got)
	}
	if s.VisibleTask(1) != nil {
		t.Fatalf("VisibleTask(1) should be nil")
	}
}

func TestStore_SubscribeAndUnsubscribe(t *testing.T) {
	s := NewStore()
	var kinds []EventKind
	unsub := s.Subscribe(func(e Event) { kinds = append(kinds, e.Kind) })

	task := mustAdd(t, s, "a")
	task.ToggleDone()
	task.EnterEdit()
	task.SaveEdit("b")
	s.Remove(task)
	unsub()
	mustAdd(t, s, "ignored")

	want := []EventKind{ItemAdded, ItemToggled, ItemEditStarted, ItemEdited, ItemRemoved}
	if len(kinds) != len(want) {
		t.Fatalf("events = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("event %d = %s, want %s", i, kinds[i], want[i])
		}
	}
}

func TestStore_Stats(t *testing.T) {
	s := NewStore()
	mustAdd(t, s, "a")
	mustAdd(t, s, "b").ToggleDone()
	mustAdd(t, s, "c")
	done, pending := s.Stats()
	if done != 1 || pending != 2 {
		t.Fatalf("stats = %d/%d, want 1/2", done, pending)
	}
}
