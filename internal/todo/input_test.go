package todo

import "testing"

func TestInputBuffer_CountsRunes(t *testing.T) {
	b := NewInputBuffer(NewStore())
	b.OnTextChanged("héllo")
	if b.Count() != 5 || b.Counter() != "5 chars" {
		t.Fatalf("count = %d counter %q", b.Count(), b.Counter())
	}
}

func TestInputBuffer_SubmitAddsAndClears(t *testing.T) {
	sess, h := newTestSession(t)
	sess.Input.OnTextChanged("Buy milk")
	if !sess.Input.Submit() {
		t.Fatalf("submit returned false")
	}
	if sess.Store.Len() != 1 || sess.Store.At(0).Text() != "Buy milk" {
		t.Fatalf("store = %v", texts(sess.Store.Items()))
	}
	if sess.Input.Draft() != "" || sess.Input.Counter() != "0 chars" {
		t.Fatalf("buffer not cleared: %q %q", sess.Input.Draft(), sess.Input.Counter())
	}
	if h.lastNotice() != "Added New To-Do Item" {
		t.Fatalf("notice = %q", h.lastNotice())
	}
}

func TestInputBuffer_BlankSubmitIsSilent(t *testing.T) {
	sess, h := newTestSession(t)
	for _, in := range []string{"", "   "} {
		sess.Input.OnTextChanged(in)
		if sess.Input.Submit() {
			t.Fatalf("Submit(%q) added a task", in)
		}
		if sess.Input.Draft() != in {
			t.Fatalf("blank submit should leave the draft alone")
		}
	}
	if sess.Store.Len() != 0 || len(h.notices) != 0 {
		t.Fatalf("blank submit had effects: len %d notices %v", sess.Store.Len(), h.notices)
	}
}
