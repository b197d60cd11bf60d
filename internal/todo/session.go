package todo

import (
	"io"
	"log/slog"
)

// Session is one running list: the store plus the controllers that act on
// it, all reporting to a single host.
type Session struct {
	Store   *Store
	Filter  *FilterController
	Confirm *DeleteConfirmation
	Input   *InputBuffer

	host Host
	log  *slog.Logger
}

type Option func(*Session)

func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

func NewSession(host Host, opts ...Option) *Session {
	if host == nil {
		host = NopHost{}
	}
	s := &Session{
		host: host,
		log:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, o := range opts {
		o(s)
	}
	s.Store = NewStore()
	s.Filter = NewFilterController(s.Store)
	s.Confirm = NewDeleteConfirmation(s.Store, host)
	s.Input = NewInputBuffer(s.Store)
	s.Store.Subscribe(s.onEvent)
	return s
}

func (s *Session) Host() Host { return s.host }

// Seed adds each non-blank text as a task, skipping blanks the way the input does.
func (s *Session) Seed(texts ...string) {
	for _, text := range texts {
		s.Input.OnTextChanged(text)
		s.Input.Submit()
	}
	s.Input.OnTextChanged("")
}

func (s *Session) onEvent(e Event) {
	attrs := []any{"event", e.Kind.String(), "filter", e.Filter.String()}
	if e.Task != nil {
		attrs = append(attrs, "id", e.Task.ID())
	}
	s.log.Debug("todo event", attrs...)

	s.host.Render()
	if msg := e.Notice(); msg != "" {
		s.host.Notify(msg)
	}
}
