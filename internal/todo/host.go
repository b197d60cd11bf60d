package todo

// Dialog is a modal with exactly two actions.
type Dialog struct {
	Title   string
	Body    string
	Confirm string
	Cancel  string
}

// Host is the presentation layer the core drives. Every call is made from
// inside the event currently being handled.
type Host interface {
	Render()
	Notify(msg string)
	OpenModal(d Dialog)
	CloseModal()
}

// Clipboard is the system clipboard as seen by the core.
type Clipboard interface {
	WriteAll(text string) error
}

// ClipboardFunc adapts a plain function such as clipboard.WriteAll.
type ClipboardFunc func(text string) error

func (f ClipboardFunc) WriteAll(text string) error { return f(text) }

// NopHost ignores everything. Handy for tests and headless use.
type NopHost struct{}

func (NopHost) Render()          {}
func (NopHost) Notify(string)    {}
func (NopHost) OpenModal(Dialog) {}
func (NopHost) CloseModal()      {}
