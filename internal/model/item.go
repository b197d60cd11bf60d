package model

// Mode is how a task row is presented: read-only or with an inline editor.
type Mode int

const (
	ModeView Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "view"
}

// Item is a read-only snapshot of a task, what hosts render.
// The live task is owned by the store; an Item never writes back.
type Item struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Done    bool   `json:"done"`
	Mode    Mode   `json:"mode"`
	Visible bool   `json:"visible"`
}
