package tui

import "github.com/Makepad-fr/mytodo/internal/todo"

// Host collects what the core asks the screen to do while an event is being
// handled; the model reads it back before returning from Update.
type Host struct {
	renders int
	toast   string
	toastID int
	dialog  *todo.Dialog
}

func NewHost() *Host { return &Host{} }

func (h *Host) Render() { h.renders++ }

func (h *Host) Notify(msg string) {
	h.toast = msg
	h.toastID++
}

func (h *Host) OpenModal(d todo.Dialog) { h.dialog = &d }

func (h *Host) CloseModal() { h.dialog = nil }

// Dialog is the open modal, nil when none.
func (h *Host) Dialog() *todo.Dialog { return h.dialog }

func (h *Host) Toast() string { return h.toast }
