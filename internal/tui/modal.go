package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/mytodo/internal/todo"
	"github.com/Makepad-fr/mytodo/internal/ui"
)

type confirmFocus int

const (
	confirmFocusConfirm confirmFocus = iota
	confirmFocusCancel
)

func (f confirmFocus) toggle() confirmFocus {
	if f == confirmFocusConfirm {
		return confirmFocusCancel
	}
	return confirmFocusConfirm
}

func renderConfirmModal(d todo.Dialog, focus confirmFocus, help string) string {
	t := ui.Current()
	confirm := t.Button.Render(d.Confirm)
	cancel := t.Button.Render(d.Cancel)
	if focus == confirmFocusConfirm {
		confirm = t.ButtonActive.Render(d.Confirm)
	} else {
		cancel = t.ButtonActive.Render(d.Cancel)
	}
	controls := lipgloss.JoinHorizontal(lipgloss.Top, confirm, " ", cancel)

	content := strings.Join([]string{
		t.Title.Render(d.Title),
		"",
		d.Body,
		"",
		controls,
		"",
		help,
	}, "\n")
	return lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(1, 2).
		Render(content)
}
