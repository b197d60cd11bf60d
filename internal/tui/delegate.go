package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/mytodo/internal/model"
	"github.com/Makepad-fr/mytodo/internal/ui"
)

// listItem adapts a task snapshot to bubbles/list.Item
type listItem struct {
	model.Item
}

func (i listItem) Title() string       { return i.Text }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.Text }

func toListItems(items []model.Item) []list.Item {
	out := make([]list.Item, 0, len(items))
	for _, it := range items {
		out = append(out, listItem{it})
	}
	return out
}

// Custom delegate to control how items render (single line)
type itemDelegate struct {
	focused *bool
}

func (d itemDelegate) Height() int                             { return 1 }
func (d itemDelegate) Spacing() int                            { return 0 }
func (d itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	t := ui.Current()

	text := it.Text
	if it.Done {
		text = t.DoneText.Render(text)
	}
	if it.Mode == model.ModeEdit {
		text += " " + t.Accent.Render("(editing)")
	}

	prefix := "  "
	if index == m.Index() && d.focused != nil && *d.focused {
		prefix = t.Selected.Render(">") + " "
	}
	fmt.Fprintf(w, "%s%s %s", prefix, ui.Checkbox(it.Done), text)
}
