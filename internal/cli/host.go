package cli

import (
	"fmt"
	"io"

	"github.com/Makepad-fr/mytodo/internal/todo"
	"github.com/Makepad-fr/mytodo/internal/ui"
)

// lineHost prints notices and modal prompts as plain lines. Rendering is
// explicit in batch mode (`ls`), so Render does nothing.
type lineHost struct {
	out io.Writer
}

func (h lineHost) Render() {}

func (h lineHost) Notify(msg string) { ui.OK(h.out, msg) }

func (h lineHost) OpenModal(d todo.Dialog) {
	fmt.Fprintf(h.out, "%s %s (%s/%s)\n",
		ui.Current().Pending.Render("? "+d.Title+":"), d.Body, d.Confirm, d.Cancel)
}

func (h lineHost) CloseModal() {}
