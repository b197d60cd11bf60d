package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/Makepad-fr/mytodo/internal/model"
	"github.com/Makepad-fr/mytodo/internal/todo"
	"github.com/Makepad-fr/mytodo/internal/ui"
)

// Options wire a Runner to its outputs.
type Options struct {
	Out       io.Writer
	Err       io.Writer
	Clipboard todo.Clipboard
	Logger    *slog.Logger
}

// Runner drives one in-memory session from text commands.
type Runner struct {
	sess *todo.Session
	out  io.Writer
	err  io.Writer
	clip todo.Clipboard
	log  *slog.Logger
}

func NewRunner(opt Options) *Runner {
	if opt.Out == nil {
		opt.Out = io.Discard
	}
	if opt.Err == nil {
		opt.Err = opt.Out
	}
	if opt.Logger == nil {
		opt.Logger = discardLogger()
	}
	return &Runner{
		sess: todo.NewSession(lineHost{out: opt.Out}, todo.WithLogger(opt.Logger)),
		out:  opt.Out,
		err:  opt.Err,
		clip: opt.Clipboard,
		log:  opt.Logger,
	}
}

func (r *Runner) Session() *todo.Session { return r.sess }

// RunScript executes commands line by line and returns an exit code
// (0 ok, 1 error, 2 usage). It stops at the first failing line.
func (r *Runner) RunScript(in io.Reader) int {
	sc := bufio.NewScanner(in)
	n := 0
	for sc.Scan() {
		n++
		if err := r.Exec(sc.Text()); err != nil {
			ui.Fail(r.err, fmt.Sprintf("line %d: %v", n, err))
			r.log.Warn("batch command failed", "line", n, "err", err)
			return exitCode(err)
		}
	}
	if err := sc.Err(); err != nil {
		ui.Fail(r.err, "read: "+err.Error())
		return 1
	}
	return 0
}

// Exec runs a single command. Blank lines and # comments are ignored.
func (r *Runner) Exec(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}
	cmd, rest, _ := strings.Cut(line, " ")

	switch cmd {
	case "help":
		PrintHelp(r.out)
		return nil

	case "ls":
		r.list()
		return nil

	case "add":
		// same path as the input box: blank text is silently ignored
		r.sess.Input.OnTextChanged(rest)
		r.sess.Input.Submit()
		return nil

	case "done":
		t, err := r.taskArg(cmd, rest)
		if err != nil {
			return err
		}
		t.ToggleDone()
		ui.OK(r.out, "toggled")
		return nil

	case "edit":
		idx, text, _ := strings.Cut(strings.TrimSpace(rest), " ")
		t, err := r.taskArg(cmd, idx)
		if err != nil {
			return err
		}
		t.EnterEdit()
		t.SaveEdit(text)
		return nil

	case "rm":
		t, err := r.taskArg(cmd, rest)
		if err != nil {
			return err
		}
		return t.RequestDelete(r.sess.Confirm)

	case "yes":
		_, err := r.sess.Confirm.Confirm()
		return err

	case "no":
		r.sess.Confirm.Cancel()
		return nil

	case "filter":
		f, err := model.ParseFilter(rest)
		if err != nil {
			return usagef("filter: %v", err)
		}
		if err := r.sess.Filter.Change(f); err != nil {
			return err
		}
		ui.Info(r.out, "filter: "+f.Label())
		return nil

	case "copy":
		t, err := r.taskArg(cmd, rest)
		if err != nil {
			return err
		}
		if r.clip == nil {
			return errors.New("copy: no clipboard available")
		}
		return t.CopyText(r.clip)
	}

	return usagef("unknown command: %s (try `help`)", cmd)
}

// taskArg resolves a 1-based index into the visible list.
func (r *Runner) taskArg(cmd, arg string) (*todo.Task, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return nil, usagef("usage: %s <index>", cmd)
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		return nil, usagef("%s: not a number: %s", cmd, arg)
	}
	visible := len(r.sess.Store.Visible())
	t := r.sess.Store.VisibleTask(n - 1)
	if t == nil {
		return nil, usagef("index out of range: have %d, got %d (hint: run `ls` to see valid indexes)", visible, n)
	}
	return t, nil
}

func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `Commands (one per line):
  add <text...>        Add a new item (blank text is ignored)
  ls                   List visible items
  done <index>         Toggle done for item at 1-based visible index
  edit <index> <text>  Replace the item's text
  rm <index>           Ask to delete the item; answer with yes / no
  yes | no             Confirm or cancel the pending delete
  filter <name>        all | active | done
  copy <index>         Copy the item's text to the clipboard
  # ...                Comment

Example:
  add Buy milk
  done 1
  filter done
  ls
`)
}

// -------------- rendering helpers --------------

func (r *Runner) list() {
	t := ui.Current()
	done, pending := r.sess.Store.Stats()
	header := fmt.Sprintf("%s  %s  %s",
		t.Title.Render("Todos"),
		ui.Counts(done, pending),
		t.Muted.Render("["+r.sess.Filter.Current().Label()+"]"),
	)

	lines := []string{
		header,
		t.Muted.Render(ui.ProgressBar(done, done+pending, 28)),
		"",
	}
	lines = append(lines, flatLines(r.sess.Store.Visible())...)
	fmt.Fprintln(r.out, ui.Panel(lines))
}

// maxItemWidth caps an item's text in terminal cells.
const maxItemWidth = 80

func flatLines(items []model.Item) []string {
	t := ui.Current()
	if len(items) == 0 {
		return []string{t.Muted.Render("no items")}
	}
	out := make([]string, 0, len(items))
	for i, it := range items {
		idx := fmt.Sprintf("%2d.", i+1)
		text := ansi.Truncate(it.Text, maxItemWidth, "...")
		if it.Done {
			text = t.DoneText.Render(text)
		}
		out = append(out, fmt.Sprintf("%s %s %s", t.Muted.Render(idx), ui.Checkbox(it.Done), text))
	}
	return out
}
