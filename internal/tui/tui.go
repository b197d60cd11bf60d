package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/mytodo/internal/model"
	"github.com/Makepad-fr/mytodo/internal/todo"
	"github.com/Makepad-fr/mytodo/internal/ui"
)

const (
	appTitle     = "myToDo App"
	toastTimeout = 3 * time.Second

	// rows used by everything but the list: header, input box, tabs, editor, toast, help
	chromeHeight = 16
)

type focus int

const (
	focusInput focus = iota
	focusList
)

type clearToastMsg struct{ id int }

type modelTUI struct {
	sess *todo.Session
	host *Host
	clip todo.Clipboard

	list      list.Model
	listFocus *bool // shared with the delegate
	focus     focus

	input  textinput.Model // new item draft
	editor textinput.Model // draft of the task being edited
	editID string

	modalFocus confirmFocus

	keys keyMap
	help help.Model

	width, height int
}

// Run starts the Bubble Tea program on sess until the user quits.
func Run(sess *todo.Session, h *Host, clip todo.Clipboard) error {
	p := tea.NewProgram(newModel(sess, h, clip), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(sess *todo.Session, h *Host, clip todo.Clipboard) modelTUI {
	m := modelTUI{
		sess:      sess,
		host:      h,
		clip:      clip,
		listFocus: new(bool),
		keys:      defaultKeyMap(),
		help:      help.New(),
		width:     80,
		height:    24,
	}

	l := list.New(toListItems(sess.Store.Visible()), itemDelegate{focused: m.listFocus}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(true)
	l.SetFilteringEnabled(false)
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)
	l.Styles.PaginationStyle = ui.Current().Help
	l.SetStatusBarItemName("item", "items")
	m.list = l

	// set up text inputs for add & edit
	m.input = textinput.New()
	m.input.Prompt = "> "
	m.input.Placeholder = "Try Something new.."
	m.input.CharLimit = 200
	m.input.Focus()

	m.editor = textinput.New()
	m.editor.Prompt = "> "
	m.editor.Placeholder = "Edit Item"
	m.editor.CharLimit = 200

	m.resize()
	return m
}

// Update and View implement Bubble Tea's Model on modelTUI
func (m modelTUI) Init() tea.Cmd { return textinput.Blink }

func (m modelTUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	renders, toastID := m.host.renders, m.host.toastID

	var cmd tea.Cmd
	m, cmd = m.update(msg)

	if m.host.renders != renders {
		m.syncList()
	}
	if m.host.toastID != toastID {
		cmd = tea.Batch(cmd, clearToastAfter(m.host.toastID))
	}
	return m, cmd
}

func (m modelTUI) update(msg tea.Msg) (modelTUI, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case clearToastMsg:
		// a newer toast replaced this one; keep it
		if msg.id == m.host.toastID {
			m.host.toast = ""
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		switch {
		case m.host.dialog != nil:
			return m.updateModal(msg)
		case m.editID != "":
			return m.updateEditor(msg)
		case m.focus == focusInput:
			return m.updateInput(msg)
		default:
			return m.updateList(msg)
		}
	}

	// non-key messages (cursor blink) go to whichever input is active
	var cmd tea.Cmd
	if m.editID != "" {
		m.editor, cmd = m.editor.Update(msg)
	} else if m.focus == focusInput {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

// modal mode
func (m modelTUI) updateModal(msg tea.KeyMsg) (modelTUI, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Yes):
		return m.confirmDelete()
	case key.Matches(msg, m.keys.No):
		m.sess.Confirm.Cancel()
		return m, nil
	case key.Matches(msg, m.keys.SwitchBtn):
		m.modalFocus = m.modalFocus.toggle()
		return m, nil
	case key.Matches(msg, m.keys.Select):
		if m.modalFocus == confirmFocusConfirm {
			return m.confirmDelete()
		}
		m.sess.Confirm.Cancel()
		return m, nil
	}
	return m, nil
}

func (m modelTUI) confirmDelete() (modelTUI, tea.Cmd) {
	if _, err := m.sess.Confirm.Confirm(); err != nil {
		m.host.Notify("delete: " + err.Error())
	}
	return m, nil
}

// edit mode
func (m modelTUI) updateEditor(msg tea.KeyMsg) (modelTUI, tea.Cmd) {
	t := m.sess.Store.Find(m.editID)
	if t == nil {
		m.stopEditing()
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Submit):
		text := m.editor.Value()
		m.stopEditing()
		t.SaveEdit(text)
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.stopEditing()
		t.CancelEdit()
		return m, nil
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	t.SetDraft(m.editor.Value())
	return m, cmd
}

func (m *modelTUI) stopEditing() {
	m.editID = ""
	m.editor.SetValue("")
	m.editor.Blur()
}

// add mode
func (m modelTUI) updateInput(msg tea.KeyMsg) (modelTUI, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.sess.Input.OnTextChanged(m.input.Value())
		if m.sess.Input.Submit() {
			m.input.SetValue("")
		}
		return m, nil
	case key.Matches(msg, m.keys.Focus), key.Matches(msg, m.keys.Cancel):
		m.setFocus(focusList)
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.sess.Input.OnTextChanged(m.input.Value())
	return m, cmd
}

func (m modelTUI) updateList(msg tea.KeyMsg) (modelTUI, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Focus), key.Matches(msg, m.keys.Add), key.Matches(msg, m.keys.Cancel):
		cmd := m.setFocus(focusInput)
		return m, cmd
	case key.Matches(msg, m.keys.FilterAll):
		_ = m.sess.Filter.Change(model.FilterAll)
		return m, nil
	case key.Matches(msg, m.keys.FilterAct):
		_ = m.sess.Filter.Change(model.FilterActive)
		return m, nil
	case key.Matches(msg, m.keys.FilterDn):
		_ = m.sess.Filter.Change(model.FilterDone)
		return m, nil
	case key.Matches(msg, m.keys.PrevTab):
		m.sess.Filter.Prev()
		return m, nil
	case key.Matches(msg, m.keys.NextTab):
		m.sess.Filter.Next()
		return m, nil
	case key.Matches(msg, m.keys.Theme):
		name := ui.CycleTheme()
		m.list.Styles.PaginationStyle = ui.Current().Help
		m.host.Notify("Theme: " + name)
		return m, nil
	}

	t := m.selectedTask()
	if t != nil {
		switch {
		case key.Matches(msg, m.keys.Toggle):
			t.ToggleDone()
			return m, nil
		case key.Matches(msg, m.keys.Edit):
			t.EnterEdit()
			m.editID = t.ID()
			m.editor.SetValue(t.Draft())
			m.editor.CursorEnd()
			cmd := m.editor.Focus()
			return m, cmd
		case key.Matches(msg, m.keys.Delete):
			m.modalFocus = confirmFocusConfirm
			if err := t.RequestDelete(m.sess.Confirm); err != nil {
				m.host.Notify("delete: " + err.Error())
			}
			return m, nil
		case key.Matches(msg, m.keys.Copy):
			if err := t.CopyText(m.clip); err != nil {
				m.host.Notify(err.Error())
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *modelTUI) setFocus(f focus) tea.Cmd {
	m.focus = f
	*m.listFocus = f == focusList
	if f == focusInput {
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}

func (m modelTUI) selectedTask() *todo.Task {
	it, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return nil
	}
	return m.sess.Store.Find(it.ID)
}

// syncList rebuilds the list from the store's visible snapshot, keeping the
// cursor in range.
func (m *modelTUI) syncList() {
	idx := m.list.Index()
	items := toListItems(m.sess.Store.Visible())
	m.list.SetItems(items)
	if idx >= len(items) {
		idx = len(items) - 1
	}
	if idx >= 0 {
		m.list.Select(idx)
	}
}

func (m *modelTUI) resize() {
	w := m.width - 4
	if w < 20 {
		w = 20
	}
	h := m.height - chromeHeight
	if h < 3 {
		h = 3
	}
	m.list.SetSize(w, h)
	m.input.Width = w - 4
	m.editor.Width = w - 4
	m.help.Width = w
}

func clearToastAfter(id int) tea.Cmd {
	return tea.Tick(toastTimeout, func(time.Time) tea.Msg { return clearToastMsg{id: id} })
}

func (m modelTUI) View() string {
	if d := m.host.dialog; d != nil {
		modal := renderConfirmModal(*d, m.modalFocus, m.help.View(m.keys.modalHelp()))
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
	}

	t := ui.Current()
	done, pending := m.sess.Store.Stats()

	var b strings.Builder
	b.WriteString(t.Title.Render(appTitle) + "   " + ui.Counts(done, pending) + "\n")
	b.WriteString(t.Muted.Render(ui.ProgressBar(done, done+pending, 28)) + "\n\n")

	b.WriteString(m.inputView() + "\n")
	b.WriteString(m.tabsView() + "\n\n")

	if len(m.list.Items()) == 0 {
		b.WriteString(t.Muted.Render("no items") + "\n")
	} else {
		b.WriteString(m.list.View() + "\n")
	}

	if m.editID != "" {
		box := lipgloss.NewStyle().Border(t.Border).BorderForeground(t.BorderColor).Padding(0, 1)
		b.WriteString(box.Render("Edit Item\n"+m.editor.View()) + "\n")
	}

	if m.host.toast != "" {
		b.WriteString(t.Success.Render(m.host.toast) + "\n")
	} else {
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.currentHelp()))
	return ui.Panel([]string{b.String()})
}

func (m modelTUI) inputView() string {
	t := ui.Current()
	label := "New Item"
	if m.focus == focusInput && m.editID == "" {
		label = t.Accent.Render(label)
	}
	box := lipgloss.NewStyle().Border(t.Border).BorderForeground(t.BorderColor).Padding(0, 1)
	helper := t.Muted.Render("What do you plan to do?") + "  " + t.Muted.Render(m.sess.Input.Counter())
	return box.Render(label+"\n"+m.input.View()) + "\n" + helper
}

func (m modelTUI) tabsView() string {
	t := ui.Current()
	tabs := make([]string, 0, len(model.Filters))
	for i, f := range model.Filters {
		label := fmt.Sprintf("%d %s", i+1, f.Label())
		if f == m.sess.Filter.Current() {
			tabs = append(tabs, t.ActiveTab.Render(label))
		} else {
			tabs = append(tabs, t.Tab.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m modelTUI) currentHelp() helpKeys {
	switch {
	case m.editID != "":
		return m.keys.editHelp()
	case m.focus == focusInput:
		return m.keys.inputHelp()
	default:
		return m.keys.listHelp()
	}
}
