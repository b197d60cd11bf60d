package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Toggle    key.Binding
	Edit      key.Binding
	Delete    key.Binding
	Copy      key.Binding
	Add       key.Binding
	Focus     key.Binding
	FilterAll key.Binding
	FilterAct key.Binding
	FilterDn  key.Binding
	PrevTab   key.Binding
	NextTab   key.Binding
	Theme     key.Binding
	Quit      key.Binding
	ForceQuit key.Binding

	Submit key.Binding
	Cancel key.Binding

	Yes       key.Binding
	No        key.Binding
	SwitchBtn key.Binding
	Select    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Toggle:    key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle done")),
		Edit:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Delete:    key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Copy:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy")),
		Add:       key.NewBinding(key.WithKeys("a", "i"), key.WithHelp("a", "add")),
		Focus:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch focus")),
		FilterAll: key.NewBinding(key.WithKeys("1"), key.WithHelp("1/2/3", "all/not yet done/done")),
		FilterAct: key.NewBinding(key.WithKeys("2")),
		FilterDn:  key.NewBinding(key.WithKeys("3")),
		PrevTab:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", "filter")),
		NextTab:   key.NewBinding(key.WithKeys("right", "l")),
		Theme:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),

		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),

		Yes:       key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yes")),
		No:        key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n/esc", "no")),
		SwitchBtn: key.NewBinding(key.WithKeys("tab", "shift+tab", "left", "right", "h", "l"), key.WithHelp("tab", "switch")),
		Select:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	}
}

// helpKeys adapts a flat binding slice to help.KeyMap.
type helpKeys []key.Binding

func (h helpKeys) ShortHelp() []key.Binding  { return h }
func (h helpKeys) FullHelp() [][]key.Binding { return [][]key.Binding{h} }

func (k keyMap) listHelp() helpKeys {
	return helpKeys{k.Toggle, k.Edit, k.Delete, k.Copy, k.Add, k.FilterAll, k.PrevTab, k.Theme, k.Quit}
}

func (k keyMap) inputHelp() helpKeys {
	submit := k.Submit
	submit.SetHelp("enter", "add")
	return helpKeys{submit, k.Focus}
}

func (k keyMap) editHelp() helpKeys {
	return helpKeys{k.Submit, k.Cancel}
}

func (k keyMap) modalHelp() helpKeys {
	return helpKeys{k.SwitchBtn, k.Select, k.Yes, k.No}
}
