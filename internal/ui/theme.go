package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Selected, DoneText, Help                      lipgloss.Style
	Tab, ActiveTab                                lipgloss.Style
	Button, ButtonActive                          lipgloss.Style

	Border                   lipgloss.Border
	BorderColor              lipgloss.TerminalColor
	BoxUnchecked, BoxChecked string
	SymDone, SymPending      string
}

// Themes lists the names SetTheme accepts.
var Themes = []string{"classic", "neon", "mono"}

var current = classic()

// SetTheme switches the palette. Unknown names leave the current theme in place.
func SetTheme(name string) error {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "classic":
		current = classic()
	case "neon":
		current = neon()
	case "mono":
		current = mono()
	default:
		return fmt.Errorf("unknown theme %q (want %s)", name, strings.Join(Themes, "|"))
	}
	return nil
}

// Expose what renderers need
func Current() Theme { return current }

// CycleTheme switches to the theme after the current one in Themes and
// returns its name.
func CycleTheme() string {
	next := Themes[0]
	for i, name := range Themes {
		if name == current.Name {
			next = Themes[(i+1)%len(Themes)]
			break
		}
	}
	_ = SetTheme(next)
	return next
}

func classic() Theme {
	return Theme{
		Name:         "classic",
		Title:        lipgloss.NewStyle().Bold(true),
		Muted:        lipgloss.NewStyle().Faint(true),
		Accent:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Pending:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Selected:     lipgloss.NewStyle().Bold(true).Reverse(true),
		DoneText:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
		Help:         lipgloss.NewStyle().Faint(true),
		Tab:          lipgloss.NewStyle().Padding(0, 1).Faint(true),
		ActiveTab:    lipgloss.NewStyle().Padding(0, 1).Bold(true).Underline(true).Foreground(lipgloss.Color("12")),
		Button:       lipgloss.NewStyle().Padding(0, 1).Background(lipgloss.Color("238")),
		ButtonActive: lipgloss.NewStyle().Padding(0, 1).Bold(true).Background(lipgloss.Color("12")).Foreground(lipgloss.Color("0")),
		Border:       lipgloss.RoundedBorder(),
		BorderColor:  lipgloss.Color("8"),
		BoxUnchecked: "☐", BoxChecked: "☑",
		SymDone: "✔", SymPending: "•",
	}
}

func neon() Theme {
	t := classic()
	t.Name = "neon"
	t.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")) // bright magenta
	t.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	t.Pending = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	t.ActiveTab = t.ActiveTab.Foreground(lipgloss.Color("13"))
	t.ButtonActive = t.ButtonActive.Background(lipgloss.Color("13"))
	t.Border = lipgloss.ThickBorder()
	t.BorderColor = lipgloss.Color("13")
	t.BoxUnchecked, t.BoxChecked = "◻", "◼"
	return t
}

func mono() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Name:  "mono",
		Title: plain.Bold(true), Muted: plain, Accent: plain,
		Success: plain, Error: plain.Bold(true), Pending: plain,
		Selected: plain.Reverse(true), DoneText: plain.Strikethrough(true), Help: plain,
		Tab: plain.Padding(0, 1), ActiveTab: plain.Padding(0, 1).Underline(true).Bold(true),
		Button: plain.Padding(0, 1), ButtonActive: plain.Padding(0, 1).Reverse(true),
		Border:       lipgloss.ASCIIBorder(),
		BorderColor:  lipgloss.NoColor{},
		BoxUnchecked: "[ ]", BoxChecked: "[x]",
		SymDone: "x", SymPending: "-",
	}
}
