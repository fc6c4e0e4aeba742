package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// DesktopKeyMap defines keybindings for the desktop.
type DesktopKeyMap struct {
	Start    key.Binding
	Cycle    key.Binding
	Close    key.Binding
	Minimize key.Binding
	Maximize key.Binding
	Theme    key.Binding
	Dismiss  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var _ KeyMap = DesktopKeyMap{}

// ShortHelp returns keybindings to show in compact help.
func (k DesktopKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Cycle, k.Close, k.Minimize, k.Maximize, k.Theme, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k DesktopKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Dismiss},
		{k.Cycle, k.Close, k.Minimize, k.Maximize},
		{k.Theme, k.Help, k.Quit},
	}
}

// DefaultDesktopKeyMap returns the default desktop keybindings.
func DefaultDesktopKeyMap() DesktopKeyMap {
	return DesktopKeyMap{
		Start: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "start"),
		),
		Cycle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next window"),
		),
		Close: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "close"),
		),
		Minimize: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "minimize"),
		),
		Maximize: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "maximize"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "dismiss"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
