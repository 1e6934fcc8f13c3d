package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Earlier key.Binding
	Later   key.Binding
	Grow    key.Binding
	Shrink  key.Binding
	Delete  key.Binding
	PrevDay key.Binding
	NextDay key.Binding
	Reload  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Earlier, k.Later, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PrevDay, k.NextDay},
		{k.Earlier, k.Later, k.Grow, k.Shrink, k.Delete},
		{k.Reload, k.Help, k.Quit},
	}
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Earlier: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "30m earlier"),
		),
		Later: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "30m later"),
		),
		Grow: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "grow 30m"),
		),
		Shrink: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "shrink 30m"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete block"),
		),
		PrevDay: key.NewBinding(
			key.WithKeys("p", "shift+left"),
			key.WithHelp("p", "prev day"),
		),
		NextDay: key.NewBinding(
			key.WithKeys("n", "shift+right"),
			key.WithHelp("n", "next day"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
