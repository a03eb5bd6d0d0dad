package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding the casino understands. Scenes pick the ones
// they use for the help bar.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Select  key.Binding
	Back    key.Binding
	Quit    key.Binding
	BetUp   key.Binding
	BetDown key.Binding
	Deal    key.Binding
	Hit     key.Binding
	Stand   key.Binding
	Hold    key.Binding
	Holds   [5]key.Binding
	Draw    key.Binding
	Spin    key.Binding
}

// DefaultKeyMap returns the stock bindings.
func DefaultKeyMap() KeyMap {
	km := KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "right"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
		BetUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "raise bet"),
		),
		BetDown: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "lower bet"),
		),
		Deal: key.NewBinding(
			key.WithKeys("d", "enter"),
			key.WithHelp("d", "deal"),
		),
		Hit: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "hit"),
		),
		Stand: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "stand"),
		),
		Hold: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "hold"),
		),
		Draw: key.NewBinding(
			key.WithKeys("d", "enter"),
			key.WithHelp("d", "draw"),
		),
		Spin: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "spin"),
		),
	}
	for i := range km.Holds {
		n := string(rune('1' + i))
		km.Holds[i] = key.NewBinding(
			key.WithKeys(n),
			key.WithHelp(n, "hold card "+n),
		)
	}
	return km
}
