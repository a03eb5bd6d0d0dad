package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type menuItem struct {
	label string
	scene SceneID
	quit  bool
}

// MenuScene lists the games.
type MenuScene struct {
	s      *session
	items  []menuItem
	cursor int
}

func newMenuScene(s *session) *MenuScene {
	return &MenuScene{
		s: s,
		items: []menuItem{
			{label: "Blackjack", scene: SceneBlackjack},
			{label: "Video Poker", scene: ScenePoker},
			{label: "Slots", scene: SceneSlots},
			{label: "Quit", quit: true},
		},
	}
}

func (m *MenuScene) Enter() {}
func (m *MenuScene) Exit()  {}

func (m *MenuScene) Update(msg tea.KeyMsg) tea.Cmd {
	keys := m.s.keys
	switch {
	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.Select):
		item := m.items[m.cursor]
		if item.quit {
			return tea.Quit
		}
		return switchScene(item.scene)
	}
	return nil
}

func (m *MenuScene) View() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Choose a game"))
	b.WriteString("\n\n")
	for i, item := range m.items {
		if i == m.cursor {
			b.WriteString(SelectedStyle.Render("> " + item.label))
		} else {
			b.WriteString("  " + item.label)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *MenuScene) Help() []key.Binding {
	k := m.s.keys
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}
