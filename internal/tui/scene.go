package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/pixelcasino/internal/config"
	"github.com/lox/pixelcasino/internal/ledger"
	"github.com/lox/pixelcasino/internal/schedule"
)

// SceneID names a screen of the casino.
type SceneID int

const (
	SceneMenu SceneID = iota
	SceneBlackjack
	ScenePoker
	SceneSlots
)

func (id SceneID) String() string {
	switch id {
	case SceneMenu:
		return "menu"
	case SceneBlackjack:
		return "blackjack"
	case ScenePoker:
		return "poker"
	case SceneSlots:
		return "slots"
	default:
		return "unknown"
	}
}

// Scene is one screen of the casino. The App forwards key presses to the
// active scene and renders its view below the shared header.
type Scene interface {
	// Enter is called when the scene becomes active.
	Enter()
	// Exit is called when another scene takes over.
	Exit()
	Update(msg tea.KeyMsg) tea.Cmd
	View() string
	// Help lists the bindings shown in the help bar.
	Help() []key.Binding
}

// session is what every scene shares: the coin balance, the deferred task
// queue and the settings.
type session struct {
	wallet    ledger.Ledger
	scheduler *schedule.Scheduler
	config    *config.Config
	keys      KeyMap
	logger    *log.Logger
}

// switchSceneMsg asks the App to change the active scene.
type switchSceneMsg struct {
	to SceneID
}

func switchScene(to SceneID) tea.Cmd {
	return func() tea.Msg {
		return switchSceneMsg{to: to}
	}
}

// taskMsg carries a deferred transition that has become due.
type taskMsg struct {
	task schedule.Task
}
