// Package tui is the terminal front end of the casino. It owns the game
// engines, turns key presses into engine calls and runs deferred
// transitions from the scheduler on the Bubble Tea goroutine.
package tui

import (
	"fmt"
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/pixelcasino/internal/blackjack"
	"github.com/lox/pixelcasino/internal/config"
	"github.com/lox/pixelcasino/internal/ledger"
	"github.com/lox/pixelcasino/internal/randutil"
	"github.com/lox/pixelcasino/internal/schedule"
	"github.com/lox/pixelcasino/internal/slots"
	"github.com/lox/pixelcasino/internal/videopoker"
)

// Options configures an App.
type Options struct {
	Config    *config.Config
	Wallet    ledger.Ledger
	Scheduler *schedule.Scheduler
	RNG       *rand.Rand
	Logger    *log.Logger
}

// App is the Bubble Tea model for the whole casino.
type App struct {
	s        *session
	scenes   map[SceneID]Scene
	current  SceneID
	help     help.Model
	width    int
	quitting bool
}

// New builds the casino and its games.
func New(opts Options) (*App, error) {
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.RNG == nil {
		opts.RNG, _ = randutil.NewTimeSeeded()
	}
	if opts.Wallet == nil {
		return nil, fmt.Errorf("tui: a wallet is required")
	}
	if opts.Scheduler == nil {
		return nil, fmt.Errorf("tui: a scheduler is required")
	}

	s := &session{
		wallet:    opts.Wallet,
		scheduler: opts.Scheduler,
		config:    opts.Config,
		keys:      DefaultKeyMap(),
		logger:    opts.Logger.WithPrefix("tui"),
	}

	bj := blackjack.New(opts.Wallet,
		blackjack.WithRNG(randutil.Split(opts.RNG)),
		blackjack.WithLogger(opts.Logger.WithPrefix("blackjack")))

	pokerRNG := randutil.Split(opts.RNG)
	newPoker := func() *videopoker.Game {
		return videopoker.New(opts.Wallet,
			videopoker.WithRNG(pokerRNG),
			videopoker.WithLogger(opts.Logger.WithPrefix("poker")))
	}

	machine, err := slots.New(opts.Wallet, opts.Config.SlotSymbols(),
		slots.WithRNG(randutil.Split(opts.RNG)),
		slots.WithLogger(opts.Logger.WithPrefix("slots")))
	if err != nil {
		return nil, fmt.Errorf("failed to build slot machine: %w", err)
	}

	return &App{
		s: s,
		scenes: map[SceneID]Scene{
			SceneMenu:      newMenuScene(s),
			SceneBlackjack: newBlackjackScene(s, bj),
			ScenePoker:     newPokerScene(s, newPoker),
			SceneSlots:     newSlotScene(s, machine),
		},
		current: SceneMenu,
		help:    help.New(),
	}, nil
}

// Init starts listening for deferred tasks.
func (a *App) Init() tea.Cmd {
	return a.waitForTask()
}

// waitForTask returns a command that delivers the next due task
func (a *App) waitForTask() tea.Cmd {
	sched := a.s.scheduler
	return func() tea.Msg {
		select {
		case task := <-sched.Due():
			return taskMsg{task: task}
		case <-sched.Done():
			return nil
		}
	}
}

// Current returns the active scene.
func (a *App) Current() SceneID {
	return a.current
}

// Scene returns the scene registered under id.
func (a *App) Scene(id SceneID) Scene {
	return a.scenes[id]
}

// Update handles messages in the TUI
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case taskMsg:
		a.s.logger.Debug("Running task", "task", msg.task.Name)
		msg.task.Run()
		return a, a.waitForTask()

	case switchSceneMsg:
		a.switchTo(msg.to)
		return a, nil

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.help.Width = msg.Width
		return a, nil

	case tea.KeyMsg:
		keys := a.s.keys
		switch {
		case msg.Type == tea.KeyCtrlC,
			a.current == SceneMenu && key.Matches(msg, keys.Quit):
			a.quitting = true
			return a, tea.Quit
		case a.current != SceneMenu && key.Matches(msg, keys.Back):
			a.switchTo(SceneMenu)
			return a, nil
		}
		return a, a.scenes[a.current].Update(msg)
	}
	return a, nil
}

func (a *App) switchTo(id SceneID) {
	next, ok := a.scenes[id]
	if !ok || id == a.current {
		return
	}
	a.scenes[a.current].Exit()
	a.s.logger.Debug("Switching scene", "from", a.current, "to", id)
	a.current = id
	next.Enter()
}

// View renders the TUI
func (a *App) View() string {
	if a.quitting {
		return ""
	}

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		HeaderStyle.Render("PIXEL CASINO"),
		"  ",
		CoinsStyle.Render(fmt.Sprintf("Coins: %d", a.s.wallet.Balance())),
	)

	scene := a.scenes[a.current]
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		PanelStyle.Render(scene.View()),
		a.help.ShortHelpView(scene.Help()),
	)
}
