package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lox/pixelcasino/internal/slots"
)

// SlotScene is the three reel slot machine.
type SlotScene struct {
	s       *session
	machine *slots.Machine
	bet     *BetSelector

	// clearGen invalidates message clears scheduled before the latest one.
	clearGen int
}

func newSlotScene(s *session, machine *slots.Machine) *SlotScene {
	bet := NewBetSelector(s.config.Slots.BetOptions, s.config.Slots.DefaultBet)
	machine.SetBet(bet.Amount())
	return &SlotScene{s: s, machine: machine, bet: bet}
}

func (sc *SlotScene) Enter() {
	if sc.machine.Phase() == slots.Idle {
		sc.bet.Clamp(sc.s.wallet.Balance())
		sc.machine.SetBet(sc.bet.Amount())
	}
}

func (sc *SlotScene) Exit() {}

func (sc *SlotScene) Update(msg tea.KeyMsg) tea.Cmd {
	keys := sc.s.keys
	idle := sc.machine.Phase() == slots.Idle

	switch {
	case key.Matches(msg, keys.BetUp):
		if idle {
			sc.bet.Raise(sc.s.wallet.Balance())
			sc.machine.SetBet(sc.bet.Amount())
		}
	case key.Matches(msg, keys.BetDown):
		if idle {
			sc.bet.Lower()
			sc.machine.SetBet(sc.bet.Amount())
		}
	case key.Matches(msg, keys.Right):
		sc.bet.NextChip()
	case key.Matches(msg, keys.Left):
		sc.bet.PrevChip()
	case key.Matches(msg, keys.Spin):
		sc.spin()
	}
	return nil
}

func (sc *SlotScene) spin() {
	if sc.machine.Phase() != slots.Idle {
		return
	}
	if !sc.machine.Spin() {
		sc.scheduleClear(sc.s.config.NoticeDelay())
		return
	}
	sc.s.scheduler.After(sc.s.config.SpinDelay(), "slots.reveal", func() {
		sc.machine.Reveal()
		sc.scheduleClear(sc.s.config.ResultDelay())
	})
}

func (sc *SlotScene) scheduleClear(delay time.Duration) {
	sc.clearGen++
	gen := sc.clearGen
	sc.s.scheduler.After(delay, "slots.clear", func() {
		if gen == sc.clearGen {
			sc.machine.ClearMessage()
		}
	})
}

func (sc *SlotScene) View() string {
	st := sc.machine.Snapshot()

	var v strings.Builder
	v.WriteString(TitleStyle.Render("SLOTS"))
	v.WriteString("\n\n")

	reels := make([]string, slots.Reels)
	for i := range reels {
		glyph := st.Glyphs[i]
		if st.Phase == slots.Spinning {
			glyph = "?"
		}
		reels[i] = ReelStyle.Render(glyph)
	}
	v.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, reels...))
	v.WriteString("\n")

	tone := ToneNeutral
	switch {
	case st.Message == slots.NotEnoughCoinsMessage:
		tone = ToneNotice
	case st.Message == slots.NoWinMessage:
		tone = ToneLoss
	case st.LastPayout > 0 && st.Phase == slots.Idle:
		tone = ToneWin
	}
	v.WriteString(renderMessage(st.Message, tone))
	v.WriteString("\n\n")

	v.WriteString(renderBet(sc.bet))
	v.WriteString("\n\n")

	for _, sym := range sc.machine.Symbols() {
		glyph := sym.Glyph
		if glyph == "" {
			glyph = sym.Name
		}
		v.WriteString(InfoStyle.Render(fmt.Sprintf("%s %s %s  pays %dx", glyph, glyph, glyph, sym.ThreePayout)))
		v.WriteString("\n")
	}
	return v.String()
}

func (sc *SlotScene) Help() []key.Binding {
	k := sc.s.keys
	return []key.Binding{k.Spin, k.BetUp, k.BetDown, k.Right, k.Back}
}
