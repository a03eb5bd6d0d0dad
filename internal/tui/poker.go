package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lox/pixelcasino/internal/videopoker"
)

// PokerScene is the Jacks or Better machine.
type PokerScene struct {
	s       *session
	newGame func() *videopoker.Game
	game    *videopoker.Game
	bet     *BetSelector
	cursor  int
	notice  string
}

func newPokerScene(s *session, newGame func() *videopoker.Game) *PokerScene {
	return &PokerScene{
		s:       s,
		newGame: newGame,
		game:    newGame(),
		bet:     NewChipSelector(s.config.Poker.BetOptions),
	}
}

// Enter sits down at a fresh machine.
func (p *PokerScene) Enter() {
	p.game = p.newGame()
	p.cursor = 0
	p.notice = ""
}

func (p *PokerScene) Exit() {}

func (p *PokerScene) Update(msg tea.KeyMsg) tea.Cmd {
	keys := p.s.keys

	if p.game.CanDraw() {
		for i, hold := range keys.Holds {
			if key.Matches(msg, hold) {
				p.cursor = i
				p.game.ToggleHold(i)
				return nil
			}
		}
	}

	switch {
	case key.Matches(msg, keys.Left):
		if p.cursor > 0 {
			p.cursor--
		}
	case key.Matches(msg, keys.Right):
		if p.cursor < videopoker.HandSize-1 {
			p.cursor++
		}
	case key.Matches(msg, keys.Hold):
		p.game.ToggleHold(p.cursor)
	case key.Matches(msg, keys.BetUp):
		if p.game.CanBet() {
			p.bet.Raise(p.s.wallet.Balance())
		}
	case key.Matches(msg, keys.BetDown):
		if p.game.CanBet() {
			p.bet.Lower()
		}
	case key.Matches(msg, keys.Draw):
		if p.game.CanDraw() {
			p.game.Draw()
			return nil
		}
		if !p.game.PlaceBet(p.bet.Amount()) {
			p.notice = NotEnoughCoins
			return nil
		}
		p.notice = ""
		p.cursor = 0
	}
	return nil
}

func (p *PokerScene) View() string {
	st := p.game.Snapshot()

	var v strings.Builder
	v.WriteString(TitleStyle.Render("VIDEO POKER"))
	v.WriteString("\n\n")

	if len(st.Cards) > 0 {
		cells := make([]string, len(st.Cards))
		for i, card := range st.Cards {
			label := "    "
			if st.Held[i] {
				label = HeldStyle.Render("HELD")
			}
			cursor := " "
			if st.Phase == videopoker.FirstDraw && i == p.cursor {
				cursor = SelectedStyle.Render("^")
			}
			cells[i] = lipgloss.JoinVertical(lipgloss.Center, renderCard(card), label, cursor)
		}
		gap := make([]string, 0, 2*len(cells))
		for i, c := range cells {
			if i > 0 {
				gap = append(gap, "  ")
			}
			gap = append(gap, c)
		}
		v.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, gap...))
		v.WriteString("\n")
	}

	tone := ToneNeutral
	switch {
	case st.Phase == videopoker.Complete && st.Won > 0:
		tone = ToneWin
	case st.Phase == videopoker.Complete:
		tone = ToneLoss
	}
	v.WriteString(renderMessage(st.Message, tone))
	v.WriteString("\n")
	if p.notice != "" {
		v.WriteString(renderMessage(p.notice, ToneNotice))
	}
	v.WriteString("\n")

	if st.Phase == videopoker.FirstDraw {
		v.WriteString(HandInfoStyle.Render(fmt.Sprintf("Bet: %d", st.Bet)))
	} else {
		v.WriteString(renderBet(p.bet))
	}
	v.WriteString("\n\n")

	highlight := videopoker.NoWin
	if st.Phase == videopoker.Complete {
		highlight = st.Result.Category
	}
	v.WriteString(PaytableTable(highlight))
	return v.String()
}

func (p *PokerScene) Help() []key.Binding {
	k := p.s.keys
	if p.game.CanDraw() {
		return []key.Binding{k.Holds[0], k.Hold, k.Left, k.Right, k.Draw, k.Back}
	}
	return []key.Binding{k.Deal, k.BetUp, k.BetDown, k.Back}
}

// PaytableTable renders the Jacks or Better paytable, highlighting the
// row for category when it pays.
func PaytableTable(highlight videopoker.Category) string {
	entries := videopoker.Paytable()
	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{e.Category.String(), fmt.Sprintf("%dx", e.Multiplier)}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(InfoStyle).
		Headers("Hand", "Pays").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return style.Inherit(TitleStyle)
			}
			if row >= 0 && row < len(entries) && entries[row].Category == highlight && highlight != videopoker.NoWin {
				return style.Inherit(SuccessStyle)
			}
			return style
		}).
		Render()
}
