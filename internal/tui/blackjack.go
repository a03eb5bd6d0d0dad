package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/pixelcasino/internal/blackjack"
)

// NotEnoughCoins is shown when a stake cannot be covered.
const NotEnoughCoins = "Not enough coins"

// BlackjackScene is the blackjack table.
type BlackjackScene struct {
	s      *session
	game   *blackjack.Game
	bet    *BetSelector
	notice string

	// round counts dealt rounds; finishing is scheduled once per round and
	// only applies to the round it was scheduled for.
	round     int
	scheduled int
}

func newBlackjackScene(s *session, game *blackjack.Game) *BlackjackScene {
	return &BlackjackScene{
		s:    s,
		game: game,
		bet:  NewBetSelector(s.config.Blackjack.BetOptions, s.config.Blackjack.DefaultBet),
	}
}

// Enter starts over with a fresh deck.
func (b *BlackjackScene) Enter() {
	b.game.Reset()
	b.notice = ""
	b.round++
	b.scheduled = b.round
	b.bet.Clamp(b.s.wallet.Balance())
}

func (b *BlackjackScene) Exit() {}

func (b *BlackjackScene) Update(msg tea.KeyMsg) tea.Cmd {
	keys := b.s.keys
	switch {
	case key.Matches(msg, keys.BetUp):
		if b.game.CanBet() {
			b.bet.Raise(b.s.wallet.Balance())
		}
	case key.Matches(msg, keys.BetDown):
		if b.game.CanBet() {
			b.bet.Lower()
		}
	case key.Matches(msg, keys.Right):
		b.bet.NextChip()
	case key.Matches(msg, keys.Left):
		b.bet.PrevChip()
	case key.Matches(msg, keys.Deal):
		b.deal()
	case key.Matches(msg, keys.Hit):
		b.game.Hit()
	case key.Matches(msg, keys.Stand):
		b.game.Stand()
	}
	b.scheduleFinish()
	return nil
}

func (b *BlackjackScene) deal() {
	if !b.game.CanBet() {
		return
	}
	if !b.game.PlaceBet(b.bet.Amount()) {
		b.notice = NotEnoughCoins
		return
	}
	b.notice = ""
	b.round++
}

// scheduleFinish clears the table after the configured delay once a round
// has been resolved.
func (b *BlackjackScene) scheduleFinish() {
	if b.game.Phase() != blackjack.RoundOver || b.scheduled == b.round {
		return
	}
	round := b.round
	b.scheduled = round
	b.s.scheduler.After(b.s.config.RoundResetDelay(), "blackjack.finish", func() {
		if b.round != round {
			return
		}
		b.game.FinishRound()
		b.bet.Clamp(b.s.wallet.Balance())
	})
}

func (b *BlackjackScene) View() string {
	st := b.game.Snapshot()

	var v strings.Builder
	v.WriteString(TitleStyle.Render("BLACKJACK"))
	v.WriteString("\n\n")

	v.WriteString("Dealer: ")
	if st.DealerHidden {
		v.WriteString(formatCardsHidden(st.Dealer))
	} else if len(st.Dealer) > 0 {
		v.WriteString(fmt.Sprintf("%s %d", formatCards(st.Dealer), st.DealerScore))
	}
	v.WriteString("\n")

	v.WriteString("Player: ")
	if len(st.Player) > 0 {
		v.WriteString(fmt.Sprintf("%s %d", formatCards(st.Player), st.PlayerScore))
		if st.PlayerSoft {
			v.WriteString(InfoStyle.Render(" soft"))
		}
	}
	v.WriteString("\n\n")

	v.WriteString(renderMessage(st.Message, blackjackTone(st.Outcome)))
	v.WriteString("\n")
	if b.notice != "" {
		v.WriteString(renderMessage(b.notice, ToneNotice))
	}
	v.WriteString("\n")

	if st.Phase == blackjack.Betting {
		v.WriteString(renderBet(b.bet))
	} else {
		v.WriteString(HandInfoStyle.Render(fmt.Sprintf("Bet: %d", st.Bet)))
	}
	return v.String()
}

func blackjackTone(o blackjack.Outcome) Tone {
	switch o {
	case blackjack.PlayerBlackjack, blackjack.PlayerWin, blackjack.DealerBust:
		return ToneWin
	case blackjack.PlayerBust, blackjack.DealerWin:
		return ToneLoss
	default:
		return ToneNeutral
	}
}

func (b *BlackjackScene) Help() []key.Binding {
	k := b.s.keys
	if b.game.CanBet() {
		return []key.Binding{k.Deal, k.BetUp, k.BetDown, k.Right, k.Back}
	}
	return []key.Binding{k.Hit, k.Stand, k.Back}
}

// renderBet shows the stake and the chip row with the selected chip marked.
func renderBet(b *BetSelector) string {
	chips := make([]string, len(b.Options()))
	for i, opt := range b.Options() {
		label := fmt.Sprintf("(%d)", opt)
		if i == b.ChipIndex() {
			chips[i] = SelectedStyle.Render(label)
		} else {
			chips[i] = InfoStyle.Render(label)
		}
	}
	return HandInfoStyle.Render(fmt.Sprintf("Bet: %d", b.Amount())) + "  " + strings.Join(chips, " ")
}
