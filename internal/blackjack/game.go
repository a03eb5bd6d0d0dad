// Package blackjack implements single-player blackjack against a dealer.
//
// A Game is a small state machine driven by the presentation layer:
//
//	Betting -> Playing -> DealerTurn -> RoundOver -> Betting
//
// Every mutating method checks the current phase first and quietly does
// nothing when the action is not legal, so callers may invoke them freely
// from input handlers. The return to Betting after a round is triggered by
// FinishRound, which the caller schedules after its own display delay.
package blackjack

import (
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/pixelcasino/internal/deck"
	"github.com/lox/pixelcasino/internal/ledger"
	"github.com/lox/pixelcasino/internal/randutil"
)

// Phase is the state of a blackjack round.
type Phase int

const (
	Betting Phase = iota
	Playing
	DealerTurn
	RoundOver
)

func (p Phase) String() string {
	switch p {
	case Betting:
		return "betting"
	case Playing:
		return "playing"
	case DealerTurn:
		return "dealer turn"
	case RoundOver:
		return "round over"
	default:
		return "unknown"
	}
}

// Outcome describes how a round was resolved.
type Outcome int

const (
	NoOutcome Outcome = iota
	PlayerBlackjack
	BlackjackPush
	PlayerBust
	DealerBust
	PlayerWin
	DealerWin
	Push
)

// Message returns the result text shown to the player.
func (o Outcome) Message() string {
	switch o {
	case PlayerBlackjack:
		return "Blackjack! Player wins!"
	case BlackjackPush:
		return "Push - both have Blackjack!"
	case PlayerBust:
		return "Player busts!"
	case DealerBust:
		return "Dealer busts! Player wins!"
	case PlayerWin:
		return "Player wins!"
	case DealerWin:
		return "Dealer wins!"
	case Push:
		return "Push - it's a tie!"
	default:
		return ""
	}
}

func (o Outcome) String() string {
	switch o {
	case PlayerBlackjack:
		return "blackjack"
	case BlackjackPush:
		return "blackjack push"
	case PlayerBust:
		return "player bust"
	case DealerBust:
		return "dealer bust"
	case PlayerWin:
		return "player win"
	case DealerWin:
		return "dealer win"
	case Push:
		return "push"
	default:
		return "none"
	}
}

// Payout returns the coins credited back to the player for a bet with this
// outcome. A natural pays 3:2 on top of the stake, rounded down.
func (o Outcome) Payout(bet int) int {
	switch o {
	case PlayerBlackjack:
		return bet * 5 / 2
	case DealerBust, PlayerWin:
		return bet * 2
	case BlackjackPush, Push:
		return bet
	default:
		return 0
	}
}

// PlaceBetMessage is shown while waiting for a wager.
const PlaceBetMessage = "Place your bet"

// State is a read-only snapshot of a game for display.
type State struct {
	Phase        Phase
	Player       []deck.Card
	Dealer       []deck.Card
	PlayerScore  int
	DealerScore  int
	PlayerSoft   bool
	DealerHidden bool // dealer's second card is face down
	Bet          int
	Message      string
	Outcome      Outcome
	Payout       int
}

// Game is a blackjack table for one player.
type Game struct {
	ledger  ledger.Ledger
	rng     *rand.Rand
	deck    *deck.Deck
	player  Hand
	dealer  Hand
	bet     int
	phase   Phase
	outcome Outcome
	payout  int
	message string
	logger  *log.Logger
}

// Option configures a Game.
type Option func(*Game)

// WithRNG sets the random source used for shuffling.
func WithRNG(rng *rand.Rand) Option {
	return func(g *Game) {
		g.rng = rng
	}
}

// WithDeck makes the game draw from d, e.g. a stacked deck in tests.
func WithDeck(d *deck.Deck) Option {
	return func(g *Game) {
		g.deck = d
	}
}

// WithLogger sets the game logger.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

// New creates a game that pays from and into l.
func New(l ledger.Ledger, opts ...Option) *Game {
	g := &Game{
		ledger:  l,
		phase:   Betting,
		message: PlaceBetMessage,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng, _ = randutil.NewTimeSeeded()
	}
	if g.deck == nil {
		g.deck = deck.New(g.rng, deck.WithLogger(g.logger))
	}
	return g
}

// Phase returns the current phase.
func (g *Game) Phase() Phase { return g.phase }

// Bet returns the wager of the current round.
func (g *Game) Bet() int { return g.bet }

// Message returns the current status text.
func (g *Game) Message() string { return g.message }

// Outcome returns how the last round resolved.
func (g *Game) Outcome() Outcome { return g.outcome }

// Deck exposes the game's draw source.
func (g *Game) Deck() *deck.Deck { return g.deck }

func (g *Game) CanBet() bool   { return g.phase == Betting }
func (g *Game) CanStand() bool { return g.phase == Playing }

// CanHit reports whether the player may take another card.
func (g *Game) CanHit() bool {
	return g.phase == Playing && !g.player.IsBusted() && g.player.Score() < Target
}

// PlaceBet wagers amount and deals a new round. It returns false and
// changes nothing if betting is not open or the ledger cannot cover it.
func (g *Game) PlaceBet(amount int) bool {
	if g.phase != Betting || amount < 0 {
		return false
	}
	if !g.ledger.RemoveCoins(amount) {
		g.logger.Debug("Bet refused", "amount", amount)
		return false
	}

	g.bet = amount
	g.outcome = NoOutcome
	g.payout = 0
	g.message = ""
	g.player.Clear()
	g.dealer.Clear()

	g.player.Add(g.deck.Draw())
	g.dealer.Add(g.deck.Draw())
	g.player.Add(g.deck.Draw())
	g.dealer.Add(g.deck.Draw())
	g.phase = Playing

	g.logger.Debug("Dealt round",
		"bet", amount,
		"player", deck.FormatCards(g.player.cards),
		"dealer", deck.FormatCards(g.dealer.cards))

	if g.player.IsBlackjack() {
		if g.dealer.IsBlackjack() {
			g.resolve(BlackjackPush)
		} else {
			g.resolve(PlayerBlackjack)
		}
	}
	return true
}

// Hit draws a card for the player. A bust ends the round; reaching exactly
// 21 stands automatically.
func (g *Game) Hit() {
	if g.phase != Playing {
		return
	}

	g.player.Add(g.deck.Draw())
	if g.player.IsBusted() {
		g.resolve(PlayerBust)
		return
	}
	if g.player.Score() == Target {
		g.Stand()
	}
}

// Stand ends the player's turn; the dealer draws to 17 or more and the
// round is resolved.
func (g *Game) Stand() {
	if g.phase != Playing {
		return
	}

	g.phase = DealerTurn
	for g.dealer.Score() < DealerStandsOn {
		g.dealer.Add(g.deck.Draw())
	}

	playerScore := g.player.Score()
	dealerScore := g.dealer.Score()
	switch {
	case dealerScore > Target:
		g.resolve(DealerBust)
	case playerScore > dealerScore:
		g.resolve(PlayerWin)
	case dealerScore > playerScore:
		g.resolve(DealerWin)
	default:
		g.resolve(Push)
	}
}

func (g *Game) resolve(outcome Outcome) {
	g.phase = RoundOver
	g.outcome = outcome
	g.message = outcome.Message()
	g.payout = outcome.Payout(g.bet)
	if g.payout > 0 {
		g.ledger.AddCoins(g.payout)
	}

	g.logger.Debug("Round resolved",
		"outcome", outcome,
		"bet", g.bet,
		"payout", g.payout,
		"player", g.player.Score(),
		"dealer", g.dealer.Score())
}

// FinishRound clears the table after a resolved round and reopens betting.
// It does nothing unless the round is over.
func (g *Game) FinishRound() {
	if g.phase != RoundOver {
		return
	}
	g.clearTable()
}

// Reset abandons any round in progress and starts over with a fresh deck.
// A stake already taken is not refunded.
func (g *Game) Reset() {
	g.clearTable()
	g.deck = deck.New(g.rng, deck.WithLogger(g.logger))
}

func (g *Game) clearTable() {
	g.phase = Betting
	g.message = PlaceBetMessage
	g.player.Clear()
	g.dealer.Clear()
	g.bet = 0
	g.outcome = NoOutcome
	g.payout = 0
}

// Snapshot returns a copy of the state for display.
func (g *Game) Snapshot() State {
	return State{
		Phase:        g.phase,
		Player:       g.player.Cards(),
		Dealer:       g.dealer.Cards(),
		PlayerScore:  g.player.Score(),
		DealerScore:  g.dealer.Score(),
		PlayerSoft:   g.player.IsSoft(),
		DealerHidden: g.phase == Playing,
		Bet:          g.bet,
		Message:      g.message,
		Outcome:      g.outcome,
		Payout:       g.payout,
	}
}
