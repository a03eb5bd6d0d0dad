// Package videopoker implements Jacks or Better video poker.
//
// The Game moves through three phases:
//
//	Betting -> FirstDraw -> Complete
//
// From Complete a new bet starts the next hand directly. Each hand is dealt
// from a freshly shuffled deck.
package videopoker

import (
	"fmt"
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/pixelcasino/internal/deck"
	"github.com/lox/pixelcasino/internal/ledger"
	"github.com/lox/pixelcasino/internal/randutil"
)

// Phase is the state of a video poker hand.
type Phase int

const (
	Betting Phase = iota
	FirstDraw
	Complete
)

func (p Phase) String() string {
	switch p {
	case Betting:
		return "betting"
	case FirstDraw:
		return "first draw"
	case Complete:
		return "complete"
	default:
		return "unknown"
	}
}

const (
	// SelectHoldsMessage prompts the player after the deal.
	SelectHoldsMessage = "Select cards to hold"
	// NoWinMessage is shown when the final hand pays nothing.
	NoWinMessage = "No win. Try again!"
)

// State is a read-only snapshot of a game for display.
type State struct {
	Phase   Phase
	Cards   []deck.Card
	Held    [HandSize]bool
	Bet     int
	Message string
	Result  Result
	Won     int
}

// Game is a single video poker machine.
type Game struct {
	ledger  ledger.Ledger
	rng     *rand.Rand
	newDeck func() *deck.Deck
	deck    *deck.Deck
	hand    Hand
	bet     int
	phase   Phase
	result  Result
	won     int
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

// WithDeckSource replaces the per-hand deck factory, e.g. with stacked
// decks in tests.
func WithDeckSource(fn func() *deck.Deck) Option {
	return func(g *Game) {
		g.newDeck = fn
	}
}

// WithLogger sets the game logger.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

// New creates a machine that pays from and into l.
func New(l ledger.Ledger, opts ...Option) *Game {
	g := &Game{
		ledger: l,
		phase:  Betting,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng, _ = randutil.NewTimeSeeded()
	}
	if g.newDeck == nil {
		g.newDeck = func() *deck.Deck {
			return deck.New(g.rng, deck.WithLogger(g.logger))
		}
	}
	return g
}

func (g *Game) Phase() Phase     { return g.phase }
func (g *Game) Bet() int         { return g.bet }
func (g *Game) Message() string  { return g.message }
func (g *Game) Result() Result   { return g.result }
func (g *Game) Deck() *deck.Deck { return g.deck }
func (g *Game) CanDraw() bool    { return g.phase == FirstDraw }
func (g *Game) CanBet() bool     { return g.phase == Betting || g.phase == Complete }
func (g *Game) Held(i int) bool  { return i >= 0 && i < HandSize && g.hand.Held[i] }
func (g *Game) HandCards() []deck.Card {
	if !g.hand.IsDealt() {
		return nil
	}
	out := make([]deck.Card, HandSize)
	copy(out, g.hand.Cards[:])
	return out
}

// PlaceBet wagers amount and deals five fresh cards. It is accepted before
// the first hand and after any completed hand.
func (g *Game) PlaceBet(amount int) bool {
	if !g.CanBet() || amount < 0 {
		return false
	}
	if !g.ledger.RemoveCoins(amount) {
		g.logger.Debug("Bet refused", "amount", amount)
		return false
	}

	g.bet = amount
	g.result = Result{}
	g.won = 0
	g.deck = g.newDeck()
	g.hand.Deal(g.deck)
	g.phase = FirstDraw
	g.message = SelectHoldsMessage

	g.logger.Debug("Dealt hand", "bet", amount, "cards", deck.FormatCards(g.hand.Cards[:]))
	return true
}

// ToggleHold flips the hold flag of the card at index during the first
// draw. Invalid indexes and other phases are ignored.
func (g *Game) ToggleHold(index int) {
	if g.phase != FirstDraw {
		return
	}
	g.hand.ToggleHold(index)
}

// Draw replaces every card not held, evaluates the final hand and pays
// bet times the multiplier.
func (g *Game) Draw() {
	if g.phase != FirstDraw {
		return
	}

	replaced := g.hand.Replace(g.deck)
	g.phase = Complete
	g.result = g.hand.Evaluate()

	if g.result.Pays() {
		g.won = g.bet * g.result.Multiplier
		g.ledger.AddCoins(g.won)
		g.message = fmt.Sprintf("%s! Won %d coins!", g.result.Name, g.won)
	} else {
		g.message = NoWinMessage
	}

	g.logger.Debug("Hand complete",
		"cards", deck.FormatCards(g.hand.Cards[:]),
		"replaced", replaced,
		"result", g.result.Name,
		"won", g.won)
}

// Snapshot returns a copy of the state for display.
func (g *Game) Snapshot() State {
	return State{
		Phase:   g.phase,
		Cards:   g.HandCards(),
		Held:    g.hand.Held,
		Bet:     g.bet,
		Message: g.message,
		Result:  g.result,
		Won:     g.won,
	}
}
