package deck

import (
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/pixelcasino/internal/randutil"
)

// Size is the number of cards in a full deck.
const Size = 52

// Deck is a draw source of playing cards owned by a single game engine.
// The top of the deck is the end of the slice.
type Deck struct {
	cards   []Card
	rng     *rand.Rand
	dealt   int
	refills int
	logger  *log.Logger
}

// Option configures a Deck.
type Option func(*Deck)

// WithLogger sets the logger used to report refills.
func WithLogger(logger *log.Logger) Option {
	return func(d *Deck) {
		d.logger = logger
	}
}

// New creates a standard 52-card deck in canonical order and shuffles it.
// A nil rng falls back to a time-seeded generator.
func New(rng *rand.Rand, opts ...Option) *Deck {
	if rng == nil {
		rng, _ = randutil.NewTimeSeeded()
	}
	d := &Deck{
		cards:  make([]Card, 0, Size),
		rng:    rng,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.fill()
	d.Shuffle()
	return d
}

// NewStacked creates a deck that deals the given cards in order before
// falling back to refilling with a full shuffled deck. Used to script rounds.
func NewStacked(rng *rand.Rand, cards ...Card) *Deck {
	d := New(rng)
	d.cards = d.cards[:0]
	for i := len(cards) - 1; i >= 0; i-- {
		d.cards = append(d.cards, cards[i])
	}
	return d
}

// Canonical returns all 52 cards in canonical order: suits Spades, Clubs,
// Hearts, Diamonds, each from Ace through King.
func Canonical() []Card {
	cards := make([]Card, 0, Size)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, NewCard(suit, rank))
		}
	}
	return cards
}

func (d *Deck) fill() {
	d.cards = append(d.cards[:0], Canonical()...)
	d.dealt = 0
}

// Shuffle randomizes the order of the remaining cards (Fisher-Yates).
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw removes and returns the top card. An empty deck is refilled and
// reshuffled first, so Draw always yields a card.
func (d *Deck) Draw() Card {
	if len(d.cards) == 0 {
		d.Reset()
		d.refills++
		d.logger.Debug("Deck exhausted, refilled and reshuffled", "refills", d.refills)
	}
	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	d.dealt++
	return card
}

// Reset restores the deck to a full 52-card deck and shuffles it
func (d *Deck) Reset() {
	d.fill()
	d.Shuffle()
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Dealt returns how many cards have been drawn since the last fill.
func (d *Deck) Dealt() int {
	return d.dealt
}

// Refills returns how many times Draw found the deck empty.
func (d *Deck) Refills() int {
	return d.refills
}

// Peek returns the top card without removing it from the deck
func (d *Deck) Peek() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	return d.cards[len(d.cards)-1], true
}
