package blackjack

import "github.com/lox/pixelcasino/internal/deck"

// Target is the score a hand must not exceed.
const Target = 21

// DealerStandsOn is the lowest score at which the dealer stops drawing.
const DealerStandsOn = 17

// CardValue returns the blackjack value of a single card, counting an Ace
// as 11.
func CardValue(c deck.Card) int {
	switch {
	case c.IsAce():
		return 11
	case c.Rank >= deck.Ten:
		return 10
	default:
		return int(c.Rank)
	}
}

// evaluate returns the best total not above 21 (or the smallest total if
// every Ace has been softened) and how many Aces still count as 11.
func evaluate(cards []deck.Card) (score, softAces int) {
	for _, c := range cards {
		score += CardValue(c)
		if c.IsAce() {
			softAces++
		}
	}
	for score > Target && softAces > 0 {
		score -= 10
		softAces--
	}
	return score, softAces
}

// Score computes a hand's value with Aces counted as 11 where that does not
// bust the hand and as 1 otherwise.
func Score(cards []deck.Card) int {
	score, _ := evaluate(cards)
	return score
}

// IsBusted reports whether the hand scores over 21.
func IsBusted(cards []deck.Card) bool {
	return Score(cards) > Target
}

// IsBlackjack reports a natural: exactly two cards scoring 21.
func IsBlackjack(cards []deck.Card) bool {
	return len(cards) == 2 && Score(cards) == Target
}

// Hand is an ordered set of cards held by the player or the dealer.
type Hand struct {
	cards []deck.Card
}

// Add appends a card to the hand.
func (h *Hand) Add(c deck.Card) {
	h.cards = append(h.cards, c)
}

// Clear empties the hand.
func (h *Hand) Clear() {
	h.cards = h.cards[:0]
}

// Cards returns a copy of the cards in the hand.
func (h *Hand) Cards() []deck.Card {
	out := make([]deck.Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// Len returns the number of cards held.
func (h *Hand) Len() int {
	return len(h.cards)
}

func (h *Hand) Score() int        { return Score(h.cards) }
func (h *Hand) IsBusted() bool    { return IsBusted(h.cards) }
func (h *Hand) IsBlackjack() bool { return IsBlackjack(h.cards) }

// IsSoft reports whether an Ace is still being counted as 11.
func (h *Hand) IsSoft() bool {
	_, soft := evaluate(h.cards)
	return soft > 0
}
