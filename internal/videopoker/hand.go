package videopoker

import "github.com/lox/pixelcasino/internal/deck"

// Hand is a five card video poker hand with a hold flag per position.
type Hand struct {
	Cards [HandSize]deck.Card
	Held  [HandSize]bool
	dealt int
}

// Deal fills the hand from d and clears all holds.
func (h *Hand) Deal(d *deck.Deck) {
	h.Held = [HandSize]bool{}
	for i := range h.Cards {
		h.Cards[i] = d.Draw()
	}
	h.dealt = HandSize
}

// ToggleHold flips the hold flag at index. Out of range indexes are ignored.
func (h *Hand) ToggleHold(index int) {
	if index < 0 || index >= h.dealt {
		return
	}
	h.Held[index] = !h.Held[index]
}

// Replace draws a new card from d for every position that is not held and
// returns how many cards were replaced.
func (h *Hand) Replace(d *deck.Deck) int {
	replaced := 0
	for i := range h.Cards {
		if h.Held[i] {
			continue
		}
		h.Cards[i] = d.Draw()
		replaced++
	}
	return replaced
}

// Clear empties the hand.
func (h *Hand) Clear() {
	*h = Hand{}
}

// IsDealt reports whether the hand holds cards.
func (h *Hand) IsDealt() bool {
	return h.dealt == HandSize
}

// Evaluate classifies the current cards.
func (h *Hand) Evaluate() Result {
	return Evaluate(h.Cards)
}
