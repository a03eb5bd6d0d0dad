package simulate

import (
	"github.com/lox/pixelcasino/internal/blackjack"
	"github.com/lox/pixelcasino/internal/deck"
	"github.com/lox/pixelcasino/internal/videopoker"
)

// DefaultStandOn is the total at which the blackjack player stops hitting.
const DefaultStandOn = 17

// playBlackjack hits until the hand reaches standOn, then stands. It
// reports the outcome label of the round.
func playBlackjack(g *blackjack.Game, bet, standOn int) (string, bool) {
	if !g.PlaceBet(bet) {
		return "", false
	}
	for g.CanHit() && g.Snapshot().PlayerScore < standOn {
		g.Hit()
	}
	g.Stand()

	outcome := g.Outcome().String()
	g.FinishRound()
	return outcome, true
}

// playPoker deals, holds by pokerHolds and draws.
func playPoker(g *videopoker.Game, bet int) (string, bool) {
	if !g.PlaceBet(bet) {
		return "", false
	}

	var cards [videopoker.HandSize]deck.Card
	copy(cards[:], g.HandCards())
	for i, hold := range pokerHolds(cards) {
		if hold {
			g.ToggleHold(i)
		}
	}
	g.Draw()
	return g.Result().Name, true
}

// pokerHolds picks which cards to keep from the deal:
//   - a made straight or better is kept whole
//   - otherwise every card that pairs another is kept
//   - otherwise four to a flush
//   - otherwise the high cards that can still make Jacks or Better
func pokerHolds(cards [videopoker.HandSize]deck.Card) [videopoker.HandSize]bool {
	var holds [videopoker.HandSize]bool

	if videopoker.Evaluate(cards).Category >= videopoker.Straight {
		for i := range holds {
			holds[i] = true
		}
		return holds
	}

	var ranks [deck.Ace + 1]int
	var suits [len(deck.Suits)]int
	for _, c := range cards {
		ranks[c.Rank]++
		suits[c.Suit]++
	}

	paired := false
	for i, c := range cards {
		if ranks[c.Rank] >= 2 {
			holds[i] = true
			paired = true
		}
	}
	if paired {
		return holds
	}

	for suit, n := range suits {
		if n == 4 {
			for i, c := range cards {
				holds[i] = int(c.Suit) == suit
			}
			return holds
		}
	}

	for i, c := range cards {
		holds[i] = c.Rank >= deck.Jack
	}
	return holds
}
