package videopoker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pixelcasino/internal/deck"
	"github.com/lox/pixelcasino/internal/ledger"
	"github.com/lox/pixelcasino/internal/randutil"
)

// newStackedGame deals the first five cards as the hand and the rest as
// replacements, in order.
func newStackedGame(t *testing.T, balance int, cards string) (*Game, *ledger.Wallet) {
	t.Helper()
	wallet := ledger.NewWallet(balance)
	rng := randutil.New(1)
	stacked := deck.MustParseCards(cards)
	g := New(wallet, WithRNG(rng), WithDeckSource(func() *deck.Deck {
		return deck.NewStacked(rng, stacked...)
	}))
	return g, wallet
}

func TestPlaceBetDealsFiveCards(t *testing.T) {
	g, wallet := newStackedGame(t, 100, "As Ah 4d 8c 2d")

	require.True(t, g.PlaceBet(5))

	state := g.Snapshot()
	assert.Equal(t, FirstDraw, state.Phase)
	assert.Equal(t, deck.MustParseCards("As Ah 4d 8c 2d"), state.Cards)
	assert.Equal(t, [HandSize]bool{}, state.Held)
	assert.Equal(t, 5, state.Bet)
	assert.Equal(t, SelectHoldsMessage, state.Message)
	assert.Equal(t, 95, wallet.Balance())
	assert.True(t, g.CanDraw())
	assert.False(t, g.CanBet())
}

func TestHoldAndDrawKeepsHeldCards(t *testing.T) {
	g, wallet := newStackedGame(t, 100, "As Ah 4d 8c 2d Kd Ks 3c")

	require.True(t, g.PlaceBet(10))
	g.ToggleHold(0)
	g.ToggleHold(1)
	before := g.HandCards()

	g.Draw()

	state := g.Snapshot()
	assert.Equal(t, Complete, state.Phase)
	assert.Equal(t, before[0], state.Cards[0])
	assert.Equal(t, before[1], state.Cards[1])
	assert.Equal(t, deck.MustParseCards("As Ah Kd Ks 3c"), state.Cards)
	assert.Equal(t, TwoPair, state.Result.Category)
	assert.Equal(t, 20, state.Won)
	assert.Equal(t, "Two Pair! Won 20 coins!", state.Message)
	assert.Equal(t, 110, wallet.Balance())
}

func TestDrawWithoutWin(t *testing.T) {
	g, wallet := newStackedGame(t, 100, "2s 5h 9c Jd Ks 3d 4c 7h 8h 10c")

	require.True(t, g.PlaceBet(10))
	g.Draw()

	assert.Equal(t, Complete, g.Phase())
	assert.Equal(t, NoWin, g.Result().Category)
	assert.Equal(t, NoWinMessage, g.Message())
	assert.Equal(t, 90, wallet.Balance())
}

func TestHoldAllIsStandPat(t *testing.T) {
	g, wallet := newStackedGame(t, 100, "As Ks Qs Js 10s")

	require.True(t, g.PlaceBet(1))
	for i := range HandSize {
		g.ToggleHold(i)
	}
	g.Draw()

	assert.Equal(t, RoyalFlush, g.Result().Category)
	assert.Equal(t, "Royal Flush! Won 250 coins!", g.Message())
	assert.Equal(t, 349, wallet.Balance())
	assert.Equal(t, 0, g.Deck().Refills(), "no replacements drawn")
}

func TestToggleHoldTwiceRestoresMask(t *testing.T) {
	g, _ := newStackedGame(t, 100, "As Ah 4d 8c 2d")
	require.True(t, g.PlaceBet(1))

	for i := range HandSize {
		before := g.Snapshot().Held
		g.ToggleHold(i)
		assert.NotEqual(t, before, g.Snapshot().Held)
		assert.True(t, g.Held(i))
		g.ToggleHold(i)
		assert.Equal(t, before, g.Snapshot().Held)
	}
}

func TestToggleHoldIgnoresBadIndexAndPhase(t *testing.T) {
	g, _ := newStackedGame(t, 100, "As Ah 4d 8c 2d")

	g.ToggleHold(0)
	assert.False(t, g.Held(0), "no hand yet")

	require.True(t, g.PlaceBet(1))
	g.ToggleHold(-1)
	g.ToggleHold(HandSize)
	g.ToggleHold(99)
	assert.Equal(t, [HandSize]bool{}, g.Snapshot().Held)
	assert.False(t, g.Held(99))

	g.Draw()
	g.ToggleHold(2)
	assert.False(t, g.Held(2), "holds are frozen once complete")
}

func TestDrawOutOfPhaseIsIgnored(t *testing.T) {
	g, wallet := newStackedGame(t, 100, "As Ah 4d 8c 2d")

	g.Draw()
	assert.Equal(t, Betting, g.Phase())
	assert.Nil(t, g.HandCards())

	require.True(t, g.PlaceBet(10))
	for i := range HandSize {
		g.ToggleHold(i)
	}
	g.Draw()
	before := g.Snapshot()
	g.Draw()
	assert.Equal(t, before, g.Snapshot())
	assert.Equal(t, 100, wallet.Balance(), "pair of aces pays even money once")
}

func TestPlaceBetAfterCompleteStartsNextHand(t *testing.T) {
	g, wallet := newStackedGame(t, 100, "2s 5h 9c Jd Ks 3d 4c 7h 8h 10c")

	require.True(t, g.PlaceBet(10))
	assert.False(t, g.PlaceBet(10), "no second bet during the draw")
	g.Draw()
	require.True(t, g.CanBet())

	require.True(t, g.PlaceBet(10))
	assert.Equal(t, FirstDraw, g.Phase())
	assert.Equal(t, [HandSize]bool{}, g.Snapshot().Held)
	assert.Equal(t, Result{}, g.Result())
	assert.Equal(t, 80, wallet.Balance())
}

func TestPlaceBetInsufficientFunds(t *testing.T) {
	g, wallet := newStackedGame(t, 4, "As Ah 4d 8c 2d")

	assert.False(t, g.PlaceBet(5))
	assert.False(t, g.PlaceBet(-1))

	state := g.Snapshot()
	assert.Equal(t, Betting, state.Phase)
	assert.Nil(t, state.Cards)
	assert.Equal(t, 0, state.Bet)
	assert.Equal(t, 4, wallet.Balance())
}

func TestFreshDeckEachHand(t *testing.T) {
	wallet := ledger.NewWallet(1000)
	g := New(wallet, WithRNG(randutil.New(77)))

	for range 20 {
		require.True(t, g.PlaceBet(1))
		first := g.Deck()
		assert.Equal(t, deck.Size-HandSize, first.Remaining())

		g.ToggleHold(0)
		g.ToggleHold(3)
		held := g.HandCards()
		g.Draw()

		final := g.HandCards()
		assert.Equal(t, held[0], final[0])
		assert.Equal(t, held[3], final[3])
		assert.Equal(t, deck.Size-HandSize-3, first.Remaining())

		seen := make(map[deck.Card]bool)
		for _, c := range final {
			assert.False(t, seen[c], "duplicate %s", c)
			seen[c] = true
		}
	}
}
