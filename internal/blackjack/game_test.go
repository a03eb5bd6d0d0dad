package blackjack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pixelcasino/internal/deck"
	"github.com/lox/pixelcasino/internal/ledger"
	"github.com/lox/pixelcasino/internal/randutil"
)

// newStackedGame deals cards in order: player, dealer, player, dealer, then
// any hits and dealer draws.
func newStackedGame(t *testing.T, balance int, cards string) (*Game, *ledger.Wallet) {
	t.Helper()
	wallet := ledger.NewWallet(balance)
	rng := randutil.New(1)
	d := deck.NewStacked(rng, deck.MustParseCards(cards)...)
	return New(wallet, WithRNG(rng), WithDeck(d)), wallet
}

func TestDealerBustPaysDouble(t *testing.T) {
	g, wallet := newStackedGame(t, 100, "10h 10s 9c 6d 7h")

	require.True(t, g.PlaceBet(10))
	assert.Equal(t, Playing, g.Phase())
	assert.Equal(t, 90, wallet.Balance())

	g.Stand()

	state := g.Snapshot()
	assert.Equal(t, RoundOver, state.Phase)
	assert.Equal(t, DealerBust, state.Outcome)
	assert.Equal(t, "Dealer busts! Player wins!", state.Message)
	assert.Equal(t, 23, state.DealerScore)
	assert.Len(t, state.Dealer, 3)
	assert.Equal(t, 20, state.Payout)
	assert.Equal(t, 110, wallet.Balance())
}

func TestNaturalBlackjackPush(t *testing.T) {
	g, wallet := newStackedGame(t, 100, "As Ah Kd Qc")

	require.True(t, g.PlaceBet(10))

	assert.Equal(t, RoundOver, g.Phase())
	assert.Equal(t, BlackjackPush, g.Outcome())
	assert.Contains(t, g.Message(), "Push")
	assert.Equal(t, 100, wallet.Balance(), "exactly the stake is returned")
}

func TestNaturalBlackjackPaysThreeToTwo(t *testing.T) {
	g, wallet := newStackedGame(t, 100, "As 9h Kd 7c")

	require.True(t, g.PlaceBet(10))

	assert.Equal(t, RoundOver, g.Phase())
	assert.Equal(t, PlayerBlackjack, g.Outcome())
	assert.Equal(t, "Blackjack! Player wins!", g.Message())
	assert.Equal(t, 115, wallet.Balance())
}

func TestNaturalPayoutRoundsDown(t *testing.T) {
	assert.Equal(t, 12, PlayerBlackjack.Payout(5))
	assert.Equal(t, 25, PlayerBlackjack.Payout(10))
	assert.Equal(t, 0, DealerWin.Payout(10))
	assert.Equal(t, 0, PlayerBust.Payout(10))
	assert.Equal(t, 10, Push.Payout(10))
}

func TestPlayerBustEndsRound(t *testing.T) {
	g, wallet := newStackedGame(t, 100, "10h 9s 5c 8d Ks")

	require.True(t, g.PlaceBet(10))
	g.Hit()

	state := g.Snapshot()
	assert.Equal(t, RoundOver, state.Phase)
	assert.Equal(t, PlayerBust, state.Outcome)
	assert.Equal(t, "Player busts!", state.Message)
	assert.Equal(t, 25, state.PlayerScore)
	assert.Len(t, state.Dealer, 2, "dealer does not draw after a player bust")
	assert.Equal(t, 90, wallet.Balance())
}

func TestHitToTwentyOneAutoStands(t *testing.T) {
	g, wallet := newStackedGame(t, 100, "5h 10s 6c 7d 10c")

	require.True(t, g.PlaceBet(10))
	assert.True(t, g.CanHit())
	g.Hit()

	assert.Equal(t, RoundOver, g.Phase())
	assert.Equal(t, PlayerWin, g.Outcome())
	assert.Equal(t, 110, wallet.Balance())
}

func TestDealerWins(t *testing.T) {
	g, wallet := newStackedGame(t, 100, "10h 10s 7c 9d")

	require.True(t, g.PlaceBet(10))
	g.Stand()

	assert.Equal(t, DealerWin, g.Outcome())
	assert.Equal(t, "Dealer wins!", g.Message())
	assert.Equal(t, 90, wallet.Balance())
}

func TestEqualScoresPush(t *testing.T) {
	g, wallet := newStackedGame(t, 100, "10h 10s 8c 8d")

	require.True(t, g.PlaceBet(10))
	g.Stand()

	assert.Equal(t, Push, g.Outcome())
	assert.Equal(t, "Push - it's a tie!", g.Message())
	assert.Equal(t, 100, wallet.Balance())
}

func TestDealerStandsOnSoftSeventeen(t *testing.T) {
	g, wallet := newStackedGame(t, 100, "10h As 10d 6c")

	require.True(t, g.PlaceBet(10))
	g.Stand()

	state := g.Snapshot()
	assert.Len(t, state.Dealer, 2)
	assert.Equal(t, 17, state.DealerScore)
	assert.Equal(t, PlayerWin, state.Outcome)
	assert.Equal(t, 110, wallet.Balance())
}

func TestDealerDrawsBelowSeventeen(t *testing.T) {
	g, _ := newStackedGame(t, 100, "10h 2s 9d 3c 2h 2d 9s")

	require.True(t, g.PlaceBet(10))
	g.Stand()

	// 2+3+2+2 = 9, then 9 = 18
	state := g.Snapshot()
	assert.Equal(t, 18, state.DealerScore)
	assert.Len(t, state.Dealer, 5)
	assert.Equal(t, PlayerWin, state.Outcome)
}

func TestPlaceBetInsufficientFunds(t *testing.T) {
	g, wallet := newStackedGame(t, 5, "10h 10s 8c 8d")

	assert.False(t, g.PlaceBet(10))

	state := g.Snapshot()
	assert.Equal(t, Betting, state.Phase)
	assert.Empty(t, state.Player)
	assert.Empty(t, state.Dealer)
	assert.Equal(t, 0, state.Bet)
	assert.Equal(t, 5, wallet.Balance())
	assert.Equal(t, 4, g.Deck().Remaining(), "no cards were dealt")
}

func TestPlaceBetRejectsNegative(t *testing.T) {
	g, wallet := newStackedGame(t, 50, "")
	assert.False(t, g.PlaceBet(-1))
	assert.Equal(t, 50, wallet.Balance())
	assert.Equal(t, Betting, g.Phase())
}

func TestActionsOutOfPhaseAreIgnored(t *testing.T) {
	g, wallet := newStackedGame(t, 100, "10h 10s 7c 8d 2c")

	t.Run("hit and stand before betting", func(t *testing.T) {
		g.Hit()
		g.Stand()
		g.FinishRound()
		assert.Equal(t, Betting, g.Phase())
		assert.Empty(t, g.Snapshot().Player)
		assert.False(t, g.CanHit())
		assert.False(t, g.CanStand())
		assert.True(t, g.CanBet())
	})

	require.True(t, g.PlaceBet(10))

	t.Run("second bet while playing", func(t *testing.T) {
		assert.False(t, g.CanBet())
		assert.False(t, g.PlaceBet(10))
		assert.Equal(t, 90, wallet.Balance())
		g.FinishRound()
		assert.Equal(t, Playing, g.Phase())
	})

	g.Stand()
	require.Equal(t, RoundOver, g.Phase())

	t.Run("actions after the round is over", func(t *testing.T) {
		before := g.Snapshot()
		g.Hit()
		g.Stand()
		assert.False(t, g.PlaceBet(10))
		assert.Equal(t, before, g.Snapshot())
	})
}

func TestFinishRoundReopensBetting(t *testing.T) {
	g, _ := newStackedGame(t, 100, "10h 10s 9c 7d")

	require.True(t, g.PlaceBet(25))
	g.Stand()
	require.Equal(t, RoundOver, g.Phase())
	assert.Equal(t, 25, g.Bet())

	g.FinishRound()

	state := g.Snapshot()
	assert.Equal(t, Betting, state.Phase)
	assert.Equal(t, 0, state.Bet)
	assert.Empty(t, state.Player)
	assert.Empty(t, state.Dealer)
	assert.Equal(t, PlaceBetMessage, state.Message)
	assert.Equal(t, NoOutcome, state.Outcome)
}

func TestCanHitGuards(t *testing.T) {
	g, _ := newStackedGame(t, 100, "10h 10s 9c 7d")
	require.True(t, g.PlaceBet(10))
	assert.True(t, g.CanHit())
	assert.True(t, g.CanStand())

	state := g.Snapshot()
	assert.True(t, state.DealerHidden)
	assert.Equal(t, 19, state.PlayerScore)
}

func TestResetStartsFresh(t *testing.T) {
	g, wallet := newStackedGame(t, 100, "10h 10s 9c 7d")
	require.True(t, g.PlaceBet(10))

	g.Reset()

	assert.Equal(t, Betting, g.Phase())
	assert.Equal(t, 0, g.Bet())
	assert.Equal(t, deck.Size, g.Deck().Remaining())
	assert.Equal(t, 90, wallet.Balance())
}

func TestRoundConservesCards(t *testing.T) {
	rng := randutil.New(12345)
	g := New(ledger.NewWallet(1_000_000), WithRNG(rng))

	// Play rounds until the shared deck would have to refill.
	for g.Deck().Remaining() >= 20 {
		dealtBefore := g.Deck().Dealt()
		require.True(t, g.PlaceBet(1))
		for g.CanHit() && g.Snapshot().PlayerScore < 15 {
			g.Hit()
		}
		g.Stand()

		state := g.Snapshot()
		seen := make(map[deck.Card]bool)
		for _, c := range append(state.Player, state.Dealer...) {
			assert.False(t, seen[c], "duplicate %s", c)
			seen[c] = true
		}
		assert.Equal(t, len(state.Player)+len(state.Dealer), g.Deck().Dealt()-dealtBefore)
		assert.Equal(t, deck.Size, g.Deck().Remaining()+g.Deck().Dealt())
		g.FinishRound()
	}
	assert.Equal(t, 0, g.Deck().Refills())
}
