package simulate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pixelcasino/internal/slots"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"unknown game", Config{Game: "roulette", Rounds: 1, Bet: 1}, "unknown game"},
		{"no rounds", Config{Game: Slots, Rounds: 0, Bet: 1}, "rounds must be positive"},
		{"no bet", Config{Game: Poker, Rounds: 1, Bet: 0}, "bet must be positive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorContains(t, tt.cfg.Validate(), tt.wantErr)
		})
	}

	t.Run("bad symbols", func(t *testing.T) {
		cfg := Config{Game: Slots, Rounds: 1, Bet: 1, Symbols: []slots.Symbol{{Name: "x"}}}
		assert.ErrorIs(t, cfg.Validate(), slots.ErrBadSymbol)
	})

	t.Run("defaults", func(t *testing.T) {
		cfg := Config{Game: Blackjack, Rounds: 3, Bet: 10, Workers: 8}
		require.NoError(t, cfg.Validate())
		assert.Equal(t, 3, cfg.Workers, "never more workers than rounds")
		assert.Equal(t, DefaultStandOn, cfg.StandOn)
		assert.Equal(t, slots.DefaultSymbols(), cfg.Symbols)
		assert.NotNil(t, cfg.Logger)
	})
}

func TestRunSlotsMatchesTheoreticalReturn(t *testing.T) {
	stats, err := Run(context.Background(), Config{
		Game:    Slots,
		Rounds:  200_000,
		Bet:     10,
		Workers: 4,
		Seed:    12345,
	})
	require.NoError(t, err)

	assert.Equal(t, 200_000, stats.Rounds)
	assert.Equal(t, 2_000_000, stats.Wagered)
	assert.InDelta(t, slots.ReturnToPlayer(slots.DefaultSymbols()), stats.ReturnToPlayer(), 0.02)
	assert.Zero(t, stats.Pushes, "slots never return exactly the stake")
	assert.Equal(t, stats.Losses, stats.Outcomes[slots.NoWinMessage])
}

func TestRunBlackjack(t *testing.T) {
	stats, err := Run(context.Background(), Config{
		Game:    Blackjack,
		Rounds:  100_000,
		Bet:     10,
		Workers: 4,
		Seed:    7,
	})
	require.NoError(t, err)

	known := map[string]bool{
		"blackjack": true, "blackjack push": true, "player bust": true,
		"dealer bust": true, "player win": true, "dealer win": true, "push": true,
	}
	for outcome := range stats.Outcomes {
		assert.True(t, known[outcome], "unexpected outcome %q", outcome)
	}

	rtp := stats.ReturnToPlayer()
	assert.Greater(t, rtp, 0.85)
	assert.Less(t, rtp, 1.02)
	assert.InDelta(t, 0.045, stats.OutcomeShare("blackjack"), 0.01)
	assert.Equal(t, 25, stats.MaxPayout)
}

func TestRunPoker(t *testing.T) {
	stats, err := Run(context.Background(), Config{
		Game:    Poker,
		Rounds:  50_000,
		Bet:     1,
		Workers: 2,
		Seed:    99,
	})
	require.NoError(t, err)

	rtp := stats.ReturnToPlayer()
	assert.Greater(t, rtp, 0.75)
	assert.Less(t, rtp, 1.1)
	assert.Greater(t, stats.Outcomes["Jacks or Better"], stats.Outcomes["Three of a Kind"])
	assert.Greater(t, stats.Outcomes["No Win"], stats.Outcomes["Jacks or Better"])
}

func TestRunIsDeterministic(t *testing.T) {
	cfg := Config{Game: Poker, Rounds: 2000, Bet: 5, Workers: 3, Seed: 42}

	a, err := Run(context.Background(), cfg)
	require.NoError(t, err)
	b, err := Run(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, a.Returned, b.Returned)
	assert.Equal(t, a.Outcomes, b.Outcomes)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Config{Game: Slots, Rounds: 10_000, Bet: 1, Workers: 2})
	assert.ErrorIs(t, err, context.Canceled)
}
