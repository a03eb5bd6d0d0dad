// Package simulate estimates the return to player of each game by playing
// many rounds with a fixed strategy.
package simulate

import (
	"context"
	"fmt"
	"io"
	rand "math/rand/v2"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/pixelcasino/internal/blackjack"
	"github.com/lox/pixelcasino/internal/ledger"
	"github.com/lox/pixelcasino/internal/randutil"
	"github.com/lox/pixelcasino/internal/slots"
	"github.com/lox/pixelcasino/internal/statistics"
	"github.com/lox/pixelcasino/internal/videopoker"
)

// Game names a game the simulator can play.
type Game string

const (
	Blackjack Game = "blackjack"
	Poker     Game = "poker"
	Slots     Game = "slots"
)

// Games lists every supported game.
var Games = []Game{Blackjack, Poker, Slots}

// checkEvery is how many rounds a worker plays between context checks.
const checkEvery = 1024

// Config holds configuration for running a simulation.
type Config struct {
	Game    Game
	Rounds  int
	Bet     int
	Workers int // 0 uses GOMAXPROCS
	Seed    int64
	StandOn int            // blackjack: stop hitting at this total
	Symbols []slots.Symbol // slots: reel table, defaults when empty
	Logger  *log.Logger
}

// Validate checks the configuration and fills in defaults.
func (c *Config) Validate() error {
	switch c.Game {
	case Blackjack, Poker, Slots:
	default:
		return fmt.Errorf("unknown game %q", c.Game)
	}
	if c.Rounds <= 0 {
		return fmt.Errorf("rounds must be positive, got %d", c.Rounds)
	}
	if c.Bet <= 0 {
		return fmt.Errorf("bet must be positive, got %d", c.Bet)
	}
	if c.Workers <= 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	if c.Workers > c.Rounds {
		c.Workers = c.Rounds
	}
	if c.StandOn == 0 {
		c.StandOn = DefaultStandOn
	}
	if len(c.Symbols) == 0 {
		c.Symbols = slots.DefaultSymbols()
	}
	if err := slots.ValidateSymbols(c.Symbols); err != nil {
		return err
	}
	if c.Logger == nil {
		c.Logger = log.New(io.Discard)
	}
	return nil
}

// Run plays cfg.Rounds rounds split across workers. Each worker has its
// own generator and wallet, so results only depend on the seed and the
// worker count.
func Run(ctx context.Context, cfg Config) (*statistics.Statistics, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	master := randutil.New(cfg.Seed)
	perWorker := cfg.Rounds / cfg.Workers
	remainder := cfg.Rounds % cfg.Workers
	results := make([]*statistics.Statistics, cfg.Workers)

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < cfg.Workers; w++ {
		rounds := perWorker
		if w < remainder {
			rounds++
		}
		workerSeed := master.Int64()

		g.Go(func() error {
			stats, err := runWorker(ctx, cfg, rounds, workerSeed)
			if err != nil {
				return fmt.Errorf("worker %d: %w", w, err)
			}
			results[w] = stats
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := &statistics.Statistics{}
	for _, stats := range results {
		total.Merge(stats)
	}
	if err := total.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	cfg.Logger.Debug("Simulation complete",
		"game", cfg.Game,
		"rounds", total.Rounds,
		"rtp", total.ReturnToPlayer())
	return total, nil
}

func runWorker(ctx context.Context, cfg Config, rounds int, seed int64) (*statistics.Statistics, error) {
	rng := randutil.New(seed)
	// A round never loses more than the stake, so this balance cannot run dry.
	wallet := ledger.NewWallet(cfg.Bet * (rounds + 1))

	play, err := newRoundPlayer(cfg, rng, wallet)
	if err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for i := 0; i < rounds; i++ {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		before := wallet.Balance()
		outcome, ok := play()
		if !ok {
			return nil, fmt.Errorf("round %d refused with balance %d", i, before)
		}
		stats.Add(statistics.RoundResult{
			Bet:     cfg.Bet,
			Payout:  wallet.Balance() - before + cfg.Bet,
			Outcome: outcome,
			Seed:    seed,
		})
	}
	return stats, nil
}

type roundPlayer func() (outcome string, ok bool)

func newRoundPlayer(cfg Config, rng *rand.Rand, wallet *ledger.Wallet) (roundPlayer, error) {
	switch cfg.Game {
	case Blackjack:
		g := blackjack.New(wallet, blackjack.WithRNG(rng))
		return func() (string, bool) {
			return playBlackjack(g, cfg.Bet, cfg.StandOn)
		}, nil

	case Poker:
		g := videopoker.New(wallet, videopoker.WithRNG(rng))
		return func() (string, bool) {
			return playPoker(g, cfg.Bet)
		}, nil

	case Slots:
		m, err := slots.New(wallet, cfg.Symbols, slots.WithRNG(rng), slots.WithBet(cfg.Bet))
		if err != nil {
			return nil, err
		}
		return func() (string, bool) {
			if !m.Spin() {
				return "", false
			}
			if m.Reveal() == 0 {
				return slots.NoWinMessage, true
			}
			return "three " + m.Symbols()[m.Reels()[0]].Name, true
		}, nil
	}
	return nil, fmt.Errorf("unknown game %q", cfg.Game)
}
