package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lox/pixelcasino/cmd/pixelcasino/shared"
	"github.com/lox/pixelcasino/internal/simulate"
	"github.com/lox/pixelcasino/internal/statistics"
)

type SimulateCmd struct {
	Game    string `enum:"blackjack,poker,slots" default:"slots" help:"Game to simulate: blackjack, poker, slots"`
	Rounds  int    `default:"100000" help:"Number of rounds to play"`
	Bet     int    `default:"10" help:"Stake per round"`
	Workers int    `default:"0" help:"Parallel workers (0 for GOMAXPROCS)"`
	Seed    int64  `default:"0" help:"RNG seed (0 for random)"`
	StandOn int    `default:"17" help:"Blackjack: stop hitting at this total"`
	Config  string `short:"c" default:"pixelcasino.hcl" help:"Path to HCL configuration file"`
	Debug   bool   `help:"Enable debug logging"`
}

func (c *SimulateCmd) Run() error {
	cfg, err := loadConfig(c.Config)
	if err != nil {
		return err
	}
	logger := shared.SetupLogger(os.Stderr, "warn", c.Debug)
	ctx := shared.SetupSignalHandlerWithLogger(logger)

	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}

	fmt.Printf("Simulating %d rounds of %s at %d coins (seed: %d)\n", c.Rounds, c.Game, c.Bet, c.Seed)

	start := time.Now()
	stats, err := simulate.Run(ctx, simulate.Config{
		Game:    simulate.Game(c.Game),
		Rounds:  c.Rounds,
		Bet:     c.Bet,
		Workers: c.Workers,
		Seed:    c.Seed,
		StandOn: c.StandOn,
		Symbols: cfg.SlotSymbols(),
		Logger:  logger.WithPrefix("simulate"),
	})
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	printSummary(os.Stdout, stats, time.Since(start))
	return nil
}

// printSummary writes the statistical results and the outcome breakdown.
func printSummary(w io.Writer, stats *statistics.Statistics, elapsed time.Duration) {
	low, high := stats.ConfidenceInterval95()

	summary := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("Metric", "Value").
		Row("Rounds", fmt.Sprintf("%d", stats.Rounds)).
		Row("Wagered", fmt.Sprintf("%d", stats.Wagered)).
		Row("Returned", fmt.Sprintf("%d", stats.Returned)).
		Row("Return to player", fmt.Sprintf("%.2f%%", stats.ReturnToPlayer()*100)).
		Row("House edge", fmt.Sprintf("%.2f%%", stats.HouseEdge()*100)).
		Row("Mean", fmt.Sprintf("%.4f coins/round", stats.Mean())).
		Row("Median", fmt.Sprintf("%.4f coins/round", stats.Median())).
		Row("Std Dev", fmt.Sprintf("%.4f coins", stats.StdDev())).
		Row("95% CI", fmt.Sprintf("[%.4f, %.4f]", low, high)).
		Row("Wins / Pushes / Losses", fmt.Sprintf("%d / %d / %d", stats.Wins, stats.Pushes, stats.Losses)).
		Row("Largest payout", fmt.Sprintf("%d", stats.MaxPayout)).
		Row("Elapsed", elapsed.Round(time.Millisecond).String())

	fmt.Fprintln(w, summary.Render())

	if len(stats.Outcomes) == 0 {
		return
	}

	outcomes := make([]string, 0, len(stats.Outcomes))
	for o := range stats.Outcomes {
		outcomes = append(outcomes, o)
	}
	slices.SortFunc(outcomes, func(a, b string) int {
		if d := stats.Outcomes[b] - stats.Outcomes[a]; d != 0 {
			return d
		}
		return strings.Compare(a, b)
	})

	breakdown := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("Outcome", "Rounds", "Share")
	for _, o := range outcomes {
		breakdown.Row(o, fmt.Sprintf("%d", stats.Outcomes[o]), fmt.Sprintf("%.3f%%", stats.OutcomeShare(o)*100))
	}
	fmt.Fprintln(w, breakdown.Render())
}
