// Package statistics accumulates per-round results from automated play.
package statistics

import (
	"fmt"
	"math"
	"sort"
)

// RoundResult is the outcome of one round of a game.
type RoundResult struct {
	Bet     int    // Coins staked
	Payout  int    // Coins paid back, including any returned stake
	Outcome string // Outcome label, e.g. "Dealer busts" or "Full House"
	Seed    int64  // RNG seed of the worker that played the round
}

// Net is the coins won or lost on the round.
func (r RoundResult) Net() int {
	return r.Payout - r.Bet
}

// Statistics tracks the results of a simulation.
type Statistics struct {
	Rounds  int
	SumNet  float64
	SumNet2 float64   // Sum of squares for variance calculation
	Values  []float64 // All net results for median/percentile calculation

	Wagered  int // Total coins staked
	Returned int // Total coins paid back

	Wins   int // Rounds with positive net
	Pushes int // Rounds that returned exactly the stake
	Losses int // Rounds with negative net

	MaxPayout int            // Largest single payout observed
	Outcomes  map[string]int // Round count per outcome label
}

// Add incorporates a new round result into the statistics.
func (s *Statistics) Add(result RoundResult) {
	net := float64(result.Net())
	s.Rounds++
	s.SumNet += net
	s.SumNet2 += net * net
	s.Values = append(s.Values, net)

	s.Wagered += result.Bet
	s.Returned += result.Payout

	switch {
	case net > 0:
		s.Wins++
	case net < 0:
		s.Losses++
	default:
		s.Pushes++
	}

	if result.Payout > s.MaxPayout {
		s.MaxPayout = result.Payout
	}
	if result.Outcome != "" {
		if s.Outcomes == nil {
			s.Outcomes = make(map[string]int)
		}
		s.Outcomes[result.Outcome]++
	}
}

// Merge folds other into s. Workers each keep their own Statistics and the
// caller merges them once they finish.
func (s *Statistics) Merge(other *Statistics) {
	if other == nil {
		return
	}
	s.Rounds += other.Rounds
	s.SumNet += other.SumNet
	s.SumNet2 += other.SumNet2
	s.Values = append(s.Values, other.Values...)
	s.Wagered += other.Wagered
	s.Returned += other.Returned
	s.Wins += other.Wins
	s.Pushes += other.Pushes
	s.Losses += other.Losses
	if other.MaxPayout > s.MaxPayout {
		s.MaxPayout = other.MaxPayout
	}
	for outcome, n := range other.Outcomes {
		if s.Outcomes == nil {
			s.Outcomes = make(map[string]int)
		}
		s.Outcomes[outcome] += n
	}
}

// Mean returns the average net coins per round.
func (s *Statistics) Mean() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.SumNet / float64(s.Rounds)
}

// Variance returns the sample variance of the net results.
func (s *Statistics) Variance() float64 {
	if s.Rounds < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumNet2 - float64(s.Rounds)*mean*mean) / float64(s.Rounds-1)
}

// StdDev returns the sample standard deviation of the net results.
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(math.Max(s.Variance(), 0))
}

// StdError returns the standard error of the mean.
func (s *Statistics) StdError() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Rounds))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean.
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// ReturnToPlayer is the fraction of wagered coins paid back.
func (s *Statistics) ReturnToPlayer() float64 {
	if s.Wagered == 0 {
		return 0
	}
	return float64(s.Returned) / float64(s.Wagered)
}

// HouseEdge is the fraction of wagered coins kept by the house.
func (s *Statistics) HouseEdge() float64 {
	if s.Wagered == 0 {
		return 0
	}
	return 1 - s.ReturnToPlayer()
}

// Median returns the median net result.
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the net result at the given percentile (0.0 to 1.0).
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// OutcomeShare returns the fraction of rounds that ended with outcome.
func (s *Statistics) OutcomeShare(outcome string) float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.Outcomes[outcome]) / float64(s.Rounds)
}

// IsLedgerBalanced checks that the summed net equals returned minus wagered.
func (s *Statistics) IsLedgerBalanced() bool {
	return math.Abs(s.SumNet-float64(s.Returned-s.Wagered)) <= 1e-6
}

// Validate checks the accumulated data for internal consistency.
func (s *Statistics) Validate() error {
	if s.Rounds <= 0 {
		return fmt.Errorf("invalid rounds count: %d", s.Rounds)
	}
	if !s.IsLedgerBalanced() {
		return fmt.Errorf("ledger mismatch: net=%.2f, returned=%d, wagered=%d",
			s.SumNet, s.Returned, s.Wagered)
	}
	if len(s.Values) != s.Rounds {
		return fmt.Errorf("values array length (%d) does not match rounds count (%d)",
			len(s.Values), s.Rounds)
	}
	if s.Wins+s.Pushes+s.Losses != s.Rounds {
		return fmt.Errorf("wins, pushes and losses (%d) do not add up to rounds (%d)",
			s.Wins+s.Pushes+s.Losses, s.Rounds)
	}
	return nil
}
