package slots

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyTable is returned when a machine is configured without symbols.
	ErrEmptyTable = errors.New("slots: symbol table is empty")
	// ErrBadSymbol is returned for a symbol with a non-positive weight or payout.
	ErrBadSymbol = errors.New("slots: invalid symbol")
)

// Symbol is one face of a reel. Weight is its relative frequency and
// ThreePayout the bet multiplier paid for three in a row.
type Symbol struct {
	Name        string
	Glyph       string
	Weight      int
	ThreePayout int
}

// DefaultSymbols returns the stock reel: common fruit that pays little and
// a rare seven jackpot.
func DefaultSymbols() []Symbol {
	return []Symbol{
		{Name: "cherry", Glyph: "🍒", Weight: 30, ThreePayout: 5},
		{Name: "lemon", Glyph: "🍋", Weight: 25, ThreePayout: 3},
		{Name: "bell", Glyph: "🔔", Weight: 15, ThreePayout: 10},
		{Name: "star", Glyph: "⭐", Weight: 10, ThreePayout: 4},
		{Name: "diamond", Glyph: "💎", Weight: 6, ThreePayout: 20},
		{Name: "seven", Glyph: "7️⃣", Weight: 2, ThreePayout: 50},
	}
}

// ValidateSymbols checks that a table can drive a machine.
func ValidateSymbols(symbols []Symbol) error {
	if len(symbols) == 0 {
		return ErrEmptyTable
	}
	for i, s := range symbols {
		if s.Weight <= 0 {
			return fmt.Errorf("%w: symbol %d (%s) has weight %d", ErrBadSymbol, i, s.Name, s.Weight)
		}
		if s.ThreePayout <= 0 {
			return fmt.Errorf("%w: symbol %d (%s) has payout %d", ErrBadSymbol, i, s.Name, s.ThreePayout)
		}
	}
	return nil
}

// Payout returns what a bet wins for the given reel indexes: bet times the
// symbol's three-of-a-kind multiplier when all reels match, otherwise 0.
// Two of a kind never pays.
func Payout(symbols []Symbol, reels [Reels]int, bet int) int {
	first := reels[0]
	for _, r := range reels[1:] {
		if r != first {
			return 0
		}
	}
	if first < 0 || first >= len(symbols) {
		return 0
	}
	return bet * symbols[first].ThreePayout
}

// SymbolOdds describes how often a symbol lands.
type SymbolOdds struct {
	Symbol Symbol
	// Probability of the symbol on a single reel.
	Probability float64
	// ThreeProbability of the symbol on every reel.
	ThreeProbability float64
	// Return is the expected coins back per coin bet from this symbol.
	Return float64
}

// Odds computes per-symbol landing probabilities for a table.
func Odds(symbols []Symbol) []SymbolOdds {
	total := 0
	for _, s := range symbols {
		total += s.Weight
	}
	if total == 0 {
		return nil
	}

	odds := make([]SymbolOdds, len(symbols))
	for i, s := range symbols {
		p := float64(s.Weight) / float64(total)
		three := 1.0
		for range Reels {
			three *= p
		}
		odds[i] = SymbolOdds{
			Symbol:           s,
			Probability:      p,
			ThreeProbability: three,
			Return:           three * float64(s.ThreePayout),
		}
	}
	return odds
}

// ReturnToPlayer is the expected fraction of each bet paid back.
func ReturnToPlayer(symbols []Symbol) float64 {
	rtp := 0.0
	for _, o := range Odds(symbols) {
		rtp += o.Return
	}
	return rtp
}
