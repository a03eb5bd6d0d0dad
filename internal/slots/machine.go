// Package slots implements a three reel slot machine with weighted symbols.
//
// A spin is split in two so the caller can animate in between: Spin takes
// the stake and enters the Spinning phase, Reveal lands the reels and pays.
package slots

import (
	"fmt"
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/pixelcasino/internal/ledger"
	"github.com/lox/pixelcasino/internal/randutil"
)

// Reels is the number of reels on the machine.
const Reels = 3

// Phase is the state of the machine.
type Phase int

const (
	Idle Phase = iota
	Spinning
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Spinning:
		return "spinning"
	default:
		return "unknown"
	}
}

const (
	NotEnoughCoinsMessage = "Not enough coins"
	SpinningMessage       = "Spinning..."
	NoWinMessage          = "No win"
)

// State is a read-only snapshot of the machine for display.
type State struct {
	Phase      Phase
	Reels      [Reels]int
	Glyphs     [Reels]string
	Bet        int
	Message    string
	LastPayout int
}

// Machine is a slot machine paying from and into a ledger.
type Machine struct {
	ledger     ledger.Ledger
	symbols    []Symbol
	cumulative []int
	total      int
	rng        *rand.Rand
	bet        int
	spinBet    int
	reels      [Reels]int
	phase      Phase
	message    string
	lastPayout int
	logger     *log.Logger
}

// Option configures a Machine.
type Option func(*Machine)

// WithRNG sets the random source used to land the reels.
func WithRNG(rng *rand.Rand) Option {
	return func(m *Machine) {
		m.rng = rng
	}
}

// WithLogger sets the machine logger.
func WithLogger(logger *log.Logger) Option {
	return func(m *Machine) {
		m.logger = logger
	}
}

// WithBet sets the initial bet.
func WithBet(amount int) Option {
	return func(m *Machine) {
		if amount >= 0 {
			m.bet = amount
		}
	}
}

// New creates a machine with the given symbol table.
func New(l ledger.Ledger, symbols []Symbol, opts ...Option) (*Machine, error) {
	if err := ValidateSymbols(symbols); err != nil {
		return nil, err
	}

	m := &Machine{
		ledger:  l,
		symbols: append([]Symbol(nil), symbols...),
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.rng == nil {
		m.rng, _ = randutil.NewTimeSeeded()
	}

	m.cumulative = make([]int, len(m.symbols))
	for i, s := range m.symbols {
		m.total += s.Weight
		m.cumulative[i] = m.total
	}
	m.spinBet = m.bet
	return m, nil
}

// WeightedIndex picks a symbol index with probability proportional to its
// weight.
func (m *Machine) WeightedIndex() int {
	r := m.rng.IntN(m.total)
	for i, c := range m.cumulative {
		if r < c {
			return i
		}
	}
	return len(m.cumulative) - 1
}

// TotalWeight is the sum of all symbol weights.
func (m *Machine) TotalWeight() int { return m.total }

// Symbols returns a copy of the symbol table.
func (m *Machine) Symbols() []Symbol { return append([]Symbol(nil), m.symbols...) }

func (m *Machine) Phase() Phase      { return m.phase }
func (m *Machine) Bet() int          { return m.bet }
func (m *Machine) Message() string   { return m.message }
func (m *Machine) Reels() [Reels]int { return m.reels }
func (m *Machine) LastPayout() int   { return m.lastPayout }

// SetBet changes the stake for the next spin. Ignored while spinning.
func (m *Machine) SetBet(amount int) {
	if m.phase == Spinning || amount < 0 {
		return
	}
	m.bet = amount
}

// CanSpin reports whether a spin would be accepted.
func (m *Machine) CanSpin() bool {
	return m.phase == Idle && m.ledger.Balance() >= m.bet
}

// Spin takes the stake and starts the reels. A spin while the reels are
// already turning is ignored; a short balance only sets a notice.
func (m *Machine) Spin() bool {
	if m.phase != Idle {
		return false
	}
	if !m.ledger.RemoveCoins(m.bet) {
		m.message = NotEnoughCoinsMessage
		return false
	}

	m.spinBet = m.bet
	m.lastPayout = 0
	m.phase = Spinning
	m.message = SpinningMessage
	m.logger.Debug("Spin started", "bet", m.spinBet)
	return true
}

// Reveal lands all reels and pays any win. It returns the payout, or 0
// without effect when no spin is in progress.
func (m *Machine) Reveal() int {
	if m.phase != Spinning {
		return 0
	}

	for i := range m.reels {
		m.reels[i] = m.WeightedIndex()
	}
	m.phase = Idle

	m.lastPayout = m.EvaluatePayout()
	if m.lastPayout > 0 {
		m.ledger.AddCoins(m.lastPayout)
		m.message = fmt.Sprintf("Win %d!", m.lastPayout)
	} else {
		m.message = NoWinMessage
	}

	m.logger.Debug("Reels landed",
		"reels", m.Glyphs(),
		"bet", m.spinBet,
		"payout", m.lastPayout)
	return m.lastPayout
}

// EvaluatePayout returns the win for the current reels at the stake of the
// last spin.
func (m *Machine) EvaluatePayout() int {
	return Payout(m.symbols, m.reels, m.spinBet)
}

// ClearMessage removes the transient notice.
func (m *Machine) ClearMessage() {
	if m.phase == Spinning {
		return
	}
	m.message = ""
}

// Glyphs returns the display glyph of each reel.
func (m *Machine) Glyphs() [Reels]string {
	var out [Reels]string
	for i, idx := range m.reels {
		s := m.symbols[idx]
		out[i] = s.Glyph
		if out[i] == "" {
			out[i] = s.Name
		}
	}
	return out
}

// Snapshot returns a copy of the state for display.
func (m *Machine) Snapshot() State {
	return State{
		Phase:      m.phase,
		Reels:      m.reels,
		Glyphs:     m.Glyphs(),
		Bet:        m.bet,
		Message:    m.message,
		LastPayout: m.lastPayout,
	}
}
