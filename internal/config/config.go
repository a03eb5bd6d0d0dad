// Package config loads pixelcasino settings from an HCL file.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/pixelcasino/internal/ledger"
	"github.com/lox/pixelcasino/internal/slots"
)

// ErrNoSymbols is returned when the slots block ends up with no symbols.
var ErrNoSymbols = errors.New("config: slots needs at least one symbol")

const (
	DefaultLedgerFile = "coins.json"
	DefaultLogLevel   = "info"
	DefaultLogFile    = "pixelcasino.log"

	DefaultRoundResetDelay = 2 * time.Second
	DefaultSpinDelay       = 700 * time.Millisecond
	DefaultResultDelay     = 1400 * time.Millisecond
	DefaultNoticeDelay     = 1200 * time.Millisecond
)

// Config is the complete casino configuration.
type Config struct {
	Casino    *CasinoSettings    `hcl:"casino,block"`
	Blackjack *BlackjackSettings `hcl:"blackjack,block"`
	Poker     *PokerSettings     `hcl:"poker,block"`
	Slots     *SlotsSettings     `hcl:"slots,block"`
}

// CasinoSettings holds settings shared by every game.
type CasinoSettings struct {
	StartingCoins int    `hcl:"starting_coins,optional"`
	LedgerFile    string `hcl:"ledger_file,optional"`
	LogLevel      string `hcl:"log_level,optional"`
	LogFile       string `hcl:"log_file,optional"`
}

// BlackjackSettings configures the blackjack table.
type BlackjackSettings struct {
	BetOptions      []int  `hcl:"bet_options,optional"`
	DefaultBet      int    `hcl:"default_bet,optional"`
	RoundResetDelay string `hcl:"round_reset_delay,optional"`
}

// PokerSettings configures the video poker machine.
type PokerSettings struct {
	BetOptions []int `hcl:"bet_options,optional"`
}

// SlotsSettings configures the slot machine and its reel.
type SlotsSettings struct {
	BetOptions  []int          `hcl:"bet_options,optional"`
	DefaultBet  int            `hcl:"default_bet,optional"`
	SpinDelay   string         `hcl:"spin_delay,optional"`
	ResultDelay string         `hcl:"result_delay,optional"`
	NoticeDelay string         `hcl:"notice_delay,optional"`
	Symbols     []SymbolConfig `hcl:"symbol,block"`
}

// SymbolConfig is one reel symbol.
type SymbolConfig struct {
	Name        string `hcl:"name,label"`
	Glyph       string `hcl:"glyph,optional"`
	Weight      int    `hcl:"weight"`
	ThreePayout int    `hcl:"three_payout"`
}

// Default returns the built-in configuration.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source. Missing blocks and attributes take defaults.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var c Config
	diags = gohcl.DecodeBody(file.Body, nil, &c)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	c.applyDefaults()
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.Casino == nil {
		c.Casino = &CasinoSettings{}
	}
	if c.Casino.StartingCoins == 0 {
		c.Casino.StartingCoins = ledger.DefaultStartingCoins
	}
	if c.Casino.LedgerFile == "" {
		c.Casino.LedgerFile = DefaultLedgerFile
	}
	if c.Casino.LogLevel == "" {
		c.Casino.LogLevel = DefaultLogLevel
	}
	if c.Casino.LogFile == "" {
		c.Casino.LogFile = DefaultLogFile
	}

	if c.Blackjack == nil {
		c.Blackjack = &BlackjackSettings{}
	}
	if len(c.Blackjack.BetOptions) == 0 {
		c.Blackjack.BetOptions = []int{10, 25, 50, 100}
	}
	if c.Blackjack.DefaultBet == 0 {
		c.Blackjack.DefaultBet = c.Blackjack.BetOptions[0]
	}
	if c.Blackjack.RoundResetDelay == "" {
		c.Blackjack.RoundResetDelay = DefaultRoundResetDelay.String()
	}

	if c.Poker == nil {
		c.Poker = &PokerSettings{}
	}
	if len(c.Poker.BetOptions) == 0 {
		c.Poker.BetOptions = []int{1, 5, 10, 25}
	}

	if c.Slots == nil {
		c.Slots = &SlotsSettings{}
	}
	if len(c.Slots.BetOptions) == 0 {
		c.Slots.BetOptions = []int{10, 25, 50, 100}
	}
	if c.Slots.DefaultBet == 0 {
		c.Slots.DefaultBet = c.Slots.BetOptions[0]
	}
	if c.Slots.SpinDelay == "" {
		c.Slots.SpinDelay = DefaultSpinDelay.String()
	}
	if c.Slots.ResultDelay == "" {
		c.Slots.ResultDelay = DefaultResultDelay.String()
	}
	if c.Slots.NoticeDelay == "" {
		c.Slots.NoticeDelay = DefaultNoticeDelay.String()
	}
	if len(c.Slots.Symbols) == 0 {
		for _, s := range slots.DefaultSymbols() {
			c.Slots.Symbols = append(c.Slots.Symbols, SymbolConfig{
				Name:        s.Name,
				Glyph:       s.Glyph,
				Weight:      s.Weight,
				ThreePayout: s.ThreePayout,
			})
		}
	}
}

// Validate checks the configuration for values the games cannot use.
func (c *Config) Validate() error {
	if c.Casino.StartingCoins < 0 {
		return fmt.Errorf("casino: starting_coins must not be negative, got %d", c.Casino.StartingCoins)
	}
	if !slices.Contains([]string{"debug", "info", "warn", "error"}, c.Casino.LogLevel) {
		return fmt.Errorf("casino: invalid log_level %q", c.Casino.LogLevel)
	}

	if err := validateBets("blackjack", c.Blackjack.BetOptions, c.Blackjack.DefaultBet); err != nil {
		return err
	}
	if err := validateBets("poker", c.Poker.BetOptions, c.PokerDefaultBet()); err != nil {
		return err
	}
	if err := validateBets("slots", c.Slots.BetOptions, c.Slots.DefaultBet); err != nil {
		return err
	}

	delays := []struct {
		name, value string
	}{
		{"blackjack: round_reset_delay", c.Blackjack.RoundResetDelay},
		{"slots: spin_delay", c.Slots.SpinDelay},
		{"slots: result_delay", c.Slots.ResultDelay},
		{"slots: notice_delay", c.Slots.NoticeDelay},
	}
	for _, d := range delays {
		v, err := time.ParseDuration(d.value)
		if err != nil {
			return fmt.Errorf("%s: %w", d.name, err)
		}
		if v < 0 {
			return fmt.Errorf("%s must not be negative", d.name)
		}
	}

	if len(c.Slots.Symbols) == 0 {
		return ErrNoSymbols
	}
	if err := slots.ValidateSymbols(c.SlotSymbols()); err != nil {
		return fmt.Errorf("slots: %w", err)
	}
	return nil
}

func validateBets(game string, options []int, defaultBet int) error {
	if len(options) == 0 {
		return fmt.Errorf("%s: bet_options must not be empty", game)
	}
	for i, bet := range options {
		if bet <= 0 {
			return fmt.Errorf("%s: bet_options must be positive, got %d", game, bet)
		}
		if i > 0 && bet <= options[i-1] {
			return fmt.Errorf("%s: bet_options must be ascending", game)
		}
	}
	if defaultBet <= 0 {
		return fmt.Errorf("%s: default_bet must be positive, got %d", game, defaultBet)
	}
	return nil
}

// PokerDefaultBet is the smallest poker bet option.
func (c *Config) PokerDefaultBet() int {
	if len(c.Poker.BetOptions) == 0 {
		return 0
	}
	return c.Poker.BetOptions[0]
}

// SlotSymbols converts the configured symbols for the slot machine.
func (c *Config) SlotSymbols() []slots.Symbol {
	out := make([]slots.Symbol, len(c.Slots.Symbols))
	for i, s := range c.Slots.Symbols {
		out[i] = slots.Symbol{
			Name:        s.Name,
			Glyph:       s.Glyph,
			Weight:      s.Weight,
			ThreePayout: s.ThreePayout,
		}
	}
	return out
}

// RoundResetDelay is how long a finished blackjack table stays up.
func (c *Config) RoundResetDelay() time.Duration {
	return duration(c.Blackjack.RoundResetDelay, DefaultRoundResetDelay)
}

// SpinDelay is how long the reels turn before they land.
func (c *Config) SpinDelay() time.Duration {
	return duration(c.Slots.SpinDelay, DefaultSpinDelay)
}

// ResultDelay is how long a slot result message stays up.
func (c *Config) ResultDelay() time.Duration {
	return duration(c.Slots.ResultDelay, DefaultResultDelay)
}

// NoticeDelay is how long a slot notice such as "Not enough coins" stays up.
func (c *Config) NoticeDelay() time.Duration {
	return duration(c.Slots.NoticeDelay, DefaultNoticeDelay)
}

func duration(value string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
