package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/coder/quartz"
	"github.com/muesli/termenv"

	"github.com/lox/pixelcasino/cmd/pixelcasino/shared"
	"github.com/lox/pixelcasino/internal/config"
	"github.com/lox/pixelcasino/internal/ledger"
	"github.com/lox/pixelcasino/internal/randutil"
	"github.com/lox/pixelcasino/internal/schedule"
	"github.com/lox/pixelcasino/internal/tui"
)

type PlayCmd struct {
	Config  string `short:"c" default:"pixelcasino.hcl" help:"Path to HCL configuration file"`
	Ledger  string `help:"Coin balance file (overrides config)"`
	LogFile string `help:"Log file path (overrides config)"`
	Seed    int64  `default:"0" help:"RNG seed (0 for random)"`
	Debug   bool   `help:"Enable debug logging"`
	NoColor bool   `help:"Disable colours"`
}

func (c *PlayCmd) Run() error {
	cfg, err := loadConfig(c.Config)
	if err != nil {
		return err
	}
	if c.Ledger != "" {
		cfg.Casino.LedgerFile = c.Ledger
	}
	if c.LogFile != "" {
		cfg.Casino.LogFile = c.LogFile
	}

	// The TUI owns the terminal, so logs go to a file.
	logFile, err := shared.OpenLogFile(cfg.Casino.LogFile)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() { _ = logFile.Close() }()
	logger := shared.SetupLogger(logFile, cfg.Casino.LogLevel, c.Debug)

	rng, seed := randutil.NewTimeSeeded()
	if c.Seed != 0 {
		rng, seed = randutil.New(c.Seed), c.Seed
	}

	store := ledger.NewFileStore(cfg.Casino.LedgerFile, cfg.Casino.StartingCoins)
	wallet, err := ledger.OpenWallet(store, ledger.WithLogger(logger.WithPrefix("ledger")))
	if err != nil {
		return fmt.Errorf("failed to open ledger: %w", err)
	}

	sched := schedule.New(quartz.NewReal(), schedule.WithLogger(logger.WithPrefix("schedule")))
	defer sched.Close()

	app, err := tui.New(tui.Options{
		Config:    cfg,
		Wallet:    wallet,
		Scheduler: sched,
		RNG:       rng,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	if c.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	} else {
		lipgloss.SetColorProfile(termenv.NewOutput(os.Stdout).EnvColorProfile())
	}

	logger.Info("Starting casino",
		"config", c.Config,
		"ledger", cfg.Casino.LedgerFile,
		"balance", wallet.Balance(),
		"seed", seed)

	program := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	logger.Info("Leaving casino", "balance", wallet.Balance())
	return nil
}

// loadConfig reads and validates the config file. A missing file gives the
// defaults.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
