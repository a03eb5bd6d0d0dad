// Package ledger holds the player's coin balance shared by every game.
//
// Engines only ever debit and credit through the Ledger interface; the
// presentation layer reads Balance for display. Persistence is layered on
// top through the Wallet's change hook and a Store.
package ledger

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"
)

// DefaultStartingCoins is the balance of a brand new player.
const DefaultStartingCoins = 1000

// Ledger is the coin balance collaborator consumed by the game engines.
type Ledger interface {
	// AddCoins credits amount. Negative amounts are ignored.
	AddCoins(amount int)
	// RemoveCoins debits amount if the balance covers it and reports
	// whether it did. Negative amounts are refused.
	RemoveCoins(amount int) bool
	// Balance returns the current balance.
	Balance() int
}

// ChangeFunc is called after every successful balance change.
type ChangeFunc func(balance int)

// Wallet is an in-memory Ledger safe for concurrent use.
type Wallet struct {
	mu       sync.Mutex
	balance  int
	onChange ChangeFunc
	logger   *log.Logger
}

// WalletOption configures a Wallet.
type WalletOption func(*Wallet)

// WithOnChange registers a hook that runs after each balance change, e.g.
// to persist it.
func WithOnChange(fn ChangeFunc) WalletOption {
	return func(w *Wallet) {
		w.onChange = fn
	}
}

// WithLogger sets the wallet logger.
func WithLogger(logger *log.Logger) WalletOption {
	return func(w *Wallet) {
		w.logger = logger
	}
}

// NewWallet creates a wallet holding balance coins.
func NewWallet(balance int, opts ...WalletOption) *Wallet {
	if balance < 0 {
		balance = 0
	}
	w := &Wallet{
		balance: balance,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// AddCoins credits amount.
func (w *Wallet) AddCoins(amount int) {
	if amount < 0 {
		w.logger.Warn("Ignoring negative credit", "amount", amount)
		return
	}

	w.mu.Lock()
	w.balance += amount
	balance := w.balance
	w.mu.Unlock()

	w.logger.Debug("Credited coins", "amount", amount, "balance", balance)
	w.changed(balance)
}

// RemoveCoins debits amount when the balance is sufficient.
func (w *Wallet) RemoveCoins(amount int) bool {
	if amount < 0 {
		return false
	}

	w.mu.Lock()
	if w.balance < amount {
		balance := w.balance
		w.mu.Unlock()
		w.logger.Debug("Insufficient coins", "amount", amount, "balance", balance)
		return false
	}
	w.balance -= amount
	balance := w.balance
	w.mu.Unlock()

	w.logger.Debug("Debited coins", "amount", amount, "balance", balance)
	w.changed(balance)
	return true
}

// Balance returns the current balance.
func (w *Wallet) Balance() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.balance
}

func (w *Wallet) changed(balance int) {
	if w.onChange != nil {
		w.onChange(balance)
	}
}
