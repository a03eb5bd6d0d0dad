package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// Store loads and saves a balance between play sessions.
type Store interface {
	Load() (int, error)
	Save(balance int) error
}

// FileStore persists the balance as a small JSON document.
type FileStore struct {
	Path          string
	StartingCoins int
}

type savedBalance struct {
	Coins   int       `json:"coins"`
	SavedAt time.Time `json:"saved_at"`
}

// NewFileStore creates a store at path. A missing file loads as
// startingCoins.
func NewFileStore(path string, startingCoins int) *FileStore {
	return &FileStore{Path: path, StartingCoins: startingCoins}
}

// Load reads the saved balance.
func (s *FileStore) Load() (int, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return s.StartingCoins, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read ledger file: %w", err)
	}

	var saved savedBalance
	if err := json.Unmarshal(data, &saved); err != nil {
		return 0, fmt.Errorf("failed to decode ledger file %s: %w", s.Path, err)
	}
	if saved.Coins < 0 {
		return 0, fmt.Errorf("ledger file %s holds negative balance %d", s.Path, saved.Coins)
	}
	return saved.Coins, nil
}

// Save writes the balance atomically.
func (s *FileStore) Save(balance int) error {
	data, err := json.MarshalIndent(savedBalance{Coins: balance, SavedAt: time.Now().UTC()}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode balance: %w", err)
	}
	return writeFileAtomic(s.Path, data, 0o644)
}

// writeFileAtomic writes to a temporary file in the target directory and
// renames it into place, so a reader sees either the old or the new balance.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(filename)
	tmpFile, err := os.CreateTemp(dir, filepath.Base(filename)+".tmp.*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if tmpFile != nil {
			tmpFile.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	tmpFile = nil

	if err := os.Chmod(tmpPath, perm); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpPath, filename); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

// OpenWallet loads the balance from store and returns a wallet that saves
// back to it on every change. Save failures are logged, not fatal.
func OpenWallet(store Store, opts ...WalletOption) (*Wallet, error) {
	balance, err := store.Load()
	if err != nil {
		return nil, err
	}

	w := NewWallet(balance, opts...)
	next := w.onChange
	w.onChange = func(balance int) {
		if err := store.Save(balance); err != nil {
			w.logger.Error("Failed to save balance", "error", err)
		}
		if next != nil {
			next(balance)
		}
	}
	return w, nil
}
