package ledger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreMissingFileUsesStartingCoins(t *testing.T) {
	t.Parallel()

	store := NewFileStore(filepath.Join(t.TempDir(), "coins.json"), DefaultStartingCoins)
	balance, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultStartingCoins, balance)
}

func TestFileStoreRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := NewFileStore(filepath.Join(dir, "coins.json"), DefaultStartingCoins)
	require.NoError(t, store.Save(420))

	balance, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, 420, balance)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files must not be left behind")
	assert.Equal(t, "coins.json", entries[0].Name())
}

func TestFileStoreRejectsCorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "coins.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewFileStore(path, 10).Load()
	assert.Error(t, err)
}

func TestFileStoreRejectsNegativeBalance(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "coins.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"coins": -5}`), 0o644))

	_, err := NewFileStore(path, 10).Load()
	assert.ErrorContains(t, err, "negative")
}

func TestFileStoreSaveToMissingDir(t *testing.T) {
	t.Parallel()

	store := NewFileStore(filepath.Join(t.TempDir(), "nope", "coins.json"), 10)
	assert.Error(t, store.Save(1))
}

func TestOpenWalletPersistsChanges(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "coins.json")
	store := NewFileStore(path, 200)

	calls := 0
	w, err := OpenWallet(store, WithOnChange(func(int) { calls++ }))
	require.NoError(t, err)
	assert.Equal(t, 200, w.Balance())

	require.True(t, w.RemoveCoins(50))
	w.AddCoins(10)
	assert.Equal(t, 2, calls)

	reloaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, 160, reloaded)
}
