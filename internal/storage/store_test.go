package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openbook-cli/internal/types"
)

func TestStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()

	store := NewStore(NewFileBackend(dir), types.ProgramOpenBook)
	store.Load()
	store.Put("market-addr", MarketRecord{
		Name:         "SOL/USDC",
		BaseMint:     "base",
		QuoteMint:    "quote",
		MinOrderSize: 0.1,
		PriceTick:    0.001,
	})
	store.PutSymbolIfAbsent("base", "SOL")
	require.NoError(t, store.Save())

	reloaded := NewStore(NewFileBackend(dir), types.ProgramOpenBook)
	reloaded.Load()

	rec, ok := reloaded.Get("market-addr")
	require.True(t, ok)
	assert.Equal(t, "SOL/USDC", rec.Name)
	assert.Equal(t, 0.001, rec.PriceTick)

	symbol, ok := reloaded.GetSymbol("base")
	assert.True(t, ok)
	assert.Equal(t, "SOL", symbol)
}

func TestSymbolFirstWriterWins(t *testing.T) {
	store := NewStore(NewFileBackend(t.TempDir()), types.ProgramSerum)

	store.PutSymbolIfAbsent("mint", "X")
	store.PutSymbolIfAbsent("mint", "Y")

	symbol, ok := store.GetSymbol("mint")
	require.True(t, ok)
	assert.Equal(t, "X", symbol)
}

func TestLoadMissingStateStartsEmpty(t *testing.T) {
	store := NewStore(NewFileBackend(t.TempDir()), types.ProgramOpenBook)
	store.Load()

	assert.Empty(t, store.Markets())
}

func TestLoadCorruptStateStartsEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "markets-openbook.json"), []byte("{not json"), 0o644))

	store := NewStore(NewFileBackend(dir), types.ProgramOpenBook)
	store.Load()

	assert.Empty(t, store.Markets())
	_, ok := store.GetSymbol("anything")
	assert.False(t, ok)
}

func TestStoresArePartitionedByProgram(t *testing.T) {
	dir := t.TempDir()

	openbook := NewStore(NewFileBackend(dir), types.ProgramOpenBook)
	openbook.Put("addr", MarketRecord{Name: "SOL/USDC"})
	require.NoError(t, openbook.Save())

	serum := NewStore(NewFileBackend(dir), types.ProgramSerum)
	serum.Load()

	_, ok := serum.Get("addr")
	assert.False(t, ok, "the two program stores never cross-query")
}
