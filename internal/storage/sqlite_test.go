package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	require.NoError(t, err, "Open()")
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")
	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file should exist")
}

func TestSubmitRanksNewScores(t *testing.T) {
	store := openTestStore(t)

	rank, ok, err := store.Submit("starfall", "ann", 100, 2)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, rank, "first score is rank 1")

	rank, _, err = store.Submit("starfall", "bob", 200, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, rank, "higher score takes rank 1")

	rank, _, err = store.Submit("starfall", "cid", 150, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, rank, "middle score ranks between")

	// Ties rank below the earlier equal score.
	rank, _, err = store.Submit("starfall", "dee", 200, 4)
	require.NoError(t, err)
	assert.Equal(t, 2, rank)
}

func TestSubmitIsolatedPerGame(t *testing.T) {
	store := openTestStore(t)

	_, _, err := store.Submit("starfall", "ann", 500, 5)
	require.NoError(t, err)

	rank, _, err := store.Submit("starfall_blitz", "bob", 10, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, rank, "other game's scores must not affect rank")
}

func TestTopOrdersByScore(t *testing.T) {
	store := openTestStore(t)

	for _, e := range []struct {
		name  string
		score int
		level int
	}{
		{"ann", 100, 2},
		{"bob", 300, 4},
		{"cid", 200, 3},
	} {
		_, _, err := store.Submit("starfall", e.name, e.score, e.level)
		require.NoError(t, err)
	}

	entries, err := store.Top("starfall", 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "bob", entries[0].PlayerName)
	assert.Equal(t, 300, entries[0].Score)
	assert.Equal(t, 4, entries[0].Level)
	assert.Equal(t, "cid", entries[1].PlayerName)
}

func TestTopEmptyGame(t *testing.T) {
	store := openTestStore(t)

	entries, err := store.Top("starfall", 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	hs, err := store.HighScore("starfall")
	require.NoError(t, err)
	assert.Equal(t, 0, hs, "no scores yet")

	_, _, err = store.Submit("starfall", "ann", 250, 3)
	require.NoError(t, err)

	hs, err = store.HighScore("starfall")
	require.NoError(t, err)
	assert.Equal(t, 250, hs)
}

func TestClearScores(t *testing.T) {
	store := openTestStore(t)

	_, _, err := store.Submit("starfall", "ann", 100, 1)
	require.NoError(t, err)
	_, _, err = store.Submit("starfall_blitz", "ann", 50, 1)
	require.NoError(t, err)

	require.NoError(t, store.ClearScores("starfall"))

	entries, err := store.Top("starfall", 10)
	require.NoError(t, err)
	assert.Empty(t, entries)

	// Other games unaffected.
	entries, err = store.Top("starfall_blitz", 10)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestGameStats(t *testing.T) {
	store := openTestStore(t)

	_, _, err := store.Submit("starfall", "ann", 100, 2)
	require.NoError(t, err)
	_, _, err = store.Submit("starfall", "bob", 300, 5)
	require.NoError(t, err)

	stats, err := store.GetGameStats("starfall")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.GamesCount)
	assert.Equal(t, 300, stats.HighScore)
	assert.Equal(t, 5, stats.BestLevel)
	assert.InDelta(t, 200.0, stats.AvgScore, 0.01)
}
