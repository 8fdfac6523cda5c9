package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "nested", "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenCreatesTheFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "a", "b", "scores.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err)
}

func TestTopScoresAreOrdered(t *testing.T) {
	store := openTemp(t)

	for _, e := range []ScoreEntry{
		{Name: "tux", Score: 100, Coins: 3, Level: "level1"},
		{Name: "tux", Score: 2500, Coins: 120, Level: "level3"},
		{Name: "gnu", Score: 100, Level: "level1"},
		{Name: "tux", Score: 900, Level: "level2"},
	} {
		_, err := store.SaveScore(e)
		require.NoError(t, err)
	}

	top, err := store.TopScores(3)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, 2500, top[0].Score)
	assert.Equal(t, 120, top[0].Coins)
	assert.Equal(t, "level3", top[0].Level)
	assert.Equal(t, 900, top[1].Score)
	// Equal scores keep insertion order
	assert.Equal(t, 100, top[2].Score)
	assert.Equal(t, "tux", top[2].Name)
	assert.WithinDuration(t, time.Now().UTC(), top[0].CreatedAt, 24*time.Hour)
}

func TestTopScoresDefaultsItsLimit(t *testing.T) {
	store := openTemp(t)
	for i := 0; i < 15; i++ {
		_, err := store.SaveScore(ScoreEntry{Name: "tux", Score: i})
		require.NoError(t, err)
	}

	top, err := store.TopScores(0)
	require.NoError(t, err)
	assert.Len(t, top, 10)
	assert.Equal(t, 14, top[0].Score)
}

func TestHighScoreAndClear(t *testing.T) {
	store := openTemp(t)

	high, err := store.HighScore()
	require.NoError(t, err)
	assert.Equal(t, 0, high)

	_, err = store.SaveScore(ScoreEntry{Name: "tux", Score: 4200})
	require.NoError(t, err)
	high, err = store.HighScore()
	require.NoError(t, err)
	assert.Equal(t, 4200, high)

	require.NoError(t, store.ClearScores())
	top, err := store.TopScores(10)
	require.NoError(t, err)
	assert.Empty(t, top)
}

func TestScoresPersistAcrossOpens(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	_, err = store.SaveScore(ScoreEntry{Name: "tux", Score: 77})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = Open(dbPath)
	require.NoError(t, err)
	defer store.Close()
	high, err := store.HighScore()
	require.NoError(t, err)
	assert.Equal(t, 77, high)
}
