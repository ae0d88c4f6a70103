package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndTopRuns(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveRun("arkanoid", 120, 3, "lose")
	require.NoError(t, err)
	_, err = store.SaveRun("arkanoid", 560, 12, "win")
	require.NoError(t, err)
	_, err = store.SaveRun("arkanoid", 340, 7, "lose")
	require.NoError(t, err)

	runs, err := store.TopRuns("arkanoid", 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	assert.Equal(t, 560, runs[0].Score)
	assert.Equal(t, 12, runs[0].Money)
	assert.Equal(t, "win", runs[0].Outcome)
	assert.Equal(t, 340, runs[1].Score)
}

func TestTopRunsIsolatedByGame(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveRun("arkanoid", 100, 1, "lose")
	require.NoError(t, err)
	_, err = store.SaveRun("other", 900, 9, "win")
	require.NoError(t, err)

	runs, err := store.TopRuns("arkanoid", 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, 100, runs[0].Score)
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	score, err := store.HighScore("arkanoid")
	require.NoError(t, err)
	assert.Zero(t, score, "empty table should report 0")

	_, err = store.SaveRun("arkanoid", 250, 2, "lose")
	require.NoError(t, err)
	_, err = store.SaveRun("arkanoid", 410, 4, "win")
	require.NoError(t, err)

	score, err = store.HighScore("arkanoid")
	require.NoError(t, err)
	assert.Equal(t, 410, score)
}

func TestStats(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveRun("arkanoid", 200, 5, "lose")
	require.NoError(t, err)
	_, err = store.SaveRun("arkanoid", 600, 15, "win")
	require.NoError(t, err)

	stats, err := store.Stats("arkanoid")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.RunCount)
	assert.Equal(t, 1, stats.Wins)
	assert.Equal(t, 600, stats.HighScore)
	assert.InDelta(t, 400.0, stats.AvgScore, 1e-9)
	assert.Equal(t, int64(20), stats.TotalMoney)
}

func TestClearRuns(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveRun("arkanoid", 100, 1, "lose")
	require.NoError(t, err)
	require.NoError(t, store.ClearRuns("arkanoid"))

	runs, err := store.TopRuns("arkanoid", 10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}
