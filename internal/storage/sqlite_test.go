package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func save(t *testing.T, s *Store, gameID string, outcome Outcome, moves int) Result {
	t.Helper()
	r, err := s.SaveResult(Result{
		GameID:  gameID,
		Rows:    12,
		Cols:    12,
		Bombs:   14,
		Outcome: outcome,
		Moves:   moves,
	})
	require.NoError(t, err)
	return r
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file was not created")
}

func TestStoreCreatesNestedDirectories(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err)
}

func TestStoreReopenKeepsResults(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	save(t, store, "minesweeper", OutcomeWon, 30)
	require.NoError(t, store.Close())

	store, err = Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	results, err := store.RecentResults("minesweeper", 10)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestSaveResultAssignsIDs(t *testing.T) {
	store := openTestStore(t)

	r := save(t, store, "minesweeper", OutcomeLost, 4)
	assert.NotZero(t, r.ID)
	_, err := uuid.Parse(r.RoundID)
	assert.NoError(t, err, "round id should be a uuid, got %q", r.RoundID)

	fixed := uuid.NewString()
	r2, err := store.SaveResult(Result{RoundID: fixed, GameID: "minesweeper", Outcome: OutcomeWon})
	require.NoError(t, err)
	assert.Equal(t, fixed, r2.RoundID)
	assert.Greater(t, r2.ID, r.ID)

	// Round ids are unique.
	_, err = store.SaveResult(Result{RoundID: fixed, GameID: "minesweeper", Outcome: OutcomeWon})
	assert.Error(t, err)
}

func TestSaveResultValidates(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveResult(Result{Outcome: OutcomeWon})
	assert.ErrorIs(t, err, ErrInvalidResult)

	_, err = store.SaveResult(Result{GameID: "minesweeper", Outcome: "draw"})
	assert.ErrorIs(t, err, ErrInvalidResult)
}

func TestRecentResults(t *testing.T) {
	store := openTestStore(t)

	save(t, store, "minesweeper", OutcomeLost, 3)
	save(t, store, "minesweeper_expert", OutcomeLost, 9)
	save(t, store, "minesweeper", OutcomeWon, 41)

	results, err := store.RecentResults("minesweeper", 10)
	require.NoError(t, err)
	require.Len(t, results, 2)

	// Newest first
	assert.Equal(t, OutcomeWon, results[0].Outcome)
	assert.Equal(t, 41, results[0].Moves)
	assert.Equal(t, OutcomeLost, results[1].Outcome)
	assert.Equal(t, 12, results[0].Rows)
	assert.Equal(t, 12, results[0].Cols)
	assert.Equal(t, 14, results[0].Bombs)
	assert.False(t, results[0].CreatedAt.IsZero())

	all, err := store.RecentResults("", 10)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	limited, err := store.RecentResults("", 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("minesweeper")
	require.NoError(t, err)
	assert.Equal(t, GameStats{GameID: "minesweeper"}, empty)
	assert.Zero(t, empty.WinRate())

	save(t, store, "minesweeper", OutcomeWon, 50)
	save(t, store, "minesweeper", OutcomeLost, 2)
	save(t, store, "minesweeper", OutcomeWon, 35)
	save(t, store, "minesweeper", OutcomeLost, 1)
	save(t, store, "minesweeper_beginner", OutcomeWon, 10)

	stats, err := store.Stats("minesweeper")
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Played)
	assert.Equal(t, 2, stats.Won)
	assert.Equal(t, 2, stats.Lost)
	assert.Equal(t, 35, stats.FewestMoves)
	assert.InDelta(t, 0.5, stats.WinRate(), 1e-9)
	assert.False(t, stats.LastPlayed.IsZero())
}

func TestStatsWithoutWins(t *testing.T) {
	store := openTestStore(t)
	save(t, store, "minesweeper", OutcomeLost, 7)

	stats, err := store.Stats("minesweeper")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Lost)
	assert.Zero(t, stats.FewestMoves)
}

func TestAllStats(t *testing.T) {
	store := openTestStore(t)

	save(t, store, "minesweeper_expert", OutcomeLost, 5)
	save(t, store, "minesweeper", OutcomeWon, 20)
	save(t, store, "minesweeper_expert", OutcomeWon, 200)

	all, err := store.AllStats()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "minesweeper", all[0].GameID)
	assert.Equal(t, 1, all[0].Played)
	assert.Equal(t, "minesweeper_expert", all[1].GameID)
	assert.Equal(t, 2, all[1].Played)
	assert.Equal(t, 1, all[1].Won)
}

func TestClearResults(t *testing.T) {
	store := openTestStore(t)

	save(t, store, "minesweeper", OutcomeWon, 20)
	save(t, store, "minesweeper_beginner", OutcomeWon, 8)
	require.NoError(t, store.ClearResults("minesweeper"))

	stats, err := store.Stats("minesweeper")
	require.NoError(t, err)
	assert.Zero(t, stats.Played)

	other, err := store.Stats("minesweeper_beginner")
	require.NoError(t, err)
	assert.Equal(t, 1, other.Played)
}

func TestClearAllResults(t *testing.T) {
	store := openTestStore(t)

	save(t, store, "minesweeper", OutcomeLost, 3)
	save(t, store, "minesweeper_expert", OutcomeWon, 120)
	require.NoError(t, store.ClearResults(""))

	all, err := store.AllStats()
	require.NoError(t, err)
	assert.Empty(t, all)
}
