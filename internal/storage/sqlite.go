// Package storage provides SQLite-based persistence for finished rounds.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultPath is where the CLI keeps its database.
const DefaultPath = "~/.minesweeper/results.db"

// Outcome is how a round ended.
type Outcome string

const (
	OutcomeWon  Outcome = "won"
	OutcomeLost Outcome = "lost"
)

// ErrInvalidResult is returned when a result cannot be stored as given.
var ErrInvalidResult = errors.New("storage: invalid result")

// Store manages the SQLite database connection for round results.
type Store struct {
	db *sql.DB
}

// Result is one finished round.
type Result struct {
	ID        int64
	RoundID   string // Generated on save when empty
	GameID    string
	Rows      int
	Cols      int
	Bombs     int
	Outcome   Outcome
	Moves     int
	CreatedAt time.Time
}

// GameStats contains aggregated statistics for a game id.
type GameStats struct {
	GameID      string
	Played      int
	Won         int
	Lost        int
	FewestMoves int // Fewest moves in a won round, 0 if none
	LastPlayed  time.Time
}

// WinRate returns the fraction of rounds won, 0 when nothing was played.
func (gs GameStats) WinRate() float64 {
	if gs.Played == 0 {
		return 0
	}
	return float64(gs.Won) / float64(gs.Played)
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			round_id TEXT NOT NULL UNIQUE,
			game_id TEXT NOT NULL,
			board_rows INTEGER NOT NULL,
			board_cols INTEGER NOT NULL,
			bombs INTEGER NOT NULL,
			outcome TEXT NOT NULL CHECK (outcome IN ('won', 'lost')),
			moves INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_game_id ON results(game_id);
		CREATE INDEX IF NOT EXISTS idx_results_recent ON results(game_id, created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a finished round and returns the stored copy with its
// ID and round ID filled in.
func (s *Store) SaveResult(r Result) (Result, error) {
	if r.GameID == "" {
		return r, fmt.Errorf("%w: empty game id", ErrInvalidResult)
	}
	if r.Outcome != OutcomeWon && r.Outcome != OutcomeLost {
		return r, fmt.Errorf("%w: outcome %q", ErrInvalidResult, r.Outcome)
	}
	if r.RoundID == "" {
		r.RoundID = uuid.NewString()
	}

	res, err := s.db.Exec(
		`INSERT INTO results (round_id, game_id, board_rows, board_cols, bombs, outcome, moves)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.RoundID, r.GameID, r.Rows, r.Cols, r.Bombs, string(r.Outcome), r.Moves,
	)
	if err != nil {
		return r, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return r, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	r.ID = id

	return r, nil
}

// RecentResults returns the latest results, newest first. An empty gameID
// returns results for every game.
func (s *Store) RecentResults(gameID string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT id, round_id, game_id, board_rows, board_cols, bombs, outcome, moves, created_at
		 FROM results`
	args := []any{}
	if gameID != "" {
		query += ` WHERE game_id = ?`
		args = append(args, gameID)
	}
	query += ` ORDER BY created_at DESC, id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var outcome string
		var createdAt any
		if err := rows.Scan(&r.ID, &r.RoundID, &r.GameID, &r.Rows, &r.Cols, &r.Bombs,
			&outcome, &r.Moves, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Outcome = Outcome(outcome)
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// Stats returns aggregated statistics for one game id.
// A game with no rounds yields zero counts.
func (s *Store) Stats(gameID string) (GameStats, error) {
	stats := GameStats{GameID: gameID}

	var fewest sql.NullInt64
	var last any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = 'won' THEN 1 ELSE 0 END), 0),
		        MIN(CASE WHEN outcome = 'won' THEN moves END),
		        MAX(created_at)
		 FROM results
		 WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Played, &stats.Won, &fewest, &last)
	if err != nil {
		return stats, fmt.Errorf("storage: cannot query stats: %w", err)
	}

	stats.Lost = stats.Played - stats.Won
	if fewest.Valid {
		stats.FewestMoves = int(fewest.Int64)
	}
	stats.LastPlayed = parseTime(last)

	return stats, nil
}

// AllStats returns statistics for every game id that has results, sorted by id.
func (s *Store) AllStats() ([]GameStats, error) {
	rows, err := s.db.Query(`SELECT DISTINCT game_id FROM results ORDER BY game_id`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	all := make([]GameStats, 0, len(ids))
	for _, id := range ids {
		st, err := s.Stats(id)
		if err != nil {
			return nil, err
		}
		all = append(all, st)
	}
	return all, nil
}

// ClearResults deletes all results for the given game, or every result
// when gameID is empty.
func (s *Store) ClearResults(gameID string) error {
	var err error
	if gameID == "" {
		_, err = s.db.Exec("DELETE FROM results")
	} else {
		_, err = s.db.Exec("DELETE FROM results WHERE game_id = ?", gameID)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// parseTime handles both driver-decoded times and raw SQLite text.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
