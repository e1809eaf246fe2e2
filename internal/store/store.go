// Package store journals the rounds of the current run in SQLite.
package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/verte-zerg/casedrill/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// MemoryDSN opens a private in-memory database that disappears on Close.
const MemoryDSN = ":memory:"

// Store wraps SQLite access for round data.
type Store struct {
	db *sql.DB
}

// Open opens the database at dsn and applies migrations.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// OpenMemory opens an empty in-memory journal.
func OpenMemory() (*Store, error) {
	return Open(MemoryDSN)
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY,
			answered_at TEXT NOT NULL,
			player TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			style TEXT NOT NULL,
			phrase TEXT NOT NULL,
			expected TEXT NOT NULL,
			typed TEXT NOT NULL,
			correct INTEGER NOT NULL,
			score_after INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_rounds_style ON rounds(style);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertRound stores one evaluated answer.
func (s *Store) InsertRound(ctx context.Context, r model.Round) (int64, error) {
	correct := 0
	if r.Correct {
		correct = 1
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO rounds (answered_at, player, difficulty, style, phrase, expected, typed, correct, score_after)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.AnsweredAt.Format(time.RFC3339Nano),
		r.Player,
		r.Difficulty.String(),
		r.Style,
		r.Phrase,
		r.Expected,
		r.Typed,
		correct,
		r.ScoreAfter,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListScores returns the score after each round in insertion order.
func (s *Store) ListScores(ctx context.Context) ([]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT score_after FROM rounds ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var scores []int
	for rows.Next() {
		var score int
		if err := rows.Scan(&score); err != nil {
			return nil, err
		}
		scores = append(scores, score)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return scores, nil
}

// ListStyleAggregates returns correct and incorrect counts per style.
func (s *Store) ListStyleAggregates(ctx context.Context) ([]model.StyleAggregate, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT style, SUM(correct) AS correct, SUM(1 - correct) AS incorrect
		 FROM rounds
		 GROUP BY style
		 ORDER BY style ASC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.StyleAggregate
	for rows.Next() {
		var agg model.StyleAggregate
		if err := rows.Scan(&agg.Style, &agg.Correct, &agg.Incorrect); err != nil {
			return nil, err
		}
		result = append(result, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
