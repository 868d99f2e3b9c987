package historystore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists records in a single table, for a host that wants a
// durable single-file store without standing up Redis. Uses the pure-Go
// sqlite driver, so no cgo.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

// OpenSQLiteStore opens (creating if necessary) a sqlite database at path
// and ensures the runs table exists.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("historystore: open sqlite: %w", err)
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("historystore: pragma %s: %w", pragma, err)
		}
	}

	const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	final_state TEXT NOT NULL,
	steps INTEGER NOT NULL,
	survived INTEGER NOT NULL,
	updated_at TEXT NOT NULL
)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("historystore: create schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Save(ctx context.Context, r Record) error {
	data, err := json.Marshal(r.Final)
	if err != nil {
		return fmt.Errorf("historystore: marshal final state: %w", err)
	}

	const stmt = `
INSERT INTO runs (id, final_state, steps, survived, updated_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	final_state = excluded.final_state,
	steps = excluded.steps,
	survived = excluded.survived,
	updated_at = excluded.updated_at`

	survived := 0
	if r.Survived {
		survived = 1
	}
	_, err = s.db.ExecContext(ctx, stmt, r.ID, string(data), r.Steps, survived, r.UpdatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("historystore: insert run: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Load(ctx context.Context, id string) (Record, error) {
	const query = `SELECT id, final_state, steps, survived, updated_at FROM runs WHERE id = ?`

	var (
		gotID, finalState, updatedAt string
		steps, survived              int
	)
	row := s.db.QueryRowContext(ctx, query, id)
	if err := row.Scan(&gotID, &finalState, &steps, &survived, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, fmt.Errorf("historystore: scan run: %w", err)
	}

	r := Record{ID: gotID, Steps: steps, Survived: survived != 0}
	if err := json.Unmarshal([]byte(finalState), &r.Final); err != nil {
		return Record{}, fmt.Errorf("historystore: unmarshal final state: %w", err)
	}
	parsed, err := time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return Record{}, fmt.Errorf("historystore: parse updated_at: %w", err)
	}
	r.UpdatedAt = parsed
	return r, nil
}

func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, id); err != nil {
		return fmt.Errorf("historystore: delete run: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
