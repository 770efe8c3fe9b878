package store

import (
	"database/sql"
	"errors"
	"fmt"
	"hash/fnv"
	"time"
)

// Run is one journal record of a tidy run.
type Run struct {
	ID       int64
	Path     string
	RunAt    time.Time
	Trigger  string // "cli", "watch", "mcp"
	BytesIn  int
	BytesOut int
	Entries  int
	Void     int
	W        int
	Other    int
	Changed  bool
	Hash     string // fnv-64a of the produced output
}

// HashText returns the journal's content hash for a document.
func HashText(text string) string {
	h := fnv.New64a()
	h.Write([]byte(text))
	return fmt.Sprintf("%016x", h.Sum64())
}

// RecordRun inserts a journal entry for one tidy run.
func (db *DB) RecordRun(r Run) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	_, err := db.conn.Exec(
		`INSERT INTO tidy_runs
		 (path, run_at, trigger_kind, bytes_in, bytes_out, entries, void_count, w_count, other_count, changed, output_hash)
		 VALUES (?, unixepoch(), ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Path, r.Trigger, r.BytesIn, r.BytesOut, r.Entries, r.Void, r.W, r.Other, boolToInt(r.Changed), r.Hash,
	)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

// RecentRuns returns the newest journal entries, most recent first.
func (db *DB) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := db.conn.Query(
		`SELECT id, path, run_at, trigger_kind, bytes_in, bytes_out, entries, void_count, w_count, other_count, changed, output_hash
		 FROM tidy_runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var runAt int64
		var changed int
		if err := rows.Scan(&r.ID, &r.Path, &runAt, &r.Trigger, &r.BytesIn, &r.BytesOut,
			&r.Entries, &r.Void, &r.W, &r.Other, &changed, &r.Hash); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.RunAt = time.Unix(runAt, 0)
		r.Changed = changed != 0
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// LastHash returns the output hash of the most recent run for a path, or ""
// when the path has never been tidied. Watch mode uses it to ignore its own
// writes.
func (db *DB) LastHash(path string) (string, error) {
	var hash string
	err := db.conn.QueryRow(
		`SELECT output_hash FROM tidy_runs WHERE path = ? ORDER BY id DESC LIMIT 1`, path,
	).Scan(&hash)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("last hash: %w", err)
	}
	return hash, nil
}

// RunCount returns the total number of journal entries.
func (db *DB) RunCount() (int, error) {
	var n int
	if err := db.conn.QueryRow(`SELECT COUNT(*) FROM tidy_runs`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count runs: %w", err)
	}
	return n, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
