package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"medref/internal"
)

type DB struct {
	conn *sql.DB
}

func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := conn.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = conn.Close()
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.init(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return db, nil
}

func (d *DB) Close() error {
	return d.conn.Close()
}

func (d *DB) init() error {
	schema := `
CREATE TABLE IF NOT EXISTS records (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  source TEXT NOT NULL,
  code TEXT NOT NULL,
  description TEXT NOT NULL,
  lastUpdated TEXT NOT NULL,
  UNIQUE(source, code)
);
CREATE INDEX IF NOT EXISTS idx_records_source ON records(source);

CREATE TABLE IF NOT EXISTS runs (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  traceId TEXT NOT NULL,
  source TEXT NOT NULL,
  inputPath TEXT NOT NULL,
  outputPath TEXT NOT NULL,
  countsJson TEXT NOT NULL,
  timingsJson TEXT NOT NULL,
  createdAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS metadata (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updatedAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

	_, err := d.conn.Exec(schema)
	return err
}

// ReplaceRecords swaps out the full record set for a source in one
// transaction; each run fully overwrites the previous one.
func (d *DB) ReplaceRecords(source string, records []internal.StandardizedRecord) error {
	tx, err := d.conn.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM records WHERE source = ?`, source); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`INSERT INTO records (source, code, description, lastUpdated) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.Exec(source, r.Code, r.Description, r.LastUpdated); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ListRecords returns a source's record set in insertion order.
func (d *DB) ListRecords(source string) ([]internal.StandardizedRecord, error) {
	rows, err := d.conn.Query(`
SELECT code, description, lastUpdated FROM records WHERE source = ? ORDER BY id ASC
`, source)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []internal.StandardizedRecord
	for rows.Next() {
		var r internal.StandardizedRecord
		if err := rows.Scan(&r.Code, &r.Description, &r.LastUpdated); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (d *DB) InsertRun(traceID, source, inputPath, outputPath string, counts map[string]int, timings map[string]float64) error {
	countsJSON, _ := json.Marshal(counts)
	timingsJSON, _ := json.Marshal(timings)
	_, err := d.conn.Exec(`
INSERT INTO runs (traceId, source, inputPath, outputPath, countsJson, timingsJson)
VALUES (?, ?, ?, ?, ?, ?)
`, traceID, source, inputPath, outputPath, string(countsJSON), string(timingsJSON))
	return err
}

func (d *DB) ListRuns(limit int) ([]internal.RunRow, error) {
	rows, err := d.conn.Query(`
SELECT id, traceId, source, inputPath, outputPath, countsJson, timingsJson, createdAt
FROM runs ORDER BY id DESC LIMIT ?
`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []internal.RunRow
	for rows.Next() {
		var row internal.RunRow
		var countsJSON, timingsJSON string
		if err := rows.Scan(&row.ID, &row.TraceID, &row.Source, &row.InputPath, &row.OutputPath, &countsJSON, &timingsJSON, &row.CreatedAt); err != nil {
			return nil, err
		}
		_ = json.Unmarshal([]byte(countsJSON), &row.Counts)
		_ = json.Unmarshal([]byte(timingsJSON), &row.Timings)
		out = append(out, row)
	}
	return out, rows.Err()
}

func (d *DB) SetMetadata(key, value string) error {
	_, err := d.conn.Exec(`
INSERT INTO metadata (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updatedAt = CURRENT_TIMESTAMP
`, key, value)
	return err
}

func (d *DB) GetMetadata(key string) (*string, error) {
	var value string
	err := d.conn.QueryRow(`SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &value, nil
}
