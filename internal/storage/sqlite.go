package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS records (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	record TEXT NOT NULL,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// SQLiteHandler stores each record as a row of the records table.
type SQLiteHandler struct {
	db *sql.DB
}

func NewSQLiteHandler(path string) (*SQLiteHandler, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating storage directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLiteHandler{db: db}, nil
}

func (h *SQLiteHandler) Save(ctx context.Context, record string) error {
	if _, err := h.db.ExecContext(ctx, "INSERT INTO records (record) VALUES (?)", record); err != nil {
		return fmt.Errorf("inserting record: %w", err)
	}
	return nil
}

func (h *SQLiteHandler) Close() error {
	return h.db.Close()
}
