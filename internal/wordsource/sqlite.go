package wordsource

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cenkalti/backoff/v5"
	_ "github.com/mattn/go-sqlite3"

	"github.com/robalobadob/wordle/apps/go-cli/internal/config"
)

// SQLite reads word documents stored as JSON text:
//
//	CREATE TABLE documents (id INTEGER PRIMARY KEY, content TEXT NOT NULL);
//
// The row with the lowest id is the word document.
type SQLite struct {
	path  string
	table string
}

// NewSQLite rejects table names that are not plain identifiers, since the
// name is spliced into the query.
func NewSQLite(cfg config.SQLite) (*SQLite, error) {
	if !isIdent(cfg.Table) {
		return nil, fmt.Errorf("sqlite: invalid table name %q", cfg.Table)
	}
	return &SQLite{path: cfg.Path, table: cfg.Table}, nil
}

func (s *SQLite) Name() string { return "sqlite" }

// openDB opens the database read-only with a busy timeout.
func openDB(path string) (*sql.DB, error) {
	return sql.Open("sqlite3", "file:"+path+"?mode=ro&_busy_timeout=5000")
}

func (s *SQLite) FetchCandidateWords(ctx context.Context) ([]string, error) {
	db, err := openDB(s.path)
	if err != nil {
		return nil, unavailable(s.Name(), err)
	}
	defer db.Close()

	var content string
	err = db.QueryRowContext(ctx, `SELECT content FROM `+s.table+` ORDER BY id LIMIT 1`).Scan(&content)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: sqlite table %s is empty", ErrNoDocuments, s.table)
	}
	if err != nil {
		return nil, unavailable(s.Name(), fmt.Errorf("query %s: %w", s.table, err))
	}

	var records []Record
	if err := json.Unmarshal([]byte(content), &records); err != nil {
		return nil, backoff.Permanent(unavailable(s.Name(), fmt.Errorf("decode document: %w", err)))
	}
	return wordsOf(s.Name(), records)
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
