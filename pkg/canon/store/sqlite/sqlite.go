package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/cognicore/canon/pkg/canon/internalerr"
	"github.com/cognicore/canon/pkg/canon/lexicon"
	"github.com/cognicore/canon/pkg/canon/pos"
	"github.com/cognicore/canon/pkg/canon/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens a SQLite database with WAL mode enabled and creates the
// resource tables if needed.
func OpenSQLite(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrStoreUnavailable, err)
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", internalerr.ErrStoreUnavailable, err)
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS words (
	rank INTEGER PRIMARY KEY,
	word TEXT UNIQUE NOT NULL
);

CREATE TABLE IF NOT EXISTS exceptions (
	category TEXT NOT NULL,
	form TEXT NOT NULL,
	lemma TEXT NOT NULL,
	PRIMARY KEY(category, form, lemma)
);

CREATE INDEX IF NOT EXISTS idx_exceptions_lemma ON exceptions(category, lemma);

CREATE TABLE IF NOT EXISTS closed_class (
	word TEXT PRIMARY KEY
);
`

	_, err := db.ExecContext(ctx, schema)
	return err
}

// Words returns the word list ordered by rank.
func (s *sqliteStore) Words(ctx context.Context) ([]string, error) {
	return queryStrings(ctx, s.db, `SELECT word FROM words ORDER BY rank`)
}

// PutWords replaces the word list in a single transaction.
func (s *sqliteStore) PutWords(ctx context.Context, words []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM words`); err != nil {
		return err
	}

	if len(words) > 0 {
		stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO words (rank, word) VALUES (?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()
		for rank, w := range words {
			if _, err := stmt.ExecContext(ctx, rank, w); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

// Exceptions returns the exception table grouped by category and lemma.
func (s *sqliteStore) Exceptions(ctx context.Context) ([]lexicon.Exception, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT category, lemma, form FROM exceptions
ORDER BY category, lemma, rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []lexicon.Exception
	for rows.Next() {
		var catName, lemma, form string
		if err := rows.Scan(&catName, &lemma, &form); err != nil {
			return nil, err
		}
		cat, err := pos.ParseCategory(catName)
		if err != nil {
			return nil, err
		}
		if n := len(out); n > 0 && out[n-1].Category == cat && out[n-1].Lemma == lemma {
			out[n-1].Forms = append(out[n-1].Forms, form)
			continue
		}
		out = append(out, lexicon.Exception{Category: cat, Lemma: lemma, Forms: []string{form}})
	}
	return out, rows.Err()
}

// PutException replaces the forms recorded for one lemma.
func (s *sqliteStore) PutException(ctx context.Context, e lexicon.Exception) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	cat := e.Category.String()
	if _, err := tx.ExecContext(ctx, `DELETE FROM exceptions WHERE category = ? AND lemma = ?`, cat, e.Lemma); err != nil {
		return err
	}

	const stmt = `INSERT OR IGNORE INTO exceptions (category, form, lemma) VALUES (?, ?, ?)`
	for _, form := range e.Forms {
		if _, err := tx.ExecContext(ctx, stmt, cat, form, e.Lemma); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Closed returns the closed-class words, sorted.
func (s *sqliteStore) Closed(ctx context.Context) ([]string, error) {
	return queryStrings(ctx, s.db, `SELECT word FROM closed_class ORDER BY word`)
}

// PutClosed replaces the closed-class list.
func (s *sqliteStore) PutClosed(ctx context.Context, words []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM closed_class`); err != nil {
		return err
	}
	for _, w := range words {
		if _, err := tx.ExecContext(ctx, `INSERT OR IGNORE INTO closed_class (word) VALUES (?)`, w); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func queryStrings(ctx context.Context, db *sql.DB, query string) ([]string, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
