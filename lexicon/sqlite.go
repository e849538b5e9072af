package lexicon

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	gopidgin "github.com/ZaguanLabs/gopidgin"
	"github.com/mattn/go-sqlite3"
)

const migrationsSQL = `
CREATE TABLE IF NOT EXISTS entries (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	pidgin        TEXT NOT NULL UNIQUE COLLATE NOCASE,
	english       TEXT NOT NULL,
	category      TEXT NOT NULL DEFAULT '',
	difficulty    TEXT NOT NULL DEFAULT '',
	examples      TEXT NOT NULL DEFAULT '[]',
	pronunciation TEXT NOT NULL DEFAULT '',
	updated_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE IF NOT EXISTS pairs (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	kind       TEXT NOT NULL CHECK (kind IN ('phrase', 'sentence')),
	english    TEXT NOT NULL,
	pidgin     TEXT NOT NULL,
	category   TEXT NOT NULL DEFAULT '',
	difficulty TEXT NOT NULL DEFAULT '',
	confidence REAL NOT NULL DEFAULT 0,
	UNIQUE (kind, english, pidgin)
);
CREATE INDEX IF NOT EXISTS idx_entries_category ON entries(category);
CREATE INDEX IF NOT EXISTS idx_pairs_kind ON pairs(kind)
`

const (
	kindPhrase   = "phrase"
	kindSentence = "sentence"
)

// InitDB runs the schema migrations on db.
func InitDB(db *sql.DB) error {
	for _, s := range strings.Split(migrationsSQL, ";") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, err := db.Exec(s); err != nil {
			return storeError("migrate", err)
		}
	}
	return nil
}

// SQLiteStore keeps the lexicon in a SQLite database. Row order is
// insertion order, which the index uses as candidate priority.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path and migrates it.
// Use ":memory:" for a throwaway store.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, storeError("open", err)
	}
	// single writer; in-memory databases are per-connection
	db.SetMaxOpenConns(1)
	if err := InitDB(db); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

// NewSQLiteStore wraps an already-migrated database handle.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// UpsertEntry inserts e, or updates the row with the same pidgin form.
// Updating keeps the row's original position.
func (s *SQLiteStore) UpsertEntry(ctx context.Context, e gopidgin.LexiconEntry) error {
	return upsertEntry(ctx, s.db, e)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func upsertEntry(ctx context.Context, db execer, e gopidgin.LexiconEntry) error {
	pidgin := strings.TrimSpace(e.PidginForm)
	if pidgin == "" {
		return &gopidgin.StoreError{Message: "entry pidgin form must be non-empty"}
	}
	if len(e.EnglishMeanings) == 0 {
		return &gopidgin.StoreError{Message: fmt.Sprintf("entry %q has no english meanings", pidgin)}
	}
	english, err := json.Marshal(e.EnglishMeanings)
	if err != nil {
		return storeError("encode meanings", err)
	}
	examples := []byte("[]")
	if len(e.Examples) > 0 {
		if examples, err = json.Marshal(e.Examples); err != nil {
			return storeError("encode examples", err)
		}
	}

	_, err = db.ExecContext(ctx, `INSERT INTO entries (pidgin, english, category, difficulty, examples, pronunciation)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(pidgin) DO UPDATE SET
			english = excluded.english,
			category = excluded.category,
			difficulty = excluded.difficulty,
			examples = excluded.examples,
			pronunciation = excluded.pronunciation,
			updated_at = CURRENT_TIMESTAMP`,
		pidgin, string(english), e.Category, string(e.Difficulty), string(examples), e.Pronunciation)
	if err != nil {
		return storeError("upsert entry", err)
	}
	return nil
}

// AddPhrase stores a phrase pair. Duplicates are ignored.
func (s *SQLiteStore) AddPhrase(ctx context.Context, p gopidgin.Pair) error {
	return addPair(ctx, s.db, kindPhrase, p)
}

// AddSentence stores a sentence pair. Duplicates are ignored.
func (s *SQLiteStore) AddSentence(ctx context.Context, p gopidgin.Pair) error {
	return addPair(ctx, s.db, kindSentence, p)
}

func addPair(ctx context.Context, db execer, kind string, p gopidgin.Pair) error {
	_, err := db.ExecContext(ctx, `INSERT INTO pairs (kind, english, pidgin, category, difficulty, confidence)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(kind, english, pidgin) DO NOTHING`,
		kind, strings.TrimSpace(p.English), strings.TrimSpace(p.Pidgin), p.Category, string(p.Difficulty), p.Confidence)
	if err != nil {
		return storeError("add "+kind, err)
	}
	return nil
}

// DeleteEntry removes the entry with the given pidgin form (case-insensitive).
// Reports whether a row was removed.
func (s *SQLiteStore) DeleteEntry(ctx context.Context, pidgin string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM entries WHERE pidgin = ?`, strings.TrimSpace(pidgin))
	if err != nil {
		return false, storeError("delete entry", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, storeError("delete entry", err)
	}
	return n > 0, nil
}

// Import upserts every entry and adds every pair of lex in one transaction.
// Existing rows not mentioned in lex are kept.
func (s *SQLiteStore) Import(ctx context.Context, lex gopidgin.Lexicon) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storeError("begin import", err)
	}
	defer tx.Rollback() //nolint:errcheck

	for _, e := range lex.Entries {
		if err := upsertEntry(ctx, tx, e); err != nil {
			return err
		}
	}
	for _, p := range lex.Phrases {
		if err := addPair(ctx, tx, kindPhrase, p); err != nil {
			return err
		}
	}
	for _, p := range lex.Sentences {
		if err := addPair(ctx, tx, kindSentence, p); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return storeError("commit import", err)
	}
	return nil
}

// Load reads the whole lexicon in insertion order.
func (s *SQLiteStore) Load(ctx context.Context) (gopidgin.Lexicon, error) {
	var lex gopidgin.Lexicon

	rows, err := s.db.QueryContext(ctx, `SELECT pidgin, english, category, difficulty, examples, pronunciation
		FROM entries ORDER BY id`)
	if err != nil {
		return lex, storeError("query entries", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			e                 gopidgin.LexiconEntry
			english, examples string
			difficulty        string
		)
		if err := rows.Scan(&e.PidginForm, &english, &e.Category, &difficulty, &examples, &e.Pronunciation); err != nil {
			return lex, storeError("scan entry", err)
		}
		if err := json.Unmarshal([]byte(english), &e.EnglishMeanings); err != nil {
			return lex, storeError(fmt.Sprintf("decode meanings of %q", e.PidginForm), err)
		}
		if err := json.Unmarshal([]byte(examples), &e.Examples); err != nil {
			return lex, storeError(fmt.Sprintf("decode examples of %q", e.PidginForm), err)
		}
		if len(e.Examples) == 0 {
			e.Examples = nil
		}
		e.Difficulty = gopidgin.Difficulty(difficulty)
		lex.Entries = append(lex.Entries, e)
	}
	if err := rows.Err(); err != nil {
		return lex, storeError("iterate entries", err)
	}

	pairs, err := s.db.QueryContext(ctx, `SELECT kind, english, pidgin, category, difficulty, confidence
		FROM pairs ORDER BY id`)
	if err != nil {
		return lex, storeError("query pairs", err)
	}
	defer pairs.Close()

	for pairs.Next() {
		var (
			p                gopidgin.Pair
			kind, difficulty string
		)
		if err := pairs.Scan(&kind, &p.English, &p.Pidgin, &p.Category, &difficulty, &p.Confidence); err != nil {
			return lex, storeError("scan pair", err)
		}
		p.Difficulty = gopidgin.Difficulty(difficulty)
		if kind == kindSentence {
			lex.Sentences = append(lex.Sentences, p)
		} else {
			lex.Phrases = append(lex.Phrases, p)
		}
	}
	if err := pairs.Err(); err != nil {
		return lex, storeError("iterate pairs", err)
	}

	return lex, nil
}

// Counts reports the number of stored entries, phrases and sentences.
func (s *SQLiteStore) Counts(ctx context.Context) (entries, phrases, sentences int, err error) {
	row := s.db.QueryRowContext(ctx, `SELECT
		(SELECT COUNT(*) FROM entries),
		(SELECT COUNT(*) FROM pairs WHERE kind = 'phrase'),
		(SELECT COUNT(*) FROM pairs WHERE kind = 'sentence')`)
	if err := row.Scan(&entries, &phrases, &sentences); err != nil {
		return 0, 0, 0, storeError("count", err)
	}
	return entries, phrases, sentences, nil
}

// storeError wraps err, flagging lock contention as retryable.
func storeError(op string, err error) error {
	return &gopidgin.StoreError{
		Message:   op,
		Cause:     err,
		Retryable: isBusy(err),
	}
}

func isBusy(err error) bool {
	var se sqlite3.Error
	if errors.As(err, &se) {
		return se.Code == sqlite3.ErrBusy || se.Code == sqlite3.ErrLocked
	}
	return false
}

var _ gopidgin.LexiconSource = (*SQLiteStore)(nil)
