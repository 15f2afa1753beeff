package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_word_store.go -package=mocks wordbook/internal/storage WordStore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
)

// DefaultSlot is the slot name the word list is stored under.
const DefaultSlot = "words"

var (
	// ErrIndexOutOfRange is returned when a notes update targets an entry
	// the persisted list does not have.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// ReadError describes a slot whose stored value could not be decoded.
// Load recovers from it by returning an empty list; it is only logged.
type ReadError struct {
	Slot string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("malformed slot %q: %v", e.Slot, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// WordStore defines the persistence operations for the word list.
type WordStore interface {
	// Load returns the saved list, or an empty list if nothing valid is stored.
	Load(ctx context.Context) ([]Word, error)
	// Save replaces the stored list.
	Save(ctx context.Context, words []Word) error
	// UpdateNotes rewrites the notes of the persisted entry at index.
	UpdateNotes(ctx context.Context, index int, notes string) error
	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error
}

// WordRepo stores the word list as a JSON array in a single named slot.
// It implements the WordStore interface.
type WordRepo struct {
	db     *sql.DB
	slot   string
	logger *slog.Logger
}

// NewWordRepo creates a new WordRepo writing to the given slot.
// An empty slot name falls back to DefaultSlot.
func NewWordRepo(db *sql.DB, slot string) *WordRepo {
	if slot == "" {
		slot = DefaultSlot
	}
	return &WordRepo{
		db:     db,
		slot:   slot,
		logger: slog.Default(),
	}
}

// Slot returns the slot name this repo reads and writes.
func (r *WordRepo) Slot() string {
	return r.slot
}

// Load reads the slot. A missing slot yields an empty list; a malformed one
// is logged and also yields an empty list.
func (r *WordRepo) Load(ctx context.Context) ([]Word, error) {
	return r.load(ctx, r.db)
}

// Save serializes words and replaces the slot value.
func (r *WordRepo) Save(ctx context.Context, words []Word) error {
	return r.save(ctx, r.db, words)
}

// UpdateNotes reads the persisted list, rewrites the notes of the entry at
// index and writes the list back in one transaction.
func (r *WordRepo) UpdateNotes(ctx context.Context, index int, notes string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	words, err := r.load(ctx, tx)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(words) {
		return fmt.Errorf("update notes at %d of %d: %w", index, len(words), ErrIndexOutOfRange)
	}
	words[index].Notes = notes

	if err := r.save(ctx, tx, words); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit notes update: %w", err)
	}
	return nil
}

// Ping checks the database connection.
func (r *WordRepo) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

type queryExecer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (r *WordRepo) load(ctx context.Context, q queryExecer) ([]Word, error) {
	var raw string
	err := q.QueryRowContext(ctx, "SELECT value FROM slots WHERE name = ?", r.slot).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return []Word{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query slot: %w", err)
	}

	var words []Word
	if err := json.Unmarshal([]byte(raw), &words); err != nil {
		readErr := &ReadError{Slot: r.slot, Err: err}
		r.logger.WarnContext(ctx, "ignoring malformed word list", "slot", r.slot, "error", readErr)
		return []Word{}, nil
	}
	if words == nil {
		words = []Word{}
	}
	return words, nil
}

func (r *WordRepo) save(ctx context.Context, q queryExecer, words []Word) error {
	if words == nil {
		words = []Word{}
	}
	data, err := json.Marshal(words)
	if err != nil {
		return fmt.Errorf("failed to encode word list: %w", err)
	}

	_, err = q.ExecContext(ctx,
		`INSERT INTO slots (name, value, updated_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (name) DO UPDATE SET
		 value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		r.slot, string(data),
	)
	if err != nil {
		return fmt.Errorf("failed to save slot: %w", err)
	}
	return nil
}
