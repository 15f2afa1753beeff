package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"wordbook/internal/storage"
)

var (
	// ErrEmpty is returned by navigation when the catalog has no words.
	ErrEmpty = errors.New("catalog is empty")
	// ErrOutOfRange is returned when a jump target is outside the catalog.
	ErrOutOfRange = errors.New("index out of range")
	// ErrNotFound is returned when no word carries the requested ID.
	ErrNotFound = errors.New("word not found")
	// ErrStaleImport is returned when a later-issued import has already been applied.
	ErrStaleImport = errors.New("import superseded by a newer one")
)

// State names the two states of the catalog.
type State string

const (
	StateEmpty    State = "empty"
	StateBrowsing State = "browsing"
)

// Snapshot is a consistent copy of the catalog at one point in time.
type Snapshot struct {
	Items  []storage.Word
	Cursor int
}

// State reports whether the snapshot has words to browse.
func (s Snapshot) State() State {
	if len(s.Items) == 0 {
		return StateEmpty
	}
	return StateBrowsing
}

// Current returns the word under the cursor, if any.
func (s Snapshot) Current() (storage.Word, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.Items) {
		return storage.Word{}, false
	}
	return s.Items[s.Cursor], true
}

// ImportToken identifies one import request. Tokens are issued in increasing
// order; an import is stale once a later-issued one has been applied.
type ImportToken uint64

// Catalog is the ordered word list plus the cursor of the word on display.
// All methods are safe for concurrent use; mutations are applied one at a time.
type Catalog struct {
	mu         sync.Mutex
	store      storage.WordStore
	items      []storage.Word
	cursor     int
	generation ImportToken // last token issued
	applied    ImportToken // token of the last applied import
	logger     *slog.Logger
}

// New loads the catalog from store. The cursor starts at the first word, the
// same position Replace leaves it in.
func New(ctx context.Context, store storage.WordStore, logger *slog.Logger) (*Catalog, error) {
	if logger == nil {
		logger = slog.Default()
	}

	items, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load words: %w", err)
	}

	// Lists written before words carried IDs get them now.
	if assignMissingIDs(items) {
		if err := store.Save(ctx, items); err != nil {
			return nil, fmt.Errorf("failed to persist word ids: %w", err)
		}
		logger.InfoContext(ctx, "assigned ids to stored words", "count", len(items))
	}

	return &Catalog{
		store:  store,
		items:  items,
		cursor: 0,
		logger: logger,
	}, nil
}

// Snapshot returns a deep copy of the current items and cursor.
func (c *Catalog) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

// Len returns the number of words.
func (c *Catalog) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Replace swaps in a whole new word list and resets the cursor to 0.
// The list is persisted first; if that fails the catalog is unchanged.
func (c *Catalog) Replace(ctx context.Context, items []storage.Word) (Snapshot, error) {
	return c.ApplyImport(ctx, c.BeginImport(), items)
}

// BeginImport issues a new import token. Issuing alone invalidates nothing, so
// an import that later fails to decode does not block an earlier one.
func (c *Catalog) BeginImport() ImportToken {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	return c.generation
}

// ApplyImport replaces the catalog with items unless an import issued after
// token has already been applied, in which case it returns ErrStaleImport and
// leaves everything untouched. The catalog always ends up holding the
// newest-issued import that succeeded.
func (c *Catalog) ApplyImport(ctx context.Context, token ImportToken, items []storage.Word) (Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if token == 0 || token > c.generation {
		return c.snapshot(), fmt.Errorf("apply import %d: token was never issued", token)
	}
	if token < c.applied {
		return c.snapshot(), fmt.Errorf("apply import %d (applied %d): %w", token, c.applied, ErrStaleImport)
	}

	next := storage.CloneWords(items)
	if next == nil {
		next = []storage.Word{}
	}
	assignMissingIDs(next)

	if err := c.store.Save(ctx, next); err != nil {
		return c.snapshot(), fmt.Errorf("failed to save words: %w", err)
	}

	c.items = next
	c.cursor = 0
	c.applied = token
	c.logger.InfoContext(ctx, "catalog replaced", "words", len(next), "import", uint64(token))
	return c.snapshot(), nil
}

// Next moves the cursor forward, wrapping from the last word to the first.
func (c *Catalog) Next() (Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.items) == 0 {
		return c.snapshot(), ErrEmpty
	}
	c.cursor = (c.normalized() + 1) % len(c.items)
	return c.snapshot(), nil
}

// Previous moves the cursor back, wrapping from the first word to the last.
func (c *Catalog) Previous() (Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.items) == 0 {
		return c.snapshot(), ErrEmpty
	}
	n := len(c.items)
	c.cursor = (c.normalized() - 1 + n) % n
	return c.snapshot(), nil
}

// Jump moves the cursor to index.
func (c *Catalog) Jump(index int) (Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.items) == 0 {
		return c.snapshot(), ErrEmpty
	}
	if index < 0 || index >= len(c.items) {
		return c.snapshot(), fmt.Errorf("jump to %d of %d: %w", index, len(c.items), ErrOutOfRange)
	}
	c.cursor = index
	return c.snapshot(), nil
}

// Select moves the cursor to the word with the given ID.
func (c *Catalog) Select(id string) (Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexOf(id)
	if idx < 0 {
		return c.snapshot(), fmt.Errorf("select %q: %w", id, ErrNotFound)
	}
	c.cursor = idx
	return c.snapshot(), nil
}

// SetNotes replaces the notes of the word with the given ID and persists the
// change. The cursor does not move.
func (c *Catalog) SetNotes(ctx context.Context, id string, notes string) (Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.items) == 0 {
		return c.snapshot(), ErrEmpty
	}
	idx := c.indexOf(id)
	if idx < 0 {
		return c.snapshot(), fmt.Errorf("set notes on %q: %w", id, ErrNotFound)
	}

	previous := c.items[idx].Notes
	c.items[idx].Notes = notes
	if err := c.store.UpdateNotes(ctx, idx, notes); err != nil {
		c.items[idx].Notes = previous
		return c.snapshot(), fmt.Errorf("failed to persist notes: %w", err)
	}
	return c.snapshot(), nil
}

// normalized returns the cursor clamped into range. Callers hold mu and have
// checked that items is non-empty.
func (c *Catalog) normalized() int {
	if c.cursor < 0 || c.cursor >= len(c.items) {
		c.cursor = 0
	}
	return c.cursor
}

// indexOf returns the position of the word with id, or -1. Callers hold mu.
func (c *Catalog) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, w := range c.items {
		if w.ID == id {
			return i
		}
	}
	return -1
}

func (c *Catalog) snapshot() Snapshot {
	return Snapshot{
		Items:  storage.CloneWords(c.items),
		Cursor: c.cursor,
	}
}

func assignMissingIDs(items []storage.Word) bool {
	changed := false
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = uuid.New().String()
			changed = true
		}
	}
	return changed
}
