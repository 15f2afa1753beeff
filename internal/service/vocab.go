package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_vocab_service.go -package=mocks -mock_names=VocabService=MockVocabService wordbook/internal/service VocabService
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_word_importer.go -package=mocks wordbook/internal/service WordImporter

import (
	"context"
	"errors"
	"io"
	"unicode/utf8"

	"wordbook/internal/catalog"
	"wordbook/internal/contextutil"
	"wordbook/internal/importer"
	"wordbook/internal/search"
	"wordbook/internal/storage"
)

// MaxNotesLength caps the notes stored for a single word, in runes.
const MaxNotesLength = 20000

// WordImporter turns an uploaded file into a word list.
// This interface is defined from the service layer's perspective (consumer-first).
type WordImporter interface {
	Import(ctx context.Context, filename string, r io.Reader) ([]storage.Word, error)
}

// LookupBuilder builds the external dictionary URL for a headword.
type LookupBuilder interface {
	URL(word string) string
}

// CardView is what the view needs to render the current card.
type CardView struct {
	State     catalog.State
	Cursor    int
	Total     int
	Word      *storage.Word
	LookupURL string
}

// ImportResult describes a completed import.
type ImportResult struct {
	Filename string
	Words    int
	Stats    importer.Stats
	Card     CardView
}

// VocabService provides flashcard browsing, search, notes and import.
type VocabService interface {
	// Current returns the card under the cursor.
	Current(ctx context.Context) (CardView, error)
	// Next advances the cursor, wrapping to the first word.
	Next(ctx context.Context) (CardView, error)
	// Previous moves the cursor back, wrapping to the last word.
	Previous(ctx context.Context) (CardView, error)
	// Jump moves the cursor to a zero-based index.
	Jump(ctx context.Context, index int) (CardView, error)
	// Select moves the cursor to the word with the given ID.
	Select(ctx context.Context, id string) (CardView, error)
	// SetNotes replaces the notes of the word with the given ID. The cursor does not move.
	SetNotes(ctx context.Context, id string, notes string) (CardView, error)
	// Search returns words whose headword starts with prefix.
	Search(ctx context.Context, prefix string) ([]storage.Word, error)
	// Import replaces the catalog with the words read from an uploaded file.
	Import(ctx context.Context, filename string, r io.Reader) (ImportResult, error)
}

// vocabService implements VocabService.
type vocabService struct {
	catalog     *catalog.Catalog
	importer    WordImporter
	lookup      LookupBuilder
	searchLimit int
}

// NewVocabService creates a new VocabService over an already loaded catalog.
func NewVocabService(cat *catalog.Catalog, imp WordImporter, lookup LookupBuilder, searchLimit int) VocabService {
	return &vocabService{
		catalog:     cat,
		importer:    imp,
		lookup:      lookup,
		searchLimit: searchLimit,
	}
}

func (s *vocabService) Current(ctx context.Context) (CardView, error) {
	return s.view(s.catalog.Snapshot()), nil
}

func (s *vocabService) Next(ctx context.Context) (CardView, error) {
	snap, err := s.catalog.Next()
	if err != nil {
		return s.view(snap), s.mapError(ctx, err, "next")
	}
	return s.view(snap), nil
}

func (s *vocabService) Previous(ctx context.Context) (CardView, error) {
	snap, err := s.catalog.Previous()
	if err != nil {
		return s.view(snap), s.mapError(ctx, err, "previous")
	}
	return s.view(snap), nil
}

func (s *vocabService) Jump(ctx context.Context, index int) (CardView, error) {
	snap, err := s.catalog.Jump(index)
	if err != nil {
		return s.view(snap), s.mapError(ctx, err, "jump")
	}
	return s.view(snap), nil
}

func (s *vocabService) Select(ctx context.Context, id string) (CardView, error) {
	if id == "" {
		return CardView{}, &ValidationError{Field: "id", Message: "cannot be empty"}
	}
	snap, err := s.catalog.Select(id)
	if err != nil {
		return s.view(snap), s.mapError(ctx, err, "select")
	}
	return s.view(snap), nil
}

func (s *vocabService) SetNotes(ctx context.Context, id string, notes string) (CardView, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if id == "" {
		return CardView{}, &ValidationError{Field: "id", Message: "cannot be empty"}
	}
	if !utf8.ValidString(notes) {
		return CardView{}, &ValidationError{Field: "notes", Message: "must be valid UTF-8"}
	}
	if utf8.RuneCountInString(notes) > MaxNotesLength {
		logger.WarnContext(ctx, "notes too long", "length", utf8.RuneCountInString(notes))
		return CardView{}, &ValidationError{Field: "notes", Message: "too long"}
	}

	snap, err := s.catalog.SetNotes(ctx, id, notes)
	if err != nil {
		return s.view(snap), s.mapError(ctx, err, "set notes")
	}
	return s.view(snap), nil
}

func (s *vocabService) Search(ctx context.Context, prefix string) ([]storage.Word, error) {
	snap := s.catalog.Snapshot()
	return search.Limit(search.Filter(snap.Items, prefix), s.searchLimit), nil
}

// Import decodes the upload and replaces the catalog. If an import started
// after this one is applied first, this one fails with ErrConflict. A later
// import that fails to decode does not affect this one.
func (s *vocabService) Import(ctx context.Context, filename string, r io.Reader) (ImportResult, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if filename == "" {
		return ImportResult{}, &ValidationError{Field: "file", Message: "filename is required"}
	}

	token := s.catalog.BeginImport()
	words, err := s.importer.Import(ctx, filename, r)
	if err != nil {
		logger.ErrorContext(ctx, "import failed", "file", filename, "error", err)
		var decodeErr *importer.DecodeError
		if errors.As(err, &decodeErr) {
			return ImportResult{}, withKind(ErrDecode, err)
		}
		return ImportResult{}, WrapError(err, "failed to import file")
	}

	snap, err := s.catalog.ApplyImport(ctx, token, words)
	if err != nil {
		return ImportResult{}, s.mapError(ctx, err, "apply import")
	}

	stats := importer.Summarize(words)
	logger.InfoContext(ctx, "import applied",
		"file", filename,
		"words", stats.Words,
		"blank_words", stats.BlankWords,
		"max_definitions", stats.Definitions.Max,
	)
	return ImportResult{
		Filename: filename,
		Words:    len(words),
		Stats:    stats,
		Card:     s.view(snap),
	}, nil
}

func (s *vocabService) view(snap catalog.Snapshot) CardView {
	v := CardView{
		State:  snap.State(),
		Cursor: snap.Cursor,
		Total:  len(snap.Items),
	}
	if w, ok := snap.Current(); ok {
		v.Word = &w
		if s.lookup != nil {
			v.LookupURL = s.lookup.URL(w.Word)
		}
	}
	return v
}

// mapError converts catalog errors into service errors.
func (s *vocabService) mapError(ctx context.Context, err error, op string) error {
	logger := contextutil.LoggerFromContext(ctx)

	switch {
	case errors.Is(err, catalog.ErrEmpty):
		return withKind(ErrEmpty, err)
	case errors.Is(err, catalog.ErrOutOfRange):
		return &ValidationError{Field: "index", Message: err.Error()}
	case errors.Is(err, catalog.ErrNotFound):
		return withKind(ErrNotFound, err)
	case errors.Is(err, catalog.ErrStaleImport):
		logger.WarnContext(ctx, "discarding superseded import", "error", err)
		return withKind(ErrConflict, err)
	}

	logger.ErrorContext(ctx, "catalog operation failed", "op", op, "error", err)
	return WrapError(err, op)
}
