package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"wordbook/internal/storage"
)

// ErrUnsupportedFormat is wrapped by DecodeError when the file extension is
// not one the importer can read.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// DecodeError is returned when an uploaded file can't be turned into sheet data.
type DecodeError struct {
	Filename string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Filename, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Options controls how rows become words.
type Options struct {
	// KeepEmptyRows keeps rows without any values as words with an empty
	// headword. When false such rows are skipped.
	KeepEmptyRows bool
	// SkipHeader drops the first row of every sheet.
	SkipHeader bool
}

// DefaultOptions keeps every row, including empty ones, and reads no header.
func DefaultOptions() Options {
	return Options{KeepEmptyRows: true}
}

// Sheet is one named table of rows, each row holding its cell values in
// column order.
type Sheet struct {
	Name string
	Rows [][]string
}

// Importer converts spreadsheet uploads into word lists.
type Importer struct {
	opts   Options
	logger *slog.Logger
}

// New creates an Importer with the given options.
func New(opts Options) *Importer {
	return &Importer{
		opts:   opts,
		logger: slog.Default(),
	}
}

// Import decodes the file and returns its words, sheet by sheet in workbook
// order and row by row within each sheet. Every word gets a fresh ID.
func (im *Importer) Import(ctx context.Context, filename string, r io.Reader) ([]storage.Word, error) {
	sheets, err := ReadSheets(ctx, filename, r)
	if err != nil {
		return nil, err
	}

	words := im.Words(sheets)
	im.logger.InfoContext(ctx, "spreadsheet imported",
		"file", filename,
		"sheets", len(sheets),
		"words", len(words),
	)
	return words, nil
}

// Words flattens sheets into words. The first value of a row is the headword
// and the whole value list, headword included, becomes the definitions.
func (im *Importer) Words(sheets []Sheet) []storage.Word {
	words := make([]storage.Word, 0)
	for _, sheet := range sheets {
		rows := sheet.Rows
		if im.opts.SkipHeader && len(rows) > 0 {
			rows = rows[1:]
		}
		for _, row := range rows {
			values := rowValues(row)
			if len(values) == 0 && !im.opts.KeepEmptyRows {
				continue
			}

			var head string
			if len(values) > 0 {
				head = values[0]
			}
			words = append(words, storage.Word{
				ID:          uuid.New().String(),
				Word:        head,
				Definitions: values,
			})
		}
	}
	return words
}

// ReadSheets decodes the file into sheets, choosing the decoder by extension.
// Any failure is reported as a *DecodeError.
func ReadSheets(ctx context.Context, filename string, r io.Reader) ([]Sheet, error) {
	var (
		sheets []Sheet
		err    error
	)

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		sheets, err = readWorkbook(ctx, r)
	case ".csv":
		sheets, err = readCSV(filename, r)
	default:
		err = fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if err != nil {
		return nil, &DecodeError{Filename: filename, Err: err}
	}
	return sheets, nil
}

func readWorkbook(ctx context.Context, r io.Reader) ([]Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	names := f.GetSheetList()
	sheets := make([]Sheet, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", name, err)
		}
		sheets = append(sheets, Sheet{Name: name, Rows: rows})
	}
	return sheets, nil
}

func readCSV(filename string, r io.Reader) ([]Sheet, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], "\ufeff")
	}

	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	return []Sheet{{Name: name, Rows: rows}}, nil
}

// rowValues keeps the non-blank cells of a row in column order.
func rowValues(row []string) []string {
	values := make([]string, 0, len(row))
	for _, cell := range row {
		if cell == "" {
			continue
		}
		values = append(values, cell)
	}
	return values
}
