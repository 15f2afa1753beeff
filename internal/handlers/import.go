package handlers

import (
	"errors"
	"net/http"
	"path/filepath"

	"wordbook/internal/contextutil"
	"wordbook/internal/importer"
	"wordbook/internal/service"
)

// ImportFormField is the multipart field carrying the spreadsheet.
const ImportFormField = "vocabulary"

// ImportHandler accepts spreadsheet uploads and replaces the catalog.
type ImportHandler struct {
	vocab    service.VocabService
	maxBytes int64
}

// ImportResponse reports the result of an import.
type ImportResponse struct {
	Filename string         `json:"filename"`
	Words    int            `json:"words"`
	Stats    importer.Stats `json:"stats"`
	Card     CardResponse   `json:"card"`
}

// NewImportHandler creates a new ImportHandler limiting uploads to maxBytes.
func NewImportHandler(vocab service.VocabService, maxBytes int64) *ImportHandler {
	return &ImportHandler{
		vocab:    vocab,
		maxBytes: maxBytes,
	}
}

// ServeHTTP handles multipart POST /api/import.
func (h *ImportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	if err := r.ParseMultipartForm(h.maxBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			logger.WarnContext(ctx, "upload too large", "limit", h.maxBytes)
			writeError(w, http.StatusRequestEntityTooLarge, "File too large")
			return
		}
		logger.WarnContext(ctx, "invalid multipart body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid upload")
		return
	}
	defer func() {
		_ = r.MultipartForm.RemoveAll()
	}()

	file, header, err := r.FormFile(ImportFormField)
	if err != nil {
		logger.WarnContext(ctx, "missing upload field", "field", ImportFormField, "error", err)
		writeError(w, http.StatusBadRequest, "vocabulary file is required")
		return
	}
	defer func() {
		_ = file.Close()
	}()

	res, err := h.vocab.Import(ctx, filepath.Base(header.Filename), file)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to import file")
		return
	}

	writeJSON(ctx, w, http.StatusOK, ImportResponse{
		Filename: res.Filename,
		Words:    res.Words,
		Stats:    res.Stats,
		Card:     toCardResponse(res.Card),
	})
}
