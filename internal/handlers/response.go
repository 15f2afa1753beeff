package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"wordbook/internal/contextutil"
	"wordbook/internal/service"
	"wordbook/internal/storage"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// WordResponse is the JSON form of a word.
type WordResponse struct {
	ID          string   `json:"id"`
	Word        string   `json:"word"`
	Definitions []string `json:"definitions"`
	Notes       string   `json:"notes"`
	ImgURL      string   `json:"imgUrl,omitempty"`
}

// CardResponse is the JSON form of the card on display.
type CardResponse struct {
	State     string        `json:"state"`
	Cursor    int           `json:"cursor"`
	Total     int           `json:"total"`
	Word      *WordResponse `json:"word,omitempty"`
	LookupURL string        `json:"lookupUrl,omitempty"`
}

func toWordResponse(w storage.Word) WordResponse {
	defs := w.Definitions
	if defs == nil {
		defs = []string{}
	}
	return WordResponse{
		ID:          w.ID,
		Word:        w.Word,
		Definitions: defs,
		Notes:       w.Notes,
		ImgURL:      w.ImgURL,
	}
}

func toCardResponse(card service.CardView) CardResponse {
	resp := CardResponse{
		State:     string(card.State),
		Cursor:    card.Cursor,
		Total:     card.Total,
		LookupURL: card.LookupURL,
	}
	if card.Word != nil {
		w := toWordResponse(*card.Word)
		resp.Word = &w
	}
	return resp
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(ctx context.Context, w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error: message,
	})
}

// handleServiceError maps service errors to appropriate HTTP status codes and responses.
func handleServiceError(w http.ResponseWriter, ctx context.Context, err error, defaultMsg string) {
	logger := contextutil.LoggerFromContext(ctx)

	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		logger.WarnContext(ctx, "validation error", "error", err)
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Validation error: %s", validationErr.Error()))
		return
	}

	switch {
	case errors.Is(err, service.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, "Word not found")
	case errors.Is(err, service.ErrEmpty):
		writeError(w, http.StatusConflict, "No words loaded")
	case errors.Is(err, service.ErrConflict):
		writeError(w, http.StatusConflict, "A newer import replaced this one")
	case errors.Is(err, service.ErrDecode):
		writeError(w, http.StatusUnprocessableEntity, fmt.Sprintf("Could not read spreadsheet: %s", err.Error()))
	default:
		logger.ErrorContext(ctx, "service error", "error", err)
		writeError(w, http.StatusInternalServerError, defaultMsg)
	}
}
