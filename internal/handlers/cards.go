package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"wordbook/internal/contextutil"
	"wordbook/internal/service"
)

// CardHandler serves navigation and notes for the current card.
type CardHandler struct {
	vocab    service.VocabService
	markdown goldmark.Markdown
}

// JumpRequest is the body of a jump request. Index is zero-based.
type JumpRequest struct {
	Index *int `json:"index"`
}

// NotesRequest is the body of a notes update.
type NotesRequest struct {
	Notes *string `json:"notes"`
}

// NewCardHandler creates a new CardHandler.
func NewCardHandler(vocab service.VocabService) *CardHandler {
	return &CardHandler{
		vocab: vocab,
		// Raw HTML in notes is dropped by the renderer; notes are user input.
		markdown: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Typographer,
			),
			goldmark.WithRendererOptions(
				html.WithHardWraps(),
			),
		),
	}
}

// Current returns the card under the cursor.
func (h *CardHandler) Current(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	card, err := h.vocab.Current(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to load card")
		return
	}
	writeJSON(ctx, w, http.StatusOK, toCardResponse(card))
}

// Next advances to the next card.
func (h *CardHandler) Next(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	card, err := h.vocab.Next(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to move to next card")
		return
	}
	writeJSON(ctx, w, http.StatusOK, toCardResponse(card))
}

// Previous goes back one card.
func (h *CardHandler) Previous(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	card, err := h.vocab.Previous(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to move to previous card")
		return
	}
	writeJSON(ctx, w, http.StatusOK, toCardResponse(card))
}

// Jump moves the cursor to the index in the request body.
func (h *CardHandler) Jump(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req JumpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Index == nil {
		writeError(w, http.StatusBadRequest, "index is required")
		return
	}

	card, err := h.vocab.Jump(ctx, *req.Index)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to jump")
		return
	}
	writeJSON(ctx, w, http.StatusOK, toCardResponse(card))
}

// Select moves the cursor to the word named by the {id} URL parameter.
func (h *CardHandler) Select(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	card, err := h.vocab.Select(ctx, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to select word")
		return
	}
	writeJSON(ctx, w, http.StatusOK, toCardResponse(card))
}

// UpdateNotes replaces the notes of the word named by the {id} URL parameter.
func (h *CardHandler) UpdateNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req NotesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Notes == nil {
		writeError(w, http.StatusBadRequest, "notes is required")
		return
	}

	card, err := h.vocab.SetNotes(ctx, chi.URLParam(r, "id"), *req.Notes)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to save notes")
		return
	}
	writeJSON(ctx, w, http.StatusOK, toCardResponse(card))
}

// NotesHTML renders the notes of the current word as Markdown.
func (h *CardHandler) NotesHTML(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	card, err := h.vocab.Current(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to load card")
		return
	}
	if card.Word == nil {
		handleServiceError(w, ctx, service.ErrEmpty, "Failed to load card")
		return
	}

	rendered, err := h.renderMarkdown([]byte(card.Word.Notes))
	if err != nil {
		logger.ErrorContext(ctx, "failed to render notes", "word_id", card.Word.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to render notes")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(rendered)
}

func (h *CardHandler) renderMarkdown(content []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := h.markdown.Convert(content, &buf); err != nil {
		return nil, fmt.Errorf("convert markdown: %w", err)
	}
	return buf.Bytes(), nil
}
