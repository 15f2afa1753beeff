package handlers

import (
	"net/http"

	"wordbook/internal/service"
)

// SearchHandler serves prefix search over the headwords.
type SearchHandler struct {
	vocab service.VocabService
}

// SearchResponse lists matching words in catalog order.
type SearchResponse struct {
	Query   string         `json:"query"`
	Results []WordResponse `json:"results"`
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(vocab service.VocabService) *SearchHandler {
	return &SearchHandler{vocab: vocab}
}

// ServeHTTP handles GET /api/search?q=prefix. An empty query matches every
// word; the page hides results itself while the field is empty.
func (h *SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	query := r.URL.Query().Get("q")
	words, err := h.vocab.Search(ctx, query)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to search")
		return
	}

	results := make([]WordResponse, len(words))
	for i, word := range words {
		results[i] = toWordResponse(word)
	}
	writeJSON(ctx, w, http.StatusOK, SearchResponse{
		Query:   query,
		Results: results,
	})
}
