package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"wordbook/internal/catalog"
	"wordbook/internal/service"
	servicemocks "wordbook/internal/service/mocks"
	"wordbook/internal/storage"
	storagemocks "wordbook/internal/storage/mocks"
)

func init() {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestNewRouter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps := &Deps{
		VocabService: servicemocks.NewMockVocabService(ctrl),
		Store:        storagemocks.NewMockWordStore(ctrl),
		IndexHTML:    "<html><body>Test</body></html>",
	}

	router := NewRouter(deps)

	if router == nil {
		t.Fatal("NewRouter() returned nil")
	}
}

func TestRouter_Routes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVocab := servicemocks.NewMockVocabService(ctrl)
	mockStore := storagemocks.NewMockWordStore(ctrl)

	word := &storage.Word{ID: "w-1", Word: "cat", Definitions: []string{"cat", "feline"}}
	card := service.CardView{State: catalog.StateBrowsing, Cursor: 0, Total: 1, Word: word}

	mockVocab.EXPECT().Current(gomock.Any()).Return(card, nil).AnyTimes()
	mockVocab.EXPECT().Next(gomock.Any()).Return(card, nil).AnyTimes()
	mockVocab.EXPECT().Previous(gomock.Any()).Return(card, nil).AnyTimes()
	mockVocab.EXPECT().Select(gomock.Any(), "w-1").Return(card, nil).AnyTimes()
	mockVocab.EXPECT().SetNotes(gomock.Any(), "w-1", "purrs").Return(card, nil).AnyTimes()
	mockVocab.EXPECT().Search(gomock.Any(), "ca").Return([]storage.Word{*word}, nil).AnyTimes()
	mockStore.EXPECT().Ping(gomock.Any()).Return(nil).AnyTimes()

	deps := &Deps{
		VocabService: mockVocab,
		Store:        mockStore,
		IndexHTML:    "<html><body>Test</body></html>",
	}

	router := NewRouter(deps)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{
			name:       "GET root serves HTML",
			method:     http.MethodGet,
			path:       "/",
			wantStatus: http.StatusOK,
		},
		{
			name:       "GET current card",
			method:     http.MethodGet,
			path:       "/api/cards/current",
			wantStatus: http.StatusOK,
		},
		{
			name:       "POST next",
			method:     http.MethodPost,
			path:       "/api/cards/next",
			wantStatus: http.StatusOK,
		},
		{
			name:       "POST previous",
			method:     http.MethodPost,
			path:       "/api/cards/previous",
			wantStatus: http.StatusOK,
		},
		{
			name:       "GET next method not allowed",
			method:     http.MethodGet,
			path:       "/api/cards/next",
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:       "POST jump with invalid body",
			method:     http.MethodPost,
			path:       "/api/cards/jump",
			body:       "not json",
			wantStatus: http.StatusBadRequest, // Bad request due to invalid body, but route exists
		},
		{
			name:       "POST select",
			method:     http.MethodPost,
			path:       "/api/cards/w-1/select",
			wantStatus: http.StatusOK,
		},
		{
			name:       "PUT notes without field",
			method:     http.MethodPut,
			path:       "/api/cards/w-1/notes",
			body:       "{}",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "PUT notes",
			method:     http.MethodPut,
			path:       "/api/cards/w-1/notes",
			body:       `{"notes":"purrs"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "GET notes preview",
			method:     http.MethodGet,
			path:       "/api/cards/current/notes.html",
			wantStatus: http.StatusOK,
		},
		{
			name:       "GET search",
			method:     http.MethodGet,
			path:       "/api/search?q=ca",
			wantStatus: http.StatusOK,
		},
		{
			name:       "POST import without multipart body",
			method:     http.MethodPost,
			path:       "/api/import",
			body:       "plain",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "GET health",
			method:     http.MethodGet,
			path:       "/api/health",
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown route",
			method:     http.MethodGet,
			path:       "/api/unknown",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body io.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			}
			req := httptest.NewRequest(tt.method, tt.path, body)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("Router %s %s status = %v, want %v", tt.method, tt.path, w.Code, tt.wantStatus)
			}
		})
	}
}

func TestRouter_ServesIndexHTML(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	html := "<html><body>Wordbook</body></html>"
	router := NewRouter(&Deps{
		VocabService: servicemocks.NewMockVocabService(ctrl),
		Store:        storagemocks.NewMockWordStore(ctrl),
		IndexHTML:    html,
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if got := w.Body.String(); got != html {
		t.Errorf("GET / body = %q, want %q", got, html)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("GET / Content-Type = %q, want text/html", ct)
	}
}
