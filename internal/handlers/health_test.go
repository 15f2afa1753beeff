package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"wordbook/internal/storage/mocks"
)

func TestHealthHandler_ServeHTTP(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
		wantState  string
	}{
		{name: "healthy", pingErr: nil, wantStatus: http.StatusOK, wantState: "healthy"},
		{name: "store down", pingErr: errors.New("database is locked"), wantStatus: http.StatusServiceUnavailable, wantState: "unhealthy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mocks.NewMockWordStore(ctrl)
			store.EXPECT().Ping(gomock.Any()).Return(tt.pingErr)

			handler := NewHealthHandler(store)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			var resp HealthResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if resp.Status != tt.wantState {
				t.Errorf("status = %q, want %q", resp.Status, tt.wantState)
			}
			if tt.pingErr != nil && len(resp.Issues) == 0 {
				t.Error("unhealthy response should list issues")
			}
		})
	}
}
