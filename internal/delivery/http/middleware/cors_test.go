package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCORS(t *testing.T) {
	origins := []string{"https://app.schedlink.io", " https://staging.schedlink.io/ "}

	tests := []struct {
		name        string
		method      string
		origin      string
		wantStatus  int
		wantAllowed string
		wantNext    bool
	}{
		{
			name:        "allowed origin",
			method:      http.MethodGet,
			origin:      "https://app.schedlink.io",
			wantStatus:  http.StatusOK,
			wantAllowed: "https://app.schedlink.io",
			wantNext:    true,
		},
		{
			name:        "origin normalized at construction",
			method:      http.MethodGet,
			origin:      "https://staging.schedlink.io",
			wantStatus:  http.StatusOK,
			wantAllowed: "https://staging.schedlink.io",
			wantNext:    true,
		},
		{
			name:       "unknown origin gets no allow headers",
			method:     http.MethodGet,
			origin:     "https://evil.example.com",
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:        "preflight from allowed origin",
			method:      http.MethodOptions,
			origin:      "https://app.schedlink.io",
			wantStatus:  http.StatusNoContent,
			wantAllowed: "https://app.schedlink.io",
		},
		{
			name:       "preflight from unknown origin",
			method:     http.MethodOptions,
			origin:     "https://evil.example.com",
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "same-origin request without Origin header",
			method:     http.MethodGet,
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			handler := CORS(origins, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(tt.method, "/api/contacts", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
			assert.Equal(t, tt.wantAllowed, rr.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestCORSPreflightHeaders(t *testing.T) {
	handler := CORS([]string{"https://app.schedlink.io"}, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("preflight must not reach the router")
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/events", nil)
	req.Header.Set("Origin", "https://app.schedlink.io")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "GET, POST, PATCH, DELETE, OPTIONS", rr.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Authorization, Content-Type", rr.Header().Get("Access-Control-Allow-Headers"))
	assert.Contains(t, rr.Header().Values("Vary"), "Origin")
}
