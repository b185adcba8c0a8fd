package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCORS_Handle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		origins     []string
		method      string
		origin      string
		preflight   bool
		wantCode    int
		wantAllowed string
		wantNext    bool
	}{
		{
			name:        "allowed origin",
			origins:     []string{"http://localhost:3000"},
			method:      http.MethodGet,
			origin:      "http://localhost:3000",
			wantCode:    http.StatusOK,
			wantAllowed: "http://localhost:3000",
			wantNext:    true,
		},
		{
			name:     "foreign origin",
			origins:  []string{"http://localhost:3000"},
			method:   http.MethodGet,
			origin:   "http://evil.test",
			wantCode: http.StatusOK,
			wantNext: true,
		},
		{
			name:        "wildcard",
			origins:     []string{"*"},
			method:      http.MethodGet,
			origin:      "http://any.test",
			wantCode:    http.StatusOK,
			wantAllowed: "*",
			wantNext:    true,
		},
		{
			name:        "preflight short circuits",
			origins:     []string{"http://localhost:3000"},
			method:      http.MethodOptions,
			origin:      "http://localhost:3000",
			preflight:   true,
			wantCode:    http.StatusNoContent,
			wantAllowed: "http://localhost:3000",
		},
		{
			name:      "preflight from foreign origin gets no grant",
			origins:   []string{"http://localhost:3000"},
			method:    http.MethodOptions,
			origin:    "http://evil.test",
			preflight: true,
			wantCode:  http.StatusNoContent,
		},
		{
			name:     "plain options reaches handler",
			origins:  []string{"http://localhost:3000"},
			method:   http.MethodOptions,
			wantCode: http.StatusOK,
			wantNext: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			called := false
			h := NewCORS(tt.origins).Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			}))

			req := httptest.NewRequest(tt.method, "/api/topics", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.preflight {
				req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantAllowed, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.wantNext, called)
			if tt.preflight && tt.wantAllowed != "" {
				assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
			}
		})
	}
}
