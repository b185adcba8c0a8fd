package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/flashgen-server/internal/mocks"
	"github.com/dtroode/flashgen-server/internal/model"
	"github.com/dtroode/flashgen-server/internal/testutil"
)

func TestAuthenticate_Wrap(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	tests := []struct {
		name         string
		authHeader   string
		callsService bool
		svcIdentity  model.Identity
		svcErr       error
		wantCode     int
		wantBody     string
	}{
		{
			name:       "missing authorization header",
			authHeader: "",
			wantCode:   http.StatusUnauthorized,
			wantBody:   `{"error":"Missing authorization token"}`,
		},
		{
			name:       "scheme without token",
			authHeader: "Bearer",
			wantCode:   http.StatusUnauthorized,
			wantBody:   `{"error":"Missing authorization token"}`,
		},
		{
			name:       "wrong scheme",
			authHeader: "Basic dXNlcjpwYXNz",
			wantCode:   http.StatusUnauthorized,
			wantBody:   `{"error":"Invalid authorization token"}`,
		},
		{
			name:       "extra parts after token",
			authHeader: "Bearer token extra",
			wantCode:   http.StatusUnauthorized,
			wantBody:   `{"error":"Invalid authorization token"}`,
		},
		{
			name:         "invalid token",
			authHeader:   "Bearer invalid",
			callsService: true,
			svcErr:       model.ErrInvalidToken,
			wantCode:     http.StatusUnauthorized,
			wantBody:     `{"error":"Invalid authorization token"}`,
		},
		{
			name:         "nil user id from token",
			authHeader:   "Bearer token",
			callsService: true,
			svcIdentity:  model.Identity{},
			wantCode:     http.StatusUnauthorized,
			wantBody:     `{"error":"Invalid authorization token"}`,
		},
		{
			name:         "valid token",
			authHeader:   "Bearer token",
			callsService: true,
			svcIdentity:  model.Identity{UserID: userID, Email: "a@b.c"},
			wantCode:     http.StatusOK,
		},
		{
			name:         "scheme is case insensitive",
			authHeader:   "bearer token",
			callsService: true,
			svcIdentity:  model.Identity{UserID: userID},
			wantCode:     http.StatusOK,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewTokenService(t)
			if tt.callsService {
				svc.On("GetIdentity", mock.Anything, "token").Return(tt.svcIdentity, tt.svcErr).Maybe()
				svc.On("GetIdentity", mock.Anything, "invalid").Return(tt.svcIdentity, tt.svcErr).Maybe()
			}

			var got model.Identity
			called := false
			next := AuthenticatedHandlerFunc(func(w http.ResponseWriter, r *http.Request, id model.Identity) {
				called = true
				got = id
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/topics", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			NewAuthenticate(svc, testutil.MakeNoopLogger()).Wrap(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode == http.StatusOK {
				assert.True(t, called)
				assert.Equal(t, tt.svcIdentity, got)
				return
			}
			assert.False(t, called)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			if !tt.callsService {
				svc.AssertNotCalled(t, "GetIdentity", mock.Anything, mock.Anything)
			}
		})
	}
}
