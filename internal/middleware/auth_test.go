package middleware_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/sneaker-store/internal/middleware"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "jwt-secret"

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestAuthenticate(t *testing.T) {
	future := time.Now().Add(time.Hour).Unix()
	past := time.Now().Add(-time.Hour).Unix()

	testCases := []struct {
		name       string
		header     string
		wantStatus int
		wantUser   string
	}{
		{name: "anonymous", wantStatus: http.StatusOK},
		{
			name:       "numeric id claim",
			header:     "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{"id": 42, "exp": future}),
			wantStatus: http.StatusOK,
			wantUser:   "42",
		},
		{
			name:       "subject claim",
			header:     "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{"sub": "user-1", "exp": future}),
			wantStatus: http.StatusOK,
			wantUser:   "user-1",
		},
		{
			name:       "expired",
			header:     "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{"id": 42, "exp": past}),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong secret",
			header:     "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte("other"), jwt.MapClaims{"id": 42}),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong algorithm",
			header:     "Bearer " + signToken(t, jwt.SigningMethodHS512, []byte(secret), jwt.MapClaims{"id": 42}),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "no user id",
			header:     "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{"exp": future}),
			wantStatus: http.StatusUnauthorized,
		},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var gotUser string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUser, _ = middleware.UserID(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()

			middleware.Authenticate(logger, secret)(next).ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantUser, gotUser)
		})
	}
}

func TestRequireUser(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	middleware.RequireUser(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(middleware.WithUserID(req.Context(), "user-1"))
	rec = httptest.NewRecorder()
	middleware.RequireUser(next).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
