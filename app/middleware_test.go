package main

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jarvis787/scribe/internal/tokenservice"
)

func strptr(s string) *string {
	return &s
}

// newAuthTestApplication builds an application with only the pieces the
// middleware needs; the store is deliberately absent so a rejected request
// that reached it would panic.
func newAuthTestApplication(t *testing.T) *application {
	return &application{
		config:       &Config{Environment: "test"},
		logger:       slog.New(slog.NewTextHandler(os.Stdout, nil)),
		tokenService: tokenservice.NewTokenService("test-secret"),
	}
}

func TestRecoverPanic(t *testing.T) {
	app := newAuthTestApplication(t)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("something went wrong")
	})

	middleware := app.recoverPanic(handler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	res := httptest.NewRecorder()

	middleware.ServeHTTP(res, req)

	assert.Equal(t, http.StatusInternalServerError, res.Code)
}

func TestRequireAuth(t *testing.T) {
	app := newAuthTestApplication(t)

	userID := uuid.New()
	validToken, err := app.tokenService.Issue(userID)
	assert.NoError(t, err)

	tests := []struct {
		name           string
		authHeader     *string
		expectedStatus int
	}{
		{
			name:           "No Authorization Header",
			authHeader:     nil,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Header Without Bearer Prefix",
			authHeader:     strptr(validToken),
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Invalid Token",
			authHeader:     strptr("Bearer not-a-token"),
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Valid Token",
			authHeader:     strptr("Bearer " + validToken),
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUserID uuid.UUID
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				id, ok := app.getUserContext(r)
				assert.True(t, ok)
				gotUserID = id
				w.WriteHeader(http.StatusOK)
			})

			middleware := app.requireAuth(handler)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/blog/bulk", nil)
			if tt.authHeader != nil {
				req.Header.Set("Authorization", *tt.authHeader)
			}
			res := httptest.NewRecorder()

			middleware.ServeHTTP(res, req)

			assert.Equal(t, tt.expectedStatus, res.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, userID, gotUserID)
			} else {
				assert.JSONEq(t, `{"error": "Unauthorized"}`, res.Body.String())
			}
		})
	}
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		header   string
		expected string
	}{
		{header: "", expected: ""},
		{header: "token", expected: ""},
		{header: "Bearer token", expected: "token"},
		{header: "bearer token", expected: ""},
		{header: "Bearer token extra", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractTokenFromHeader(tt.header))
		})
	}
}
