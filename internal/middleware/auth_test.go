package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"matrimonial-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

// fakeAuthenticator accepts a single known token
type fakeAuthenticator struct {
	token string
	user  *models.User
}

func (f *fakeAuthenticator) Authenticate(_ context.Context, token string) (*models.User, error) {
	if token == f.token {
		return f.user, nil
	}
	return nil, models.ErrUnauthorized
}

func TestAuthMiddleware(t *testing.T) {
	auth := &fakeAuthenticator{token: "good", user: &models.User{ID: "u1"}}

	var gotUserID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = GetUserID(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := AuthMiddleware(auth)(next)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"MissingHeader", "", http.StatusUnauthorized},
		{"NotBearer", "Basic abc", http.StatusUnauthorized},
		{"MalformedHeader", "Bearer", http.StatusUnauthorized},
		{"InvalidToken", "Bearer bad", http.StatusUnauthorized},
		{"ValidToken", "Bearer good", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotUserID = ""
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "u1", gotUserID)
			} else {
				assert.Empty(t, gotUserID)
			}
		})
	}
}
