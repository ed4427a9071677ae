package get

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/magabrotheeeer/devconnect/internal/http/middlewarectx"
	"github.com/magabrotheeeer/devconnect/internal/models"
)

func TestGetHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	tests := []struct {
		name           string
		user           *models.User
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешное чтение профиля",
			user: &models.User{
				UID:   "d5f1c8a2-81e4-4b86-b0a9-2f41a7c3de10",
				Name:  "Ann",
				Email: "ann@example.com",
				Bio:   "gopher",
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"email":"ann@example.com"`,
		},
		{
			name:           "пользователь отсутствует в контексте",
			user:           nil,
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"unauthorized"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := New(logger)

			req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
			if tt.user != nil {
				req = req.WithContext(context.WithValue(req.Context(), middlewarectx.CurrentUser, tt.user))
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())
		})
	}
}

// Хэш пароля не должен попадать в ответ даже при успешном чтении.
func TestGetHandler_NoPasswordHashInResponse(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	handler := New(logger)

	user := &models.User{
		UID:          "d5f1c8a2-81e4-4b86-b0a9-2f41a7c3de10",
		Name:         "Ann",
		Email:        "ann@example.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
	}

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req = req.WithContext(context.WithValue(req.Context(), middlewarectx.CurrentUser, user))
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "$2a$10$")
	assert.NotContains(t, w.Body.String(), "password")
}
