package search

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/devconnect/internal/models"
)

// MockService реализует интерфейс search.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Search(ctx context.Context, q string) (*models.SearchResult, error) {
	args := m.Called(ctx, q)
	if res := args.Get(0); res != nil {
		return res.(*models.SearchResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestSearchHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	tests := []struct {
		name           string
		query          string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "найдены пользователи и проекты",
			query: "ann",
			setupMock: func(m *MockService) {
				m.On("Search", mock.Anything, "ann").Return(&models.SearchResult{
					Users: []*models.User{
						{UID: "d5f1c8a2-81e4-4b86-b0a9-2f41a7c3de10", Name: "Ann", Email: "ann@example.com"},
					},
					Projects: []*models.Project{
						{UID: "8c2a6f1e-430b-4b2f-a6cf-4f0d2a1b9e55", Title: "Ann's planner", Comments: []models.Comment{}},
					},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"name":"Ann"`,
		},
		{
			name:  "совпадений нет — обе коллекции пустые",
			query: "nobody",
			setupMock: func(m *MockService) {
				m.On("Search", mock.Anything, "nobody").Return(&models.SearchResult{
					Users:    []*models.User{},
					Projects: []*models.Project{},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"users":[]`,
		},
		{
			name:  "пустая строка запроса",
			query: "",
			setupMock: func(m *MockService) {
				m.On("Search", mock.Anything, "").Return(&models.SearchResult{
					Users:    []*models.User{},
					Projects: []*models.Project{},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"projects":[]`,
		},
		{
			name:  "ошибка сервиса",
			query: "ann",
			setupMock: func(m *MockService) {
				m.On("Search", mock.Anything, "ann").Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"search failed"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, "/api/projects/search?q="+tt.query, nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
