package comment

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/devconnect/internal/http/middlewarectx"
	"github.com/magabrotheeeer/devconnect/internal/models"
	"github.com/magabrotheeeer/devconnect/internal/storage"
)

// MockService реализует интерфейс comment.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) AddComment(ctx context.Context, projectUID, authorUID, text string) (*models.Comment, error) {
	args := m.Called(ctx, projectUID, authorUID, text)
	if res := args.Get(0); res != nil {
		return res.(*models.Comment), args.Error(1)
	}
	return nil, args.Error(1)
}

const (
	projectUID = "8c2a6f1e-430b-4b2f-a6cf-4f0d2a1b9e55"
	authorUID  = "d5f1c8a2-81e4-4b86-b0a9-2f41a7c3de10"
)

func TestCommentHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	author := &models.User{UID: authorUID, Name: "Ann", Email: "ann@example.com"}

	tests := []struct {
		name           string
		id             string
		requestBody    string
		withUser       bool
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "успешное добавление комментария",
			id:          projectUID,
			requestBody: `{"text": "great idea"}`,
			withUser:    true,
			setupMock: func(m *MockService) {
				m.On("AddComment", mock.Anything, projectUID, authorUID, "great idea").
					Return(&models.Comment{
						ID:         1,
						ProjectUID: projectUID,
						AuthorUID:  authorUID,
						AuthorName: "Ann",
						Text:       "great idea",
						CreatedAt:  time.Now(),
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"message":"comment added successfully"`,
		},
		{
			name:           "некорректный id проекта",
			id:             "nope",
			requestBody:    `{"text": "hi"}`,
			withUser:       true,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid project id"}`,
		},
		{
			name:           "пустой текст комментария",
			id:             projectUID,
			requestBody:    `{"text": ""}`,
			withUser:       true,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"comment text is required"}`,
		},
		{
			name:           "пустой текст без авторизации — все равно 400",
			id:             projectUID,
			requestBody:    `{"text": ""}`,
			withUser:       false,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"comment text is required"}`,
		},
		{
			name:           "некорректный JSON",
			id:             projectUID,
			requestBody:    `{"text": `,
			withUser:       true,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"comment text is required"}`,
		},
		{
			name:           "пользователь отсутствует в контексте",
			id:             projectUID,
			requestBody:    `{"text": "hi"}`,
			withUser:       false,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"unauthorized"}`,
		},
		{
			name:        "проект не найден",
			id:          projectUID,
			requestBody: `{"text": "hi"}`,
			withUser:    true,
			setupMock: func(m *MockService) {
				m.On("AddComment", mock.Anything, projectUID, authorUID, "hi").
					Return(nil, storage.ErrProjectNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"project not found"}`,
		},
		{
			name:        "ошибка сервиса",
			id:          projectUID,
			requestBody: `{"text": "hi"}`,
			withUser:    true,
			setupMock: func(m *MockService) {
				m.On("AddComment", mock.Anything, projectUID, authorUID, "hi").
					Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"could not add comment"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost,
				"/api/projects/"+tt.id+"/comments", strings.NewReader(tt.requestBody))
			req.Header.Set("Content-Type", "application/json")

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			if tt.withUser {
				ctx = context.WithValue(ctx, middlewarectx.CurrentUser, author)
			}
			req = req.WithContext(ctx)

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
