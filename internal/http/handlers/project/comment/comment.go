// Package comment реализует HTTP-обработчик добавления комментария к проекту.
//
// Handler принимает JSON-запрос с текстом комментария, валидирует его,
// извлекает автора из контекста и делегирует добавление сервису.
// Пустой текст дает 400 независимо от состояния аутентификации,
// отсутствующий проект — 404.
package comment

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"
	"github.com/google/uuid"

	"github.com/magabrotheeeer/devconnect/internal/http/middlewarectx"
	"github.com/magabrotheeeer/devconnect/internal/http/response"
	"github.com/magabrotheeeer/devconnect/internal/lib/sl"
	"github.com/magabrotheeeer/devconnect/internal/models"
	"github.com/magabrotheeeer/devconnect/internal/storage"
)

// Request — входные данные для добавления комментария.
type Request struct {
	Text string `json:"text" validate:"required,min=1"`
}

// Handler управляет HTTP-запросами на добавление комментариев.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики добавления комментария.
type Service interface {
	AddComment(ctx context.Context, projectUID, authorUID, text string) (*models.Comment, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Добавить комментарий
// @Description Добавляет комментарий к проекту от имени текущего пользователя.
// @Tags Projects
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param id path string true "UID проекта"
// @Param request body Request true "Текст комментария"
// @Success 201 {object} map[string]any "Созданный комментарий"
// @Failure 400 {object} response.ErrorResponse "Пустой текст или некорректный идентификатор"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Проект не найден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/projects/{id}/comments [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.project.comment"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		log.Error("invalid project id", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid project id"))
		return
	}

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("comment text is required"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("comment text is required"))
		return
	}

	user, ok := middlewarectx.UserFromContext(r.Context())
	if !ok {
		log.Error("user not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	comment, err := h.service.AddComment(r.Context(), id, user.UID, req.Text)
	if err != nil {
		if errors.Is(err, storage.ErrProjectNotFound) {
			log.Error("project not found", slog.String("uid", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("project not found"))
			return
		}
		log.Error("failed to add comment", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not add comment"))
		return
	}

	log.Info("comment added", slog.String("project_uid", id), slog.Int64("comment_id", comment.ID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.OKWithData(map[string]any{
		"message": "comment added successfully",
		"comment": comment,
	}))
}
