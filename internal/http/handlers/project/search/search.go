// Package search реализует HTTP-обработчик поиска пользователей и проектов.
//
// Поиск выполняется по подстроке без учета регистра: имена пользователей и
// названия проектов проверяются независимо, обе коллекции возвращаются всегда.
package search

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/devconnect/internal/http/response"
	"github.com/magabrotheeeer/devconnect/internal/lib/sl"
	"github.com/magabrotheeeer/devconnect/internal/models"
)

// Handler обрабатывает поисковые запросы.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики поиска.
type Service interface {
	Search(ctx context.Context, q string) (*models.SearchResult, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Поиск пользователей и проектов
// @Description Ищет пользователей по имени и проекты по названию.
// @Tags Projects
// @Produce  json
// @Param q query string true "Поисковая строка"
// @Success 200 {object} map[string]any "Результаты поиска"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/projects/search [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.project.search"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	q := r.URL.Query().Get("q")

	res, err := h.service.Search(r.Context(), q)
	if err != nil {
		log.Error("search failed", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("search failed"))
		return
	}

	log.Info("search done", slog.String("q", q),
		slog.Int("users", len(res.Users)), slog.Int("projects", len(res.Projects)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"users":    res.Users,
		"projects": res.Projects,
	}))
}
