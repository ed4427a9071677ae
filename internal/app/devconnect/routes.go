// Package devconnect предоставляет маршруты для основного приложения.
package devconnect

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/devconnect/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/devconnect/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/devconnect/internal/http/handlers/health"
	profileget "github.com/magabrotheeeer/devconnect/internal/http/handlers/profile/get"
	profileupdate "github.com/magabrotheeeer/devconnect/internal/http/handlers/profile/update"
	"github.com/magabrotheeeer/devconnect/internal/http/handlers/project/comment"
	"github.com/magabrotheeeer/devconnect/internal/http/handlers/project/create"
	"github.com/magabrotheeeer/devconnect/internal/http/handlers/project/list"
	"github.com/magabrotheeeer/devconnect/internal/http/handlers/project/read"
	"github.com/magabrotheeeer/devconnect/internal/http/handlers/project/search"
	"github.com/magabrotheeeer/devconnect/internal/http/middlewarectx"
	"github.com/magabrotheeeer/devconnect/internal/services"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, authService *services.AuthService, projectService *services.ProjectService) {
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/auth/register", register.New(logger, authService).ServeHTTP)
		r.Post("/auth/login", login.New(logger, authService).ServeHTTP)
		r.Get("/projects", list.New(logger, projectService).ServeHTTP)
		r.Get("/projects/search", search.New(logger, projectService).ServeHTTP)
		r.Get("/projects/{id}", read.New(logger, projectService).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(authService, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Get("/profile", profileget.New(logger).ServeHTTP)
			r.Put("/profile", profileupdate.New(logger, authService).ServeHTTP)
			r.Post("/projects", create.New(logger, projectService).ServeHTTP)
			r.Post("/projects/{id}/comments", comment.New(logger, projectService).ServeHTTP)
		})
	})

	r.Get("/health", health.New(logger).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
