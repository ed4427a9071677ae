package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/devconnect/internal/models"
)

// ProjectRepository определяет методы для работы с проектами в хранилище.
type ProjectRepository interface {
	// CreateProject добавляет новый проект и возвращает его UID.
	CreateProject(ctx context.Context, project models.Project) (string, error)
	// GetProject возвращает проект с именем владельца и комментариями.
	GetProject(ctx context.Context, projectUID string) (*models.Project, error)
	// ListProjects возвращает все проекты в порядке создания.
	ListProjects(ctx context.Context) ([]*models.Project, error)
	// SearchProjectsByTitle ищет проекты по подстроке названия.
	SearchProjectsByTitle(ctx context.Context, q string) ([]*models.Project, error)
	// AddComment добавляет комментарий к проекту.
	AddComment(ctx context.Context, projectUID, authorUID, text string) (*models.Comment, error)
}

// UserSearcher ищет пользователей по подстроке имени.
type UserSearcher interface {
	SearchUsersByName(ctx context.Context, q string) ([]*models.User, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// ProjectService реализует бизнес-логику работы с проектами, включая кеширование.
type ProjectService struct {
	repo  ProjectRepository
	users UserSearcher
	cache Cache
	log   *slog.Logger
}

// NewProjectService создает новый экземпляр ProjectService.
func NewProjectService(repo ProjectRepository, users UserSearcher, cache Cache, log *slog.Logger) *ProjectService {
	return &ProjectService{
		repo:  repo,
		users: users,
		cache: cache,
		log:   log,
	}
}

// Create создает новый проект и возвращает его с заполненным именем владельца.
func (s *ProjectService) Create(ctx context.Context, ownerUID string, req models.DummyProject) (*models.Project, error) {
	project := models.Project{
		OwnerUID:    ownerUID,
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
	}

	uid, err := s.repo.CreateProject(ctx, project)
	if err != nil {
		return nil, err
	}
	s.log.Info("created new project", slog.String("uid", uid))

	created, err := s.repo.GetProject(ctx, uid)
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("project:%s", uid)
	if err := s.cache.Set(cacheKey, created, time.Hour); err != nil {
		s.log.Warn("failed to cache project", slog.String("key", cacheKey), slog.Any("err", err))
	}

	return created, nil
}

// Get возвращает проект по UID, используя кеш или репозиторий.
func (s *ProjectService) Get(ctx context.Context, projectUID string) (*models.Project, error) {
	var result *models.Project
	cacheKey := fmt.Sprintf("project:%s", projectUID)
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		s.log.Warn("failed to read from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	if found {
		return result, nil
	}
	result, err = s.repo.GetProject(ctx, projectUID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
		s.log.Warn("failed to add to cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return result, nil
}

// List возвращает все проекты в порядке создания.
func (s *ProjectService) List(ctx context.Context) ([]*models.Project, error) {
	return s.repo.ListProjects(ctx)
}

// AddComment добавляет комментарий к проекту и инвалидирует его кеш.
func (s *ProjectService) AddComment(ctx context.Context, projectUID, authorUID, text string) (*models.Comment, error) {
	comment, err := s.repo.AddComment(ctx, projectUID, authorUID, text)
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("project:%s", projectUID)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return comment, nil
}

// Search ищет пользователей по имени и проекты по названию независимо друг от друга.
// Обе коллекции возвращаются всегда, даже если одна из них пуста.
func (s *ProjectService) Search(ctx context.Context, q string) (*models.SearchResult, error) {
	users, err := s.users.SearchUsersByName(ctx, q)
	if err != nil {
		return nil, err
	}
	projects, err := s.repo.SearchProjectsByTitle(ctx, q)
	if err != nil {
		return nil, err
	}
	return &models.SearchResult{
		Users:    users,
		Projects: projects,
	}, nil
}
