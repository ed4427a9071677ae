// Package services содержит бизнес-логику для работы с пользователями,
// аутентификацией и проектами.
package services

import (
	"context"
	"errors"

	"github.com/magabrotheeeer/devconnect/internal/lib/jwt"
	"github.com/magabrotheeeer/devconnect/internal/lib/password"
	"github.com/magabrotheeeer/devconnect/internal/models"
	"github.com/magabrotheeeer/devconnect/internal/storage"
)

// ErrInvalidCredentials возвращается при неверной паре email/пароль.
// Текст ошибки одинаков для неизвестного email и неверного пароля.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает его UID.
	CreateUser(ctx context.Context, user models.User) (string, error)

	// GetUserByEmail возвращает пользователя с хэшем пароля или ошибку, если не найден.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUser возвращает пользователя по UID без хэша пароля.
	GetUser(ctx context.Context, userUID string) (*models.User, error)

	// UpdateProfile обновляет имя и bio пользователя.
	UpdateProfile(ctx context.Context, userUID, name, bio string) (*models.User, error)
}

// AuthService отвечает за регистрацию, авторизацию и разрешение JWT в пользователя.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Register создает нового пользователя с хэшированием пароля и возвращает JWT.
func (s *AuthService) Register(ctx context.Context, name, email, rawPassword string) (string, error) {
	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return "", err
	}
	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashed,
	}
	uid, err := s.users.CreateUser(ctx, user)
	if err != nil {
		return "", err
	}
	return s.jwtMaker.GenerateToken(uid)
}

// Login проверяет пароль пользователя и генерирует JWT.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (string, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.jwtMaker.GenerateToken(user.UID)
}

// Authenticate проверяет JWT и возвращает пользователя, которому он выдан.
// Хэш пароля в возвращаемой записи отсутствует.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return nil, err
	}
	return s.users.GetUser(ctx, claims.UserUID)
}

// UpdateProfile обновляет имя и bio текущего пользователя.
func (s *AuthService) UpdateProfile(ctx context.Context, userUID, name, bio string) (*models.User, error) {
	return s.users.UpdateProfile(ctx, userUID, name, bio)
}
