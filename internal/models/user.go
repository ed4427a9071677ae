// Package models содержит доменные структуры пользователя, проекта и комментария,
// а также вспомогательные типы для приёма данных из JSON-запросов.
package models

import "time"

// User представляет зарегистрированного пользователя системы.
type User struct {
	UID          string    `json:"id"`        // Уникальный идентификатор пользователя
	Name         string    `json:"name"`      // Отображаемое имя пользователя
	Email        string    `json:"email"`     // Электронная почта (уникальная)
	PasswordHash string    `json:"-"`         // Хэш пароля, в ответы не сериализуется
	Bio          string    `json:"bio"`       // Краткая информация о себе
	CreatedAt    time.Time `json:"createdAt"` // Дата регистрации
}
