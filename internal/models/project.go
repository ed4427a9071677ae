package models

import "time"

// Project представляет опубликованный проект пользователя.
// Владелец (OwnerUID) неизменяем после создания, комментарии только добавляются.
type Project struct {
	UID         string    `json:"id"`          // Уникальный идентификатор проекта
	OwnerUID    string    `json:"userId"`      // Идентификатор владельца
	OwnerName   string    `json:"ownerName"`   // Имя владельца (заполняется при чтении)
	Title       string    `json:"title"`       // Название проекта
	Description string    `json:"description"` // Описание
	Link        string    `json:"link,omitempty"`
	Comments    []Comment `json:"comments"` // Комментарии в порядке добавления
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Comment представляет комментарий к проекту. Редактирование и удаление не предусмотрены.
type Comment struct {
	ID         int64     `json:"id"`
	ProjectUID string    `json:"projectId"`
	AuthorUID  string    `json:"userId"`
	AuthorName string    `json:"authorName,omitempty"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"createdAt"`
}

// DummyProject используется для приёма данных из JSON-запроса на создание проекта,
// прежде чем конвертировать их в Project.
type DummyProject struct {
	Title       string `json:"title" validate:"required,min=1,max=200"` // Название проекта
	Description string `json:"description" validate:"max=5000"`         // Описание
	Link        string `json:"link,omitempty" validate:"omitempty,url"` // Ссылка на проект
}

// SearchResult объединяет результаты поиска по пользователям и проектам.
// Обе коллекции возвращаются независимо от того, какая из них совпала.
type SearchResult struct {
	Users    []*User    `json:"users"`
	Projects []*Project `json:"projects"`
}
