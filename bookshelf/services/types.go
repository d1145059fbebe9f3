package services

import (
	"time"

	"codeberg.org/bookshelf/server/internal/storage"
)

type Repository struct {
	db storage.DB
}

type Service struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ImageURL     *string   `json:"image_url"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

type ServiceInput struct {
	Title       string  `json:"title" binding:"required,max=200"`
	Description string  `json:"description" binding:"required"`
	ImageURL    *string `json:"image_url" binding:"omitempty,max=2048"`
}

type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

func (d Direction) Valid() bool {
	return d == Up || d == Down
}
