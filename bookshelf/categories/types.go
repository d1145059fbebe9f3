package categories

import (
	"time"

	"codeberg.org/bookshelf/server/internal/storage"
)

type Repository struct {
	db storage.DB
}

type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}

type CategoryInput struct {
	Name string `json:"name" binding:"required,max=100"`
	Slug string `json:"slug" binding:"omitempty,max=100"`
}
