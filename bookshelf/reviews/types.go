package reviews

import (
	"time"

	"codeberg.org/bookshelf/server/internal/storage"
)

type Repository struct {
	db storage.DB
}

type Review struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Slug         string     `json:"slug"`
	BookTitle    string     `json:"book_title"`
	BookAuthor   string     `json:"book_author"`
	AuthorName   string     `json:"author_name"`
	CoverImage   *string    `json:"cover_image"`
	Content      string     `json:"content"`
	Rating       *int       `json:"rating"`
	CategoryID   *string    `json:"category_id"`
	CategoryName *string    `json:"category_name,omitempty"`
	IsPublished  bool       `json:"is_published"`
	PublishedAt  *time.Time `json:"published_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// body of create and update requests; updates replace every field
type ReviewInput struct {
	Title       string  `json:"title" binding:"required,max=200"`
	Slug        string  `json:"slug" binding:"omitempty,max=200"`
	BookTitle   string  `json:"book_title" binding:"required,max=300"`
	BookAuthor  string  `json:"book_author" binding:"required,max=200"`
	AuthorName  string  `json:"author_name" binding:"omitempty,max=100"`
	CoverImage  *string `json:"cover_image" binding:"omitempty,max=2048"`
	Content     string  `json:"content" binding:"required,max=200000"`
	Rating      *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	CategoryID  *string `json:"category_id" binding:"omitempty,uuid"`
	IsPublished bool    `json:"is_published"`
}

type ListFilter struct {
	CategoryID string // empty means every category
	Limit      int
	Offset     int
}
