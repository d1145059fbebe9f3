package comments

import (
	"time"

	"codeberg.org/bookshelf/server/internal/storage"
)

type Repository struct {
	db storage.DB
}

// a comment as moderators see it
type Comment struct {
	ID          string    `json:"id"`
	ReviewID    string    `json:"review_id"`
	ReviewTitle *string   `json:"review_title,omitempty"`
	AuthorName  string    `json:"author_name"`
	AuthorEmail *string   `json:"author_email"`
	Content     string    `json:"content"`
	IsApproved  bool      `json:"is_approved"`
	CreatedAt   time.Time `json:"created_at"`
}

// an approved comment as readers see it, without the e-mail address
type PublicComment struct {
	ID         string    `json:"id"`
	ReviewID   string    `json:"review_id"`
	AuthorName string    `json:"author_name"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

type CreateCommentRequest struct {
	AuthorName  string `json:"author_name"`
	AuthorEmail string `json:"author_email"`
	Content     string `json:"content"`
}

// a rejected comment field; Message is safe to show to the commenter
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
