package users

import (
	"time"

	"codeberg.org/bookshelf/server/internal/storage"
)

// handles account database operations
type Repository struct {
	db            storage.DB
	signupEnabled bool
}

// an account that can sign in
type User struct {
	ID               string     `json:"id"`
	Email            string     `json:"email"`
	PasswordHash     string     `json:"-"`
	EmailConfirmedAt *time.Time `json:"email_confirmed_at"`
	IsAdmin          bool       `json:"is_admin"`
	CreatedAt        time.Time  `json:"created_at"`
}

type Credentials struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
