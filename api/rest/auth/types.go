package auth

import "codeberg.org/bookshelf/server/bookshelf/users"

// AuthResponse returned after signing in or up
type AuthResponse struct {
	User  *users.User `json:"user"`
	Token string      `json:"token"`
}

// UserResponse wraps user data
type UserResponse struct {
	User *users.User `json:"user"`
}
