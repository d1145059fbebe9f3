package pages

import (
	"time"

	"codeberg.org/bookshelf/server/internal/storage"
)

type Repository struct {
	db storage.DB
}

type AboutPage struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	ProfileImage *string   `json:"profile_image"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type AboutInput struct {
	Title        string  `json:"title" binding:"required,max=200"`
	Content      string  `json:"content" binding:"required"`
	ProfileImage *string `json:"profile_image" binding:"omitempty,max=2048"`
}

// the services page hero and contact block
type ZeeditsPage struct {
	ID           string    `json:"id"`
	HeroTitle    string    `json:"hero_title"`
	HeroSubtitle *string   `json:"hero_subtitle"`
	ContactEmail string    `json:"contact_email"`
	IntroText    *string   `json:"intro_text"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ZeeditsInput struct {
	HeroTitle    string  `json:"hero_title" binding:"required,max=200"`
	HeroSubtitle *string `json:"hero_subtitle"`
	ContactEmail string  `json:"contact_email" binding:"required,email,max=255"`
	IntroText    *string `json:"intro_text"`
}
