package categories

import "codeberg.org/bookshelf/server/bookshelf/categories"

type CategoriesResponse struct {
	Categories []categories.Category `json:"categories"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
