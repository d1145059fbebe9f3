package pages

import (
	"codeberg.org/bookshelf/server/bookshelf/pages"
	"codeberg.org/bookshelf/server/bookshelf/services"
)

// the zeedits page; Page is null until an admin first saves it
type ZeeditsResponse struct {
	Page     *pages.ZeeditsPage `json:"page"`
	Services []services.Service `json:"services"`
}
