package admin

import "codeberg.org/bookshelf/server/internal/storage"

// StatsResponse holds the dashboard counters
type StatsResponse struct {
	Stats *storage.Stats `json:"stats"`
}
