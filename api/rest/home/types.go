package home

import "codeberg.org/bookshelf/server/bookshelf/reviews"

const latestCount = 6

// HomeResponse carries everything the landing page renders
type HomeResponse struct {
	Settings map[string]string `json:"settings"`
	Latest   []reviews.Review  `json:"latest"`
}
