package storage

const (
	queryStats = `
		SELECT
			(SELECT COUNT(*) FROM reviews),
			(SELECT COUNT(*) FROM comments),
			(SELECT COUNT(*) FROM categories)
	`
)
