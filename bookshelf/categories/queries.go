package categories

const (
	queryList = `
		SELECT id, name, slug, created_at
		FROM categories
		ORDER BY name
	`

	queryCreate = `
		INSERT INTO categories (name, slug)
		VALUES ($1, $2)
		RETURNING id, name, slug, created_at
	`

	queryUpdate = `
		UPDATE categories
		SET name = $1, slug = $2
		WHERE id = $3
		RETURNING id, name, slug, created_at
	`

	queryDelete = `
		DELETE FROM categories
		WHERE id = $1
	`
)
