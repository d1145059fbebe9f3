package services

const serviceColumns = `id, title, description, image_url, display_order, created_at`

const (
	queryList = `
		SELECT ` + serviceColumns + `
		FROM zeedits_services
		ORDER BY display_order, created_at
	`

	queryListForUpdate = `
		SELECT ` + serviceColumns + `
		FROM zeedits_services
		ORDER BY display_order, created_at
		FOR UPDATE
	`

	queryCreate = `
		INSERT INTO zeedits_services (title, description, image_url, display_order)
		VALUES ($1, $2, $3, (SELECT COUNT(*) + 1 FROM zeedits_services))
		RETURNING ` + serviceColumns

	queryUpdate = `
		UPDATE zeedits_services
		SET title = $1, description = $2, image_url = $3
		WHERE id = $4
		RETURNING ` + serviceColumns

	querySetOrder = `
		UPDATE zeedits_services
		SET display_order = $1
		WHERE id = $2
	`

	queryDelete = `
		DELETE FROM zeedits_services
		WHERE id = $1
	`
)
