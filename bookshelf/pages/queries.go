package pages

const (
	queryGetAbout = `
		SELECT id, title, content, profile_image, updated_at
		FROM about_page
		ORDER BY updated_at DESC
		LIMIT 1
	`

	queryUpdateAbout = `
		UPDATE about_page
		SET title = $1, content = $2, profile_image = $3, updated_at = NOW()
		WHERE id = (SELECT id FROM about_page ORDER BY updated_at DESC LIMIT 1)
		RETURNING id, title, content, profile_image, updated_at
	`

	queryInsertAbout = `
		INSERT INTO about_page (title, content, profile_image)
		VALUES ($1, $2, $3)
		RETURNING id, title, content, profile_image, updated_at
	`

	queryGetZeedits = `
		SELECT id, hero_title, hero_subtitle, contact_email, intro_text, updated_at
		FROM zeedits_page
		ORDER BY updated_at DESC
		LIMIT 1
	`

	queryUpdateZeedits = `
		UPDATE zeedits_page
		SET hero_title = $1, hero_subtitle = $2, contact_email = $3, intro_text = $4, updated_at = NOW()
		WHERE id = (SELECT id FROM zeedits_page ORDER BY updated_at DESC LIMIT 1)
		RETURNING id, hero_title, hero_subtitle, contact_email, intro_text, updated_at
	`

	queryInsertZeedits = `
		INSERT INTO zeedits_page (hero_title, hero_subtitle, contact_email, intro_text)
		VALUES ($1, $2, $3, $4)
		RETURNING id, hero_title, hero_subtitle, contact_email, intro_text, updated_at
	`
)
