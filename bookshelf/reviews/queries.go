package reviews

const reviewColumns = `
	r.id, r.title, r.slug, r.book_title, r.book_author, r.author_name, r.cover_image,
	r.content, r.rating, r.category_id, c.name, r.is_published, r.published_at,
	r.created_at, r.updated_at
`

const (
	queryListPublished = `
		SELECT ` + reviewColumns + `
		FROM reviews r
		LEFT JOIN categories c ON c.id = r.category_id
		WHERE r.is_published = true
		  AND ($1 = '' OR r.category_id::text = $1)
		ORDER BY r.published_at DESC NULLS LAST
		LIMIT $2 OFFSET $3
	`

	queryCountPublished = `
		SELECT COUNT(*)
		FROM reviews r
		WHERE r.is_published = true
		  AND ($1 = '' OR r.category_id::text = $1)
	`

	queryGetPublishedBySlug = `
		SELECT ` + reviewColumns + `
		FROM reviews r
		LEFT JOIN categories c ON c.id = r.category_id
		WHERE r.slug = $1 AND r.is_published = true
	`

	queryListAll = `
		SELECT ` + reviewColumns + `
		FROM reviews r
		LEFT JOIN categories c ON c.id = r.category_id
		ORDER BY r.created_at DESC
		LIMIT $1 OFFSET $2
	`

	queryCountAll = `
		SELECT COUNT(*) FROM reviews
	`

	queryGetByID = `
		SELECT ` + reviewColumns + `
		FROM reviews r
		LEFT JOIN categories c ON c.id = r.category_id
		WHERE r.id = $1
	`

	queryCreate = `
		WITH r AS (
			INSERT INTO reviews (
				title, slug, book_title, book_author, author_name, cover_image,
				content, rating, category_id, is_published, published_at
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, CASE WHEN $10 THEN NOW() END)
			RETURNING *
		)
		SELECT ` + reviewColumns + `
		FROM r
		LEFT JOIN categories c ON c.id = r.category_id
	`

	// published_at is kept when an already published review is saved again
	queryUpdate = `
		WITH r AS (
			UPDATE reviews
			SET title = $1,
			    slug = $2,
			    book_title = $3,
			    book_author = $4,
			    author_name = $5,
			    cover_image = $6,
			    content = $7,
			    rating = $8,
			    category_id = $9,
			    published_at = CASE
			        WHEN $10 AND is_published THEN published_at
			        WHEN $10 THEN NOW()
			    END,
			    is_published = $10,
			    updated_at = NOW()
			WHERE id = $11
			RETURNING *
		)
		SELECT ` + reviewColumns + `
		FROM r
		LEFT JOIN categories c ON c.id = r.category_id
	`

	querySetPublished = `
		WITH r AS (
			UPDATE reviews
			SET published_at = CASE
			        WHEN $1 AND is_published THEN published_at
			        WHEN $1 THEN NOW()
			    END,
			    is_published = $1,
			    updated_at = NOW()
			WHERE id = $2
			RETURNING *
		)
		SELECT ` + reviewColumns + `
		FROM r
		LEFT JOIN categories c ON c.id = r.category_id
	`

	queryDelete = `
		DELETE FROM reviews
		WHERE id = $1
	`
)
