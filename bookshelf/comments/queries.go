package comments

const (
	queryListApproved = `
		SELECT id, review_id, author_name, content, created_at
		FROM comments
		WHERE review_id = $1 AND is_approved = true
		ORDER BY created_at DESC
	`

	queryListAll = `
		SELECT c.id, c.review_id, r.title, c.author_name, c.author_email, c.content, c.is_approved, c.created_at
		FROM comments c
		LEFT JOIN reviews r ON r.id = c.review_id
		ORDER BY c.created_at DESC
		LIMIT $1 OFFSET $2
	`

	queryCountAll = `
		SELECT COUNT(*) FROM comments
	`

	queryCreate = `
		INSERT INTO comments (review_id, author_name, author_email, content)
		VALUES ($1, $2, $3, $4)
		RETURNING id, review_id, NULL::text, author_name, author_email, content, is_approved, created_at
	`

	querySetApproved = `
		UPDATE comments
		SET is_approved = $1
		WHERE id = $2
		RETURNING id, review_id, NULL::text, author_name, author_email, content, is_approved, created_at
	`

	queryDelete = `
		DELETE FROM comments
		WHERE id = $1
	`
)
