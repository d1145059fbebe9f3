package users

const (
	queryFindByEmail = `
		SELECT u.id, u.email, u.password_hash, u.email_confirmed_at,
			EXISTS (SELECT 1 FROM user_roles r WHERE r.user_id = u.id AND r.role = 'admin'),
			u.created_at
		FROM users u
		WHERE lower(u.email) = lower($1)
	`

	queryFindByID = `
		SELECT u.id, u.email, u.password_hash, u.email_confirmed_at,
			EXISTS (SELECT 1 FROM user_roles r WHERE r.user_id = u.id AND r.role = 'admin'),
			u.created_at
		FROM users u
		WHERE u.id = $1
	`

	queryCreate = `
		INSERT INTO users (email, password_hash, email_confirmed_at)
		VALUES ($1, $2, NOW())
		RETURNING id, email, password_hash, email_confirmed_at, false, created_at
	`

	queryGrantAdmin = `
		INSERT INTO user_roles (user_id, role)
		VALUES ($1, 'admin')
		ON CONFLICT (user_id, role) DO NOTHING
	`
)
