package comments

import (
	"context"
	"errors"
	"fmt"

	"codeberg.org/bookshelf/server/internal/storage"
	"github.com/jackc/pgx/v5"
)

var (
	ErrCommentNotFound = errors.New("comment not found")
)

func NewRepository(db storage.DB) *Repository {
	return &Repository{db: db}
}

func scanComment(row pgx.Row) (*Comment, error) {
	var c Comment

	err := row.Scan(
		&c.ID,
		&c.ReviewID,
		&c.ReviewTitle,
		&c.AuthorName,
		&c.AuthorEmail,
		&c.Content,
		&c.IsApproved,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// lists the approved comments of a review, newest first
func (r *Repository) ListApproved(ctx context.Context, reviewID string) ([]PublicComment, error) {
	rows, err := r.db.Query(ctx, queryListApproved, reviewID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	comments := []PublicComment{}
	for rows.Next() {
		var c PublicComment
		if err := rows.Scan(&c.ID, &c.ReviewID, &c.AuthorName, &c.Content, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return comments, nil
}

// lists every comment with the title of its review, newest first
func (r *Repository) ListAll(ctx context.Context, limit, offset int) ([]Comment, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, queryCountAll).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count comments: %w", err)
	}

	rows, err := r.db.Query(ctx, queryListAll, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	comments := []Comment{}
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, 0, err
		}
		comments = append(comments, *c)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return comments, total, nil
}

// validates and stores a comment; it stays hidden until approved
func (r *Repository) Create(ctx context.Context, reviewID string, req CreateCommentRequest) (*Comment, error) {
	req, err := Validate(req)
	if err != nil {
		return nil, err
	}

	var email *string
	if req.AuthorEmail != "" {
		email = &req.AuthorEmail
	}

	return scanComment(r.db.QueryRow(ctx, queryCreate, reviewID, req.AuthorName, email, req.Content))
}

func (r *Repository) SetApproved(ctx context.Context, id string, approved bool) (*Comment, error) {
	c, err := scanComment(r.db.QueryRow(ctx, querySetApproved, approved, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrCommentNotFound
	}

	return c, err
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, queryDelete, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return ErrCommentNotFound
	}

	return nil
}
