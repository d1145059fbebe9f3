package categories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"codeberg.org/bookshelf/server/bookshelf/reviews"
	"codeberg.org/bookshelf/server/internal/storage"
	"github.com/jackc/pgx/v5"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrEmptySlug        = errors.New("slug must contain at least one letter or number")
)

func NewRepository(db storage.DB) *Repository {
	return &Repository{db: db}
}

func normalize(in CategoryInput) (CategoryInput, error) {
	in.Name = strings.TrimSpace(in.Name)

	in.Slug = reviews.GenerateSlug(in.Slug)
	if in.Slug == "" {
		in.Slug = reviews.GenerateSlug(in.Name)
	}

	if in.Slug == "" {
		return in, ErrEmptySlug
	}

	return in, nil
}

// lists categories alphabetically
func (r *Repository) List(ctx context.Context) ([]Category, error) {
	rows, err := r.db.Query(ctx, queryList)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := []Category{}
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}

func (r *Repository) Create(ctx context.Context, in CategoryInput) (*Category, error) {
	in, err := normalize(in)
	if err != nil {
		return nil, err
	}

	var c Category
	err = r.db.QueryRow(ctx, queryCreate, in.Name, in.Slug).Scan(&c.ID, &c.Name, &c.Slug, &c.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &c, nil
}

func (r *Repository) Update(ctx context.Context, id string, in CategoryInput) (*Category, error) {
	in, err := normalize(in)
	if err != nil {
		return nil, err
	}

	var c Category
	err = r.db.QueryRow(ctx, queryUpdate, in.Name, in.Slug, id).Scan(&c.ID, &c.Name, &c.Slug, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// deleting a category still referenced by reviews fails with a foreign key violation
func (r *Repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, queryDelete, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return ErrCategoryNotFound
	}

	return nil
}
