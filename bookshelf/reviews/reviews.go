package reviews

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"codeberg.org/bookshelf/server/internal/storage"
	"github.com/jackc/pgx/v5"
)

// default byline for new reviews
const DefaultAuthorName = "Zeeds"

var (
	ErrReviewNotFound = errors.New("review not found")
	ErrEmptySlug      = errors.New("slug must contain at least one letter or number")
)

func NewRepository(db storage.DB) *Repository {
	return &Repository{db: db}
}

func scanReview(row pgx.Row) (*Review, error) {
	var r Review

	err := row.Scan(
		&r.ID,
		&r.Title,
		&r.Slug,
		&r.BookTitle,
		&r.BookAuthor,
		&r.AuthorName,
		&r.CoverImage,
		&r.Content,
		&r.Rating,
		&r.CategoryID,
		&r.CategoryName,
		&r.IsPublished,
		&r.PublishedAt,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &r, nil
}

func collectReviews(rows pgx.Rows) ([]Review, error) {
	defer rows.Close()

	reviews := []Review{}
	for rows.Next() {
		r, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, *r)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return reviews, nil
}

// fills defaults and derives the slug from the title when none is given
func normalize(in ReviewInput) (ReviewInput, error) {
	in.Title = strings.TrimSpace(in.Title)

	in.Slug = GenerateSlug(in.Slug)
	if in.Slug == "" {
		in.Slug = GenerateSlug(in.Title)
	}

	if in.Slug == "" {
		return in, ErrEmptySlug
	}

	if strings.TrimSpace(in.AuthorName) == "" {
		in.AuthorName = DefaultAuthorName
	}

	if in.CoverImage != nil && strings.TrimSpace(*in.CoverImage) == "" {
		in.CoverImage = nil
	}

	if in.CategoryID != nil && *in.CategoryID == "" {
		in.CategoryID = nil
	}

	return in, nil
}

// lists published reviews, newest first
func (r *Repository) ListPublished(ctx context.Context, filter ListFilter) ([]Review, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, queryCountPublished, filter.CategoryID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count reviews: %w", err)
	}

	rows, err := r.db.Query(ctx, queryListPublished, filter.CategoryID, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list reviews: %w", err)
	}

	reviews, err := collectReviews(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan reviews: %w", err)
	}

	return reviews, total, nil
}

// returns a published review by slug
func (r *Repository) GetPublishedBySlug(ctx context.Context, slug string) (*Review, error) {
	review, err := scanReview(r.db.QueryRow(ctx, queryGetPublishedBySlug, slug))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrReviewNotFound
	}

	return review, err
}

// lists every review for the admin dashboard, newest first
func (r *Repository) ListAll(ctx context.Context, limit, offset int) ([]Review, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, queryCountAll).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count reviews: %w", err)
	}

	rows, err := r.db.Query(ctx, queryListAll, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list reviews: %w", err)
	}

	reviews, err := collectReviews(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan reviews: %w", err)
	}

	return reviews, total, nil
}

// returns any review by ID
func (r *Repository) Get(ctx context.Context, id string) (*Review, error) {
	review, err := scanReview(r.db.QueryRow(ctx, queryGetByID, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrReviewNotFound
	}

	return review, err
}

func (r *Repository) Create(ctx context.Context, in ReviewInput) (*Review, error) {
	in, err := normalize(in)
	if err != nil {
		return nil, err
	}

	return scanReview(r.db.QueryRow(
		ctx,
		queryCreate,
		in.Title,
		in.Slug,
		in.BookTitle,
		in.BookAuthor,
		in.AuthorName,
		in.CoverImage,
		in.Content,
		in.Rating,
		in.CategoryID,
		in.IsPublished,
	))
}

func (r *Repository) Update(ctx context.Context, id string, in ReviewInput) (*Review, error) {
	in, err := normalize(in)
	if err != nil {
		return nil, err
	}

	review, err := scanReview(r.db.QueryRow(
		ctx,
		queryUpdate,
		in.Title,
		in.Slug,
		in.BookTitle,
		in.BookAuthor,
		in.AuthorName,
		in.CoverImage,
		in.Content,
		in.Rating,
		in.CategoryID,
		in.IsPublished,
		id,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrReviewNotFound
	}

	return review, err
}

// sets the published flag. publishing stamps published_at unless the review
// was already published; unpublishing clears it.
func (r *Repository) SetPublished(ctx context.Context, id string, published bool) (*Review, error) {
	review, err := scanReview(r.db.QueryRow(ctx, querySetPublished, published, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrReviewNotFound
	}

	return review, err
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, queryDelete, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return ErrReviewNotFound
	}

	return nil
}
