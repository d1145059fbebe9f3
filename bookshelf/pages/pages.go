package pages

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"codeberg.org/bookshelf/server/internal/storage"
	"github.com/jackc/pgx/v5"
)

var (
	ErrPageNotFound = errors.New("page not found")
)

func NewRepository(db storage.DB) *Repository {
	return &Repository{db: db}
}

// empty optional text is stored as NULL
func nullable(s *string) *string {
	if s == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}

func scanAbout(row pgx.Row) (*AboutPage, error) {
	var p AboutPage
	if err := row.Scan(&p.ID, &p.Title, &p.Content, &p.ProfileImage, &p.UpdatedAt); err != nil {
		return nil, err
	}

	return &p, nil
}

func scanZeedits(row pgx.Row) (*ZeeditsPage, error) {
	var p ZeeditsPage
	if err := row.Scan(&p.ID, &p.HeroTitle, &p.HeroSubtitle, &p.ContactEmail, &p.IntroText, &p.UpdatedAt); err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *Repository) GetAbout(ctx context.Context) (*AboutPage, error) {
	p, err := scanAbout(r.db.QueryRow(ctx, queryGetAbout))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrPageNotFound
	}

	return p, err
}

// updates the about page, creating it on first save
func (r *Repository) UpdateAbout(ctx context.Context, in AboutInput) (*AboutPage, error) {
	title := strings.TrimSpace(in.Title)
	image := nullable(in.ProfileImage)

	var page *AboutPage
	err := storage.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		p, err := scanAbout(tx.QueryRow(ctx, queryUpdateAbout, title, in.Content, image))
		if errors.Is(err, pgx.ErrNoRows) {
			p, err = scanAbout(tx.QueryRow(ctx, queryInsertAbout, title, in.Content, image))
		}

		page = p
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save about page: %w", err)
	}

	return page, nil
}

func (r *Repository) GetZeedits(ctx context.Context) (*ZeeditsPage, error) {
	p, err := scanZeedits(r.db.QueryRow(ctx, queryGetZeedits))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrPageNotFound
	}

	return p, err
}

// updates the services page, creating it on first save
func (r *Repository) UpdateZeedits(ctx context.Context, in ZeeditsInput) (*ZeeditsPage, error) {
	args := []any{
		strings.TrimSpace(in.HeroTitle),
		nullable(in.HeroSubtitle),
		strings.TrimSpace(in.ContactEmail),
		nullable(in.IntroText),
	}

	var page *ZeeditsPage
	err := storage.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		p, err := scanZeedits(tx.QueryRow(ctx, queryUpdateZeedits, args...))
		if errors.Is(err, pgx.ErrNoRows) {
			p, err = scanZeedits(tx.QueryRow(ctx, queryInsertZeedits, args...))
		}

		page = p
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save zeedits page: %w", err)
	}

	return page, nil
}
