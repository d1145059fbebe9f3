package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"codeberg.org/bookshelf/server/internal/storage"
	"github.com/jackc/pgx/v5"
)

var (
	ErrServiceNotFound  = errors.New("service not found")
	ErrInvalidDirection = errors.New("direction must be up or down")
)

func NewRepository(db storage.DB) *Repository {
	return &Repository{db: db}
}

func scanService(row pgx.Row) (*Service, error) {
	var s Service
	if err := row.Scan(&s.ID, &s.Title, &s.Description, &s.ImageURL, &s.DisplayOrder, &s.CreatedAt); err != nil {
		return nil, err
	}

	return &s, nil
}

func collect(rows pgx.Rows) ([]Service, error) {
	defer rows.Close()

	services := []Service{}
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		services = append(services, *s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return services, nil
}

func imageURL(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}

	trimmed := strings.TrimSpace(*s)
	return &trimmed
}

// lists services in display order
func (r *Repository) List(ctx context.Context) ([]Service, error) {
	rows, err := r.db.Query(ctx, queryList)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}

	return collect(rows)
}

// appends a service after the existing ones
func (r *Repository) Create(ctx context.Context, in ServiceInput) (*Service, error) {
	return scanService(r.db.QueryRow(ctx, queryCreate,
		strings.TrimSpace(in.Title), in.Description, imageURL(in.ImageURL)))
}

func (r *Repository) Update(ctx context.Context, id string, in ServiceInput) (*Service, error) {
	s, err := scanService(r.db.QueryRow(ctx, queryUpdate,
		strings.TrimSpace(in.Title), in.Description, imageURL(in.ImageURL), id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrServiceNotFound
	}

	return s, err
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, queryDelete, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return ErrServiceNotFound
	}

	return nil
}

// finds the positions of the service and the one it swaps with.
// ok is false when the service sits at the end it is moving towards.
func neighbor(list []Service, id string, dir Direction) (from, to int, found, ok bool) {
	for i := range list {
		if list[i].ID != id {
			continue
		}

		j := i - 1
		if dir == Down {
			j = i + 1
		}

		if j < 0 || j >= len(list) {
			return i, i, true, false
		}

		return i, j, true, true
	}

	return 0, 0, false, false
}

// swaps the display order of a service with its neighbour in one transaction
// and returns the resulting order. moving past either end changes nothing.
func (r *Repository) Move(ctx context.Context, id string, dir Direction) ([]Service, error) {
	if !dir.Valid() {
		return nil, ErrInvalidDirection
	}

	var result []Service
	err := storage.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, queryListForUpdate)
		if err != nil {
			return err
		}

		list, err := collect(rows)
		if err != nil {
			return err
		}

		from, to, found, ok := neighbor(list, id, dir)
		if !found {
			return ErrServiceNotFound
		}

		if ok {
			a, b := list[from], list[to]
			if _, err := tx.Exec(ctx, querySetOrder, b.DisplayOrder, a.ID); err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, querySetOrder, a.DisplayOrder, b.ID); err != nil {
				return err
			}

			list[from].DisplayOrder, list[to].DisplayOrder = b.DisplayOrder, a.DisplayOrder
			list[from], list[to] = list[to], list[from]
		}

		result = list
		return nil
	})
	if errors.Is(err, ErrServiceNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to move service: %w", err)
	}

	return result, nil
}
