package settings

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"codeberg.org/bookshelf/server/internal/storage"
	"github.com/jackc/pgx/v5"
)

const (
	KeySiteName        = "site_name"
	KeySiteTagline     = "site_tagline"
	KeySiteDescription = "site_description"
)

// the keys the admin form edits
var KnownKeys = []string{KeySiteName, KeySiteTagline, KeySiteDescription}

var (
	ErrUnknownKey = errors.New("unknown setting")
	ErrNoSettings = errors.New("no settings given")
)

const (
	queryList = `
		SELECT key, value
		FROM site_settings
	`

	queryUpsert = `
		INSERT INTO site_settings (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`
)

type Repository struct {
	db storage.DB
}

func NewRepository(db storage.DB) *Repository {
	return &Repository{db: db}
}

func isKnown(key string) bool {
	for _, k := range KnownKeys {
		if k == key {
			return true
		}
	}

	return false
}

// returns every known key, empty when the row is missing or NULL.
// rows with other keys are ignored.
func (r *Repository) Get(ctx context.Context) (map[string]string, error) {
	settings := make(map[string]string, len(KnownKeys))
	for _, k := range KnownKeys {
		settings[k] = ""
	}

	rows, err := r.db.Query(ctx, queryList)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var value *string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}

		if isKnown(key) && value != nil {
			settings[key] = *value
		}
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return settings, nil
}

// checks the keys before anything is written
func validate(values map[string]string) ([]string, error) {
	if len(values) == 0 {
		return nil, ErrNoSettings
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		if !isKnown(k) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownKey, k)
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys, nil
}

// writes all values in one transaction; either every key is saved or none
func (r *Repository) Update(ctx context.Context, values map[string]string) (map[string]string, error) {
	keys, err := validate(values)
	if err != nil {
		return nil, err
	}

	err = storage.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		for _, k := range keys {
			if _, err := tx.Exec(ctx, queryUpsert, k, values[k]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	return r.Get(ctx)
}
