package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRow struct {
	values []int
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}

	for i, d := range dest {
		*(d.(*int)) = r.values[i]
	}

	return nil
}

type fakeDB struct {
	row fakeRow
}

func (f fakeDB) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (f fakeDB) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("not implemented")
}

func (f fakeDB) QueryRow(context.Context, string, ...any) pgx.Row {
	return f.row
}

func (f fakeDB) Begin(context.Context) (pgx.Tx, error) {
	return nil, errors.New("not implemented")
}

func TestStats(t *testing.T) {
	client := NewClient(fakeDB{row: fakeRow{values: []int{4, 9, 2}}})

	stats, err := client.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &Stats{Reviews: 4, Comments: 9, Categories: 2}, stats)
}

func TestStats_WrapsErrors(t *testing.T) {
	cause := &pgconn.PgError{Code: "42501", Message: "permission denied for table comments"}
	client := NewClient(fakeDB{row: fakeRow{err: cause}})

	_, err := client.Stats(context.Background())

	var pgErr *pgconn.PgError
	require.ErrorAs(t, err, &pgErr)
	assert.Equal(t, "42501", pgErr.Code)
}

func TestWithTx_BeginFailure(t *testing.T) {
	called := false
	err := WithTx(context.Background(), fakeDB{}, func(pgx.Tx) error {
		called = true
		return nil
	})

	assert.Error(t, err)
	assert.False(t, called)
}

func TestNewPool_RejectsBadConfig(t *testing.T) {
	_, err := NewPool(context.Background(), "postgres://%zz")
	assert.ErrorContains(t, err, "failed to parse database config")
}
