package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// the subset of *pgxpool.Pool repositories use
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// opens and pings a connection pool sized for a hosted Postgres pooler
func NewPool(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	// hosted poolers allow few connections, keep ours small
	poolConfig.MaxConns = 5
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	// pgBouncer in transaction mode doesn't support prepared statements
	poolConfig.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}

// read-only dashboard queries spanning several tables
type Client struct {
	db DB
}

func NewClient(db DB) *Client {
	return &Client{db: db}
}

// row counts shown on the admin dashboard
type Stats struct {
	Reviews    int `json:"reviews"`
	Comments   int `json:"comments"`
	Categories int `json:"categories"`
}

// counts reviews, comments and categories
func (c *Client) Stats(ctx context.Context) (*Stats, error) {
	var s Stats

	if err := c.db.QueryRow(ctx, queryStats).Scan(&s.Reviews, &s.Comments, &s.Categories); err != nil {
		return nil, fmt.Errorf("failed to count rows: %w", err)
	}

	return &s, nil
}

// runs fn in a transaction, committing when fn returns nil
func WithTx(ctx context.Context, db DB, fn func(pgx.Tx) error) error {
	return pgx.BeginFunc(ctx, db, fn)
}
