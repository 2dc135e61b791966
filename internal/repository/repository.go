// Package repository holds the SQL behind the service layer.
//
// Repositories return driver errors wrapped with context; missing rows are
// reported with sqlerr.NotFound so the HTTP error funnel can turn them into
// a 404 naming the entity.
package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of pgxpool.Pool (and pgx.Conn, pgx.Tx) the repositories
// use.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
