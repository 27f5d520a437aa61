// Package metadata is a small durable key/value store on top of the local
// SQLite database. The session slot lives here.
package metadata

import (
	"context"
	"database/sql"
)

// Repository stores opaque values by key. Get returns (nil, nil) for a
// missing key; Delete of a missing key is not an error.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Querier is the subset of database/sql the repository needs.
// Both *sql.DB and *sql.Tx satisfy it.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
