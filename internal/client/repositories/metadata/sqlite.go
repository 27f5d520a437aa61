package metadata

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrEmptyKey is returned for operations on the empty key.
var ErrEmptyKey = errors.New("metadata key must not be empty")

const (
	selectSlot = `SELECT value FROM metadata WHERE key = ?`
	upsertSlot = `INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	deleteSlot = `DELETE FROM metadata WHERE key = ?`
)

// SQLiteRepository keeps each slot as one row of the metadata table.
//
// A slot holding an empty value is still present: Get returns a non-nil
// empty slice for it and nil only when the row does not exist, so callers
// can tell "never written" from "written but blank".
type SQLiteRepository struct {
	db Querier
}

func NewSQLiteRepository(db Querier) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	var value []byte
	switch err := r.db.QueryRowContext(ctx, selectSlot, key).Scan(&value); {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("read slot %q: %w", key, err)
	}
	if value == nil {
		value = []byte{}
	}
	return value, nil
}

// Set replaces the slot's value. A nil value is stored as empty.
func (r *SQLiteRepository) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return ErrEmptyKey
	}
	if value == nil {
		value = []byte{}
	}
	if _, err := r.db.ExecContext(ctx, upsertSlot, key, value); err != nil {
		return fmt.Errorf("write slot %q: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if _, err := r.db.ExecContext(ctx, deleteSlot, key); err != nil {
		return fmt.Errorf("delete slot %q: %w", key, err)
	}
	return nil
}
