// Package session keeps the authenticated identity in the local database so
// that it survives restarts of the client.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/travelplanner/internal/client/models"
	"github.com/dmitrijs2005/travelplanner/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/travelplanner/internal/client/validate"
	"github.com/dmitrijs2005/travelplanner/internal/logging"
)

// Key is the metadata slot holding the identity record.
const Key = "session.identity"

var ErrSessionCorrupt = errors.New("stored session is corrupt")

// record is the durable form of an identity.
type record struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"isAdmin"`
}

// Store reads and writes the identity slot. A nil identity means nobody is
// logged in.
type Store struct {
	repo metadata.Repository
	log  logging.Logger
}

func NewStore(repo metadata.Repository, log logging.Logger) *Store {
	return &Store{repo: repo, log: log}
}

// Current returns the stored identity, or nil if there is none. A record
// that does not validate is removed and reported as absent.
func (s *Store) Current(ctx context.Context) (*models.Identity, error) {
	raw, err := s.repo.Get(ctx, Key)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if raw == nil {
		return nil, nil
	}

	id, err := validate.Identity(raw)
	if err != nil {
		s.log.Warn(ctx, "discarding stored session", "err", fmt.Errorf("%w: %w", ErrSessionCorrupt, err))
		if err := s.repo.Delete(ctx, Key); err != nil {
			return nil, fmt.Errorf("failed to remove corrupt session: %w", err)
		}
		return nil, nil
	}
	return &id, nil
}

// Establish replaces whatever is stored with id.
func (s *Store) Establish(ctx context.Context, id models.Identity) error {
	b, err := json.Marshal(record{
		ID:       id.ID,
		Username: id.Username,
		Email:    id.Email,
		IsAdmin:  id.IsAdmin(),
	})
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.repo.Set(ctx, Key, b); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	s.log.Info(ctx, "session established", "username", id.Username)
	return nil
}

// Clear removes the stored identity. Clearing an empty store is not an error.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.repo.Delete(ctx, Key); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
