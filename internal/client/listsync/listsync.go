// Package listsync holds a remotely listed collection for one mounted view
// and keeps it consistent with the server.
//
// Loads are tagged with a generation and the query that started them; only
// the most recently started load may commit its result. Deletes are applied
// to the held collection only after the server confirms them.
package listsync

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/dmitrijs2005/travelplanner/internal/client/query"
	"github.com/dmitrijs2005/travelplanner/internal/client/validate"
	"github.com/dmitrijs2005/travelplanner/internal/logging"
)

var (
	ErrMalformedData = errors.New("malformed server data")

	// ErrStale is returned by Load when a newer load was started while it
	// was in flight. Its result was discarded.
	ErrStale = errors.New("stale response discarded")
)

type Status int

const (
	Idle Status = iota
	Loading
	Loaded
	Failed
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Lister fetches and validates the collection for q.
type Lister[T any] func(ctx context.Context, q query.Query) ([]T, error)

// Remover deletes one record on the server.
type Remover func(ctx context.Context, id string) error

// State is a point-in-time copy of the controller state.
type State[T any] struct {
	Status Status
	Items  []T
	// Err is the failure of the last committed load.
	Err error
	// ActionErr is the failure of the last delete, nil after a successful one.
	ActionErr error
}

// Controller is safe for concurrent use.
type Controller[T any] struct {
	list   Lister[T]
	remove Remover
	idOf   func(T) string
	log    logging.Logger

	mu    sync.Mutex
	gen   uint64
	key   string
	state State[T]
}

func New[T any](list Lister[T], remove Remover, idOf func(T) string, log logging.Logger) *Controller[T] {
	return &Controller[T]{list: list, remove: remove, idOf: idOf, log: log}
}

// Load fetches the collection for q and commits it unless a newer Load was
// started meanwhile. It returns the load failure, ErrStale for a discarded
// result, or nil.
func (c *Controller[T]) Load(ctx context.Context, q query.Query) error {
	c.mu.Lock()
	c.gen++
	gen, key := c.gen, q.Key()
	c.key = key
	c.state.Status = Loading
	c.state.Err = nil
	c.mu.Unlock()

	items, err := c.list(ctx, q.Clone())
	if err != nil && errors.Is(err, validate.ErrValidation) {
		c.log.Warn(ctx, "list response rejected", "query", key, "err", err)
		err = fmt.Errorf("%w: %w", ErrMalformedData, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen || key != c.key {
		c.log.Debug(ctx, "discarding stale list response", "query", key, "generation", gen)
		return ErrStale
	}
	if err != nil {
		c.state.Status = Failed
		c.state.Err = err
		return err
	}
	if items == nil {
		items = []T{}
	}
	c.state.Status = Loaded
	c.state.Items = items
	return nil
}

// Delete removes id on the server and, once confirmed, from the held
// collection. On failure the collection is left as it was. An id that is
// already absent locally after confirmation is ignored.
func (c *Controller[T]) Delete(ctx context.Context, id string) error {
	if err := c.remove(ctx, id); err != nil {
		c.mu.Lock()
		c.state.ActionErr = err
		c.mu.Unlock()
		c.log.Warn(ctx, "delete failed", "id", id, "err", err)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.ActionErr = nil
	c.state.Items = slices.DeleteFunc(slices.Clone(c.state.Items), func(it T) bool {
		return c.idOf(it) == id
	})
	return nil
}

// Snapshot returns a copy of the current state.
func (c *Controller[T]) Snapshot() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.state
	s.Items = slices.Clone(c.state.Items)
	return s
}
