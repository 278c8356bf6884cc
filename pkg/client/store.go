package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"github.com/vetcarehq/vetclinic-api/internal/model"
)

// Store caches one entity collection client-side. Mutations go to the
// server first; the cache is updated only after the server accepts, so
// the store always mirrors committed state.
type Store[T any] struct {
	client *Client
	path   string
	idOf   func(*T) int64

	mu      sync.RWMutex
	items   []T
	loaded  bool
	loading bool
	lastErr error
}

func newStore[T any](c *Client, path string, idOf func(*T) int64) *Store[T] {
	return &Store[T]{client: c, path: path, idOf: idOf}
}

func (c *Client) Species() *Store[model.Species] {
	return newStore(c, "/api/v1/species", func(s *model.Species) int64 { return s.ID })
}

func (c *Client) Treatments() *Store[model.Treatment] {
	return newStore(c, "/api/v1/treatments", func(t *model.Treatment) int64 { return t.ID })
}

func (c *Client) Consultations() *Store[model.Consultation] {
	return newStore(c, "/api/v1/consultations", func(cn *model.Consultation) int64 { return cn.ID })
}

func (c *Client) HealthPlans() *Store[model.HealthPlan] {
	return newStore(c, "/api/v1/healthplans", func(p *model.HealthPlan) int64 { return p.ID })
}

// Items returns a copy of the cached collection.
func (s *Store[T]) Items() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store[T]) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

func (s *Store[T]) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the error of the most recent operation, nil after a success.
func (s *Store[T]) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// Load fetches the collection once; later calls are served from cache.
func (s *Store[T]) Load(ctx context.Context) error {
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()
	if loaded {
		return nil
	}
	return s.Refresh(ctx, nil)
}

// Refresh re-fetches the collection, optionally filtered server-side.
func (s *Store[T]) Refresh(ctx context.Context, query url.Values) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	var items []T
	err := s.client.do(ctx, http.MethodGet, s.path, query, nil, &items)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.lastErr = err
	if err != nil {
		return err
	}
	s.items = items
	s.loaded = true
	return nil
}

// Get returns the entity by id, from cache when present.
func (s *Store[T]) Get(ctx context.Context, id int64) (*T, error) {
	s.mu.RLock()
	for i := range s.items {
		if s.idOf(&s.items[i]) == id {
			item := s.items[i]
			s.mu.RUnlock()
			return &item, nil
		}
	}
	s.mu.RUnlock()
	return s.fetch(ctx, id)
}

func (s *Store[T]) fetch(ctx context.Context, id int64) (*T, error) {
	var item T
	err := s.client.do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", s.path, id), nil, nil, &item)
	s.setErr(err)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Create posts the request and appends the stored row to the cache.
func (s *Store[T]) Create(ctx context.Context, req any) (*T, error) {
	var created T
	err := s.client.do(ctx, http.MethodPost, s.path, nil, req, &created)
	s.setErr(err)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.loaded {
		s.items = append(s.items, created)
	}
	s.mu.Unlock()
	return &created, nil
}

// Update replaces the entity server-side, then re-fetches the row so the
// cache picks up server-computed fields.
func (s *Store[T]) Update(ctx context.Context, id int64, req any) (*T, error) {
	path := fmt.Sprintf("%s/%d", s.path, id)
	if err := s.client.do(ctx, http.MethodPut, path, nil, req, nil); err != nil {
		s.setErr(err)
		return nil, err
	}

	updated, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	for i := range s.items {
		if s.idOf(&s.items[i]) == id {
			s.items[i] = *updated
			break
		}
	}
	s.mu.Unlock()
	return updated, nil
}

// Delete removes the entity server-side and drops it from the cache.
func (s *Store[T]) Delete(ctx context.Context, id int64) error {
	err := s.client.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", s.path, id), nil, nil, nil)
	s.setErr(err)
	if err != nil {
		return err
	}

	s.mu.Lock()
	for i := range s.items {
		if s.idOf(&s.items[i]) == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	return nil
}

func (s *Store[T]) setErr(err error) {
	s.mu.Lock()
	s.lastErr = err
	s.mu.Unlock()
}
