// Package memory provides in-memory repository implementations with the
// same ownership and filtering semantics as the postgres ones. Used by
// tests and local development fixtures.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/vetcarehq/vetclinic-api/internal/model"
	"github.com/vetcarehq/vetclinic-api/internal/repository"
)

type SpeciesRepo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]model.Species
}

func NewSpeciesRepo() *SpeciesRepo {
	return &SpeciesRepo{byID: make(map[int64]model.Species)}
}

func (r *SpeciesRepo) List(ctx context.Context, ownerID int64, filter *model.SpeciesFilter) ([]*model.Species, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.Species, 0)
	for _, s := range r.byID {
		if s.OwnerID != ownerID {
			continue
		}
		if filter != nil {
			if filter.Search != "" && !containsFold(filter.Search, s.Name, s.Description) {
				continue
			}
			if filter.ActiveOnly && !s.IsActive {
				continue
			}
			if filter.DateFrom != nil && s.CreatedDate.Before(*filter.DateFrom) {
				continue
			}
			if filter.DateTo != nil && s.CreatedDate.After(*filter.DateTo) {
				continue
			}
		}
		s := s
		out = append(out, &s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *SpeciesRepo) Get(ctx context.Context, ownerID, id int64) (*model.Species, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok || s.OwnerID != ownerID {
		return nil, repository.ErrNotFound
	}
	return &s, nil
}

func (r *SpeciesRepo) Create(ctx context.Context, species *model.Species) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	species.ID = r.nextID
	r.byID[species.ID] = *species
	return nil
}

func (r *SpeciesRepo) Update(ctx context.Context, species *model.Species) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.byID[species.ID]
	if !ok || existing.OwnerID != species.OwnerID {
		return repository.ErrNotFound
	}
	species.CreatedDate = existing.CreatedDate
	r.byID[species.ID] = *species
	return nil
}

func (r *SpeciesRepo) Delete(ctx context.Context, ownerID, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.byID[id]
	if !ok || s.OwnerID != ownerID {
		return repository.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func containsFold(needle string, haystacks ...string) bool {
	needle = strings.ToLower(needle)
	for _, h := range haystacks {
		if strings.Contains(strings.ToLower(h), needle) {
			return true
		}
	}
	return false
}
