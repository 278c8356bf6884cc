package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/vetcarehq/vetclinic-api/internal/model"
	"github.com/vetcarehq/vetclinic-api/internal/repository"
)

type TreatmentRepo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]model.Treatment
}

func NewTreatmentRepo() *TreatmentRepo {
	return &TreatmentRepo{byID: make(map[int64]model.Treatment)}
}

func (r *TreatmentRepo) List(ctx context.Context, ownerID int64, filter *model.TreatmentFilter) ([]*model.Treatment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.Treatment, 0)
	for _, t := range r.byID {
		if t.OwnerID != ownerID {
			continue
		}
		if filter != nil {
			if filter.Search != "" && !containsFold(filter.Search, t.Name, t.Description) {
				continue
			}
			if filter.ActiveOnly && !t.IsActive {
				continue
			}
			if filter.DateFrom != nil && t.CreatedDate.Before(*filter.DateFrom) {
				continue
			}
			if filter.DateTo != nil && t.CreatedDate.After(*filter.DateTo) {
				continue
			}
		}
		t := t
		out = append(out, &t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *TreatmentRepo) Get(ctx context.Context, ownerID, id int64) (*model.Treatment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.byID[id]
	if !ok || t.OwnerID != ownerID {
		return nil, repository.ErrNotFound
	}
	return &t, nil
}

func (r *TreatmentRepo) Create(ctx context.Context, treatment *model.Treatment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	treatment.ID = r.nextID
	r.byID[treatment.ID] = *treatment
	return nil
}

func (r *TreatmentRepo) Update(ctx context.Context, treatment *model.Treatment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.byID[treatment.ID]
	if !ok || existing.OwnerID != treatment.OwnerID {
		return repository.ErrNotFound
	}
	treatment.CreatedDate = existing.CreatedDate
	r.byID[treatment.ID] = *treatment
	return nil
}

func (r *TreatmentRepo) Delete(ctx context.Context, ownerID, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.byID[id]
	if !ok || t.OwnerID != ownerID {
		return repository.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
