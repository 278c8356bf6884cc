package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/vetcarehq/vetclinic-api/internal/model"
	"github.com/vetcarehq/vetclinic-api/internal/repository"
)

type HealthPlanRepo struct {
	mu         sync.RWMutex
	nextID     int64
	byID       map[int64]model.HealthPlan
	treatments *TreatmentRepo
}

func NewHealthPlanRepo(treatments *TreatmentRepo) *HealthPlanRepo {
	return &HealthPlanRepo{
		byID:       make(map[int64]model.HealthPlan),
		treatments: treatments,
	}
}

func (r *HealthPlanRepo) enrich(ctx context.Context, p *model.HealthPlan) {
	if t, err := r.treatments.Get(ctx, p.OwnerID, p.TreatmentID); err == nil {
		p.TreatmentName = t.Name
	}
}

func (r *HealthPlanRepo) List(ctx context.Context, ownerID int64, filter *model.HealthPlanFilter) ([]*model.HealthPlan, error) {
	r.mu.RLock()
	out := make([]*model.HealthPlan, 0)
	for _, p := range r.byID {
		if p.OwnerID != ownerID {
			continue
		}
		if filter != nil {
			if filter.Search != "" && !containsFold(filter.Search, p.Name, p.Description) {
				continue
			}
			if filter.ActiveOnly && !p.IsActive {
				continue
			}
			if filter.TreatmentID > 0 && p.TreatmentID != filter.TreatmentID {
				continue
			}
			if filter.DateFrom != nil && p.StartDate.Before(*filter.DateFrom) {
				continue
			}
			if filter.DateTo != nil && p.StartDate.After(*filter.DateTo) {
				continue
			}
		}
		p := p
		out = append(out, &p)
	}
	r.mu.RUnlock()

	for _, p := range out {
		r.enrich(ctx, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *HealthPlanRepo) Get(ctx context.Context, ownerID, id int64) (*model.HealthPlan, error) {
	r.mu.RLock()
	p, ok := r.byID[id]
	r.mu.RUnlock()

	if !ok || p.OwnerID != ownerID {
		return nil, repository.ErrNotFound
	}
	r.enrich(ctx, &p)
	return &p, nil
}

func (r *HealthPlanRepo) Create(ctx context.Context, plan *model.HealthPlan) error {
	r.mu.Lock()
	r.nextID++
	plan.ID = r.nextID
	r.byID[plan.ID] = *plan
	r.mu.Unlock()
	return nil
}

func (r *HealthPlanRepo) Update(ctx context.Context, plan *model.HealthPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.byID[plan.ID]
	if !ok || existing.OwnerID != plan.OwnerID {
		return repository.ErrNotFound
	}
	r.byID[plan.ID] = *plan
	return nil
}

func (r *HealthPlanRepo) Delete(ctx context.Context, ownerID, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byID[id]
	if !ok || p.OwnerID != ownerID {
		return repository.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *HealthPlanRepo) CountByTreatment(ctx context.Context, ownerID, treatmentID int64) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, p := range r.byID {
		if p.OwnerID == ownerID && p.TreatmentID == treatmentID {
			count++
		}
	}
	return count, nil
}
