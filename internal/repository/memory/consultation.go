package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/vetcarehq/vetclinic-api/internal/model"
	"github.com/vetcarehq/vetclinic-api/internal/repository"
)

// ConsultationRepo mirrors the postgres implementation, including the
// eager-loaded species/treatment names on reads.
type ConsultationRepo struct {
	mu         sync.RWMutex
	nextID     int64
	byID       map[int64]model.Consultation
	species    *SpeciesRepo
	treatments *TreatmentRepo
}

func NewConsultationRepo(species *SpeciesRepo, treatments *TreatmentRepo) *ConsultationRepo {
	return &ConsultationRepo{
		byID:       make(map[int64]model.Consultation),
		species:    species,
		treatments: treatments,
	}
}

func (r *ConsultationRepo) enrich(ctx context.Context, c *model.Consultation) {
	if s, err := r.species.Get(ctx, c.OwnerID, c.SpeciesID); err == nil {
		c.SpeciesName = s.Name
	}
	if t, err := r.treatments.Get(ctx, c.OwnerID, c.TreatmentID); err == nil {
		c.TreatmentName = t.Name
	}
}

func (r *ConsultationRepo) List(ctx context.Context, ownerID int64, filter *model.ConsultationFilter) ([]*model.Consultation, error) {
	r.mu.RLock()
	out := make([]*model.Consultation, 0)
	for _, c := range r.byID {
		if c.OwnerID != ownerID {
			continue
		}
		if filter != nil {
			if filter.Search != "" && !containsFold(filter.Search, c.PetName, c.OwnerName, c.Description) {
				continue
			}
			if filter.SpeciesID > 0 && c.SpeciesID != filter.SpeciesID {
				continue
			}
			if filter.TreatmentID > 0 && c.TreatmentID != filter.TreatmentID {
				continue
			}
			if filter.DateFrom != nil && c.ConsultationDate.Before(*filter.DateFrom) {
				continue
			}
			if filter.DateTo != nil && c.ConsultationDate.After(*filter.DateTo) {
				continue
			}
		}
		c := c
		out = append(out, &c)
	}
	r.mu.RUnlock()

	for _, c := range out {
		r.enrich(ctx, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *ConsultationRepo) Get(ctx context.Context, ownerID, id int64) (*model.Consultation, error) {
	r.mu.RLock()
	c, ok := r.byID[id]
	r.mu.RUnlock()

	if !ok || c.OwnerID != ownerID {
		return nil, repository.ErrNotFound
	}
	r.enrich(ctx, &c)
	return &c, nil
}

func (r *ConsultationRepo) Create(ctx context.Context, consultation *model.Consultation) error {
	r.mu.Lock()
	r.nextID++
	consultation.ID = r.nextID
	r.byID[consultation.ID] = *consultation
	r.mu.Unlock()
	return nil
}

func (r *ConsultationRepo) Update(ctx context.Context, consultation *model.Consultation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.byID[consultation.ID]
	if !ok || existing.OwnerID != consultation.OwnerID {
		return repository.ErrNotFound
	}
	r.byID[consultation.ID] = *consultation
	return nil
}

func (r *ConsultationRepo) Delete(ctx context.Context, ownerID, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.byID[id]
	if !ok || c.OwnerID != ownerID {
		return repository.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *ConsultationRepo) CountBySpecies(ctx context.Context, ownerID, speciesID int64) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, c := range r.byID {
		if c.OwnerID == ownerID && c.SpeciesID == speciesID {
			count++
		}
	}
	return count, nil
}

func (r *ConsultationRepo) CountByTreatment(ctx context.Context, ownerID, treatmentID int64) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, c := range r.byID {
		if c.OwnerID == ownerID && c.TreatmentID == treatmentID {
			count++
		}
	}
	return count, nil
}
