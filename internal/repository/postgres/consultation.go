package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/vetcarehq/vetclinic-api/internal/model"
	"github.com/vetcarehq/vetclinic-api/internal/repository"
)

type consultationRepository struct {
	db *sqlx.DB
}

func NewConsultationRepository(db *sqlx.DB) repository.ConsultationRepository {
	return &consultationRepository{db: db}
}

// selectWithNames joins the related species and treatment so list and get
// responses carry the display names without a second round trip.
const selectWithNames = `
	SELECT c.*, s.name AS species_name, t.name AS treatment_name
	FROM consultations c
	JOIN species s ON s.id = c.species_id
	JOIN treatments t ON t.id = c.treatment_id
`

func (r *consultationRepository) List(ctx context.Context, ownerID int64, filter *model.ConsultationFilter) ([]*model.Consultation, error) {
	query := selectWithNames + ` WHERE c.owner_id = $1`
	args := []interface{}{ownerID}

	if filter != nil {
		if filter.Search != "" {
			args = append(args, "%"+filter.Search+"%")
			query += fmt.Sprintf(" AND (c.pet_name ILIKE $%d OR c.owner_name ILIKE $%d OR c.description ILIKE $%d)",
				len(args), len(args), len(args))
		}
		if filter.SpeciesID > 0 {
			args = append(args, filter.SpeciesID)
			query += fmt.Sprintf(" AND c.species_id = $%d", len(args))
		}
		if filter.TreatmentID > 0 {
			args = append(args, filter.TreatmentID)
			query += fmt.Sprintf(" AND c.treatment_id = $%d", len(args))
		}
		if filter.DateFrom != nil {
			args = append(args, filter.DateFrom.Time())
			query += fmt.Sprintf(" AND c.consultation_date >= $%d", len(args))
		}
		if filter.DateTo != nil {
			args = append(args, filter.DateTo.Time())
			query += fmt.Sprintf(" AND c.consultation_date <= $%d", len(args))
		}
	}
	query += " ORDER BY c.id"

	consultations := []*model.Consultation{}
	if err := r.db.SelectContext(ctx, &consultations, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list consultations: %w", err)
	}
	return consultations, nil
}

func (r *consultationRepository) Get(ctx context.Context, ownerID, id int64) (*model.Consultation, error) {
	query := selectWithNames + ` WHERE c.id = $1 AND c.owner_id = $2`
	var consultation model.Consultation
	err := r.db.GetContext(ctx, &consultation, query, id, ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get consultation: %w", err)
	}
	return &consultation, nil
}

func (r *consultationRepository) Create(ctx context.Context, consultation *model.Consultation) error {
	query := `
		INSERT INTO consultations (
			species_id, treatment_id, pet_name, owner_name, contact_info, cost,
			description, treatment_notes, prescription, consultation_date,
			follow_up_date, owner_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`
	err := r.db.QueryRowxContext(ctx, query,
		consultation.SpeciesID,
		consultation.TreatmentID,
		consultation.PetName,
		consultation.OwnerName,
		consultation.ContactInfo,
		consultation.Cost,
		consultation.Description,
		consultation.TreatmentNotes,
		consultation.Prescription,
		consultation.ConsultationDate.Time(),
		consultation.FollowUpDate,
		consultation.OwnerID,
	).Scan(&consultation.ID)
	if err != nil {
		return fmt.Errorf("failed to create consultation: %w", err)
	}
	return nil
}

func (r *consultationRepository) Update(ctx context.Context, consultation *model.Consultation) error {
	query := `
		UPDATE consultations
		SET species_id = $1, treatment_id = $2, pet_name = $3, owner_name = $4,
			contact_info = $5, cost = $6, description = $7, treatment_notes = $8,
			prescription = $9, consultation_date = $10, follow_up_date = $11
		WHERE id = $12 AND owner_id = $13
	`
	res, err := r.db.ExecContext(ctx, query,
		consultation.SpeciesID,
		consultation.TreatmentID,
		consultation.PetName,
		consultation.OwnerName,
		consultation.ContactInfo,
		consultation.Cost,
		consultation.Description,
		consultation.TreatmentNotes,
		consultation.Prescription,
		consultation.ConsultationDate.Time(),
		consultation.FollowUpDate,
		consultation.ID,
		consultation.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("failed to update consultation: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update consultation: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *consultationRepository) Delete(ctx context.Context, ownerID, id int64) error {
	query := `DELETE FROM consultations WHERE id = $1 AND owner_id = $2`
	res, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete consultation: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete consultation: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *consultationRepository) CountBySpecies(ctx context.Context, ownerID, speciesID int64) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM consultations WHERE owner_id = $1 AND species_id = $2`
	if err := r.db.GetContext(ctx, &count, query, ownerID, speciesID); err != nil {
		return 0, fmt.Errorf("failed to count consultations by species: %w", err)
	}
	return count, nil
}

func (r *consultationRepository) CountByTreatment(ctx context.Context, ownerID, treatmentID int64) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM consultations WHERE owner_id = $1 AND treatment_id = $2`
	if err := r.db.GetContext(ctx, &count, query, ownerID, treatmentID); err != nil {
		return 0, fmt.Errorf("failed to count consultations by treatment: %w", err)
	}
	return count, nil
}
