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

type treatmentRepository struct {
	db *sqlx.DB
}

func NewTreatmentRepository(db *sqlx.DB) repository.TreatmentRepository {
	return &treatmentRepository{db: db}
}

func (r *treatmentRepository) List(ctx context.Context, ownerID int64, filter *model.TreatmentFilter) ([]*model.Treatment, error) {
	query := `SELECT * FROM treatments WHERE owner_id = $1`
	args := []interface{}{ownerID}

	if filter != nil {
		if filter.Search != "" {
			args = append(args, "%"+filter.Search+"%")
			query += fmt.Sprintf(" AND (name ILIKE $%d OR description ILIKE $%d)", len(args), len(args))
		}
		if filter.ActiveOnly {
			query += " AND is_active = true"
		}
		if filter.DateFrom != nil {
			args = append(args, filter.DateFrom.Time())
			query += fmt.Sprintf(" AND created_date >= $%d", len(args))
		}
		if filter.DateTo != nil {
			args = append(args, filter.DateTo.Time())
			query += fmt.Sprintf(" AND created_date <= $%d", len(args))
		}
	}
	query += " ORDER BY id"

	treatments := []*model.Treatment{}
	if err := r.db.SelectContext(ctx, &treatments, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list treatments: %w", err)
	}
	return treatments, nil
}

func (r *treatmentRepository) Get(ctx context.Context, ownerID, id int64) (*model.Treatment, error) {
	query := `SELECT * FROM treatments WHERE id = $1 AND owner_id = $2`
	var treatment model.Treatment
	err := r.db.GetContext(ctx, &treatment, query, id, ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get treatment: %w", err)
	}
	return &treatment, nil
}

func (r *treatmentRepository) Create(ctx context.Context, treatment *model.Treatment) error {
	query := `
		INSERT INTO treatments (
			name, description, default_cost, medical_requirements, post_treatment_care,
			typical_medication, estimated_time_minutes, icon_name, color_code,
			is_active, created_date, owner_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`
	err := r.db.QueryRowxContext(ctx, query,
		treatment.Name,
		treatment.Description,
		treatment.DefaultCost,
		treatment.MedicalRequirements,
		treatment.PostTreatmentCare,
		treatment.TypicalMedication,
		treatment.EstimatedTimeMinutes,
		treatment.IconName,
		treatment.ColorCode,
		treatment.IsActive,
		treatment.CreatedDate.Time(),
		treatment.OwnerID,
	).Scan(&treatment.ID)
	if err != nil {
		return fmt.Errorf("failed to create treatment: %w", err)
	}
	return nil
}

func (r *treatmentRepository) Update(ctx context.Context, treatment *model.Treatment) error {
	query := `
		UPDATE treatments
		SET name = $1, description = $2, default_cost = $3, medical_requirements = $4,
			post_treatment_care = $5, typical_medication = $6, estimated_time_minutes = $7,
			icon_name = $8, color_code = $9, is_active = $10
		WHERE id = $11 AND owner_id = $12
	`
	res, err := r.db.ExecContext(ctx, query,
		treatment.Name,
		treatment.Description,
		treatment.DefaultCost,
		treatment.MedicalRequirements,
		treatment.PostTreatmentCare,
		treatment.TypicalMedication,
		treatment.EstimatedTimeMinutes,
		treatment.IconName,
		treatment.ColorCode,
		treatment.IsActive,
		treatment.ID,
		treatment.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("failed to update treatment: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update treatment: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *treatmentRepository) Delete(ctx context.Context, ownerID, id int64) error {
	query := `DELETE FROM treatments WHERE id = $1 AND owner_id = $2`
	res, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete treatment: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete treatment: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}
