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

type healthPlanRepository struct {
	db *sqlx.DB
}

func NewHealthPlanRepository(db *sqlx.DB) repository.HealthPlanRepository {
	return &healthPlanRepository{db: db}
}

const selectPlanWithName = `
	SELECT p.*, t.name AS treatment_name
	FROM health_plans p
	JOIN treatments t ON t.id = p.treatment_id
`

func (r *healthPlanRepository) List(ctx context.Context, ownerID int64, filter *model.HealthPlanFilter) ([]*model.HealthPlan, error) {
	query := selectPlanWithName + ` WHERE p.owner_id = $1`
	args := []interface{}{ownerID}

	if filter != nil {
		if filter.Search != "" {
			args = append(args, "%"+filter.Search+"%")
			query += fmt.Sprintf(" AND (p.name ILIKE $%d OR p.description ILIKE $%d)", len(args), len(args))
		}
		if filter.ActiveOnly {
			query += " AND p.is_active = true"
		}
		if filter.TreatmentID > 0 {
			args = append(args, filter.TreatmentID)
			query += fmt.Sprintf(" AND p.treatment_id = $%d", len(args))
		}
		if filter.DateFrom != nil {
			args = append(args, filter.DateFrom.Time())
			query += fmt.Sprintf(" AND p.start_date >= $%d", len(args))
		}
		if filter.DateTo != nil {
			args = append(args, filter.DateTo.Time())
			query += fmt.Sprintf(" AND p.start_date <= $%d", len(args))
		}
	}
	query += " ORDER BY p.id"

	plans := []*model.HealthPlan{}
	if err := r.db.SelectContext(ctx, &plans, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list health plans: %w", err)
	}
	return plans, nil
}

func (r *healthPlanRepository) Get(ctx context.Context, ownerID, id int64) (*model.HealthPlan, error) {
	query := selectPlanWithName + ` WHERE p.id = $1 AND p.owner_id = $2`
	var plan model.HealthPlan
	err := r.db.GetContext(ctx, &plan, query, id, ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get health plan: %w", err)
	}
	return &plan, nil
}

func (r *healthPlanRepository) Create(ctx context.Context, plan *model.HealthPlan) error {
	query := `
		INSERT INTO health_plans (
			name, treatment_id, description, cost, duration_months, visits_included,
			includes_emergencies, discount_percentage, coverage_details,
			start_date, end_date, is_active, owner_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`
	err := r.db.QueryRowxContext(ctx, query,
		plan.Name,
		plan.TreatmentID,
		plan.Description,
		plan.Cost,
		plan.DurationMonths,
		plan.VisitsIncluded,
		plan.IncludesEmergencies,
		plan.DiscountPercentage,
		plan.CoverageDetails,
		plan.StartDate.Time(),
		plan.EndDate.Time(),
		plan.IsActive,
		plan.OwnerID,
	).Scan(&plan.ID)
	if err != nil {
		return fmt.Errorf("failed to create health plan: %w", err)
	}
	return nil
}

func (r *healthPlanRepository) Update(ctx context.Context, plan *model.HealthPlan) error {
	query := `
		UPDATE health_plans
		SET name = $1, treatment_id = $2, description = $3, cost = $4, duration_months = $5,
			visits_included = $6, includes_emergencies = $7, discount_percentage = $8,
			coverage_details = $9, start_date = $10, end_date = $11, is_active = $12
		WHERE id = $13 AND owner_id = $14
	`
	res, err := r.db.ExecContext(ctx, query,
		plan.Name,
		plan.TreatmentID,
		plan.Description,
		plan.Cost,
		plan.DurationMonths,
		plan.VisitsIncluded,
		plan.IncludesEmergencies,
		plan.DiscountPercentage,
		plan.CoverageDetails,
		plan.StartDate.Time(),
		plan.EndDate.Time(),
		plan.IsActive,
		plan.ID,
		plan.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("failed to update health plan: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update health plan: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *healthPlanRepository) Delete(ctx context.Context, ownerID, id int64) error {
	query := `DELETE FROM health_plans WHERE id = $1 AND owner_id = $2`
	res, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete health plan: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete health plan: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *healthPlanRepository) CountByTreatment(ctx context.Context, ownerID, treatmentID int64) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM health_plans WHERE owner_id = $1 AND treatment_id = $2`
	if err := r.db.GetContext(ctx, &count, query, ownerID, treatmentID); err != nil {
		return 0, fmt.Errorf("failed to count health plans by treatment: %w", err)
	}
	return count, nil
}
