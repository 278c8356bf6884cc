package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/vetcarehq/vetclinic-api/internal/model"
	"github.com/vetcarehq/vetclinic-api/internal/repository"
)

type dashboardRepository struct {
	db *sqlx.DB
}

func NewDashboardRepository(db *sqlx.DB) repository.DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) Counts(ctx context.Context, ownerID int64) (*model.DashboardStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM species WHERE owner_id = $1) AS total_species,
			(SELECT COUNT(*) FROM treatments WHERE owner_id = $1) AS total_treatments,
			(SELECT COUNT(*) FROM consultations WHERE owner_id = $1) AS total_consultations,
			(SELECT COUNT(*) FROM health_plans WHERE owner_id = $1) AS total_health_plans
	`
	var stats model.DashboardStats
	if err := r.db.GetContext(ctx, &stats, query, ownerID); err != nil {
		return nil, fmt.Errorf("failed to load dashboard stats: %w", err)
	}
	return &stats, nil
}
