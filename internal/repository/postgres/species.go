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

type speciesRepository struct {
	db *sqlx.DB
}

func NewSpeciesRepository(db *sqlx.DB) repository.SpeciesRepository {
	return &speciesRepository{db: db}
}

func (r *speciesRepository) List(ctx context.Context, ownerID int64, filter *model.SpeciesFilter) ([]*model.Species, error) {
	query := `SELECT * FROM species WHERE owner_id = $1`
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

	species := []*model.Species{}
	if err := r.db.SelectContext(ctx, &species, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list species: %w", err)
	}
	return species, nil
}

func (r *speciesRepository) Get(ctx context.Context, ownerID, id int64) (*model.Species, error) {
	query := `SELECT * FROM species WHERE id = $1 AND owner_id = $2`
	var species model.Species
	err := r.db.GetContext(ctx, &species, query, id, ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get species: %w", err)
	}
	return &species, nil
}

func (r *speciesRepository) Create(ctx context.Context, species *model.Species) error {
	query := `
		INSERT INTO species (name, description, is_active, common_issues, care_instructions, created_date, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.db.QueryRowxContext(ctx, query,
		species.Name,
		species.Description,
		species.IsActive,
		species.CommonIssues,
		species.CareInstructions,
		species.CreatedDate.Time(),
		species.OwnerID,
	).Scan(&species.ID)
	if err != nil {
		return fmt.Errorf("failed to create species: %w", err)
	}
	return nil
}

func (r *speciesRepository) Update(ctx context.Context, species *model.Species) error {
	query := `
		UPDATE species
		SET name = $1, description = $2, is_active = $3, common_issues = $4, care_instructions = $5
		WHERE id = $6 AND owner_id = $7
	`
	res, err := r.db.ExecContext(ctx, query,
		species.Name,
		species.Description,
		species.IsActive,
		species.CommonIssues,
		species.CareInstructions,
		species.ID,
		species.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("failed to update species: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update species: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *speciesRepository) Delete(ctx context.Context, ownerID, id int64) error {
	query := `DELETE FROM species WHERE id = $1 AND owner_id = $2`
	res, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete species: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete species: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}
