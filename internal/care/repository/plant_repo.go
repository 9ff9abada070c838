package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/verdantly/garden-care-backend/internal/care/domain"
)

// PlantRepo reads botanical trait records.
type PlantRepo struct {
	db *pgxpool.Pool
}

func NewPlantRepo(db *pgxpool.Pool) *PlantRepo {
	return &PlantRepo{db: db}
}

func (r *PlantRepo) GetPlantTraits(ctx context.Context, plantID string) (*domain.PlantTraits, error) {
	const q = `
select plant_id, maintenance_level, growth_rate, bloom_months, harvest_months,
       propagation_methods, known_problems, prefers_cool_season
from plant_traits
where plant_id = $1;
`
	var t domain.PlantTraits
	err := r.db.QueryRow(ctx, q, plantID).Scan(
		&t.PlantID,
		&t.Maintenance,
		&t.GrowthRate,
		&t.BloomMonths,
		&t.HarvestMonths,
		&t.PropagationMethods,
		&t.KnownProblems,
		&t.PrefersCoolSeason,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrPlantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get plant traits: %w", err)
	}
	return &t, nil
}
