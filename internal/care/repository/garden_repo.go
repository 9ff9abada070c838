package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/verdantly/garden-care-backend/internal/care/domain"
)

// GardenRepo reads garden site records.
type GardenRepo struct {
	db *pgxpool.Pool
}

func NewGardenRepo(db *pgxpool.Pool) *GardenRepo {
	return &GardenRepo{db: db}
}

func (r *GardenRepo) GetGardenAttributes(ctx context.Context, gardenID string) (*domain.GardenSiteAttributes, error) {
	const q = `
select garden_id, soil_texture, elevation_ft, urban_density, maintenance_level, county
from garden_sites
where garden_id = $1;
`
	var g domain.GardenSiteAttributes
	var county *string
	err := r.db.QueryRow(ctx, q, gardenID).Scan(
		&g.GardenID,
		&g.SoilTexture,
		&g.ElevationFt,
		&g.UrbanDensity,
		&g.Maintenance,
		&county,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrGardenNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get garden attributes: %w", err)
	}
	if county != nil {
		g.County = *county
	}
	return &g, nil
}
