package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/verdantly/garden-care-backend/internal/care/domain"
)

// ClimateRepo reads regional climate profiles keyed by county.
type ClimateRepo struct {
	db *pgxpool.Pool
}

func NewClimateRepo(db *pgxpool.Pool) *ClimateRepo {
	return &ClimateRepo{db: db}
}

func (r *ClimateRepo) GetClimateProfile(ctx context.Context, county string) (*domain.ClimateProfile, error) {
	const q = `
select region, last_frost_doy, first_frost_doy, annual_precip_mm, zone_min, zone_max
from climate_profiles
where lower(county) = lower($1);
`
	var p domain.ClimateProfile
	err := r.db.QueryRow(ctx, q, county).Scan(
		&p.Region,
		&p.LastFrostDOY,
		&p.FirstFrostDOY,
		&p.AnnualPrecipMM,
		&p.ZoneMin,
		&p.ZoneMax,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrClimateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get climate profile: %w", err)
	}
	return &p, nil
}

// ListClimateProfiles returns every profile with its county, for cache warming.
func (r *ClimateRepo) ListClimateProfiles(ctx context.Context) (map[string]domain.ClimateProfile, error) {
	const q = `
select county, region, last_frost_doy, first_frost_doy, annual_precip_mm, zone_min, zone_max
from climate_profiles;
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list climate profiles: %w", err)
	}
	defer rows.Close()

	out := make(map[string]domain.ClimateProfile, 16)
	for rows.Next() {
		var county string
		var p domain.ClimateProfile
		if err := rows.Scan(&county, &p.Region, &p.LastFrostDOY, &p.FirstFrostDOY,
			&p.AnnualPrecipMM, &p.ZoneMin, &p.ZoneMax); err != nil {
			return nil, err
		}
		out[county] = p
	}
	return out, rows.Err()
}
