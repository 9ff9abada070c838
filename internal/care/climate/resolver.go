package climate

import (
	"context"
	"log"

	"github.com/verdantly/garden-care-backend/internal/care/domain"
)

// Store looks up climate profiles by county name.
type Store interface {
	GetClimateProfile(ctx context.Context, county string) (*domain.ClimateProfile, error)
}

// DefaultProfile is the fallback used whenever regional data is unavailable.
// The frost days place the spring cool window start on March 1.
func DefaultProfile() domain.ClimateProfile {
	return domain.ClimateProfile{
		Region:         domain.RegionPiedmont,
		LastFrostDOY:   105,
		FirstFrostDOY:  300,
		AnnualPrecipMM: 1200,
		ZoneMin:        "7a",
		ZoneMax:        "8a",
	}
}

// Resolver turns a garden's optional county reference into a usable climate
// profile. It never fails: lookups go cache, then store, then the default.
type Resolver struct {
	store Store
	cache *Cache // nil when redis is not configured
}

func NewResolver(store Store, cache *Cache) *Resolver {
	return &Resolver{store: store, cache: cache}
}

// Resolve returns the climate profile for a county, or the default profile
// when the county is empty or unknown.
func (r *Resolver) Resolve(ctx context.Context, county string) domain.ClimateProfile {
	if county == "" {
		return DefaultProfile()
	}

	if r.cache != nil {
		if p, err := r.cache.Get(ctx, county); err == nil && p != nil {
			return *p
		}
	}

	if r.store != nil {
		p, err := r.store.GetClimateProfile(ctx, county)
		if err == nil && p != nil {
			if r.cache != nil {
				if err := r.cache.Set(ctx, county, *p); err != nil {
					log.Printf("[climate] cache set failed for %s: %v", county, err)
				}
			}
			return *p
		}
	}

	return DefaultProfile()
}
