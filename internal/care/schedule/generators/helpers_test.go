package generators

import (
	"time"

	"github.com/verdantly/garden-care-backend/internal/care/domain"
	"github.com/verdantly/garden-care-backend/internal/care/schedule"
)

func utcDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func piedmontProfile() domain.ClimateProfile {
	return domain.ClimateProfile{
		Region:         domain.RegionPiedmont,
		LastFrostDOY:   105,
		FirstFrostDOY:  300,
		AnnualPrecipMM: 1200,
		ZoneMin:        "7a",
		ZoneMax:        "8a",
	}
}

func coastalProfile() domain.ClimateProfile {
	p := piedmontProfile()
	p.Region = domain.RegionCoastal
	return p
}

// ctxAt builds a resolved generation context with sensible fixture defaults.
func ctxAt(today time.Time, traits domain.PlantTraits, garden domain.GardenSiteAttributes, profile domain.ClimateProfile) *schedule.Context {
	plant := domain.UserPlantInstance{
		ID:        "up-1",
		GardenID:  "g-1",
		PlantID:   "pl-1",
		CreatedAt: today,
	}
	return schedule.ResolveContext(today, plant, traits, garden, profile)
}

func dueDates(tasks []domain.Task) []time.Time {
	out := make([]time.Time, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.DueDate.Time())
	}
	return out
}
