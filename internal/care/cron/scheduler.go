package cronjob

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/verdantly/garden-care-backend/internal/care/climate"
	"github.com/verdantly/garden-care-backend/internal/care/repository"
)

// Scheduler runs the nightly climate-cache warm so daytime schedule
// generation rarely touches postgres for profiles.
type Scheduler struct {
	profiles *repository.ClimateRepo
	cache    *climate.Cache
}

func NewScheduler(profiles *repository.ClimateRepo, cache *climate.Cache) *Scheduler {
	return &Scheduler{profiles: profiles, cache: cache}
}

// Start initializes cron tasks (3:00 AM nightly).
func (s *Scheduler) Start() {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc("0 0 3 * * *", func() {
		s.WarmClimateCache(context.Background())
	})

	if err != nil {
		log.Printf("Failed to create cron job: %v", err)
		return
	}

	log.Println("Cron scheduler started (climate cache warm nightly at 3:00AM)")
	c.Start()
}

// WarmClimateCache loads every county profile into redis.
func (s *Scheduler) WarmClimateCache(ctx context.Context) {
	start := time.Now()

	profiles, err := s.profiles.ListClimateProfiles(ctx)
	if err != nil {
		log.Printf("Climate cache warm failed: %v", err)
		return
	}

	warmed := 0
	for county, p := range profiles {
		if err := s.cache.Set(ctx, county, p); err != nil {
			log.Printf("Climate cache warm: %s: %v", county, err)
			continue
		}
		warmed++
	}

	log.Printf("Climate cache warm done: %d/%d profiles in %s", warmed, len(profiles), time.Since(start))
}
