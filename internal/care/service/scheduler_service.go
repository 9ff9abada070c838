package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/verdantly/garden-care-backend/internal/care/climate"
	"github.com/verdantly/garden-care-backend/internal/care/domain"
	"github.com/verdantly/garden-care-backend/internal/care/schedule"
	"github.com/verdantly/garden-care-backend/internal/care/schedule/generators"
)

// TraitStore supplies botanical traits for a plant species.
type TraitStore interface {
	GetPlantTraits(ctx context.Context, plantID string) (*domain.PlantTraits, error)
}

// GardenStore supplies site attributes for a garden.
type GardenStore interface {
	GetGardenAttributes(ctx context.Context, gardenID string) (*domain.GardenSiteAttributes, error)
}

// TaskSink persists a generated batch atomically.
type TaskSink interface {
	InsertTasks(ctx context.Context, tasks []domain.Task) (int, error)
}

// SchedulerService generates the rolling 365-day care schedule for one plant
// instance per invocation. Each invocation is stateless and synchronous: three
// upstream reads, pure date arithmetic, one downstream batch write.
type SchedulerService struct {
	traits  TraitStore
	gardens GardenStore
	climate *climate.Resolver
	sink    TaskSink
}

func NewSchedulerService(traits TraitStore, gardens GardenStore, resolver *climate.Resolver, sink TaskSink) *SchedulerService {
	return &SchedulerService{
		traits:  traits,
		gardens: gardens,
		climate: resolver,
		sink:    sink,
	}
}

// GenerateForPlant builds, validates and persists the task batch for a plant,
// anchored at the current instant.
func (s *SchedulerService) GenerateForPlant(ctx context.Context, plant domain.UserPlantInstance) ([]domain.Task, error) {
	return s.GenerateForPlantAt(ctx, plant, time.Now().UTC(), true)
}

// PreviewForPlant runs the same computation without touching the sink.
func (s *SchedulerService) PreviewForPlant(ctx context.Context, plant domain.UserPlantInstance) ([]domain.Task, error) {
	return s.GenerateForPlantAt(ctx, plant, time.Now().UTC(), false)
}

// GenerateForPlantAt is the full pipeline with an explicit "today" anchor.
// A batch is generated and persisted atomically or not at all: a missing
// upstream record, a schema violation or a sink failure each abort the whole
// invocation.
func (s *SchedulerService) GenerateForPlantAt(ctx context.Context, plant domain.UserPlantInstance, today time.Time, persist bool) ([]domain.Task, error) {
	var (
		traits *domain.PlantTraits
		garden *domain.GardenSiteAttributes
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		t, err := s.traits.GetPlantTraits(gctx, plant.PlantID)
		if err != nil {
			return err
		}
		traits = t
		return nil
	})
	g.Go(func() error {
		ga, err := s.gardens.GetGardenAttributes(gctx, plant.GardenID)
		if err != nil {
			return err
		}
		garden = ga
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	profile := s.climate.Resolve(ctx, garden.County)

	genCtx := schedule.ResolveContext(today, plant, *traits, *garden, profile)
	batch := schedule.Assemble(generators.GenerateAll(genCtx))

	if err := schedule.ValidateBatch(batch); err != nil {
		return nil, err
	}

	if persist {
		n, err := s.sink.InsertTasks(ctx, batch)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrPersistFailed, err)
		}
		log.Printf("[care] plant=%s tasks=%d inserted=%d", plant.ID, len(batch), n)
	}

	return batch, nil
}
