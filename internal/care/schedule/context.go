package schedule

import (
	"time"

	"github.com/verdantly/garden-care-backend/internal/care/domain"
)

// HorizonDays is the scheduling horizon: every generated task is due within
// this many days of "today".
const HorizonDays = 365

// Context is the shared read-only input every task generator consumes. It is
// fully resolved up front: optional upstream fields are already defaulted, so
// generators never null-check or re-default anything.
type Context struct {
	Today   time.Time
	Horizon time.Time

	Plant   domain.UserPlantInstance
	Traits  domain.PlantTraits
	Garden  domain.GardenSiteAttributes
	Climate domain.ClimateProfile

	Windows    SeasonWindows
	OffsetDays float64
}

// ResolveContext builds the generation context for one plant instance.
// Unrecognized or missing optional fields resolve to documented defaults
// (maintenance Medium, soil Loam, growth Slow) instead of failing.
func ResolveContext(
	today time.Time,
	plant domain.UserPlantInstance,
	traits domain.PlantTraits,
	garden domain.GardenSiteAttributes,
	climate domain.ClimateProfile,
) *Context {
	today = today.UTC()

	traits.Maintenance = resolveMaintenance(traits.Maintenance)
	traits.GrowthRate = resolveGrowthRate(traits.GrowthRate)
	garden.Maintenance = resolveMaintenance(garden.Maintenance)
	garden.SoilTexture = resolveSoil(garden.SoilTexture)
	if garden.UrbanDensity < 0 {
		garden.UrbanDensity = 0
	}

	return &Context{
		Today:      today,
		Horizon:    AddDays(today, HorizonDays),
		Plant:      plant,
		Traits:     traits,
		Garden:     garden,
		Climate:    climate,
		Windows:    ComputeWindows(climate, today.Year()),
		OffsetDays: MicroAdjustDays(garden.ElevationFt, garden.UrbanDensity),
	}
}

// Due converts a computed base instant into a task due date: the micro
// adjustment is applied first, then the result is truncated to UTC midnight.
func (c *Context) Due(t time.Time) time.Time {
	return TruncateToDay(AddFractionalDays(t, c.OffsetDays))
}

// WithinHorizon reports whether due lies in (today, today+365d].
func (c *Context) WithinHorizon(due time.Time) bool {
	return due.After(c.Today) && !due.After(c.Horizon)
}

// NewTask builds an unsaved task for this plant at the given due date.
func (c *Context) NewTask(tt domain.TaskType, due time.Time) domain.Task {
	return domain.Task{
		UserPlantID: c.Plant.ID,
		TaskType:    tt,
		DueDate:     domain.Timestamp(due),
		Completed:   false,
	}
}

func resolveMaintenance(m domain.MaintenanceLevel) domain.MaintenanceLevel {
	switch m {
	case domain.MaintenanceLow, domain.MaintenanceMedium, domain.MaintenanceHigh:
		return m
	default:
		return domain.MaintenanceMedium
	}
}

func resolveGrowthRate(g domain.GrowthRate) domain.GrowthRate {
	switch g {
	case domain.GrowthFast, domain.GrowthSlow:
		return g
	default:
		return domain.GrowthSlow
	}
}

func resolveSoil(s domain.SoilTexture) domain.SoilTexture {
	switch s {
	case domain.SoilSand, domain.SoilLoam, domain.SoilClay:
		return s
	default:
		return domain.SoilLoam
	}
}
