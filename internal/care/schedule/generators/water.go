package generators

import (
	"github.com/verdantly/garden-care-backend/internal/care/domain"
	"github.com/verdantly/garden-care-backend/internal/care/schedule"
)

type water struct{}

func (water) Type() domain.TaskType { return domain.TaskWater }

// Generate emits a fixed-interval watering series. The interval starts from
// the plant's maintenance level and is nudged by precipitation, soil texture
// and the season today falls in, never dropping below one day.
func (water) Generate(c *schedule.Context) []domain.Task {
	interval := baseWaterInterval(c.Traits.Maintenance)

	monthlyPrecip := c.Climate.AnnualPrecipMM / 12
	if monthlyPrecip < 80 {
		interval++
	}
	if monthlyPrecip > 120 {
		interval--
	}

	if c.Garden.SoilTexture == domain.SoilSand {
		interval++
	}

	// Seasonal nudge keys off today's window. Dates in the early-year gap
	// before springCool belong to the previous year's dormant range and get
	// no adjustment.
	switch {
	case c.Windows.Warm.Contains(c.Today):
		if c.Climate.Region == domain.RegionCoastal {
			interval += 2
		} else {
			interval++
		}
	case c.Windows.InAnyCoolWindow(c.Today):
		interval--
	}

	if interval < 1 {
		interval = 1
	}

	return recur(c, domain.TaskWater, schedule.AddDays(c.Today, interval), interval)
}

func baseWaterInterval(m domain.MaintenanceLevel) int {
	switch m {
	case domain.MaintenanceLow:
		return 7
	case domain.MaintenanceHigh:
		return 2
	default:
		return 4
	}
}

func init() { Register(water{}) }
