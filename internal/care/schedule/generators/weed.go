package generators

import (
	"math"

	"github.com/verdantly/garden-care-backend/internal/care/domain"
	"github.com/verdantly/garden-care-backend/internal/care/schedule"
)

type weed struct{}

func (weed) Type() domain.TaskType { return domain.TaskWeed }

// Generate emits a recurring weeding series keyed to how much effort the
// garden owner signed up for. During the warm window the interval tightens
// to 75% of its value, floored, never below three days.
func (weed) Generate(c *schedule.Context) []domain.Task {
	interval := baseWeedInterval(c.Garden.Maintenance)

	if c.Windows.Warm.Contains(c.Today) {
		interval = int(math.Floor(float64(interval) * 0.75))
		if interval < 3 {
			interval = 3
		}
	}

	return recur(c, domain.TaskWeed, schedule.AddDays(c.Today, interval), interval)
}

func baseWeedInterval(m domain.MaintenanceLevel) int {
	switch m {
	case domain.MaintenanceLow:
		return 21
	case domain.MaintenanceHigh:
		return 7
	default:
		return 14
	}
}

func init() { Register(weed{}) }
