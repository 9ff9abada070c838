package generators

import (
	"github.com/verdantly/garden-care-backend/internal/care/domain"
	"github.com/verdantly/garden-care-backend/internal/care/schedule"
)

type fertilize struct{}

func (fertilize) Type() domain.TaskType { return domain.TaskFertilize }

// Generate schedules feeding on a monthly or quarterly cadence anchored to
// the start of the spring cool window plus a region-specific delay. The
// schedule never emits past-dated occurrences: a start already behind today
// is advanced by whole cycles first. Cool-season plants skip any occurrence
// landing in the warm window but keep the cadence running.
func (fertilize) Generate(c *schedule.Context) []domain.Task {
	months := 3
	if c.Traits.GrowthRate == domain.GrowthFast {
		months = 1
	}

	start := schedule.AddDays(c.Windows.SpringCool.Start, regionFertilizeDelay(c.Climate.Region))
	for !start.After(c.Today) {
		start = schedule.AddMonths(start, months)
	}

	var out []domain.Task
	for d := start; ; d = schedule.AddMonths(d, months) {
		due := c.Due(d)
		if due.After(c.Horizon) {
			break
		}
		if c.Traits.PrefersCoolSeason && c.Windows.Warm.Contains(due) {
			continue
		}
		if due.After(c.Today) {
			out = append(out, c.NewTask(domain.TaskFertilize, due))
		}
	}
	return out
}

func regionFertilizeDelay(r domain.Region) int {
	switch r {
	case domain.RegionCoastal:
		return 14
	case domain.RegionMountains:
		return 28
	case domain.RegionPiedmont:
		return 21
	default:
		return 14
	}
}

func init() { Register(fertilize{}) }
