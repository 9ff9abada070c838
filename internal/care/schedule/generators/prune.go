package generators

import (
	"time"

	"github.com/verdantly/garden-care-backend/internal/care/domain"
	"github.com/verdantly/garden-care-backend/internal/care/schedule"
)

type prune struct{}

func (prune) Type() domain.TaskType { return domain.TaskPrune }

// Generate applies three independent pruning rules:
//   - post-bloom deadheading a week after each bloom month's midpoint, only
//     inside the warm window;
//   - a pre-frost cut 30 days before first fall frost for zone 7+ plantings;
//   - a structural prune at mid-January of next year, only if that lands
//     inside the dormant window.
func (prune) Generate(c *schedule.Context) []domain.Task {
	var out []domain.Task
	year := c.Today.Year()

	for _, name := range c.Traits.BloomMonths {
		m, ok := schedule.MonthByName(name)
		if !ok {
			continue
		}
		due := c.Due(schedule.AddDays(schedule.MidMonth(year, m), 7))
		if c.Windows.Warm.Contains(due) && c.WithinHorizon(due) {
			out = append(out, c.NewTask(domain.TaskPrune, due))
		}
	}

	if zoneAtLeast(c.Climate.ZoneMin, 7) || zoneAtLeast(c.Climate.ZoneMax, 7) {
		firstFrost := schedule.DateFromDOY(year, c.Climate.FirstFrostDOY)
		due := c.Due(schedule.AddDays(firstFrost, -30))
		if c.WithinHorizon(due) {
			out = append(out, c.NewTask(domain.TaskPrune, due))
		}
	}

	dormantDue := c.Due(schedule.MidMonth(year+1, time.January))
	if c.WithinHorizon(dormantDue) && c.Windows.Dormant.Contains(dormantDue) {
		out = append(out, c.NewTask(domain.TaskPrune, dormantDue))
	}

	return out
}

func zoneAtLeast(zone string, min int) bool {
	n, ok := zoneNumber(zone)
	return ok && n >= min
}

func init() { Register(prune{}) }
