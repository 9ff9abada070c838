package generators

import (
	"github.com/verdantly/garden-care-backend/internal/care/domain"
	"github.com/verdantly/garden-care-backend/internal/care/schedule"
)

type harvest struct{}

func (harvest) Type() domain.TaskType { return domain.TaskHarvest }

// Generate emits one non-recurring task per configured harvest month, on the
// 15th of that month in the current year, only when the adjusted date still
// falls inside the scheduling horizon. Unknown month names are skipped.
func (harvest) Generate(c *schedule.Context) []domain.Task {
	var out []domain.Task
	for _, name := range c.Traits.HarvestMonths {
		m, ok := schedule.MonthByName(name)
		if !ok {
			continue
		}
		due := c.Due(schedule.MidMonth(c.Today.Year(), m))
		if c.WithinHorizon(due) {
			out = append(out, c.NewTask(domain.TaskHarvest, due))
		}
	}
	return out
}

func init() { Register(harvest{}) }
