package generators

import (
	"github.com/verdantly/garden-care-backend/internal/care/domain"
	"github.com/verdantly/garden-care-backend/internal/care/schedule"
)

type journal struct{}

func (journal) Type() domain.TaskType { return domain.TaskLog }

// Generate emits journal reminders: the first one a week from today, then
// stepping by one calendar month (not seven days) out to the horizon.
func (journal) Generate(c *schedule.Context) []domain.Task {
	var out []domain.Task
	for d := schedule.AddDays(c.Today, 7); ; d = schedule.AddMonths(d, 1) {
		due := c.Due(d)
		if due.After(c.Horizon) {
			break
		}
		if due.After(c.Today) {
			out = append(out, c.NewTask(domain.TaskLog, due))
		}
	}
	return out
}

func init() { Register(journal{}) }
