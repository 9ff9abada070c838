package generators

import (
	"github.com/verdantly/garden-care-backend/internal/care/domain"
	"github.com/verdantly/garden-care-backend/internal/care/schedule"
)

type transplant struct{}

func (transplant) Type() domain.TaskType { return domain.TaskTransplant }

// Generate emits at most one transplant task, four weeks after the plant was
// added. A date before the spring cool window clamps up to the window start;
// a date past the end of the warm window defers to next year's spring. On a
// re-invocation for an established plant the resolved date can already be
// behind today; that also defers to next spring rather than emitting a
// past-dated task.
func (transplant) Generate(c *schedule.Context) []domain.Task {
	base := schedule.AddDays(c.Plant.CreatedAt.UTC(), 28)

	if base.Before(c.Windows.SpringCool.Start) {
		base = c.Windows.SpringCool.Start
	} else if base.After(c.Windows.Warm.End) {
		base = schedule.AddDays(c.Windows.SpringCool.Start, 365)
	}

	due := c.Due(base)
	if !due.After(c.Today) {
		due = c.Due(schedule.AddDays(c.Windows.SpringCool.Start, 365))
	}
	if !c.WithinHorizon(due) {
		return nil
	}

	return []domain.Task{c.NewTask(domain.TaskTransplant, due)}
}

func init() { Register(transplant{}) }
