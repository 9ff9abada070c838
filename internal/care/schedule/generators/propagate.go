package generators

import (
	"github.com/verdantly/garden-care-backend/internal/care/domain"
	"github.com/verdantly/garden-care-backend/internal/care/schedule"
)

type propagate struct{}

func (propagate) Type() domain.TaskType { return domain.TaskPropagate }

// Generate schedules one task per propagation method at the midpoint of the
// season window suited to it: division in the spring cool window, cuttings
// in the warm window, everything else in the fall cool window.
func (propagate) Generate(c *schedule.Context) []domain.Task {
	var out []domain.Task
	for _, method := range c.Traits.PropagationMethods {
		var w schedule.Window
		switch method {
		case domain.PropagationDivision:
			w = c.Windows.SpringCool
		case domain.PropagationCuttings:
			w = c.Windows.Warm
		default:
			w = c.Windows.FallCool
		}

		due := c.Due(schedule.Midpoint(w.Start, w.End))
		if c.WithinHorizon(due) {
			out = append(out, c.NewTask(domain.TaskPropagate, due))
		}
	}
	return out
}

func init() { Register(propagate{}) }
