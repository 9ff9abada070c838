package generators

import (
	"time"

	"github.com/verdantly/garden-care-backend/internal/care/domain"
	"github.com/verdantly/garden-care-backend/internal/care/schedule"
)

type inspect struct{}

func (inspect) Type() domain.TaskType { return domain.TaskInspect }

// Generate emits a recurring pest-and-disease check. Plants with known
// problems get a tight 7-day loop; otherwise the cadence depends on whether
// today sits in the growing stretch between warm-window start and the end of
// September. The interval is chosen once per invocation, not per step.
func (inspect) Generate(c *schedule.Context) []domain.Task {
	interval := 14

	endOfSeptember := time.Date(c.Today.Year(), time.September, 30, 0, 0, 0, 0, time.UTC)
	today := schedule.TruncateToDay(c.Today)

	switch {
	case len(c.Traits.KnownProblems) > 0:
		interval = 7
	case !today.Before(c.Windows.Warm.Start) && !today.After(endOfSeptember):
		interval = 10
	}

	return recur(c, domain.TaskInspect, schedule.AddDays(c.Today, interval), interval)
}

func init() { Register(inspect{}) }
