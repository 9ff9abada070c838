package generators

import (
	"strconv"
	"time"

	"github.com/verdantly/garden-care-backend/internal/care/domain"
	"github.com/verdantly/garden-care-backend/internal/care/schedule"
)

// recur emits a task for each step of a fixed-interval series starting at
// first, until the adjusted due date leaves the 365-day horizon. Callers
// guarantee stepDays >= 1.
func recur(c *schedule.Context, tt domain.TaskType, first time.Time, stepDays int) []domain.Task {
	var out []domain.Task
	for d := first; ; d = schedule.AddDays(d, stepDays) {
		due := c.Due(d)
		if due.After(c.Horizon) {
			break
		}
		if due.After(c.Today) {
			out = append(out, c.NewTask(tt, due))
		}
	}
	return out
}

// zoneNumber parses the numeric part of a USDA zone label like "7a".
func zoneNumber(zone string) (int, bool) {
	i := 0
	for i < len(zone) && zone[i] >= '0' && zone[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(zone[:i])
	if err != nil {
		return 0, false
	}
	return n, true
}
