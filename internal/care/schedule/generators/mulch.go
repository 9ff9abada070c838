package generators

import (
	"time"

	"github.com/verdantly/garden-care-backend/internal/care/domain"
	"github.com/verdantly/garden-care-backend/internal/care/schedule"
)

// frostBufferDays spaces mulching off the frost dates. The same 10-day value
// doubles as the fertilizer safety spacing in the source rule set.
// TODO(product): confirm whether mulch and fertilizer spacing are meant to
// share this constant before changing either.
const frostBufferDays = 10

type mulch struct{}

func (mulch) Type() domain.TaskType { return domain.TaskMulch }

// Generate emits up to three mulching tasks: a spring layer shortly after
// last frost, a fall layer shortly before first frost, and a mid-July top-up
// that only applies to sandy coastal sites during the warm window.
func (mulch) Generate(c *schedule.Context) []domain.Task {
	var out []domain.Task
	year := c.Today.Year()
	lastFrost := schedule.DateFromDOY(year, c.Climate.LastFrostDOY)
	firstFrost := schedule.DateFromDOY(year, c.Climate.FirstFrostDOY)

	if due := c.Due(schedule.AddDays(lastFrost, frostBufferDays)); c.WithinHorizon(due) {
		out = append(out, c.NewTask(domain.TaskMulch, due))
	}

	if due := c.Due(schedule.AddDays(firstFrost, -frostBufferDays)); c.WithinHorizon(due) {
		out = append(out, c.NewTask(domain.TaskMulch, due))
	}

	if c.Climate.Region == domain.RegionCoastal && c.Garden.SoilTexture == domain.SoilSand {
		due := c.Due(time.Date(year, time.July, 15, 0, 0, 0, 0, time.UTC))
		if c.WithinHorizon(due) && c.Windows.Warm.Contains(due) {
			out = append(out, c.NewTask(domain.TaskMulch, due))
		}
	}

	return out
}

func init() { Register(mulch{}) }
