package generators

import (
	"github.com/verdantly/garden-care-backend/internal/care/domain"
	"github.com/verdantly/garden-care-backend/internal/care/schedule"
)

// Generator produces the candidate tasks of one task type for one plant.
// Implementations are pure functions over the shared generation context.
type Generator interface {
	Type() domain.TaskType
	Generate(c *schedule.Context) []domain.Task
}

var registry []Generator

func Register(g Generator) { registry = append(registry, g) }

// All returns the registered generators in registration order.
func All() []Generator {
	return append([]Generator(nil), registry...)
}

// GenerateAll runs every registered generator over the context and
// concatenates their outputs. The result is not yet deduplicated or sorted;
// that is the assembler's job.
func GenerateAll(c *schedule.Context) []domain.Task {
	var out []domain.Task
	for _, g := range registry {
		out = append(out, g.Generate(c)...)
	}
	return out
}
