package schedule

import (
	"sort"

	"github.com/verdantly/garden-care-backend/internal/care/domain"
)

// Assemble merges generator outputs into one batch: exact duplicate
// (plant, type, due date) triples are dropped and the remainder is sorted
// chronologically. Running it over its own output is a no-op.
func Assemble(tasks []domain.Task) []domain.Task {
	seen := make(map[string]bool, len(tasks))
	out := make([]domain.Task, 0, len(tasks))

	for _, t := range tasks {
		key := t.DedupKey()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, t)
	}

	sort.SliceStable(out, func(i, j int) bool {
		di, dj := out[i].DueDate.Time(), out[j].DueDate.Time()
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return out[i].TaskType < out[j].TaskType
	})

	return out
}
