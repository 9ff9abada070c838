package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdantly/garden-care-backend/internal/care/domain"
)

func task(plantID string, tt domain.TaskType, due time.Time) domain.Task {
	return domain.Task{
		UserPlantID: plantID,
		TaskType:    tt,
		DueDate:     domain.Timestamp(due),
	}
}

func TestAssemble(t *testing.T) {
	mar1 := utcDate(2025, time.March, 1)
	mar2 := utcDate(2025, time.March, 2)

	t.Run("drops exact duplicate triples", func(t *testing.T) {
		in := []domain.Task{
			task("p1", domain.TaskWater, mar2),
			task("p1", domain.TaskWater, mar1),
			task("p1", domain.TaskWater, mar1),
		}
		out := Assemble(in)
		require.Len(t, out, 2)
	})

	t.Run("same date different type is not a duplicate", func(t *testing.T) {
		in := []domain.Task{
			task("p1", domain.TaskWater, mar1),
			task("p1", domain.TaskWeed, mar1),
		}
		assert.Len(t, Assemble(in), 2)
	})

	t.Run("sorts chronologically", func(t *testing.T) {
		in := []domain.Task{
			task("p1", domain.TaskWeed, mar2),
			task("p1", domain.TaskWater, mar1),
		}
		out := Assemble(in)
		require.Len(t, out, 2)
		assert.Equal(t, domain.TaskWater, out[0].TaskType)
		assert.Equal(t, domain.TaskWeed, out[1].TaskType)
	})

	t.Run("dedup is idempotent", func(t *testing.T) {
		in := []domain.Task{
			task("p1", domain.TaskWater, mar1),
			task("p1", domain.TaskWater, mar1),
			task("p1", domain.TaskMulch, mar2),
		}
		once := Assemble(in)
		twice := Assemble(once)
		assert.Equal(t, once, twice)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, Assemble(nil))
	})
}
