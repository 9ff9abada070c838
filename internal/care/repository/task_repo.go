package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/verdantly/garden-care-backend/internal/care/domain"
)

// TaskRepo is the downstream sink for generated task batches. A batch is
// inserted inside one transaction: all rows land or none do.
type TaskRepo struct {
	db *sql.DB
}

func NewTaskRepo(db *sql.DB) *TaskRepo {
	return &TaskRepo{db: db}
}

const insertTaskQuery = `
		INSERT INTO care_tasks (id, user_plant_id, task_type, due_date, completed)
		VALUES ($1, $2, $3, $4, $5)
	`

// InsertTasks writes a validated batch and returns the number of rows
// inserted. The table does not enforce the intra-batch uniqueness invariant;
// the assembler guarantees it before this call.
func (r *TaskRepo) InsertTasks(ctx context.Context, tasks []domain.Task) (int, error) {
	if len(tasks) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin insert tasks: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, insertTaskQuery)
	if err != nil {
		return 0, fmt.Errorf("prepare insert tasks: %w", err)
	}
	defer stmt.Close()

	for i := range tasks {
		if tasks[i].ID == "" {
			tasks[i].ID = uuid.New().String()
		}
		_, err := stmt.ExecContext(ctx,
			tasks[i].ID,
			tasks[i].UserPlantID,
			string(tasks[i].TaskType),
			tasks[i].DueDate.Time(),
			tasks[i].Completed,
		)
		if err != nil {
			return 0, fmt.Errorf("insert task %s/%s: %w", tasks[i].TaskType, tasks[i].DueDate, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit insert tasks: %w", err)
	}
	return len(tasks), nil
}
