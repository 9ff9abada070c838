package schedule

import (
	"fmt"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/verdantly/garden-care-backend/internal/care/domain"
)

// validatedTask is the shape checked before a batch is accepted: the closed
// task-type enum plus the strict millisecond-UTC due date string.
type validatedTask struct {
	UserPlantID string `validate:"required"`
	TaskType    string `validate:"required,tasktype"`
	DueDate     string `validate:"required,utcmillis"`
}

var timestampRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}Z$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// registration only fails for empty tag names
	_ = v.RegisterValidation("tasktype", func(fl validator.FieldLevel) bool {
		return domain.TaskType(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("utcmillis", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if !timestampRe.MatchString(s) {
			return false
		}
		_, err := time.Parse(domain.TimestampLayout, s)
		return err == nil
	})

	return v
}

// ValidateBatch enforces the task schema over a whole batch. Any violation
// rejects the entire batch; there is no partial acceptance.
func ValidateBatch(tasks []domain.Task) error {
	for i, t := range tasks {
		vt := validatedTask{
			UserPlantID: t.UserPlantID,
			TaskType:    string(t.TaskType),
			DueDate:     t.DueDate.String(),
		}
		if err := validate.Struct(vt); err != nil {
			return fmt.Errorf("%w: task %d (%s @ %s): %v",
				domain.ErrInvalidTask, i, t.TaskType, t.DueDate, err)
		}
	}
	return nil
}
