package repository

import (
	"github.com/yukikurage/task-tracker/internal/models"
)

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create inserts a validated task
	Create(task *models.Task) error

	// FindByID finds a task by ID
	FindByID(id string) (*models.Task, error)

	// List returns the full task collection in no particular order
	List() ([]models.Task, error)

	// Delete removes a task and reports whether a row was removed
	Delete(id string) (bool, error)
}
