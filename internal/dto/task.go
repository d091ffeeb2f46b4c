package dto

import (
	"time"

	"github.com/yukikurage/task-tracker/internal/models"
	"github.com/yukikurage/task-tracker/internal/viewmodel"
)

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Status      models.TaskStatus   `json:"status"`
	Priority    models.TaskPriority `json:"priority"`
	DueDate     *time.Time          `json:"due_date"`
	CreatedAt   time.Time           `json:"created_at"`
}

// TaskViewResponse is the filtered, sorted list plus statistics
type TaskViewResponse struct {
	Tasks         []TaskDTO        `json:"tasks"`
	Stats         viewmodel.Stats  `json:"stats"`
	TotalCount    int              `json:"total_count"`
	FilteredCount int              `json:"filtered_count"`
	Empty         bool             `json:"empty"`
	NoMatches     bool             `json:"no_matches"`
	Filter        viewmodel.Filter `json:"filter"`
	SortBy        viewmodel.SortBy `json:"sort_by"`
}

// CreateTaskRequest is the draft submitted by the client
type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	DueDate     *string `json:"due_date"`
}

// GenerateTasksRequest carries free-form text for draft suggestions
type GenerateTasksRequest struct {
	Text string `json:"text" binding:"required"`
}

// ToDraft converts the request to a TaskDraft; a null due date means none
func (r CreateTaskRequest) ToDraft() models.TaskDraft {
	draft := models.TaskDraft{
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		Priority:    r.Priority,
	}
	if r.DueDate != nil {
		draft.DueDate = *r.DueDate
	}
	return draft
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		Priority:    task.Priority,
		DueDate:     task.DueDate,
		CreatedAt:   task.CreatedAt,
	}
}

// ToTaskViewResponse converts a computed view to its API shape
func ToTaskViewResponse(view viewmodel.View, filter viewmodel.Filter, sortBy viewmodel.SortBy) TaskViewResponse {
	items := make([]TaskDTO, len(view.Tasks))
	for i, task := range view.Tasks {
		items[i] = ToTaskDTO(task)
	}

	return TaskViewResponse{
		Tasks:         items,
		Stats:         view.Stats,
		TotalCount:    view.TotalCount,
		FilteredCount: view.FilteredCount,
		Empty:         view.IsEmpty(),
		NoMatches:     view.NoMatches(),
		Filter:        filter,
		SortBy:        sortBy,
	}
}
