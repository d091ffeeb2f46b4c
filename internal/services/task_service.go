package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/yukikurage/task-tracker/internal/models"
	"github.com/yukikurage/task-tracker/internal/repository"
	"github.com/yukikurage/task-tracker/internal/viewmodel"
	"gorm.io/gorm"
)

// MaxSuggestedDrafts caps how many AI drafts a single request may return
const MaxSuggestedDrafts = 20

var (
	ErrTaskNotFound           = errors.New("task not found")
	ErrAIServiceNotConfigured = errors.New("AI service is not configured")
	ErrAINoTasksGenerated     = errors.New("AI did not generate any tasks")
	ErrAINoValidTasks         = errors.New("no valid tasks could be created from AI output")
)

// DraftSuggester proposes task drafts from free-form text
type DraftSuggester interface {
	SuggestDrafts(ctx context.Context, text string) ([]models.TaskDraft, error)
}

// TaskService handles task business logic
type TaskService struct {
	taskRepo  repository.TaskRepository
	suggester DraftSuggester
	now       func() time.Time
}

// NewTaskService creates a new TaskService. suggester may be nil.
func NewTaskService(taskRepo repository.TaskRepository, suggester DraftSuggester) *TaskService {
	return &TaskService{
		taskRepo:  taskRepo,
		suggester: suggester,
		now:       time.Now,
	}
}

// WithClock replaces the time source used for CreatedAt
func (s *TaskService) WithClock(now func() time.Time) *TaskService {
	s.now = now
	return s
}

// ListTasks loads the current collection and projects it through the view model
func (s *TaskService) ListTasks(filter viewmodel.Filter, sortBy viewmodel.SortBy) (viewmodel.View, error) {
	tasks, err := s.taskRepo.List()
	if err != nil {
		return viewmodel.View{}, fmt.Errorf("failed to list tasks: %w", err)
	}

	return viewmodel.Compute(tasks, filter, sortBy), nil
}

// GetTask returns a single task
func (s *TaskService) GetTask(id string) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	return task, nil
}

// CreateTask validates a draft and stores the resulting task.
// Validation failures are returned as *models.ValidationError.
func (s *TaskService) CreateTask(draft models.TaskDraft) (*models.Task, error) {
	task, err := models.NewTask(draft, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// DeleteTask removes a task. Failures are reported as-is; nothing is retried.
func (s *TaskService) DeleteTask(id string) error {
	deleted, err := s.taskRepo.Delete(id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if !deleted {
		return ErrTaskNotFound
	}

	return nil
}

// SuggestDrafts asks the AI for drafts and keeps only those that would pass validation
func (s *TaskService) SuggestDrafts(ctx context.Context, text string) ([]models.TaskDraft, error) {
	if s.suggester == nil {
		return nil, ErrAIServiceNotConfigured
	}

	drafts, err := s.suggester.SuggestDrafts(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tasks: %w", err)
	}

	if len(drafts) == 0 {
		return nil, ErrAINoTasksGenerated
	}
	if len(drafts) > MaxSuggestedDrafts {
		return nil, fmt.Errorf("AI generated too many tasks (max %d)", MaxSuggestedDrafts)
	}

	now := s.now()
	valid := make([]models.TaskDraft, 0, len(drafts))
	for _, draft := range drafts {
		task, err := models.NewTask(draft, now)
		if err != nil {
			continue
		}

		// Hand back the normalized fields so the client submits what was checked
		normalized := models.TaskDraft{
			Title:       task.Title,
			Description: task.Description,
			Status:      string(task.Status),
			Priority:    string(task.Priority),
		}
		if task.DueDate != nil {
			normalized.DueDate = task.DueDate.Format(time.DateOnly)
		}
		valid = append(valid, normalized)
	}

	if len(valid) == 0 {
		return nil, ErrAINoValidTasks
	}

	return valid, nil
}
