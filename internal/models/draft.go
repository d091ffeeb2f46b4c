package models

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 500
)

// Accepted due date layouts, tried in order
var dueDateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
}

// TaskDraft is unvalidated user input destined to become a Task
type TaskDraft struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	DueDate     string `json:"due_date"`
}

// ValidationError reports the first field of a draft that failed validation
type ValidationError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return e.Reason
}

func invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// NewTask validates a draft and builds a Task with a fresh ID and CreatedAt = now.
// Any single field failure rejects the whole draft.
func NewTask(draft TaskDraft, now time.Time) (*Task, error) {
	title, err := requiredText("title", draft.Title, MaxTitleLength)
	if err != nil {
		return nil, err
	}

	description, err := requiredText("description", draft.Description, MaxDescriptionLength)
	if err != nil {
		return nil, err
	}

	status := TaskStatusPending
	if draft.Status != "" {
		status = TaskStatus(draft.Status)
		if !status.Valid() {
			return nil, invalid("status", "invalid status")
		}
	}

	priority := TaskPriorityMedium
	if draft.Priority != "" {
		priority = TaskPriority(draft.Priority)
		if !priority.Valid() {
			return nil, invalid("priority", "invalid priority")
		}
	}

	dueDate, err := ParseDueDate(draft.DueDate)
	if err != nil {
		return nil, err
	}

	return &Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Status:      status,
		Priority:    priority,
		DueDate:     dueDate,
		CreatedAt:   now,
	}, nil
}

// ParseDueDate maps an empty value to nil and otherwise requires a calendar date
func ParseDueDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, nil
		}
	}

	return nil, invalid("due_date", "invalid due date")
}

func requiredText(field, value string, maxLen int) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", invalid(field, field+" required")
	}
	if utf8.RuneCountInString(value) > maxLen {
		return "", invalid(field, "too long")
	}
	return value, nil
}
