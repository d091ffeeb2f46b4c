package models

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var testNow = time.Date(2025, 10, 28, 9, 30, 0, 0, time.UTC)

func validDraft() TaskDraft {
	return TaskDraft{
		Title:       "Write report",
		Description: "Quarterly numbers",
	}
}

func requireValidationError(t *testing.T, err error, field, reason string) {
	t.Helper()

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr), "expected *ValidationError, got %v", err)
	assert.Equal(t, field, vErr.Field)
	assert.Equal(t, reason, vErr.Reason)
	assert.Equal(t, reason, err.Error())
}

func TestNewTask_Defaults(t *testing.T) {
	task, err := NewTask(TaskDraft{
		Title:       "  Write report  ",
		Description: "\tQuarterly numbers\n",
	}, testNow)
	require.NoError(t, err)

	assert.Equal(t, "Write report", task.Title)
	assert.Equal(t, "Quarterly numbers", task.Description)
	assert.Equal(t, TaskStatusPending, task.Status)
	assert.Equal(t, TaskPriorityMedium, task.Priority)
	assert.Nil(t, task.DueDate)
	assert.Equal(t, testNow, task.CreatedAt)
	assert.NotEmpty(t, task.ID)
}

func TestNewTask_ExplicitFields(t *testing.T) {
	draft := validDraft()
	draft.Status = "in-progress"
	draft.Priority = "high"
	draft.DueDate = "2025-11-01"

	task, err := NewTask(draft, testNow)
	require.NoError(t, err)

	assert.Equal(t, TaskStatusInProgress, task.Status)
	assert.Equal(t, TaskPriorityHigh, task.Priority)
	require.NotNil(t, task.DueDate)
	assert.Equal(t, time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC), *task.DueDate)
}

func TestNewTask_DueDateRFC3339(t *testing.T) {
	draft := validDraft()
	draft.DueDate = "2025-10-28T23:59:59Z"

	task, err := NewTask(draft, testNow)
	require.NoError(t, err)
	require.NotNil(t, task.DueDate)
	assert.Equal(t, time.Date(2025, 10, 28, 23, 59, 59, 0, time.UTC), *task.DueDate)
}

func TestNewTask_BlankDueDateIsNil(t *testing.T) {
	draft := validDraft()
	draft.DueDate = "   "

	task, err := NewTask(draft, testNow)
	require.NoError(t, err)
	assert.Nil(t, task.DueDate)
}

func TestNewTask_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *TaskDraft)
		field  string
		reason string
	}{
		{"empty title", func(d *TaskDraft) { d.Title = "" }, "title", "title required"},
		{"whitespace title", func(d *TaskDraft) { d.Title = " \t\n" }, "title", "title required"},
		{"empty description", func(d *TaskDraft) { d.Description = "" }, "description", "description required"},
		{"whitespace description", func(d *TaskDraft) { d.Description = "   " }, "description", "description required"},
		{"title too long", func(d *TaskDraft) { d.Title = strings.Repeat("a", 101) }, "title", "too long"},
		{"description too long", func(d *TaskDraft) { d.Description = strings.Repeat("b", 501) }, "description", "too long"},
		{"invalid status", func(d *TaskDraft) { d.Status = "archived" }, "status", "invalid status"},
		{"invalid priority", func(d *TaskDraft) { d.Priority = "urgent" }, "priority", "invalid priority"},
		{"status is case sensitive", func(d *TaskDraft) { d.Status = "Done" }, "status", "invalid status"},
		{"unparseable due date", func(d *TaskDraft) { d.DueDate = "next tuesday" }, "due_date", "invalid due date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validDraft()
			tt.mutate(&draft)

			task, err := NewTask(draft, testNow)
			assert.Nil(t, task)
			requireValidationError(t, err, tt.field, tt.reason)
		})
	}
}

func TestNewTask_LengthBoundaries(t *testing.T) {
	draft := validDraft()
	draft.Title = strings.Repeat("a", MaxTitleLength)
	draft.Description = strings.Repeat("b", MaxDescriptionLength)

	task, err := NewTask(draft, testNow)
	require.NoError(t, err)
	assert.Len(t, task.Title, MaxTitleLength)

	// Surrounding whitespace does not count toward the limit
	draft.Title = "  " + strings.Repeat("a", MaxTitleLength) + "  "
	_, err = NewTask(draft, testNow)
	require.NoError(t, err)

	// Multi-byte characters count once each
	draft.Title = strings.Repeat("é", MaxTitleLength)
	_, err = NewTask(draft, testNow)
	require.NoError(t, err)
}

func TestNewTask_TitleCheckedBeforeDescription(t *testing.T) {
	_, err := NewTask(TaskDraft{}, testNow)
	requireValidationError(t, err, "title", "title required")
}

func TestNewTask_UniqueIDs(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 200; i++ {
		task, err := NewTask(validDraft(), testNow)
		require.NoError(t, err)
		_, dup := seen[task.ID]
		require.False(t, dup, "duplicate id %s", task.ID)
		seen[task.ID] = struct{}{}
	}
}

func TestTaskPriority_Rank(t *testing.T) {
	assert.Equal(t, 3, TaskPriorityHigh.Rank())
	assert.Equal(t, 2, TaskPriorityMedium.Rank())
	assert.Equal(t, 1, TaskPriorityLow.Rank())
	assert.Equal(t, 0, TaskPriority("urgent").Rank())
}

func TestNewTask_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		title := rapid.StringMatching(`[ \t]{0,3}[a-zA-Z0-9 ]{0,120}[ \t]{0,3}`).Draw(t, "title")
		description := rapid.StringMatching(`[ ]{0,2}[a-z ]{0,40}`).Draw(t, "description")
		status := rapid.SampledFrom([]string{"", "pending", "in-progress", "done"}).Draw(t, "status")
		priority := rapid.SampledFrom([]string{"", "low", "medium", "high"}).Draw(t, "priority")

		task, err := NewTask(TaskDraft{
			Title:       title,
			Description: description,
			Status:      status,
			Priority:    priority,
		}, testNow)

		trimmedTitle := strings.TrimSpace(title)
		trimmedDescription := strings.TrimSpace(description)
		switch {
		case trimmedTitle == "":
			if err == nil || err.Error() != "title required" {
				t.Fatalf("expected title required, got %v", err)
			}
			return
		case len(trimmedTitle) > MaxTitleLength:
			if err == nil || err.Error() != "too long" {
				t.Fatalf("expected too long, got %v", err)
			}
			return
		case trimmedDescription == "":
			if err == nil || err.Error() != "description required" {
				t.Fatalf("expected description required, got %v", err)
			}
			return
		}

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if task.Title != trimmedTitle || task.Description != trimmedDescription {
			t.Fatalf("fields not trimmed: %q %q", task.Title, task.Description)
		}
		if status == "" && task.Status != TaskStatusPending {
			t.Fatalf("status default = %q", task.Status)
		}
		if priority == "" && task.Priority != TaskPriorityMedium {
			t.Fatalf("priority default = %q", task.Priority)
		}
		if status != "" && string(task.Status) != status {
			t.Fatalf("status = %q, want %q", task.Status, status)
		}
		if priority != "" && string(task.Priority) != priority {
			t.Fatalf("priority = %q, want %q", task.Priority, priority)
		}
	})
}
