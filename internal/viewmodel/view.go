// Package viewmodel derives the filtered, sorted task list and status
// statistics shown to the user. Compute is a pure function of its inputs.
package viewmodel

import (
	"slices"
	"strings"

	"github.com/yukikurage/task-tracker/internal/models"
)

// Filter narrows which tasks are displayed. Any value other than FilterAll keeps
// a task when either its status or its priority equals the filter value.
type Filter string

const (
	FilterAll        Filter = "all"
	FilterPending    Filter = Filter(models.TaskStatusPending)
	FilterInProgress Filter = Filter(models.TaskStatusInProgress)
	FilterDone       Filter = Filter(models.TaskStatusDone)
	FilterLow        Filter = Filter(models.TaskPriorityLow)
	FilterMedium     Filter = Filter(models.TaskPriorityMedium)
	FilterHigh       Filter = Filter(models.TaskPriorityHigh)
)

var filters = []Filter{FilterAll, FilterPending, FilterInProgress, FilterDone, FilterLow, FilterMedium, FilterHigh}

// Valid reports whether f is an enumerated filter
func (f Filter) Valid() bool {
	return slices.Contains(filters, f)
}

// SortBy selects the ordering criterion
type SortBy string

const (
	SortByCreatedAt SortBy = "createdAt"
	SortByDueDate   SortBy = "dueDate"
	SortByPriority  SortBy = "priority"
)

var sortKeys = []SortBy{SortByCreatedAt, SortByDueDate, SortByPriority}

// Valid reports whether s is an enumerated sort key
func (s SortBy) Valid() bool {
	return slices.Contains(sortKeys, s)
}

// ParseFilter trims the raw value and defaults an empty one to FilterAll
func ParseFilter(raw string) Filter {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return FilterAll
	}
	return Filter(raw)
}

// ParseSortBy trims the raw value and defaults an empty one to SortByCreatedAt
func ParseSortBy(raw string) SortBy {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return SortByCreatedAt
	}
	return SortBy(raw)
}

// Stats counts tasks per status over the whole collection
type Stats struct {
	Pending    int `json:"pending"`
	InProgress int `json:"in-progress"`
	Done       int `json:"done"`
}

// Total returns the number of tasks counted
func (s Stats) Total() int {
	return s.Pending + s.InProgress + s.Done
}

// View is the projection handed to the presentation layer
type View struct {
	Tasks         []models.Task
	Stats         Stats
	TotalCount    int
	FilteredCount int
}

// IsEmpty reports that the collection itself holds no tasks
func (v View) IsEmpty() bool {
	return v.TotalCount == 0
}

// NoMatches reports that tasks exist but none pass the filter
func (v View) NoMatches() bool {
	return v.FilteredCount == 0 && v.TotalCount > 0
}

// Compute filters and sorts tasks and counts statuses. The input slice is not modified.
func Compute(tasks []models.Task, filter Filter, sortBy SortBy) View {
	result := make([]models.Task, 0, len(tasks))
	for _, task := range tasks {
		if matches(task, filter) {
			result = append(result, task)
		}
	}

	slices.SortStableFunc(result, comparator(sortBy))

	return View{
		Tasks:         result,
		Stats:         countStatuses(tasks),
		TotalCount:    len(tasks),
		FilteredCount: len(result),
	}
}

func matches(task models.Task, filter Filter) bool {
	if filter == FilterAll {
		return true
	}
	return string(task.Status) == string(filter) || string(task.Priority) == string(filter)
}

func comparator(sortBy SortBy) func(a, b models.Task) int {
	switch sortBy {
	case SortByCreatedAt:
		return func(a, b models.Task) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		}
	case SortByDueDate:
		return compareDueDate
	case SortByPriority:
		return func(a, b models.Task) int {
			return b.Priority.Rank() - a.Priority.Rank()
		}
	default:
		return func(a, b models.Task) int { return 0 }
	}
}

// compareDueDate orders ascending by due date; undated tasks go after dated ones
func compareDueDate(a, b models.Task) int {
	switch {
	case a.DueDate == nil && b.DueDate == nil:
		return 0
	case a.DueDate == nil:
		return 1
	case b.DueDate == nil:
		return -1
	}
	return a.DueDate.Compare(*b.DueDate)
}

func countStatuses(tasks []models.Task) Stats {
	var stats Stats
	for _, task := range tasks {
		switch task.Status {
		case models.TaskStatusPending:
			stats.Pending++
		case models.TaskStatusInProgress:
			stats.InProgress++
		case models.TaskStatusDone:
			stats.Done++
		}
	}
	return stats
}
