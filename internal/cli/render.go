package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/yukikurage/task-tracker/internal/models"
	"github.com/yukikurage/task-tracker/internal/viewmodel"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	emptyStyle   = lipgloss.NewStyle().Bold(true).Padding(1, 2)
	titleStyle   = lipgloss.NewStyle().Bold(true)
	idStyle      = mutedStyle
	statusStyles = map[models.TaskStatus]lipgloss.Style{
		models.TaskStatusPending:    lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		models.TaskStatusInProgress: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		models.TaskStatusDone:       lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	}
	priorityStyles = map[models.TaskPriority]lipgloss.Style{
		models.TaskPriorityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		models.TaskPriorityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		models.TaskPriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
)

// RenderView writes the stats header and task rows, or the matching empty-state message
func RenderView(w io.Writer, view viewmodel.View) {
	if view.IsEmpty() {
		fmt.Fprintln(w, emptyStyle.Render("No tasks yet. Create one with `taskctl add`."))
		return
	}

	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("Your Tasks (%d)", view.TotalCount)))
	fmt.Fprintln(w, strings.Join([]string{
		statusStyles[models.TaskStatusPending].Render(fmt.Sprintf("%d Pending", view.Stats.Pending)),
		statusStyles[models.TaskStatusInProgress].Render(fmt.Sprintf("%d In Progress", view.Stats.InProgress)),
		statusStyles[models.TaskStatusDone].Render(fmt.Sprintf("%d Done", view.Stats.Done)),
	}, "  "))
	fmt.Fprintln(w)

	if view.NoMatches() {
		fmt.Fprintln(w, emptyStyle.Render("No tasks match your filter."))
		return
	}

	for _, task := range view.Tasks {
		fmt.Fprintln(w, renderRow(task))
	}
}

func renderRow(task models.Task) string {
	due := "no due date"
	if task.DueDate != nil {
		due = "due " + task.DueDate.Format(time.DateOnly)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		priorityStyles[task.Priority].Width(8).Render(string(task.Priority)),
		statusStyles[task.Status].Width(13).Render(string(task.Status)),
		titleStyle.Render(task.Title),
		mutedStyle.Render("  "+due+"  "),
		idStyle.Render(task.ID),
	)
}
