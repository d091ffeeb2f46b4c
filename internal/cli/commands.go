package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yukikurage/task-tracker/internal/models"
	"github.com/yukikurage/task-tracker/internal/services"
	"github.com/yukikurage/task-tracker/internal/viewmodel"
)

func newListCommand(open ServiceFactory) *cobra.Command {
	var rawFilter, rawSortBy string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show tasks with status statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := viewmodel.ParseFilter(rawFilter)
			if !filter.Valid() {
				return fmt.Errorf("invalid filter %q", rawFilter)
			}
			sortBy := viewmodel.ParseSortBy(rawSortBy)
			if !sortBy.Valid() {
				return fmt.Errorf("invalid sort %q", rawSortBy)
			}

			svc, err := open()
			if err != nil {
				return err
			}

			view, err := svc.ListTasks(filter, sortBy)
			if err != nil {
				return err
			}

			RenderView(cmd.OutOrStdout(), view)
			return nil
		},
	}

	cmd.Flags().StringVarP(&rawFilter, "filter", "f", string(viewmodel.FilterAll), "all, pending, in-progress, done, low, medium or high")
	cmd.Flags().StringVarP(&rawSortBy, "sort", "s", string(viewmodel.SortByCreatedAt), "createdAt, dueDate or priority")

	return cmd
}

func newAddCommand(open ServiceFactory) *cobra.Command {
	var draft models.TaskDraft

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := open()
			if err != nil {
				return err
			}

			task, err := svc.CreateTask(draft)
			if err != nil {
				var vErr *models.ValidationError
				if errors.As(err, &vErr) {
					return fmt.Errorf("%s: %s", vErr.Field, vErr.Reason)
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created task %s\n", task.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&draft.Title, "title", "t", "", "task title (required)")
	cmd.Flags().StringVarP(&draft.Description, "description", "d", "", "task description (required)")
	cmd.Flags().StringVar(&draft.Status, "status", "", "pending, in-progress or done")
	cmd.Flags().StringVarP(&draft.Priority, "priority", "p", "", "low, medium or high")
	cmd.Flags().StringVar(&draft.DueDate, "due", "", "due date, YYYY-MM-DD")

	return cmd
}

func newDeleteCommand(open ServiceFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := open()
			if err != nil {
				return err
			}

			if err := svc.DeleteTask(args[0]); err != nil {
				if errors.Is(err, services.ErrTaskNotFound) {
					return fmt.Errorf("task %s not found", args[0])
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %s\n", args[0])
			return nil
		},
	}
}
