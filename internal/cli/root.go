// Package cli implements taskctl, a terminal front end over the same task
// service the HTTP API uses.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yukikurage/task-tracker/internal/config"
	"github.com/yukikurage/task-tracker/internal/database"
	"github.com/yukikurage/task-tracker/internal/repository"
	"github.com/yukikurage/task-tracker/internal/services"
)

// ServiceFactory opens the task service a command operates on
type ServiceFactory func() (*services.TaskService, error)

// NewRootCommand builds the taskctl command tree
func NewRootCommand(open ServiceFactory) *cobra.Command {
	root := &cobra.Command{
		Use:           "taskctl",
		Short:         "Create, list and delete tasks from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newListCommand(open),
		newAddCommand(open),
		newDeleteCommand(open),
		newMigrateCommand(),
	)

	return root
}

// OpenDatabaseService connects using the environment configuration and
// migrates the schema before handing back a service
func OpenDatabaseService() (*services.TaskService, error) {
	cfg := config.Load()
	if err := database.Connect(cfg); err != nil {
		return nil, err
	}
	if err := database.Migrate(); err != nil {
		return nil, err
	}

	return services.NewTaskService(repository.NewTaskRepository(database.GetDB()), nil), nil
}

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the tasks table and its indexes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if err := database.Connect(cfg); err != nil {
				return err
			}
			if err := database.Migrate(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied")
			return nil
		},
	}
}
