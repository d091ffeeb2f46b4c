package database

import (
	"fmt"
	"log"

	"github.com/yukikurage/task-tracker/internal/models"
	"gorm.io/gorm"
)

// Columns the list view filters and sorts on
var taskIndexes = []struct {
	name   string
	column string
}{
	{"idx_tasks_status", "status"},
	{"idx_tasks_priority", "priority"},
	{"idx_tasks_due_date", "due_date"},
	{"idx_tasks_created_at", "created_at"},
}

// AddIndexes creates the task indexes that do not exist yet
func AddIndexes(db *gorm.DB) error {
	migrator := db.Migrator()

	for _, idx := range taskIndexes {
		if migrator.HasIndex(&models.Task{}, idx.name) {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON tasks (%s)", idx.name, idx.column)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		log.Printf("Created index %s on tasks(%s)", idx.name, idx.column)
	}

	return nil
}
