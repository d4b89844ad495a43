package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"
)

// HistoryCleaner provides the ability to delete old reading history entries.
type HistoryCleaner interface {
	DeleteOlderThan(retention time.Duration) (int64, error)
}

// CleanupHistoryTask removes reading history entries older than the
// configured retention period.
type CleanupHistoryTask struct {
	RetentionDays int `json:"retention_days"`
}

// Config returns the queue configuration for history cleanup tasks.
func (t CleanupHistoryTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "cleanup_history",
		MaxAttempts: 3,
		Backoff:     5 * time.Minute,
		Timeout:     2 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// CleanupHistoryProcessor creates a processor function for CleanupHistoryTask.
func CleanupHistoryProcessor(cleaner HistoryCleaner) backlite.QueueProcessor[CleanupHistoryTask] {
	return func(ctx context.Context, task CleanupHistoryTask) error {
		if cleaner == nil {
			return fmt.Errorf("history cleaner not configured")
		}

		retentionDays := task.RetentionDays
		if retentionDays <= 0 {
			retentionDays = 90
		}
		retention := time.Duration(retentionDays) * 24 * time.Hour

		deleted, err := cleaner.DeleteOlderThan(retention)
		if err != nil {
			return fmt.Errorf("cleanup history: %w", err)
		}

		log.Printf("[TASK] Cleaned up %d history entries older than %d days", deleted, retentionDays)
		return nil
	}
}

// NewCleanupHistoryQueue creates a backlite queue for history cleanup tasks.
func NewCleanupHistoryQueue(cleaner HistoryCleaner) backlite.Queue {
	return backlite.NewQueue(CleanupHistoryProcessor(cleaner))
}
