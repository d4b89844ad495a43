package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"

	"github.com/Rey-han-24/Noor-ul-ilm-sub001/internal/hadith"
)

// CollectionWarmer provides the resolution calls used to warm the hadith cache.
type CollectionWarmer interface {
	CollectionBooks(ctx context.Context, collectionID string) []hadith.BookInfo
	BookHadiths(ctx context.Context, collectionID string, bookNumber, page, limit int) hadith.Page
}

// PrefetchCollectionTask warms the hadith cache for one collection so the
// first reader after a cache expiry does not pay the full CDN fetch.
type PrefetchCollectionTask struct {
	CollectionID string `json:"collection_id"`
}

// Config returns the queue configuration for prefetch tasks.
func (t PrefetchCollectionTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "prefetch_collection",
		MaxAttempts: 3,
		Backoff:     5 * time.Minute,
		Timeout:     10 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// PrefetchCollectionProcessor creates a processor function for PrefetchCollectionTask.
func PrefetchCollectionProcessor(warmer CollectionWarmer) backlite.QueueProcessor[PrefetchCollectionTask] {
	return func(ctx context.Context, task PrefetchCollectionTask) error {
		if warmer == nil {
			return fmt.Errorf("collection warmer not configured")
		}
		if !hadith.IsSupported(task.CollectionID) {
			return fmt.Errorf("unsupported collection: %s", task.CollectionID)
		}

		books := warmer.CollectionBooks(ctx, task.CollectionID)

		// One page request is enough to pull the whole collection into
		// the cache; the resolver caches the full joined dataset.
		page := warmer.BookHadiths(ctx, task.CollectionID, 1, 1, 1)

		log.Printf("[TASK] Prefetched collection %s: %d books, %d hadiths cached",
			task.CollectionID, len(books), page.Total)
		return nil
	}
}

// NewPrefetchCollectionQueue creates a backlite queue for prefetch tasks.
func NewPrefetchCollectionQueue(warmer CollectionWarmer) backlite.Queue {
	return backlite.NewQueue(PrefetchCollectionProcessor(warmer))
}
