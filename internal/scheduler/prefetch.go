package scheduler

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/Rey-han-24/Noor-ul-ilm-sub001/internal/config"
	"github.com/Rey-han-24/Noor-ul-ilm-sub001/internal/hadith"
	"github.com/Rey-han-24/Noor-ul-ilm-sub001/internal/tasks"
)

// historyCleanupSchedule runs the retention cleanup once a night.
const historyCleanupSchedule = "0 3 * * *"

// PrefetchScheduler manages periodic cache warming for configured hadith
// collections and the nightly reading history cleanup. Jobs are enqueued on
// the task queue rather than executed inline so retries and timeouts follow
// the queue configuration.
type PrefetchScheduler struct {
	taskClient *tasks.Client
	config     config.Prefetch
	retention  int

	cron      *cron.Cron
	entryID   cron.EntryID
	mu        sync.RWMutex
	isRunning bool
}

// NewPrefetchScheduler creates a new scheduler instance.
func NewPrefetchScheduler(taskClient *tasks.Client, cfg config.Prefetch, historyRetentionDays int) *PrefetchScheduler {
	return &PrefetchScheduler{
		taskClient: taskClient,
		config:     cfg,
		retention:  historyRetentionDays,
		cron:       cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the scheduler if prefetching is enabled.
func (s *PrefetchScheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if !s.config.Enabled {
		log.Printf("Prefetch scheduler: disabled")
		return nil
	}

	collections := s.supportedCollections()
	if len(collections) == 0 {
		log.Printf("Prefetch scheduler: no supported collections configured, skipping")
		return nil
	}

	entryID, err := s.cron.AddFunc(s.config.Schedule, func() {
		s.enqueuePrefetch(collections)
	})
	if err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", s.config.Schedule, err)
	}
	s.entryID = entryID

	if _, err := s.cron.AddFunc(historyCleanupSchedule, s.enqueueHistoryCleanup); err != nil {
		return fmt.Errorf("failed to schedule history cleanup: %w", err)
	}

	s.cron.Start()
	s.isRunning = true

	log.Printf("Prefetch scheduler: started with schedule '%s' for collections %v",
		s.config.Schedule, collections)

	return nil
}

// Stop gracefully stops the scheduler, waiting for running jobs to complete.
func (s *PrefetchScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.isRunning = false

	log.Printf("Prefetch scheduler: stopped")
}

// RunNow triggers an immediate prefetch of the configured collections.
func (s *PrefetchScheduler) RunNow() {
	s.enqueuePrefetch(s.supportedCollections())
}

// IsRunning returns whether the scheduler is active.
func (s *PrefetchScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// GetNextRunTime returns when the next prefetch will occur.
func (s *PrefetchScheduler) GetNextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}

	for _, entry := range s.cron.Entries() {
		if entry.ID == s.entryID {
			t := entry.Next
			return &t
		}
	}
	return nil
}

// supportedCollections filters the configured collection IDs down to the
// ones the resolver actually knows.
func (s *PrefetchScheduler) supportedCollections() []string {
	var supported []string
	for _, id := range s.config.Collections {
		if !hadith.IsSupported(id) {
			log.Printf("Prefetch scheduler: skipping unknown collection '%s'", id)
			continue
		}
		supported = append(supported, id)
	}
	return supported
}

func (s *PrefetchScheduler) enqueuePrefetch(collections []string) {
	for _, id := range collections {
		ids, err := s.taskClient.Add(tasks.PrefetchCollectionTask{CollectionID: id}).Save()
		if err != nil {
			log.Printf("Prefetch scheduler: failed to enqueue prefetch for '%s': %v", id, err)
			continue
		}
		log.Printf("Prefetch scheduler: enqueued prefetch for '%s' (task %v)", id, ids)
	}
}

func (s *PrefetchScheduler) enqueueHistoryCleanup() {
	_, err := s.taskClient.Add(tasks.CleanupHistoryTask{RetentionDays: s.retention}).Save()
	if err != nil {
		log.Printf("Prefetch scheduler: failed to enqueue history cleanup: %v", err)
		return
	}
	log.Printf("Prefetch scheduler: enqueued history cleanup (retention %d days)", s.retention)
}
