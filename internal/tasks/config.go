package tasks

import "time"

// Config tunes the queue behind collection prefetch and history cleanup.
type Config struct {
	// Workers is how many tasks may run at once.
	Workers int

	// MaxRetries caps attempts before a task is marked failed for good.
	MaxRetries int

	// RetryDelay is the wait between attempts.
	RetryDelay time.Duration

	// TaskTimeout bounds a single execution.
	TaskTimeout time.Duration

	// ReleaseAfter returns a claimed but stalled task to the queue.
	ReleaseAfter time.Duration

	// CleanupInterval is how often finished tasks get purged.
	CleanupInterval time.Duration

	// RetentionDuration is how long finished tasks stay visible in the
	// admin task endpoints before cleanup removes them.
	RetentionDuration time.Duration
}

// DefaultConfig returns defaults sized for a single-node deployment. A full
// collection prefetch fits comfortably inside the five minute timeout.
func DefaultConfig() Config {
	return Config{
		Workers:           2,
		MaxRetries:        3,
		RetryDelay:        1 * time.Minute,
		TaskTimeout:       5 * time.Minute,
		ReleaseAfter:      15 * time.Minute,
		CleanupInterval:   1 * time.Hour,
		RetentionDuration: 24 * time.Hour,
	}
}
