package audit

import (
	"context"
	"time"
)

// LogRepository defines the audit-log operations the cleanup needs.
type LogRepository interface {
	// CountOlderThan returns how many entries predate the cutoff.
	CountOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
	// DeleteOlderThan deletes at most limit entries predating the cutoff and
	// returns the number of rows removed.
	DeleteOlderThan(ctx context.Context, cutoff time.Time, limit int) (int64, error)
}

// CleanupService deletes expired audit log entries in bounded batches.
type CleanupService interface {
	Cleanup(ctx context.Context, target string, policy RetentionPolicy, dryRun bool) (*CleanupReport, error)
}
