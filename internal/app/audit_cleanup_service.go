package app

import (
	"context"
	"fmt"
	"time"

	"github.com/ethan273/limn-systems-enterprise-sub010/internal/domain/audit"
	"github.com/ethan273/limn-systems-enterprise-sub010/internal/pkg/logger"
)

type auditCleanupService struct {
	repository audit.LogRepository
	logger     logger.Logger
	now        func() time.Time
}

// NewAuditCleanupService creates a new instance of audit.CleanupService
func NewAuditCleanupService(repository audit.LogRepository, logger logger.Logger) (audit.CleanupService, error) {
	return &auditCleanupService{
		repository: repository,
		logger:     logger,
		now:        time.Now,
	}, nil
}

// Cleanup deletes audit log entries older than the retention window in
// bounded batches. A dry run only counts eligible rows. A batch failure
// stops the run; already deleted batches are not compensated.
func (s *auditCleanupService) Cleanup(ctx context.Context, target string, policy audit.RetentionPolicy, dryRun bool) (*audit.CleanupReport, error) {
	if policy.RetentionDays < 1 {
		return nil, fmt.Errorf("retention days must be at least 1, got %d", policy.RetentionDays)
	}
	if policy.BatchSize < 1 {
		return nil, fmt.Errorf("batch size must be at least 1, got %d", policy.BatchSize)
	}

	cutoff := policy.Cutoff(s.now().UTC())
	report := &audit.CleanupReport{
		Target: target,
		Cutoff: cutoff,
		DryRun: dryRun,
	}

	eligible, err := s.repository.CountOlderThan(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to count eligible audit logs: %w", err)
	}
	report.Eligible = eligible
	s.logger.Info(eligible, " audit log entries older than ", cutoff.Format(time.RFC3339), " on ", target)

	if dryRun || eligible == 0 {
		return report, nil
	}

	for {
		deleted, err := s.repository.DeleteOlderThan(ctx, cutoff, policy.BatchSize)
		if err != nil {
			// No rollback of earlier batches: the summary carries the mixed
			// deleted/remaining state.
			report.Failed++
			s.logger.Error("audit cleanup batch failed: ", err)
			return report, fmt.Errorf("audit cleanup aborted after %d batch(es): %w", report.Batches, err)
		}
		if deleted == 0 {
			break
		}
		report.Deleted += deleted
		report.Batches++
	}

	s.logger.Info("Audit cleanup on ", target, " removed ", report.Deleted, " entries in ", report.Batches, " batch(es)")
	return report, nil
}
