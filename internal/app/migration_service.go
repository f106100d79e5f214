package app

import (
	"context"
	"fmt"
	"time"

	"github.com/ethan273/limn-systems-enterprise-sub010/internal/domain/migration"
	"github.com/ethan273/limn-systems-enterprise-sub010/internal/pkg/logger"

	"github.com/google/uuid"
)

type migrationRunner struct {
	logger logger.Logger
}

// NewMigrationRunner creates a new instance of migration.Runner
func NewMigrationRunner(logger logger.Logger) (migration.Runner, error) {
	return &migrationRunner{
		logger: logger,
	}, nil
}

// Plan classifies statements without executing them.
func (r *migrationRunner) Plan(target, file string, statements []string) *migration.Report {
	report := newReport(target, file, true)
	for i, stmt := range statements {
		kind := migration.Classify(stmt)
		report.Statements = append(report.Statements, migration.StatementResult{
			Index:   i,
			Kind:    kind,
			Status:  migration.StatusPlanned,
			Summary: migration.Summary(stmt),
		})
		r.logger.Info("[dry-run] would execute ", kind, ": ", migration.Summary(stmt))
	}
	return report
}

// Apply executes statements strictly in file order on the given executor.
// "already exists" failures are idempotent no-ops; anything else aborts the
// run and leaves the remaining statements untouched.
func (r *migrationRunner) Apply(ctx context.Context, exec migration.Executor, target, file string, statements []string) (*migration.Report, error) {
	report := newReport(target, file, false)
	started := time.Now()

	for i, stmt := range statements {
		kind := migration.Classify(stmt)
		result := migration.StatementResult{
			Index:   i,
			Kind:    kind,
			Summary: migration.Summary(stmt),
		}

		_, err := exec.ExecContext(ctx, stmt)
		switch {
		case err == nil:
			result.Status = migration.StatusApplied
			report.Applied++
			r.logger.Info("Applied ", kind, ": ", result.Summary)
		case migration.IsAlreadyExists(err):
			result.Status = migration.StatusSkipped
			result.Error = err.Error()
			report.Skipped++
			r.logger.Warn("Skipped (already exists) ", kind, ": ", result.Summary)
		default:
			result.Status = migration.StatusFailed
			result.Error = err.Error()
			report.Failed++
			report.Statements = append(report.Statements, result)
			report.DurationMS = time.Since(started).Milliseconds()
			return report, fmt.Errorf("statement %d (%s) failed on %s: %w", i+1, kind, target, err)
		}

		report.Statements = append(report.Statements, result)
	}

	report.DurationMS = time.Since(started).Milliseconds()
	r.logger.Info("Migration run complete on ", target, ": ", report.Applied, " applied, ", report.Skipped, " skipped")
	return report, nil
}

func newReport(target, file string, dryRun bool) *migration.Report {
	return &migration.Report{
		RunID:     uuid.NewString(),
		Target:    target,
		File:      file,
		DryRun:    dryRun,
		StartedAt: time.Now().UTC(),
	}
}
