package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/ethan273/limn-systems-enterprise-sub010/internal/domain/audit"
	"github.com/ethan273/limn-systems-enterprise-sub010/internal/infrastructure/persistence/models"
	"github.com/ethan273/limn-systems-enterprise-sub010/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormAuditLogRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormAuditLogRepository creates a new GORM-based LogRepository implementation
func NewGormAuditLogRepository(db *gorm.DB, logger logger.Logger) (audit.LogRepository, error) {
	return &gormAuditLogRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormAuditLogRepository) CountOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.AuditLogModel{}).
		Where("created_at < ?", cutoff).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count audit logs: %w", err)
	}
	return count, nil
}

func (r *gormAuditLogRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time, limit int) (int64, error) {
	// DELETE ... LIMIT is not standard Postgres; bound the batch via an id
	// subquery instead.
	result := r.db.WithContext(ctx).Exec(
		"DELETE FROM audit_logs WHERE id IN (SELECT id FROM audit_logs WHERE created_at < ? ORDER BY created_at LIMIT ?)",
		cutoff, limit,
	)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete audit logs: %w", result.Error)
	}

	if result.RowsAffected > 0 {
		r.logger.Info("Deleted ", result.RowsAffected, " audit log entries older than ", cutoff.Format(time.RFC3339))
	}
	return result.RowsAffected, nil
}
