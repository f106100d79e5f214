package persistence

import (
	"context"
	"fmt"
	"strings"

	"github.com/ethan273/limn-systems-enterprise-sub010/internal/domain/schema"
	"github.com/ethan273/limn-systems-enterprise-sub010/internal/pkg/logger"

	"gorm.io/gorm"
)

type catalogInspector struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewCatalogInspector creates a schema.Inspector backed by the PostgreSQL
// catalog (information_schema and pg_indexes).
func NewCatalogInspector(db *gorm.DB, logger logger.Logger) (schema.Inspector, error) {
	return &catalogInspector{
		db:     db,
		logger: logger,
	}, nil
}

func (i *catalogInspector) TableExists(ctx context.Context, table string) (bool, error) {
	var count int64
	err := i.db.WithContext(ctx).Raw(
		"SELECT COUNT(*) FROM information_schema.tables WHERE table_schema = 'public' AND table_name = ?",
		table,
	).Scan(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check table %s: %w", table, err)
	}
	return count > 0, nil
}

func (i *catalogInspector) ColumnType(ctx context.Context, table, column string) (string, bool, error) {
	var dataType string
	err := i.db.WithContext(ctx).Raw(
		"SELECT data_type FROM information_schema.columns WHERE table_schema = 'public' AND table_name = ? AND column_name = ?",
		table, column,
	).Scan(&dataType).Error
	if err != nil {
		return "", false, fmt.Errorf("failed to check column %s.%s: %w", table, column, err)
	}
	if dataType == "" {
		return "", false, nil
	}
	return dataType, true, nil
}

func (i *catalogInspector) IndexExists(ctx context.Context, table, index string) (bool, error) {
	var count int64
	err := i.db.WithContext(ctx).Raw(
		"SELECT COUNT(*) FROM pg_indexes WHERE schemaname = 'public' AND tablename = ? AND indexname = ?",
		table, index,
	).Scan(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check index %s on %s: %w", index, table, err)
	}
	return count > 0, nil
}

func (i *catalogInspector) CountRows(ctx context.Context, table string) (int64, error) {
	if err := validateIdentifier(table); err != nil {
		return 0, err
	}

	var count int64
	err := i.db.WithContext(ctx).Raw(
		fmt.Sprintf(`SELECT COUNT(*) FROM %q`, table),
	).Scan(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count rows in %s: %w", table, err)
	}
	return count, nil
}

// validateIdentifier rejects table names that cannot be safely interpolated
// as a quoted identifier. Expectations files are trusted input, but a stray
// quote would still produce a confusing database error.
func validateIdentifier(name string) error {
	if name == "" || strings.ContainsAny(name, `"'; `) {
		return fmt.Errorf("invalid table identifier: %q", name)
	}
	return nil
}
