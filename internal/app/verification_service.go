package app

import (
	"context"
	"fmt"

	"github.com/ethan273/limn-systems-enterprise-sub010/internal/domain/schema"
	"github.com/ethan273/limn-systems-enterprise-sub010/internal/pkg/logger"
)

type verificationService struct {
	inspector schema.Inspector
	logger    logger.Logger
}

// NewVerificationService creates a new instance of schema.Verifier
func NewVerificationService(inspector schema.Inspector, logger logger.Logger) (schema.Verifier, error) {
	return &verificationService{
		inspector: inspector,
		logger:    logger,
	}, nil
}

// Verify re-queries the database catalog and checks every expectation.
// Catalog query errors are fatal; a failed expectation is recorded and
// checking continues.
func (s *verificationService) Verify(ctx context.Context, target string, expectations *schema.Expectations) (*schema.VerificationReport, error) {
	report := &schema.VerificationReport{Target: target}

	for _, table := range expectations.Tables {
		exists, err := s.inspector.TableExists(ctx, table.Name)
		if err != nil {
			return nil, err
		}
		if !exists {
			s.record(report, schema.CheckResult{
				Object: "table " + table.Name,
				Status: schema.CheckMissing,
			})
			continue
		}
		s.record(report, schema.CheckResult{
			Object: "table " + table.Name,
			Status: schema.CheckOK,
		})

		if err := s.verifyColumns(ctx, report, table); err != nil {
			return nil, err
		}
		if err := s.verifyIndexes(ctx, report, table); err != nil {
			return nil, err
		}
		if err := s.verifyRowCount(ctx, report, table); err != nil {
			return nil, err
		}
	}

	if report.Failures > 0 {
		s.logger.Error("Verification on ", target, " found ", report.Failures, " failed check(s)")
	} else {
		s.logger.Info("Verification on ", target, " passed: ", len(report.Checks), " check(s) ok")
	}
	return report, nil
}

func (s *verificationService) verifyColumns(ctx context.Context, report *schema.VerificationReport, table schema.TableExpectation) error {
	for _, column := range table.Columns {
		object := fmt.Sprintf("column %s.%s", table.Name, column.Name)

		dataType, exists, err := s.inspector.ColumnType(ctx, table.Name, column.Name)
		if err != nil {
			return err
		}
		switch {
		case !exists:
			s.record(report, schema.CheckResult{Object: object, Status: schema.CheckMissing})
		case column.DataType != "" && dataType != column.DataType:
			s.record(report, schema.CheckResult{
				Object: object,
				Status: schema.CheckMismatch,
				Detail: fmt.Sprintf("expected type %s, found %s", column.DataType, dataType),
			})
		default:
			s.record(report, schema.CheckResult{Object: object, Status: schema.CheckOK})
		}
	}
	return nil
}

func (s *verificationService) verifyIndexes(ctx context.Context, report *schema.VerificationReport, table schema.TableExpectation) error {
	for _, index := range table.Indexes {
		object := fmt.Sprintf("index %s on %s", index, table.Name)

		exists, err := s.inspector.IndexExists(ctx, table.Name, index)
		if err != nil {
			return err
		}
		if exists {
			s.record(report, schema.CheckResult{Object: object, Status: schema.CheckOK})
		} else {
			s.record(report, schema.CheckResult{Object: object, Status: schema.CheckMissing})
		}
	}
	return nil
}

func (s *verificationService) verifyRowCount(ctx context.Context, report *schema.VerificationReport, table schema.TableExpectation) error {
	if table.MinRows == nil {
		return nil
	}

	object := fmt.Sprintf("row count of %s", table.Name)
	count, err := s.inspector.CountRows(ctx, table.Name)
	if err != nil {
		return err
	}
	if count < *table.MinRows {
		s.record(report, schema.CheckResult{
			Object: object,
			Status: schema.CheckMismatch,
			Detail: fmt.Sprintf("expected at least %d rows, found %d", *table.MinRows, count),
		})
	} else {
		s.record(report, schema.CheckResult{Object: object, Status: schema.CheckOK})
	}
	return nil
}

func (s *verificationService) record(report *schema.VerificationReport, result schema.CheckResult) {
	report.Checks = append(report.Checks, result)
	if result.Status == schema.CheckOK {
		s.logger.Info("ok: ", result.Object)
		return
	}
	report.Failures++
	s.logger.Warn(string(result.Status), ": ", result.Object, " ", result.Detail)
}
