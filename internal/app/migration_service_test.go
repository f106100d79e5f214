//go:build unit
// +build unit

package app

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/ethan273/limn-systems-enterprise-sub010/internal/domain/migration"
	"github.com/ethan273/limn-systems-enterprise-sub010/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeExecutor returns the scripted error for each statement, in order, and
// records every statement it receives.
type fakeExecutor struct {
	errs     []error
	executed []string
}

func (f *fakeExecutor) ExecContext(_ context.Context, query string, _ ...any) (sql.Result, error) {
	idx := len(f.executed)
	f.executed = append(f.executed, query)
	if idx < len(f.errs) {
		return nil, f.errs[idx]
	}
	return nil, nil
}

func TestMigrationRunnerAppliesInOrder(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	runner, err := NewMigrationRunner(log)
	require.NoError(t, err)

	statements := []string{
		"CREATE TYPE s AS ENUM ('a');",
		"CREATE TABLE t (id INT);",
		"CREATE INDEX i ON t (id);",
	}
	exec := &fakeExecutor{}

	report, err := runner.Apply(context.Background(), exec, "dev", "m.sql", statements)
	require.NoError(t, err)

	assert.Equal(t, statements, exec.executed)
	assert.Equal(t, 3, report.Applied)
	assert.Equal(t, 0, report.Skipped)
	assert.Equal(t, 0, report.Failed)
	require.Len(t, report.Statements, 3)
	for i, result := range report.Statements {
		assert.Equal(t, i, result.Index)
		assert.Equal(t, migration.StatusApplied, result.Status)
	}
}

func TestMigrationRunnerSkipsAlreadyExists(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	runner, err := NewMigrationRunner(log)
	require.NoError(t, err)

	statements := []string{
		"CREATE TABLE t (id INT);",
		"CREATE INDEX i ON t (id);",
	}
	exec := &fakeExecutor{
		errs: []error{
			errors.New(`ERROR: relation "t" already exists (SQLSTATE 42P07)`),
			nil,
		},
	}

	report, err := runner.Apply(context.Background(), exec, "dev", "m.sql", statements)
	require.NoError(t, err)

	// The skip does not stop the run.
	assert.Equal(t, statements, exec.executed)
	assert.Equal(t, 1, report.Applied)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, migration.StatusSkipped, report.Statements[0].Status)
	assert.Equal(t, migration.StatusApplied, report.Statements[1].Status)
}

func TestMigrationRunnerAbortsOnFailure(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	runner, err := NewMigrationRunner(log)
	require.NoError(t, err)

	statements := []string{
		"CREATE TABLE t (id INT);",
		"CREATE TABLE broken (;",
		"CREATE INDEX i ON t (id);",
	}
	exec := &fakeExecutor{
		errs: []error{
			nil,
			errors.New("ERROR: syntax error at or near \";\""),
		},
	}

	report, err := runner.Apply(context.Background(), exec, "prod", "m.sql", statements)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "statement 2")
	assert.Contains(t, err.Error(), "prod")

	// The third statement is never reached.
	assert.Len(t, exec.executed, 2)
	require.NotNil(t, report)
	assert.Equal(t, 1, report.Applied)
	assert.Equal(t, 1, report.Failed)
	require.Len(t, report.Statements, 2)
	assert.Equal(t, migration.StatusFailed, report.Statements[1].Status)
	assert.NotEmpty(t, report.Statements[1].Error)
}

func TestMigrationRunnerPlan(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	runner, err := NewMigrationRunner(log)
	require.NoError(t, err)

	statements := []string{
		"CREATE TABLE t (id INT);",
		"COMMENT ON TABLE t IS 'x';",
	}

	report := runner.Plan("dev", "m.sql", statements)

	assert.True(t, report.DryRun)
	assert.NotEmpty(t, report.RunID)
	require.Len(t, report.Statements, 2)
	assert.Equal(t, migration.StatusPlanned, report.Statements[0].Status)
	assert.Equal(t, migration.KindCreateTable, report.Statements[0].Kind)
	assert.Equal(t, migration.KindComment, report.Statements[1].Kind)
	assert.Equal(t, 0, report.Applied)
}
