package migration

import (
	"context"
	"database/sql"
)

// Executor is the minimal execution surface the runner needs. Both *sql.Conn
// and *sql.Tx satisfy it, so a run can be wrapped in an explicit transaction
// without changing the runner.
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Runner applies an ordered sequence of statements to a single connection.
type Runner interface {
	// Apply executes statements strictly in order. Statements whose error
	// text indicates an "already exists" condition are classified as skipped
	// and execution continues; any other error aborts the remaining
	// statements and is propagated alongside the partial report.
	Apply(ctx context.Context, exec Executor, target, file string, statements []string) (*Report, error)

	// Plan classifies statements without touching the database (dry run).
	Plan(target, file string, statements []string) *Report
}
