package schema

import "context"

// CheckStatus is the outcome of one verification check.
type CheckStatus string

// Check outcomes
const (
	CheckOK       CheckStatus = "ok"
	CheckMissing  CheckStatus = "missing"
	CheckMismatch CheckStatus = "mismatch"
)

// CheckResult records one verification check against the live schema.
type CheckResult struct {
	Object string      `json:"object"`
	Status CheckStatus `json:"status"`
	Detail string      `json:"detail,omitempty"`
}

// VerificationReport collects all checks for one target.
type VerificationReport struct {
	Target   string        `json:"target"`
	Checks   []CheckResult `json:"checks"`
	Failures int           `json:"failures"`
}

// Inspector queries the live database catalog for verification.
type Inspector interface {
	// TableExists reports whether a table exists in the public schema.
	TableExists(ctx context.Context, table string) (bool, error)
	// ColumnType returns the data type of a column and whether it exists.
	ColumnType(ctx context.Context, table, column string) (string, bool, error)
	// IndexExists reports whether a named index exists on a table.
	IndexExists(ctx context.Context, table, index string) (bool, error)
	// CountRows returns the number of rows in a table.
	CountRows(ctx context.Context, table string) (int64, error)
}

// Verifier checks expectations against a live database.
type Verifier interface {
	Verify(ctx context.Context, target string, expectations *Expectations) (*VerificationReport, error)
}
