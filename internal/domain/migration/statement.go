package migration

import (
	"regexp"
	"strings"
	"time"
)

// Kind classifies a statement by its leading keywords, for reporting.
type Kind string

// Statement kinds
const (
	KindCreateTable Kind = "CREATE TABLE"
	KindCreateType  Kind = "CREATE TYPE"
	KindCreateIndex Kind = "CREATE INDEX"
	KindComment     Kind = "COMMENT"
	KindGenericSQL  Kind = "SQL"
)

// Status records the outcome of executing one statement.
type Status string

// Statement outcomes
const (
	StatusApplied Status = "applied"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
	StatusPlanned Status = "planned"
)

var (
	createTablePattern = regexp.MustCompile(`^CREATE\s+TABLE\b`)
	createTypePattern  = regexp.MustCompile(`^CREATE\s+TYPE\b`)
	createIndexPattern = regexp.MustCompile(`^CREATE\s+(UNIQUE\s+)?INDEX\b`)
	commentPattern     = regexp.MustCompile(`^COMMENT\s+ON\b`)
)

// Classify derives a statement's kind from its leading keywords, defaulting
// to the generic SQL kind.
func Classify(stmt string) Kind {
	normalized := strings.ToUpper(strings.TrimSpace(stmt))
	switch {
	case createTablePattern.MatchString(normalized):
		return KindCreateTable
	case createTypePattern.MatchString(normalized):
		return KindCreateType
	case createIndexPattern.MatchString(normalized):
		return KindCreateIndex
	case commentPattern.MatchString(normalized):
		return KindComment
	default:
		return KindGenericSQL
	}
}

// IsAlreadyExists reports whether a statement error is an idempotent no-op:
// re-running a migration is safe because "already exists" conditions are
// treated as success.
func IsAlreadyExists(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "already exists")
}

// Summary returns a short single-line preview of a statement for reports.
func Summary(stmt string) string {
	line := strings.TrimSpace(stmt)
	if idx := strings.IndexByte(line, '\n'); idx >= 0 {
		line = strings.TrimSpace(line[:idx])
	}
	const maxLen = 120
	if len(line) > maxLen {
		line = line[:maxLen] + "..."
	}
	return line
}

// StatementResult records the outcome of one statement in a run.
type StatementResult struct {
	Index   int    `json:"index"`
	Kind    Kind   `json:"kind"`
	Status  Status `json:"status"`
	Summary string `json:"summary"`
	Error   string `json:"error,omitempty"`
}

// Report collects the outcome of applying one migration file to one target.
type Report struct {
	RunID      string            `json:"run_id"`
	Target     string            `json:"target"`
	File       string            `json:"file"`
	DryRun     bool              `json:"dry_run"`
	StartedAt  time.Time         `json:"started_at"`
	DurationMS int64             `json:"duration_ms"`
	Applied    int               `json:"applied"`
	Skipped    int               `json:"skipped"`
	Failed     int               `json:"failed"`
	Statements []StatementResult `json:"statements"`
}
