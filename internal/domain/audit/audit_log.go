package audit

import "time"

// LogEntry is one row of the application's audit_logs table. The toolkit
// treats entries as opaque records owned by the application; only the
// timestamp matters for retention.
type LogEntry struct {
	ID        string
	TableName string
	RecordID  string
	Action    string
	UserID    *string
	CreatedAt time.Time
}

// RetentionPolicy bounds how long audit log entries are kept and how many
// rows a single delete statement may touch.
type RetentionPolicy struct {
	RetentionDays int
	BatchSize     int
}

// Cutoff returns the timestamp before which entries are eligible for deletion.
func (p RetentionPolicy) Cutoff(now time.Time) time.Time {
	return now.AddDate(0, 0, -p.RetentionDays)
}

// CleanupReport summarizes one cleanup run. DryRun runs report Eligible only.
type CleanupReport struct {
	Target   string    `json:"target"`
	Cutoff   time.Time `json:"cutoff"`
	DryRun   bool      `json:"dry_run"`
	Eligible int64     `json:"eligible"`
	Deleted  int64     `json:"deleted"`
	Batches  int       `json:"batches"`
	Failed   int       `json:"failed_batches"`
}
