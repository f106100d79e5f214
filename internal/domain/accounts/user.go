package accounts

import "time"

// User mirrors the application's users table, read-only for the toolkit.
type User struct {
	ID        string
	Email     string
	CreatedAt time.Time
}

// Profile mirrors the user_profiles row the backfill creates for users that
// are missing one.
type Profile struct {
	ID          string
	UserID      string
	DisplayName string
	Role        string
	CreatedAt   time.Time
}

// DefaultRole is assigned to backfilled profiles.
const DefaultRole = "member"

// BackfillReport summarizes one profile backfill run.
type BackfillReport struct {
	Target  string `json:"target"`
	DryRun  bool   `json:"dry_run"`
	Missing int    `json:"missing"`
	Created int    `json:"created"`
	Failed  int    `json:"failed"`
}
