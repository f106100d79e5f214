package accounts

import "context"

// Repository defines the account operations the backfill needs.
type Repository interface {
	// ListUsersWithoutProfile returns users lacking a user_profiles row.
	ListUsersWithoutProfile(ctx context.Context) ([]*User, error)
	// CreateProfile inserts one profile row.
	CreateProfile(ctx context.Context, profile *Profile) error
}

// BackfillService creates default profiles for users that are missing one.
type BackfillService interface {
	Backfill(ctx context.Context, target string, dryRun bool) (*BackfillReport, error)
}
