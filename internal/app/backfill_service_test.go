//go:build unit
// +build unit

package app

import (
	"context"
	"errors"
	"testing"

	"github.com/ethan273/limn-systems-enterprise-sub010/internal/domain/accounts"
	"github.com/ethan273/limn-systems-enterprise-sub010/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAccountRepository serves a fixed user list and fails creation for ids
// in failFor.
type fakeAccountRepository struct {
	users   []*accounts.User
	listErr error
	failFor map[string]bool
	created []*accounts.Profile
}

func (f *fakeAccountRepository) ListUsersWithoutProfile(_ context.Context) ([]*accounts.User, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.users, nil
}

func (f *fakeAccountRepository) CreateProfile(_ context.Context, profile *accounts.Profile) error {
	if f.failFor[profile.UserID] {
		return errors.New("duplicate key value violates unique constraint")
	}
	f.created = append(f.created, profile)
	return nil
}

func TestBackfillCreatesDefaultProfiles(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	repo := &fakeAccountRepository{
		users: []*accounts.User{
			{ID: "u1", Email: "alice@example.com"},
			{ID: "u2", Email: "bob@example.com"},
		},
	}
	service, err := NewBackfillService(repo, log)
	require.NoError(t, err)

	report, err := service.Backfill(context.Background(), "dev", false)
	require.NoError(t, err)

	assert.Equal(t, 2, report.Missing)
	assert.Equal(t, 2, report.Created)
	assert.Equal(t, 0, report.Failed)
	require.Len(t, repo.created, 2)

	first := repo.created[0]
	assert.Equal(t, "u1", first.UserID)
	assert.Equal(t, "alice", first.DisplayName)
	assert.Equal(t, accounts.DefaultRole, first.Role)
	assert.NotEmpty(t, first.ID)
	assert.False(t, first.CreatedAt.IsZero())
}

func TestBackfillContinuesPastFailures(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	repo := &fakeAccountRepository{
		users: []*accounts.User{
			{ID: "u1", Email: "alice@example.com"},
			{ID: "u2", Email: "bob@example.com"},
			{ID: "u3", Email: "carol@example.com"},
		},
		failFor: map[string]bool{"u2": true},
	}
	service, err := NewBackfillService(repo, log)
	require.NoError(t, err)

	report, err := service.Backfill(context.Background(), "dev", false)
	require.NoError(t, err)

	assert.Equal(t, 3, report.Missing)
	assert.Equal(t, 2, report.Created)
	assert.Equal(t, 1, report.Failed)
}

func TestBackfillDryRunCreatesNothing(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	repo := &fakeAccountRepository{
		users: []*accounts.User{{ID: "u1", Email: "alice@example.com"}},
	}
	service, err := NewBackfillService(repo, log)
	require.NoError(t, err)

	report, err := service.Backfill(context.Background(), "prod", true)
	require.NoError(t, err)

	assert.True(t, report.DryRun)
	assert.Equal(t, 1, report.Missing)
	assert.Equal(t, 0, report.Created)
	assert.Empty(t, repo.created)
}

func TestBackfillListFailureIsFatal(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	repo := &fakeAccountRepository{listErr: errors.New("connection refused")}
	service, err := NewBackfillService(repo, log)
	require.NoError(t, err)

	report, err := service.Backfill(context.Background(), "dev", false)
	require.Error(t, err)
	assert.Nil(t, report)
}

func TestDisplayNameFromEmail(t *testing.T) {
	tests := []struct {
		email    string
		expected string
	}{
		{email: "alice@example.com", expected: "alice"},
		{email: "no-at-sign", expected: "no-at-sign"},
		{email: "@leading", expected: "@leading"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, displayNameFromEmail(tt.email))
	}
}
