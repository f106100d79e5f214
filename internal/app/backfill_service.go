package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ethan273/limn-systems-enterprise-sub010/internal/domain/accounts"
	"github.com/ethan273/limn-systems-enterprise-sub010/internal/pkg/logger"

	"github.com/google/uuid"
)

type backfillService struct {
	repository accounts.Repository
	logger     logger.Logger
}

// NewBackfillService creates a new instance of accounts.BackfillService
func NewBackfillService(repository accounts.Repository, logger logger.Logger) (accounts.BackfillService, error) {
	return &backfillService{
		repository: repository,
		logger:     logger,
	}, nil
}

// Backfill creates a default profile for every user that lacks one,
// sequentially. A failed profile creation is logged and skipped; the summary
// carries the mixed created/failed counts.
func (s *backfillService) Backfill(ctx context.Context, target string, dryRun bool) (*accounts.BackfillReport, error) {
	users, err := s.repository.ListUsersWithoutProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find users without profiles: %w", err)
	}

	report := &accounts.BackfillReport{
		Target:  target,
		DryRun:  dryRun,
		Missing: len(users),
	}
	s.logger.Info(len(users), " user(s) without a profile on ", target)

	if dryRun {
		return report, nil
	}

	for _, user := range users {
		profile := &accounts.Profile{
			ID:          uuid.NewString(),
			UserID:      user.ID,
			DisplayName: displayNameFromEmail(user.Email),
			Role:        accounts.DefaultRole,
			CreatedAt:   time.Now().UTC(),
		}

		if err := s.repository.CreateProfile(ctx, profile); err != nil {
			report.Failed++
			s.logger.Error("failed to backfill profile for user ", user.ID, ": ", err)
			continue
		}
		report.Created++
	}

	s.logger.Info("Profile backfill on ", target, ": ", report.Created, " created, ", report.Failed, " failed")
	return report, nil
}

func displayNameFromEmail(email string) string {
	if at := strings.IndexByte(email, '@'); at > 0 {
		return email[:at]
	}
	return email
}
