package persistence

import (
	"context"
	"fmt"

	"github.com/ethan273/limn-systems-enterprise-sub010/internal/domain/accounts"
	"github.com/ethan273/limn-systems-enterprise-sub010/internal/infrastructure/persistence/models"
	"github.com/ethan273/limn-systems-enterprise-sub010/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormAccountRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormAccountRepository creates a new GORM-based accounts.Repository implementation
func NewGormAccountRepository(db *gorm.DB, logger logger.Logger) (accounts.Repository, error) {
	return &gormAccountRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormAccountRepository) ListUsersWithoutProfile(ctx context.Context) ([]*accounts.User, error) {
	var modelList []*models.UserModel
	err := r.db.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("id NOT IN (SELECT user_id FROM user_profiles)").
		Order("created_at").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list users without profiles: %w", err)
	}

	userList := make([]*accounts.User, len(modelList))
	for i, model := range modelList {
		userList[i] = model.ToDomain()
	}

	return userList, nil
}

func (r *gormAccountRepository) CreateProfile(ctx context.Context, profile *accounts.Profile) error {
	model := &models.UserProfileModel{}
	model.FromDomain(profile)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create profile for user %s: %w", profile.UserID, err)
	}

	r.logger.Info("Created profile for user ", profile.UserID)
	return nil
}
