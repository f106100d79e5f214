package models

import (
	"time"

	"github.com/ethan273/limn-systems-enterprise-sub010/internal/domain/accounts"
)

// UserModel is the GORM database model for application users (read-only here).
type UserModel struct {
	ID        string    `gorm:"primaryKey;type:uuid"`
	Email     string    `gorm:"not null;type:varchar(255)"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts GORM model to domain entity
func (m *UserModel) ToDomain() *accounts.User {
	return &accounts.User{
		ID:        m.ID,
		Email:     m.Email,
		CreatedAt: m.CreatedAt,
	}
}

// UserProfileModel is the GORM database model for user profiles.
type UserProfileModel struct {
	ID          string    `gorm:"primaryKey;type:uuid"`
	UserID      string    `gorm:"not null;uniqueIndex;type:uuid"`
	DisplayName string    `gorm:"type:varchar(255)"`
	Role        string    `gorm:"not null;type:varchar(50)"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (UserProfileModel) TableName() string {
	return "user_profiles"
}

// FromDomain converts domain entity to GORM model
func (m *UserProfileModel) FromDomain(p *accounts.Profile) {
	m.ID = p.ID
	m.UserID = p.UserID
	m.DisplayName = p.DisplayName
	m.Role = p.Role
	m.CreatedAt = p.CreatedAt
}
