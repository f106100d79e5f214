package models

import (
	"time"

	"github.com/ethan273/limn-systems-enterprise-sub010/internal/domain/audit"
)

// AuditLogModel is the GORM database model for audit log entries.
type AuditLogModel struct {
	ID           string    `gorm:"primaryKey;type:uuid"`
	AuditedTable string    `gorm:"column:table_name;type:varchar(255)"`
	RecordID     string    `gorm:"column:record_id;type:varchar(255)"`
	Action       string    `gorm:"type:varchar(50)"`
	UserID       *string   `gorm:"type:uuid;index"`
	CreatedAt    time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (AuditLogModel) TableName() string {
	return "audit_logs"
}

// ToDomain converts GORM model to domain entity
func (m *AuditLogModel) ToDomain() *audit.LogEntry {
	return &audit.LogEntry{
		ID:        m.ID,
		TableName: m.AuditedTable,
		RecordID:  m.RecordID,
		Action:    m.Action,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *AuditLogModel) FromDomain(e *audit.LogEntry) {
	m.ID = e.ID
	m.AuditedTable = e.TableName
	m.RecordID = e.RecordID
	m.Action = e.Action
	m.UserID = e.UserID
	m.CreatedAt = e.CreatedAt
}
