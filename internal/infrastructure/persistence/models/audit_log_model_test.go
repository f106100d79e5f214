//go:build unit
// +build unit

package models

import (
	"testing"
	"time"

	"github.com/ethan273/limn-systems-enterprise-sub010/internal/domain/audit"

	"github.com/stretchr/testify/assert"
)

func TestAuditLogModel_ToDomain(t *testing.T) {
	userID := "user-id"
	model := &AuditLogModel{
		ID:           "test-id",
		AuditedTable: "orders",
		RecordID:     "record-id",
		Action:       "INSERT",
		UserID:       &userID,
		CreatedAt:    time.Now(),
	}

	entry := model.ToDomain()

	assert.Equal(t, model.ID, entry.ID)
	assert.Equal(t, model.AuditedTable, entry.TableName)
	assert.Equal(t, model.RecordID, entry.RecordID)
	assert.Equal(t, model.Action, entry.Action)
	assert.Equal(t, model.UserID, entry.UserID)
	assert.Equal(t, model.CreatedAt, entry.CreatedAt)
}

func TestAuditLogModel_FromDomain(t *testing.T) {
	entry := &audit.LogEntry{
		ID:        "test-id",
		TableName: "shipments",
		RecordID:  "record-id",
		Action:    "DELETE",
		UserID:    nil,
		CreatedAt: time.Now(),
	}

	model := &AuditLogModel{}
	model.FromDomain(entry)

	assert.Equal(t, entry.ID, model.ID)
	assert.Equal(t, entry.TableName, model.AuditedTable)
	assert.Equal(t, entry.Action, model.Action)
	assert.Nil(t, model.UserID)
	assert.Equal(t, entry.CreatedAt, model.CreatedAt)
}
