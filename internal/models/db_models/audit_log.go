package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AuditAction string

const (
	AuditCardCreated AuditAction = "CARD_CREATED"
	AuditCardUpdated AuditAction = "CARD_UPDATED"
	AuditCardDeleted AuditAction = "CARD_DELETED"
)

// AuditLog rows are only ever inserted.
type AuditLog struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index"`
	CardID    *uuid.UUID     `gorm:"type:uuid;index"`
	Action    AuditAction    `gorm:"not null"`
	Metadata  datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
}

func (a *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
