package db_models

import (
	"time"

	"github.com/google/uuid"
)

type CardStatus string

const (
	CardStatusActive    CardStatus = "ACTIVE"
	CardStatusSuspended CardStatus = "SUSPENDED"
	CardStatusExpired   CardStatus = "EXPIRED"
	CardStatusCancelled CardStatus = "CANCELLED"
)

func (s CardStatus) Valid() bool {
	switch s {
	case CardStatusActive, CardStatusSuspended, CardStatusExpired, CardStatusCancelled:
		return true
	}
	return false
}

type Card struct {
	BaseModel
	CardNumber  string     `gorm:"size:16;uniqueIndex:uq_cards_card_number"`
	HouseholdID uuid.UUID  `gorm:"type:uuid;uniqueIndex:uq_cards_household_id"`
	PlanID      uuid.UUID  `gorm:"type:uuid;index"`
	Status      CardStatus `gorm:"type:card_status;index"`
	IssueDate   time.Time
	ExpiryDate  time.Time
	CreatedByID uuid.UUID `gorm:"type:uuid"`
	UpdatedByID uuid.UUID `gorm:"type:uuid"`

	Household *Household `gorm:"foreignKey:HouseholdID"`
	Plan      *Plan      `gorm:"foreignKey:PlanID;constraint:OnDelete:RESTRICT"`
}
