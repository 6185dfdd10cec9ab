package db_models

import (
	"time"

	"github.com/google/uuid"
)

type BenefitType string

const (
	BenefitCheckup         BenefitType = "CHECKUP"
	BenefitHospitalization BenefitType = "HOSPITALIZATION"
	BenefitSurgery         BenefitType = "SURGERY"
	BenefitMedication      BenefitType = "MEDICATION"
	BenefitConsultation    BenefitType = "CONSULTATION"
	BenefitOther           BenefitType = "OTHER"
)

type BenefitStatus string

const (
	BenefitPending   BenefitStatus = "PENDING"
	BenefitApproved  BenefitStatus = "APPROVED"
	BenefitRejected  BenefitStatus = "REJECTED"
	BenefitCompleted BenefitStatus = "COMPLETED"
)

// Final reports whether the status admits no further changes.
func (s BenefitStatus) Final() bool {
	return s == BenefitCompleted || s == BenefitRejected
}

type Beneficiary struct {
	BaseModel
	HouseholdID uuid.UUID     `gorm:"type:uuid;index"`
	CardID      uuid.UUID     `gorm:"type:uuid;index"`
	BenefitType BenefitType   `gorm:"type:benefit_type"`
	Status      BenefitStatus `gorm:"type:benefit_status;index"`
	Amount      float64       `gorm:"type:numeric(12,2)"`
	Description *string
	StartDate   time.Time
	EndDate     *time.Time
	CreatedByID uuid.UUID `gorm:"type:uuid"`

	Household *Household `gorm:"foreignKey:HouseholdID"`
	Card      *Card      `gorm:"foreignKey:CardID"`
	Members   []Member   `gorm:"many2many:beneficiary_members;"`
}
