package request_models

import "healthcard/internal/models/db_models"

type CreateBeneficiaryRequest struct {
	HouseholdID string                `json:"householdId" binding:"required,uuid"`
	CardID      string                `json:"cardId" binding:"required,uuid"`
	BenefitType db_models.BenefitType `json:"benefitType" binding:"required,oneof=CHECKUP HOSPITALIZATION SURGERY MEDICATION CONSULTATION OTHER"`
	Amount      *float64              `json:"amount" binding:"required,gte=0"`
	Description *string               `json:"description"`
	StartDate   *Date                 `json:"startDate" binding:"required"`
	EndDate     *Date                 `json:"endDate"`
	MemberIDs   []string              `json:"memberIds" binding:"required,min=1,dive,uuid"`
}

type UpdateBeneficiaryRequest struct {
	BenefitType *db_models.BenefitType   `json:"benefitType" binding:"omitempty,oneof=CHECKUP HOSPITALIZATION SURGERY MEDICATION CONSULTATION OTHER"`
	Status      *db_models.BenefitStatus `json:"status" binding:"omitempty,oneof=PENDING APPROVED REJECTED COMPLETED"`
	Amount      *float64                 `json:"amount" binding:"omitempty,gte=0"`
	Description *string                  `json:"description"`
	StartDate   *Date                    `json:"startDate"`
	EndDate     *Date                    `json:"endDate"`
	MemberIDs   []string                 `json:"memberIds" binding:"omitempty,min=1,dive,uuid"`
}

// TouchesDetails reports whether any field other than status is present.
func (r UpdateBeneficiaryRequest) TouchesDetails() bool {
	return r.BenefitType != nil || r.Amount != nil || r.Description != nil ||
		r.StartDate != nil || r.EndDate != nil || r.MemberIDs != nil
}

type BeneficiaryFilter struct {
	HouseholdID *string
	Status      *db_models.BenefitStatus
}
