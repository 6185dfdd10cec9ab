package request_models

import "healthcard/internal/models/db_models"

type CreateCardRequest struct {
	HouseholdID string                `json:"householdId" binding:"required,uuid"`
	PlanID      string                `json:"planId" binding:"required,uuid"`
	Status      *db_models.CardStatus `json:"status" binding:"omitempty,oneof=ACTIVE SUSPENDED EXPIRED CANCELLED"`
	IssueDate   *Date                 `json:"issueDate"`
}

type UpdateCardRequest struct {
	PlanID    *string               `json:"planId" binding:"omitempty,uuid"`
	Status    *db_models.CardStatus `json:"status" binding:"omitempty,oneof=ACTIVE SUSPENDED EXPIRED CANCELLED"`
	IssueDate *Date                 `json:"issueDate"`
}

func (r UpdateCardRequest) Empty() bool {
	return r.PlanID == nil && r.Status == nil && r.IssueDate == nil
}

type CardFilter struct {
	Status      *db_models.CardStatus
	HouseholdID *string
}
