package response_models

import (
	"time"

	"github.com/google/uuid"
	"healthcard/internal/models/db_models"
)

type BeneficiaryResponse struct {
	ID          uuid.UUID               `json:"id"`
	HouseholdID uuid.UUID               `json:"householdId"`
	CardID      uuid.UUID               `json:"cardId"`
	BenefitType db_models.BenefitType   `json:"benefitType"`
	Status      db_models.BenefitStatus `json:"status"`
	Amount      float64                 `json:"amount"`
	Description *string                 `json:"description,omitempty"`
	StartDate   time.Time               `json:"startDate"`
	EndDate     *time.Time              `json:"endDate,omitempty"`
	CreatedByID uuid.UUID               `json:"createdById"`
	CreatedAt   time.Time               `json:"createdAt"`
	UpdatedAt   time.Time               `json:"updatedAt"`
	Household   *HouseholdView          `json:"household,omitempty"`
	Members     []MemberView            `json:"members"`
}

func NewBeneficiaryResponse(b *db_models.Beneficiary) BeneficiaryResponse {
	resp := BeneficiaryResponse{
		ID:          b.ID,
		HouseholdID: b.HouseholdID,
		CardID:      b.CardID,
		BenefitType: b.BenefitType,
		Status:      b.Status,
		Amount:      b.Amount,
		Description: b.Description,
		StartDate:   b.StartDate,
		EndDate:     b.EndDate,
		CreatedByID: b.CreatedByID,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
		Members:     make([]MemberView, 0, len(b.Members)),
	}
	if b.Household != nil {
		resp.Household = &HouseholdView{
			ID:       b.Household.ID,
			HeadName: b.Household.HeadName,
			Address:  b.Household.Address,
			Phone:    b.Household.Phone,
		}
	}
	for _, m := range b.Members {
		resp.Members = append(resp.Members, NewMemberView(m))
	}
	return resp
}

func NewBeneficiaryResponses(items []db_models.Beneficiary) []BeneficiaryResponse {
	out := make([]BeneficiaryResponse, 0, len(items))
	for i := range items {
		out = append(out, NewBeneficiaryResponse(&items[i]))
	}
	return out
}
