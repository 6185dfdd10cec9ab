package response_models

import (
	"time"

	"github.com/google/uuid"
	"healthcard/internal/models/db_models"
	"healthcard/pkg/utils"
)

type PlanView struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  *string   `json:"description,omitempty"`
	Price        float64   `json:"price"`
	DurationDays int       `json:"durationDays"`
}

type MemberView struct {
	ID         uuid.UUID          `json:"id"`
	FirstName  string             `json:"firstName"`
	LastName   string             `json:"lastName"`
	DOB        string             `json:"dob"`
	Relation   db_models.Relation `json:"relation"`
	NationalID string             `json:"nationalId"`
}

type HouseholdView struct {
	ID       uuid.UUID    `json:"id"`
	HeadName string       `json:"headName"`
	Address  string       `json:"address"`
	Phone    string       `json:"phone"`
	Members  []MemberView `json:"members,omitempty"`
}

type CardResponse struct {
	ID          uuid.UUID            `json:"id"`
	CardNumber  string               `json:"cardNumber"`
	HouseholdID uuid.UUID            `json:"householdId"`
	PlanID      uuid.UUID            `json:"planId"`
	Status      db_models.CardStatus `json:"status"`
	IssueDate   time.Time            `json:"issueDate"`
	ExpiryDate  time.Time            `json:"expiryDate"`
	CreatedByID uuid.UUID            `json:"createdById"`
	UpdatedByID uuid.UUID            `json:"updatedById"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
	Household   *HouseholdView       `json:"household,omitempty"`
	Plan        *PlanView            `json:"plan,omitempty"`
}

// Public views leave out national ids and internal references.
type PublicMemberView struct {
	ID        uuid.UUID          `json:"id"`
	FirstName string             `json:"firstName"`
	LastName  string             `json:"lastName"`
	Relation  db_models.Relation `json:"relation"`
	DOB       string             `json:"dob"`
}

type PublicHouseholdView struct {
	HeadName string             `json:"headName"`
	Address  string             `json:"address"`
	Phone    string             `json:"phone"`
	Members  []PublicMemberView `json:"members"`
}

type PublicPlanView struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

type PublicCardResponse struct {
	ID         uuid.UUID            `json:"id"`
	CardNumber string               `json:"cardNumber"`
	Status     db_models.CardStatus `json:"status"`
	IssueDate  time.Time            `json:"issueDate"`
	ExpiryDate time.Time            `json:"expiryDate"`
	Household  *PublicHouseholdView `json:"household,omitempty"`
	Plan       *PublicPlanView      `json:"plan,omitempty"`
}

func NewPlanView(p *db_models.Plan) *PlanView {
	if p == nil {
		return nil
	}
	return &PlanView{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		DurationDays: p.DurationDays,
	}
}

func NewMemberView(m db_models.Member) MemberView {
	return MemberView{
		ID:         m.ID,
		FirstName:  m.FirstName,
		LastName:   m.LastName,
		DOB:        utils.FormatDate(m.DOB),
		Relation:   m.Relation,
		NationalID: m.NationalID,
	}
}

func NewHouseholdView(h *db_models.Household) *HouseholdView {
	if h == nil {
		return nil
	}
	view := &HouseholdView{
		ID:       h.ID,
		HeadName: h.HeadName,
		Address:  h.Address,
		Phone:    h.Phone,
	}
	for _, m := range h.Members {
		view.Members = append(view.Members, NewMemberView(m))
	}
	return view
}

func NewCardResponse(card *db_models.Card) CardResponse {
	return CardResponse{
		ID:          card.ID,
		CardNumber:  card.CardNumber,
		HouseholdID: card.HouseholdID,
		PlanID:      card.PlanID,
		Status:      card.Status,
		IssueDate:   card.IssueDate,
		ExpiryDate:  card.ExpiryDate,
		CreatedByID: card.CreatedByID,
		UpdatedByID: card.UpdatedByID,
		CreatedAt:   card.CreatedAt,
		UpdatedAt:   card.UpdatedAt,
		Household:   NewHouseholdView(card.Household),
		Plan:        NewPlanView(card.Plan),
	}
}

func NewCardResponses(cards []db_models.Card) []CardResponse {
	out := make([]CardResponse, 0, len(cards))
	for i := range cards {
		out = append(out, NewCardResponse(&cards[i]))
	}
	return out
}

func NewPublicCardResponse(card *db_models.Card) PublicCardResponse {
	resp := PublicCardResponse{
		ID:         card.ID,
		CardNumber: card.CardNumber,
		Status:     card.Status,
		IssueDate:  card.IssueDate,
		ExpiryDate: card.ExpiryDate,
	}
	if h := card.Household; h != nil {
		resp.Household = &PublicHouseholdView{
			HeadName: h.HeadName,
			Address:  h.Address,
			Phone:    h.Phone,
			Members:  make([]PublicMemberView, 0, len(h.Members)),
		}
		for _, m := range h.Members {
			resp.Household.Members = append(resp.Household.Members, PublicMemberView{
				ID:        m.ID,
				FirstName: m.FirstName,
				LastName:  m.LastName,
				Relation:  m.Relation,
				DOB:       utils.FormatDate(m.DOB),
			})
		}
	}
	if p := card.Plan; p != nil {
		resp.Plan = &PublicPlanView{Name: p.Name, Description: p.Description}
	}
	return resp
}
