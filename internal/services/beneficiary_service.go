package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	dbm "healthcard/internal/models/db_models"
	"healthcard/internal/models/request_models"
	"healthcard/internal/models/response_models"
	"healthcard/internal/repositories"
	"healthcard/pkg/utils"
)

//go:generate mockgen -source=beneficiary_service.go -destination=mocks/beneficiary_service_mock.go -package=mocks

type BeneficiaryServiceInterface interface {
	CreateBeneficiary(ctx context.Context, actor request_models.Actor, req request_models.CreateBeneficiaryRequest) (*response_models.BeneficiaryResponse, error)
	UpdateBeneficiary(ctx context.Context, actor request_models.Actor, id string, req request_models.UpdateBeneficiaryRequest) (*response_models.BeneficiaryResponse, error)
	DeleteBeneficiary(ctx context.Context, actor request_models.Actor, id string) error
	GetBeneficiary(ctx context.Context, id string) (*response_models.BeneficiaryResponse, error)
	ListBeneficiaries(ctx context.Context, filter request_models.BeneficiaryFilter) ([]response_models.BeneficiaryResponse, error)
}

type BeneficiaryService struct {
	beneficiaryRepo repositories.BeneficiaryRepository
	householdRepo   repositories.HouseholdRepository
	cardRepo        repositories.CardRepository
	loc             *time.Location
	log             *zap.Logger
}

func NewBeneficiaryService(
	beneficiaryRepo repositories.BeneficiaryRepository,
	householdRepo repositories.HouseholdRepository,
	cardRepo repositories.CardRepository,
	loc *time.Location,
	log *zap.Logger,
) BeneficiaryServiceInterface {
	if loc == nil {
		loc = time.UTC
	}
	return &BeneficiaryService{
		beneficiaryRepo: beneficiaryRepo,
		householdRepo:   householdRepo,
		cardRepo:        cardRepo,
		loc:             loc,
		log:             log.Named("beneficiaries"),
	}
}

// AuthorizeBeneficiaryUpdate decides whether actor may apply req. Changing the
// status is reserved to admins; every other field may be edited by admins and
// office agents. Hospital users may not edit at all.
func AuthorizeBeneficiaryUpdate(actor request_models.Actor, req request_models.UpdateBeneficiaryRequest) error {
	if !actor.HasRole(dbm.RoleAdmin, dbm.RoleOfficeAgent) {
		return utils.ErrInsufficientRole
	}
	if req.Status != nil && actor.Role != dbm.RoleAdmin {
		return utils.ErrStatusChangeRole
	}
	return nil
}

func (s *BeneficiaryService) CreateBeneficiary(ctx context.Context, actor request_models.Actor, req request_models.CreateBeneficiaryRequest) (*response_models.BeneficiaryResponse, error) {

	householdID, err := parseID(req.HouseholdID, "householdId")
	if err != nil {
		return nil, err
	}
	cardID, err := parseID(req.CardID, "cardId")
	if err != nil {
		return nil, err
	}
	memberIDs, err := parseIDs(req.MemberIDs, "memberIds")
	if err != nil {
		return nil, err
	}
	if len(memberIDs) == 0 {
		return nil, utils.Validation("memberIds is required")
	}
	if req.Amount == nil || *req.Amount < 0 {
		return nil, utils.Validation("amount must be at least 0")
	}
	if req.StartDate == nil {
		return nil, utils.Validation("startDate is required")
	}

	startDate := req.StartDate.In(s.loc)
	var endDate *time.Time
	if req.EndDate != nil {
		t := req.EndDate.In(s.loc)
		endDate = &t
	}
	if err := checkDateRange(startDate, endDate); err != nil {
		return nil, err
	}

	household, err := s.householdRepo.FindByID(ctx, householdID)
	if err != nil {
		return nil, s.dbError("find household", err)
	}
	if household == nil {
		return nil, utils.ErrHouseholdNotFound
	}

	card, err := s.cardRepo.FindByID(ctx, cardID)
	if err != nil {
		return nil, s.dbError("find card", err)
	}
	if card == nil || card.HouseholdID != householdID {
		return nil, utils.Validation("Card does not belong to the household")
	}
	if card.Status != dbm.CardStatusActive {
		return nil, utils.Validation("Card is not active")
	}

	members, err := s.householdMembers(ctx, householdID, memberIDs)
	if err != nil {
		return nil, err
	}

	b := &dbm.Beneficiary{
		HouseholdID: householdID,
		CardID:      cardID,
		BenefitType: req.BenefitType,
		Status:      dbm.BenefitPending,
		Amount:      *req.Amount,
		Description: req.Description,
		StartDate:   startDate,
		EndDate:     endDate,
		CreatedByID: actor.UserID,
		Members:     members,
	}
	if err := s.beneficiaryRepo.Create(ctx, b); err != nil {
		return nil, s.dbError("create beneficiary", err)
	}

	b.Household = household
	resp := response_models.NewBeneficiaryResponse(b)
	return &resp, nil
}

func (s *BeneficiaryService) UpdateBeneficiary(ctx context.Context, actor request_models.Actor, id string, req request_models.UpdateBeneficiaryRequest) (*response_models.BeneficiaryResponse, error) {

	if err := AuthorizeBeneficiaryUpdate(actor, req); err != nil {
		return nil, err
	}
	beneficiaryID, err := parseID(id, "beneficiary id")
	if err != nil {
		return nil, err
	}
	if req.Status == nil && !req.TouchesDetails() {
		return nil, utils.Validation("At least one field is required")
	}

	b, err := s.beneficiaryRepo.FindByID(ctx, beneficiaryID)
	if err != nil {
		return nil, s.dbError("find beneficiary", err)
	}
	if b == nil {
		return nil, utils.ErrBeneficiaryNotFound
	}
	if b.Status.Final() {
		return nil, utils.ErrBeneficiaryFinalized
	}

	if req.BenefitType != nil {
		b.BenefitType = *req.BenefitType
	}
	if req.Status != nil {
		b.Status = *req.Status
	}
	if req.Amount != nil {
		b.Amount = *req.Amount
	}
	if req.Description != nil {
		b.Description = req.Description
	}
	if req.StartDate != nil {
		b.StartDate = req.StartDate.In(s.loc)
	}
	if req.EndDate != nil {
		t := req.EndDate.In(s.loc)
		b.EndDate = &t
	}
	if err := checkDateRange(b.StartDate, b.EndDate); err != nil {
		return nil, err
	}

	var members []dbm.Member
	if req.MemberIDs != nil {
		memberIDs, err := parseIDs(req.MemberIDs, "memberIds")
		if err != nil {
			return nil, err
		}
		if members, err = s.householdMembers(ctx, b.HouseholdID, memberIDs); err != nil {
			return nil, err
		}
	}

	if err := s.beneficiaryRepo.Update(ctx, b, members); err != nil {
		return nil, s.dbError("update beneficiary", err)
	}

	resp := response_models.NewBeneficiaryResponse(b)
	return &resp, nil
}

func (s *BeneficiaryService) DeleteBeneficiary(ctx context.Context, actor request_models.Actor, id string) error {

	if actor.Role != dbm.RoleAdmin {
		return utils.ErrInsufficientRole
	}
	beneficiaryID, err := parseID(id, "beneficiary id")
	if err != nil {
		return err
	}

	deleted, err := s.beneficiaryRepo.Delete(ctx, beneficiaryID)
	if err != nil {
		return s.dbError("delete beneficiary", err)
	}
	if !deleted {
		return utils.ErrBeneficiaryNotFound
	}
	return nil
}

func (s *BeneficiaryService) GetBeneficiary(ctx context.Context, id string) (*response_models.BeneficiaryResponse, error) {
	beneficiaryID, err := parseID(id, "beneficiary id")
	if err != nil {
		return nil, err
	}
	b, err := s.beneficiaryRepo.FindByID(ctx, beneficiaryID)
	if err != nil {
		return nil, s.dbError("find beneficiary", err)
	}
	if b == nil {
		return nil, utils.ErrBeneficiaryNotFound
	}
	resp := response_models.NewBeneficiaryResponse(b)
	return &resp, nil
}

func (s *BeneficiaryService) ListBeneficiaries(ctx context.Context, filter request_models.BeneficiaryFilter) ([]response_models.BeneficiaryResponse, error) {
	var repoFilter repositories.BeneficiaryFilter
	if filter.HouseholdID != nil {
		id, err := parseID(*filter.HouseholdID, "householdId")
		if err != nil {
			return nil, err
		}
		repoFilter.HouseholdID = &id
	}
	if filter.Status != nil {
		switch *filter.Status {
		case dbm.BenefitPending, dbm.BenefitApproved, dbm.BenefitRejected, dbm.BenefitCompleted:
			repoFilter.Status = filter.Status
		default:
			return nil, utils.Validation("Invalid status %q", *filter.Status)
		}
	}

	items, err := s.beneficiaryRepo.List(ctx, repoFilter)
	if err != nil {
		return nil, s.dbError("list beneficiaries", err)
	}
	return response_models.NewBeneficiaryResponses(items), nil
}

// householdMembers resolves ids to members of householdID, failing when any id
// is unknown or belongs elsewhere.
func (s *BeneficiaryService) householdMembers(ctx context.Context, householdID uuid.UUID, ids []uuid.UUID) ([]dbm.Member, error) {
	members, err := s.householdRepo.FindMembers(ctx, householdID, ids)
	if err != nil {
		return nil, s.dbError("find members", err)
	}
	if len(members) != len(ids) {
		return nil, utils.Validation("All members must belong to the household")
	}
	return members, nil
}

func (s *BeneficiaryService) dbError(op string, err error) error {
	s.log.Error(op, zap.Error(err))
	return utils.ErrDatabaseError
}

func checkDateRange(start time.Time, end *time.Time) error {
	if end != nil && end.Before(start) {
		return utils.Validation("endDate must not be before startDate")
	}
	return nil
}

// parseIDs parses ids, dropping duplicates.
func parseIDs(values []string, field string) ([]uuid.UUID, error) {
	seen := make(map[uuid.UUID]struct{}, len(values))
	out := make([]uuid.UUID, 0, len(values))
	for _, v := range values {
		id, err := parseID(v, field)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out, nil
}
