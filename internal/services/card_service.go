package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"healthcard/internal/infra"
	dbm "healthcard/internal/models/db_models"
	"healthcard/internal/models/request_models"
	"healthcard/internal/models/response_models"
	"healthcard/internal/repositories"
	"healthcard/pkg/utils"
)

//go:generate mockgen -source=card_service.go -destination=mocks/card_service_mock.go -package=mocks

const CardNumberLength = 16

type CardServiceInterface interface {
	CreateCard(ctx context.Context, actor request_models.Actor, req request_models.CreateCardRequest) (*response_models.CardResponse, error)
	UpdateCard(ctx context.Context, actor request_models.Actor, cardID string, req request_models.UpdateCardRequest) (*response_models.CardResponse, error)
	DeleteCard(ctx context.Context, actor request_models.Actor, cardID string) error
	GetCard(ctx context.Context, cardID string) (*response_models.CardResponse, error)
	ListCards(ctx context.Context, filter request_models.CardFilter) ([]response_models.CardResponse, error)
	LookupCards(ctx context.Context, query string, status string) ([]response_models.CardResponse, error)
	GetPublicCard(ctx context.Context, cardNumber string) (*response_models.PublicCardResponse, error)
	PublicCardExists(ctx context.Context, cardNumber string) error
}

// CardNumberSource yields candidate card numbers. Candidates are not
// guaranteed to be unused.
type CardNumberSource interface {
	Next() (string, error)
}

type randomCardNumbers struct {
	src io.Reader
}

// NewRandomCardNumbers draws digits from src, or from crypto/rand when src is nil.
func NewRandomCardNumbers(src io.Reader) CardNumberSource {
	return &randomCardNumbers{src: src}
}

func (r *randomCardNumbers) Next() (string, error) {
	return utils.GenerateDigitCode(r.src, CardNumberLength)
}

type CardServiceConfig struct {
	MaxAttempts int
	RetryBase   time.Duration
	Location    *time.Location
	Now         func() time.Time
}

func CardServiceConfigFrom(cfg infra.Config) (CardServiceConfig, error) {
	loc, err := utils.LoadLocation(cfg.Timezone)
	if err != nil {
		return CardServiceConfig{}, err
	}
	return CardServiceConfig{
		MaxAttempts: cfg.CardNumberMaxAttempts,
		RetryBase:   cfg.CardNumberRetryBase,
		Location:    loc,
		Now:         time.Now,
	}, nil
}

type CardService struct {
	cardRepo      repositories.CardRepository
	householdRepo repositories.HouseholdRepository
	planRepo      repositories.IPlanRepository
	numbers       CardNumberSource
	cfg           CardServiceConfig
	log           *zap.Logger
	metrics       *infra.Metrics
}

func NewCardService(
	cardRepo repositories.CardRepository,
	householdRepo repositories.HouseholdRepository,
	planRepo repositories.IPlanRepository,
	numbers CardNumberSource,
	cfg CardServiceConfig,
	log *zap.Logger,
	metrics *infra.Metrics,
) CardServiceInterface {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &CardService{
		cardRepo:      cardRepo,
		householdRepo: householdRepo,
		planRepo:      planRepo,
		numbers:       numbers,
		cfg:           cfg,
		log:           log.Named("cards"),
		metrics:       metrics,
	}
}

func (s *CardService) CreateCard(ctx context.Context, actor request_models.Actor, req request_models.CreateCardRequest) (*response_models.CardResponse, error) {

	if !actor.HasRole(dbm.RoleAdmin, dbm.RoleOfficeAgent) {
		return nil, utils.ErrInsufficientRole
	}

	householdID, err := parseID(req.HouseholdID, "householdId")
	if err != nil {
		return nil, err
	}
	planID, err := parseID(req.PlanID, "planId")
	if err != nil {
		return nil, err
	}

	household, err := s.householdRepo.FindByID(ctx, householdID)
	if err != nil {
		return nil, s.dbError("find household", err)
	}
	if household == nil {
		return nil, utils.ErrHouseholdNotFound
	}

	existing, err := s.cardRepo.FindByHouseholdID(ctx, householdID)
	if err != nil {
		return nil, s.dbError("find household card", err)
	}
	if existing != nil {
		return nil, utils.ErrHouseholdHasCard
	}

	plan, err := s.planRepo.GetPlanInfoById(ctx, planID)
	if err != nil {
		return nil, s.dbError("find plan", err)
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}

	status := dbm.CardStatusActive
	if req.Status != nil {
		status = *req.Status
	}
	issueDate := s.cfg.Now().In(s.cfg.Location)
	if req.IssueDate != nil {
		issueDate = req.IssueDate.In(s.cfg.Location)
	}

	card := &dbm.Card{
		HouseholdID: householdID,
		PlanID:      planID,
		Status:      status,
		IssueDate:   issueDate,
		ExpiryDate:  utils.AddCalendarDays(issueDate, plan.DurationDays),
		CreatedByID: actor.UserID,
		UpdatedByID: actor.UserID,
	}

	if err := s.insertWithFreshNumber(ctx, actor, card); err != nil {
		return nil, err
	}
	s.metrics.CardsIssued.Inc()

	card.Household = household
	card.Plan = plan
	resp := response_models.NewCardResponse(card)
	return &resp, nil
}

// insertWithFreshNumber assigns card a number not yet in storage and writes it
// with its CARD_CREATED entry. A number taken between the check and the insert
// is caught by the unique constraint and counts as another attempt.
func (s *CardService) insertWithFreshNumber(ctx context.Context, actor request_models.Actor, card *dbm.Card) error {
	backoff := retry.WithMaxRetries(uint64(s.cfg.MaxAttempts-1), retry.NewExponential(s.cfg.RetryBase))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		candidate, err := s.numbers.Next()
		if err != nil {
			return err
		}

		taken, err := s.cardRepo.ExistsByCardNumber(ctx, candidate)
		if err != nil {
			return err
		}
		if taken {
			s.metrics.CardNumberCollisions.Inc()
			return retry.RetryableError(utils.ErrCardNumberTaken)
		}

		card.CardNumber = candidate
		entry := auditEntry(actor, dbm.AuditCardCreated, map[string]any{
			"householdId": card.HouseholdID,
			"planId":      card.PlanID,
			"status":      card.Status,
			"cardNumber":  card.CardNumber,
		})
		err = s.cardRepo.CreateWithAudit(ctx, card, entry)
		if errors.Is(err, utils.ErrCardNumberTaken) {
			s.metrics.CardNumberCollisions.Inc()
			return retry.RetryableError(err)
		}
		return err
	})

	switch {
	case err == nil:
		return nil
	case errors.Is(err, utils.ErrCardNumberTaken):
		s.metrics.CardNumberExhausted.Inc()
		s.log.Error("no free card number",
			zap.Int("attempts", s.cfg.MaxAttempts),
			zap.Stringer("household_id", card.HouseholdID))
		return utils.ErrCardNumberExhausted
	case errors.Is(err, utils.ErrHouseholdHasCard):
		return err
	default:
		return s.dbError("create card", err)
	}
}

func (s *CardService) UpdateCard(ctx context.Context, actor request_models.Actor, cardID string, req request_models.UpdateCardRequest) (*response_models.CardResponse, error) {

	if !actor.HasRole(dbm.RoleAdmin, dbm.RoleOfficeAgent) {
		return nil, utils.ErrInsufficientRole
	}
	id, err := parseID(cardID, "card id")
	if err != nil {
		return nil, err
	}
	if req.Empty() {
		return nil, utils.Validation("At least one of planId, status or issueDate is required")
	}

	card, err := s.cardRepo.FindByID(ctx, id)
	if err != nil {
		return nil, s.dbError("find card", err)
	}
	if card == nil {
		return nil, utils.ErrCardNotFound
	}

	plan := card.Plan
	if req.PlanID != nil {
		planID, err := parseID(*req.PlanID, "planId")
		if err != nil {
			return nil, err
		}
		plan, err = s.planRepo.GetPlanInfoById(ctx, planID)
		if err != nil {
			return nil, s.dbError("find plan", err)
		}
		if plan == nil {
			return nil, utils.ErrPlanNotFound
		}
	}

	before := *card
	if req.PlanID != nil || req.IssueDate != nil {
		if plan == nil {
			if plan, err = s.planRepo.GetPlanInfoById(ctx, card.PlanID); err != nil {
				return nil, s.dbError("find plan", err)
			}
			if plan == nil {
				return nil, utils.ErrPlanNotFound
			}
		}
		issueDate := card.IssueDate.In(s.cfg.Location)
		if req.IssueDate != nil {
			issueDate = req.IssueDate.In(s.cfg.Location)
		}
		card.PlanID = plan.ID
		card.IssueDate = issueDate
		card.ExpiryDate = utils.AddCalendarDays(issueDate, plan.DurationDays)
	}
	if req.Status != nil {
		card.Status = *req.Status
	}
	card.UpdatedByID = actor.UserID

	entry := auditEntry(actor, dbm.AuditCardUpdated, map[string]any{
		"previousStatus":     before.Status,
		"newStatus":          card.Status,
		"previousPlanId":     before.PlanID,
		"newPlanId":          card.PlanID,
		"previousIssueDate":  before.IssueDate,
		"newIssueDate":       card.IssueDate,
		"previousExpiryDate": before.ExpiryDate,
		"newExpiryDate":      card.ExpiryDate,
	})
	if err := s.cardRepo.UpdateWithAudit(ctx, card, entry); err != nil {
		if errors.Is(err, utils.ErrCardNotFound) {
			return nil, err
		}
		return nil, s.dbError("update card", err)
	}
	s.metrics.CardsUpdated.Inc()

	if plan != nil {
		card.Plan = plan
	}
	resp := response_models.NewCardResponse(card)
	return &resp, nil
}

func (s *CardService) DeleteCard(ctx context.Context, actor request_models.Actor, cardID string) error {

	if !actor.HasRole(dbm.RoleAdmin, dbm.RoleOfficeAgent) {
		return utils.ErrInsufficientRole
	}
	id, err := parseID(cardID, "card id")
	if err != nil {
		return err
	}

	card, err := s.cardRepo.FindByID(ctx, id)
	if err != nil {
		return s.dbError("find card", err)
	}
	if card == nil {
		return utils.ErrCardNotFound
	}

	entry := auditEntry(actor, dbm.AuditCardDeleted, map[string]any{
		"cardId":      card.ID,
		"cardNumber":  card.CardNumber,
		"householdId": card.HouseholdID,
		"status":      card.Status,
	})
	if err := s.cardRepo.DeleteWithAudit(ctx, card, entry); err != nil {
		if errors.Is(err, utils.ErrCardNotFound) {
			return err
		}
		return s.dbError("delete card", err)
	}
	s.metrics.CardsDeleted.Inc()
	return nil
}

func (s *CardService) GetCard(ctx context.Context, cardID string) (*response_models.CardResponse, error) {
	id, err := parseID(cardID, "card id")
	if err != nil {
		return nil, err
	}
	card, err := s.cardRepo.FindByID(ctx, id)
	if err != nil {
		return nil, s.dbError("find card", err)
	}
	if card == nil {
		return nil, utils.ErrCardNotFound
	}
	resp := response_models.NewCardResponse(card)
	return &resp, nil
}

func (s *CardService) ListCards(ctx context.Context, filter request_models.CardFilter) ([]response_models.CardResponse, error) {
	var repoFilter repositories.CardFilter
	if filter.Status != nil {
		if !filter.Status.Valid() {
			return nil, utils.Validation("Invalid status %q", *filter.Status)
		}
		repoFilter.Status = filter.Status
	}
	if filter.HouseholdID != nil {
		id, err := parseID(*filter.HouseholdID, "householdId")
		if err != nil {
			return nil, err
		}
		repoFilter.HouseholdID = &id
	}

	cards, err := s.cardRepo.List(ctx, repoFilter)
	if err != nil {
		return nil, s.dbError("list cards", err)
	}
	return response_models.NewCardResponses(cards), nil
}

func (s *CardService) LookupCards(ctx context.Context, query string, status string) ([]response_models.CardResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, utils.Validation("query is required")
	}

	cardStatus := dbm.CardStatusActive
	if status != "" {
		cardStatus = dbm.CardStatus(status)
		if !cardStatus.Valid() {
			return nil, utils.Validation("Invalid status %q", status)
		}
	}

	cards, err := s.cardRepo.Lookup(ctx, repositories.LookupQuery{
		Raw:                query,
		CardNumberFragment: alphanumeric(query),
		Status:             cardStatus,
	})
	if err != nil {
		return nil, s.dbError("lookup cards", err)
	}
	if len(cards) == 0 {
		return nil, utils.ErrNoCardsFound
	}
	return response_models.NewCardResponses(cards), nil
}

func (s *CardService) GetPublicCard(ctx context.Context, cardNumber string) (*response_models.PublicCardResponse, error) {
	card, err := s.findByNumber(ctx, cardNumber)
	if err != nil {
		return nil, err
	}
	resp := response_models.NewPublicCardResponse(card)
	return &resp, nil
}

func (s *CardService) PublicCardExists(ctx context.Context, cardNumber string) error {
	_, err := s.findByNumber(ctx, cardNumber)
	return err
}

func (s *CardService) findByNumber(ctx context.Context, cardNumber string) (*dbm.Card, error) {
	cardNumber = strings.TrimSpace(cardNumber)
	if cardNumber == "" {
		return nil, utils.Validation("cardNumber is required")
	}
	card, err := s.cardRepo.FindByCardNumber(ctx, cardNumber)
	if err != nil {
		return nil, s.dbError("find card by number", err)
	}
	if card == nil {
		return nil, utils.ErrCardNotFound
	}
	return card, nil
}

func (s *CardService) dbError(op string, err error) error {
	s.log.Error(op, zap.Error(err))
	return utils.ErrDatabaseError
}

func auditEntry(actor request_models.Actor, action dbm.AuditAction, metadata map[string]any) *dbm.AuditLog {
	raw, err := json.Marshal(metadata)
	if err != nil {
		raw = []byte("{}")
	}
	return &dbm.AuditLog{
		UserID:   actor.UserID,
		Action:   action,
		Metadata: datatypes.JSON(raw),
	}
}

func parseID(value string, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(value))
	if err != nil {
		return uuid.Nil, utils.Validation("Invalid %s", field)
	}
	return id, nil
}

func alphanumeric(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}
