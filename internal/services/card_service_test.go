package services

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"healthcard/internal/infra"
	dbm "healthcard/internal/models/db_models"
	"healthcard/internal/models/request_models"
	"healthcard/pkg/utils"
)

type CardServiceSuite struct {
	suite.Suite

	ctx        context.Context
	plans      *fakePlanRepo
	households *fakeHouseholdRepo
	cards      *fakeCardRepo
	metrics    *infra.Metrics
	numbers    CardNumberSource
	cfg        CardServiceConfig

	yearly    *dbm.Plan
	monthly   *dbm.Plan
	daily     *dbm.Plan
	household *dbm.Household
	other     *dbm.Household
	admin     request_models.Actor
	agent     request_models.Actor
	hospital  request_models.Actor
}

func TestCardServiceSuite(t *testing.T) {
	suite.Run(t, new(CardServiceSuite))
}

func (s *CardServiceSuite) SetupTest() {
	s.ctx = context.Background()

	s.yearly = &dbm.Plan{BaseModel: dbm.BaseModel{ID: uuid.New()}, Name: "Basic", Price: 50, DurationDays: 365}
	s.monthly = &dbm.Plan{BaseModel: dbm.BaseModel{ID: uuid.New()}, Name: "Monthly", Price: 10, DurationDays: 30}
	s.daily = &dbm.Plan{BaseModel: dbm.BaseModel{ID: uuid.New()}, Name: "Day pass", Price: 1, DurationDays: 1}
	s.plans = newFakePlanRepo(s.yearly, s.monthly, s.daily)

	s.household = &dbm.Household{
		BaseModel: dbm.BaseModel{ID: uuid.New()},
		HeadName:  "Asha Rao",
		Address:   "12 Lake Road",
		Phone:     "9800012345",
	}
	s.household.Members = []dbm.Member{{
		BaseModel:   dbm.BaseModel{ID: uuid.New()},
		HouseholdID: s.household.ID,
		FirstName:   "Asha",
		LastName:    "Rao",
		DOB:         time.Date(1980, 5, 1, 0, 0, 0, 0, time.UTC),
		Relation:    dbm.RelationHead,
		NationalID:  "NID-0001",
	}}
	s.other = &dbm.Household{BaseModel: dbm.BaseModel{ID: uuid.New()}, HeadName: "Ben Ode", Phone: "9800099999"}
	s.households = newFakeHouseholdRepo(s.household, s.other)
	s.cards = newFakeCardRepo(s.plans, s.households)

	s.metrics = infra.NewMetrics()
	s.numbers = NewRandomCardNumbers(nil)
	s.cfg = CardServiceConfig{
		MaxAttempts: 10,
		RetryBase:   time.Nanosecond,
		Location:    time.UTC,
		Now:         func() time.Time { return time.Date(2024, 3, 10, 15, 30, 0, 0, time.UTC) },
	}

	s.admin = request_models.Actor{UserID: uuid.New(), Role: dbm.RoleAdmin}
	s.agent = request_models.Actor{UserID: uuid.New(), Role: dbm.RoleOfficeAgent}
	s.hospital = request_models.Actor{UserID: uuid.New(), Role: dbm.RoleHospitalUser}
}

func (s *CardServiceSuite) service() CardServiceInterface {
	return NewCardService(s.cards, s.households, s.plans, s.numbers, s.cfg, zap.NewNop(), s.metrics)
}

func (s *CardServiceSuite) createReq(household *dbm.Household, plan *dbm.Plan) request_models.CreateCardRequest {
	return request_models.CreateCardRequest{
		HouseholdID: household.ID.String(),
		PlanID:      plan.ID.String(),
	}
}

func (s *CardServiceSuite) seedCard(number string, household *dbm.Household, plan *dbm.Plan, issue time.Time) dbm.Card {
	return s.cards.put(dbm.Card{
		CardNumber:  number,
		HouseholdID: household.ID,
		PlanID:      plan.ID,
		Status:      dbm.CardStatusActive,
		IssueDate:   issue,
		ExpiryDate:  utils.AddCalendarDays(issue, plan.DurationDays),
		CreatedByID: s.admin.UserID,
		UpdatedByID: s.admin.UserID,
	})
}

func metadataOf(s *suite.Suite, entry dbm.AuditLog) map[string]any {
	var m map[string]any
	s.Require().NoError(json.Unmarshal(entry.Metadata, &m))
	return m
}

func (s *CardServiceSuite) TestCreateCard() {
	s.Run("issues a sixteen digit number with defaults", func() {
		card, err := s.service().CreateCard(s.ctx, s.agent, s.createReq(s.household, s.yearly))
		s.Require().NoError(err)

		s.Regexp(regexp.MustCompile(`^[0-9]{16}$`), card.CardNumber)
		s.Equal(dbm.CardStatusActive, card.Status)
		s.Equal("2024-03-10", utils.FormatDate(card.IssueDate))
		s.Equal("2025-03-10", utils.FormatDate(card.ExpiryDate))
		s.Equal(s.agent.UserID, card.CreatedByID)
		s.Require().NotNil(card.Plan)
		s.Equal("Basic", card.Plan.Name)
		s.Equal(1, s.cards.count())
		s.Equal(float64(1), testutil.ToFloat64(s.metrics.CardsIssued))
	})
}

func (s *CardServiceSuite) TestCreateCardWritesOneAuditEntry() {
	status := dbm.CardStatusSuspended
	req := s.createReq(s.household, s.yearly)
	req.Status = &status

	card, err := s.service().CreateCard(s.ctx, s.admin, req)
	s.Require().NoError(err)

	s.Require().Len(s.cards.audits, 1)
	entry := s.cards.audits[0]
	s.Equal(dbm.AuditCardCreated, entry.Action)
	s.Equal(s.admin.UserID, entry.UserID)
	s.NotEqual(uuid.Nil, entry.UserID)
	s.Require().NotNil(entry.CardID)
	s.Equal(card.ID, *entry.CardID)

	meta := metadataOf(&s.Suite, entry)
	s.Equal(card.CardNumber, meta["cardNumber"])
	s.Equal(s.household.ID.String(), meta["householdId"])
	s.Equal(s.yearly.ID.String(), meta["planId"])
	s.Equal("SUSPENDED", meta["status"])
}

func (s *CardServiceSuite) TestExpiryUsesCalendarDays() {
	cases := []struct {
		name   string
		issue  string
		plan   func() *dbm.Plan
		expiry string
	}{
		{"month end rolls over", "2024-01-31", func() *dbm.Plan { return s.daily }, "2024-02-01"},
		{"leap day plus a year", "2024-02-29", func() *dbm.Plan { return s.yearly }, "2025-02-28"},
		{"thirty days across february", "2024-01-31", func() *dbm.Plan { return s.monthly }, "2024-03-01"},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.SetupTest()
			req := s.createReq(s.household, tc.plan())
			req.IssueDate = &request_models.Date{Raw: tc.issue}

			card, err := s.service().CreateCard(s.ctx, s.admin, req)
			s.Require().NoError(err)
			s.Equal(tc.issue, utils.FormatDate(card.IssueDate))
			s.Equal(tc.expiry, utils.FormatDate(card.ExpiryDate))
		})
	}
}

func (s *CardServiceSuite) TestExpiryKeepsWallClockAcrossDST() {
	loc, err := time.LoadLocation("America/New_York")
	s.Require().NoError(err)
	s.cfg.Location = loc

	req := s.createReq(s.household, s.daily)
	req.IssueDate = &request_models.Date{Raw: "2024-03-10"}

	card, err := s.service().CreateCard(s.ctx, s.admin, req)
	s.Require().NoError(err)

	expiry := card.ExpiryDate.In(loc)
	s.Equal("2024-03-11", utils.FormatDate(expiry))
	s.Equal(0, expiry.Hour())
	s.Equal(23*time.Hour, card.ExpiryDate.Sub(card.IssueDate))

	s.Run("timestamp with fixed offset", func() {
		s.SetupTest()
		s.cfg.Location = loc

		req := s.createReq(s.household, s.daily)
		req.IssueDate = &request_models.Date{Raw: "2024-03-09T12:00:00-05:00"}

		card, err := s.service().CreateCard(s.ctx, s.admin, req)
		s.Require().NoError(err)

		expiry := card.ExpiryDate.In(loc)
		s.Equal("2024-03-10", utils.FormatDate(expiry))
		s.Equal(12, expiry.Hour())
		s.Equal(23*time.Hour, card.ExpiryDate.Sub(card.IssueDate))
	})
}

func (s *CardServiceSuite) TestCreateCardRejections() {
	s.Run("household already has a card", func() {
		s.SetupTest()
		s.seedCard("1234567812345678", s.household, s.yearly, time.Now())

		_, err := s.service().CreateCard(s.ctx, s.admin, s.createReq(s.household, s.yearly))
		s.ErrorIs(err, utils.ErrHouseholdHasCard)
		s.ErrorIs(err, utils.ErrConflict)
		s.Equal(1, s.cards.count())
		s.Empty(s.cards.audits)
	})

	s.Run("plan not found", func() {
		s.SetupTest()
		req := s.createReq(s.household, s.yearly)
		req.PlanID = uuid.NewString()

		_, err := s.service().CreateCard(s.ctx, s.admin, req)
		s.ErrorIs(err, utils.ErrPlanNotFound)
		s.ErrorIs(err, utils.ErrNotFound)
		s.Zero(s.cards.count())
		s.Empty(s.cards.audits)
	})

	s.Run("household not found", func() {
		s.SetupTest()
		req := s.createReq(s.household, s.yearly)
		req.HouseholdID = uuid.NewString()

		_, err := s.service().CreateCard(s.ctx, s.admin, req)
		s.ErrorIs(err, utils.ErrHouseholdNotFound)
		s.Zero(s.cards.count())
	})

	s.Run("malformed household id", func() {
		s.SetupTest()
		req := s.createReq(s.household, s.yearly)
		req.HouseholdID = "not-a-uuid"

		_, err := s.service().CreateCard(s.ctx, s.admin, req)
		s.ErrorIs(err, utils.ErrValidation)
	})

	s.Run("hospital users may not issue", func() {
		s.SetupTest()
		_, err := s.service().CreateCard(s.ctx, s.hospital, s.createReq(s.household, s.yearly))
		s.ErrorIs(err, utils.ErrForbidden)
		s.Zero(s.cards.count())
		s.Empty(s.cards.audits)
	})
}

func (s *CardServiceSuite) TestCreateCardRetriesTakenNumbers() {
	s.Run("number already stored", func() {
		s.SetupTest()
		s.seedCard("1111111111111111", s.other, s.yearly, time.Now())
		numbers := &sequenceNumbers{values: []string{"1111111111111111", "2222222222222222"}}
		s.numbers = numbers

		card, err := s.service().CreateCard(s.ctx, s.admin, s.createReq(s.household, s.yearly))
		s.Require().NoError(err)
		s.Equal("2222222222222222", card.CardNumber)
		s.Equal(2, numbers.calls)
		s.Equal(float64(1), testutil.ToFloat64(s.metrics.CardNumberCollisions))
	})

	s.Run("number taken at insert", func() {
		s.SetupTest()
		s.cards.insertErrs = []error{utils.ErrCardNumberTaken}
		s.numbers = &sequenceNumbers{values: []string{"3333333333333333", "4444444444444444"}}

		card, err := s.service().CreateCard(s.ctx, s.admin, s.createReq(s.household, s.yearly))
		s.Require().NoError(err)
		s.Equal("4444444444444444", card.CardNumber)
		s.Len(s.cards.audits, 1)
	})

	s.Run("gives up after the attempt budget", func() {
		s.SetupTest()
		s.seedCard("5555555555555555", s.other, s.yearly, time.Now())
		numbers := &sequenceNumbers{values: []string{"5555555555555555"}}
		s.numbers = numbers
		s.cfg.MaxAttempts = 3

		_, err := s.service().CreateCard(s.ctx, s.admin, s.createReq(s.household, s.yearly))
		s.ErrorIs(err, utils.ErrCardNumberExhausted)
		s.Equal(3, numbers.calls)
		s.Equal(1, s.cards.count())
		s.Empty(s.cards.audits)
		s.Equal(float64(1), testutil.ToFloat64(s.metrics.CardNumberExhausted))
	})

	s.Run("household conflict at insert is not retried", func() {
		s.SetupTest()
		s.cards.insertErrs = []error{utils.ErrHouseholdHasCard}
		numbers := &sequenceNumbers{values: []string{"6666666666666666"}}
		s.numbers = numbers

		_, err := s.service().CreateCard(s.ctx, s.admin, s.createReq(s.household, s.yearly))
		s.ErrorIs(err, utils.ErrHouseholdHasCard)
		s.Equal(1, numbers.calls)
	})

	s.Run("storage failure is not retried", func() {
		s.SetupTest()
		s.cards.insertErrs = []error{errors.New("connection reset")}
		numbers := &sequenceNumbers{values: []string{"7777777777777777"}}
		s.numbers = numbers

		_, err := s.service().CreateCard(s.ctx, s.admin, s.createReq(s.household, s.yearly))
		s.ErrorIs(err, utils.ErrDatabaseError)
		s.Equal(1, numbers.calls)
	})
}

func (s *CardServiceSuite) TestUpdateCard() {
	issue := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	s.Run("plan change recomputes expiry from the stored issue date", func() {
		s.SetupTest()
		stored := s.seedCard("1234123412341234", s.household, s.yearly, issue)
		planID := s.monthly.ID.String()

		card, err := s.service().UpdateCard(s.ctx, s.agent, stored.ID.String(), request_models.UpdateCardRequest{PlanID: &planID})
		s.Require().NoError(err)
		s.Equal(s.monthly.ID, card.PlanID)
		s.Equal("2024-01-31", utils.FormatDate(card.IssueDate))
		s.Equal("2024-03-01", utils.FormatDate(card.ExpiryDate))
		s.Equal(s.agent.UserID, card.UpdatedByID)
	})

	s.Run("issue date change recomputes expiry with the current plan", func() {
		s.SetupTest()
		stored := s.seedCard("1234123412341234", s.household, s.yearly, issue)

		card, err := s.service().UpdateCard(s.ctx, s.admin, stored.ID.String(), request_models.UpdateCardRequest{
			IssueDate: &request_models.Date{Raw: "2024-02-29"},
		})
		s.Require().NoError(err)
		s.Equal("2025-02-28", utils.FormatDate(card.ExpiryDate))
	})

	s.Run("status only leaves dates alone", func() {
		s.SetupTest()
		stored := s.seedCard("1234123412341234", s.household, s.yearly, issue)
		status := dbm.CardStatusSuspended

		card, err := s.service().UpdateCard(s.ctx, s.admin, stored.ID.String(), request_models.UpdateCardRequest{Status: &status})
		s.Require().NoError(err)
		s.Equal(dbm.CardStatusSuspended, card.Status)
		s.True(stored.ExpiryDate.Equal(card.ExpiryDate))
		s.True(stored.IssueDate.Equal(card.IssueDate))

		s.Require().Len(s.cards.audits, 1)
		entry := s.cards.audits[0]
		s.Equal(dbm.AuditCardUpdated, entry.Action)
		s.Equal(s.admin.UserID, entry.UserID)
		meta := metadataOf(&s.Suite, entry)
		s.Equal("ACTIVE", meta["previousStatus"])
		s.Equal("SUSPENDED", meta["newStatus"])
	})

	s.Run("missing card", func() {
		s.SetupTest()
		status := dbm.CardStatusSuspended
		_, err := s.service().UpdateCard(s.ctx, s.admin, uuid.NewString(), request_models.UpdateCardRequest{Status: &status})
		s.ErrorIs(err, utils.ErrCardNotFound)
		s.Empty(s.cards.audits)
	})

	s.Run("missing plan leaves the card untouched", func() {
		s.SetupTest()
		stored := s.seedCard("1234123412341234", s.household, s.yearly, issue)
		planID := uuid.NewString()

		_, err := s.service().UpdateCard(s.ctx, s.admin, stored.ID.String(), request_models.UpdateCardRequest{PlanID: &planID})
		s.ErrorIs(err, utils.ErrPlanNotFound)
		after, _ := s.cards.FindByID(s.ctx, stored.ID)
		s.Equal(s.yearly.ID, after.PlanID)
		s.Empty(s.cards.audits)
	})

	s.Run("empty body", func() {
		s.SetupTest()
		stored := s.seedCard("1234123412341234", s.household, s.yearly, issue)
		_, err := s.service().UpdateCard(s.ctx, s.admin, stored.ID.String(), request_models.UpdateCardRequest{})
		s.ErrorIs(err, utils.ErrValidation)
	})
}

func (s *CardServiceSuite) TestDeleteCard() {
	s.Run("removes the card and records it", func() {
		s.SetupTest()
		stored := s.seedCard("9876987698769876", s.household, s.yearly, time.Now())

		s.Require().NoError(s.service().DeleteCard(s.ctx, s.agent, stored.ID.String()))
		s.Zero(s.cards.count())

		s.Require().Len(s.cards.audits, 1)
		entry := s.cards.audits[0]
		s.Equal(dbm.AuditCardDeleted, entry.Action)
		s.Equal(s.agent.UserID, entry.UserID)
		s.Nil(entry.CardID)
		meta := metadataOf(&s.Suite, entry)
		s.Equal(stored.ID.String(), meta["cardId"])
		s.Equal("9876987698769876", meta["cardNumber"])
		s.Equal(s.household.ID.String(), meta["householdId"])
		s.Equal("ACTIVE", meta["status"])
	})

	s.Run("missing card", func() {
		s.SetupTest()
		err := s.service().DeleteCard(s.ctx, s.admin, uuid.NewString())
		s.ErrorIs(err, utils.ErrCardNotFound)
		s.Empty(s.cards.audits)
	})
}

func (s *CardServiceSuite) TestLookupCards() {
	s.seedCard("4000123412345678", s.household, s.yearly, time.Now())
	suspended := s.seedCard("4000999988887777", s.other, s.yearly, time.Now())
	suspended.Status = dbm.CardStatusSuspended
	s.cards.put(suspended)

	s.Run("card number fragment ignores punctuation", func() {
		cards, err := s.service().LookupCards(s.ctx, "1234-5678", "")
		s.Require().NoError(err)
		s.Require().Len(cards, 1)
		s.Equal("4000123412345678", cards[0].CardNumber)
	})

	s.Run("household phone", func() {
		cards, err := s.service().LookupCards(s.ctx, "9800012345", "")
		s.Require().NoError(err)
		s.Len(cards, 1)
	})

	s.Run("member national id", func() {
		cards, err := s.service().LookupCards(s.ctx, "NID-0001", "")
		s.Require().NoError(err)
		s.Require().Len(cards, 1)
		s.Equal(s.household.ID, cards[0].HouseholdID)
	})

	s.Run("status filter", func() {
		cards, err := s.service().LookupCards(s.ctx, "4000", "SUSPENDED")
		s.Require().NoError(err)
		s.Require().Len(cards, 1)
		s.Equal("4000999988887777", cards[0].CardNumber)
	})

	s.Run("nothing matches", func() {
		_, err := s.service().LookupCards(s.ctx, "0000000000", "")
		s.ErrorIs(err, utils.ErrNoCardsFound)
	})

	s.Run("blank query", func() {
		_, err := s.service().LookupCards(s.ctx, "  ", "")
		s.ErrorIs(err, utils.ErrValidation)
	})

	s.Run("unknown status", func() {
		_, err := s.service().LookupCards(s.ctx, "4000", "LOST")
		s.ErrorIs(err, utils.ErrValidation)
	})
}

func (s *CardServiceSuite) TestListAndGet() {
	stored := s.seedCard("4000123412345678", s.household, s.yearly, time.Now())
	s.seedCard("4000999988887777", s.other, s.monthly, time.Now())

	all, err := s.service().ListCards(s.ctx, request_models.CardFilter{})
	s.Require().NoError(err)
	s.Len(all, 2)

	householdID := s.household.ID.String()
	mine, err := s.service().ListCards(s.ctx, request_models.CardFilter{HouseholdID: &householdID})
	s.Require().NoError(err)
	s.Require().Len(mine, 1)
	s.Equal(stored.ID, mine[0].ID)

	card, err := s.service().GetCard(s.ctx, stored.ID.String())
	s.Require().NoError(err)
	s.Require().NotNil(card.Household)
	s.Require().Len(card.Household.Members, 1)
	s.Equal("NID-0001", card.Household.Members[0].NationalID)

	_, err = s.service().GetCard(s.ctx, uuid.NewString())
	s.ErrorIs(err, utils.ErrCardNotFound)
}

func (s *CardServiceSuite) TestPublicCard() {
	s.seedCard("4000123412345678", s.household, s.yearly, time.Now())

	card, err := s.service().GetPublicCard(s.ctx, "4000123412345678")
	s.Require().NoError(err)
	raw, err := json.Marshal(card)
	s.Require().NoError(err)
	s.NotContains(string(raw), "nationalId")
	s.NotContains(string(raw), "NID-0001")
	s.Contains(string(raw), "Asha")

	s.NoError(s.service().PublicCardExists(s.ctx, "4000123412345678"))
	s.ErrorIs(s.service().PublicCardExists(s.ctx, "4000000000000000"), utils.ErrCardNotFound)
}

func TestRandomCardNumbers(t *testing.T) {
	src := NewRandomCardNumbers(nil)
	pattern := regexp.MustCompile(`^[0-9]{16}$`)
	for i := 0; i < 200; i++ {
		n, err := src.Next()
		if err != nil {
			t.Fatal(err)
		}
		if !pattern.MatchString(n) {
			t.Fatalf("card number %q is not 16 digits", n)
		}
	}
}
