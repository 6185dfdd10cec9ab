package services

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	dbm "healthcard/internal/models/db_models"
	"healthcard/internal/repositories"
	"healthcard/pkg/utils"
)

type fakePlanRepo struct {
	plans map[uuid.UUID]*dbm.Plan
}

func newFakePlanRepo(plans ...*dbm.Plan) *fakePlanRepo {
	r := &fakePlanRepo{plans: map[uuid.UUID]*dbm.Plan{}}
	for _, p := range plans {
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		r.plans[p.ID] = p
	}
	return r
}

func (r *fakePlanRepo) GetPlanInfoById(_ context.Context, id uuid.UUID) (*dbm.Plan, error) {
	return r.plans[id], nil
}

func (r *fakePlanRepo) GetPlanByName(_ context.Context, name string) (*dbm.Plan, error) {
	for _, p := range r.plans {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePlanRepo) CreatePlan(_ context.Context, plan *dbm.Plan) error {
	if plan.ID == uuid.Nil {
		plan.ID = uuid.New()
	}
	r.plans[plan.ID] = plan
	return nil
}

type fakeHouseholdRepo struct {
	households map[uuid.UUID]*dbm.Household
}

func newFakeHouseholdRepo(households ...*dbm.Household) *fakeHouseholdRepo {
	r := &fakeHouseholdRepo{households: map[uuid.UUID]*dbm.Household{}}
	for _, h := range households {
		r.households[h.ID] = h
	}
	return r
}

func (r *fakeHouseholdRepo) FindByID(_ context.Context, id uuid.UUID) (*dbm.Household, error) {
	return r.households[id], nil
}

func (r *fakeHouseholdRepo) FindMembers(_ context.Context, householdID uuid.UUID, ids []uuid.UUID) ([]dbm.Member, error) {
	h := r.households[householdID]
	if h == nil {
		return nil, nil
	}
	var out []dbm.Member
	for _, id := range ids {
		for _, m := range h.Members {
			if m.ID == id {
				out = append(out, m)
			}
		}
	}
	return out, nil
}

// fakeCardRepo keeps cards in memory and enforces the same uniqueness rules as
// the cards table.
type fakeCardRepo struct {
	mu         sync.Mutex
	cards      map[uuid.UUID]dbm.Card
	audits     []dbm.AuditLog
	plans      *fakePlanRepo
	households *fakeHouseholdRepo

	// insertErrs are returned, in order, by the next CreateWithAudit calls.
	insertErrs  []error
	existsCalls int
}

func newFakeCardRepo(plans *fakePlanRepo, households *fakeHouseholdRepo) *fakeCardRepo {
	return &fakeCardRepo{
		cards:      map[uuid.UUID]dbm.Card{},
		plans:      plans,
		households: households,
	}
}

func (r *fakeCardRepo) put(card dbm.Card) dbm.Card {
	r.mu.Lock()
	defer r.mu.Unlock()
	if card.ID == uuid.Nil {
		card.ID = uuid.New()
	}
	card.Plan = nil
	card.Household = nil
	r.cards[card.ID] = card
	return card
}

func (r *fakeCardRepo) hydrate(card dbm.Card) *dbm.Card {
	card.Plan = r.plans.plans[card.PlanID]
	card.Household = r.households.households[card.HouseholdID]
	return &card
}

func (r *fakeCardRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.cards)
}

func (r *fakeCardRepo) FindByID(_ context.Context, id uuid.UUID) (*dbm.Card, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	card, ok := r.cards[id]
	if !ok {
		return nil, nil
	}
	return r.hydrate(card), nil
}

func (r *fakeCardRepo) FindByHouseholdID(_ context.Context, householdID uuid.UUID) (*dbm.Card, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, card := range r.cards {
		if card.HouseholdID == householdID {
			return r.hydrate(card), nil
		}
	}
	return nil, nil
}

func (r *fakeCardRepo) FindByCardNumber(_ context.Context, cardNumber string) (*dbm.Card, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, card := range r.cards {
		if card.CardNumber == cardNumber {
			return r.hydrate(card), nil
		}
	}
	return nil, nil
}

func (r *fakeCardRepo) ExistsByCardNumber(_ context.Context, cardNumber string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.existsCalls++
	for _, card := range r.cards {
		if card.CardNumber == cardNumber {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCardRepo) List(_ context.Context, filter repositories.CardFilter) ([]dbm.Card, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []dbm.Card
	for _, card := range r.cards {
		if filter.Status != nil && card.Status != *filter.Status {
			continue
		}
		if filter.HouseholdID != nil && card.HouseholdID != *filter.HouseholdID {
			continue
		}
		out = append(out, *r.hydrate(card))
	}
	return out, nil
}

func (r *fakeCardRepo) Lookup(_ context.Context, q repositories.LookupQuery) ([]dbm.Card, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []dbm.Card
	for _, card := range r.cards {
		if card.Status != q.Status {
			continue
		}
		c := r.hydrate(card)
		match := q.CardNumberFragment != "" && strings.Contains(card.CardNumber, q.CardNumberFragment)
		if h := c.Household; h != nil {
			match = match || h.Phone == q.Raw
			for _, m := range h.Members {
				match = match || m.NationalID == q.Raw
			}
		}
		if match {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeCardRepo) CreateWithAudit(_ context.Context, card *dbm.Card, entry *dbm.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.insertErrs) > 0 {
		err := r.insertErrs[0]
		r.insertErrs = r.insertErrs[1:]
		return err
	}
	for _, existing := range r.cards {
		if existing.CardNumber == card.CardNumber {
			return utils.ErrCardNumberTaken
		}
		if existing.HouseholdID == card.HouseholdID {
			return utils.ErrHouseholdHasCard
		}
	}
	if card.ID == uuid.Nil {
		card.ID = uuid.New()
	}
	stored := *card
	stored.Plan, stored.Household = nil, nil
	r.cards[card.ID] = stored

	entry.CardID = &card.ID
	r.audits = append(r.audits, *entry)
	return nil
}

func (r *fakeCardRepo) UpdateWithAudit(_ context.Context, card *dbm.Card, entry *dbm.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.cards[card.ID]; !ok {
		return utils.ErrCardNotFound
	}
	stored := *card
	stored.Plan, stored.Household = nil, nil
	r.cards[card.ID] = stored

	entry.CardID = &card.ID
	r.audits = append(r.audits, *entry)
	return nil
}

func (r *fakeCardRepo) DeleteWithAudit(_ context.Context, card *dbm.Card, entry *dbm.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.cards[card.ID]; !ok {
		return utils.ErrCardNotFound
	}
	delete(r.cards, card.ID)

	entry.CardID = nil
	r.audits = append(r.audits, *entry)
	return nil
}

type fakeBeneficiaryRepo struct {
	items map[uuid.UUID]dbm.Beneficiary
}

func newFakeBeneficiaryRepo() *fakeBeneficiaryRepo {
	return &fakeBeneficiaryRepo{items: map[uuid.UUID]dbm.Beneficiary{}}
}

func (r *fakeBeneficiaryRepo) FindByID(_ context.Context, id uuid.UUID) (*dbm.Beneficiary, error) {
	b, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (r *fakeBeneficiaryRepo) List(_ context.Context, filter repositories.BeneficiaryFilter) ([]dbm.Beneficiary, error) {
	var out []dbm.Beneficiary
	for _, b := range r.items {
		if filter.HouseholdID != nil && b.HouseholdID != *filter.HouseholdID {
			continue
		}
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *fakeBeneficiaryRepo) Create(_ context.Context, b *dbm.Beneficiary) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	r.items[b.ID] = *b
	return nil
}

func (r *fakeBeneficiaryRepo) Update(_ context.Context, b *dbm.Beneficiary, members []dbm.Member) error {
	if members != nil {
		b.Members = members
	}
	r.items[b.ID] = *b
	return nil
}

func (r *fakeBeneficiaryRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}

type fakeUserRepo struct {
	users     map[string]*dbm.User
	hospitals []dbm.Hospital
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*dbm.User{}}
}

func (r *fakeUserRepo) InsertTx(_ context.Context, user *dbm.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users[user.Email] = user
	return nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*dbm.User, error) {
	return r.users[email], nil
}

func (r *fakeUserRepo) CreateHospitalAccount(ctx context.Context, user *dbm.User, hospital *dbm.Hospital) error {
	if err := r.InsertTx(ctx, user); err != nil {
		return err
	}
	hospital.UserID = user.ID
	r.hospitals = append(r.hospitals, *hospital)
	user.Hospital = hospital
	return nil
}

// sequenceNumbers yields values in order and then repeats the last one.
type sequenceNumbers struct {
	values []string
	calls  int
}

func (s *sequenceNumbers) Next() (string, error) {
	i := s.calls
	if i >= len(s.values) {
		i = len(s.values) - 1
	}
	s.calls++
	return s.values[i], nil
}
