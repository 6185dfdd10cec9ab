package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"healthcard/internal/infra"
	dbm "healthcard/internal/models/db_models"
	"healthcard/pkg/utils"
)

const (
	uniqueViolation = "23505"

	cardNumberConstraint    = "uq_cards_card_number"
	cardHouseholdConstraint = "uq_cards_household_id"
)

type CardRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*dbm.Card, error)
	FindByHouseholdID(ctx context.Context, householdID uuid.UUID) (*dbm.Card, error)
	FindByCardNumber(ctx context.Context, cardNumber string) (*dbm.Card, error)
	ExistsByCardNumber(ctx context.Context, cardNumber string) (bool, error)
	List(ctx context.Context, filter CardFilter) ([]dbm.Card, error)
	Lookup(ctx context.Context, query LookupQuery) ([]dbm.Card, error)

	// The *WithAudit writes persist the card change and its audit entry atomically.
	CreateWithAudit(ctx context.Context, card *dbm.Card, entry *dbm.AuditLog) error
	UpdateWithAudit(ctx context.Context, card *dbm.Card, entry *dbm.AuditLog) error
	DeleteWithAudit(ctx context.Context, card *dbm.Card, entry *dbm.AuditLog) error
}

type CardFilter struct {
	Status      *dbm.CardStatus
	HouseholdID *uuid.UUID
}

// LookupQuery matches cards in Status whose number contains CardNumberFragment,
// whose household phone equals Raw, or whose household has a member with
// national id equal to Raw.
type LookupQuery struct {
	Raw                string
	CardNumberFragment string
	Status             dbm.CardStatus
}

type cardRepository struct {
	db *gorm.DB
}

func NewCardRepository(db *gorm.DB) CardRepository {
	return &cardRepository{db: db}
}

func (r *cardRepository) withDetails(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Household.Members", func(db *gorm.DB) *gorm.DB {
			return db.Order("members.created_at ASC")
		}).
		Preload("Plan")
}

func (r *cardRepository) findOne(ctx context.Context, query string, args ...any) (*dbm.Card, error) {
	var card dbm.Card
	err := r.withDetails(ctx).Where(query, args...).First(&card).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &card, nil
}

func (r *cardRepository) FindByID(ctx context.Context, id uuid.UUID) (*dbm.Card, error) {
	return r.findOne(ctx, "cards.id = ?", id)
}

func (r *cardRepository) FindByHouseholdID(ctx context.Context, householdID uuid.UUID) (*dbm.Card, error) {
	return r.findOne(ctx, "cards.household_id = ?", householdID)
}

func (r *cardRepository) FindByCardNumber(ctx context.Context, cardNumber string) (*dbm.Card, error) {
	return r.findOne(ctx, "cards.card_number = ?", cardNumber)
}

func (r *cardRepository) ExistsByCardNumber(ctx context.Context, cardNumber string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Card{}).
		Where("card_number = ?", cardNumber).
		Limit(1).
		Count(&n).Error
	return n > 0, err
}

func (r *cardRepository) List(ctx context.Context, filter CardFilter) ([]dbm.Card, error) {
	var cards []dbm.Card
	q := r.db.WithContext(ctx).Preload("Household").Preload("Plan")
	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}
	if filter.HouseholdID != nil {
		q = q.Where("household_id = ?", *filter.HouseholdID)
	}
	err := q.Order("created_at DESC").Find(&cards).Error
	return cards, err
}

func (r *cardRepository) Lookup(ctx context.Context, query LookupQuery) ([]dbm.Card, error) {
	var cards []dbm.Card

	match := r.db.
		Where("cards.household_id IN (SELECT id FROM households WHERE phone = ?)", query.Raw).
		Or("cards.household_id IN (SELECT household_id FROM members WHERE national_id = ?)", query.Raw)
	if query.CardNumberFragment != "" {
		match = match.Or("cards.card_number ILIKE ?", "%"+query.CardNumberFragment+"%")
	}

	err := r.withDetails(ctx).
		Where("cards.status = ?", query.Status).
		Where(match).
		Order("cards.created_at DESC").
		Find(&cards).Error
	return cards, err
}

func (r *cardRepository) CreateWithAudit(ctx context.Context, card *dbm.Card, entry *dbm.AuditLog) (err error) {
	tx := infra.StartTransaction(r.db.WithContext(ctx))
	if tx.Error != nil {
		return tx.Error
	}
	defer func() { err = infra.ReleaseTransaction(tx, err) }()

	if err = tx.Omit(clause.Associations).Create(card).Error; err != nil {
		return classifyCardWriteError(err)
	}
	entry.CardID = &card.ID
	return tx.Create(entry).Error
}

func (r *cardRepository) UpdateWithAudit(ctx context.Context, card *dbm.Card, entry *dbm.AuditLog) (err error) {
	tx := infra.StartTransaction(r.db.WithContext(ctx))
	if tx.Error != nil {
		return tx.Error
	}
	defer func() { err = infra.ReleaseTransaction(tx, err) }()

	card.UpdatedAt = time.Now().UTC()
	res := tx.Model(&dbm.Card{}).
		Where("id = ?", card.ID).
		Updates(map[string]any{
			"plan_id":       card.PlanID,
			"status":        card.Status,
			"issue_date":    card.IssueDate,
			"expiry_date":   card.ExpiryDate,
			"updated_by_id": card.UpdatedByID,
			"updated_at":    card.UpdatedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrCardNotFound
	}
	entry.CardID = &card.ID
	return tx.Create(entry).Error
}

func (r *cardRepository) DeleteWithAudit(ctx context.Context, card *dbm.Card, entry *dbm.AuditLog) (err error) {
	tx := infra.StartTransaction(r.db.WithContext(ctx))
	if tx.Error != nil {
		return tx.Error
	}
	defer func() { err = infra.ReleaseTransaction(tx, err) }()

	res := tx.Delete(&dbm.Card{}, "id = ?", card.ID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrCardNotFound
	}
	entry.CardID = nil
	return tx.Create(entry).Error
}

func classifyCardWriteError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return err
	}
	switch pgErr.ConstraintName {
	case cardNumberConstraint:
		return utils.ErrCardNumberTaken
	case cardHouseholdConstraint:
		return utils.ErrHouseholdHasCard
	}
	return err
}
