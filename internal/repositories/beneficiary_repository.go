package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"healthcard/internal/infra"
	dbm "healthcard/internal/models/db_models"
)

type BeneficiaryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*dbm.Beneficiary, error)
	List(ctx context.Context, filter BeneficiaryFilter) ([]dbm.Beneficiary, error)
	Create(ctx context.Context, b *dbm.Beneficiary) error
	// Update writes b's scalar fields; when members is non-nil the member set is replaced.
	Update(ctx context.Context, b *dbm.Beneficiary, members []dbm.Member) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type BeneficiaryFilter struct {
	HouseholdID *uuid.UUID
	Status      *dbm.BenefitStatus
}

type beneficiaryRepository struct {
	db *gorm.DB
}

func NewBeneficiaryRepository(db *gorm.DB) BeneficiaryRepository {
	return &beneficiaryRepository{db: db}
}

func (r *beneficiaryRepository) FindByID(ctx context.Context, id uuid.UUID) (*dbm.Beneficiary, error) {
	var b dbm.Beneficiary
	err := r.db.WithContext(ctx).
		Preload("Household").
		Preload("Members").
		First(&b, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *beneficiaryRepository) List(ctx context.Context, filter BeneficiaryFilter) ([]dbm.Beneficiary, error) {
	var items []dbm.Beneficiary
	q := r.db.WithContext(ctx).Preload("Household").Preload("Members")
	if filter.HouseholdID != nil {
		q = q.Where("household_id = ?", *filter.HouseholdID)
	}
	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}
	err := q.Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *beneficiaryRepository) Create(ctx context.Context, b *dbm.Beneficiary) (err error) {
	tx := infra.StartTransaction(r.db.WithContext(ctx))
	if tx.Error != nil {
		return tx.Error
	}
	defer func() { err = infra.ReleaseTransaction(tx, err) }()

	members := b.Members
	if err = tx.Omit(clause.Associations).Create(b).Error; err != nil {
		return err
	}
	if err = tx.Model(b).Association("Members").Append(members); err != nil {
		return err
	}
	b.Members = members
	return nil
}

func (r *beneficiaryRepository) Update(ctx context.Context, b *dbm.Beneficiary, members []dbm.Member) (err error) {
	tx := infra.StartTransaction(r.db.WithContext(ctx))
	if tx.Error != nil {
		return tx.Error
	}
	defer func() { err = infra.ReleaseTransaction(tx, err) }()

	err = tx.Model(&dbm.Beneficiary{}).
		Where("id = ?", b.ID).
		Updates(map[string]any{
			"benefit_type": b.BenefitType,
			"status":       b.Status,
			"amount":       b.Amount,
			"description":  b.Description,
			"start_date":   b.StartDate,
			"end_date":     b.EndDate,
			"updated_at":   gorm.Expr("now()"),
		}).Error
	if err != nil {
		return err
	}
	if members != nil {
		if err = tx.Model(b).Association("Members").Replace(members); err != nil {
			return err
		}
		b.Members = members
	}
	return nil
}

func (r *beneficiaryRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&dbm.Beneficiary{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}
