package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"healthcard/internal/models/db_models"
)

type HouseholdRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Household, error)
	FindMembers(ctx context.Context, householdID uuid.UUID, memberIDs []uuid.UUID) ([]db_models.Member, error)
}

type householdRepository struct {
	db *gorm.DB
}

func NewHouseholdRepository(db *gorm.DB) HouseholdRepository {
	return &householdRepository{db: db}
}

func (h *householdRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Household, error) {
	var household db_models.Household
	err := h.db.WithContext(ctx).Preload("Members").First(&household, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &household, nil
}

// FindMembers returns the members of householdID among memberIDs. Ids that do
// not belong to the household are silently absent from the result.
func (h *householdRepository) FindMembers(ctx context.Context, householdID uuid.UUID, memberIDs []uuid.UUID) ([]db_models.Member, error) {
	var members []db_models.Member
	if len(memberIDs) == 0 {
		return members, nil
	}
	err := h.db.WithContext(ctx).
		Where("household_id = ? AND id IN ?", householdID, memberIDs).
		Find(&members).Error
	return members, err
}
