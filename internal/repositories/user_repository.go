package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"healthcard/internal/infra"
	"healthcard/internal/models/db_models"
)

type UserRepository interface {
	InsertTx(ctx context.Context, user *db_models.User) error
	FindByEmail(ctx context.Context, email string) (*db_models.User, error)
	// CreateHospitalAccount writes the user and its hospital profile together or not at all.
	CreateHospitalAccount(ctx context.Context, user *db_models.User, hospital *db_models.Hospital) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		db: db,
	}
}

func (u *userRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {

	var user db_models.User
	err := u.db.WithContext(ctx).Preload("Hospital").First(&user, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (u *userRepository) InsertTx(ctx context.Context, user *db_models.User) error {
	return u.db.WithContext(ctx).Omit("Hospital").Create(user).Error
}

func (u *userRepository) CreateHospitalAccount(ctx context.Context, user *db_models.User, hospital *db_models.Hospital) (err error) {
	tx := infra.StartTransaction(u.db.WithContext(ctx))
	if tx.Error != nil {
		return tx.Error
	}
	defer func() { err = infra.ReleaseTransaction(tx, err) }()

	if err = tx.Omit("Hospital").Create(user).Error; err != nil {
		return err
	}
	hospital.UserID = user.ID
	if err = tx.Create(hospital).Error; err != nil {
		return err
	}
	user.Hospital = hospital
	return nil
}
