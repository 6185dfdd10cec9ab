package services

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	"healthcard/internal/models/db_models"
	"healthcard/internal/models/request_models"
	"healthcard/internal/repositories"
	"healthcard/pkg/utils"
)

type AccountServiceInterface interface {
	// EnsureAccount returns the account for request.Email, creating it when
	// missing. created reports whether a new row was written.
	EnsureAccount(ctx context.Context, request request_models.NewAccount) (user *db_models.User, created bool, err error)
	IssueToken(user *db_models.User) (string, error)
}

type AccountService struct {
	userRepo repositories.UserRepository
	secret   []byte
	tokenTTL time.Duration
	log      *zap.Logger
}

func NewAccountService(userRepo repositories.UserRepository, secret []byte, tokenTTL time.Duration, log *zap.Logger) AccountServiceInterface {
	return &AccountService{
		userRepo: userRepo,
		secret:   secret,
		tokenTTL: tokenTTL,
		log:      log.Named("accounts"),
	}
}

func (a *AccountService) EnsureAccount(ctx context.Context, request request_models.NewAccount) (*db_models.User, bool, error) {

	email := strings.ToLower(strings.TrimSpace(request.Email))
	if email == "" {
		return nil, false, utils.Validation("email is required")
	}
	if !request.Role.Valid() {
		return nil, false, utils.Validation("Invalid role %q", request.Role)
	}
	if request.Role == db_models.RoleHospitalUser && request.Hospital == nil {
		return nil, false, utils.Validation("hospital users need a hospital profile")
	}

	existing, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		a.log.Error("find user", zap.String("email", email), zap.Error(err))
		return nil, false, utils.ErrDatabaseError
	}
	if existing != nil {
		return existing, false, nil
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, false, err
	}

	user := &db_models.User{
		Email:        email,
		Name:         request.Name,
		PasswordHash: hashedPassword,
		Role:         request.Role,
	}

	if request.Hospital != nil {
		hospital := &db_models.Hospital{
			Name:      request.Hospital.Name,
			Address:   request.Hospital.Address,
			Phone:     request.Hospital.Phone,
			LicenseNo: request.Hospital.LicenseNo,
		}
		err = a.userRepo.CreateHospitalAccount(ctx, user, hospital)
	} else {
		err = a.userRepo.InsertTx(ctx, user)
	}
	if err != nil {
		a.log.Error("create user", zap.String("email", email), zap.Error(err))
		return nil, false, utils.ErrDatabaseError
	}

	return user, true, nil
}

func (a *AccountService) IssueToken(user *db_models.User) (string, error) {
	return utils.CreateToken(a.secret, user.ID, string(user.Role), a.tokenTTL)
}
