package beneficiary_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"healthcard/internal/infra"
	"healthcard/internal/repositories"
	"healthcard/internal/services"
	"healthcard/pkg/utils"
)

// Module expects the household and card repositories from card_fx.
var Module = fx.Provide(
	provideBeneficiaryService,
	provideBeneficiaryRepo)

func provideBeneficiaryRepo(db *gorm.DB) repositories.BeneficiaryRepository {
	return repositories.NewBeneficiaryRepository(db)
}

func provideBeneficiaryService(
	beneficiaryRepo repositories.BeneficiaryRepository,
	householdRepo repositories.HouseholdRepository,
	cardRepo repositories.CardRepository,
	cfg infra.Config,
	log *zap.Logger,
) (services.BeneficiaryServiceInterface, error) {
	loc, err := utils.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, err
	}
	return services.NewBeneficiaryService(beneficiaryRepo, householdRepo, cardRepo, loc, log), nil
}
