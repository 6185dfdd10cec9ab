package card_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"healthcard/internal/infra"
	"healthcard/internal/repositories"
	"healthcard/internal/services"
)

var Module = fx.Provide(
	provideCardService,
	provideCardRepo,
	provideHouseholdRepo,
	providePlanRepo)

func provideCardRepo(db *gorm.DB) repositories.CardRepository {
	return repositories.NewCardRepository(db)
}

func provideHouseholdRepo(db *gorm.DB) repositories.HouseholdRepository {
	return repositories.NewHouseholdRepository(db)
}

func providePlanRepo(db *gorm.DB) repositories.IPlanRepository {
	return repositories.NewPlanRepository(db)
}

func provideCardService(
	cardRepo repositories.CardRepository,
	householdRepo repositories.HouseholdRepository,
	planRepo repositories.IPlanRepository,
	cfg infra.Config,
	log *zap.Logger,
	metrics *infra.Metrics,
) (services.CardServiceInterface, error) {
	serviceCfg, err := services.CardServiceConfigFrom(cfg)
	if err != nil {
		return nil, err
	}
	return services.NewCardService(cardRepo, householdRepo, planRepo, services.NewRandomCardNumbers(nil), serviceCfg, log, metrics), nil
}
