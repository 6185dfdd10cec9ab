package account_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"healthcard/internal/infra"
	"healthcard/internal/repositories"
	"healthcard/internal/services"
)

// Module provides account and plan provisioning. It expects the plan
// repository from card_fx.
var Module = fx.Provide(
	provideAccountService,
	provideUserRepo,
	providePlanService)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideAccountService(userRepo repositories.UserRepository, cfg infra.Config, log *zap.Logger) services.AccountServiceInterface {
	return services.NewAccountService(userRepo, []byte(cfg.JWTSecret), cfg.TokenTTL, log)
}

func providePlanService(planRepo repositories.IPlanRepository, log *zap.Logger) services.PlanServiceInterface {
	return services.NewPlanService(planRepo, log)
}
