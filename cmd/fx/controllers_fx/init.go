package controllers_fx

import (
	"go.uber.org/fx"
	"healthcard/internal/api"
	"healthcard/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewCardController),
	fx.Provide(controllers.NewBeneficiaryController),
	fx.Provide(api.NewRouter))
