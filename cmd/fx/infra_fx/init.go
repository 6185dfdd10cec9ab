package infra_fx

import (
	"go.uber.org/fx"
	"healthcard/internal/infra"
)

var Module = fx.Provide(
	infra.LoadConfig,
	infra.NewLogger,
	infra.NewMetrics)
