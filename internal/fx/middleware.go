package fx

import (
	"Foreceipt/config"
	"Foreceipt/internal/domain/user"
	"Foreceipt/internal/middleware"

	"go.uber.org/fx"
)

var MiddlewareModule = fx.Module("middleware",
	fx.Provide(
		newJwtService,
	),
)

func newJwtService(cfg *config.Config, userSvc *user.Service) *middleware.JwtService {
	return middleware.NewJwtService(cfg.JWT, userSvc)
}
