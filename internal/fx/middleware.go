package fx

import (
	"github.com/rodrigordgfs/CashWise-API/config"
	"github.com/rodrigordgfs/CashWise-API/internal/middleware"

	"go.uber.org/fx"
)

var MiddlewareModule = fx.Module("middleware",
	fx.Provide(
		newJwtService,
	),
)

func newJwtService(cfg *config.Config) *middleware.JwtService {
	return middleware.NewJwtService(cfg.JWT.Secret)
}
