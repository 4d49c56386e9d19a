package fx

import (
	"context"

	"github.com/rodrigordgfs/CashWise-API/config"
	"github.com/rodrigordgfs/CashWise-API/internal/logger"
	"github.com/rodrigordgfs/CashWise-API/internal/middleware"
	"github.com/rodrigordgfs/CashWise-API/internal/routes"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

// ServerModule fornece a configuração do servidor HTTP
var ServerModule = fx.Module("server",
	fx.Provide(
		newRouter,
	),
	fx.Invoke(
		setupRoutes,
	),
)

func newRouter(cfg *config.Config) *gin.Engine {
	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	return gin.Default()
}

func setupRoutes(
	lc fx.Lifecycle,
	cfg *config.Config,
	router *gin.Engine,
	handler *routes.Handler,
	jwtSvc *middleware.JwtService,
	rateLimiter *middleware.RateLimiter,
) {
	router.Use(middleware.CORSMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	private := router.Group("/api")
	private.Use(middleware.RateLimit(rateLimiter))
	private.Use(middleware.AuthMiddleware(jwtSvc))
	{
		transactions := private.Group("/transactions")
		{
			transactions.POST("", handler.CreateTransaction)
			transactions.POST("/ofx", handler.ImportTransactionsOFX)
			transactions.GET("", handler.GetTransactions)
			transactions.GET("/:id", handler.GetTransaction)
			transactions.PATCH("/:id", handler.UpdateTransaction)
			transactions.DELETE("/:id", handler.DeleteTransaction)
		}

		categories := private.Group("/categories")
		{
			categories.POST("", handler.CreateCategory)
			categories.GET("", handler.ListCategories)
			categories.GET("/:id", handler.GetCategory)
			categories.PATCH("/:id", handler.UpdateCategory)
			categories.DELETE("/:id", handler.DeleteCategory)
		}

		budgets := private.Group("/budgets")
		{
			budgets.POST("", handler.CreateBudget)
			budgets.GET("", handler.ListBudgets)
			budgets.GET("/:id", handler.GetBudget)
			budgets.PATCH("/:id", handler.UpdateBudget)
			budgets.DELETE("/:id", handler.DeleteBudget)
		}

		goals := private.Group("/goals")
		{
			goals.POST("", handler.CreateGoal)
			goals.GET("", handler.ListGoals)
			goals.GET("/:id", handler.GetGoal)
			goals.PATCH("/:id", handler.UpdateGoal)
			goals.DELETE("/:id", handler.DeleteGoal)
		}

		reports := private.Group("/reports")
		{
			reports.GET("/monthly", handler.GetMonthlyReports)
			reports.GET("/categories", handler.GetCategoriesReports)
			reports.GET("/balance", handler.GetBalanceReports)
			reports.GET("/summary", handler.GetSummaryReports)
		}
	}

	serverAddr := ":" + cfg.Server.Port
	logger.Info().
		Str("address", serverAddr).
		Str("environment", cfg.App.Environment).
		Msg("Servidor iniciando")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := router.Run(serverAddr); err != nil {
					logger.Fatal().Err(err).Msg("Falha ao iniciar servidor")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("Servidor parando...")
			return nil
		},
	})
}
