package fx

import (
	"context"
	"time"

	"Foreceipt/config"
	"Foreceipt/internal/logger"
	"Foreceipt/internal/middleware"
	"Foreceipt/internal/routes"

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
	authRateLimiter *middleware.RateLimiter,
) {
	router.Use(middleware.CORSMiddleware())

	public := router.Group("/api")
	public.Use(middleware.RateLimit(authRateLimiter))
	{
		public.POST("/auth/login", handler.Authenticate)
		public.POST("/auth/register", handler.Registration)
	}

	private := router.Group("/api")
	private.Use(middleware.AuthMiddleware(jwtSvc))
	private.Use(middleware.RateLimitByUser(100, time.Minute))
	{
		expenses := private.Group("/expenses")
		{
			expenses.PUT("", handler.ReplaceExpenses)
			expenses.GET("", handler.ListExpenses)
		}

		private.GET("/receipt", handler.GetReceipt)

		users := private.Group("/users")
		{
			users.PUT("/profile", handler.UpdateProfile)
			users.PUT("/password", handler.UpdateUserPassword)
		}

		goals := private.Group("/goals")
		{
			goals.POST("", handler.CreateGoal)
			goals.GET("", handler.ListGoals)
			goals.GET("/:id", handler.GetGoal)
			goals.DELETE("/:id", handler.DeleteGoal)
			goals.POST("/:id/contribution", handler.ContributeGoal)
			goals.GET("/:id/progress", handler.GoalProgress)
		}

		gamification := private.Group("/gamification")
		{
			gamification.GET("", handler.GetGamification)
			gamification.POST("/badges/:id/earn", handler.EarnBadge)
			gamification.POST("/challenges/:id/advance", handler.AdvanceChallenge)
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
