package fx

import (
	"time"

	"Foreceipt/internal/domain/auth"
	"Foreceipt/internal/domain/expense"
	"Foreceipt/internal/domain/forecast"
	"Foreceipt/internal/domain/gamification"
	"Foreceipt/internal/domain/goal"
	"Foreceipt/internal/domain/user"
	"Foreceipt/internal/middleware"
	"Foreceipt/internal/routes"

	"go.uber.org/fx"
)

// RoutesModule fornece handlers e rate limiters
var RoutesModule = fx.Module("routes",
	fx.Provide(
		newHandler,
		newAuthRateLimiter,
	),
)

func newHandler(
	userSvc *user.Service,
	jwtSvc *middleware.JwtService,
	authSvc *auth.Service,
	expenseSvc *expense.Service,
	forecastSvc *forecast.Service,
	goalSvc *goal.Service,
	gamificationSvc *gamification.Service,
) *routes.Handler {
	return &routes.Handler{
		UserService:         *userSvc,
		JwtService:          jwtSvc,
		AuthService:         *authSvc,
		ExpenseService:      *expenseSvc,
		ForecastService:     *forecastSvc,
		GoalService:         *goalSvc,
		GamificationService: *gamificationSvc,
	}
}

func newAuthRateLimiter() *middleware.RateLimiter {
	return middleware.NewRateLimiter(100, time.Minute)
}
