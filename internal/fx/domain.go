package fx

import (
	"Foreceipt/config"
	"Foreceipt/internal/domain/auth"
	"Foreceipt/internal/domain/expense"
	"Foreceipt/internal/domain/forecast"
	"Foreceipt/internal/domain/gamification"
	"Foreceipt/internal/domain/goal"
	"Foreceipt/internal/domain/shared"
	"Foreceipt/internal/domain/user"
	"Foreceipt/internal/infrastructure"

	"go.uber.org/fx"
)

// DomainModule fornece todos os services do domínio
var DomainModule = fx.Module("domain",
	fx.Provide(
		newUserService,
		newUserServiceAdapter,
		newUserCheckerService,

		newAuthService,

		newExpenseService,

		newForecastGenerator,
		newForecastService,

		newGoalService,

		newGamificationService,
	),
)

func newUserService(repo *infrastructure.UserRepository) *user.Service {
	return user.NewService(repo)
}

func newUserServiceAdapter(userSvc *user.Service) *user.UserServiceAdapter {
	return user.NewUserServiceAdapter(userSvc)
}

func newUserCheckerService(adapter *user.UserServiceAdapter) *shared.UserCheckerService {
	return shared.NewUserCheckerService(adapter)
}

func newAuthService(
	repo *infrastructure.UserRepository,
	userSvc *user.Service,
) *auth.Service {
	return auth.NewService(repo, userSvc)
}

func newExpenseService(
	repo *infrastructure.ExpenseRepository,
	userChecker *shared.UserCheckerService,
) *expense.Service {
	return expense.NewService(repo, userChecker)
}

func newForecastGenerator() *forecast.Generator {
	return forecast.NewGenerator()
}

func newForecastService(
	expenseSvc *expense.Service,
	generator *forecast.Generator,
	cfg *config.Config,
) *forecast.Service {
	return &forecast.Service{
		Entries:           expenseSvc,
		Generator:         generator,
		ChallengeCategory: cfg.Forecast.ChallengeCategory,
	}
}

func newGoalService(
	repo *infrastructure.GoalRepository,
	userChecker *shared.UserCheckerService,
) *goal.Service {
	return goal.NewService(repo, userChecker)
}

func newGamificationService(
	repo *infrastructure.GamificationRepository,
	userChecker *shared.UserCheckerService,
) *gamification.Service {
	return gamification.NewService(repo, userChecker)
}
