package goal

import (
	"context"
	"math"
	"strings"
	"time"

	domaincontracts "Foreceipt/internal/domain/contracts"
	"Foreceipt/internal/domain/shared"
	appErrors "Foreceipt/internal/errors"
	"Foreceipt/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Service struct {
	Repository  Repository
	UserChecker *shared.UserCheckerService
}

func NewService(repo Repository, userChecker *shared.UserCheckerService) *Service {
	return &Service{Repository: repo, UserChecker: userChecker}
}

func (s *Service) CreateGoal(ctx context.Context, request *domaincontracts.GoalCreateRequest) (*Goal, error) {
	if err := Validate(*request); err != nil {
		return nil, err
	}

	if err := s.UserChecker.EnsureUserExists(ctx, request.UserId); err != nil {
		return nil, err
	}

	category := strings.TrimSpace(request.Category)
	if category == "" {
		category = "Other"
	}

	now := time.Now()
	entity := &Goal{
		Id:            pkg.GenerateULIDObject(),
		UserId:        request.UserId,
		Title:         strings.TrimSpace(request.Title),
		TargetAmount:  request.Target,
		CurrentAmount: 0,
		Deadline:      request.Deadline,
		Category:      category,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.Repository.Create(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

// Contribute aplica delta ao valor acumulado da meta com limitação a
// [0, alvo] e persiste o resultado. Delta negativo retira valor da meta.
func (s *Service) Contribute(ctx context.Context, goalID, userID ulid.ULID, delta float64) (*Goal, error) {
	if delta == 0 || math.IsNaN(delta) || math.IsInf(delta, 0) {
		return nil, appErrors.NewValidationError("amount", "deve ser um valor diferente de zero")
	}

	entity, err := s.GetGoalByID(ctx, goalID, userID)
	if err != nil {
		return nil, err
	}

	updated := entity.Contribute(delta)
	if err := s.Repository.UpdateCurrentAmount(ctx, goalID, updated.CurrentAmount); err != nil {
		return nil, err
	}

	return &updated, nil
}

// Progress devolve o estado derivado da meta; `today` vem do chamador para
// manter o cálculo de prazo determinístico.
func (s *Service) Progress(ctx context.Context, goalID, userID ulid.ULID, today time.Time) (*GoalProgress, error) {
	entity, err := s.GetGoalByID(ctx, goalID, userID)
	if err != nil {
		return nil, err
	}

	days := entity.DaysRemaining(today)
	return &GoalProgress{
		GoalId:        entity.Id,
		Title:         entity.Title,
		TargetAmount:  entity.TargetAmount,
		CurrentAmount: entity.CurrentAmount,
		Remaining:     entity.Remaining(),
		Percentage:    entity.ProgressPercent(),
		DaysRemaining: days,
		Overdue:       days < 0,
	}, nil
}

type GoalProgress struct {
	GoalId        ulid.ULID `json:"goalId"`
	Title         string    `json:"title"`
	TargetAmount  float64   `json:"targetAmount"`
	CurrentAmount float64   `json:"currentAmount"`
	Remaining     float64   `json:"remaining"`
	Percentage    float64   `json:"percentage"`
	DaysRemaining int       `json:"daysRemaining"`
	Overdue       bool      `json:"overdue"`
}

func (s *Service) DeleteGoal(ctx context.Context, goalID, userID ulid.ULID) error {
	if err := s.CheckGoalBelongsToUser(ctx, goalID, userID); err != nil {
		return err
	}
	return s.Repository.Delete(ctx, goalID)
}

func (s *Service) GetGoalByID(ctx context.Context, goalID, userID ulid.ULID) (*Goal, error) {
	return s.Repository.GetByIdAndUser(ctx, goalID, userID)
}

func (s *Service) GetGoalsByUserID(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*Goal, int64, error) {
	return s.Repository.GetByUserId(ctx, userID, pagination)
}

// Summary consolida as metas do usuário inteiro, independente de paginação.
func (s *Service) Summary(ctx context.Context, userID ulid.ULID) (*Summary, error) {
	return s.Repository.SummaryByUser(ctx, userID)
}

type Summary struct {
	Count       int64   `json:"count"`
	TotalSaved  float64 `json:"totalSaved"`
	TotalTarget float64 `json:"totalTarget"`
}

func (s *Service) CheckGoalBelongsToUser(ctx context.Context, goalID, userID ulid.ULID) error {
	belongs, err := s.Repository.CheckGoalBelongsToUser(ctx, goalID, userID)
	if err != nil {
		return err
	}
	if !belongs {
		return appErrors.ErrResourceNotOwned
	}
	return nil
}

func Validate(request domaincontracts.GoalCreateRequest) error {
	if strings.TrimSpace(request.Title) == "" {
		return appErrors.NewValidationError("title", "é obrigatório")
	}
	if request.Target <= 0 || math.IsNaN(request.Target) || math.IsInf(request.Target, 0) {
		return appErrors.ErrInvalidGoal.WithDetails(map[string]interface{}{
			"target": request.Target,
		})
	}
	if request.Deadline.IsZero() {
		return appErrors.NewValidationError("deadline", "é obrigatória")
	}
	return nil
}
