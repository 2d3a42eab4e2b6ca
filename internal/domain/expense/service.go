package expense

import (
	"context"
	"math"
	"strings"
	"time"

	"Foreceipt/internal/domain/catalog"
	"Foreceipt/internal/domain/forecast"
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

// ReplaceEntries valida e grava a sequência de lançamentos do período,
// espelhando a submissão do formulário: lançamentos com valor zero são
// descartados antes de persistir.
func (s *Service) ReplaceEntries(ctx context.Context, userID ulid.ULID, entries []forecast.Entry) ([]*Expense, error) {
	if err := s.UserChecker.EnsureUserExists(ctx, userID); err != nil {
		return nil, err
	}

	now := time.Now()
	expenses := make([]*Expense, 0, len(entries))
	for i, entry := range entries {
		if err := validateEntry(entry); err != nil {
			return nil, err
		}
		if entry.Amount == 0 {
			continue
		}
		expenses = append(expenses, &Expense{
			Id:            pkg.GenerateULIDObject(),
			UserId:        userID,
			Category:      strings.TrimSpace(entry.Category),
			Amount:        entry.Amount,
			PaymentMethod: entry.PaymentMethod,
			Position:      i,
			CreatedAt:     now,
		})
	}

	if err := s.Repository.ReplaceForUser(ctx, userID, expenses); err != nil {
		return nil, err
	}

	return expenses, nil
}

// Entries devolve os lançamentos do usuário na ordem de submissão, já no
// formato consumido pelo gerador de previsões.
func (s *Service) Entries(ctx context.Context, userID ulid.ULID) ([]forecast.Entry, error) {
	expenses, err := s.Repository.GetByUserId(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries := make([]forecast.Entry, 0, len(expenses))
	for _, exp := range expenses {
		entries = append(entries, forecast.Entry{
			Category:      exp.Category,
			Amount:        exp.Amount,
			PaymentMethod: exp.PaymentMethod,
		})
	}
	return entries, nil
}

func (s *Service) ListExpenses(ctx context.Context, userID ulid.ULID) ([]*Expense, error) {
	return s.Repository.GetByUserId(ctx, userID)
}

func validateEntry(entry forecast.Entry) error {
	if strings.TrimSpace(entry.Category) == "" {
		return appErrors.NewValidationError("category", "é obrigatória")
	}
	if math.IsNaN(entry.Amount) || math.IsInf(entry.Amount, 0) {
		return appErrors.ErrInvalidInput.WithDetails(map[string]interface{}{
			"category": entry.Category,
			"reason":   "valor não finito",
		})
	}
	if entry.Amount < 0 {
		return appErrors.ErrInvalidInput.WithDetails(map[string]interface{}{
			"category": entry.Category,
			"reason":   "valor negativo",
		})
	}
	// Categoria aceita texto livre; forma de pagamento não.
	if !catalog.IsPaymentMethod(entry.PaymentMethod) {
		return appErrors.NewValidationError("payment_method", "forma de pagamento desconhecida")
	}
	return nil
}
