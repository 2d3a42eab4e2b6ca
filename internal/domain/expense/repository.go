package expense

import (
	"context"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	// ReplaceForUser troca todos os lançamentos do usuário pelos informados,
	// em uma única transação.
	ReplaceForUser(ctx context.Context, userID ulid.ULID, expenses []*Expense) error
	GetByUserId(ctx context.Context, userID ulid.ULID) ([]*Expense, error)
}
