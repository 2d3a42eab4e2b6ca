package goal

import (
	"context"

	"Foreceipt/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, goal *Goal) error
	Delete(ctx context.Context, id ulid.ULID) error
	GetByIdAndUser(ctx context.Context, id, userID ulid.ULID) (*Goal, error)
	GetByUserId(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*Goal, int64, error)
	UpdateCurrentAmount(ctx context.Context, goalID ulid.ULID, amount float64) error
	CheckGoalBelongsToUser(ctx context.Context, goalID, userID ulid.ULID) (bool, error)
	SummaryByUser(ctx context.Context, userID ulid.ULID) (*Summary, error)
}
