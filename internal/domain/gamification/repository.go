package gamification

import (
	"context"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	CountBadgesByUser(ctx context.Context, userID ulid.ULID) (int64, error)
	CreateBadges(ctx context.Context, badges []*Badge) error
	GetBadgesByUser(ctx context.Context, userID ulid.ULID) ([]*Badge, error)
	GetBadgeByIdAndUser(ctx context.Context, id, userID ulid.ULID) (*Badge, error)
	UpdateBadgeFields(ctx context.Context, id ulid.ULID, fields map[string]interface{}) error

	CountChallengesByUser(ctx context.Context, userID ulid.ULID) (int64, error)
	CreateChallenges(ctx context.Context, challenges []*Challenge) error
	GetChallengesByUser(ctx context.Context, userID ulid.ULID) ([]*Challenge, error)
	GetChallengeByIdAndUser(ctx context.Context, id, userID ulid.ULID) (*Challenge, error)
	UpdateChallengeProgress(ctx context.Context, id ulid.ULID, progress int) error
}
