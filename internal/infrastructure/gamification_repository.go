package infrastructure

import (
	"context"
	"errors"
	"time"

	"Foreceipt/internal/domain/gamification"
	appErrors "Foreceipt/internal/errors"
	"Foreceipt/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type GamificationRepository struct {
	DB *gorm.DB
}

type badgeDB struct {
	Id          string     `gorm:"type:varchar(26);primaryKey"`
	UserId      string     `gorm:"type:varchar(26);index:idx_badges_user_id;not null"`
	Name        string     `gorm:"type:varchar(100);not null"`
	Description string     `gorm:"type:varchar(255)"`
	Earned      bool       `gorm:"not null;default:false"`
	EarnedDate  *time.Time `gorm:"type:timestamp"`
	CreatedAt   time.Time  `gorm:"not null"`
}

func (badgeDB) TableName() string {
	return "badges"
}

type challengeDB struct {
	Id          string    `gorm:"type:varchar(26);primaryKey"`
	UserId      string    `gorm:"type:varchar(26);index:idx_challenges_user_id;not null"`
	Title       string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:varchar(255)"`
	Target      int       `gorm:"not null"`
	Progress    int       `gorm:"not null;default:0"`
	Reward      string    `gorm:"type:varchar(100)"`
	Category    string    `gorm:"type:varchar(50)"`
	TimeLeft    string    `gorm:"type:varchar(50)"`
	CreatedAt   time.Time `gorm:"not null"`
}

func (challengeDB) TableName() string {
	return "challenges"
}

func toDomainBadge(bdb *badgeDB) (*gamification.Badge, error) {
	id, err := pkg.ParseULID(bdb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	uid, err := pkg.ParseULID(bdb.UserId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	return &gamification.Badge{
		Id:          id,
		UserId:      uid,
		Name:        bdb.Name,
		Description: bdb.Description,
		Earned:      bdb.Earned,
		EarnedDate:  bdb.EarnedDate,
		CreatedAt:   bdb.CreatedAt,
	}, nil
}

func toDBBadge(b *gamification.Badge) *badgeDB {
	return &badgeDB{
		Id:          b.Id.String(),
		UserId:      b.UserId.String(),
		Name:        b.Name,
		Description: b.Description,
		Earned:      b.Earned,
		EarnedDate:  b.EarnedDate,
		CreatedAt:   b.CreatedAt,
	}
}

func toDomainChallenge(cdb *challengeDB) (*gamification.Challenge, error) {
	id, err := pkg.ParseULID(cdb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	uid, err := pkg.ParseULID(cdb.UserId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	return &gamification.Challenge{
		Id:          id,
		UserId:      uid,
		Title:       cdb.Title,
		Description: cdb.Description,
		Target:      cdb.Target,
		Progress:    cdb.Progress,
		Reward:      cdb.Reward,
		Category:    cdb.Category,
		TimeLeft:    cdb.TimeLeft,
		CreatedAt:   cdb.CreatedAt,
	}, nil
}

func toDBChallenge(c *gamification.Challenge) *challengeDB {
	return &challengeDB{
		Id:          c.Id.String(),
		UserId:      c.UserId.String(),
		Title:       c.Title,
		Description: c.Description,
		Target:      c.Target,
		Progress:    c.Progress,
		Reward:      c.Reward,
		Category:    c.Category,
		TimeLeft:    c.TimeLeft,
		CreatedAt:   c.CreatedAt,
	}
}

func (r *GamificationRepository) CountBadgesByUser(ctx context.Context, userID ulid.ULID) (int64, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Table("badges").Where("user_id = ?", userID.String()).Count(&count).Error; err != nil {
		return 0, appErrors.NewDatabaseError(err)
	}
	return count, nil
}

func (r *GamificationRepository) CreateBadges(ctx context.Context, badges []*gamification.Badge) error {
	if len(badges) == 0 {
		return nil
	}
	rows := make([]*badgeDB, 0, len(badges))
	for _, b := range badges {
		rows = append(rows, toDBBadge(b))
	}
	if err := r.DB.WithContext(ctx).Table("badges").Create(&rows).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *GamificationRepository) GetBadgesByUser(ctx context.Context, userID ulid.ULID) ([]*gamification.Badge, error) {
	var rows []badgeDB
	if err := r.DB.WithContext(ctx).Table("badges").
		Where("user_id = ?", userID.String()).
		Order("created_at ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	out := make([]*gamification.Badge, 0, len(rows))
	for i := range rows {
		b, err := toDomainBadge(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *GamificationRepository) GetBadgeByIdAndUser(ctx context.Context, id, userID ulid.ULID) (*gamification.Badge, error) {
	var bdb badgeDB
	if err := r.DB.WithContext(ctx).Table("badges").Where("id = ? AND user_id = ?", id.String(), userID.String()).First(&bdb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrBadgeNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainBadge(&bdb)
}

func (r *GamificationRepository) UpdateBadgeFields(ctx context.Context, id ulid.ULID, fields map[string]interface{}) error {
	result := r.DB.WithContext(ctx).Table("badges").Where("id = ?", id.String()).Updates(fields)
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrBadgeNotFound
	}
	return nil
}

func (r *GamificationRepository) CountChallengesByUser(ctx context.Context, userID ulid.ULID) (int64, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Table("challenges").Where("user_id = ?", userID.String()).Count(&count).Error; err != nil {
		return 0, appErrors.NewDatabaseError(err)
	}
	return count, nil
}

func (r *GamificationRepository) CreateChallenges(ctx context.Context, challenges []*gamification.Challenge) error {
	if len(challenges) == 0 {
		return nil
	}
	rows := make([]*challengeDB, 0, len(challenges))
	for _, c := range challenges {
		rows = append(rows, toDBChallenge(c))
	}
	if err := r.DB.WithContext(ctx).Table("challenges").Create(&rows).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *GamificationRepository) GetChallengesByUser(ctx context.Context, userID ulid.ULID) ([]*gamification.Challenge, error) {
	var rows []challengeDB
	if err := r.DB.WithContext(ctx).Table("challenges").
		Where("user_id = ?", userID.String()).
		Order("created_at ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	out := make([]*gamification.Challenge, 0, len(rows))
	for i := range rows {
		c, err := toDomainChallenge(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *GamificationRepository) GetChallengeByIdAndUser(ctx context.Context, id, userID ulid.ULID) (*gamification.Challenge, error) {
	var cdb challengeDB
	if err := r.DB.WithContext(ctx).Table("challenges").Where("id = ? AND user_id = ?", id.String(), userID.String()).First(&cdb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrChallengeNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainChallenge(&cdb)
}

func (r *GamificationRepository) UpdateChallengeProgress(ctx context.Context, id ulid.ULID, progress int) error {
	result := r.DB.WithContext(ctx).Table("challenges").Where("id = ?", id.String()).Update("progress", progress)
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrChallengeNotFound
	}
	return nil
}
