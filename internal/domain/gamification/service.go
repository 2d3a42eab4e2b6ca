package gamification

import (
	"context"
	"time"

	"Foreceipt/internal/domain/shared"
	appErrors "Foreceipt/internal/errors"

	"github.com/oklog/ulid/v2"
)

type Service struct {
	Repository  Repository
	UserChecker *shared.UserCheckerService
}

func NewService(repo Repository, userChecker *shared.UserCheckerService) *Service {
	return &Service{Repository: repo, UserChecker: userChecker}
}

// PlayerStats resume a camada de gamificação para exibição.
type PlayerStats struct {
	Level             int     `json:"level"`
	EarnedBadges      int     `json:"earnedBadges"`
	TotalBadges       int     `json:"totalBadges"`
	ActiveChallenges  int     `json:"activeChallenges"`
	CompletionRate    float64 `json:"completionRate"`
	LevelProgress     float64 `json:"levelProgress"`
	BadgesToNextLevel int     `json:"badgesToNextLevel"`
}

type Overview struct {
	Stats      *PlayerStats `json:"stats"`
	Badges     []*Badge     `json:"badges"`
	Challenges []*Challenge `json:"challenges"`
}

// GetOverview devolve estatísticas, conquistas e desafios do usuário,
// semeando os catálogos padrão na primeira consulta.
func (s *Service) GetOverview(ctx context.Context, userID ulid.ULID) (*Overview, error) {
	if err := s.UserChecker.EnsureUserExists(ctx, userID); err != nil {
		return nil, err
	}

	if err := s.ensureDefaults(ctx, userID); err != nil {
		return nil, err
	}

	badges, err := s.Repository.GetBadgesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	challenges, err := s.Repository.GetChallengesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	completionRate, err := CompletionRate(badges)
	if err != nil {
		return nil, err
	}

	earned := 0
	for _, b := range badges {
		if b.Earned {
			earned++
		}
	}

	return &Overview{
		Stats: &PlayerStats{
			Level:             Level(earned),
			EarnedBadges:      earned,
			TotalBadges:       len(badges),
			ActiveChallenges:  len(challenges),
			CompletionRate:    completionRate,
			LevelProgress:     LevelProgressPercent(earned),
			BadgesToNextLevel: BadgesToNextLevel(earned),
		},
		Badges:     badges,
		Challenges: challenges,
	}, nil
}

// EarnBadge marca a conquista como obtida, uma única vez. A condição de
// conquista em si é avaliada fora deste domínio.
func (s *Service) EarnBadge(ctx context.Context, badgeID, userID ulid.ULID) (*Badge, error) {
	badge, err := s.Repository.GetBadgeByIdAndUser(ctx, badgeID, userID)
	if err != nil {
		return nil, err
	}

	if badge.Earned {
		return nil, appErrors.ErrConflict.WithDetails(map[string]interface{}{
			"badge": badge.Name,
		})
	}

	now := time.Now()
	if err := s.Repository.UpdateBadgeFields(ctx, badgeID, map[string]interface{}{
		"earned":      true,
		"earned_date": &now,
	}); err != nil {
		return nil, err
	}

	badge.Earned = true
	badge.EarnedDate = &now
	return badge, nil
}

// AdvanceChallenge soma delta ao progresso do desafio, limitado a [0, alvo].
func (s *Service) AdvanceChallenge(ctx context.Context, challengeID, userID ulid.ULID, delta int) (*Challenge, error) {
	if delta == 0 {
		return nil, appErrors.NewValidationError("progress", "deve ser diferente de zero")
	}

	challenge, err := s.Repository.GetChallengeByIdAndUser(ctx, challengeID, userID)
	if err != nil {
		return nil, err
	}

	progress := challenge.Progress + delta
	if progress < 0 {
		progress = 0
	}
	if progress > challenge.Target {
		progress = challenge.Target
	}

	if err := s.Repository.UpdateChallengeProgress(ctx, challengeID, progress); err != nil {
		return nil, err
	}

	challenge.Progress = progress
	return challenge, nil
}

func (s *Service) ensureDefaults(ctx context.Context, userID ulid.ULID) error {
	badgeCount, err := s.Repository.CountBadgesByUser(ctx, userID)
	if err != nil {
		return err
	}
	if badgeCount == 0 {
		if err := s.Repository.CreateBadges(ctx, GetDefaultBadgesForUser(userID)); err != nil {
			return err
		}
	}

	challengeCount, err := s.Repository.CountChallengesByUser(ctx, userID)
	if err != nil {
		return err
	}
	if challengeCount == 0 {
		if err := s.Repository.CreateChallenges(ctx, GetDefaultChallengesForUser(userID)); err != nil {
			return err
		}
	}

	return nil
}
