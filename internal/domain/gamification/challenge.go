package gamification

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// Challenge é uma mini-meta limitada por progresso, amarrada a uma categoria.
// O progresso avança por eventos externos; aqui só se calcula a razão.
type Challenge struct {
	Id          ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	UserId      ulid.ULID `gorm:"type:varchar(26);index:idx_challenges_user_id;not null" json:"userId"`
	Title       string    `gorm:"type:varchar(100);not null" json:"title"`
	Description string    `gorm:"type:varchar(255)" json:"description"`
	Target      int       `gorm:"not null" json:"target"`
	Progress    int       `gorm:"not null;default:0" json:"progress"`
	Reward      string    `gorm:"type:varchar(100)" json:"reward"`
	Category    string    `gorm:"type:varchar(50)" json:"category"`
	TimeLeft    string    `gorm:"type:varchar(50)" json:"timeLeft"`
	CreatedAt   time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
}

func (Challenge) TableName() string {
	return "challenges"
}

type DefaultChallengeDefinition struct {
	Title       string
	Description string
	Target      int
	Reward      string
	Category    string
	TimeLeft    string
}

var DefaultChallenges = []DefaultChallengeDefinition{
	{
		Title:       "Coffee Challenge",
		Description: "Skip coffee purchases for 7 days",
		Target:      7,
		Reward:      "$35 saved + Coffee Badge",
		Category:    "Food & Dining",
		TimeLeft:    "4 days left",
	},
	{
		Title:       "No-Buy Week",
		Description: "No non-essential shopping for 7 days",
		Target:      7,
		Reward:      "$150+ saved + Minimalist Badge",
		Category:    "Shopping",
		TimeLeft:    "5 days left",
	},
	{
		Title:       "Transport Saver",
		Description: "Use public transport or walk 10 times",
		Target:      10,
		Reward:      "$50 saved + Eco Badge",
		Category:    "Transportation",
		TimeLeft:    "2 weeks left",
	},
}

func GetDefaultChallengesForUser(userID ulid.ULID) []*Challenge {
	now := time.Now()
	challenges := make([]*Challenge, 0, len(DefaultChallenges))
	for _, def := range DefaultChallenges {
		challenges = append(challenges, &Challenge{
			Id:          GenerateDeterministicID(userID.String(), "challenge:"+def.Title),
			UserId:      userID,
			Title:       def.Title,
			Description: def.Description,
			Target:      def.Target,
			Progress:    0,
			Reward:      def.Reward,
			Category:    def.Category,
			TimeLeft:    def.TimeLeft,
			CreatedAt:   now,
		})
	}
	return challenges
}
