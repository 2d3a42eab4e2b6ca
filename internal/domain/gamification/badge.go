package gamification

import (
	"crypto/sha256"
	"time"

	"github.com/oklog/ulid/v2"
)

// Badge é uma conquista do catálogo estático. Apenas Earned e EarnedDate
// mudam, uma única vez, quando a condição de conquista (avaliada fora deste
// domínio) é satisfeita.
type Badge struct {
	Id          ulid.ULID  `gorm:"type:varchar(26);primaryKey" json:"id"`
	UserId      ulid.ULID  `gorm:"type:varchar(26);index:idx_badges_user_id;not null" json:"userId"`
	Name        string     `gorm:"type:varchar(100);not null" json:"name"`
	Description string     `gorm:"type:varchar(255)" json:"description"`
	Earned      bool       `gorm:"not null;default:false" json:"earned"`
	EarnedDate  *time.Time `gorm:"type:timestamp" json:"earnedDate,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime;not null" json:"createdAt"`
}

func (Badge) TableName() string {
	return "badges"
}

type DefaultBadgeDefinition struct {
	Name        string
	Description string
}

var DefaultBadges = []DefaultBadgeDefinition{
	{Name: "First Steps", Description: "Created your first expense entry"},
	{Name: "Budget Tracker", Description: "Tracked expenses for 7 consecutive days"},
	{Name: "Savings Hero", Description: "Saved $100 in a single month"},
	{Name: "Prediction Master", Description: "Generated 10 receipt predictions"},
	{Name: "Goal Achiever", Description: "Completed your first savings goal"},
	{Name: "Consistent Saver", Description: "Saved money for 3 months straight"},
}

// GetDefaultBadgesForUser materializa o catálogo padrão para um usuário com
// ids determinísticos, de modo que o semeamento possa ser repetido sem
// duplicar registros.
func GetDefaultBadgesForUser(userID ulid.ULID) []*Badge {
	now := time.Now()
	badges := make([]*Badge, 0, len(DefaultBadges))
	for _, def := range DefaultBadges {
		badges = append(badges, &Badge{
			Id:          GenerateDeterministicID(userID.String(), "badge:"+def.Name),
			UserId:      userID,
			Name:        def.Name,
			Description: def.Description,
			Earned:      false,
			CreatedAt:   now,
		})
	}
	return badges
}

// GenerateDeterministicID deriva um ULID estável do par usuário/registro.
func GenerateDeterministicID(userID, key string) ulid.ULID {
	hash := sha256.Sum256([]byte("gamification:" + userID + ":" + key))

	timestamp := ulid.Timestamp(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	entropy := [10]byte{}
	copy(entropy[:], hash[:10])

	reader := &deterministicReader{data: entropy[:]}
	return ulid.MustNew(timestamp, reader)
}

type deterministicReader struct {
	data []byte
	pos  int
}

func (r *deterministicReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	if r.pos >= len(r.data) {
		r.pos = 0
	}

	n := copy(p, r.data[r.pos:])
	r.pos += n

	if r.pos >= len(r.data) {
		r.pos = 0
	}

	return n, nil
}
