package goal

import (
	"math"
	"time"

	"github.com/oklog/ulid/v2"
)

// Goal é uma meta de economia. CurrentAmount só muda via Contribute e fica
// sempre em [0, TargetAmount]; a remoção é sempre uma ação explícita do
// usuário.
type Goal struct {
	Id            ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	UserId        ulid.ULID `gorm:"type:varchar(26);index:idx_goals_user_id;not null" json:"userId"`
	Title         string    `gorm:"type:varchar(100);not null" json:"title"`
	TargetAmount  float64   `gorm:"type:decimal(15,2);not null" json:"targetAmount"`
	CurrentAmount float64   `gorm:"type:decimal(15,2);not null;default:0" json:"currentAmount"`
	Deadline      time.Time `gorm:"type:date;not null" json:"deadline"`
	Category      string    `gorm:"type:varchar(50)" json:"category"`
	CreatedAt     time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Goal) TableName() string {
	return "goals"
}

// ProgressPercent devolve o percentual concluído, limitado a 100.
func (g *Goal) ProgressPercent() float64 {
	return math.Min(100, g.CurrentAmount/g.TargetAmount*100)
}

// DaysRemaining devolve o teto da diferença em dias até o prazo. Valores
// negativos indicam atraso pelo módulo. `today` é sempre explícito para manter
// a função testável.
func (g *Goal) DaysRemaining(today time.Time) int {
	diff := g.Deadline.Sub(today)
	return int(math.Ceil(diff.Hours() / 24))
}

// Contribute devolve uma cópia da meta com o valor acumulado ajustado por
// delta e limitado a [0, TargetAmount]. Aceita delta negativo; nunca altera o
// registro recebido.
func (g *Goal) Contribute(delta float64) Goal {
	updated := *g
	updated.CurrentAmount = math.Max(0, math.Min(g.TargetAmount, g.CurrentAmount+delta))
	return updated
}

// Remaining devolve quanto falta para a meta. Como CurrentAmount nunca
// ultrapassa TargetAmount, o resultado nunca é negativo.
func (g *Goal) Remaining() float64 {
	return g.TargetAmount - g.CurrentAmount
}
