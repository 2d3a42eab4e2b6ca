package expense

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// Expense é um lançamento de despesa do período corrente do usuário. O
// formulário submete a sequência completa de uma vez; cada submissão substitui
// a anterior.
type Expense struct {
	Id            ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	UserId        ulid.ULID `gorm:"type:varchar(26);index:idx_expenses_user_id;not null" json:"userId"`
	Category      string    `gorm:"type:varchar(100);not null" json:"category"`
	Amount        float64   `gorm:"type:decimal(15,2);not null" json:"amount"`
	PaymentMethod string    `gorm:"type:varchar(50);not null" json:"paymentMethod"`
	Position      int       `gorm:"not null;default:0" json:"position"`
	CreatedAt     time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
}

func (Expense) TableName() string {
	return "expenses"
}
