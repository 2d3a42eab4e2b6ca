package infrastructure

import (
	"context"
	"time"

	"Foreceipt/internal/domain/expense"
	appErrors "Foreceipt/internal/errors"
	"Foreceipt/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type ExpenseRepository struct {
	DB *gorm.DB
}

type expenseDB struct {
	Id            string    `gorm:"type:varchar(26);primaryKey"`
	UserId        string    `gorm:"type:varchar(26);index:idx_expenses_user;not null"`
	Category      string    `gorm:"type:varchar(100);not null"`
	Amount        float64   `gorm:"type:decimal(15,2);not null"`
	PaymentMethod string    `gorm:"type:varchar(30);not null"`
	Position      int       `gorm:"not null"`
	CreatedAt     time.Time `gorm:"not null"`
}

func (expenseDB) TableName() string {
	return "expenses"
}

func toDomainExpense(edb *expenseDB) (*expense.Expense, error) {
	id, err := pkg.ParseULID(edb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	uid, err := pkg.ParseULID(edb.UserId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	return &expense.Expense{
		Id:            id,
		UserId:        uid,
		Category:      edb.Category,
		Amount:        edb.Amount,
		PaymentMethod: edb.PaymentMethod,
		Position:      edb.Position,
		CreatedAt:     edb.CreatedAt,
	}, nil
}

func toDBExpense(e *expense.Expense) *expenseDB {
	return &expenseDB{
		Id:            e.Id.String(),
		UserId:        e.UserId.String(),
		Category:      e.Category,
		Amount:        e.Amount,
		PaymentMethod: e.PaymentMethod,
		Position:      e.Position,
		CreatedAt:     e.CreatedAt,
	}
}

// ReplaceForUser apaga e recria os lançamentos do usuário na mesma transação,
// preservando a ordem pelo campo position.
func (r *ExpenseRepository) ReplaceForUser(ctx context.Context, userID ulid.ULID, expenses []*expense.Expense) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Table("expenses").Where("user_id = ?", userID.String()).Delete(&expenseDB{}).Error; err != nil {
			return err
		}
		if len(expenses) == 0 {
			return nil
		}
		rows := make([]*expenseDB, 0, len(expenses))
		for _, e := range expenses {
			rows = append(rows, toDBExpense(e))
		}
		return tx.Table("expenses").Create(&rows).Error
	})
	if err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *ExpenseRepository) GetByUserId(ctx context.Context, userID ulid.ULID) ([]*expense.Expense, error) {
	var rows []expenseDB
	if err := r.DB.WithContext(ctx).Table("expenses").
		Where("user_id = ?", userID.String()).
		Order("position ASC").
		Find(&rows).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	out := make([]*expense.Expense, 0, len(rows))
	for i := range rows {
		e, err := toDomainExpense(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}
