package contracts

import (
	domainExpense "Foreceipt/internal/domain/expense"
)

type ExpenseEntryRequest struct {
	Category      string  `json:"category" binding:"required"`
	Amount        float64 `json:"amount" binding:"min=0"`
	PaymentMethod string  `json:"payment_method" binding:"required"`
}

type ExpenseReplaceRequest struct {
	Entries []ExpenseEntryRequest `json:"entries" binding:"required,dive"`
}

type ExpenseListResponse struct {
	Expenses []*domainExpense.Expense `json:"expenses"`
	Total    int                      `json:"total"`
}
