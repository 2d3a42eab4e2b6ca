package routes

import (
	"net/http"

	"Foreceipt/internal/contracts"
	"Foreceipt/internal/domain/forecast"
	appErrors "Foreceipt/internal/errors"

	"github.com/gin-gonic/gin"
)

// ReplaceExpenses substitui a planilha de gastos do usuário. O cliente envia
// sempre o estado completo; a ordem das linhas é preservada.
func (h *Handler) ReplaceExpenses(c *gin.Context) {
	var body contracts.ExpenseReplaceRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	entries := make([]forecast.Entry, 0, len(body.Entries))
	for _, e := range body.Entries {
		entries = append(entries, forecast.Entry{
			Category:      e.Category,
			Amount:        e.Amount,
			PaymentMethod: e.PaymentMethod,
		})
	}

	ctx := c.Request.Context()
	expenses, err := h.ExpenseService.ReplaceEntries(ctx, userID, entries)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.ExpenseListResponse{
		Expenses: expenses,
		Total:    len(expenses),
	})
}

func (h *Handler) ListExpenses(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	expenses, err := h.ExpenseService.ListExpenses(ctx, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.ExpenseListResponse{
		Expenses: expenses,
		Total:    len(expenses),
	})
}
