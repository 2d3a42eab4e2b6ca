package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetReceipt monta o recibo de previsão do próximo mês a partir dos gastos
// registrados do usuário.
func (h *Handler) GetReceipt(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	receipt, err := h.ForecastService.BuildReceipt(ctx, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, receipt)
}
