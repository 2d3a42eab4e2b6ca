package routes

import (
	"net/http"

	"Foreceipt/internal/contracts"
	appErrors "Foreceipt/internal/errors"

	"github.com/gin-gonic/gin"
)

// GetGamification devolve o painel completo: estatísticas do jogador,
// conquistas e desafios. Na primeira chamada o catálogo padrão é semeado.
func (h *Handler) GetGamification(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	overview, err := h.GamificationService.GetOverview(ctx, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}

func (h *Handler) EarnBadge(c *gin.Context) {
	badgeID, err := h.parseULIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	badge, err := h.GamificationService.EarnBadge(ctx, badgeID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.BadgeResponse{Badge: badge})
}

func (h *Handler) AdvanceChallenge(c *gin.Context) {
	var body contracts.ChallengeAdvanceRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	challengeID, err := h.parseULIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	challenge, err := h.GamificationService.AdvanceChallenge(ctx, challengeID, userID, body.Amount)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.ChallengeResponse{Challenge: challenge})
}
