package routes

import (
	"net/http"
	"time"

	"Foreceipt/internal/contracts"
	domaincontracts "Foreceipt/internal/domain/contracts"
	appErrors "Foreceipt/internal/errors"
	"Foreceipt/internal/pkg"

	"github.com/gin-gonic/gin"
)

const goalDeadlineLayout = "2006-01-02"

func (h *Handler) CreateGoal(c *gin.Context) {
	var body contracts.GoalCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	deadline, err := time.Parse(goalDeadlineLayout, body.Deadline)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("deadline", "formato inválido, use YYYY-MM-DD"))
		return
	}

	req := domaincontracts.GoalCreateRequest{
		UserId:   userID,
		Title:    body.Title,
		Target:   body.Target,
		Deadline: deadline,
		Category: body.Category,
	}

	ctx := c.Request.Context()
	created, err := h.GoalService.CreateGoal(ctx, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.GoalResponse{Goal: created})
}

func (h *Handler) ListGoals(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	goals, total, err := h.GoalService.GetGoalsByUserID(ctx, userID, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	// O resumo cobre todas as metas do usuário, não apenas a página corrente.
	summary, err := h.GoalService.Summary(ctx, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.GoalListResponse{
		Goals:   pkg.NewPaginatedResponse(goals, pagination.Page, pagination.Limit, total),
		Summary: summary,
	})
}

func (h *Handler) GetGoal(c *gin.Context) {
	goalID, err := h.parseULIDParam(c, "id")
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
	entity, err := h.GoalService.GetGoalByID(ctx, goalID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.GoalResponse{Goal: entity})
}

func (h *Handler) DeleteGoal(c *gin.Context) {
	goalID, err := h.parseULIDParam(c, "id")
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
	if err := h.GoalService.DeleteGoal(ctx, goalID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Meta removida com sucesso"})
}

// ContributeGoal aceita valores positivos e negativos; o saldo resultante é
// limitado ao intervalo [0, alvo].
func (h *Handler) ContributeGoal(c *gin.Context) {
	var body contracts.GoalContributionRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	goalID, err := h.parseULIDParam(c, "id")
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
	updated, err := h.GoalService.Contribute(ctx, goalID, userID, body.Amount)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.GoalResponse{Goal: updated})
}

func (h *Handler) GoalProgress(c *gin.Context) {
	goalID, err := h.parseULIDParam(c, "id")
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
	progress, err := h.GoalService.Progress(ctx, goalID, userID, time.Now())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.GoalProgressResponse{Progress: progress})
}
