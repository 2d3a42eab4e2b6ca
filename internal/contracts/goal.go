package contracts

import (
	domainGoal "Foreceipt/internal/domain/goal"
	"Foreceipt/internal/pkg"
)

type GoalCreateRequest struct {
	Title    string  `json:"title" binding:"required"`
	Target   float64 `json:"target" binding:"required,gt=0"`
	Deadline string  `json:"deadline" binding:"required"`
	Category string  `json:"category" binding:"omitempty,max=100"`
}

type GoalContributionRequest struct {
	Amount float64 `json:"amount" binding:"required"`
}

type GoalListResponse struct {
	Goals   *pkg.PaginatedResponse[*domainGoal.Goal] `json:"goals"`
	Summary *domainGoal.Summary                      `json:"summary"`
}

type GoalResponse struct {
	Goal *domainGoal.Goal `json:"goal"`
}

type GoalProgressResponse struct {
	Progress *domainGoal.GoalProgress `json:"progress"`
}
