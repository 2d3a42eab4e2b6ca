package contracts

import (
	domainGamification "Foreceipt/internal/domain/gamification"
)

type ChallengeAdvanceRequest struct {
	Amount int `json:"amount" binding:"required"`
}

type BadgeResponse struct {
	Badge *domainGamification.Badge `json:"badge"`
}

type ChallengeResponse struct {
	Challenge *domainGamification.Challenge `json:"challenge"`
}
