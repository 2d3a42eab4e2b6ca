package forecast

import (
	"fmt"
	"math"
)

// DefaultChallengeCategory é a categoria alvo do desafio de economia quando
// nenhuma outra é configurada.
const DefaultChallengeCategory = "Food & Dining"

// fallbackChallengeSaving é a economia sugerida quando a categoria alvo não
// aparece nos lançamentos.
const fallbackChallengeSaving = 50.0

// Recommendations seleciona as mensagens de aconselhamento a exibir. A ordem é
// contratual: alerta de estouro (quando houver), depois o desafio de economia,
// depois a dica genérica de acompanhamento.
func Recommendations(agg *AggregateResult, entries []Entry, challengeCategory string) []string {
	if challengeCategory == "" {
		challengeCategory = DefaultChallengeCategory
	}

	recommendations := make([]string, 0, 3)

	if agg.SavingsPotential < 0 {
		recommendations = append(recommendations, fmt.Sprintf(
			"Overspend Alert: you might exceed your budget by $%.2f. Consider reducing spending in high-risk categories.",
			math.Abs(agg.SavingsPotential),
		))
	}

	saving := fallbackChallengeSaving
	for _, entry := range entries {
		if entry.Category == challengeCategory {
			saving = entry.Amount * 0.2
			break
		}
	}
	recommendations = append(recommendations, fmt.Sprintf(
		"Saving Challenge: cut %s spending by 20%% to save ~$%.0f this month.",
		challengeCategory, saving,
	))

	recommendations = append(recommendations,
		"Track Progress: use the receipt format to monitor daily spending and stay on track.",
	)

	return recommendations
}
