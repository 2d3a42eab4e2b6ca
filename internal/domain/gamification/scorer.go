package gamification

import (
	"math"

	appErrors "Foreceipt/internal/errors"
)

// Derivações numéricas puras da camada de gamificação. Nenhuma transição de
// estado acontece aqui; o chamador fornece as contagens atualizadas.

// badgesPerLevel é o passo da barra de progresso entre níveis.
const badgesPerLevel = 3

// Level deriva o nível do usuário da contagem de conquistas obtidas.
func Level(earnedBadges int) int {
	return int(math.Floor(float64(earnedBadges)*1.5)) + 1
}

// LevelProgressPercent devolve o avanço dentro do nível corrente, em [0, 100).
func LevelProgressPercent(earnedBadges int) float64 {
	return float64(earnedBadges%badgesPerLevel) / badgesPerLevel * 100
}

// BadgesToNextLevel devolve quantas conquistas faltam para o próximo nível.
func BadgesToNextLevel(earnedBadges int) int {
	return badgesPerLevel - earnedBadges%badgesPerLevel
}

// ProgressPercent devolve o avanço do desafio, limitado a 100.
func (c *Challenge) ProgressPercent() float64 {
	return math.Min(100, float64(c.Progress)/float64(c.Target)*100)
}

// CompletionRate devolve o percentual de conquistas obtidas sobre o catálogo.
// Catálogo vazio é EMPTY_INPUT.
func CompletionRate(badges []*Badge) (float64, error) {
	if len(badges) == 0 {
		return 0, appErrors.ErrEmptyInput.WithDetails(map[string]interface{}{
			"collection": "badges",
		})
	}

	earned := 0
	for _, b := range badges {
		if b.Earned {
			earned++
		}
	}
	return float64(earned) / float64(len(badges)) * 100, nil
}
