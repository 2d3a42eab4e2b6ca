package forecast

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"Foreceipt/internal/domain/catalog"
	appErrors "Foreceipt/internal/errors"
)

// Limites do multiplicador aleatório aplicado a cada categoria: variação de
// -5% a +15% sobre o valor corrente, sorteada de forma independente por
// chamada. É uma previsão deliberadamente ingênua: modela ruído, não tendência.
const (
	multiplierMin = 0.95
	multiplierMax = 1.15
)

// Generator produz previsões de gasto por categoria. A fonte de aleatoriedade
// é injetável para testes determinísticos; em produção usa-se NewGenerator.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewGenerator() *Generator {
	return NewGeneratorWithSeed(time.Now().UnixNano())
}

func NewGeneratorWithSeed(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate devolve um Item por lançamento com valor positivo. Lançamentos com
// valor zero são descartados; valores negativos ou não finitos são rejeitados.
// Entrada vazia produz saída vazia sem erro.
func (g *Generator) Generate(entries []Entry) ([]Item, error) {
	items := make([]Item, 0, len(entries))

	for _, entry := range entries {
		if math.IsNaN(entry.Amount) || math.IsInf(entry.Amount, 0) {
			return nil, appErrors.ErrInvalidInput.WithDetails(map[string]interface{}{
				"category": entry.Category,
				"reason":   "valor não finito",
			})
		}
		if entry.Amount < 0 {
			return nil, appErrors.ErrInvalidInput.WithDetails(map[string]interface{}{
				"category": entry.Category,
				"reason":   "valor negativo",
			})
		}
		if entry.Amount == 0 {
			continue
		}

		items = append(items, Item{
			Category:        entry.Category,
			PredictedAmount: entry.Amount * g.multiplier(),
			Insight:         g.pickInsight(entry.Category),
		})
	}

	return items, nil
}

func (g *Generator) multiplier() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return multiplierMin + g.rng.Float64()*(multiplierMax-multiplierMin)
}

func (g *Generator) pickInsight(category string) string {
	candidates := catalog.InsightCandidates(category)
	if len(candidates) == 1 {
		return candidates[0]
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return candidates[g.rng.Intn(len(candidates))]
}
