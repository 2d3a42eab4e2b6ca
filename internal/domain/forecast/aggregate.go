package forecast

import (
	appErrors "Foreceipt/internal/errors"
)

// Aggregate consolida lançamentos e previsão em totais, tendência e categoria
// de maior gasto previsto. Previsão vazia é EMPTY_INPUT; total corrente zero
// torna a tendência indefinida e é sinalizado como DIVISION_BY_ZERO em vez de
// produzir NaN/Inf; o chamador decide a exibição alternativa.
func Aggregate(entries []Entry, items []Item) (*AggregateResult, error) {
	if len(items) == 0 {
		return nil, appErrors.ErrEmptyInput.WithDetails(map[string]interface{}{
			"collection": "forecast",
		})
	}

	var currentTotal float64
	for _, entry := range entries {
		currentTotal += entry.Amount
	}

	var predictedTotal float64
	top := items[0]
	for _, item := range items {
		predictedTotal += item.PredictedAmount
		// Empate mantém o primeiro item na ordem de entrada.
		if item.PredictedAmount > top.PredictedAmount {
			top = item
		}
	}

	if currentTotal == 0 {
		return nil, appErrors.ErrDivisionByZero
	}

	return &AggregateResult{
		CurrentTotal:     currentTotal,
		PredictedTotal:   predictedTotal,
		TrendPercent:     (predictedTotal - currentTotal) / currentTotal * 100,
		SavingsPotential: currentTotal - predictedTotal,
		TopCategory:      top.Category,
	}, nil
}
