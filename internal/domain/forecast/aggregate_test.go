package forecast_test

import (
	"math"
	"testing"

	"Foreceipt/internal/domain/forecast"
	appErrors "Foreceipt/internal/errors"
)

func TestAggregateTotals(t *testing.T) {
	t.Parallel()

	entries := []forecast.Entry{
		{Category: "Food & Dining", Amount: 450.50},
		{Category: "Transportation", Amount: 120.25},
		{Category: "Rent/Housing", Amount: 645.80},
	}
	items := []forecast.Item{
		{Category: "Food & Dining", PredictedAmount: 470},
		{Category: "Transportation", PredictedAmount: 115},
		{Category: "Rent/Housing", PredictedAmount: 700},
	}

	agg, err := forecast.Aggregate(entries, items)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if math.Abs(agg.CurrentTotal-1216.55) > 1e-9 {
		t.Fatalf("total corrente esperado 1216.55, veio %.4f", agg.CurrentTotal)
	}
	if math.Abs(agg.PredictedTotal-1285) > 1e-9 {
		t.Fatalf("total previsto esperado 1285, veio %.4f", agg.PredictedTotal)
	}
	if agg.TopCategory != "Rent/Housing" {
		t.Fatalf("categoria top esperada Rent/Housing, veio %q", agg.TopCategory)
	}

	wantTrend := (1285 - 1216.55) / 1216.55 * 100
	if math.Abs(agg.TrendPercent-wantTrend) > 1e-9 {
		t.Fatalf("tendência esperada %.6f, veio %.6f", wantTrend, agg.TrendPercent)
	}

	wantSavings := 1216.55 - 1285
	if math.Abs(agg.SavingsPotential-wantSavings) > 1e-9 {
		t.Fatalf("potencial de economia esperado %.4f, veio %.4f", wantSavings, agg.SavingsPotential)
	}
}

func TestAggregatePositiveSavings(t *testing.T) {
	t.Parallel()

	entries := []forecast.Entry{{Category: "Shopping", Amount: 200}}
	items := []forecast.Item{{Category: "Shopping", PredictedAmount: 190}}

	agg, err := forecast.Aggregate(entries, items)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if math.Abs(agg.SavingsPotential-10) > 1e-9 {
		t.Fatalf("potencial de economia esperado 10, veio %.4f", agg.SavingsPotential)
	}
	if agg.TrendPercent >= 0 {
		t.Fatalf("tendência deveria ser negativa, veio %.4f", agg.TrendPercent)
	}
}

func TestAggregateEmptyForecast(t *testing.T) {
	t.Parallel()

	_, err := forecast.Aggregate([]forecast.Entry{{Category: "Other", Amount: 10}}, nil)
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != appErrors.ErrEmptyInput.Code {
		t.Fatalf("esperado EMPTY_INPUT, veio %v", err)
	}
}

func TestAggregateZeroCurrentTotal(t *testing.T) {
	t.Parallel()

	entries := []forecast.Entry{{Category: "Other", Amount: 0}}
	items := []forecast.Item{{Category: "Other", PredictedAmount: 5}}

	_, err := forecast.Aggregate(entries, items)
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != appErrors.ErrDivisionByZero.Code {
		t.Fatalf("esperado DIVISION_BY_ZERO, veio %v", err)
	}
}

func TestAggregateTopCategoryTieKeepsFirst(t *testing.T) {
	t.Parallel()

	entries := []forecast.Entry{
		{Category: "Shopping", Amount: 100},
		{Category: "Utilities", Amount: 100},
	}
	items := []forecast.Item{
		{Category: "Shopping", PredictedAmount: 110},
		{Category: "Utilities", PredictedAmount: 110},
	}

	agg, err := forecast.Aggregate(entries, items)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if agg.TopCategory != "Shopping" {
		t.Fatalf("empate deve manter o primeiro item, veio %q", agg.TopCategory)
	}
}
