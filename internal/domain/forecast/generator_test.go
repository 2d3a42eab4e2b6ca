package forecast_test

import (
	"math"
	"testing"

	"Foreceipt/internal/domain/catalog"
	"Foreceipt/internal/domain/forecast"
	appErrors "Foreceipt/internal/errors"
)

func TestGenerateBoundsAndOrder(t *testing.T) {
	t.Parallel()

	entries := []forecast.Entry{
		{Category: "Food & Dining", Amount: 450.50, PaymentMethod: "Credit Card"},
		{Category: "Transportation", Amount: 120, PaymentMethod: "Cash"},
		{Category: "Rent/Housing", Amount: 1200, PaymentMethod: "Bank Transfer"},
	}

	for seed := int64(0); seed < 50; seed++ {
		gen := forecast.NewGeneratorWithSeed(seed)
		items, err := gen.Generate(entries)
		if err != nil {
			t.Fatalf("seed %d: erro inesperado: %v", seed, err)
		}
		if len(items) != len(entries) {
			t.Fatalf("seed %d: esperado %d itens, veio %d", seed, len(entries), len(items))
		}
		for i, item := range items {
			if item.Category != entries[i].Category {
				t.Fatalf("seed %d: ordem alterada, esperado %q na posição %d, veio %q", seed, entries[i].Category, i, item.Category)
			}
			low := entries[i].Amount * 0.95
			high := entries[i].Amount * 1.15
			if item.PredictedAmount < low || item.PredictedAmount > high {
				t.Fatalf("seed %d: %q previu %.4f fora de [%.4f, %.4f]", seed, item.Category, item.PredictedAmount, low, high)
			}
		}
	}
}

func TestGenerateDeterministicWithSameSeed(t *testing.T) {
	t.Parallel()

	entries := []forecast.Entry{
		{Category: "Shopping", Amount: 300},
		{Category: "Entertainment", Amount: 150},
	}

	first, err := forecast.NewGeneratorWithSeed(42).Generate(entries)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	second, err := forecast.NewGeneratorWithSeed(42).Generate(entries)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("mesma seed divergiu no item %d: %+v != %+v", i, first[i], second[i])
		}
	}
}

func TestGenerateSkipsZeroAmounts(t *testing.T) {
	t.Parallel()

	entries := []forecast.Entry{
		{Category: "Food & Dining", Amount: 100},
		{Category: "Utilities", Amount: 0},
		{Category: "Transportation", Amount: 50},
	}

	items, err := forecast.NewGeneratorWithSeed(7).Generate(entries)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("esperado 2 itens, veio %d", len(items))
	}
	if items[0].Category != "Food & Dining" || items[1].Category != "Transportation" {
		t.Fatalf("itens inesperados: %+v", items)
	}
}

func TestGenerateEmptyInput(t *testing.T) {
	t.Parallel()

	items, err := forecast.NewGeneratorWithSeed(1).Generate(nil)
	if err != nil {
		t.Fatalf("entrada vazia não deve falhar: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("esperado saída vazia, veio %d itens", len(items))
	}
}

func TestGenerateRejectsInvalidAmounts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		amount float64
	}{
		{"negativo", -10},
		{"nan", math.NaN()},
		{"inf", math.Inf(1)},
		{"inf negativo", math.Inf(-1)},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := forecast.NewGeneratorWithSeed(1).Generate([]forecast.Entry{
				{Category: "Other", Amount: tc.amount},
			})
			appErr, ok := appErrors.AsAppError(err)
			if !ok {
				t.Fatalf("esperado AppError, veio %v", err)
			}
			if appErr.Code != appErrors.ErrInvalidInput.Code {
				t.Fatalf("esperado código %q, veio %q", appErrors.ErrInvalidInput.Code, appErr.Code)
			}
		})
	}
}

func TestGenerateInsightsComeFromCatalog(t *testing.T) {
	t.Parallel()

	entries := []forecast.Entry{
		{Category: "Food & Dining", Amount: 100},
		{Category: "Categoria Livre", Amount: 80},
	}

	for seed := int64(0); seed < 20; seed++ {
		items, err := forecast.NewGeneratorWithSeed(seed).Generate(entries)
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		candidates := catalog.InsightCandidates("Food & Dining")
		found := false
		for _, c := range candidates {
			if items[0].Insight == c {
				found = true
			}
		}
		if !found {
			t.Fatalf("insight %q fora dos candidatos de Food & Dining", items[0].Insight)
		}

		if items[1].Insight != catalog.DefaultInsight {
			t.Fatalf("categoria desconhecida deve usar o insight padrão, veio %q", items[1].Insight)
		}
	}
}
