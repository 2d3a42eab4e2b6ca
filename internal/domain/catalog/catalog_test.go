package catalog_test

import (
	"testing"

	"Foreceipt/internal/domain/catalog"
)

func TestCategories(t *testing.T) {
	t.Parallel()

	if len(catalog.Categories) != 9 {
		t.Fatalf("esperado 9 categorias, veio %d", len(catalog.Categories))
	}
	if catalog.Categories[0] != "Food & Dining" || catalog.Categories[len(catalog.Categories)-1] != "Other" {
		t.Fatalf("ordem do catálogo inesperada: %v", catalog.Categories)
	}

	for _, c := range catalog.Categories {
		if !catalog.IsCategory(c) {
			t.Fatalf("categoria %q do catálogo não reconhecida", c)
		}
	}
	if catalog.IsCategory("Groceries") {
		t.Fatal("categoria fora do catálogo não deveria ser reconhecida")
	}
}

func TestPaymentMethods(t *testing.T) {
	t.Parallel()

	want := []string{"Cash", "Credit Card", "Debit Card", "Mobile Wallet", "Bank Transfer"}
	if len(catalog.PaymentMethods) != len(want) {
		t.Fatalf("esperado %d formas de pagamento, veio %d", len(want), len(catalog.PaymentMethods))
	}
	for i, m := range want {
		if catalog.PaymentMethods[i] != m {
			t.Fatalf("posição %d: esperado %q, veio %q", i, m, catalog.PaymentMethods[i])
		}
	}
	if catalog.IsPaymentMethod("Cheque") {
		t.Fatal("forma de pagamento fora do catálogo não deveria ser reconhecida")
	}
}

func TestInsightCandidates(t *testing.T) {
	t.Parallel()

	withTable := []string{"Food & Dining", "Transportation", "Entertainment", "Shopping"}
	for _, c := range withTable {
		candidates := catalog.InsightCandidates(c)
		if len(candidates) != 3 {
			t.Fatalf("%q: esperado 3 candidatos, veio %d", c, len(candidates))
		}
	}

	fallbacks := []string{"Rent/Housing", "Utilities", "Other", "Categoria Livre", ""}
	for _, c := range fallbacks {
		candidates := catalog.InsightCandidates(c)
		if len(candidates) != 1 || candidates[0] != catalog.DefaultInsight {
			t.Fatalf("%q: esperado apenas o insight padrão, veio %v", c, candidates)
		}
	}
}
