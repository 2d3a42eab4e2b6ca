package goal_test

import (
	"math"
	"testing"
	"time"

	"Foreceipt/internal/domain/goal"
)

func TestProgressPercent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		current float64
		target  float64
		want    float64
	}{
		{"zerado", 0, 1000, 0},
		{"parcial", 320, 1200, 320.0 / 1200.0 * 100},
		{"completo", 1200, 1200, 100},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			g := goal.Goal{TargetAmount: tc.target, CurrentAmount: tc.current}
			if got := g.ProgressPercent(); math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("esperado %.6f, veio %.6f", tc.want, got)
			}
		})
	}
}

func TestDaysRemaining(t *testing.T) {
	t.Parallel()

	today := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		deadline time.Time
		want     int
	}{
		{"futuro inteiro", today.AddDate(0, 0, 10), 10},
		{"fração arredonda para cima", today.Add(36 * time.Hour), 2},
		{"mesmo instante", today, 0},
		{"atrasado", today.AddDate(0, 0, -3), -3},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			g := goal.Goal{Deadline: tc.deadline}
			if got := g.DaysRemaining(today); got != tc.want {
				t.Fatalf("esperado %d, veio %d", tc.want, got)
			}
		})
	}
}

func TestContributeClamping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		current float64
		delta   float64
		want    float64
	}{
		{"acúmulo normal", 320, 100, 420},
		{"excede o alvo", 320, 1000, 1200},
		{"retirada normal", 320, -100, 220},
		{"retirada abaixo de zero", 320, -1000, 0},
		{"no alvo exato", 1100, 100, 1200},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			g := goal.Goal{TargetAmount: 1200, CurrentAmount: tc.current}
			updated := g.Contribute(tc.delta)

			if math.Abs(updated.CurrentAmount-tc.want) > 1e-9 {
				t.Fatalf("esperado %.2f, veio %.2f", tc.want, updated.CurrentAmount)
			}
			if g.CurrentAmount != tc.current {
				t.Fatalf("Contribute alterou o registro original: %.2f", g.CurrentAmount)
			}
			if updated.Remaining() < 0 {
				t.Fatalf("restante negativo: %.2f", updated.Remaining())
			}
		})
	}
}

func TestContributeMonotonicProgress(t *testing.T) {
	t.Parallel()

	g := goal.Goal{TargetAmount: 1200, CurrentAmount: 320}
	before := g.ProgressPercent()

	updated := g.Contribute(1000)
	after := updated.ProgressPercent()

	if after < before {
		t.Fatalf("progresso regrediu com contribuição positiva: %.2f -> %.2f", before, after)
	}
	if after != 100 {
		t.Fatalf("atingir o alvo deve dar 100%%, veio %.2f", after)
	}
	if updated.Remaining() != 0 {
		t.Fatalf("restante no alvo deve ser 0, veio %.2f", updated.Remaining())
	}
}
