package forecast

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
)

// EntrySource fornece os lançamentos do período corrente de um usuário.
// Implementado pelo serviço de despesas.
type EntrySource interface {
	Entries(ctx context.Context, userID ulid.ULID) ([]Entry, error)
}

type Service struct {
	Entries           EntrySource
	Generator         *Generator
	ChallengeCategory string
}

// Receipt é o payload da página de "recibo futuro": o recibo corrente, a
// previsão do próximo período e as recomendações derivadas.
type Receipt struct {
	Current          []Entry          `json:"current"`
	Predicted        []Item           `json:"predicted"`
	Aggregate        *AggregateResult `json:"aggregate"`
	Recommendations  []string         `json:"recommendations"`
	GeneratedAt      time.Time        `json:"generatedAt"`
	PredictedForDate time.Time        `json:"predictedForDate"`
}

// BuildReceipt gera o recibo especulativo do próximo período a partir dos
// lançamentos gravados. Sem lançamentos, a agregação falha com EMPTY_INPUT.
func (s *Service) BuildReceipt(ctx context.Context, userID ulid.ULID) (*Receipt, error) {
	entries, err := s.Entries.Entries(ctx, userID)
	if err != nil {
		return nil, err
	}

	items, err := s.Generator.Generate(entries)
	if err != nil {
		return nil, err
	}

	agg, err := Aggregate(entries, items)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &Receipt{
		Current:          entries,
		Predicted:        items,
		Aggregate:        agg,
		Recommendations:  Recommendations(agg, entries, s.ChallengeCategory),
		GeneratedAt:      now,
		PredictedForDate: now.AddDate(0, 0, 30),
	}, nil
}
