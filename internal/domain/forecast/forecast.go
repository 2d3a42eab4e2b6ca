package forecast

// Entry é um lançamento de despesa do período corrente, como submetido pelo
// formulário. A sequência pertence ao chamador; o núcleo não a persiste.
type Entry struct {
	Category      string  `json:"category"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"paymentMethod"`
}

// Item é a previsão derivada para um lançamento. Vive apenas durante o cálculo
// de uma previsão.
type Item struct {
	Category        string  `json:"category"`
	PredictedAmount float64 `json:"predictedAmount"`
	Insight         string  `json:"insight"`
}

// AggregateResult consolida totais e tendência de um conjunto de lançamentos e
// sua previsão. SavingsPotential positivo indica economia esperada; negativo,
// risco de estouro.
type AggregateResult struct {
	CurrentTotal     float64 `json:"currentTotal"`
	PredictedTotal   float64 `json:"predictedTotal"`
	TrendPercent     float64 `json:"trendPercent"`
	SavingsPotential float64 `json:"savingsPotential"`
	TopCategory      string  `json:"topCategory"`
}
