package catalog

// Catálogo estático de categorias de despesa e formas de pagamento usado pelos
// formulários e pelo gerador de previsões. Os dados são imutáveis; nenhuma
// entrada é criada em tempo de execução.

const (
	CategoryFoodDining     = "Food & Dining"
	CategoryTransportation = "Transportation"
	CategoryRentHousing    = "Rent/Housing"
	CategorySubscriptions  = "Subscriptions"
	CategoryShopping       = "Shopping"
	CategoryEntertainment  = "Entertainment"
	CategoryHealthcare     = "Healthcare"
	CategoryUtilities      = "Utilities"
	CategoryOther          = "Other"
)

var Categories = []string{
	CategoryFoodDining,
	CategoryTransportation,
	CategoryRentHousing,
	CategorySubscriptions,
	CategoryShopping,
	CategoryEntertainment,
	CategoryHealthcare,
	CategoryUtilities,
	CategoryOther,
}

var PaymentMethods = []string{
	"Cash",
	"Credit Card",
	"Debit Card",
	"Mobile Wallet",
	"Bank Transfer",
}

// DefaultInsight é usado para categorias sem entrada na tabela de insights,
// inclusive categorias de texto livre digitadas pelo usuário.
const DefaultInsight = "Normal spending pattern"

var categoryInsights = map[string][]string{
	CategoryFoodDining: {
		"Weekend dining spike expected",
		"Delivery fees increasing",
		"Seasonal menu changes",
	},
	CategoryTransportation: {
		"Gas prices trending up",
		"Public transit rate change",
		"More commute days",
	},
	CategoryEntertainment: {
		"New streaming service",
		"Concert season approaching",
		"Weekend activities up",
	},
	CategoryShopping: {
		"Holiday shopping ahead",
		"Seasonal wardrobe update",
		"Price inflation expected",
	},
}

// InsightCandidates retorna a lista ordenada de insights candidatos para a
// categoria, ou a lista com o insight padrão quando a categoria não consta na
// tabela.
func InsightCandidates(category string) []string {
	if candidates, ok := categoryInsights[category]; ok {
		return candidates
	}
	return []string{DefaultInsight}
}

func IsCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

func IsPaymentMethod(name string) bool {
	for _, m := range PaymentMethods {
		if m == name {
			return true
		}
	}
	return false
}
