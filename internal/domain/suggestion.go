package domain

// PricingType é o tipo de sugestão de preço
type PricingType string

const (
	PricingIncrease PricingType = "increase"
	PricingDecrease PricingType = "decrease"
	PricingBundle   PricingType = "bundle"
)

// IsValid indica se o tipo pertence ao conjunto fechado de tipos de preço
func (t PricingType) IsValid() bool {
	switch t {
	case PricingIncrease, PricingDecrease, PricingBundle:
		return true
	}
	return false
}

// PricingRule identifica a regra que gerou a sugestão de preço
type PricingRule string

const (
	RuleHighDemand  PricingRule = "high_demand"
	RuleSlowMover   PricingRule = "slow_mover"
	RuleDeadStock   PricingRule = "dead_stock"
	RuleBelowMarket PricingRule = "below_market"
	RuleAboveMarket PricingRule = "above_market"
)

// PricingSuggestion é uma sugestão de alteração de preço
type PricingSuggestion struct {
	ProductID       string      `json:"product_id"`
	ProductName     string      `json:"product_name"`
	CurrentPrice    int64       `json:"current_price"`
	SuggestedPrice  int64       `json:"suggested_price"`
	Reason          string      `json:"reason"`
	Type            PricingType `json:"type"`
	Rule            PricingRule `json:"rule"`
	Confidence      int         `json:"confidence"`
	PotentialImpact string      `json:"potential_impact"`
}

// CategorySuggestion é uma sugestão de reclassificação de categoria
type CategorySuggestion struct {
	ProductID         string `json:"product_id"`
	ProductName       string `json:"product_name"`
	CurrentCategory   string `json:"current_category"`
	SuggestedCategory string `json:"suggested_category"`
	MatchedKeyword    string `json:"matched_keyword"`
	Confidence        int    `json:"confidence"`
	Reason            string `json:"reason"`
}

// ClampConfidence limita a confiança ao intervalo [0,100]
func ClampConfidence(confidence int) int {
	if confidence < 0 {
		return 0
	}
	if confidence > 100 {
		return 100
	}
	return confidence
}
