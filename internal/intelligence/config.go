// Package intelligence contém o motor de inteligência de estoque: agregação de vendas,
// sugestões de preço, previsão de ruptura e reclassificação de categorias.
// Todas as funções são puras e determinísticas sobre os dados recebidos.
package intelligence

import (
	"time"

	"github.com/vfg2006/inventory-intelligence-api/internal/domain"
)

// PricingRules agrupa as constantes do PricingAdvisor
type PricingRules struct {
	HighDemandIncreaseRate   float64 `json:"high_demand_increase_rate"`
	HighDemandMinSold        int64   `json:"high_demand_min_sold"`
	HighDemandMinOrders      int64   `json:"high_demand_min_orders"`
	HighDemandMinAvgQuantity float64 `json:"high_demand_min_avg_quantity"`
	HighDemandBaseConfidence int     `json:"high_demand_base_confidence"`
	HighDemandPerOrderBonus  int     `json:"high_demand_per_order_bonus"`
	HighDemandMaxConfidence  int     `json:"high_demand_max_confidence"`

	SlowMoverDiscountRate float64 `json:"slow_mover_discount_rate"`
	SlowMoverMaxSold      int64   `json:"slow_mover_max_sold"`
	SlowMoverMinStock     int64   `json:"slow_mover_min_stock"`
	SlowMoverConfidence   int     `json:"slow_mover_confidence"`

	DeadStockDiscountRate float64 `json:"dead_stock_discount_rate"`
	DeadStockMinStock     int64   `json:"dead_stock_min_stock"`
	DeadStockConfidence   int     `json:"dead_stock_confidence"`

	BelowMarketMultiplier float64 `json:"below_market_multiplier"`
	BelowMarketConfidence int     `json:"below_market_confidence"`
	AboveMarketMultiplier float64 `json:"above_market_multiplier"`
	AboveMarketConfidence int     `json:"above_market_confidence"`
}

// StockRules agrupa as constantes do StockForecaster
type StockRules struct {
	CriticalDays           int64   `json:"critical_days"`
	WarningDays            int64   `json:"warning_days"`
	OverstockDays          int64   `json:"overstock_days"`
	OverstockCoverDays     float64 `json:"overstock_cover_days"`
	ReorderSupplyDays      float64 `json:"reorder_supply_days"`
	DefaultReorderQuantity int64   `json:"default_reorder_quantity"`
	IdleOverstockUnits     int64   `json:"idle_overstock_units"`
}

// CategoryRules agrupa as constantes do CategoryClassifier
type CategoryRules struct {
	BaseConfidence int `json:"base_confidence"`
	MaxConfidence  int `json:"max_confidence"`
}

// Limits define o tamanho máximo de cada lista apresentada. Zero significa sem limite.
type Limits struct {
	Pricing  int `json:"pricing"`
	Stock    int `json:"stock"`
	Category int `json:"category"`
}

// Config é a configuração completa de uma execução do motor.
// AsOf é o instante de referência da janela; quando zero, os pedidos recebidos
// são considerados já filtrados pela janela.
type Config struct {
	WindowDays        int                                `json:"window_days"`
	AsOf              time.Time                          `json:"as_of"`
	MarketPriceRanges map[string]domain.MarketPriceRange `json:"market_price_ranges"`
	CategoryKeywords  []domain.CategoryKeywords          `json:"category_keywords"`
	Pricing           PricingRules                       `json:"pricing"`
	Stock             StockRules                         `json:"stock"`
	Category          CategoryRules                      `json:"category"`
	Limits            Limits                             `json:"limits"`
	CurrencySymbol    string                             `json:"currency_symbol"`
}

// DefaultConfig retorna a configuração padrão do motor
func DefaultConfig() *Config {
	return &Config{
		WindowDays:        30,
		MarketPriceRanges: DefaultMarketPriceRanges(),
		CategoryKeywords:  DefaultCategoryKeywords(),
		Pricing: PricingRules{
			HighDemandIncreaseRate:   0.08,
			HighDemandMinSold:        10,
			HighDemandMinOrders:      5,
			HighDemandMinAvgQuantity: 2,
			HighDemandBaseConfidence: 60,
			HighDemandPerOrderBonus:  2,
			HighDemandMaxConfidence:  92,
			SlowMoverDiscountRate:    0.12,
			SlowMoverMaxSold:         3,
			SlowMoverMinStock:        10,
			SlowMoverConfidence:      72,
			DeadStockDiscountRate:    0.15,
			DeadStockMinStock:        5,
			DeadStockConfidence:      65,
			BelowMarketMultiplier:    0.7,
			BelowMarketConfidence:    68,
			AboveMarketMultiplier:    1.5,
			AboveMarketConfidence:    60,
		},
		Stock: StockRules{
			CriticalDays:           3,
			WarningDays:            7,
			OverstockDays:          60,
			OverstockCoverDays:     45,
			ReorderSupplyDays:      14,
			DefaultReorderQuantity: 10,
			IdleOverstockUnits:     20,
		},
		Category: CategoryRules{
			BaseConfidence: 50,
			MaxConfidence:  95,
		},
		Limits: Limits{
			Pricing: 20,
		},
		CurrencySymbol: "£",
	}
}

// windowDivisor retorna o número de dias usado no cálculo da taxa diária (mínimo 1)
func (c *Config) windowDivisor() float64 {
	if c.WindowDays < 1 {
		return 1
	}
	return float64(c.WindowDays)
}

// windowStart retorna o início da janela a partir de AsOf
func (c *Config) windowStart() time.Time {
	return WindowStart(c.AsOf, c.WindowDays)
}

// WindowStart retorna o instante inicial da janela de windowDays dias (mínimo 1)
// terminando em asOf
func WindowStart(asOf time.Time, windowDays int) time.Time {
	if windowDays < 1 {
		windowDays = 1
	}
	return asOf.Add(-time.Duration(windowDays) * 24 * time.Hour)
}

// DefaultMarketPriceRanges retorna a tabela padrão de faixas de preço por categoria (em pence)
func DefaultMarketPriceRanges() map[string]domain.MarketPriceRange {
	return map[string]domain.MarketPriceRange{
		"Grains":              {Low: 300, Mid: 1500, High: 4000},
		"Flour & Baking":      {Low: 120, Mid: 400, High: 1500},
		"Spices & Seasonings": {Low: 100, Mid: 350, High: 900},
		"Oils":                {Low: 250, Mid: 900, High: 2500},
		"Beverages":           {Low: 80, Mid: 250, High: 800},
		"Snacks":              {Low: 80, Mid: 250, High: 700},
		"Frozen Foods":        {Low: 300, Mid: 900, High: 2500},
		"Fresh Produce":       {Low: 80, Mid: 300, High: 1000},
		"Canned Goods":        {Low: 80, Mid: 200, High: 600},
		"Dairy":               {Low: 90, Mid: 250, High: 700},
		"Household":           {Low: 100, Mid: 350, High: 1200},
	}
}

// DefaultCategoryKeywords retorna a tabela padrão de palavras-chave, em ordem de prioridade
func DefaultCategoryKeywords() []domain.CategoryKeywords {
	return []domain.CategoryKeywords{
		{Category: "Grains", Keywords: []string{"rice", "beans", "garri", "semolina", "semovita", "oats", "pasta", "spaghetti", "couscous", "maize", "millet", "fufu"}},
		{Category: "Flour & Baking", Keywords: []string{"flour", "yeast", "baking", "sugar", "custard"}},
		{Category: "Spices & Seasonings", Keywords: []string{"seasoning", "pepper", "curry", "thyme", "spice", "stock cube", "maggi", "knorr", "suya", "ginger", "nutmeg", "crayfish"}},
		{Category: "Oils", Keywords: []string{"palm oil", "vegetable oil", "groundnut oil", "olive oil", "oil"}},
		{Category: "Beverages", Keywords: []string{"drink", "juice", "malt", "tea", "coffee", "milo", "soda", "water", "cocoa"}},
		{Category: "Snacks", Keywords: []string{"chin chin", "chips", "crisps", "biscuit", "cookies", "puff", "peanut"}},
		{Category: "Frozen Foods", Keywords: []string{"frozen", "fish", "chicken", "turkey", "goat", "beef", "prawn"}},
		{Category: "Fresh Produce", Keywords: []string{"yam", "plantain", "tomato", "onion", "okra", "cassava", "potato", "spinach"}},
		{Category: "Canned Goods", Keywords: []string{"tin", "canned", "paste", "sardine", "corned"}},
		{Category: "Dairy", Keywords: []string{"milk", "butter", "cheese", "yoghurt", "yogurt", "cream"}},
		{Category: "Household", Keywords: []string{"soap", "detergent", "tissue", "bleach", "sponge"}},
	}
}
