package intelligence

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/inventory-intelligence-api/internal/domain"
)

// AdvisePricing aplica as regras de preço a cada produto ativo. Um produto pode gerar
// mais de uma sugestão. O resultado não é ordenado nem cortado aqui.
func AdvisePricing(products []*domain.Product, stats SalesStats, cfg *Config) []domain.PricingSuggestion {
	suggestions := make([]domain.PricingSuggestion, 0)

	for _, product := range domain.ActiveProducts(products) {
		if product.Price < 0 {
			continue
		}

		stat, hasStat := stats.Lookup(product)
		marketRange, hasRange := cfg.MarketPriceRanges[product.Category]

		candidates := []*domain.PricingSuggestion{
			highDemandIncrease(product, stat, hasStat, cfg),
			slowMoverDiscount(product, stat, hasStat, cfg),
			deadStockDiscount(product, hasStat, cfg),
			belowMarketCorrection(product, marketRange, hasRange, cfg),
			aboveMarketCorrection(product, marketRange, hasRange, cfg),
		}

		// uma regra que dispara sempre entra, mesmo quando o arredondamento zera a variação
		for _, candidate := range candidates {
			if candidate == nil {
				continue
			}
			candidate.Confidence = domain.ClampConfidence(candidate.Confidence)
			suggestions = append(suggestions, *candidate)
		}
	}

	return suggestions
}

func highDemandIncrease(product *domain.Product, stat *domain.SalesStat, hasStat bool, cfg *Config) *domain.PricingSuggestion {
	rules := cfg.Pricing
	if !hasStat || stat.TotalSold <= rules.HighDemandMinSold || stat.OrderCount <= rules.HighDemandMinOrders {
		return nil
	}

	avgQuantity := stat.AverageOrderQuantity()
	if avgQuantity <= rules.HighDemandMinAvgQuantity {
		return nil
	}

	increase := roundHalfUp(float64(product.Price) * rules.HighDemandIncreaseRate)
	confidence := rules.HighDemandBaseConfidence + int(stat.OrderCount)*rules.HighDemandPerOrderBonus
	if confidence > rules.HighDemandMaxConfidence {
		confidence = rules.HighDemandMaxConfidence
	}

	return &domain.PricingSuggestion{
		ProductID:      product.ID,
		ProductName:    product.Name,
		CurrentPrice:   product.Price,
		SuggestedPrice: product.Price + increase,
		Reason: fmt.Sprintf("High demand: %d units sold across %d orders (avg %.1f per order)",
			stat.TotalSold, stat.OrderCount, avgQuantity),
		Type:            domain.PricingIncrease,
		Rule:            domain.RuleHighDemand,
		Confidence:      confidence,
		PotentialImpact: fmt.Sprintf("+%s/month estimated revenue", formatMoney(cfg.CurrencySymbol, increase*stat.TotalSold)),
	}
}

func slowMoverDiscount(product *domain.Product, stat *domain.SalesStat, hasStat bool, cfg *Config) *domain.PricingSuggestion {
	rules := cfg.Pricing
	stock := product.Stock()
	if !hasStat || stat.TotalSold >= rules.SlowMoverMaxSold || stock <= rules.SlowMoverMinStock {
		return nil
	}

	discount := roundHalfUp(float64(product.Price) * rules.SlowMoverDiscountRate)

	return &domain.PricingSuggestion{
		ProductID:       product.ID,
		ProductName:     product.Name,
		CurrentPrice:    product.Price,
		SuggestedPrice:  product.Price - discount,
		Reason:          fmt.Sprintf("Slow mover: only %d sold in %d days with %d in stock", stat.TotalSold, cfg.WindowDays, stock),
		Type:            domain.PricingDecrease,
		Rule:            domain.RuleSlowMover,
		Confidence:      rules.SlowMoverConfidence,
		PotentialImpact: fmt.Sprintf("Could clear %d units faster", stock),
	}
}

func deadStockDiscount(product *domain.Product, hasStat bool, cfg *Config) *domain.PricingSuggestion {
	rules := cfg.Pricing
	stock := product.Stock()
	if hasStat || stock <= rules.DeadStockMinStock {
		return nil
	}

	discount := roundHalfUp(float64(product.Price) * rules.DeadStockDiscountRate)

	return &domain.PricingSuggestion{
		ProductID:       product.ID,
		ProductName:     product.Name,
		CurrentPrice:    product.Price,
		SuggestedPrice:  product.Price - discount,
		Reason:          fmt.Sprintf("No sales in the last %d days with %d units in stock", cfg.WindowDays, stock),
		Type:            domain.PricingDecrease,
		Rule:            domain.RuleDeadStock,
		Confidence:      rules.DeadStockConfidence,
		PotentialImpact: fmt.Sprintf("Frees up %s tied in stock", formatMoney(cfg.CurrencySymbol, product.Price*stock)),
	}
}

func belowMarketCorrection(product *domain.Product, marketRange domain.MarketPriceRange, hasRange bool, cfg *Config) *domain.PricingSuggestion {
	rules := cfg.Pricing
	if !hasRange || float64(product.Price) >= float64(marketRange.Low)*rules.BelowMarketMultiplier {
		return nil
	}

	return &domain.PricingSuggestion{
		ProductID:      product.ID,
		ProductName:    product.Name,
		CurrentPrice:   product.Price,
		SuggestedPrice: marketRange.Low,
		Reason: fmt.Sprintf("Priced below the %s market range (%s to %s)", product.Category,
			formatMoney(cfg.CurrencySymbol, marketRange.Low), formatMoney(cfg.CurrencySymbol, marketRange.High)),
		Type:            domain.PricingIncrease,
		Rule:            domain.RuleBelowMarket,
		Confidence:      rules.BelowMarketConfidence,
		PotentialImpact: fmt.Sprintf("+%s per unit sold", formatMoney(cfg.CurrencySymbol, marketRange.Low-product.Price)),
	}
}

func aboveMarketCorrection(product *domain.Product, marketRange domain.MarketPriceRange, hasRange bool, cfg *Config) *domain.PricingSuggestion {
	rules := cfg.Pricing
	if !hasRange || float64(product.Price) <= float64(marketRange.High)*rules.AboveMarketMultiplier {
		return nil
	}

	return &domain.PricingSuggestion{
		ProductID:      product.ID,
		ProductName:    product.Name,
		CurrentPrice:   product.Price,
		SuggestedPrice: marketRange.High,
		Reason: fmt.Sprintf("Priced well above the %s market range (%s to %s)", product.Category,
			formatMoney(cfg.CurrencySymbol, marketRange.Low), formatMoney(cfg.CurrencySymbol, marketRange.High)),
		Type:            domain.PricingDecrease,
		Rule:            domain.RuleAboveMarket,
		Confidence:      rules.AboveMarketConfidence,
		PotentialImpact: fmt.Sprintf("More competitive against the %s market mid-point of %s", product.Category, formatMoney(cfg.CurrencySymbol, marketRange.Mid)),
	}
}

// roundHalfUp arredonda com desempate para cima (2.5 -> 3, -2.5 -> -2)
func roundHalfUp(value float64) int64 {
	return int64(math.Floor(value + 0.5))
}

// formatMoney converte um valor na unidade mínima para texto com duas casas decimais
func formatMoney(symbol string, minor int64) string {
	amount := decimal.New(minor, -2)
	if amount.IsNegative() {
		return "-" + symbol + amount.Abs().StringFixed(2)
	}
	return symbol + amount.StringFixed(2)
}
