package config

import (
	"github.com/vfg2006/inventory-intelligence-api/internal/intelligence"
)

// EngineConfig monta a configuração do motor a partir do padrão com as sobrescritas
func (i Intelligence) EngineConfig() *intelligence.Config {
	cfg := intelligence.DefaultConfig()

	if i.WindowDays > 0 {
		cfg.WindowDays = i.WindowDays
	}
	if i.CurrencySymbol != "" {
		cfg.CurrencySymbol = i.CurrencySymbol
	}

	if i.PricingLimit > 0 {
		cfg.Limits.Pricing = i.PricingLimit
	}
	if i.StockLimit > 0 {
		cfg.Limits.Stock = i.StockLimit
	}
	if i.CategoryLimit > 0 {
		cfg.Limits.Category = i.CategoryLimit
	}

	if i.HighDemandIncreaseRate > 0 {
		cfg.Pricing.HighDemandIncreaseRate = i.HighDemandIncreaseRate
	}
	if i.SlowMoverDiscountRate > 0 {
		cfg.Pricing.SlowMoverDiscountRate = i.SlowMoverDiscountRate
	}
	if i.DeadStockDiscountRate > 0 {
		cfg.Pricing.DeadStockDiscountRate = i.DeadStockDiscountRate
	}

	if i.CriticalDays > 0 {
		cfg.Stock.CriticalDays = i.CriticalDays
	}
	if i.WarningDays > 0 {
		cfg.Stock.WarningDays = i.WarningDays
	}
	if i.OverstockDays > 0 {
		cfg.Stock.OverstockDays = i.OverstockDays
	}
	if i.ReorderSupplyDays > 0 {
		cfg.Stock.ReorderSupplyDays = i.ReorderSupplyDays
	}

	if i.Rules != nil {
		if len(i.Rules.MarketPriceRanges) > 0 {
			cfg.MarketPriceRanges = i.Rules.MarketPriceRanges
		}
		if len(i.Rules.CategoryKeywords) > 0 {
			cfg.CategoryKeywords = i.Rules.CategoryKeywords
		}
	}

	return cfg
}
