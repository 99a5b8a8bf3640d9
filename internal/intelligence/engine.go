package intelligence

import (
	"github.com/vfg2006/inventory-intelligence-api/internal/domain"
)

// Compute executa uma passagem completa do motor sobre um snapshot de catálogo e pedidos.
// Com cfg nil usa DefaultConfig. Quando cfg.AsOf é zero os pedidos não são filtrados,
// pois a janela já foi aplicada por quem os buscou.
func Compute(products []*domain.Product, orders []*domain.OrderRecord, cfg *Config) *domain.IntelligenceReport {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if !cfg.AsOf.IsZero() {
		orders = FilterWindow(orders, cfg.AsOf, cfg.WindowDays)
	}

	stats := AggregateSales(orders)

	pricing := AdvisePricing(products, stats, cfg)
	stock := ForecastStock(products, stats, cfg)
	category := ClassifyCategories(products, cfg)

	report := Assemble(pricing, stock, category, cfg.Limits)
	report.Summary.ProductsAnalyzed = len(domain.ActiveProducts(products))
	report.Summary.OrdersAnalyzed = countOrders(orders)

	return report
}

func countOrders(orders []*domain.OrderRecord) int {
	count := 0
	for _, order := range orders {
		if order != nil {
			count++
		}
	}
	return count
}
