package intelligence

import (
	"time"

	"github.com/vfg2006/inventory-intelligence-api/internal/domain"
)

// SalesStats é o mapa de estatísticas de vendas por chave (ID do produto ou nome)
type SalesStats map[string]*domain.SalesStat

// Lookup busca a estatística de um produto pelo ID e, na falta, pelo nome
func (s SalesStats) Lookup(product *domain.Product) (*domain.SalesStat, bool) {
	if product == nil {
		return nil, false
	}
	if stat, ok := s[product.ID]; ok && product.ID != "" {
		return stat, true
	}
	if stat, ok := s[product.Name]; ok && product.Name != "" {
		return stat, true
	}
	return nil, false
}

// FilterWindow mantém apenas os pedidos criados a partir de asOf - windowDays
func FilterWindow(orders []*domain.OrderRecord, asOf time.Time, windowDays int) []*domain.OrderRecord {
	cfg := &Config{AsOf: asOf, WindowDays: windowDays}
	start := cfg.windowStart()

	filtered := make([]*domain.OrderRecord, 0, len(orders))
	for _, order := range orders {
		if order == nil || order.CreatedAt.Before(start) {
			continue
		}
		filtered = append(filtered, order)
	}
	return filtered
}

// AggregateSales reduz os itens dos pedidos em estatísticas por produto.
// Cada ocorrência de item conta como um pedido em OrderCount.
func AggregateSales(orders []*domain.OrderRecord) SalesStats {
	stats := make(SalesStats)

	for _, order := range orders {
		if order == nil {
			continue
		}

		for _, item := range order.Items {
			key := item.SalesKey()
			if key == "" || item.Quantity < 0 || item.Price < 0 {
				continue
			}

			stat, exists := stats[key]
			if !exists {
				stat = &domain.SalesStat{}
				stats[key] = stat
			}

			stat.TotalSold += item.Quantity
			stat.TotalRevenue += item.Price * item.Quantity
			stat.OrderCount++
			if order.CreatedAt.After(stat.LastSoldAt) {
				stat.LastSoldAt = order.CreatedAt
			}
		}
	}

	return stats
}
