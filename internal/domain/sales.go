package domain

import "time"

// SalesStat é a estatística de vendas de um produto dentro da janela
type SalesStat struct {
	TotalSold    int64     `json:"total_sold"`
	TotalRevenue int64     `json:"total_revenue"`
	OrderCount   int64     `json:"order_count"`
	LastSoldAt   time.Time `json:"last_sold_at"`
}

// AverageOrderQuantity retorna a média de unidades por ocorrência em pedido
func (s *SalesStat) AverageOrderQuantity() float64 {
	if s.OrderCount == 0 {
		return 0
	}
	return float64(s.TotalSold) / float64(s.OrderCount)
}
