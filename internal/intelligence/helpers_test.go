package intelligence

import (
	"fmt"
	"time"

	"github.com/vfg2006/inventory-intelligence-api/internal/domain"
)

var referenceDate = time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC)

func int64Ptr(v int64) *int64 {
	return &v
}

func newProduct(id, name string, price int64, category string, stock int64) *domain.Product {
	return &domain.Product{
		ID:            id,
		Name:          name,
		Price:         price,
		Category:      category,
		Unit:          "unit",
		StockQuantity: int64Ptr(stock),
		IsActive:      true,
	}
}

// ordersFor cria um pedido por quantidade informada, um dia de intervalo entre eles
func ordersFor(productID string, price int64, quantities ...int64) []*domain.OrderRecord {
	orders := make([]*domain.OrderRecord, 0, len(quantities))
	for i, quantity := range quantities {
		orders = append(orders, &domain.OrderRecord{
			ID: fmt.Sprintf("%s-order-%d", productID, i+1),
			Items: domain.LineItems{
				{ProductID: productID, Name: productID, Quantity: quantity, Price: price},
			},
			TotalAmount: price * quantity,
			CreatedAt:   referenceDate.AddDate(0, 0, -(i + 1)),
			Status:      "delivered",
		})
	}
	return orders
}

func statsFor(orders ...[]*domain.OrderRecord) SalesStats {
	all := make([]*domain.OrderRecord, 0)
	for _, group := range orders {
		all = append(all, group...)
	}
	return AggregateSales(all)
}
