package intelligence

import (
	"fmt"
	"math"

	"github.com/vfg2006/inventory-intelligence-api/internal/domain"
	"github.com/vfg2006/inventory-intelligence-api/pkg/utils"
)

// ForecastStock calcula a previsão de ruptura de cada produto ativo, na ordem do catálogo
func ForecastStock(products []*domain.Product, stats SalesStats, cfg *Config) []domain.StockPrediction {
	active := domain.ActiveProducts(products)
	predictions := make([]domain.StockPrediction, 0, len(active))

	for _, product := range active {
		dailyRate := 0.0
		if stat, ok := stats.Lookup(product); ok && stat.TotalSold > 0 {
			dailyRate = float64(stat.TotalSold) / cfg.windowDivisor()
		}

		if dailyRate > 0 {
			predictions = append(predictions, forecastWithSales(product, dailyRate, cfg))
			continue
		}

		predictions = append(predictions, forecastWithoutSales(product, cfg))
	}

	return predictions
}

func forecastWithSales(product *domain.Product, dailyRate float64, cfg *Config) domain.StockPrediction {
	rules := cfg.Stock
	stock := product.Stock()

	var daysUntilStockout int64
	if stock > 0 {
		daysUntilStockout = int64(math.Floor(float64(stock) / dailyRate))
	}

	prediction := domain.StockPrediction{
		ProductID:         product.ID,
		ProductName:       product.Name,
		CurrentStock:      stock,
		DailySalesRate:    dailyRate,
		DaysUntilStockout: &daysUntilStockout,
		ReorderQuantity:   int64(math.Ceil(dailyRate * rules.ReorderSupplyDays)),
	}

	rate := utils.RoundWithTwoDecimalPlace(dailyRate)

	switch {
	case daysUntilStockout <= rules.CriticalDays:
		prediction.Urgency = domain.UrgencyCritical
		if stock == 0 {
			prediction.Prediction = fmt.Sprintf("Out of stock while selling %.2f/day", rate)
		} else {
			prediction.Prediction = fmt.Sprintf("Runs out in ~%d days at %.2f/day", daysUntilStockout, rate)
		}
	case daysUntilStockout <= rules.WarningDays:
		prediction.Urgency = domain.UrgencyWarning
		prediction.Prediction = fmt.Sprintf("Will run out in ~%d days at %.2f/day", daysUntilStockout, rate)
	case daysUntilStockout > rules.OverstockDays && float64(stock) > dailyRate*rules.OverstockCoverDays:
		prediction.Urgency = domain.UrgencyOverstocked
		prediction.ReorderQuantity = 0
		prediction.Prediction = fmt.Sprintf("~%d days of stock on hand, well above demand", daysUntilStockout)
	default:
		prediction.Urgency = domain.UrgencyOK
		prediction.Prediction = fmt.Sprintf("~%d days of stock remaining", daysUntilStockout)
	}

	return prediction
}

func forecastWithoutSales(product *domain.Product, cfg *Config) domain.StockPrediction {
	rules := cfg.Stock
	stock := product.Stock()

	prediction := domain.StockPrediction{
		ProductID:    product.ID,
		ProductName:  product.Name,
		CurrentStock: stock,
	}

	switch {
	case stock == 0:
		prediction.Urgency = domain.UrgencyCritical
		prediction.ReorderQuantity = rules.DefaultReorderQuantity
		prediction.Prediction = "Out of stock with no recent sales data"
	case stock > rules.IdleOverstockUnits:
		prediction.Urgency = domain.UrgencyOverstocked
		prediction.Prediction = fmt.Sprintf("No sales in the last %d days with %d units on hand", cfg.WindowDays, stock)
	default:
		prediction.Urgency = domain.UrgencyOK
		prediction.Prediction = fmt.Sprintf("No sales in the last %d days", cfg.WindowDays)
	}

	return prediction
}
