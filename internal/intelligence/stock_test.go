package intelligence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/inventory-intelligence-api/internal/domain"
)

func TestForecastStock(t *testing.T) {
	tests := []struct {
		name              string
		product           *domain.Product
		orders            []*domain.OrderRecord
		wantUrgency       domain.Urgency
		wantRate          float64
		wantDays          *int64
		wantReorder       int64
		wantPredictionTxt string
	}{
		{
			name:              "Vende 5 por dia com 10 em estoque - crítico",
			product:           newProduct("p1", "Indomie Noodles", 120, "Snacks", 10),
			orders:            ordersFor("p1", 120, 50, 50, 50),
			wantUrgency:       domain.UrgencyCritical,
			wantRate:          5,
			wantDays:          int64Ptr(2),
			wantReorder:       70,
			wantPredictionTxt: "Runs out in ~2 days at 5.00/day",
		},
		{
			name:              "Sem estoque e com vendas - crítico com zero dias",
			product:           newProduct("p1", "Indomie Noodles", 120, "Snacks", 0),
			orders:            ordersFor("p1", 120, 30),
			wantUrgency:       domain.UrgencyCritical,
			wantRate:          1,
			wantDays:          int64Ptr(0),
			wantReorder:       14,
			wantPredictionTxt: "Out of stock while selling 1.00/day",
		},
		{
			name:              "Seis dias de cobertura - alerta",
			product:           newProduct("p1", "Indomie Noodles", 120, "Snacks", 30),
			orders:            ordersFor("p1", 120, 150),
			wantUrgency:       domain.UrgencyWarning,
			wantRate:          5,
			wantDays:          int64Ptr(6),
			wantReorder:       70,
			wantPredictionTxt: "Will run out in ~6 days at 5.00/day",
		},
		{
			name:        "Quatrocentos dias de cobertura - excesso sem reposição",
			product:     newProduct("p1", "Palm Oil 1L", 800, "Oils", 400),
			orders:      ordersFor("p1", 800, 30),
			wantUrgency: domain.UrgencyOverstocked,
			wantRate:    1,
			wantDays:    int64Ptr(400),
			wantReorder: 0,
		},
		{
			name:        "Vinte dias de cobertura - ok mantém reposição",
			product:     newProduct("p1", "Palm Oil 1L", 800, "Oils", 20),
			orders:      ordersFor("p1", 800, 30),
			wantUrgency: domain.UrgencyOK,
			wantRate:    1,
			wantDays:    int64Ptr(20),
			wantReorder: 14,
		},
		{
			name:        "Taxa fracionada - reposição arredonda para cima",
			product:     newProduct("p1", "Palm Oil 1L", 800, "Oils", 10),
			orders:      ordersFor("p1", 800, 10),
			wantUrgency: domain.UrgencyOK,
			wantRate:    10.0 / 30.0,
			wantDays:    int64Ptr(30),
			wantReorder: 5,
		},
		{
			name:              "Sem vendas e sem estoque - crítico com reposição padrão",
			product:           newProduct("p1", "Yam Tuber", 600, "Fresh Produce", 0),
			wantUrgency:       domain.UrgencyCritical,
			wantReorder:       10,
			wantPredictionTxt: "Out of stock with no recent sales data",
		},
		{
			name:        "Sem vendas e estoque nulo - tratado como zero",
			product:     &domain.Product{ID: "p1", Name: "Yam Tuber", Price: 600, IsActive: true},
			wantUrgency: domain.UrgencyCritical,
			wantReorder: 10,
		},
		{
			name:              "Sem vendas e 25 em estoque - excesso",
			product:           newProduct("p1", "Yam Tuber", 600, "Fresh Produce", 25),
			wantUrgency:       domain.UrgencyOverstocked,
			wantPredictionTxt: "No sales in the last 30 days with 25 units on hand",
		},
		{
			name:              "Sem vendas e 20 em estoque - ok",
			product:           newProduct("p1", "Yam Tuber", 600, "Fresh Produce", 20),
			wantUrgency:       domain.UrgencyOK,
			wantPredictionTxt: "No sales in the last 30 days",
		},
		{
			name:        "Venda registrada com quantidade zero - tratado como sem vendas",
			product:     newProduct("p1", "Yam Tuber", 600, "Fresh Produce", 3),
			orders:      ordersFor("p1", 600, 0),
			wantUrgency: domain.UrgencyOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			predictions := ForecastStock([]*domain.Product{tt.product}, AggregateSales(tt.orders), DefaultConfig())

			require.Len(t, predictions, 1)
			p := predictions[0]
			assert.Equal(t, tt.wantUrgency, p.Urgency)
			assert.InDelta(t, tt.wantRate, p.DailySalesRate, 1e-9)
			assert.Equal(t, tt.wantDays, p.DaysUntilStockout)
			assert.Equal(t, tt.wantReorder, p.ReorderQuantity)
			assert.Equal(t, tt.product.Stock(), p.CurrentStock)
			if tt.wantPredictionTxt != "" {
				assert.Equal(t, tt.wantPredictionTxt, p.Prediction)
			}
		})
	}
}

func TestForecastStock_PreservaOrdemDoCatalogo(t *testing.T) {
	products := []*domain.Product{
		newProduct("p1", "A", 100, "", 5),
		{ID: "p2", Name: "B", Price: 100, StockQuantity: int64Ptr(5), IsActive: false},
		newProduct("p3", "C", 100, "", 0),
		newProduct("p4", "D", 100, "", 50),
	}

	predictions := ForecastStock(products, SalesStats{}, DefaultConfig())

	require.Len(t, predictions, 3)
	assert.Equal(t, "p1", predictions[0].ProductID)
	assert.Equal(t, "p3", predictions[1].ProductID)
	assert.Equal(t, "p4", predictions[2].ProductID)
}

func TestForecastStock_JanelaCustomizada(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WindowDays = 7

	product := newProduct("p1", "Malt Drink", 90, "Beverages", 14)
	predictions := ForecastStock([]*domain.Product{product}, statsFor(ordersFor("p1", 90, 14)), cfg)

	require.Len(t, predictions, 1)
	assert.InDelta(t, 2.0, predictions[0].DailySalesRate, 1e-9)
	assert.Equal(t, int64Ptr(7), predictions[0].DaysUntilStockout)
	assert.Equal(t, domain.UrgencyWarning, predictions[0].Urgency)
	assert.Equal(t, int64(28), predictions[0].ReorderQuantity)
}
