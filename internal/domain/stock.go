package domain

// Urgency classifica a saúde do estoque de um produto
type Urgency string

const (
	UrgencyCritical    Urgency = "critical"
	UrgencyWarning     Urgency = "warning"
	UrgencyOverstocked Urgency = "overstocked"
	UrgencyOK          Urgency = "ok"
)

// Urgencies lista as urgências na ordem de apresentação
var Urgencies = []Urgency{UrgencyCritical, UrgencyWarning, UrgencyOverstocked, UrgencyOK}

// Priority retorna a posição da urgência na ordem de apresentação
// (critical < warning < overstocked < ok). Valores desconhecidos vão para o fim.
func (u Urgency) Priority() int {
	switch u {
	case UrgencyCritical:
		return 0
	case UrgencyWarning:
		return 1
	case UrgencyOverstocked:
		return 2
	case UrgencyOK:
		return 3
	}
	return len(Urgencies)
}

// StockPrediction é a previsão de ruptura de estoque de um produto
type StockPrediction struct {
	ProductID         string  `json:"product_id"`
	ProductName       string  `json:"product_name"`
	CurrentStock      int64   `json:"current_stock"`
	DailySalesRate    float64 `json:"daily_sales_rate"`
	DaysUntilStockout *int64  `json:"days_until_stockout"` // nil se não há vendas na janela
	ReorderQuantity   int64   `json:"reorder_quantity"`
	Urgency           Urgency `json:"urgency"`
	Prediction        string  `json:"prediction"`
}
