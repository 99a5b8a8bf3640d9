package domain

import "time"

// ReportSummary contém os totais de um relatório de inteligência de estoque.
// Os totais são calculados antes do corte das listas.
type ReportSummary struct {
	ProductsAnalyzed    int `json:"products_analyzed"`
	OrdersAnalyzed      int `json:"orders_analyzed"`
	CriticalCount       int `json:"critical_count"`
	WarningCount        int `json:"warning_count"`
	OverstockedCount    int `json:"overstocked_count"`
	OkCount             int `json:"ok_count"`
	PriceIncreaseCount  int `json:"price_increase_count"`
	PriceDecreaseCount  int `json:"price_decrease_count"`
	CategoryChangeCount int `json:"category_change_count"`
}

// NeedsAttention indica se há produtos em estado crítico ou de alerta
func (s ReportSummary) NeedsAttention() bool {
	return s.CriticalCount > 0 || s.WarningCount > 0
}

// IntelligenceReport é o resultado de uma execução do motor de inteligência
type IntelligenceReport struct {
	Pricing  []PricingSuggestion  `json:"pricing"`
	Stock    []StockPrediction    `json:"stock"`
	Category []CategorySuggestion `json:"category"`
	Summary  ReportSummary        `json:"summary"`
}

// StoreIntelligenceResponse envolve o relatório de uma loja com metadados
type StoreIntelligenceResponse struct {
	StoreID     string              `json:"store_id"`
	Fingerprint string              `json:"fingerprint"`
	GeneratedAt time.Time           `json:"generated_at"`
	WindowDays  int                 `json:"window_days"`
	Cached      bool                `json:"cached"`
	Report      *IntelligenceReport `json:"report"`
}

// IntelligenceSnapshot é o corpo aceito para cálculo sobre dados enviados pelo cliente
type IntelligenceSnapshot struct {
	Products []*Product     `json:"products"`
	Orders   []*OrderRecord `json:"orders"`
	AsOf     *time.Time     `json:"as_of,omitempty"`
}

// StockAlert é o registro persistido quando uma loja tem produtos em risco
type StockAlert struct {
	ID               string            `json:"id"`
	StoreID          string            `json:"store_id"`
	CriticalCount    int               `json:"critical_count"`
	WarningCount     int               `json:"warning_count"`
	OverstockedCount int               `json:"overstocked_count"`
	Predictions      []StockPrediction `json:"predictions"`
	CreatedAt        time.Time         `json:"created_at"`
}

// PriceChangeRequest é o corpo para aplicar uma sugestão de preço
type PriceChangeRequest struct {
	Price int64 `json:"price"`
}

// CategoryChangeRequest é o corpo para aplicar uma sugestão de categoria
type CategoryChangeRequest struct {
	Category string `json:"category"`
}
