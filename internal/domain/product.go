package domain

import "time"

// Product representa um produto do catálogo de uma loja
type Product struct {
	ID            string    `json:"id"`
	StoreID       string    `json:"store_id,omitempty"`
	Name          string    `json:"name"`
	Price         int64     `json:"price"` // Unidade monetária mínima (ex: pence)
	Category      string    `json:"category"`
	Unit          string    `json:"unit,omitempty"`
	StockQuantity *int64    `json:"stock_quantity,omitempty"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at,omitempty"`
	UpdatedAt     time.Time `json:"updated_at,omitempty"`
}

// Stock retorna o estoque atual, tratando ausente ou negativo como zero
func (p *Product) Stock() int64 {
	if p.StockQuantity == nil || *p.StockQuantity < 0 {
		return 0
	}
	return *p.StockQuantity
}

// ActiveProducts filtra apenas os produtos ativos, preservando a ordem original
func ActiveProducts(products []*Product) []*Product {
	active := make([]*Product, 0, len(products))
	for _, product := range products {
		if product != nil && product.IsActive {
			active = append(active, product)
		}
	}
	return active
}

// MarketPriceRange é a faixa de preço de referência de uma categoria
type MarketPriceRange struct {
	Low  int64 `json:"low" mapstructure:"low"`
	Mid  int64 `json:"mid" mapstructure:"mid"`
	High int64 `json:"high" mapstructure:"high"`
}

// CategoryKeywords associa uma categoria às palavras-chave que a identificam.
// A ordem da lista define o desempate na classificação.
type CategoryKeywords struct {
	Category string   `json:"category" mapstructure:"category"`
	Keywords []string `json:"keywords" mapstructure:"keywords"`
}

// Store representa um lojista (tenant) da plataforma
type Store struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Subdomain string    `json:"subdomain"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
