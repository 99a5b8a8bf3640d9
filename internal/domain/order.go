package domain

import (
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// OrderLineItem é um item de um pedido
type OrderLineItem struct {
	ProductID string `json:"productId,omitempty"`
	Name      string `json:"name"`
	Quantity  int64  `json:"quantity"`
	Price     int64  `json:"price"` // Mesma escala de Product.Price
}

// SalesKey retorna a chave de agregação do item: o ID do produto quando presente,
// senão o nome
func (i OrderLineItem) SalesKey() string {
	if i.ProductID != "" {
		return i.ProductID
	}
	return i.Name
}

// LineItems é a lista de itens de um pedido com decodificação tolerante:
// um valor que não é array vira lista vazia e elementos inválidos são ignorados
type LineItems []OrderLineItem

// UnmarshalJSON implementa json.Unmarshaler
func (l *LineItems) UnmarshalJSON(data []byte) error {
	var raw []jsoniter.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		*l = LineItems{}
		return nil
	}

	items := make(LineItems, 0, len(raw))
	for _, element := range raw {
		var item OrderLineItem
		if err := json.Unmarshal(element, &item); err != nil {
			continue
		}
		items = append(items, item)
	}

	*l = items
	return nil
}

// OrderRecord representa um pedido do histórico
type OrderRecord struct {
	ID          string    `json:"id"`
	StoreID     string    `json:"store_id,omitempty"`
	Items       LineItems `json:"items"`
	TotalAmount int64     `json:"total_amount"`
	CreatedAt   time.Time `json:"created_at"`
	Status      string    `json:"status"`
}
