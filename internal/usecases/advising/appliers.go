package advising

import (
	"context"

	"github.com/vfg2006/inventory-intelligence-api/infrastructure/repository"
	"github.com/vfg2006/inventory-intelligence-api/internal/intelligence"
)

// storeProductApplier adapta o repositório de produtos aos appliers do motor,
// restringindo as alterações a uma loja
type storeProductApplier struct {
	storeID  string
	products repository.ProductRepository
}

var (
	_ intelligence.PriceApplier    = storeProductApplier{}
	_ intelligence.CategoryApplier = storeProductApplier{}
)

func (a storeProductApplier) ApplyPriceChange(ctx context.Context, productID string, newPrice int64) error {
	return a.products.UpdatePrice(ctx, a.storeID, productID, newPrice)
}

func (a storeProductApplier) ApplyCategoryChange(ctx context.Context, productID string, newCategory string) error {
	return a.products.UpdateCategory(ctx, a.storeID, productID, newCategory)
}
