package intelligence

import (
	"context"
	"errors"
	"slices"
	"sort"
	"strings"

	"github.com/vfg2006/inventory-intelligence-api/internal/domain"
)

var (
	ErrProductIDRequired = errors.New("product ID is required")
	ErrInvalidPrice      = errors.New("price must be greater than zero")
	ErrCategoryRequired  = errors.New("category is required")
	ErrApplierMissing    = errors.New("no applier configured")
)

// PriceApplier aplica uma alteração de preço aceita. Implementado pelo chamador.
type PriceApplier interface {
	ApplyPriceChange(ctx context.Context, productID string, newPrice int64) error
}

// CategoryApplier aplica uma alteração de categoria aceita. Implementado pelo chamador.
type CategoryApplier interface {
	ApplyCategoryChange(ctx context.Context, productID string, newCategory string) error
}

// Assemble ordena e corta cópias das listas e calcula os totais do relatório.
// Os totais consideram as listas completas, antes do corte.
func Assemble(
	pricing []domain.PricingSuggestion,
	stock []domain.StockPrediction,
	category []domain.CategorySuggestion,
	limits Limits,
) *domain.IntelligenceReport {
	pricing = slices.Clone(pricing)
	stock = slices.Clone(stock)
	category = slices.Clone(category)

	sort.SliceStable(pricing, func(i, j int) bool {
		return pricing[i].Confidence > pricing[j].Confidence
	})
	sort.SliceStable(stock, func(i, j int) bool {
		return stock[i].Urgency.Priority() < stock[j].Urgency.Priority()
	})
	sort.SliceStable(category, func(i, j int) bool {
		return category[i].Confidence > category[j].Confidence
	})

	summary := summarize(pricing, stock, category)

	return &domain.IntelligenceReport{
		Pricing:  truncate(pricing, limits.Pricing),
		Stock:    truncate(stock, limits.Stock),
		Category: truncate(category, limits.Category),
		Summary:  summary,
	}
}

func summarize(
	pricing []domain.PricingSuggestion,
	stock []domain.StockPrediction,
	category []domain.CategorySuggestion,
) domain.ReportSummary {
	summary := domain.ReportSummary{
		CategoryChangeCount: len(category),
	}

	for _, suggestion := range pricing {
		switch suggestion.Type {
		case domain.PricingIncrease:
			summary.PriceIncreaseCount++
		case domain.PricingDecrease:
			summary.PriceDecreaseCount++
		case domain.PricingBundle:
		}
	}

	for _, prediction := range stock {
		switch prediction.Urgency {
		case domain.UrgencyCritical:
			summary.CriticalCount++
		case domain.UrgencyWarning:
			summary.WarningCount++
		case domain.UrgencyOverstocked:
			summary.OverstockedCount++
		case domain.UrgencyOK:
			summary.OkCount++
		}
	}

	return summary
}

func truncate[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}

// ApplyPricing valida e repassa uma sugestão de preço aceita ao applier do chamador
func ApplyPricing(ctx context.Context, applier PriceApplier, productID string, newPrice int64) error {
	if applier == nil {
		return ErrApplierMissing
	}
	if strings.TrimSpace(productID) == "" {
		return ErrProductIDRequired
	}
	if newPrice <= 0 {
		return ErrInvalidPrice
	}
	return applier.ApplyPriceChange(ctx, productID, newPrice)
}

// ApplyCategory valida e repassa uma sugestão de categoria aceita ao applier do chamador
func ApplyCategory(ctx context.Context, applier CategoryApplier, productID string, newCategory string) error {
	if applier == nil {
		return ErrApplierMissing
	}
	if strings.TrimSpace(productID) == "" {
		return ErrProductIDRequired
	}
	if strings.TrimSpace(newCategory) == "" {
		return ErrCategoryRequired
	}
	return applier.ApplyCategoryChange(ctx, productID, strings.TrimSpace(newCategory))
}
