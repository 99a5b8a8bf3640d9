package advising

import (
	"context"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/inventory-intelligence-api/infrastructure/repository"
	"github.com/vfg2006/inventory-intelligence-api/internal/config"
	"github.com/vfg2006/inventory-intelligence-api/internal/domain"
	"github.com/vfg2006/inventory-intelligence-api/internal/intelligence"
	"github.com/vfg2006/inventory-intelligence-api/pkg/apiErrors"
	"github.com/vfg2006/inventory-intelligence-api/pkg/log"
	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	storeKeyPrefix    = "intelligence"
	snapshotKeyPrefix = "snapshot"
)

// Advisor expõe o motor de inteligência sobre os dados persistidos de cada loja
type Advisor interface {
	GetStoreIntelligence(ctx context.Context, storeID string, asOf time.Time) (*domain.StoreIntelligenceResponse, error)
	ComputeSnapshot(ctx context.Context, snapshot *domain.IntelligenceSnapshot) (*domain.StoreIntelligenceResponse, error)
	ApplyPriceChange(ctx context.Context, storeID, productID string, newPrice int64) error
	ApplyCategoryChange(ctx context.Context, storeID, productID, newCategory string) error
}

// ReportCache guarda relatórios serializados por chave
type ReportCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeletePattern(ctx context.Context, pattern string) error
}

type Service struct {
	stores   repository.StoreRepository
	products repository.ProductRepository
	orders   repository.OrderRepository
	cache    ReportCache
	engine   *intelligence.Config
	cacheTTL time.Duration
	group    singleflight.Group
	now      func() time.Time
}

func NewService(
	stores repository.StoreRepository,
	products repository.ProductRepository,
	orders repository.OrderRepository,
	cache ReportCache,
	cfg *config.Config,
) Advisor {
	return &Service{
		stores:   stores,
		products: products,
		orders:   orders,
		cache:    cache,
		engine:   cfg.Intelligence.EngineConfig(),
		cacheTTL: cfg.Intelligence.CacheTTL,
		now:      time.Now,
	}
}

// GetStoreIntelligence calcula o relatório da loja sobre a janela que termina em asOf
// (agora, quando zero). Relatórios iguais são servidos do cache pelo fingerprint.
func (s *Service) GetStoreIntelligence(ctx context.Context, storeID string, asOf time.Time) (*domain.StoreIntelligenceResponse, error) {
	if strings.TrimSpace(storeID) == "" {
		return nil, NewAdvisingError(ErrStoreIDRequired, apiErrors.ErrMissingRequiredData, "", "")
	}

	logger := log.ForContext(ctx).WithStore(storeID)

	store, err := s.stores.GetByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, NewAdvisingError(ErrStoreNotFound, apiErrors.ErrStoreNotFound, storeID, "")
		}
		logger.WithError(err).Error("Erro ao buscar loja")
		return nil, NewAdvisingError(ErrFetchCatalog, apiErrors.ErrDatabaseOperation, storeID, err.Error())
	}
	if !store.IsActive {
		return nil, NewAdvisingError(ErrStoreNotFound, apiErrors.ErrStoreNotFound, storeID, "loja inativa")
	}

	reference := asOf
	if reference.IsZero() {
		reference = s.now()
	}
	cfg := *s.engine

	products, err := s.products.ListActiveByStore(ctx, storeID)
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar catálogo da loja")
		return nil, NewAdvisingError(ErrFetchCatalog, apiErrors.ErrDatabaseOperation, storeID, err.Error())
	}

	orders, err := s.orders.ListSince(ctx, storeID, intelligence.WindowStart(reference, cfg.WindowDays))
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar pedidos da loja")
		return nil, NewAdvisingError(ErrFetchOrders, apiErrors.ErrDatabaseOperation, storeID, err.Error())
	}
	orders = ordersUntil(orders, reference)

	fingerprint, err := intelligence.Fingerprint(products, orders, &cfg)
	if err != nil {
		return nil, NewAdvisingError(ErrFingerprint, apiErrors.ErrInternalServer, storeID, err.Error())
	}

	report, cached := s.computeCached(ctx, storeKey(storeID, fingerprint), products, orders, &cfg)

	logger.WithFields(log.Fields{
		"intelligence_products": report.Summary.ProductsAnalyzed,
		"intelligence_orders":   report.Summary.OrdersAnalyzed,
		"intelligence_cached":   cached,
	}).Debug("Relatório de inteligência gerado")

	return &domain.StoreIntelligenceResponse{
		StoreID:     storeID,
		Fingerprint: fingerprint,
		GeneratedAt: s.now(),
		WindowDays:  cfg.WindowDays,
		Cached:      cached,
		Report:      report,
	}, nil
}

// ComputeSnapshot calcula o relatório sobre dados enviados pelo cliente.
// Com AsOf informado os pedidos são filtrados pela janela; sem ele entram todos.
// Um snapshot sem nenhum produto ativo é rejeitado.
func (s *Service) ComputeSnapshot(ctx context.Context, snapshot *domain.IntelligenceSnapshot) (*domain.StoreIntelligenceResponse, error) {
	if snapshot == nil || len(snapshot.Products) == 0 {
		return nil, NewAdvisingError(ErrSnapshotRequired, apiErrors.ErrMissingRequiredData, "", "")
	}
	if len(domain.ActiveProducts(snapshot.Products)) == 0 {
		return nil, NewAdvisingError(ErrNoActiveProducts, apiErrors.ErrMissingRequiredData, "", "")
	}

	cfg := *s.engine
	if snapshot.AsOf != nil {
		cfg.AsOf = snapshot.AsOf.UTC()
	}

	fingerprint, err := intelligence.Fingerprint(snapshot.Products, snapshot.Orders, &cfg)
	if err != nil {
		return nil, NewAdvisingError(ErrFingerprint, apiErrors.ErrInternalServer, "", err.Error())
	}

	report, cached := s.computeCached(ctx, snapshotKeyPrefix+":"+fingerprint, snapshot.Products, snapshot.Orders, &cfg)

	return &domain.StoreIntelligenceResponse{
		Fingerprint: fingerprint,
		GeneratedAt: s.now(),
		WindowDays:  cfg.WindowDays,
		Cached:      cached,
		Report:      report,
	}, nil
}

// ApplyPriceChange aplica uma sugestão de preço aceita e invalida o cache da loja
func (s *Service) ApplyPriceChange(ctx context.Context, storeID, productID string, newPrice int64) error {
	if strings.TrimSpace(storeID) == "" {
		return NewAdvisingError(ErrStoreIDRequired, apiErrors.ErrMissingRequiredData, "", "")
	}

	applier := storeProductApplier{storeID: storeID, products: s.products}
	if err := intelligence.ApplyPricing(ctx, applier, productID, newPrice); err != nil {
		return s.applyError(ctx, storeID, productID, err)
	}

	log.ForContext(ctx).WithStore(storeID).WithField("product_id", productID).Infof("Preço atualizado para %d", newPrice)
	s.invalidateStore(ctx, storeID)
	return nil
}

// ApplyCategoryChange aplica uma sugestão de categoria aceita e invalida o cache da loja
func (s *Service) ApplyCategoryChange(ctx context.Context, storeID, productID, newCategory string) error {
	if strings.TrimSpace(storeID) == "" {
		return NewAdvisingError(ErrStoreIDRequired, apiErrors.ErrMissingRequiredData, "", "")
	}

	applier := storeProductApplier{storeID: storeID, products: s.products}
	if err := intelligence.ApplyCategory(ctx, applier, productID, newCategory); err != nil {
		return s.applyError(ctx, storeID, productID, err)
	}

	log.ForContext(ctx).WithStore(storeID).WithField("product_id", productID).Infof("Categoria atualizada para %s", newCategory)
	s.invalidateStore(ctx, storeID)
	return nil
}

func (s *Service) applyError(ctx context.Context, storeID, productID string, err error) error {
	switch {
	case errors.Is(err, intelligence.ErrProductIDRequired):
		return NewAdvisingError(err, apiErrors.ErrMissingRequiredData, storeID, "")
	case errors.Is(err, intelligence.ErrInvalidPrice):
		return NewAdvisingError(err, apiErrors.ErrInvalidPrice, storeID, "")
	case errors.Is(err, intelligence.ErrCategoryRequired):
		return NewAdvisingError(err, apiErrors.ErrInvalidCategory, storeID, "")
	case errors.Is(err, repository.ErrProductNotFound):
		return NewAdvisingError(ErrProductNotFound, apiErrors.ErrProductNotFound, storeID, productID)
	}

	log.ForContext(ctx).WithStore(storeID).WithField("product_id", productID).WithError(err).Error("Erro ao atualizar produto")
	return NewAdvisingError(ErrUpdateProduct, apiErrors.ErrDatabaseOperation, storeID, err.Error())
}

// computeCached busca o relatório no cache ou calcula uma única vez por chave,
// mesmo com chamadas concorrentes. Falhas de cache só geram aviso.
func (s *Service) computeCached(
	ctx context.Context,
	key string,
	products []*domain.Product,
	orders []*domain.OrderRecord,
	cfg *intelligence.Config,
) (*domain.IntelligenceReport, bool) {
	logger := log.ForContext(ctx).WithField("intelligence_cache_key", key)

	data, found, err := s.cache.Get(ctx, key)
	switch {
	case err != nil:
		logger.WithError(err).Warn("Erro ao ler relatório do cache, recalculando")
	case found:
		report := &domain.IntelligenceReport{}
		if err := json.Unmarshal(data, report); err == nil {
			return report, true
		}
		logger.Warn("Relatório em cache inválido, recalculando")
	}

	value, _, _ := s.group.Do(key, func() (any, error) {
		report := intelligence.Compute(products, orders, cfg)

		encoded, err := json.Marshal(report)
		if err != nil {
			logger.WithError(err).Warn("Erro ao serializar relatório para o cache")
			return report, nil
		}
		if err := s.cache.Set(ctx, key, encoded, s.cacheTTL); err != nil {
			logger.WithError(err).Warn("Erro ao gravar relatório no cache")
		}
		return report, nil
	})

	return value.(*domain.IntelligenceReport), false
}

func (s *Service) invalidateStore(ctx context.Context, storeID string) {
	if err := s.cache.DeletePattern(ctx, storeKey(escapeGlob(storeID), "*")); err != nil {
		log.ForContext(ctx).WithStore(storeID).WithError(err).Warn("Erro ao invalidar cache da loja")
	}
}

func storeKey(storeID, fingerprint string) string {
	return storeKeyPrefix + ":" + storeID + ":" + fingerprint
}

var globEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`, `]`, `\]`)

// escapeGlob escapa os metacaracteres de glob para que o ID case apenas com ele mesmo,
// tanto no SCAN do Redis quanto no path.Match do cache em memória
func escapeGlob(value string) string {
	return globEscaper.Replace(value)
}

// ordersUntil descarta pedidos posteriores à data de referência
func ordersUntil(orders []*domain.OrderRecord, reference time.Time) []*domain.OrderRecord {
	filtered := make([]*domain.OrderRecord, 0, len(orders))
	for _, order := range orders {
		if order != nil && !order.CreatedAt.After(reference) {
			filtered = append(filtered, order)
		}
	}
	return filtered
}
