package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/inventory-intelligence-api/infrastructure/repository/mocks"
	"github.com/vfg2006/inventory-intelligence-api/internal/config"
	"github.com/vfg2006/inventory-intelligence-api/internal/domain"
	advisingmocks "github.com/vfg2006/inventory-intelligence-api/internal/usecases/advising/mocks"
	"go.uber.org/mock/gomock"
)

var syncDate = time.Date(2024, 3, 31, 7, 0, 0, 0, time.UTC)

func int64Ptr(v int64) *int64 {
	return &v
}

func reportWith(summary domain.ReportSummary, predictions ...domain.StockPrediction) *domain.StoreIntelligenceResponse {
	return &domain.StoreIntelligenceResponse{
		Report: &domain.IntelligenceReport{
			Stock:   predictions,
			Summary: summary,
		},
	}
}

func newTestStockAlertService(t *testing.T) (*StockAlertSyncService, *mocks.MockStoreRepository, *mocks.MockAlertRepository, *advisingmocks.MockAdvisor) {
	ctrl := gomock.NewController(t)

	storeRepo := mocks.NewMockStoreRepository(ctrl)
	alertRepo := mocks.NewMockAlertRepository(ctrl)
	advisor := advisingmocks.NewMockAdvisor(ctrl)

	cfg := &config.Config{}
	cfg.StockAlertSync.CronSchedule = "0 7 * * *"
	cfg.StockAlertSync.MaxConcurrentJobs = 2

	service := NewStockAlertSyncService(storeRepo, alertRepo, advisor, cfg)
	service.now = func() time.Time { return syncDate }

	return service, storeRepo, alertRepo, advisor
}

func TestStockAlertSyncService_syncAllStores(t *testing.T) {
	critical := domain.StockPrediction{
		ProductID:         "p1",
		ProductName:       "Ofada Rice",
		CurrentStock:      10,
		DailySalesRate:    5,
		DaysUntilStockout: int64Ptr(2),
		ReorderQuantity:   70,
		Urgency:           domain.UrgencyCritical,
	}
	warning := domain.StockPrediction{ProductID: "p2", Urgency: domain.UrgencyWarning, DaysUntilStockout: int64Ptr(6)}
	overstocked := domain.StockPrediction{ProductID: "p3", Urgency: domain.UrgencyOverstocked}
	ok := domain.StockPrediction{ProductID: "p4", Urgency: domain.UrgencyOK}

	t.Run("Salva alerta apenas para lojas com produtos em risco", func(t *testing.T) {
		service, storeRepo, alertRepo, advisor := newTestStockAlertService(t)

		storeRepo.EXPECT().ListActiveStores(gomock.Any()).Return([]*domain.Store{
			{ID: "store-1", IsActive: true},
			{ID: "store-2", IsActive: true},
			{ID: "store-3", IsActive: false},
		}, nil)

		advisor.EXPECT().GetStoreIntelligence(gomock.Any(), "store-1", syncDate).Return(reportWith(
			domain.ReportSummary{CriticalCount: 1, WarningCount: 1, OverstockedCount: 1, OkCount: 1},
			critical, warning, overstocked, ok,
		), nil)
		advisor.EXPECT().GetStoreIntelligence(gomock.Any(), "store-2", syncDate).Return(reportWith(
			domain.ReportSummary{OkCount: 1}, ok,
		), nil)

		var saved *domain.StockAlert
		alertRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, alert *domain.StockAlert) error {
			saved = alert
			return nil
		})

		result, executed := service.syncAllStores(context.Background())
		require.True(t, executed)

		assert.Equal(t, StockAlertSyncResult{StoresProcessed: 2, AlertsSaved: 1}, result)

		require.NotNil(t, saved)
		assert.Equal(t, "store-1", saved.StoreID)
		assert.Len(t, saved.ID, 12)
		assert.Equal(t, 1, saved.CriticalCount)
		assert.Equal(t, 1, saved.WarningCount)
		assert.Equal(t, 1, saved.OverstockedCount)
		assert.Equal(t, syncDate, saved.CreatedAt)
		assert.Equal(t, []domain.StockPrediction{critical, warning}, saved.Predictions)

		status := service.GetStatus()
		assert.Equal(t, result, status["last_sync_result"])
		assert.Equal(t, syncDate, status["last_sync_completed_at"])
		assert.Equal(t, false, status["sync_running"])
	})

	t.Run("Falhas de uma loja não interrompem as demais", func(t *testing.T) {
		service, storeRepo, alertRepo, advisor := newTestStockAlertService(t)

		storeRepo.EXPECT().ListActiveStores(gomock.Any()).Return([]*domain.Store{
			{ID: "store-1", IsActive: true},
			{ID: "store-2", IsActive: true},
			{ID: "store-3", IsActive: true},
		}, nil)

		advisor.EXPECT().GetStoreIntelligence(gomock.Any(), "store-1", gomock.Any()).Return(nil, errors.New("db down"))
		advisor.EXPECT().GetStoreIntelligence(gomock.Any(), "store-2", gomock.Any()).Return(reportWith(
			domain.ReportSummary{WarningCount: 1}, warning,
		), nil)
		advisor.EXPECT().GetStoreIntelligence(gomock.Any(), "store-3", gomock.Any()).Return(reportWith(
			domain.ReportSummary{CriticalCount: 1}, critical,
		), nil)

		alertRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, alert *domain.StockAlert) error {
			if alert.StoreID == "store-2" {
				return errors.New("insert failed")
			}
			return nil
		}).Times(2)

		result, executed := service.syncAllStores(context.Background())
		require.True(t, executed)
		assert.Equal(t, StockAlertSyncResult{StoresProcessed: 3, AlertsSaved: 1, Failures: 2}, result)
	})

	t.Run("Erro ao listar lojas", func(t *testing.T) {
		service, storeRepo, _, _ := newTestStockAlertService(t)

		storeRepo.EXPECT().ListActiveStores(gomock.Any()).Return(nil, errors.New("db down"))

		result, executed := service.syncAllStores(context.Background())
		require.True(t, executed)
		assert.Equal(t, StockAlertSyncResult{Failures: 1}, result)
	})

	t.Run("Nenhuma loja ativa", func(t *testing.T) {
		service, storeRepo, _, _ := newTestStockAlertService(t)

		storeRepo.EXPECT().ListActiveStores(gomock.Any()).Return([]*domain.Store{}, nil)

		result, executed := service.syncAllStores(context.Background())
		require.True(t, executed)
		assert.Equal(t, StockAlertSyncResult{}, result)
	})

	t.Run("Varredura em andamento é ignorada", func(t *testing.T) {
		service, _, _, _ := newTestStockAlertService(t)
		service.syncRunning = true

		_, executed := service.syncAllStores(context.Background())
		assert.False(t, executed)
		assert.False(t, service.TriggerManualSync())
	})
}

func TestNewStockAlertSyncService_Config(t *testing.T) {
	cfg := &config.Config{}
	cfg.StockAlertSync.CronSchedule = "*/5 * * * *"
	cfg.StockAlertSync.Enabled = true

	service := NewStockAlertSyncService(nil, nil, nil, cfg)

	status := service.GetStatus()
	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "*/5 * * * *", status["sync_cron"])
	assert.Equal(t, 1, status["sync_max_concurrent"])
}

func TestStockAlertSyncService_StartDesabilitado(t *testing.T) {
	service := NewStockAlertSyncService(nil, nil, nil, &config.Config{})

	assert.NoError(t, service.Start(context.Background()))
}
