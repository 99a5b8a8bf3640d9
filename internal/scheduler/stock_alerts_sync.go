// Package scheduler contém os serviços de agendamento de rotinas periódicas
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/vfg2006/inventory-intelligence-api/infrastructure/repository"
	"github.com/vfg2006/inventory-intelligence-api/internal/config"
	"github.com/vfg2006/inventory-intelligence-api/internal/domain"
	"github.com/vfg2006/inventory-intelligence-api/internal/usecases/advising"
	"github.com/vfg2006/inventory-intelligence-api/pkg/log"
	"github.com/vfg2006/inventory-intelligence-api/pkg/utils"
)

const stockAlertJob = "stock-alerts"

// StockAlertSyncConfig representa a configuração do agendador de alertas de estoque
type StockAlertSyncConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	SyncEnabled       bool
}

// StockAlertSyncResult resume uma execução da varredura de alertas
type StockAlertSyncResult struct {
	StoresProcessed int `json:"stores_processed"`
	AlertsSaved     int `json:"alerts_saved"`
	Failures        int `json:"failures"`
}

// StockAlertSyncService varre as lojas ativas e registra alertas quando há produtos em risco de ruptura
type StockAlertSyncService struct {
	scheduler           *gocron.Scheduler
	config              StockAlertSyncConfig
	storeRepo           repository.StoreRepository
	alertRepo           repository.AlertRepository
	advisor             advising.Advisor
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          StockAlertSyncResult
	now                 func() time.Time
}

// NewStockAlertSyncService cria uma nova instância do serviço de alertas de estoque
func NewStockAlertSyncService(
	storeRepo repository.StoreRepository,
	alertRepo repository.AlertRepository,
	advisor advising.Advisor,
	appConfig *config.Config,
) *StockAlertSyncService {
	syncConfig := StockAlertSyncConfig{
		CronSchedule:      appConfig.StockAlertSync.CronSchedule,
		MaxConcurrentJobs: appConfig.StockAlertSync.MaxConcurrentJobs,
		SyncEnabled:       appConfig.StockAlertSync.Enabled,
	}
	if syncConfig.MaxConcurrentJobs <= 0 {
		syncConfig.MaxConcurrentJobs = 1
	}

	log.L.WithFields(log.Fields{
		"job":                 stockAlertJob,
		"cron_schedule":       syncConfig.CronSchedule,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"sync_enabled":        syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de alertas de estoque carregada")

	return &StockAlertSyncService{
		scheduler: gocron.NewScheduler(time.UTC),
		config:    syncConfig,
		storeRepo: storeRepo,
		alertRepo: alertRepo,
		advisor:   advisor,
		now:       time.Now,
	}
}

// Start inicia o agendador
func (s *StockAlertSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		log.L.WithField("job", stockAlertJob).Info("Varredura de alertas de estoque desabilitada por configuração")
		return nil
	}

	log.L.WithField("job", stockAlertJob).WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de alertas de estoque")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		jobCtx, _ := log.WithCorrelationID(ctx)
		s.syncAllStores(jobCtx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar varredura de alertas de estoque: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.WithField("job", stockAlertJob).Info("Parando agendador de alertas de estoque")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllStores gera o relatório de cada loja ativa e salva um alerta para as que precisam de atenção.
// Retorna false quando já havia uma varredura em andamento.
func (s *StockAlertSyncService) syncAllStores(ctx context.Context) (StockAlertSyncResult, bool) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.ForContext(ctx).WithField("job", stockAlertJob).Info("Varredura de alertas de estoque já em andamento, ignorando")
		return StockAlertSyncResult{}, false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	result := StockAlertSyncResult{}
	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = s.now()
		s.lastResult = result
		s.syncMutex.Unlock()
	}()

	logger := log.ForContext(ctx).WithField("job", stockAlertJob)
	startTime := time.Now()

	stores, err := s.storeRepo.ListActiveStores(ctx)
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar lojas para varredura de alertas de estoque")
		result.Failures++
		return result, true
	}

	if len(stores) == 0 {
		logger.Info("Nenhuma loja ativa encontrada para varredura de alertas de estoque")
		return result, true
	}

	result = s.processStores(ctx, stores)

	logger.WithFields(log.Fields{
		"duration":     time.Since(startTime).String(),
		"stores":       result.StoresProcessed,
		"alerts_saved": result.AlertsSaved,
		"failures":     result.Failures,
	}).Info("Varredura de alertas de estoque concluída")

	return result, true
}

// processStores processa as lojas com no máximo MaxConcurrentJobs em paralelo
func (s *StockAlertSyncService) processStores(ctx context.Context, stores []*domain.Store) StockAlertSyncResult {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup
	var processed, saved, failures atomic.Int64

	for _, store := range stores {
		if store == nil || !store.IsActive {
			continue
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(store *domain.Store) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			processed.Add(1)
			alerted, err := s.processStore(ctx, store)
			switch {
			case err != nil:
				failures.Add(1)
			case alerted:
				saved.Add(1)
			}
		}(store)
	}

	wg.Wait()

	return StockAlertSyncResult{
		StoresProcessed: int(processed.Load()),
		AlertsSaved:     int(saved.Load()),
		Failures:        int(failures.Load()),
	}
}

// processStore gera o relatório da loja e salva o alerta se houver produtos críticos ou em alerta
func (s *StockAlertSyncService) processStore(ctx context.Context, store *domain.Store) (bool, error) {
	logger := log.ForContext(ctx).WithField("job", stockAlertJob).WithStore(store.ID)

	response, err := s.advisor.GetStoreIntelligence(ctx, store.ID, s.now())
	if err != nil {
		logger.WithError(err).Error("Erro ao gerar relatório de inteligência da loja")
		return false, err
	}

	summary := response.Report.Summary
	if !summary.NeedsAttention() {
		logger.Debug("Loja sem produtos em risco de ruptura")
		return false, nil
	}

	alert, err := newStockAlert(store.ID, response.Report, s.now())
	if err != nil {
		logger.WithError(err).Error("Erro ao gerar ID do alerta de estoque")
		return false, err
	}

	if err := s.alertRepo.Save(ctx, alert); err != nil {
		logger.WithError(err).Error("Erro ao salvar alerta de estoque")
		return false, err
	}

	logger.WithFields(log.Fields{
		"critical_count": alert.CriticalCount,
		"warning_count":  alert.WarningCount,
	}).Info("Alerta de estoque registrado")

	return true, nil
}

// newStockAlert monta o alerta com apenas as previsões críticas e de alerta.
// As contagens vêm do resumo, que considera a lista completa antes do corte.
func newStockAlert(storeID string, report *domain.IntelligenceReport, createdAt time.Time) (*domain.StockAlert, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	predictions := make([]domain.StockPrediction, 0, len(report.Stock))
	for _, prediction := range report.Stock {
		if prediction.Urgency == domain.UrgencyCritical || prediction.Urgency == domain.UrgencyWarning {
			predictions = append(predictions, prediction)
		}
	}

	return &domain.StockAlert{
		ID:               id,
		StoreID:          storeID,
		CriticalCount:    report.Summary.CriticalCount,
		WarningCount:     report.Summary.WarningCount,
		OverstockedCount: report.Summary.OverstockedCount,
		Predictions:      predictions,
		CreatedAt:        createdAt,
	}, nil
}

// TriggerManualSync inicia manualmente uma varredura de alertas de estoque.
// Retorna false quando já existe uma varredura em andamento.
func (s *StockAlertSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.L.WithField("job", stockAlertJob).Info("Varredura de alertas de estoque já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	ctx, _ := log.WithCorrelationID(context.Background())
	log.ForContext(ctx).WithField("job", stockAlertJob).Info("Iniciando varredura manual de alertas de estoque")
	go s.syncAllStores(ctx)

	return true
}

// GetStatus retorna o status atual do agendador
func (s *StockAlertSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_result":       s.lastResult,
	}
}
