package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-intelligence-api/infrastructure/cache"
	"github.com/vfg2006/inventory-intelligence-api/infrastructure/database/postgres"
	"github.com/vfg2006/inventory-intelligence-api/infrastructure/repository"
	"github.com/vfg2006/inventory-intelligence-api/internal/api"
	"github.com/vfg2006/inventory-intelligence-api/internal/api/handler"
	"github.com/vfg2006/inventory-intelligence-api/internal/config"
	"github.com/vfg2006/inventory-intelligence-api/internal/scheduler"
	"github.com/vfg2006/inventory-intelligence-api/internal/usecases/advising"
)

const memoryCacheSweepInterval = time.Minute

// reportCache é o cache de relatórios com estatísticas
type reportCache interface {
	advising.ReportCache
	handler.CacheStatsSource
}

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	storeRepo := repository.NewStoreRepository(pgConn)
	productRepo := repository.NewProductRepository(pgConn)
	orderRepo := repository.NewOrderRepository(pgConn)
	alertRepo := repository.NewAlertRepository(pgConn)

	health := map[string]handler.Pinger{"postgres": pgConn}

	reports, closeCache := newReportCache(ctx, cfg.Redis, health)
	defer closeCache()

	advisor := advising.NewService(storeRepo, productRepo, orderRepo, reports, cfg)

	stockAlertSyncService := scheduler.NewStockAlertSyncService(storeRepo, alertRepo, advisor, cfg)
	if err := stockAlertSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de alertas de estoque")
	} else {
		logrus.Info("Agendador de alertas de estoque iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Dependencies{
		Advisor: advisor,
		CronJobs: handler.CronJobServices{
			handler.CronJobTypeStockAlerts: stockAlertSyncService,
		},
		CacheStats: reports,
		Health:     health,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

// newReportCache usa o Redis quando habilitado e acessível; senão cai para o cache em memória
func newReportCache(ctx context.Context, redisConfig config.Redis, health map[string]handler.Pinger) (reportCache, func()) {
	if redisConfig.Enabled {
		redisCache := cache.NewRedisCache(cache.NewRedisClient(redisConfig), redisConfig.KeyPrefix)

		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()

		err := redisCache.Ping(pingCtx)
		if err == nil {
			logrus.WithField("addr", redisConfig.Addr).Info("Cache de relatórios usando Redis")
			health["redis"] = redisCache
			return redisCache, func() { _ = redisCache.Close() }
		}

		logrus.WithError(err).Warn("Redis indisponível, usando cache em memória")
		_ = redisCache.Close()
	}

	memoryCache := cache.NewMemoryCache()

	sweeper := gocron.NewScheduler(time.UTC)
	if _, err := sweeper.Every(memoryCacheSweepInterval).Do(func() {
		if removed := memoryCache.Sweep(); removed > 0 {
			logrus.WithField("removed", removed).Debug("Entradas expiradas removidas do cache em memória")
		}
	}); err != nil {
		logrus.WithError(err).Warn("Erro ao agendar limpeza do cache em memória")
	}
	sweeper.StartAsync()

	logrus.Info("Cache de relatórios usando memória local")
	return memoryCache, sweeper.Stop
}
