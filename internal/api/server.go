package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-intelligence-api/internal/api/handler"
	"github.com/vfg2006/inventory-intelligence-api/internal/api/handler/router"
	"github.com/vfg2006/inventory-intelligence-api/internal/config"
	"github.com/vfg2006/inventory-intelligence-api/internal/usecases/advising"
	"github.com/vfg2006/inventory-intelligence-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

// Dependencies agrupa os serviços expostos pela API
type Dependencies struct {
	Advisor    advising.Advisor
	CronJobs   handler.CronJobServices
	CacheStats handler.CacheStatsSource
	Health     map[string]handler.Pinger
}

func New(config *config.Config, deps Dependencies) (*Server, error) {
	if deps.Advisor == nil {
		return nil, errors.New("serviço de inteligência não configurado")
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, deps),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta o router com as rotas e os middlewares globais
func NewHandler(config *config.Config, deps Dependencies) http.Handler {
	configs := []router.ConfigRouter{
		router.WithRoutes(handler.Healthcheck(deps.Health)...),
		router.WithRoutes(handler.Intelligence(deps.Advisor)...),
		router.WithRoutes(handler.CronJobs(deps.CronJobs)...),
	}
	if deps.CacheStats != nil {
		configs = append(configs, router.WithRoutes(handler.Cache(deps.CacheStats)...))
	}

	rt := router.New(configs...)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Cors.AllowedOrigins),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
