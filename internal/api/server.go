package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/analytics-hub/internal/api/handler"
	"github.com/vfg2006/analytics-hub/internal/api/handler/router"
	"github.com/vfg2006/analytics-hub/internal/config"
	"github.com/vfg2006/analytics-hub/internal/telemetry"
	"github.com/vfg2006/analytics-hub/internal/usecases/dashboarding"
	"github.com/vfg2006/analytics-hub/pkg/middleware"
)

const defaultShutdownTimeout = 15 * time.Second

type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
	liveDone        chan struct{}
	closeLive       sync.Once
}

func New(
	config *config.Config,
	dashboardService dashboarding.Dashboarder,
	metrics *telemetry.Metrics,
) (*Server, error) {
	if dashboardService == nil {
		return nil, fmt.Errorf("dashboard service is required")
	}

	liveDone := make(chan struct{})

	routes := []router.ConfigRouter{
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Dashboard(dashboardService)...),
		router.WithRoutes(handler.Campaigns(dashboardService)...),
		router.WithRoutes(handler.Alerts(dashboardService)...),
		router.WithRoutes(handler.Overview(dashboardService)...),
		router.WithRoutes(handler.Live(dashboardService, handler.LiveConfig{
			PingInterval:   config.Live.PingInterval,
			WriteTimeout:   config.Live.WriteTimeout,
			BufferSize:     config.Live.BufferSize,
			AllowedOrigins: config.Server.AllowedOrigins,
			Done:           liveDone,
		})...),
	}
	if metrics != nil {
		routes = append(routes, router.WithRoutes(handler.Metrics(metrics.Gatherer())...))
	}

	rt := router.New(routes...)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
	}
	if metrics != nil {
		middlewares = append(middlewares, middleware.MetricsMiddleware(metrics))
	}

	handler := alice.New(middlewares...).Then(rt)

	shutdownTimeout := config.Server.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
		shutdownTimeout: shutdownTimeout,
		liveDone:        liveDone,
	}

	// Conexões WebSocket são sequestradas e não entram no Shutdown do http.Server
	srv.httpServer.RegisterOnShutdown(srv.stopLive)

	return srv, nil
}

// Handler expõe a cadeia completa de middlewares e rotas
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) stopLive() {
	s.closeLive.Do(func() { close(s.liveDone) })
}

func (s *Server) Run(ctx context.Context) error {
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
	defer signal.Stop(done)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": s.shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
