package main

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/analytics-hub/infrastructure/repository"
	"github.com/vfg2006/analytics-hub/internal/api"
	"github.com/vfg2006/analytics-hub/internal/config"
	"github.com/vfg2006/analytics-hub/internal/dashboard"
	"github.com/vfg2006/analytics-hub/internal/scheduler"
	"github.com/vfg2006/analytics-hub/internal/simulation"
	"github.com/vfg2006/analytics-hub/internal/telemetry"
	"github.com/vfg2006/analytics-hub/internal/usecases/dashboarding"
	"github.com/vfg2006/analytics-hub/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define formato e nível de log com base na configuração
	logLevel, err := log.Configure(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
	}
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	generator := simulation.NewGenerator(
		newRandom(cfg.Simulation.RandomSeed),
		cfg.Simulation.ActivityProbability,
		cfg.Simulation.AlertProbability,
	)

	seedRepo := repository.NewSeedRepository(cfg.Seed.File, time.Now, generator.Noise)
	seed, err := seedRepo.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar os dados iniciais do painel")
	}
	generator.SetBaseline(seed.Metrics)

	store := dashboard.NewStore(seed, dashboard.Options{
		ActivityCapacity: cfg.Buffers.ActivityCapacity,
		AlertCapacity:    cfg.Buffers.AlertCapacity,
	})

	metrics, _, err := telemetry.NewWithRegistry(store)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao registrar métricas")
	}

	refreshTicker := scheduler.NewRefreshTickerService(
		scheduler.NewGocronScheduler(time.Local),
		store,
		generator,
		scheduler.NewRefreshTickerConfig(cfg),
		scheduler.WithRecorder(metrics),
	)

	// Inicia o ticker em background
	if err := refreshTicker.Start(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao iniciar o ticker de atualização")
	}
	logrus.Info("Ticker de atualização iniciado com sucesso")
	defer refreshTicker.Stop()

	dashboardService := dashboarding.NewService(store, refreshTicker, cfg.Query.PageSize)

	server, err := api.New(cfg, dashboardService, metrics)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// newRandom cria a fonte de aleatoriedade. Semente 0 usa uma semente variável.
func newRandom(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed))
}
