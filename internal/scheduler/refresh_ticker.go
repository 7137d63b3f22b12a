package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/analytics-hub/internal/config"
	"github.com/vfg2006/analytics-hub/internal/domain"
)

var (
	ErrRefreshInFlight  = errors.New("manual refresh already in flight")
	ErrTickerStopped    = errors.New("refresh ticker stopped")
	ErrTickerNotStarted = errors.New("refresh ticker not started")
)

// Nomes das tarefas agendadas
const (
	TaskMetrics        = "metrics"
	TaskActivity       = "activity"
	TaskAlerts         = "alerts"
	TaskInitialLoading = "initial_loading"
	TaskManualRefresh  = "manual_refresh"
)

//go:generate mockgen -source=refresh_ticker.go -destination=mocks/mock_refresh_ticker.go -package=mocks

// State é o contêiner de estado que os ticks alteram
type State interface {
	UpdateMetrics(update func([]domain.MetricRecord) []domain.MetricRecord) []domain.MetricRecord
	PushActivity(a domain.ActivityRecord) (evicted bool)
	PushAlert(a domain.AlertRecord) (evicted bool)
	SetLoading(loading bool)
	IsLoading() bool
}

// Generator produz os valores simulados
type Generator interface {
	NextMetrics(current []domain.MetricRecord) []domain.MetricRecord
	MaybeActivity(now time.Time) (domain.ActivityRecord, bool)
	MaybeAlert(now time.Time) (domain.AlertRecord, bool)
}

// Recorder recebe os eventos do ticker para métricas
type Recorder interface {
	ObserveTick(task string)
	ObserveGenerated(kind string)
	ObserveEvicted(buffer string)
	ObserveRefresh(rejected bool)
}

type noopRecorder struct{}

func (noopRecorder) ObserveTick(string)      {}
func (noopRecorder) ObserveGenerated(string) {}
func (noopRecorder) ObserveEvicted(string)   {}
func (noopRecorder) ObserveRefresh(bool)     {}

// RefreshTickerConfig representa a configuração do ticker de atualização
type RefreshTickerConfig struct {
	Enabled              bool
	MetricsInterval      time.Duration
	ActivityInterval     time.Duration
	AlertInterval        time.Duration
	InitialLoadingDelay  time.Duration
	ManualRefreshLatency time.Duration
}

// NewRefreshTickerConfig extrai a configuração do ticker da config global
func NewRefreshTickerConfig(appConfig *config.Config) RefreshTickerConfig {
	return RefreshTickerConfig{
		Enabled:              appConfig.Ticker.Enabled,
		MetricsInterval:      appConfig.Ticker.MetricsInterval,
		ActivityInterval:     appConfig.Ticker.ActivityInterval,
		AlertInterval:        appConfig.Ticker.AlertInterval,
		InitialLoadingDelay:  appConfig.Ticker.InitialLoadingDelay,
		ManualRefreshLatency: appConfig.Ticker.ManualRefreshLatency,
	}
}

// RefreshTickerService simula atualizações ao vivo do painel
type RefreshTickerService struct {
	scheduler Scheduler
	config    RefreshTickerConfig
	state     State
	generator Generator
	recorder  Recorder
	now       func() time.Time

	// mu protege os campos abaixo e é mantido durante cada tick, de modo que
	// depois que Stop retorna nenhum tick altera o estado
	mu                     sync.Mutex
	started                bool
	stopped                bool
	refreshInFlight        bool
	jobs                   []Job
	done                   chan struct{}
	tickCounts             map[string]int
	lastTickAt             map[string]time.Time
	lastRefreshStartedAt   time.Time
	lastRefreshCompletedAt time.Time
}

// Option altera dependências opcionais do serviço
type Option func(*RefreshTickerService)

func WithRecorder(r Recorder) Option {
	return func(s *RefreshTickerService) {
		if r != nil {
			s.recorder = r
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *RefreshTickerService) {
		if now != nil {
			s.now = now
		}
	}
}

// NewRefreshTickerService cria uma nova instância do ticker
func NewRefreshTickerService(
	scheduler Scheduler,
	state State,
	generator Generator,
	cfg RefreshTickerConfig,
	opts ...Option,
) *RefreshTickerService {
	s := &RefreshTickerService{
		scheduler:  scheduler,
		config:     cfg,
		state:      state,
		generator:  generator,
		recorder:   noopRecorder{},
		now:        time.Now,
		done:       make(chan struct{}),
		tickCounts: make(map[string]int),
		lastTickAt: make(map[string]time.Time),
	}
	for _, opt := range opts {
		opt(s)
	}

	logrus.WithFields(logrus.Fields{
		"enabled":                cfg.Enabled,
		"metrics_interval":       cfg.MetricsInterval.String(),
		"activity_interval":      cfg.ActivityInterval.String(),
		"alert_interval":         cfg.AlertInterval.String(),
		"initial_loading_delay":  cfg.InitialLoadingDelay.String(),
		"manual_refresh_latency": cfg.ManualRefreshLatency.String(),
	}).Info("Configuração do ticker de atualização carregada")

	return s
}

// Start agenda as tarefas e inicia o agendador. Chamadas repetidas não têm
// efeito; depois de Stop, Start devolve ErrTickerStopped.
func (s *RefreshTickerService) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return ErrTickerStopped
	}
	if s.started {
		return nil
	}

	if s.config.InitialLoadingDelay > 0 {
		if err := s.addJobLocked(s.scheduler.After(s.config.InitialLoadingDelay, TaskInitialLoading, s.finishInitialLoading)); err != nil {
			return err
		}
	} else {
		s.state.SetLoading(false)
	}

	if s.config.Enabled {
		logrus.Info("Iniciando ticker de atualização do painel")

		tasks := []struct {
			name     string
			interval time.Duration
			fn       Task
		}{
			{TaskMetrics, s.config.MetricsInterval, s.metricsTick},
			{TaskActivity, s.config.ActivityInterval, s.activityTick},
			{TaskAlerts, s.config.AlertInterval, s.alertTick},
		}

		for _, t := range tasks {
			if err := s.addJobLocked(s.scheduler.Every(t.interval, t.name, t.fn)); err != nil {
				s.cancelJobsLocked()
				return err
			}
		}
	} else {
		logrus.Info("Ticker de atualização desabilitado por configuração, apenas atualização manual disponível")
	}

	s.scheduler.Start()
	s.started = true

	// Parar o ticker quando o contexto for cancelado
	go func() {
		select {
		case <-ctx.Done():
			s.Stop()
		case <-s.done:
		}
	}()

	return nil
}

func (s *RefreshTickerService) addJobLocked(job Job, err error) error {
	if err != nil {
		return fmt.Errorf("erro ao agendar tarefa do ticker: %w", err)
	}
	s.jobs = append(s.jobs, job)
	return nil
}

func (s *RefreshTickerService) cancelJobsLocked() {
	for _, j := range s.jobs {
		j.Cancel()
	}
	s.jobs = nil
}

// Stop cancela todas as tarefas. Quando retorna, nenhum tick em andamento
// permanece e nenhum outro vai alterar o estado. Pode ser chamado mais de uma vez.
func (s *RefreshTickerService) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	s.refreshInFlight = false
	jobs := s.jobs
	s.jobs = nil
	started := s.started
	close(s.done)
	s.mu.Unlock()

	logrus.Info("Parando ticker de atualização do painel")

	for _, j := range jobs {
		j.Cancel()
	}
	// fora do lock: o gocron aguarda as tarefas em execução, que disputam s.mu
	if started {
		s.scheduler.Stop()
	}
}

// tick executa fn sob o lock, a menos que o ticker já tenha parado
func (s *RefreshTickerService) tick(task string, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}

	fn()

	s.tickCounts[task]++
	s.lastTickAt[task] = s.now()
	s.recorder.ObserveTick(task)
}

func (s *RefreshTickerService) finishInitialLoading() {
	s.tick(TaskInitialLoading, func() {
		s.state.SetLoading(false)
		logrus.Debug("Carregamento inicial concluído")
	})
}

func (s *RefreshTickerService) metricsTick() {
	s.tick(TaskMetrics, func() {
		if s.state.IsLoading() {
			logrus.Debug("Painel ainda carregando, ignorando atualização de métricas")
			return
		}
		s.state.UpdateMetrics(s.generator.NextMetrics)
	})
}

func (s *RefreshTickerService) activityTick() {
	s.tick(TaskActivity, func() {
		activity, ok := s.generator.MaybeActivity(s.now())
		if !ok {
			return
		}

		s.recorder.ObserveGenerated(TaskActivity)
		if s.state.PushActivity(activity) {
			s.recorder.ObserveEvicted(TaskActivity)
		}
	})
}

func (s *RefreshTickerService) alertTick() {
	s.tick(TaskAlerts, func() {
		alert, ok := s.generator.MaybeAlert(s.now())
		if !ok {
			return
		}

		s.recorder.ObserveGenerated(TaskAlerts)
		if s.state.PushAlert(alert) {
			s.recorder.ObserveEvicted(TaskAlerts)
		}

		logrus.WithFields(logrus.Fields{
			"alert_id": alert.ID,
			"type":     alert.Type,
			"title":    alert.Title,
		}).Debug("Novo alerta gerado")
	})
}

// TriggerManualRefresh agenda uma atualização das métricas após a latência
// configurada. Enquanto uma atualização está em andamento, novas chamadas são
// rejeitadas com ErrRefreshInFlight sem alterar nada.
func (s *RefreshTickerService) TriggerManualRefresh() error {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return ErrTickerStopped
	}
	if !s.started {
		s.mu.Unlock()
		return ErrTickerNotStarted
	}
	if s.refreshInFlight {
		s.mu.Unlock()
		s.recorder.ObserveRefresh(true)
		logrus.Info("Atualização manual já em andamento, rejeitando solicitação")
		return ErrRefreshInFlight
	}
	s.refreshInFlight = true
	s.lastRefreshStartedAt = s.now()
	s.mu.Unlock()

	logrus.Info("Iniciando atualização manual das métricas")

	if s.config.ManualRefreshLatency <= 0 {
		s.completeManualRefresh()
		return nil
	}

	if _, err := s.scheduler.After(s.config.ManualRefreshLatency, TaskManualRefresh, s.completeManualRefresh); err != nil {
		s.mu.Lock()
		s.refreshInFlight = false
		s.mu.Unlock()
		return fmt.Errorf("erro ao agendar atualização manual: %w", err)
	}

	return nil
}

func (s *RefreshTickerService) completeManualRefresh() {
	s.tick(TaskManualRefresh, func() {
		s.state.UpdateMetrics(s.generator.NextMetrics)
		s.refreshInFlight = false
		s.lastRefreshCompletedAt = s.now()
		s.recorder.ObserveRefresh(false)
	})
}

// IsRefreshing indica se há uma atualização manual em andamento
func (s *RefreshTickerService) IsRefreshing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.refreshInFlight
}

// TickCount devolve quantas vezes a tarefa executou
func (s *RefreshTickerService) TickCount(task string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.tickCounts[task]
}

// GetStatus retorna o status atual do ticker
func (s *RefreshTickerService) GetStatus() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	ticks := make(map[string]int, len(s.tickCounts))
	for k, v := range s.tickCounts {
		ticks[k] = v
	}
	lastTicks := make(map[string]time.Time, len(s.lastTickAt))
	for k, v := range s.lastTickAt {
		lastTicks[k] = v
	}

	return map[string]any{
		"enabled":                   s.config.Enabled,
		"running":                   s.started && !s.stopped,
		"metrics_interval":          s.config.MetricsInterval.String(),
		"activity_interval":         s.config.ActivityInterval.String(),
		"alert_interval":            s.config.AlertInterval.String(),
		"refresh_in_flight":         s.refreshInFlight,
		"tick_counts":               ticks,
		"last_tick_at":              lastTicks,
		"last_refresh_started_at":   s.lastRefreshStartedAt,
		"last_refresh_completed_at": s.lastRefreshCompletedAt,
	}
}
