// Package dashboard mantém o estado em memória do painel. Todas as coleções
// têm um único escritor por papel e os leitores recebem cópias.
package dashboard

import (
	"slices"
	"sync"
	"time"

	"github.com/vfg2006/analytics-hub/internal/domain"
	"github.com/vfg2006/analytics-hub/internal/ringbuffer"
	"github.com/vfg2006/analytics-hub/internal/summary"
)

const (
	DefaultActivityCapacity = 20
	DefaultAlertCapacity    = 10
)

// Options configura as capacidades dos buffers
type Options struct {
	ActivityCapacity int
	AlertCapacity    int
	Now              func() time.Time
}

// Store é o contêiner de estado do painel
type Store struct {
	mu       sync.RWMutex
	metrics  []domain.MetricRecord
	activity *ringbuffer.Buffer[domain.ActivityRecord]
	alerts   *ringbuffer.Buffer[domain.AlertRecord]
	loading  bool

	// coleções estáticas, nunca alteradas após a criação
	seed *domain.Seed

	events *Broadcaster
	now    func() time.Time
}

// NewStore cria o estado a partir das coleções iniciais. O estado começa
// carregando até que SetLoading(false) seja chamado.
func NewStore(seed *domain.Seed, opts Options) *Store {
	if opts.ActivityCapacity <= 0 {
		opts.ActivityCapacity = DefaultActivityCapacity
	}
	if opts.AlertCapacity <= 0 {
		opts.AlertCapacity = DefaultAlertCapacity
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Store{
		metrics:  domain.CloneMetrics(seed.Metrics),
		activity: ringbuffer.FromSlice(opts.ActivityCapacity, seed.Activity),
		alerts:   ringbuffer.FromSlice(opts.AlertCapacity, seed.Alerts),
		loading:  true,
		seed:     seed,
		events:   NewBroadcaster(),
		now:      opts.Now,
	}
}

// Events devolve o distribuidor de eventos de mudança
func (s *Store) Events() *Broadcaster {
	return s.events
}

func (s *Store) publish(kind EventKind, data any) {
	s.events.Publish(Event{Kind: kind, Data: data, At: s.now()})
}

func (s *Store) Metrics() []domain.MetricRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return domain.CloneMetrics(s.metrics)
}

// UpdateMetrics substitui a coleção inteira pelo resultado de update.
// update recebe uma cópia e roda dentro da seção crítica.
func (s *Store) UpdateMetrics(update func([]domain.MetricRecord) []domain.MetricRecord) []domain.MetricRecord {
	s.mu.Lock()
	next := update(domain.CloneMetrics(s.metrics))
	s.metrics = next
	out := domain.CloneMetrics(next)
	s.mu.Unlock()

	s.publish(EventMetrics, out)
	return out
}

func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	changed := s.loading != loading
	s.loading = loading
	s.mu.Unlock()

	if changed {
		s.publish(EventLoading, loading)
	}
}

func (s *Store) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loading
}

// PushActivity insere no início do feed; evicted indica se o mais antigo saiu
func (s *Store) PushActivity(a domain.ActivityRecord) (evicted bool) {
	s.mu.Lock()
	_, evicted = s.activity.Push(a)
	s.mu.Unlock()

	s.publish(EventActivity, a)
	return evicted
}

// Activity devolve o feed do mais novo para o mais antigo
func (s *Store) Activity() []domain.ActivityRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.activity.Items()
}

func (s *Store) ActivityLen() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.activity.Len()
}

// PushAlert insere no início da lista de alertas
func (s *Store) PushAlert(a domain.AlertRecord) (evicted bool) {
	s.mu.Lock()
	_, evicted = s.alerts.Push(a)
	s.mu.Unlock()

	s.publish(EventAlerts, a)
	return evicted
}

// Alerts devolve os alertas do mais novo para o mais antigo
func (s *Store) Alerts() []domain.AlertRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.alerts.Items()
}

func (s *Store) AlertsLen() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.alerts.Len()
}

func (s *Store) UnreadAlertCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.unreadLocked()
}

func (s *Store) unreadLocked() int {
	return summary.UnreadAlerts(s.alerts.Items())
}

// MarkAlertRead marca um alerta como lido. Marcar de novo não é erro.
func (s *Store) MarkAlertRead(id string) error {
	if id == "" {
		return newAlertError(ErrAlertIDEmpty, "read", id)
	}

	s.mu.Lock()
	n := s.alerts.Update(
		func(a domain.AlertRecord) bool { return a.ID == id },
		func(a *domain.AlertRecord) { a.IsRead = true },
	)
	s.mu.Unlock()

	if n == 0 {
		return newAlertError(ErrAlertNotFound, "read", id)
	}

	s.publish(EventAlerts, id)
	return nil
}

// MarkAllAlertsRead marca todos como lidos e devolve quantos mudaram
func (s *Store) MarkAllAlertsRead() int {
	s.mu.Lock()
	n := s.alerts.Update(
		func(a domain.AlertRecord) bool { return !a.IsRead },
		func(a *domain.AlertRecord) { a.IsRead = true },
	)
	s.mu.Unlock()

	if n > 0 {
		s.publish(EventAlerts, n)
	}
	return n
}

// DismissAlert remove um alerta pelo ID
func (s *Store) DismissAlert(id string) error {
	if id == "" {
		return newAlertError(ErrAlertIDEmpty, "dismiss", id)
	}

	s.mu.Lock()
	n := s.alerts.Remove(func(a domain.AlertRecord) bool { return a.ID == id })
	s.mu.Unlock()

	if n == 0 {
		return newAlertError(ErrAlertNotFound, "dismiss", id)
	}

	s.publish(EventAlerts, id)
	return nil
}

// Campaigns devolve uma cópia das linhas da tabela
func (s *Store) Campaigns() []domain.CampaignRow {
	return slices.Clone(s.seed.Campaigns)
}

// Seed devolve as coleções estáticas. O chamador não deve alterá-las.
func (s *Store) Seed() *domain.Seed {
	return s.seed
}

// Snapshot é uma cópia consistente do estado mutável
type Snapshot struct {
	Metrics     []domain.MetricRecord   `json:"metrics"`
	Activity    []domain.ActivityRecord `json:"activity"`
	Alerts      []domain.AlertRecord    `json:"alerts"`
	UnreadCount int                     `json:"unread_count"`
	Loading     bool                    `json:"loading"`
	TakenAt     time.Time               `json:"taken_at"`
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		Metrics:     domain.CloneMetrics(s.metrics),
		Activity:    s.activity.Items(),
		Alerts:      s.alerts.Items(),
		UnreadCount: s.unreadLocked(),
		Loading:     s.loading,
		TakenAt:     s.now(),
	}
}
