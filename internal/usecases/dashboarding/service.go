package dashboarding

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/vfg2006/analytics-hub/internal/dashboard"
	"github.com/vfg2006/analytics-hub/internal/domain"
	"github.com/vfg2006/analytics-hub/internal/export"
	"github.com/vfg2006/analytics-hub/internal/query"
	"github.com/vfg2006/analytics-hub/internal/summary"
	"github.com/vfg2006/analytics-hub/pkg/log"
)

var ErrRefreshUnavailable = errors.New("manual refresh unavailable")

type Service struct {
	store     *dashboard.Store
	refresher Refresher
	pageSize  int
}

// NewService cria o serviço do painel. refresher pode ser nil quando não há
// ticker (CLI); nesse caso Refresh devolve ErrRefreshUnavailable.
func NewService(store *dashboard.Store, refresher Refresher, pageSize int) Dashboarder {
	if pageSize <= 0 {
		pageSize = query.DefaultPageSize
	}

	return &Service{
		store:     store,
		refresher: refresher,
		pageSize:  pageSize,
	}
}

func (s *Service) GetMetrics() *domain.MetricsResponse {
	resp := &domain.MetricsResponse{
		Metrics: s.store.Metrics(),
		Loading: s.store.IsLoading(),
	}
	if s.refresher != nil {
		resp.Refreshing = s.refresher.IsRefreshing()
	}
	return resp
}

func (s *Service) Refresh() error {
	if s.refresher == nil {
		return ErrRefreshUnavailable
	}
	return s.refresher.TriggerManualRefresh()
}

func (s *Service) GetStatus() map[string]any {
	if s.refresher == nil {
		return map[string]any{"enabled": false, "running": false}
	}
	return s.refresher.GetStatus()
}

// QueryCampaigns completa o tamanho de página com o configurado quando ausente
func (s *Service) QueryCampaigns(q query.Query) (*query.Result, error) {
	if q.PageSize == 0 {
		q.PageSize = s.pageSize
	}

	result, err := query.Run(s.store.Campaigns(), q)
	if err != nil {
		log.L.WithFields(log.Fields{
			"sort_field":     q.SortField,
			"sort_direction": q.SortDirection,
			"page":           q.Page,
			"page_size":      q.PageSize,
			"error":          err.Error(),
		}).Warn("Consulta de campanhas inválida")
		return nil, err
	}

	return &result, nil
}

func (s *Service) ListPlatforms() []string {
	return query.Platforms(s.store.Campaigns())
}

func (s *Service) ExportCampaigns(w io.Writer) error {
	if err := export.WriteCampaignsCSV(w, s.store.Campaigns()); err != nil {
		return fmt.Errorf("erro ao exportar campanhas: %w", err)
	}
	return nil
}

func (s *Service) GetActivity() []domain.ActivityRecord {
	return s.store.Activity()
}

func (s *Service) GetAlerts() *domain.AlertsResponse {
	snap := s.store.Snapshot()
	return &domain.AlertsResponse{
		Alerts:      snap.Alerts,
		UnreadCount: snap.UnreadCount,
	}
}

func (s *Service) MarkAlertRead(id string) error {
	return s.store.MarkAlertRead(id)
}

func (s *Service) DismissAlert(id string) error {
	return s.store.DismissAlert(id)
}

func (s *Service) MarkAllAlertsRead() int {
	return s.store.MarkAllAlertsRead()
}

func (s *Service) GetSummary() *summary.Dashboard {
	seed := s.store.Seed()

	return &summary.Dashboard{
		Geographic:   summary.Geographic(seed.Geographic),
		Heatmap:      summary.Heatmap(seed.Heatmap),
		Competitors:  summary.Competitors(seed.Competitors, domain.YourBrand),
		Predictive:   summary.Predictive(seed.Predictive),
		Campaigns:    summary.Campaigns(s.store.Campaigns()),
		UnreadAlerts: s.store.UnreadAlertCount(),
	}
}

func (s *Service) GetInsights() *domain.InsightsResponse {
	seed := s.store.Seed()

	return &domain.InsightsResponse{
		Insights:   slices.Clone(seed.Insights),
		Predictive: slices.Clone(seed.Predictive),
		Advanced:   seed.Advanced,
		Benchmarks: seed.Benchmarks,
	}
}

func (s *Service) GetCharts() *domain.ChartsResponse {
	seed := s.store.Seed()

	return &domain.ChartsResponse{
		Charts: domain.ChartSeries{
			Line:  slices.Clone(seed.Charts.Line),
			Bar:   slices.Clone(seed.Charts.Bar),
			Donut: slices.Clone(seed.Charts.Donut),
		},
		Heatmap:     slices.Clone(seed.Heatmap),
		Geographic:  slices.Clone(seed.Geographic),
		Competitors: slices.Clone(seed.Competitors),
	}
}

func (s *Service) Subscribe(buffer int) (<-chan dashboard.Event, func()) {
	return s.store.Events().Subscribe(buffer)
}
