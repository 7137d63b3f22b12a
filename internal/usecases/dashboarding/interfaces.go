package dashboarding

import (
	"io"

	"github.com/vfg2006/analytics-hub/internal/dashboard"
	"github.com/vfg2006/analytics-hub/internal/domain"
	"github.com/vfg2006/analytics-hub/internal/query"
	"github.com/vfg2006/analytics-hub/internal/summary"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// Refresher define o controle da atualização manual das métricas
type Refresher interface {
	// TriggerManualRefresh agenda uma atualização; falha se já houver uma em andamento
	TriggerManualRefresh() error
	IsRefreshing() bool
	GetStatus() map[string]any
}

// Dashboarder define as operações do painel expostas pela API e pela CLI
type Dashboarder interface {
	GetMetrics() *domain.MetricsResponse
	Refresh() error
	GetStatus() map[string]any

	// QueryCampaigns filtra, ordena e pagina a tabela de campanhas
	QueryCampaigns(q query.Query) (*query.Result, error)
	ListPlatforms() []string
	ExportCampaigns(w io.Writer) error

	GetActivity() []domain.ActivityRecord

	GetAlerts() *domain.AlertsResponse
	MarkAlertRead(id string) error
	DismissAlert(id string) error
	MarkAllAlertsRead() int

	GetSummary() *summary.Dashboard
	GetInsights() *domain.InsightsResponse
	GetCharts() *domain.ChartsResponse

	// Subscribe recebe os eventos de mudança do estado até que cancel seja chamado
	Subscribe(buffer int) (events <-chan dashboard.Event, cancel func())
}
