package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/analytics-hub/internal/api/handler/router"
	"github.com/vfg2006/analytics-hub/internal/usecases/dashboarding"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Dashboard(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard/metrics",
			Method:  http.MethodGet,
			Handler: GetMetrics(service),
		},
		{
			Path:    "/v1/dashboard/refresh",
			Method:  http.MethodPost,
			Handler: RefreshMetrics(service),
		},
		{
			Path:    "/v1/dashboard/status",
			Method:  http.MethodGet,
			Handler: GetTickerStatus(service),
		},
	}
}

func Campaigns(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/campaigns",
			Method:  http.MethodGet,
			Handler: ListCampaigns(service),
		},
		{
			Path:    "/v1/campaigns/platforms",
			Method:  http.MethodGet,
			Handler: ListPlatforms(service),
		},
		{
			Path:    "/v1/campaigns/export",
			Method:  http.MethodGet,
			Handler: ExportCampaigns(service),
		},
	}
}

func Alerts(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/activity",
			Method:  http.MethodGet,
			Handler: ListActivity(service),
		},
		{
			Path:    "/v1/alerts",
			Method:  http.MethodGet,
			Handler: ListAlerts(service),
		},
		{
			Path:    "/v1/alerts/:id/read",
			Method:  http.MethodPost,
			Handler: MarkAlertRead(service),
		},
		{
			Path:    "/v1/alerts/:id",
			Method:  http.MethodDelete,
			Handler: DismissAlert(service),
		},
		{
			// PUT: no POST o segmento estático colidiria com :id
			Path:    "/v1/alerts/read-all",
			Method:  http.MethodPut,
			Handler: MarkAllAlertsRead(service),
		},
	}
}

func Overview(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/summary",
			Method:  http.MethodGet,
			Handler: GetSummary(service),
		},
		{
			Path:    "/v1/insights",
			Method:  http.MethodGet,
			Handler: GetInsights(service),
		},
		{
			Path:    "/v1/charts",
			Method:  http.MethodGet,
			Handler: GetCharts(service),
		},
	}
}

func Live(service dashboarding.Dashboarder, cfg LiveConfig) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/live",
			Method:  http.MethodGet,
			Handler: LiveStream(service, cfg),
		},
	}
}

func Metrics(gatherer prometheus.Gatherer) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}),
		},
	}
}
