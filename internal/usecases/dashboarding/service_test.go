package dashboarding

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/analytics-hub/internal/dashboard"
	"github.com/vfg2006/analytics-hub/internal/domain"
	"github.com/vfg2006/analytics-hub/internal/query"
	"github.com/vfg2006/analytics-hub/internal/scheduler"
	"github.com/vfg2006/analytics-hub/internal/usecases/dashboarding/mocks"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

func newTestStore() *dashboard.Store {
	return dashboard.NewStore(domain.DefaultSeed(testNow, nil), dashboard.Options{
		Now: func() time.Time { return testNow },
	})
}

func TestService_GetMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	refresher := mocks.NewMockRefresher(ctrl)
	refresher.EXPECT().IsRefreshing().Return(true)

	store := newTestStore()
	svc := NewService(store, refresher, 0)

	resp := svc.GetMetrics()
	assert.Equal(t, domain.DefaultMetrics(), resp.Metrics)
	assert.True(t, resp.Loading)
	assert.True(t, resp.Refreshing)

	store.SetLoading(false)
	resp = NewService(store, nil, 0).GetMetrics()
	assert.False(t, resp.Loading)
	assert.False(t, resp.Refreshing)
}

func TestService_Refresh(t *testing.T) {
	tests := []struct {
		name    string
		mockErr error
		wantErr error
	}{
		{
			name: "Sucesso - atualização agendada",
		},
		{
			name:    "Erro - atualização em andamento",
			mockErr: scheduler.ErrRefreshInFlight,
			wantErr: scheduler.ErrRefreshInFlight,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			refresher := mocks.NewMockRefresher(ctrl)
			refresher.EXPECT().TriggerManualRefresh().Return(tt.mockErr)

			err := NewService(newTestStore(), refresher, 0).Refresh()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}

	t.Run("Erro - sem ticker", func(t *testing.T) {
		err := NewService(newTestStore(), nil, 0).Refresh()
		assert.ErrorIs(t, err, ErrRefreshUnavailable)
	})
}

func TestService_GetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	refresher := mocks.NewMockRefresher(ctrl)
	refresher.EXPECT().GetStatus().Return(map[string]any{"running": true})

	assert.Equal(t, map[string]any{"running": true}, NewService(newTestStore(), refresher, 0).GetStatus())
	assert.Equal(t, false, NewService(newTestStore(), nil, 0).GetStatus()["running"])
}

func TestService_QueryCampaigns(t *testing.T) {
	tests := []struct {
		name      string
		pageSize  int
		query     query.Query
		wantIDs   []string
		wantTotal int
		wantPages int
		wantErr   error
	}{
		{
			name:      "Sucesso - consulta padrão",
			query:     query.DefaultQuery(),
			wantIDs:   []string{"1", "2", "3", "4", "5"},
			wantTotal: 8,
			wantPages: 2,
		},
		{
			name:     "Sucesso - tamanho de página do serviço",
			pageSize: 3,
			query: query.Query{
				SortField:     query.SortBySpend,
				SortDirection: query.SortDesc,
				Page:          1,
			},
			wantIDs:   []string{"3", "1", "8"},
			wantTotal: 8,
			wantPages: 3,
		},
		{
			name: "Sucesso - busca e plataforma",
			query: query.Query{
				SearchTerm:     "sale",
				PlatformFilter: "Google Ads",
				SortField:      query.SortByDate,
				SortDirection:  query.SortDesc,
				Page:           1,
			},
			wantIDs:   []string{"1"},
			wantTotal: 1,
			wantPages: 1,
		},
		{
			name: "Erro - campo de ordenação desconhecido",
			query: query.Query{
				SortField:     "budget",
				SortDirection: query.SortAsc,
				Page:          1,
			},
			wantErr: query.ErrUnknownSortField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(newTestStore(), nil, tt.pageSize)

			result, err := svc.QueryCampaigns(tt.query)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			ids := make([]string, 0, len(result.Rows))
			for _, row := range result.Rows {
				ids = append(ids, row.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, tt.wantTotal, result.TotalMatches)
			assert.Equal(t, tt.wantPages, result.TotalPages)
		})
	}
}

func TestService_ListPlatforms(t *testing.T) {
	svc := NewService(newTestStore(), nil, 0)

	assert.Equal(t,
		[]string{"Google Ads", "Facebook", "Instagram", "LinkedIn", "YouTube", "TikTok"},
		svc.ListPlatforms(),
	)
}

func TestService_ExportCampaigns(t *testing.T) {
	var buf bytes.Buffer

	err := NewService(newTestStore(), nil, 0).ExportCampaigns(&buf)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "Campaign,Platform,Impressions,CTR,Spend,ROAS,Status", lines[0])
	assert.Equal(t, "Summer Sale 2024,Google Ads,125000,7,12500,4.2,active", lines[1])
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disco cheio") }

func TestService_ExportCampaigns_WriterError(t *testing.T) {
	err := NewService(newTestStore(), nil, 0).ExportCampaigns(failingWriter{})
	assert.ErrorContains(t, err, "disco cheio")
}

func TestService_Alerts(t *testing.T) {
	svc := NewService(newTestStore(), nil, 0)

	resp := svc.GetAlerts()
	assert.Len(t, resp.Alerts, 3)
	assert.Equal(t, 2, resp.UnreadCount)

	require.NoError(t, svc.MarkAlertRead("1"))
	assert.Equal(t, 1, svc.GetAlerts().UnreadCount)

	err := svc.MarkAlertRead("404")
	assert.ErrorIs(t, err, dashboard.ErrAlertNotFound)

	require.NoError(t, svc.DismissAlert("3"))
	assert.Len(t, svc.GetAlerts().Alerts, 2)

	assert.Equal(t, 1, svc.MarkAllAlertsRead())
	assert.Equal(t, 0, svc.GetAlerts().UnreadCount)
	assert.Equal(t, 0, svc.MarkAllAlertsRead())
}

func TestService_GetActivity(t *testing.T) {
	activity := NewService(newTestStore(), nil, 0).GetActivity()

	require.Len(t, activity, 5)
	assert.Equal(t, "1", activity[0].ID)
}

func TestService_GetSummary(t *testing.T) {
	store := newTestStore()
	svc := NewService(store, nil, 0)

	s := svc.GetSummary()
	assert.Equal(t, 2, s.UnreadAlerts)
	assert.Equal(t, 2, s.Competitors.Position)
	assert.True(t, s.Competitors.Found)
	assert.Equal(t, 8, s.Geographic.Markets)
	assert.InDelta(t, 76500, s.Campaigns.Spend, 0.001)

	require.NoError(t, store.DismissAlert("1"))
	assert.Equal(t, 1, svc.GetSummary().UnreadAlerts)
}

func TestService_GetInsightsAndCharts(t *testing.T) {
	svc := NewService(newTestStore(), nil, 0)

	insights := svc.GetInsights()
	assert.Len(t, insights.Insights, 4)
	assert.InDelta(t, 24.8, insights.Advanced.MarketShare, 0.001)

	insights.Insights[0].Title = "alterado"
	assert.NotEqual(t, "alterado", svc.GetInsights().Insights[0].Title)

	charts := svc.GetCharts()
	assert.NotEmpty(t, charts.Charts.Line)
	assert.Len(t, charts.Geographic, 8)
	assert.Len(t, charts.Heatmap, 7*24)
}

func TestService_Subscribe(t *testing.T) {
	store := newTestStore()
	svc := NewService(store, nil, 0)

	events, cancel := svc.Subscribe(4)
	defer cancel()

	store.SetLoading(false)

	select {
	case e := <-events:
		assert.Equal(t, dashboard.EventLoading, e.Kind)
	case <-time.After(time.Second):
		t.Fatal("evento não recebido")
	}
}
