package summary

import (
	"github.com/vfg2006/analytics-hub/internal/domain"
	"github.com/vfg2006/analytics-hub/internal/query"
)

// GeographicSummary resume a distribuição de receita por mercado
type GeographicSummary struct {
	TotalRevenue float64 `json:"total_revenue"`
	TotalUsers   int     `json:"total_users"`
	MaxRevenue   float64 `json:"max_revenue"`
	Markets      int     `json:"markets"`
}

func Geographic(entries []domain.GeographicEntry) GeographicSummary {
	revenue := func(e domain.GeographicEntry) float64 { return e.Revenue }

	return GeographicSummary{
		TotalRevenue: Sum(entries, revenue),
		TotalUsers:   Sum(entries, func(e domain.GeographicEntry) int { return e.Users }),
		MaxRevenue:   Max(entries, revenue),
		Markets:      len(entries),
	}
}

// HeatmapSummary resume a grade de atividade
type HeatmapSummary struct {
	Peak     int                 `json:"peak"`
	Average  float64             `json:"average"`
	PeakCell *domain.HeatmapCell `json:"peak_cell,omitempty"`
}

func Heatmap(cells []domain.HeatmapCell) HeatmapSummary {
	value := func(c domain.HeatmapCell) int { return c.Value }

	s := HeatmapSummary{
		Peak:    Max(cells, value),
		Average: Average(cells, value),
	}
	if cell, ok := ArgMax(cells, value); ok {
		s.PeakCell = &cell
	}
	return s
}

// CompetitorSummary descreve a posição da própria marca no mercado
type CompetitorSummary struct {
	Brand       string  `json:"brand"`
	Position    int     `json:"position"` // 0 quando a marca não está na lista
	Found       bool    `json:"found"`
	MarketShare float64 `json:"market_share"`
	Change      float64 `json:"change"`
	Trend       string  `json:"trend,omitempty"`
	Competitors int     `json:"competitors"`
}

// Competitors ordena por participação decrescente e localiza brand
func Competitors(entries []domain.CompetitorEntry, brand string) CompetitorSummary {
	isBrand := func(e domain.CompetitorEntry) bool { return e.Name == brand }
	share := func(e domain.CompetitorEntry) float64 { return e.MarketShare }

	s := CompetitorSummary{Brand: brand, Competitors: len(entries)}

	position, ok := RankOf(entries, isBrand, share, query.SortDesc)
	if !ok {
		return s
	}

	s.Position, s.Found = position, true
	for _, e := range entries {
		if isBrand(e) {
			s.MarketShare, s.Change, s.Trend = e.MarketShare, e.Change, e.Trend
			break
		}
	}
	return s
}

// PredictiveSummary resume a série de previsão
type PredictiveSummary struct {
	AverageConfidence float64 `json:"average_confidence"`
	TotalPredicted    float64 `json:"total_predicted"`
	Periods           int     `json:"periods"`
}

func Predictive(points []domain.PredictivePoint) PredictiveSummary {
	return PredictiveSummary{
		AverageConfidence: Average(points, func(p domain.PredictivePoint) float64 { return p.Confidence }),
		TotalPredicted:    Sum(points, func(p domain.PredictivePoint) float64 { return p.Predicted }),
		Periods:           len(points),
	}
}

// UnreadAlerts conta os alertas não lidos
func UnreadAlerts(alerts []domain.AlertRecord) int {
	return Sum(alerts, func(a domain.AlertRecord) int {
		if a.IsRead {
			return 0
		}
		return 1
	})
}

// CampaignTotals resume a tabela de campanhas inteira
type CampaignTotals struct {
	Impressions int     `json:"impressions"`
	Clicks      int     `json:"clicks"`
	Spend       float64 `json:"spend"`
	Conversions int     `json:"conversions"`
	AverageCTR  float64 `json:"average_ctr"`
	AverageROAS float64 `json:"average_roas"`
}

func Campaigns(rows []domain.CampaignRow) CampaignTotals {
	return CampaignTotals{
		Impressions: Sum(rows, func(r domain.CampaignRow) int { return r.Impressions }),
		Clicks:      Sum(rows, func(r domain.CampaignRow) int { return r.Clicks }),
		Spend:       Sum(rows, func(r domain.CampaignRow) float64 { return r.Spend }),
		Conversions: Sum(rows, func(r domain.CampaignRow) int { return r.Conversions }),
		AverageCTR:  Average(rows, func(r domain.CampaignRow) float64 { return r.CTR }),
		AverageROAS: Average(rows, func(r domain.CampaignRow) float64 { return r.ROAS }),
	}
}

// Dashboard agrupa todos os resumos exibidos nas abas de análise
type Dashboard struct {
	Geographic   GeographicSummary `json:"geographic"`
	Heatmap      HeatmapSummary    `json:"heatmap"`
	Competitors  CompetitorSummary `json:"competitors"`
	Predictive   PredictiveSummary `json:"predictive"`
	Campaigns    CampaignTotals    `json:"campaigns"`
	UnreadAlerts int               `json:"unread_alerts"`
}
