package domain

import (
	"math"
	"time"
)

// Seed agrupa todas as coleções iniciais do painel
type Seed struct {
	Metrics     []MetricRecord    `json:"metrics" yaml:"metrics"`
	Campaigns   []CampaignRow     `json:"campaigns" yaml:"campaigns"`
	Activity    []ActivityRecord  `json:"activity" yaml:"activity"`
	Alerts      []AlertRecord     `json:"alerts" yaml:"alerts"`
	Insights    []AIInsight       `json:"insights" yaml:"insights"`
	Predictive  []PredictivePoint `json:"predictive" yaml:"predictive"`
	Heatmap     []HeatmapCell     `json:"heatmap" yaml:"heatmap"`
	Geographic  []GeographicEntry `json:"geographic" yaml:"geographic"`
	Competitors []CompetitorEntry `json:"competitors" yaml:"competitors"`
	Charts      ChartSeries       `json:"charts" yaml:"charts"`
	Advanced    AdvancedMetrics   `json:"advanced" yaml:"advanced"`
	Benchmarks  Benchmarks        `json:"benchmarks" yaml:"benchmarks"`
}

// HeatmapDays são os dias da semana na ordem do mapa de calor
var HeatmapDays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// DefaultSeed monta as coleções padrão. noise deve devolver valores em [0, 1)
// e só é usado para a variação do mapa de calor.
func DefaultSeed(now time.Time, noise func() float64) *Seed {
	return &Seed{
		Metrics:     DefaultMetrics(),
		Campaigns:   DefaultCampaigns(),
		Activity:    DefaultActivity(),
		Alerts:      DefaultAlerts(now),
		Insights:    DefaultInsights(now),
		Predictive:  DefaultPredictive(),
		Heatmap:     GenerateHeatmap(noise),
		Geographic:  DefaultGeographic(),
		Competitors: DefaultCompetitors(),
		Charts:      DefaultCharts(),
		Advanced: AdvancedMetrics{
			CustomerLifetimeValue:   2847,
			CustomerAcquisitionCost: 127,
			ChurnRate:               3.2,
			NetPromoterScore:        72,
			BrandSentiment:          8.4,
			MarketShare:             24.8,
			CompetitiveIndex:        87.3,
			PredictiveAccuracy:      94.2,
		},
		Benchmarks: Benchmarks{
			Industry:        BenchmarkMetrics{CTR: 2.1, CPC: 1.85, ROAS: 3.2, ConversionRate: 2.8},
			YourPerformance: BenchmarkMetrics{CTR: 3.4, CPC: 1.42, ROAS: 4.7, ConversionRate: 4.1},
		},
	}
}

func DefaultMetrics() []MetricRecord {
	return []MetricRecord{
		{Label: MetricTotalRevenue, Value: "$2,847,950", Change: 12.5, Trend: TrendUp, Icon: "DollarSign"},
		{Label: MetricActiveUsers, Value: "94,582", Change: 8.2, Trend: TrendUp, Icon: "Users"},
		{Label: MetricConversions, Value: "12,847", Change: -2.4, Trend: TrendDown, Icon: "Target"},
		{Label: MetricGrowthRate, Value: "23.4%", Change: 5.7, Trend: TrendUp, Icon: "TrendingUp"},
	}
}

func DefaultCampaigns() []CampaignRow {
	return []CampaignRow{
		{ID: "1", Campaign: "Summer Sale 2024", Platform: "Google Ads", Impressions: 125000, Clicks: 8750, CTR: 7.0, Spend: 12500, Conversions: 385, ROAS: 4.2, Status: CampaignStatusActive, Date: "2024-01-15"},
		{ID: "2", Campaign: "Brand Awareness Q1", Platform: "Facebook", Impressions: 98000, Clicks: 5880, CTR: 6.0, Spend: 8900, Conversions: 220, ROAS: 3.1, Status: CampaignStatusActive, Date: "2024-01-14"},
		{ID: "3", Campaign: "Product Launch", Platform: "Instagram", Impressions: 156000, Clicks: 12480, CTR: 8.0, Spend: 15600, Conversions: 520, ROAS: 5.8, Status: CampaignStatusCompleted, Date: "2024-01-13"},
		{ID: "4", Campaign: "Holiday Promo", Platform: "LinkedIn", Impressions: 42000, Clicks: 2100, CTR: 5.0, Spend: 6800, Conversions: 95, ROAS: 2.4, Status: CampaignStatusPaused, Date: "2024-01-12"},
		{ID: "5", Campaign: "Retargeting Campaign", Platform: "Google Ads", Impressions: 78000, Clicks: 7020, CTR: 9.0, Spend: 9500, Conversions: 310, ROAS: 6.2, Status: CampaignStatusActive, Date: "2024-01-11"},
		{ID: "6", Campaign: "Video Ad Series", Platform: "YouTube", Impressions: 89000, Clicks: 4450, CTR: 5.0, Spend: 7200, Conversions: 180, ROAS: 3.8, Status: CampaignStatusActive, Date: "2024-01-10"},
		{ID: "7", Campaign: "Local Awareness", Platform: "Facebook", Impressions: 65000, Clicks: 3250, CTR: 5.0, Spend: 4800, Conversions: 125, ROAS: 2.9, Status: CampaignStatusPaused, Date: "2024-01-09"},
		{ID: "8", Campaign: "Mobile App Install", Platform: "TikTok", Impressions: 112000, Clicks: 8960, CTR: 8.0, Spend: 11200, Conversions: 420, ROAS: 4.8, Status: CampaignStatusActive, Date: "2024-01-08"},
	}
}

func DefaultActivity() []ActivityRecord {
	return []ActivityRecord{
		{ID: "1", Type: ActivityConversion, Message: "New conversion from Google Ads", Value: "$1,250", Time: "2 min ago"},
		{ID: "2", Type: ActivityCampaign, Message: "Instagram campaign reached 10K impressions", Time: "5 min ago"},
		{ID: "3", Type: ActivityAlert, Message: "Budget threshold reached for TikTok ads", Time: "8 min ago"},
		{ID: "4", Type: ActivityOptimization, Message: "AI optimized bid strategy for Facebook", Time: "12 min ago"},
		{ID: "5", Type: ActivityConversion, Message: "High-value customer acquired", Value: "$2,890", Time: "15 min ago"},
	}
}

func DefaultAlerts(now time.Time) []AlertRecord {
	return []AlertRecord{
		{ID: "1", Type: AlertCritical, Title: "Campaign Budget Exceeded", Message: "Summer Sale campaign has exceeded daily budget by 15%", Timestamp: now.Add(-5 * time.Minute)},
		{ID: "2", Type: AlertWarning, Title: "Low Conversion Rate", Message: "Facebook campaign CVR dropped below 2% threshold", Timestamp: now.Add(-15 * time.Minute)},
		{ID: "3", Type: AlertInfo, Title: "New Audience Segment", Message: "AI identified high-value audience segment for targeting", Timestamp: now.Add(-30 * time.Minute), IsRead: true},
	}
}

func DefaultInsights(now time.Time) []AIInsight {
	return []AIInsight{
		{ID: "1", Type: "opportunity", Title: "Instagram Campaign Optimization", Description: "Your Instagram campaigns show 34% higher engagement on weekends. Consider increasing weekend budget allocation.", Impact: "high", Confidence: 92, Action: "Increase weekend budget by 25%", Timestamp: now},
		{ID: "2", Type: "warning", Title: "Google Ads Performance Drop", Description: "CTR decreased by 15% in the last 7 days. Quality score may be affected by recent keyword changes.", Impact: "medium", Confidence: 87, Action: "Review keyword relevance", Timestamp: now},
		{ID: "3", Type: "success", Title: "TikTok ROI Breakthrough", Description: "TikTok campaigns achieved 6.2x ROAS, 40% above target. Consider scaling similar creative formats.", Impact: "high", Confidence: 95, Action: "Scale successful creatives", Timestamp: now},
		{ID: "4", Type: "trend", Title: "Mobile Traffic Surge", Description: "Mobile conversions increased 28% this month. Mobile-first strategy showing strong results.", Impact: "medium", Confidence: 89, Timestamp: now},
	}
}

func DefaultPredictive() []PredictivePoint {
	return []PredictivePoint{
		{Period: "Jan 2025", Predicted: 220000, Confidence: 94},
		{Period: "Feb 2025", Predicted: 245000, Confidence: 91},
		{Period: "Mar 2025", Predicted: 268000, Confidence: 88},
		{Period: "Apr 2025", Predicted: 285000, Confidence: 85},
		{Period: "May 2025", Predicted: 310000, Confidence: 82},
		{Period: "Jun 2025", Predicted: 335000, Confidence: 79},
	}
}

func DefaultGeographic() []GeographicEntry {
	return []GeographicEntry{
		{Country: "United States", Code: "US", Revenue: 1250000, Users: 45000, Growth: 12.5, Coordinates: [2]float64{-95.7129, 37.0902}},
		{Country: "United Kingdom", Code: "GB", Revenue: 680000, Users: 28000, Growth: 8.3, Coordinates: [2]float64{-3.4360, 55.3781}},
		{Country: "Germany", Code: "DE", Revenue: 520000, Users: 22000, Growth: 15.7, Coordinates: [2]float64{10.4515, 51.1657}},
		{Country: "France", Code: "FR", Revenue: 445000, Users: 19000, Growth: 6.9, Coordinates: [2]float64{2.2137, 46.2276}},
		{Country: "Canada", Code: "CA", Revenue: 380000, Users: 16000, Growth: 18.2, Coordinates: [2]float64{-106.3468, 56.1304}},
		{Country: "Australia", Code: "AU", Revenue: 295000, Users: 12000, Growth: 22.1, Coordinates: [2]float64{133.7751, -25.2744}},
		{Country: "Japan", Code: "JP", Revenue: 275000, Users: 11000, Growth: 4.8, Coordinates: [2]float64{138.2529, 36.2048}},
		{Country: "Netherlands", Code: "NL", Revenue: 185000, Users: 8500, Growth: 11.3, Coordinates: [2]float64{5.2913, 52.1326}},
	}
}

func DefaultCompetitors() []CompetitorEntry {
	return []CompetitorEntry{
		{Name: "Competitor A", MarketShare: 28.5, Trend: "down", Change: -2.3},
		{Name: YourBrand, MarketShare: 24.8, Trend: "up", Change: 4.7},
		{Name: "Competitor B", MarketShare: 18.2, Trend: "stable", Change: 0.5},
		{Name: "Competitor C", MarketShare: 15.1, Trend: "up", Change: 1.8},
		{Name: "Others", MarketShare: 13.4, Trend: "down", Change: -1.2},
	}
}

func DefaultCharts() ChartSeries {
	months := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	revenue := []float64{65000, 78000, 90000, 81000, 95000, 110000, 125000, 140000, 155000, 170000, 185000, 200000}
	users := []float64{12400, 14800, 16200, 15600, 18200, 20800, 22400, 24600, 26800, 29200, 31600, 34000}
	conversions := []float64{2100, 2400, 2800, 2650, 3100, 3500, 3800, 4200, 4600, 5000, 5400, 5800}

	line := make([]ChartPoint, len(months))
	for i, m := range months {
		line[i] = ChartPoint{Name: m, Revenue: revenue[i], Users: users[i], Conversions: conversions[i]}
	}

	return ChartSeries{
		Line: line,
		Bar: []ChartPoint{
			{Name: "Facebook", Value: 4500},
			{Name: "Google", Value: 6200},
			{Name: "Instagram", Value: 3800},
			{Name: "LinkedIn", Value: 2100},
			{Name: "Twitter", Value: 1900},
			{Name: "TikTok", Value: 2800},
		},
		Donut: []ChartPoint{
			{Name: "Organic", Value: 45},
			{Name: "Paid Search", Value: 25},
			{Name: "Social Media", Value: 15},
			{Name: "Email", Value: 10},
			{Name: "Direct", Value: 5},
		},
	}
}

// GenerateHeatmap monta a grade de 7 dias x 24 horas. Horário comercial,
// fins de semana e o pico da noite recebem acréscimos; noise adiciona ±10.
func GenerateHeatmap(noise func() float64) []HeatmapCell {
	cells := make([]HeatmapCell, 0, len(HeatmapDays)*24)
	for i := 0; i < len(HeatmapDays)*24; i++ {
		hour := i % 24
		day := i / 24

		base := 50.0
		if hour >= 9 && hour <= 17 {
			base += 30
		}
		if day >= 5 {
			base += 20
		}
		if hour >= 19 && hour <= 22 {
			base += 25
		}

		variation := 0.0
		if noise != nil {
			variation = noise()*20 - 10
		}
		value := math.Max(0, math.Min(100, base+variation))

		cells = append(cells, HeatmapCell{
			Hour:        hour,
			Day:         HeatmapDays[day],
			Value:       int(math.Round(value)),
			Conversions: int(math.Round(value * 2.5)),
		})
	}
	return cells
}
