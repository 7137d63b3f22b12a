package domain

// MetricsResponse é a resposta dos cards de métricas
type MetricsResponse struct {
	Metrics    []MetricRecord `json:"metrics"`
	Loading    bool           `json:"loading"`
	Refreshing bool           `json:"refreshing"`
}

// InsightsResponse agrupa os painéis de "IA" e previsão
type InsightsResponse struct {
	Insights   []AIInsight       `json:"insights"`
	Predictive []PredictivePoint `json:"predictive"`
	Advanced   AdvancedMetrics   `json:"advanced"`
	Benchmarks Benchmarks        `json:"benchmarks"`
}

// ChartsResponse agrupa as séries dos gráficos
type ChartsResponse struct {
	Charts      ChartSeries       `json:"charts"`
	Heatmap     []HeatmapCell     `json:"heatmap"`
	Geographic  []GeographicEntry `json:"geographic"`
	Competitors []CompetitorEntry `json:"competitors"`
}
