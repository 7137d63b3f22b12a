package domain

// ChartPoint é um ponto genérico das séries de gráfico
type ChartPoint struct {
	Name        string  `json:"name" yaml:"name"`
	Value       float64 `json:"value,omitempty" yaml:"value"`
	Revenue     float64 `json:"revenue,omitempty" yaml:"revenue"`
	Users       float64 `json:"users,omitempty" yaml:"users"`
	Conversions float64 `json:"conversions,omitempty" yaml:"conversions"`
}

// ChartSeries agrupa as séries exibidas na visão geral
type ChartSeries struct {
	Line  []ChartPoint `json:"line" yaml:"line"`
	Bar   []ChartPoint `json:"bar" yaml:"bar"`
	Donut []ChartPoint `json:"donut" yaml:"donut"`
}

// AdvancedMetrics são os KPIs avançados da visão geral
type AdvancedMetrics struct {
	CustomerLifetimeValue   float64 `json:"customer_lifetime_value" yaml:"customer_lifetime_value"`
	CustomerAcquisitionCost float64 `json:"customer_acquisition_cost" yaml:"customer_acquisition_cost"`
	ChurnRate               float64 `json:"churn_rate" yaml:"churn_rate"`
	NetPromoterScore        float64 `json:"net_promoter_score" yaml:"net_promoter_score"`
	BrandSentiment          float64 `json:"brand_sentiment" yaml:"brand_sentiment"`
	MarketShare             float64 `json:"market_share" yaml:"market_share"`
	CompetitiveIndex        float64 `json:"competitive_index" yaml:"competitive_index"`
	PredictiveAccuracy      float64 `json:"predictive_accuracy" yaml:"predictive_accuracy"`
}

// BenchmarkMetrics compara a performance própria com a média do setor
type BenchmarkMetrics struct {
	CTR            float64 `json:"ctr" yaml:"ctr"`
	CPC            float64 `json:"cpc" yaml:"cpc"`
	ROAS           float64 `json:"roas" yaml:"roas"`
	ConversionRate float64 `json:"conversion_rate" yaml:"conversion_rate"`
}

type Benchmarks struct {
	Industry        BenchmarkMetrics `json:"industry" yaml:"industry"`
	YourPerformance BenchmarkMetrics `json:"your_performance" yaml:"your_performance"`
}
