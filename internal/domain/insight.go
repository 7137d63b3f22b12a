package domain

import "time"

// AIInsight é um insight "gerado por IA". Os registros são estáticos, escritos à mão.
type AIInsight struct {
	ID          string    `json:"id" yaml:"id"`
	Type        string    `json:"type" yaml:"type"` // opportunity, warning, success, trend
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description" yaml:"description"`
	Impact      string    `json:"impact" yaml:"impact"` // high, medium, low
	Confidence  int       `json:"confidence" yaml:"confidence"`
	Action      string    `json:"action,omitempty" yaml:"action"`
	Timestamp   time.Time `json:"timestamp" yaml:"timestamp"`
}

// PredictivePoint é um ponto da série de previsão de receita
type PredictivePoint struct {
	Period     string   `json:"period" yaml:"period"`
	Predicted  float64  `json:"predicted" yaml:"predicted"`
	Actual     *float64 `json:"actual,omitempty" yaml:"actual"`
	Confidence float64  `json:"confidence" yaml:"confidence"`
}
