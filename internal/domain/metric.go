// Package domain contém as estruturas de dados do domínio da aplicação
package domain

// Trend indica a direção da variação de uma métrica
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
)

// Rótulos das métricas principais do painel
const (
	MetricTotalRevenue = "Total Revenue"
	MetricActiveUsers  = "Active Users"
	MetricConversions  = "Conversions"
	MetricGrowthRate   = "Growth Rate"
)

// MetricRecord representa um card de métrica do painel.
// A coleção é sempre substituída por inteiro, nunca alterada campo a campo.
type MetricRecord struct {
	Label  string  `json:"label" yaml:"label"`
	Value  string  `json:"value" yaml:"value"`
	Change float64 `json:"change" yaml:"change"` // Variação percentual com uma casa decimal
	Trend  Trend   `json:"trend" yaml:"trend"`
	Icon   string  `json:"icon,omitempty" yaml:"icon"`
}

// TrendFor deriva a tendência a partir do sinal da variação
func TrendFor(change float64) Trend {
	if change < 0 {
		return TrendDown
	}
	return TrendUp
}

// CloneMetrics devolve uma cópia independente da coleção
func CloneMetrics(metrics []MetricRecord) []MetricRecord {
	if metrics == nil {
		return nil
	}
	out := make([]MetricRecord, len(metrics))
	copy(out, metrics)
	return out
}
