// Package simulation gera os valores "ao vivo" do painel a partir de uma fonte
// aleatória injetada. Com a mesma semente a sequência gerada é a mesma.
package simulation

import (
	"strconv"
	"sync"
	"time"

	"github.com/vfg2006/analytics-hub/internal/domain"
	"github.com/vfg2006/analytics-hub/pkg/utils"
)

// Random é a fonte de aleatoriedade. *rand.Rand de math/rand/v2 a satisfaz.
type Random interface {
	Float64() float64
	IntN(n int) int
}

// Valores base das métricas simuladas
const (
	BaseRevenue     = 2847950
	RevenueSpread   = 100000
	BaseActiveUsers = 94582
	ActiveUsersStep = 1000
	BaseConversions = 12847
	ConversionsStep = 100
	BaseGrowthRate  = 23.4
)

var activityMessages = []string{
	"New high-value conversion detected",
	"Campaign performance milestone reached",
	"Budget threshold alert triggered",
	"AI optimization applied successfully",
	"Audience engagement spike detected",
	"New lead captured from organic search",
	"Social media campaign went viral",
	"Email campaign achieved high open rate",
}

var alertTitles = []string{
	"High Traffic Spike Detected",
	"Campaign Budget Alert",
	"New Conversion Milestone",
	"Performance Anomaly",
	"Audience Engagement Peak",
}

var alertMessages = []string{
	"Traffic increased by 150% in the last 5 minutes",
	"Daily budget utilization at 85%",
	"Reached 1000 conversions this month",
	"CTR dropped below normal range",
	"Social media engagement up 200%",
}

// jitter devolve um valor uniforme em [-1, 1)
func jitter(rnd Random) float64 {
	return (rnd.Float64() - 0.5) * 2
}

func pick[T any](rnd Random, pool []T) T {
	return pool[rnd.IntN(len(pool))]
}

// NextMetrics deriva uma nova coleção de métricas a partir da atual.
// A variação de cada métrica é a variação de baseline com o mesmo rótulo
// somada a um valor em [-1, 1), então nunca se afasta mais de 1 ponto da
// base. Rótulos ausentes de baseline usam a variação atual como base.
// A entrada não é alterada.
func NextMetrics(current, baseline []domain.MetricRecord, rnd Random) []domain.MetricRecord {
	baseChange := make(map[string]float64, len(baseline))
	for _, m := range baseline {
		baseChange[m.Label] = m.Change
	}

	next := make([]domain.MetricRecord, len(current))
	for i, m := range current {
		base, ok := baseChange[m.Label]
		if !ok {
			base = m.Change
		}

		switch m.Label {
		case domain.MetricTotalRevenue:
			m.Value = utils.FormatCurrency(BaseRevenue + rnd.Float64()*RevenueSpread)
		case domain.MetricActiveUsers:
			m.Value = utils.FormatThousands(int64(BaseActiveUsers + rnd.IntN(ActiveUsersStep)))
		case domain.MetricConversions:
			m.Value = utils.FormatThousands(int64(BaseConversions + rnd.IntN(ConversionsStep)))
		case domain.MetricGrowthRate:
			m.Value = utils.FormatPercent(BaseGrowthRate + jitter(rnd))
		}

		m.Change = utils.RoundWithOneDecimalPlace(base + jitter(rnd))
		m.Trend = domain.TrendFor(m.Change)
		next[i] = m
	}
	return next
}

// NewActivity sintetiza um item do feed de atividades
func NewActivity(rnd Random, now time.Time) domain.ActivityRecord {
	activity := domain.ActivityRecord{
		ID:      utils.GenerateTimeID(now, rnd.IntN),
		Type:    pick(rnd, domain.ActivityTypes),
		Message: pick(rnd, activityMessages),
		Time:    utils.TimeAgo(now, now),
	}

	if rnd.Float64() < 0.5 {
		activity.Value = "$" + strconv.Itoa(int(rnd.Float64()*5000+100))
	}

	return activity
}

// NewAlert sintetiza um alerta não lido com o instante informado
func NewAlert(rnd Random, now time.Time) domain.AlertRecord {
	return domain.AlertRecord{
		ID:        utils.GenerateTimeID(now, rnd.IntN),
		Type:      pick(rnd, domain.AlertTypes),
		Title:     pick(rnd, alertTitles),
		Message:   pick(rnd, alertMessages),
		Timestamp: now,
	}
}

// Generator serializa o acesso à fonte aleatória, já que os ticks rodam em
// goroutines diferentes e *rand.Rand não é seguro para uso concorrente.
type Generator struct {
	mu                  sync.Mutex
	rnd                 Random
	baseline            []domain.MetricRecord
	activityProbability float64
	alertProbability    float64
}

func NewGenerator(rnd Random, activityProbability, alertProbability float64) *Generator {
	return &Generator{
		rnd:                 rnd,
		activityProbability: activityProbability,
		alertProbability:    alertProbability,
	}
}

// SetBaseline define as métricas de referência das variações, normalmente
// as métricas do seed
func (g *Generator) SetBaseline(metrics []domain.MetricRecord) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.baseline = domain.CloneMetrics(metrics)
}

// NextMetrics usa a baseline definida. Sem baseline, a primeira coleção
// recebida passa a ser a referência.
func (g *Generator) NextMetrics(current []domain.MetricRecord) []domain.MetricRecord {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.baseline == nil {
		g.baseline = domain.CloneMetrics(current)
	}
	return NextMetrics(current, g.baseline, g.rnd)
}

// MaybeActivity sorteia se um novo item de atividade deve surgir neste tick
func (g *Generator) MaybeActivity(now time.Time) (domain.ActivityRecord, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !chance(g.rnd, g.activityProbability) {
		return domain.ActivityRecord{}, false
	}
	return NewActivity(g.rnd, now), true
}

// MaybeAlert sorteia se um novo alerta deve surgir neste tick
func (g *Generator) MaybeAlert(now time.Time) (domain.AlertRecord, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !chance(g.rnd, g.alertProbability) {
		return domain.AlertRecord{}, false
	}
	return NewAlert(g.rnd, now), true
}

// Noise devolve um valor em [0, 1), usado na variação do mapa de calor
func (g *Generator) Noise() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.rnd.Float64()
}

func chance(rnd Random, p float64) bool {
	if p <= 0 {
		return false
	}
	return rnd.Float64() < p
}
