package simulation

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/analytics-hub/internal/domain"
)

// fixedRandom devolve sempre os mesmos valores
type fixedRandom struct {
	f float64
	n int
}

func (r fixedRandom) Float64() float64 { return r.f }
func (r fixedRandom) IntN(n int) int {
	if r.n >= n {
		return n - 1
	}
	return r.n
}

func parseThousands(t *testing.T, s string) int {
	t.Helper()
	n, err := strconv.Atoi(strings.ReplaceAll(strings.TrimPrefix(s, "$"), ",", ""))
	require.NoError(t, err)
	return n
}

func TestNextMetrics_Ranges(t *testing.T) {
	rnd := rand.New(rand.NewPCG(7, 11))
	seed := domain.DefaultMetrics()
	metrics := domain.DefaultMetrics()

	for i := 0; i < 200; i++ {
		previous := metrics
		metrics = NextMetrics(metrics, seed, rnd)
		require.Len(t, metrics, len(previous))

		for j, m := range metrics {
			assert.Equal(t, previous[j].Label, m.Label)
			assert.InDelta(t, seed[j].Change, m.Change, 1.05)
			assert.Equal(t, domain.TrendFor(m.Change), m.Trend)

			switch m.Label {
			case domain.MetricTotalRevenue:
				v := parseThousands(t, m.Value)
				assert.GreaterOrEqual(t, v, BaseRevenue)
				assert.Less(t, v, BaseRevenue+RevenueSpread)
			case domain.MetricActiveUsers:
				v := parseThousands(t, m.Value)
				assert.GreaterOrEqual(t, v, BaseActiveUsers)
				assert.Less(t, v, BaseActiveUsers+ActiveUsersStep)
			case domain.MetricConversions:
				v := parseThousands(t, m.Value)
				assert.GreaterOrEqual(t, v, BaseConversions)
				assert.Less(t, v, BaseConversions+ConversionsStep)
			case domain.MetricGrowthRate:
				v, err := strconv.ParseFloat(strings.TrimSuffix(m.Value, "%"), 64)
				require.NoError(t, err)
				assert.InDelta(t, BaseGrowthRate, v, 1.05)
			}
		}
	}
}

func TestNextMetrics_Deterministic(t *testing.T) {
	a := NextMetrics(domain.DefaultMetrics(), domain.DefaultMetrics(), rand.New(rand.NewPCG(1, 2)))
	b := NextMetrics(domain.DefaultMetrics(), domain.DefaultMetrics(), rand.New(rand.NewPCG(1, 2)))
	assert.Equal(t, a, b)
}

func TestNextMetrics_FixedValues(t *testing.T) {
	// Float64 = 0.75 -> jitter = 0.5
	next := NextMetrics(domain.DefaultMetrics(), domain.DefaultMetrics(), fixedRandom{f: 0.75, n: 3})

	assert.Equal(t, "$2,922,950", next[0].Value)
	assert.Equal(t, 13.0, next[0].Change)
	assert.Equal(t, "94,585", next[1].Value)
	assert.Equal(t, 8.7, next[1].Change)
	assert.Equal(t, "12,850", next[2].Value)
	assert.Equal(t, -1.9, next[2].Change)
	assert.Equal(t, domain.TrendDown, next[2].Trend)
	assert.Equal(t, "23.9%", next[3].Value)
	assert.Equal(t, 6.2, next[3].Change)
}

func TestNextMetrics_KeepsInputAndUnknownLabels(t *testing.T) {
	current := []domain.MetricRecord{{Label: "Custom", Value: "42", Change: -0.2, Trend: domain.TrendDown}}

	next := NextMetrics(current, nil, fixedRandom{f: 1})

	assert.Equal(t, "42", next[0].Value)
	assert.Equal(t, 0.8, next[0].Change)
	assert.Equal(t, domain.TrendUp, next[0].Trend)
	assert.Equal(t, -0.2, current[0].Change)
}

func TestNextMetrics_ChangeAnchoredToBaseline(t *testing.T) {
	// Mesmo com a variação atual distante, a próxima parte da base
	current := domain.DefaultMetrics()
	current[0].Change = 60

	next := NextMetrics(current, domain.DefaultMetrics(), fixedRandom{f: 0.75})

	assert.Equal(t, 13.0, next[0].Change)
}

func TestGenerator_ChangeStaysNearBaseline(t *testing.T) {
	tests := []struct {
		name     string
		baseline []domain.MetricRecord
	}{
		{name: "Baseline capturada na primeira chamada"},
		{name: "Baseline explícita", baseline: domain.DefaultMetrics()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGenerator(rand.New(rand.NewPCG(42, 7)), 0, 0)
			if tt.baseline != nil {
				g.SetBaseline(tt.baseline)
			}

			seed := domain.DefaultMetrics()
			metrics := domain.DefaultMetrics()

			// um dia de ticks a cada 10s
			for i := 0; i < 8640; i++ {
				metrics = g.NextMetrics(metrics)
				for j, m := range metrics {
					require.InDelta(t, seed[j].Change, m.Change, 1.05, "tick %d, %s", i, m.Label)
				}
			}
		})
	}
}

func TestNewActivity(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		rnd       Random
		wantValue string
	}{
		{name: "Com valor", rnd: fixedRandom{f: 0.2, n: 1}, wantValue: "$1100"},
		{name: "Sem valor", rnd: fixedRandom{f: 0.9, n: 1}, wantValue: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewActivity(tt.rnd, now)

			assert.Equal(t, domain.ActivityCampaign, a.Type)
			assert.Equal(t, activityMessages[1], a.Message)
			assert.Equal(t, tt.wantValue, a.Value)
			assert.Equal(t, "Just now", a.Time)
			assert.True(t, strings.HasPrefix(a.ID, strconv.FormatInt(now.UnixMilli(), 10)))
		})
	}
}

func TestNewAlert(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	a := NewAlert(fixedRandom{n: 2}, now)

	assert.Equal(t, domain.AlertInfo, a.Type)
	assert.Equal(t, alertTitles[2], a.Title)
	assert.Equal(t, alertMessages[2], a.Message)
	assert.Equal(t, now, a.Timestamp)
	assert.False(t, a.IsRead)
}

func TestGenerator_SameSeedSameRecords(t *testing.T) {
	now := time.Date(2024, 1, 16, 12, 0, 0, 0, time.UTC)
	a := NewGenerator(rand.New(rand.NewPCG(9, 9)), 1, 1)
	b := NewGenerator(rand.New(rand.NewPCG(9, 9)), 1, 1)

	for i := 0; i < 20; i++ {
		activityA, _ := a.MaybeActivity(now)
		activityB, _ := b.MaybeActivity(now)
		assert.Equal(t, activityA, activityB)

		alertA, _ := a.MaybeAlert(now)
		alertB, _ := b.MaybeAlert(now)
		assert.Equal(t, alertA, alertB)
	}
}

func TestGenerator_Probabilities(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name         string
		rnd          Random
		activityP    float64
		alertP       float64
		wantActivity bool
		wantAlert    bool
	}{
		{name: "Sorteio abaixo da probabilidade", rnd: fixedRandom{f: 0.1}, activityP: 0.4, alertP: 0.3, wantActivity: true, wantAlert: true},
		{name: "Sorteio entre as probabilidades", rnd: fixedRandom{f: 0.35}, activityP: 0.4, alertP: 0.3, wantActivity: true, wantAlert: false},
		{name: "Sorteio acima das probabilidades", rnd: fixedRandom{f: 0.5}, activityP: 0.4, alertP: 0.3},
		{name: "Probabilidade zero", rnd: fixedRandom{f: 0}, activityP: 0, alertP: 0},
		{name: "Probabilidade um", rnd: fixedRandom{f: 0.99}, activityP: 1, alertP: 1, wantActivity: true, wantAlert: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGenerator(tt.rnd, tt.activityP, tt.alertP)

			_, gotActivity := g.MaybeActivity(now)
			_, gotAlert := g.MaybeAlert(now)

			assert.Equal(t, tt.wantActivity, gotActivity)
			assert.Equal(t, tt.wantAlert, gotAlert)
		})
	}
}
