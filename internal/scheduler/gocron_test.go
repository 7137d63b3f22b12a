package scheduler

import (
	"context"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/analytics-hub/internal/dashboard"
	"github.com/vfg2006/analytics-hub/internal/domain"
	"github.com/vfg2006/analytics-hub/internal/simulation"
	"go.uber.org/goleak"
)

func TestGocronScheduler_EveryAndAfter(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	s := NewGocronScheduler(time.UTC)

	var ticks atomic.Int32
	_, err := s.Every(20*time.Millisecond, "tick", func() { ticks.Add(1) })
	require.NoError(t, err)

	fired := make(chan struct{})
	var once sync.Once
	_, err = s.After(30*time.Millisecond, "once", func() { once.Do(func() { close(fired) }) })
	require.NoError(t, err)

	s.Start()

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("tarefa única não disparou")
	}
	assert.Eventually(t, func() bool { return ticks.Load() >= 2 }, 2*time.Second, 5*time.Millisecond)
	assert.Eventually(t, func() bool { return s.Jobs() == 1 }, time.Second, 5*time.Millisecond)

	s.Stop()
}

func TestGocronScheduler_InvalidInterval(t *testing.T) {
	s := NewGocronScheduler(nil)

	_, err := s.Every(0, "zero", func() {})
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = s.After(0, "zero", func() {})
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestRefreshTicker_GocronStopLeavesNoGoroutines(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	cfg := RefreshTickerConfig{
		Enabled:              true,
		MetricsInterval:      20 * time.Millisecond,
		ActivityInterval:     10 * time.Millisecond,
		AlertInterval:        20 * time.Millisecond,
		InitialLoadingDelay:  10 * time.Millisecond,
		ManualRefreshLatency: 10 * time.Millisecond,
	}

	store := dashboard.NewStore(domain.DefaultSeed(time.Now(), nil), dashboard.Options{})
	gen := simulation.NewGenerator(rand.New(rand.NewPCG(1, 1)), 1, 1)
	svc := NewRefreshTickerService(NewGocronScheduler(time.UTC), store, gen, cfg)

	require.NoError(t, svc.Start(context.Background()))
	assert.Eventually(t, func() bool { return svc.TickCount(TaskMetrics) >= 2 }, 2*time.Second, 5*time.Millisecond)

	svc.Stop()

	before := stateOf(store)
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, before, stateOf(store))
}
