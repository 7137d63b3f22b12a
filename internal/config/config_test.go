package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Ticker: Ticker{
			Enabled:              true,
			MetricsInterval:      10 * time.Second,
			ActivityInterval:     5 * time.Second,
			AlertInterval:        10 * time.Second,
			InitialLoadingDelay:  1500 * time.Millisecond,
			ManualRefreshLatency: time.Second,
		},
		Simulation: Simulation{ActivityProbability: 0.4, AlertProbability: 0.3},
		Buffers:    Buffers{ActivityCapacity: 20, AlertCapacity: 10},
		Query:      Query{PageSize: 5},
	}
}

func TestNewConfig_Defaults(t *testing.T) {

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Ticker.MetricsInterval)
	assert.Equal(t, 5*time.Second, cfg.Ticker.ActivityInterval)
	assert.Equal(t, 1500*time.Millisecond, cfg.Ticker.InitialLoadingDelay)
	assert.Equal(t, 0.4, cfg.Simulation.ActivityProbability)
	assert.Equal(t, 20, cfg.Buffers.ActivityCapacity)
	assert.Equal(t, 10, cfg.Buffers.AlertCapacity)
	assert.Equal(t, 5, cfg.Query.PageSize)
	assert.True(t, cfg.Ticker.Enabled)
}

func TestNewConfig_Environment(t *testing.T) {
	t.Setenv("METRICS_TICK_INTERVAL", "2s")
	t.Setenv("ALERT_PROBABILITY", "1")
	t.Setenv("RANDOM_SEED", "42")
	t.Setenv("TICKER_ENABLED", "false")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 2*time.Second, cfg.Ticker.MetricsInterval)
	assert.Equal(t, 1.0, cfg.Simulation.AlertProbability)
	assert.Equal(t, uint64(42), cfg.Simulation.RandomSeed)
	assert.False(t, cfg.Ticker.Enabled)
}

func TestNewConfig_InvalidEnvironment(t *testing.T) {
	t.Setenv("PAGE_SIZE", "0")

	_, err := NewConfig()
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "Configuração válida", mutate: func(*Config) {}},
		{name: "Tamanho de página zero", mutate: func(c *Config) { c.Query.PageSize = 0 }, wantErr: true},
		{name: "Tamanho de página negativo", mutate: func(c *Config) { c.Query.PageSize = -1 }, wantErr: true},
		{name: "Intervalo de métricas zero", mutate: func(c *Config) { c.Ticker.MetricsInterval = 0 }, wantErr: true},
		{name: "Intervalo de alertas negativo", mutate: func(c *Config) { c.Ticker.AlertInterval = -time.Second }, wantErr: true},
		{name: "Probabilidade acima de um", mutate: func(c *Config) { c.Simulation.ActivityProbability = 1.1 }, wantErr: true},
		{name: "Probabilidade negativa", mutate: func(c *Config) { c.Simulation.AlertProbability = -0.1 }, wantErr: true},
		{name: "Probabilidades nos limites", mutate: func(c *Config) {
			c.Simulation.ActivityProbability = 0
			c.Simulation.AlertProbability = 1
		}},
		{name: "Latência zero é permitida", mutate: func(c *Config) { c.Ticker.ManualRefreshLatency = 0 }},
		{name: "Latência negativa", mutate: func(c *Config) { c.Ticker.ManualRefreshLatency = -1 }, wantErr: true},
		{name: "Capacidade de alertas zero", mutate: func(c *Config) { c.Buffers.AlertCapacity = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
