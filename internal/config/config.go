package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Ticker     Ticker     `mapstructure:",squash"`
	Simulation Simulation `mapstructure:",squash"`
	Buffers    Buffers    `mapstructure:",squash"`
	Query      Query      `mapstructure:",squash"`
	Seed       Seed       `mapstructure:",squash"`
	Live       Live       `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Server struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
}

type Ticker struct {
	Enabled              bool          `mapstructure:"ticker_enabled"`
	MetricsInterval      time.Duration `mapstructure:"metrics_tick_interval"`
	ActivityInterval     time.Duration `mapstructure:"activity_tick_interval"`
	AlertInterval        time.Duration `mapstructure:"alert_tick_interval"`
	InitialLoadingDelay  time.Duration `mapstructure:"initial_loading_delay"`
	ManualRefreshLatency time.Duration `mapstructure:"manual_refresh_latency"`
}

type Simulation struct {
	ActivityProbability float64 `mapstructure:"activity_probability"`
	AlertProbability    float64 `mapstructure:"alert_probability"`
	RandomSeed          uint64  `mapstructure:"random_seed"` // 0 usa uma semente aleatória
}

type Buffers struct {
	ActivityCapacity int `mapstructure:"activity_capacity"`
	AlertCapacity    int `mapstructure:"alert_capacity"`
}

type Query struct {
	PageSize int `mapstructure:"page_size"`
}

type Seed struct {
	File string `mapstructure:"seed_file"`
}

type Live struct {
	PingInterval time.Duration `mapstructure:"live_ping_interval"`
	WriteTimeout time.Duration `mapstructure:"live_write_timeout"`
	BufferSize   int           `mapstructure:"live_buffer_size"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("SHUTDOWN_TIMEOUT", 10*time.Second)
	viper.SetDefault("ALLOWED_ORIGINS", []string{"*"})

	// Defaults do ticker de atualização
	viper.SetDefault("TICKER_ENABLED", true)
	viper.SetDefault("METRICS_TICK_INTERVAL", 10*time.Second)        // Métricas a cada 10 segundos
	viper.SetDefault("ACTIVITY_TICK_INTERVAL", 5*time.Second)        // Atividades a cada 5 segundos
	viper.SetDefault("ALERT_TICK_INTERVAL", 10*time.Second)          // Alertas a cada 10 segundos
	viper.SetDefault("INITIAL_LOADING_DELAY", 1500*time.Millisecond) // Carregamento inicial simulado
	viper.SetDefault("MANUAL_REFRESH_LATENCY", time.Second)          // Latência simulada da atualização manual

	viper.SetDefault("ACTIVITY_PROBABILITY", 0.4)
	viper.SetDefault("ALERT_PROBABILITY", 0.3)
	viper.SetDefault("RANDOM_SEED", 0)

	viper.SetDefault("ACTIVITY_CAPACITY", 20)
	viper.SetDefault("ALERT_CAPACITY", 10)
	viper.SetDefault("PAGE_SIZE", 5)

	viper.SetDefault("SEED_FILE", "")

	viper.SetDefault("LIVE_PING_INTERVAL", 30*time.Second)
	viper.SetDefault("LIVE_WRITE_TIMEOUT", 10*time.Second)
	viper.SetDefault("LIVE_BUFFER_SIZE", 16)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_ENV", "development")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate rejeita configurações que produziriam paginação ou agendamento incorretos
func (c *Config) Validate() error {
	var errs []error

	if c.Query.PageSize <= 0 {
		errs = append(errs, fmt.Errorf("page_size must be positive, got %d", c.Query.PageSize))
	}

	intervals := []struct {
		name  string
		value time.Duration
	}{
		{"metrics_tick_interval", c.Ticker.MetricsInterval},
		{"activity_tick_interval", c.Ticker.ActivityInterval},
		{"alert_tick_interval", c.Ticker.AlertInterval},
	}
	for _, i := range intervals {
		if i.value <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %s", i.name, i.value))
		}
	}

	if c.Ticker.InitialLoadingDelay < 0 {
		errs = append(errs, fmt.Errorf("initial_loading_delay must not be negative, got %s", c.Ticker.InitialLoadingDelay))
	}
	if c.Ticker.ManualRefreshLatency < 0 {
		errs = append(errs, fmt.Errorf("manual_refresh_latency must not be negative, got %s", c.Ticker.ManualRefreshLatency))
	}

	probabilities := []struct {
		name  string
		value float64
	}{
		{"activity_probability", c.Simulation.ActivityProbability},
		{"alert_probability", c.Simulation.AlertProbability},
	}
	for _, p := range probabilities {
		if p.value < 0 || p.value > 1 {
			errs = append(errs, fmt.Errorf("%s must be within [0, 1], got %v", p.name, p.value))
		}
	}

	if c.Buffers.ActivityCapacity <= 0 {
		errs = append(errs, fmt.Errorf("activity_capacity must be positive, got %d", c.Buffers.ActivityCapacity))
	}
	if c.Buffers.AlertCapacity <= 0 {
		errs = append(errs, fmt.Errorf("alert_capacity must be positive, got %d", c.Buffers.AlertCapacity))
	}

	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
