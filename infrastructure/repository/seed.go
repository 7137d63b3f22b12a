package repository

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/analytics-hub/internal/domain"
	"github.com/vfg2006/analytics-hub/pkg/utils"
	"gopkg.in/yaml.v3"
)

var ErrInvalidSeed = errors.New("invalid seed file")

// SeedRepository fornece as coleções iniciais do painel
type SeedRepository interface {
	Load() (*domain.Seed, error)
}

type seedRepository struct {
	path  string
	now   func() time.Time
	noise func() float64
}

// NewSeedRepository cria o repositório. Sem path, usa apenas as coleções
// padrão; com path, as coleções presentes no YAML substituem as padrão.
func NewSeedRepository(path string, now func() time.Time, noise func() float64) SeedRepository {
	if now == nil {
		now = time.Now
	}
	return &seedRepository{path: path, now: now, noise: noise}
}

func (r *seedRepository) Load() (*domain.Seed, error) {
	seed := domain.DefaultSeed(r.now(), r.noise)
	if r.path == "" {
		return seed, nil
	}

	content, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler arquivo de seed %s: %w", r.path, err)
	}

	override := &domain.Seed{}
	if err := yaml.Unmarshal(content, override); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidSeed, r.path, err)
	}

	merge(seed, override)

	if err := assignMissingIDs(seed); err != nil {
		return nil, err
	}

	if err := validateSeed(seed); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"path":      r.path,
		"campaigns": len(seed.Campaigns),
		"metrics":   len(seed.Metrics),
		"alerts":    len(seed.Alerts),
	}).Info("Arquivo de seed carregado")

	return seed, nil
}

func replaceIfSet[T any](dst *[]T, src []T) {
	if len(src) > 0 {
		*dst = src
	}
}

func merge(dst, src *domain.Seed) {
	replaceIfSet(&dst.Metrics, src.Metrics)
	replaceIfSet(&dst.Campaigns, src.Campaigns)
	replaceIfSet(&dst.Activity, src.Activity)
	replaceIfSet(&dst.Alerts, src.Alerts)
	replaceIfSet(&dst.Insights, src.Insights)
	replaceIfSet(&dst.Predictive, src.Predictive)
	replaceIfSet(&dst.Heatmap, src.Heatmap)
	replaceIfSet(&dst.Geographic, src.Geographic)
	replaceIfSet(&dst.Competitors, src.Competitors)
	replaceIfSet(&dst.Charts.Line, src.Charts.Line)
	replaceIfSet(&dst.Charts.Bar, src.Charts.Bar)
	replaceIfSet(&dst.Charts.Donut, src.Charts.Donut)

	if src.Advanced != (domain.AdvancedMetrics{}) {
		dst.Advanced = src.Advanced
	}
	if src.Benchmarks != (domain.Benchmarks{}) {
		dst.Benchmarks = src.Benchmarks
	}
}

// assignMissingIDs gera IDs para atividades e alertas do arquivo que vieram
// sem um. As ações sobre alertas dependem do ID.
func assignMissingIDs(seed *domain.Seed) error {
	for i := range seed.Activity {
		if seed.Activity[i].ID != "" {
			continue
		}
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar ID de atividade: %w", err)
		}
		seed.Activity[i].ID = id
	}

	for i := range seed.Alerts {
		if seed.Alerts[i].ID != "" {
			continue
		}
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar ID de alerta: %w", err)
		}
		seed.Alerts[i].ID = id
	}

	return nil
}

func validateSeed(seed *domain.Seed) error {
	ids := make(map[string]struct{}, len(seed.Campaigns))
	for i, row := range seed.Campaigns {
		if row.ID == "" {
			return fmt.Errorf("%w: campaign %d has no id", ErrInvalidSeed, i)
		}
		if _, ok := ids[row.ID]; ok {
			return fmt.Errorf("%w: duplicated campaign id %s", ErrInvalidSeed, row.ID)
		}
		ids[row.ID] = struct{}{}

		if !row.Status.IsValid() {
			return fmt.Errorf("%w: campaign %s has unknown status %q", ErrInvalidSeed, row.ID, row.Status)
		}
		if row.Impressions < 0 || row.Clicks < 0 || row.Conversions < 0 || row.Spend < 0 || row.ROAS < 0 {
			return fmt.Errorf("%w: campaign %s has negative values", ErrInvalidSeed, row.ID)
		}
	}

	labels := make(map[string]struct{}, len(seed.Metrics))
	for _, m := range seed.Metrics {
		if _, ok := labels[m.Label]; ok {
			return fmt.Errorf("%w: duplicated metric label %s", ErrInvalidSeed, m.Label)
		}
		labels[m.Label] = struct{}{}
	}

	return nil
}
