package scheduler

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
)

// GocronScheduler implementa Scheduler sobre o gocron
type GocronScheduler struct {
	scheduler *gocron.Scheduler
}

func NewGocronScheduler(loc *time.Location) *GocronScheduler {
	if loc == nil {
		loc = time.Local
	}

	return &GocronScheduler{scheduler: gocron.NewScheduler(loc)}
}

func (g *GocronScheduler) Every(interval time.Duration, name string, task Task) (Job, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrInvalidInterval)
	}

	job, err := g.scheduler.Every(interval).WaitForSchedule().Tag(name).Do(task)
	if err != nil {
		return nil, fmt.Errorf("erro ao agendar %s: %w", name, err)
	}

	return &gocronJob{name: name, job: job, scheduler: g.scheduler}, nil
}

func (g *GocronScheduler) After(delay time.Duration, name string, task Task) (Job, error) {
	if delay <= 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrInvalidInterval)
	}

	j := &gocronJob{name: name, scheduler: g.scheduler}

	job, err := g.scheduler.Every(delay).WaitForSchedule().LimitRunsTo(1).Tag(name).Do(func() {
		task()
		j.Cancel()
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao agendar %s: %w", name, err)
	}

	j.mu.Lock()
	j.job = job
	j.mu.Unlock()

	return j, nil
}

func (g *GocronScheduler) Start() {
	g.scheduler.StartAsync()
}

// Stop para o agendador e aguarda as tarefas em execução
func (g *GocronScheduler) Stop() {
	g.scheduler.Stop()
}

// Jobs devolve quantos jobs ainda estão agendados
func (g *GocronScheduler) Jobs() int {
	return g.scheduler.Len()
}

type gocronJob struct {
	mu        sync.Mutex
	name      string
	job       *gocron.Job
	scheduler *gocron.Scheduler
	cancelled bool
}

func (j *gocronJob) Name() string { return j.name }

func (j *gocronJob) Cancel() {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.cancelled || j.job == nil {
		return
	}
	j.cancelled = true
	j.scheduler.RemoveByReference(j.job)
}
