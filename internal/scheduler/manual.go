package scheduler

import (
	"fmt"
	"sync"
	"time"
)

// ManualScheduler é um Scheduler com relógio simulado. As tarefas só disparam
// dentro de Advance, na goroutine de quem chama.
type ManualScheduler struct {
	mu      sync.Mutex
	now     time.Time
	jobs    []*manualJob
	running bool
	runs    map[string]int
}

func NewManualScheduler(start time.Time) *ManualScheduler {
	return &ManualScheduler{now: start, runs: make(map[string]int)}
}

type manualJob struct {
	name      string
	interval  time.Duration
	next      time.Time
	once      bool
	task      Task
	cancelled bool
	owner     *ManualScheduler
}

func (j *manualJob) Name() string { return j.name }

func (j *manualJob) Cancel() {
	j.owner.mu.Lock()
	defer j.owner.mu.Unlock()

	j.cancelled = true
}

func (m *ManualScheduler) schedule(interval time.Duration, name string, once bool, task Task) (Job, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrInvalidInterval)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	j := &manualJob{
		name:     name,
		interval: interval,
		next:     m.now.Add(interval),
		once:     once,
		task:     task,
		owner:    m,
	}
	m.jobs = append(m.jobs, j)
	return j, nil
}

func (m *ManualScheduler) Every(interval time.Duration, name string, task Task) (Job, error) {
	return m.schedule(interval, name, false, task)
}

func (m *ManualScheduler) After(delay time.Duration, name string, task Task) (Job, error) {
	return m.schedule(delay, name, true, task)
}

func (m *ManualScheduler) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.running = true
}

func (m *ManualScheduler) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.running = false
}

// Now devolve o instante simulado atual
func (m *ManualScheduler) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.now
}

// Runs devolve quantas vezes as tarefas com o nome informado dispararam
func (m *ManualScheduler) Runs(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.runs[name]
}

// Pending devolve quantos jobs ainda podem disparar
func (m *ManualScheduler) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	pending := 0
	for _, j := range m.jobs {
		if !j.cancelled {
			pending++
		}
	}
	return pending
}

// Advance avança o relógio em d, disparando em ordem cronológica todas as
// tarefas vencidas. Com o agendador parado o relógio avança sem disparos.
func (m *ManualScheduler) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)

	for {
		j := m.nextDueLocked(target)
		if j == nil {
			break
		}

		m.now = j.next
		if j.once {
			j.cancelled = true
		} else {
			j.next = j.next.Add(j.interval)
		}
		m.runs[j.name]++

		// a tarefa pode agendar ou cancelar jobs
		m.mu.Unlock()
		j.task()
		m.mu.Lock()
	}

	m.now = target
	m.mu.Unlock()
}

func (m *ManualScheduler) nextDueLocked(target time.Time) *manualJob {
	if !m.running {
		return nil
	}

	var due *manualJob
	for _, j := range m.jobs {
		if j.cancelled || j.next.After(target) {
			continue
		}
		if due == nil || j.next.Before(due.next) {
			due = j
		}
	}
	return due
}
