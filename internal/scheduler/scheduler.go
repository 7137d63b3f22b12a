package scheduler

import (
	"errors"
	"time"
)

var ErrInvalidInterval = errors.New("interval must be positive")

// Task é a função executada a cada disparo de um job
type Task func()

// Job é o handle de uma tarefa agendada. Depois que Cancel retorna a tarefa
// não é mais disparada.
type Job interface {
	Name() string
	Cancel()
}

// Scheduler abstrai o agendamento de tarefas periódicas e únicas
type Scheduler interface {
	// Every dispara task a cada interval, começando após o primeiro intervalo
	Every(interval time.Duration, name string, task Task) (Job, error)
	// After dispara task uma única vez após delay
	After(delay time.Duration, name string, task Task) (Job, error)
	Start()
	Stop()
}
