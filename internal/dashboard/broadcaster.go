package dashboard

import (
	"sync"
	"time"
)

// EventKind identifica qual coleção mudou
type EventKind string

const (
	EventMetrics  EventKind = "metrics"
	EventActivity EventKind = "activity"
	EventAlerts   EventKind = "alerts"
	EventLoading  EventKind = "loading"

	// EventSnapshot é enviado uma vez a cada novo assinante do stream ao vivo
	EventSnapshot EventKind = "snapshot"
)

// Event é publicado após cada mutação do estado
type Event struct {
	Kind EventKind `json:"kind"`
	Data any       `json:"data"`
	At   time.Time `json:"at"`
}

// Broadcaster distribui eventos para os assinantes. Um assinante lento perde
// eventos em vez de bloquear quem publica.
type Broadcaster struct {
	mu          sync.Mutex
	subscribers map[int]chan Event
	next        int
	dropped     uint64
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subscribers: make(map[int]chan Event)}
}

// Subscribe registra um assinante. A função devolvida cancela a assinatura e
// fecha o canal; pode ser chamada mais de uma vez.
func (b *Broadcaster) Subscribe(buffer int) (<-chan Event, func()) {
	if buffer < 1 {
		buffer = 1
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	ch := make(chan Event, buffer)
	b.subscribers[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()

			delete(b.subscribers, id)
			close(ch)
		})
	}
}

func (b *Broadcaster) Publish(e Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ch := range b.subscribers {
		select {
		case ch <- e:
		default:
			b.dropped++
		}
	}
}

// Subscribers devolve o número de assinantes ativos
func (b *Broadcaster) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.subscribers)
}

// Dropped devolve quantos eventos foram descartados por assinantes lentos
func (b *Broadcaster) Dropped() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.dropped
}
