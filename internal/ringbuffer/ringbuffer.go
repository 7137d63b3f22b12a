// Package ringbuffer implementa uma fila circular de capacidade fixa, ordenada
// do mais novo para o mais antigo. Inserir além da capacidade descarta o mais antigo.
package ringbuffer

import "fmt"

// Buffer não é seguro para uso concorrente; o dono deve sincronizar o acesso.
type Buffer[T any] struct {
	items []T
	head  int // posição do item mais novo
	size  int
}

// New cria um buffer vazio. Capacidade não positiva é erro de configuração.
func New[T any](capacity int) *Buffer[T] {
	if capacity <= 0 {
		panic(fmt.Sprintf("ringbuffer: capacidade inválida %d", capacity))
	}
	return &Buffer[T]{items: make([]T, capacity)}
}

// FromSlice cria um buffer a partir de itens já ordenados do mais novo para o
// mais antigo. Itens além da capacidade são descartados pela cauda.
func FromSlice[T any](capacity int, newestFirst []T) *Buffer[T] {
	b := New[T](capacity)
	for i := len(newestFirst) - 1; i >= 0; i-- {
		b.Push(newestFirst[i])
	}
	return b
}

func (b *Buffer[T]) Len() int { return b.size }

func (b *Buffer[T]) Cap() int { return len(b.items) }

// Push insere v na frente. Quando o buffer está cheio, o item mais antigo é
// removido e devolvido com evicted=true.
func (b *Buffer[T]) Push(v T) (old T, evicted bool) {
	capacity := len(b.items)
	b.head = (b.head - 1 + capacity) % capacity

	if b.size == capacity {
		// com o buffer cheio, a nova posição da cabeça é a do item mais antigo
		old, evicted = b.items[b.head], true
	} else {
		b.size++
	}

	b.items[b.head] = v
	return old, evicted
}

// At devolve o i-ésimo item, sendo 0 o mais novo
func (b *Buffer[T]) At(i int) T {
	if i < 0 || i >= b.size {
		panic(fmt.Sprintf("ringbuffer: índice %d fora do intervalo [0, %d)", i, b.size))
	}
	return b.items[(b.head+i)%len(b.items)]
}

// Items devolve uma cópia dos itens, do mais novo para o mais antigo
func (b *Buffer[T]) Items() []T {
	out := make([]T, b.size)
	for i := range out {
		out[i] = b.At(i)
	}
	return out
}

// Update aplica fn a cada item que satisfaz match e devolve quantos foram alterados
func (b *Buffer[T]) Update(match func(T) bool, fn func(*T)) int {
	updated := 0
	for i := 0; i < b.size; i++ {
		idx := (b.head + i) % len(b.items)
		if match(b.items[idx]) {
			fn(&b.items[idx])
			updated++
		}
	}
	return updated
}

// Remove retira os itens que satisfazem match preservando a ordem dos demais
func (b *Buffer[T]) Remove(match func(T) bool) int {
	kept := make([]T, 0, b.size)
	for _, item := range b.Items() {
		if !match(item) {
			kept = append(kept, item)
		}
	}

	removed := b.size - len(kept)
	if removed == 0 {
		return 0
	}

	var zero T
	for i := range b.items {
		b.items[i] = zero
	}
	b.head, b.size = 0, 0
	for i := len(kept) - 1; i >= 0; i-- {
		b.Push(kept[i])
	}

	return removed
}
