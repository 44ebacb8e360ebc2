// Package lock implementa o registro de locks por sessão usado pelo fluxo de jogo.
package lock

import (
	"context"
	"sync"

	"github.com/cespare/xxhash/v2"
)

const defaultShards = 32

// entry é o lock binário de uma chave. queue guarda os waiters em ordem de chegada.
type entry struct {
	held  bool
	queue []chan struct{}
}

type shard struct {
	mu      sync.Mutex
	entries map[string]*entry
}

// Manager é um mapa particionado de locks FIFO, criados no primeiro uso e
// descartados quando não resta nenhum waiter.
type Manager struct {
	shards []*shard
}

// NewManager cria um Manager com n partições (n <= 0 usa o padrão).
func NewManager(n int) *Manager {
	if n <= 0 {
		n = defaultShards
	}
	m := &Manager{shards: make([]*shard, n)}
	for i := range m.shards {
		m.shards[i] = &shard{entries: make(map[string]*entry)}
	}
	return m
}

func (m *Manager) shardFor(key string) *shard {
	return m.shards[xxhash.Sum64String(key)%uint64(len(m.shards))]
}

// Lock obtém o lock da chave, respeitando a ordem de chegada.
func (m *Manager) Lock(ctx context.Context, key string) (func(), error) {
	sh := m.shardFor(key)

	sh.mu.Lock()
	e, ok := sh.entries[key]
	if !ok {
		e = &entry{}
		sh.entries[key] = e
	}
	if !e.held {
		e.held = true
		sh.mu.Unlock()
		return m.releaser(sh, key), nil
	}
	wait := make(chan struct{})
	e.queue = append(e.queue, wait)
	sh.mu.Unlock()

	select {
	case <-wait:
		return m.releaser(sh, key), nil
	case <-ctx.Done():
		sh.mu.Lock()
		for i, ch := range e.queue {
			if ch == wait {
				e.queue = append(e.queue[:i], e.queue[i+1:]...)
				sh.mu.Unlock()
				return nil, ctx.Err()
			}
		}
		sh.mu.Unlock()
		// O lock foi entregue enquanto o contexto expirava: repassa adiante.
		m.release(sh, key)
		return nil, ctx.Err()
	}
}

func (m *Manager) releaser(sh *shard, key string) func() {
	var once sync.Once
	return func() {
		once.Do(func() { m.release(sh, key) })
	}
}

func (m *Manager) release(sh *shard, key string) {
	sh.mu.Lock()
	defer sh.mu.Unlock()

	e, ok := sh.entries[key]
	if !ok {
		return
	}
	if len(e.queue) > 0 {
		next := e.queue[0]
		e.queue = e.queue[1:]
		close(next)
		return
	}
	e.held = false
	delete(sh.entries, key)
}

// Len retorna quantas chaves têm lock ativo (usado em testes e métricas).
func (m *Manager) Len() int {
	n := 0
	for _, sh := range m.shards {
		sh.mu.Lock()
		n += len(sh.entries)
		sh.mu.Unlock()
	}
	return n
}
