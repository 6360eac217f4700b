package cache

import (
	"context"
	"sync"
)

// Memory — in-memory хранилище, живёт в пределах одного процесса.
// Дефолтный вариант для API и CLI.
type Memory struct {
	mu sync.RWMutex
	m  map[string][]byte
}

var _ Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{m: make(map[string][]byte)}
}

func (s *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	if !ok {
		return nil, false, nil
	}
	// копия, чтобы вызывающий не мог испортить хранимое значение
	cp := make([]byte, len(v))
	copy(cp, v)
	return cp, true, nil
}

func (s *Memory) Set(_ context.Context, key string, val []byte) error {
	cp := make([]byte, len(val))
	copy(cp, val)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = cp
	return nil
}

func (s *Memory) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
	return nil
}
