package options

import (
	"context"
	"sync"
)

// MemoryBackend keeps options in process memory. It backs the local stage
// and tests.
type MemoryBackend struct {
	mu     sync.RWMutex
	values map[string]interface{}
}

// NewMemoryBackend creates a backend seeded with the given values
func NewMemoryBackend(seed map[string]interface{}) *MemoryBackend {
	values := make(map[string]interface{}, len(seed))
	for k, v := range seed {
		values[k] = v
	}
	return &MemoryBackend{values: values}
}

func (b *MemoryBackend) Load(_ context.Context, names []string) (map[string]interface{}, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make(map[string]interface{}, len(names))
	for _, name := range names {
		if v, ok := b.values[name]; ok {
			out[name] = v
		}
	}
	return out, nil
}

func (b *MemoryBackend) Save(_ context.Context, values map[string]interface{}) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for k, v := range values {
		b.values[k] = v
	}
	return nil
}

// Ping always succeeds
func (b *MemoryBackend) Ping(context.Context) error {
	return nil
}
