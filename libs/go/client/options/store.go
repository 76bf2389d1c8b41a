package options

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cyphera/store-admin/libs/go/interfaces"
	"github.com/cyphera/store-admin/libs/go/logger"
	"github.com/cyphera/store-admin/libs/go/types/business"
	"github.com/pkg/errors"
)

// Store is a read-through cache over an OptionsBackend. Writes are applied to
// the cache immediately and persisted in the background; each option tracks
// whether a write is in flight and the error of its last failed write.
type Store struct {
	backend interfaces.OptionsBackend
	log     *logger.StructuredLogger

	mu      sync.RWMutex
	cache   map[string]interface{}
	pending map[string]int
	errs    map[string]error

	wg sync.WaitGroup
}

// NewStore creates a new options store over the given backend
func NewStore(backend interfaces.OptionsBackend) *Store {
	return &Store{
		backend: backend,
		log:     logger.NewStructuredLogger(logger.ComponentOptions),
		cache:   make(map[string]interface{}),
		pending: make(map[string]int),
		errs:    make(map[string]error),
	}
}

// GetOptions returns the values of the named options. Options that do not
// exist are absent from the result.
func (s *Store) GetOptions(ctx context.Context, names []string) (map[string]interface{}, error) {
	result := make(map[string]interface{}, len(names))
	var missing []string

	s.mu.RLock()
	for _, name := range names {
		if v, ok := s.cache[name]; ok {
			result[name] = v
		} else {
			missing = append(missing, name)
		}
	}
	s.mu.RUnlock()

	if len(missing) == 0 {
		return result, nil
	}

	loaded, err := s.backend.Load(ctx, missing)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load options")
	}

	s.mu.Lock()
	for name, v := range loaded {
		// a write queued while we were loading wins
		if cached, ok := s.cache[name]; ok {
			result[name] = cached
			continue
		}
		s.cache[name] = v
		result[name] = v
	}
	s.mu.Unlock()

	return result, nil
}

// UpdateOptions applies values to the cache and persists them in the
// background. It never blocks on the backend.
func (s *Store) UpdateOptions(ctx context.Context, values map[string]interface{}) error {
	if len(values) == 0 {
		return nil
	}

	snapshot := make(map[string]interface{}, len(values))
	for k, v := range values {
		snapshot[k] = v
	}
	names := sortedNames(snapshot)

	s.mu.Lock()
	for _, name := range names {
		s.cache[name] = snapshot[name]
		s.pending[name]++
		delete(s.errs, name)
	}
	s.mu.Unlock()

	writeCtx := context.WithoutCancel(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		start := time.Now()
		err := s.backend.Save(writeCtx, snapshot)
		s.finishWrite(names, err)
		s.log.LogOptionWrite(names, time.Since(start), err)
	}()

	return nil
}

// SaveOptions writes values and waits for the backend
func (s *Store) SaveOptions(ctx context.Context, values map[string]interface{}) error {
	if len(values) == 0 {
		return nil
	}
	names := sortedNames(values)

	s.mu.Lock()
	for _, name := range names {
		s.pending[name]++
	}
	s.mu.Unlock()

	start := time.Now()
	err := s.backend.Save(ctx, values)
	if err == nil {
		s.mu.Lock()
		for _, name := range names {
			s.cache[name] = values[name]
		}
		s.mu.Unlock()
	}
	s.finishWrite(names, err)
	s.log.LogOptionWrite(names, time.Since(start), err)

	return errors.Wrap(err, "failed to save options")
}

func (s *Store) finishWrite(names []string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, name := range names {
		s.pending[name]--
		if s.pending[name] <= 0 {
			delete(s.pending, name)
		}
		if err != nil {
			s.errs[name] = err
			// drop the optimistic value so the next read sees what was persisted
			delete(s.cache, name)
		}
	}
}

// RequestState reports whether a write touching any of the named options is
// in flight, and the last write error recorded for them.
func (s *Store) RequestState(names []string) business.OptionRequestState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var state business.OptionRequestState
	for _, name := range names {
		if s.pending[name] > 0 {
			state.Requesting = true
		}
		if err, ok := s.errs[name]; ok && state.Err == nil {
			state.Err = err
		}
	}
	return state
}

// Wait blocks until every queued write has finished
func (s *Store) Wait() {
	s.wg.Wait()
}

func sortedNames(values map[string]interface{}) []string {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
