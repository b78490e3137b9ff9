package sessionstore

import (
	"context"
	"sync"
	"time"

	"raahi/internal/models/agent_models"
)

// Store holds conversation contexts keyed by conversation id. Implementations
// must treat an idle-expired context as present; expiry policy is applied by
// the session service (and by each backend's own garbage collection).
type Store interface {
	Get(ctx context.Context, conversationID string) (*agent_models.ConversationContext, bool, error)
	Put(ctx context.Context, conversationID string, conversation *agent_models.ConversationContext) error
	Delete(ctx context.Context, conversationID string) error
}

// MemoryStore is the default in-process backend: a mutex-guarded map with a
// janitor goroutine that sweeps idle conversations. All context is lost on
// restart; configure the redis backend when that matters.
type MemoryStore struct {
	mu      sync.RWMutex
	data    map[string]*agent_models.ConversationContext
	timeout time.Duration
	sweep   time.Duration
	done    chan struct{}
	once    sync.Once
}

func NewMemoryStore(timeout, sweepInterval time.Duration) *MemoryStore {
	return &MemoryStore{
		data:    make(map[string]*agent_models.ConversationContext),
		timeout: timeout,
		sweep:   sweepInterval,
		done:    make(chan struct{}),
	}
}

func (s *MemoryStore) Get(_ context.Context, conversationID string) (*agent_models.ConversationContext, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	conversation, ok := s.data[conversationID]
	if !ok {
		return nil, false, nil
	}
	return conversation, true, nil
}

func (s *MemoryStore) Put(_ context.Context, conversationID string, conversation *agent_models.ConversationContext) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[conversationID] = conversation
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, conversationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, conversationID)
	return nil
}

// Start launches the janitor. Deletions race benignly with concurrent reads:
// a context recreated right after a sweep is equivalent to a fresh session.
func (s *MemoryStore) Start() {
	go func() {
		ticker := time.NewTicker(s.sweep)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.Cleanup(time.Now())
			case <-s.done:
				return
			}
		}
	}()
}

func (s *MemoryStore) Stop() {
	s.once.Do(func() { close(s.done) })
}

// Cleanup removes every conversation idle past the timeout and returns how
// many were dropped.
func (s *MemoryStore) Cleanup(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cleaned := 0
	for id, conversation := range s.data {
		if conversation.ExpiredAt(now, s.timeout) {
			delete(s.data, id)
			cleaned++
		}
	}
	return cleaned
}

// Len reports the number of stored conversations.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
