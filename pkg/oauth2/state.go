package oauth2

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/code1iners/ce1pers/pkg/cache"
)

var (
	ErrStateNotFound = errors.New("state not found")
	ErrStateExpired  = errors.New("state expired")
	ErrStateExists   = errors.New("state already issued")
)

// StateStorage keeps the values issued with an authorization URL until the
// callback consumer claims them. Consume is one-time and Save refuses a state
// that is still live.
type StateStorage interface {
	Save(ctx context.Context, state string, data StateData) error
	Consume(ctx context.Context, state string) (*StateData, error)
	Close() error
}

// StateData holds the security parameters issued for one login attempt.
type StateData struct {
	Provider     string    `json:"provider"`
	Nonce        string    `json:"nonce,omitempty"`
	CodeVerifier string    `json:"code_verifier,omitempty"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// InMemoryStorage implements StateStorage for single-instance deployments.
type InMemoryStorage struct {
	mu   sync.RWMutex
	data map[string]*StateData
	done chan struct{}
	once sync.Once
}

func NewInMemoryStorage() *InMemoryStorage {
	s := &InMemoryStorage{
		data: make(map[string]*StateData),
		done: make(chan struct{}),
	}
	go s.cleanupRoutine()
	return s
}

func (s *InMemoryStorage) Save(_ context.Context, state string, data StateData) error {
	if state == "" {
		return fmt.Errorf("%w: state", ErrMissingField)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.data[state]; ok && time.Now().Before(existing.ExpiresAt) {
		return ErrStateExists
	}
	s.data[state] = &data
	return nil
}

func (s *InMemoryStorage) Consume(_ context.Context, state string) (*StateData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, exists := s.data[state]
	if !exists {
		return nil, ErrStateNotFound
	}
	delete(s.data, state)

	if time.Now().After(data.ExpiresAt) {
		return nil, ErrStateExpired
	}
	return data, nil
}

// Close stops the cleanup goroutine. It is safe to call more than once.
func (s *InMemoryStorage) Close() error {
	s.once.Do(func() {
		close(s.done)
	})
	return nil
}

func (s *InMemoryStorage) cleanupRoutine() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.removeExpired()
		case <-s.done:
			return
		}
	}
}

func (s *InMemoryStorage) removeExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for state, data := range s.data {
		if now.After(data.ExpiresAt) {
			delete(s.data, state)
		}
	}
}

// CacheStorage implements StateStorage on top of a shared cache such as Redis,
// so any instance behind a load balancer can serve the consume call.
type CacheStorage struct {
	cache  cache.Cache
	prefix string
}

func NewCacheStorage(c cache.Cache) *CacheStorage {
	return &CacheStorage{cache: c, prefix: "oauth2:state:"}
}

func (s *CacheStorage) key(state string) string {
	return s.prefix + state
}

func (s *CacheStorage) Save(ctx context.Context, state string, data StateData) error {
	if state == "" {
		return fmt.Errorf("%w: state", ErrMissingField)
	}

	ttl := time.Until(data.ExpiresAt)
	if ttl <= 0 {
		return ErrStateExpired
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	ok, err := s.cache.SetNX(ctx, s.key(state), string(raw), ttl)
	if err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}
	if !ok {
		return ErrStateExists
	}
	return nil
}

func (s *CacheStorage) Consume(ctx context.Context, state string) (*StateData, error) {
	raw, err := s.cache.GetDel(ctx, s.key(state))
	if errors.Is(err, cache.ErrCacheMiss) {
		return nil, ErrStateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	var data StateData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal state: %w", err)
	}

	if time.Now().After(data.ExpiresAt) {
		return nil, ErrStateExpired
	}
	return &data, nil
}

// Close is a no-op; the cache connection is owned by the caller.
func (s *CacheStorage) Close() error {
	return nil
}
