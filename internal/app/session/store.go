package session

import (
	"context"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"tripweaver/internal/app/observability/metrics"
)

// Store keeps live sessions in memory, keyed by the session cookie value.
// Sessions expire after the configured idle TTL; the expiry is pushed
// forward on every access.
type Store struct {
	// mu serializes lookup and creation. The cache is safe on its own,
	// but a bare miss-then-set would let concurrent first contacts
	// create one session each for the same ID.
	mu       sync.Mutex
	sessions *cache.Cache
	ttl      time.Duration
	logger   *zap.Logger
}

func NewStore(ttl time.Duration, logger *zap.Logger) *Store {
	return &Store{
		sessions: cache.New(ttl, 2*ttl),
		ttl:      ttl,
		logger:   logger,
	}
}

// Get returns the session for id, creating a fresh one in the Form state
// when none exists. Concurrent calls for the same ID always observe the
// same session.
func (st *Store) Get(id string) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	if found, ok := st.sessions.Get(id); ok {
		sess := found.(*Session)
		st.sessions.Set(id, sess, cache.DefaultExpiration)
		return sess
	}

	sess := New()
	st.sessions.Set(id, sess, cache.DefaultExpiration)
	st.logger.Debug("session created", zap.String("session_id", id))
	if m := metrics.Get(); m != nil {
		m.SessionsStarted.Add(context.Background(), 1)
	}
	return sess
}

// Len reports the number of live sessions, expired entries included
// until the next cleanup run.
func (st *Store) Len() int {
	return st.sessions.ItemCount()
}
