// event-app10/internal/session/store.go

// Package session remembers which member a browser session selected on the
// name picker. The value is keyed by an opaque session id cookie and lives in
// Redis when one is configured, otherwise in process memory.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "session:name:"
	ttl       = 30 * 24 * time.Hour
)

// Store maps session ids to selected member names.
type Store struct {
	rdb *redis.Client

	mu  sync.Mutex
	mem map[string]string
}

// NewStore builds a store. rdb may be nil, in which case values are kept in
// memory and lost on restart — acceptable for a single-process deployment.
func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb, mem: make(map[string]string)}
}

// Name returns the member name selected by this session, if any.
func (s *Store) Name(ctx context.Context, sessionID string) (string, bool) {
	if sessionID == "" {
		return "", false
	}
	if s.rdb != nil {
		v, err := s.rdb.Get(ctx, keyPrefix+sessionID).Result()
		if err != nil {
			return "", false
		}
		return v, true
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.mem[sessionID]
	return v, ok
}

// SetName records the member selection for this session.
func (s *Store) SetName(ctx context.Context, sessionID, name string) {
	if sessionID == "" {
		return
	}
	if s.rdb != nil {
		s.rdb.Set(ctx, keyPrefix+sessionID, name, ttl)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.mem[sessionID] = name
}
