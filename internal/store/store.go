package store

import (
	"context"
	"strconv"
	"sync"
)

// Store is a flat key/value string store. Values are whole JSON blobs; a Set
// replaces the previous value wholesale. There are no transactions and no
// cross-key guarantees.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Well-known keys. Progress records are keyed per user.
const (
	KeyUsers          = "users"
	KeyChallenges     = "challenges"
	KeyCurrentUser    = "currentUser"
	progressKeyPrefix = "progress_"
)

func ProgressKey(userID int64) string {
	return progressKeyPrefix + strconv.FormatInt(userID, 10)
}

// MemoryStore keeps everything in a map. Used by tests and the dev profile.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}
