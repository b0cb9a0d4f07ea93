package credstore

import (
	"context"
	"sync"
)

// MemoryStore keeps the credential in process memory only. The session is
// lost on restart; useful for tests and for callers that explicitly opt
// out of durable storage.
type MemoryStore struct {
	mu         sync.RWMutex
	credential string
	present    bool
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Get(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.present {
		return "", ErrNoCredential
	}
	return s.credential, nil
}

func (s *MemoryStore) Set(ctx context.Context, credential string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.credential = credential
	s.present = true
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.credential = ""
	s.present = false
	return nil
}
