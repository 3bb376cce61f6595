package store

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/capitalchronicles/internal/models"
)

// MemoryStore keeps the mapping in process memory only.
type MemoryStore struct {
	mu       sync.Mutex
	accounts models.Accounts
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{accounts: models.Accounts{}}
}

func (s *MemoryStore) Load(context.Context) (models.Accounts, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accounts.Clone(), nil
}

func (s *MemoryStore) Save(_ context.Context, accounts models.Accounts) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts = accounts.Clone()
	return nil
}

func (s *MemoryStore) Close() error { return nil }
