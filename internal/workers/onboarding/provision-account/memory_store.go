// internal/workers/onboarding/provision-account/memory_store.go
package provisionaccount

import (
	"context"
	"sort"
	"sync"
	"time"

	"onboarding-workers/internal/models"
)

// MemoryStore is a process-local Store for tests and single-node runs.
type MemoryStore struct {
	mu       sync.RWMutex
	accounts map[string]models.BankAccount
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{accounts: make(map[string]models.BankAccount)}
}

func (s *MemoryStore) Create(_ context.Context, a models.BankAccount) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[a.AccountNumber]; ok {
		return ErrAccountExists
	}
	s.accounts[a.AccountNumber] = a
	return nil
}

func (s *MemoryStore) Put(_ context.Context, a models.BankAccount) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.accounts[a.AccountNumber] = a
	return nil
}

func (s *MemoryStore) Get(_ context.Context, accountNumber string) (*models.BankAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.accounts[accountNumber]
	if !ok {
		return nil, ErrAccountNotFound
	}
	return &a, nil
}

func (s *MemoryStore) UpdateStatus(_ context.Context, accountNumber string, status models.AccountStatus, modified time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.accounts[accountNumber]
	if !ok {
		return ErrAccountNotFound
	}
	a.Status = status
	a.LastModified = modified
	s.accounts[accountNumber] = a
	return nil
}

func (s *MemoryStore) ListByCustomer(_ context.Context, customerID string) ([]models.BankAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.BankAccount
	for _, a := range s.accounts {
		if a.CustomerID == customerID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].AccountNumber < out[j].AccountNumber
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
