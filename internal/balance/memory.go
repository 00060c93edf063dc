package balance

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/splitledger/backend/internal/money"
)

// MemStore implements Store with an in-process map. Used by tests and
// available as a lightweight backend for local development.
type MemStore struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]*Balance
}

// NewMemStore creates an empty in-memory balance store
func NewMemStore() *MemStore {
	return &MemStore{
		nextID: 1,
		rows:   make(map[int64]*Balance),
	}
}

// Find returns the balance row for the exact direction, or nil
func (s *MemStore) Find(_ context.Context, projectID, fromUserID, toUserID int64) (*Balance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.rows {
		if b.ProjectID == projectID && b.FromUserID == fromUserID && b.ToUserID == toUserID {
			cp := *b
			return &cp, nil
		}
	}
	return nil, nil
}

// Insert creates a new balance row
func (s *MemStore) Insert(_ context.Context, b *Balance) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b.ID = s.nextID
	s.nextID++
	b.UpdatedAt = time.Now().UTC()
	cp := *b
	s.rows[b.ID] = &cp
	return nil
}

// UpdateAmount sets amount and baseAmount on an existing row
func (s *MemStore) UpdateAmount(_ context.Context, id int64, amount, baseAmount money.Cents) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.rows[id]
	if !ok {
		return fmt.Errorf("balance %d not found", id)
	}
	b.Amount = amount
	b.BaseAmount = baseAmount
	b.UpdatedAt = time.Now().UTC()
	return nil
}

// Delete removes a balance row
func (s *MemStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[id]; !ok {
		return fmt.Errorf("balance %d not found", id)
	}
	delete(s.rows, id)
	return nil
}

// ListByProject returns all balance rows for a project
func (s *MemStore) ListByProject(_ context.Context, projectID int64) ([]*Balance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var balances []*Balance
	for _, b := range s.rows {
		if b.ProjectID == projectID {
			cp := *b
			balances = append(balances, &cp)
		}
	}
	return balances, nil
}
