package session

import (
	"sync"

	"github.com/INFINITECH-OJT2025/ecomdelivery-go/entity"
)

// MemoryStore backs tests and throwaway sessions.
type MemoryStore struct {
	mu    sync.Mutex
	state state
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{state: newState()}
}

func (s *MemoryStore) Token(p Portal) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Tokens[p]
}

func (s *MemoryStore) SetToken(p Portal, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Tokens[p] = token
	return nil
}

func (s *MemoryStore) ClearToken(p Portal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.state.Tokens, p)
	return nil
}

func (s *MemoryStore) SelectedAddressID() uint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.SelectedAddressID
}

func (s *MemoryStore) SetSelectedAddressID(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SelectedAddressID = id
	return nil
}

func (s *MemoryStore) LastRiderLocation() *entity.RiderLocation {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.LastRiderLocation == nil {
		return nil
	}
	loc := *s.state.LastRiderLocation
	return &loc
}

func (s *MemoryStore) SetLastRiderLocation(loc entity.RiderLocation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.LastRiderLocation = &loc
	return nil
}
