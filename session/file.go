package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"sync"

	"github.com/INFINITECH-OJT2025/ecomdelivery-go/entity"
)

// FileStore persists session state as one JSON file. Writes replace the
// whole file; concurrent writers get last-write-wins, same as the
// browser storage it replaces.
type FileStore struct {
	mu    sync.Mutex
	path  string
	state state
}

func OpenFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path, state: newState()}
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, &s.state); err != nil {
		// corrupt file: start over rather than refuse to run
		s.state = newState()
	}
	if s.state.Tokens == nil {
		s.state.Tokens = make(map[Portal]string)
	}
	return s, nil
}

func (s *FileStore) persist() error {
	raw, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o600)
}

func (s *FileStore) Token(p Portal) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Tokens[p]
}

func (s *FileStore) SetToken(p Portal, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Tokens[p] = token
	return s.persist()
}

func (s *FileStore) ClearToken(p Portal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.state.Tokens, p)
	return s.persist()
}

func (s *FileStore) SelectedAddressID() uint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.SelectedAddressID
}

func (s *FileStore) SetSelectedAddressID(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SelectedAddressID = id
	return s.persist()
}

func (s *FileStore) LastRiderLocation() *entity.RiderLocation {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.LastRiderLocation == nil {
		return nil
	}
	loc := *s.state.LastRiderLocation
	return &loc
}

func (s *FileStore) SetLastRiderLocation(loc entity.RiderLocation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.LastRiderLocation = &loc
	return s.persist()
}
