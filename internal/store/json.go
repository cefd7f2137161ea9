package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/mvoronov/mathmage/internal/profile"
)

type jsonState struct {
	Profiles map[string]*profile.UserProfile `json:"profiles"`
}

// JSONStore persists profiles in a single JSON file. Useful for portable
// installs and for inspecting data by hand.
type JSONStore struct {
	filePath string
	mu       sync.RWMutex
	state    jsonState
}

// OpenJSON loads (or initializes) the JSON store at filePath.
func OpenJSON(filePath string) (*JSONStore, error) {
	if err := EnsureDir(filePath); err != nil {
		return nil, fmt.Errorf("ensure data dir: %w", err)
	}

	s := &JSONStore{
		filePath: filePath,
		state:    jsonState{Profiles: make(map[string]*profile.UserProfile)},
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *JSONStore) load() error {
	raw, err := os.ReadFile(s.filePath)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", s.filePath, err)
	}
	if err := json.Unmarshal(raw, &s.state); err != nil {
		return fmt.Errorf("parse %s: %w", s.filePath, err)
	}
	if s.state.Profiles == nil {
		s.state.Profiles = make(map[string]*profile.UserProfile)
	}
	return nil
}

// persistLocked writes the state atomically. Callers hold the write lock.
func (s *JSONStore) persistLocked() error {
	raw, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.filePath + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.filePath)
}

func (s *JSONStore) Get(name string) (*profile.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.state.Profiles[name]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (s *JSONStore) Put(p *profile.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *p
	s.state.Profiles[p.Name] = &cp
	return s.persistLocked()
}

func (s *JSONStore) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.state.Profiles, name)
	return s.persistLocked()
}

func (s *JSONStore) ListAll() ([]*profile.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profiles := make([]*profile.UserProfile, 0, len(s.state.Profiles))
	for _, p := range s.state.Profiles {
		cp := *p
		profiles = append(profiles, &cp)
	}
	sort.Slice(profiles, func(i, j int) bool {
		return profiles[i].Name < profiles[j].Name
	})
	return profiles, nil
}

func (s *JSONStore) Close() error {
	return nil
}
