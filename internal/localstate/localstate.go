// internal/localstate/localstate.go

// Package localstate is the console's durable local storage: a small JSON
// file holding the token-expiry marker and non-security UI preferences. It is
// the only thing that survives a process restart, and the only thing the
// route guard consults besides the in-memory session.
package localstate

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const stateFile = "console_state.json"

// State is a file-backed key/value store. All reads are local and
// synchronous; the guard path must never touch the network.
type State struct {
	mu   sync.Mutex
	path string
}

type payload struct {
	// Epoch milliseconds, matching what the upstream token carries. Absent
	// means no credential has been issued.
	TokenExpiryMS    *int64 `json:"token_expiry_ms,omitempty"`
	SidebarCollapsed *bool  `json:"sidebar_collapsed,omitempty"`
}

// Open prepares the state directory and returns a handle to the state file.
// A missing or unreadable file behaves like an empty one.
func Open(dir string) (*State, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create state dir: %w", err)
	}
	return &State{path: filepath.Join(dir, stateFile)}, nil
}

// SetTokenExpiry persists the moment the current credential goes stale.
// Written on successful login only.
func (s *State) SetTokenExpiry(expiry time.Time) error {
	ms := expiry.UnixMilli()
	return s.update(func(p *payload) {
		p.TokenExpiryMS = &ms
	})
}

// TokenExpiry reads the expiry marker. ok is false when no marker exists.
func (s *State) TokenExpiry() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.read()
	if p.TokenExpiryMS == nil {
		return time.Time{}, false
	}
	return time.UnixMilli(*p.TokenExpiryMS), true
}

// DeleteTokenExpiry removes the marker. Done on logout.
func (s *State) DeleteTokenExpiry() error {
	return s.update(func(p *payload) {
		p.TokenExpiryMS = nil
	})
}

// SetSidebarCollapsed stores the sidebar preference. Not security relevant.
func (s *State) SetSidebarCollapsed(collapsed bool) error {
	return s.update(func(p *payload) {
		p.SidebarCollapsed = &collapsed
	})
}

// SidebarCollapsed returns the stored preference, defaulting to expanded.
func (s *State) SidebarCollapsed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.read()
	return p.SidebarCollapsed != nil && *p.SidebarCollapsed
}

// Clear wipes all durable state. Used on logout and forced expiry.
func (s *State) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to clear local state: %w", err)
	}
	return nil
}

func (s *State) update(mutate func(*payload)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.read()
	mutate(&p)
	return s.write(p)
}

// read treats a missing or corrupt file as empty state, the same way a
// browser treats malformed localStorage values as absent.
func (s *State) read() payload {
	var p payload
	data, err := os.ReadFile(s.path)
	if err != nil {
		return payload{}
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return payload{}
	}
	return p
}

// write is atomic: temp file in the same directory, then rename.
func (s *State) write(p payload) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode local state: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), stateFile+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp state file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write local state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp state file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace local state: %w", err)
	}
	return nil
}
