// Package session holds the authenticated identities of the running
// app. Customer and admin sessions live in independent named slots
// that survive a restart; either can be logged out without touching
// the other.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"nautica-prime/internal/core/domain"
)

// Slot file names, one per store
const (
	clienteSlot = "cliente-storage.json"
	adminSlot   = "admin-storage.json"
)

// slot is a named persisted JSON file with atomic writes
type slot struct {
	path string
}

// load reads the persisted value. A missing or malformed slot is
// treated as "no session" and leaves v zeroed.
func (s slot) load(v any) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	if err := json.Unmarshal(data, v); err != nil {
		// Corrupt slot: behave as logged out rather than failing
		return
	}
}

// save persists the value atomically (temp file + rename), so a
// restart never observes a partially written identity
func (s slot) save(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".session-*")
	if err != nil {
		return fmt.Errorf("create temp session file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write session: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close session file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}

// openSlot prepares the state directory and returns the named slot
func openSlot(stateDir, name string) (slot, error) {
	if err := os.MkdirAll(stateDir, 0o700); err != nil {
		return slot{}, fmt.Errorf("create state dir: %w", err)
	}
	return slot{path: filepath.Join(stateDir, name)}, nil
}

// ClienteStore holds the authenticated customer identity
type ClienteStore struct {
	mu      sync.RWMutex
	slot    slot
	cliente domain.Cliente
}

// NewClienteStore opens the customer session slot under stateDir and
// restores any persisted identity
func NewClienteStore(stateDir string) (*ClienteStore, error) {
	sl, err := openSlot(stateDir, clienteSlot)
	if err != nil {
		return nil, err
	}
	store := &ClienteStore{slot: sl}
	store.slot.load(&store.cliente)
	return store, nil
}

// Atual returns the current identity (zero value when logged out)
func (s *ClienteStore) Atual() domain.Cliente {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cliente
}

// Login replaces the current identity wholesale and persists it
func (s *ClienteStore) Login(c domain.Cliente) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.slot.save(c); err != nil {
		return err
	}
	s.cliente = c
	return nil
}

// Logout resets to the empty sentinel and persists the reset
func (s *ClienteStore) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.slot.save(domain.Cliente{}); err != nil {
		return err
	}
	s.cliente = domain.Cliente{}
	return nil
}

// Token returns the bearer token of the current identity, or ""
func (s *ClienteStore) Token() string {
	return s.Atual().Token
}

// AdminStore holds the authenticated administrator identity. The
// bearer token is persisted once, inside this slot; authorization
// headers are always derived from here.
type AdminStore struct {
	mu    sync.RWMutex
	slot  slot
	admin domain.Admin
}

// NewAdminStore opens the admin session slot under stateDir and
// restores any persisted identity
func NewAdminStore(stateDir string) (*AdminStore, error) {
	sl, err := openSlot(stateDir, adminSlot)
	if err != nil {
		return nil, err
	}
	store := &AdminStore{slot: sl}
	store.slot.load(&store.admin)
	return store, nil
}

// Atual returns the current identity (zero value when logged out)
func (s *AdminStore) Atual() domain.Admin {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.admin
}

// Login replaces the current identity wholesale and persists it
func (s *AdminStore) Login(a domain.Admin) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.slot.save(a); err != nil {
		return err
	}
	s.admin = a
	return nil
}

// Logout resets to the empty sentinel and persists the reset
func (s *AdminStore) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.slot.save(domain.Admin{}); err != nil {
		return err
	}
	s.admin = domain.Admin{}
	return nil
}

// Token returns the bearer token of the current identity, or ""
func (s *AdminStore) Token() string {
	return s.Atual().Token
}
