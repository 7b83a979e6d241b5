package session

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/mgagliardo91/yard-simulator/game/engine"
	"github.com/mgagliardo91/yard-simulator/game/progress"
	"github.com/mgagliardo91/yard-simulator/game/service"
)

var (
	ErrSessionNotFound      = errors.New("session not found")
	ErrSessionAlreadyExists = errors.New("session already exists")
	ErrDayInProgress        = errors.New("day still in progress")
)

// Manager handles yard session lifecycle
type Manager struct {
	sessions    map[string]*service.Session
	persistence progress.Persistence
	mu          sync.RWMutex
}

// NewManager creates a new session manager
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*service.Session),
	}
}

// NewManagerWithPersistence creates a session manager that saves and restores
// progression through the given store
func NewManagerWithPersistence(persistence progress.Persistence) *Manager {
	return &Manager{
		sessions:    make(map[string]*service.Session),
		persistence: persistence,
	}
}

// Create creates a new session with the given ID and layout. When the ID
// matches persisted progression, that progression is restored; otherwise the
// session starts from scratch (day one, no coins, no upgrades).
func (m *Manager) Create(id string, config *engine.YardConfig) (*service.Session, error) {
	if id == "" {
		id = m.generateSessionID()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.sessionExists(id) {
		return nil, ErrSessionAlreadyExists
	}

	registry, err := m.loadOrCreateRegistry(id)
	if err != nil {
		return nil, err
	}

	yard, err := engine.NewYard(config, registry)
	if err != nil {
		return nil, fmt.Errorf("failed to create yard: %w", err)
	}

	session := &service.Session{
		ID:             id,
		Yard:           yard,
		Registry:       registry,
		Config:         config,
		CreatedAt:      time.Now(),
		LastAccessedAt: time.Now(),
	}

	m.sessions[strings.ToLower(id)] = session

	if m.persistence != nil {
		if err := m.persistence.Save(id, registry); err != nil {
			// Log but don't fail the creation.
			fmt.Printf("Warning: Failed to persist progression for %s: %v\n", id, err)
		}
	}

	return session, nil
}

// Get retrieves a session by ID (case-insensitive)
func (m *Manager) Get(id string) (*service.Session, error) {
	m.mu.RLock()
	session, exists := m.sessions[strings.ToLower(id)]
	m.mu.RUnlock()

	if exists {
		return session, nil
	}
	return nil, ErrSessionNotFound
}

// GetOrCreate gets an existing session or creates a new one
func (m *Manager) GetOrCreate(id string, config *engine.YardConfig) (*service.Session, error) {
	session, err := m.Get(id)
	if err == nil {
		return session, nil
	}
	if errors.Is(err, ErrSessionNotFound) {
		return m.Create(id, config)
	}
	return nil, err
}

// NextDay replaces the session's yard with a fresh one built against its
// progression. The current day must have ended.
func (m *Manager) NextDay(id string) (*service.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, exists := m.sessions[strings.ToLower(id)]
	if !exists {
		return nil, ErrSessionNotFound
	}

	if session.Yard.Phase() != engine.PhaseEnding {
		return nil, ErrDayInProgress
	}

	yard, err := engine.NewYard(session.Config, session.Registry)
	if err != nil {
		return nil, fmt.Errorf("failed to create yard: %w", err)
	}

	session.Yard = yard
	session.LastAccessedAt = time.Now()

	if m.persistence != nil {
		if err := m.persistence.Save(id, session.Registry); err != nil {
			fmt.Printf("Warning: Failed to persist progression for %s: %v\n", id, err)
		}
	}

	return session, nil
}

// List returns all active sessions
func (m *Manager) List() []*service.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*service.Session, 0, len(m.sessions))
	for _, session := range m.sessions {
		result = append(result, session)
	}
	return result
}

// Delete removes a session and its persisted progression
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	lowerID := strings.ToLower(id)
	_, inMemory := m.sessions[lowerID]
	delete(m.sessions, lowerID)

	if m.persistence != nil && m.persistence.Exists(id) {
		if err := m.persistence.Delete(id); err != nil {
			return fmt.Errorf("failed to delete persisted progression: %w", err)
		}
		return nil
	}

	if !inMemory {
		return ErrSessionNotFound
	}
	return nil
}

// UpdateLastAccessed updates the last accessed time for a session
func (m *Manager) UpdateLastAccessed(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, exists := m.sessions[strings.ToLower(id)]
	if !exists {
		return ErrSessionNotFound
	}
	session.LastAccessedAt = time.Now()
	return nil
}

// Save persists a session's progression
func (m *Manager) Save(id string) error {
	if m.persistence == nil {
		return nil
	}

	m.mu.RLock()
	session, exists := m.sessions[strings.ToLower(id)]
	m.mu.RUnlock()
	if !exists {
		return ErrSessionNotFound
	}

	return m.persistence.Save(id, session.Registry)
}

// CleanupExpiredSessions removes sessions that haven't been accessed in the
// given duration and returns how many were removed. Persisted progression is
// kept, so an expired session's player can pick up where they left off.
func (m *Manager) CleanupExpiredSessions(maxAge time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for id, session := range m.sessions {
		if session.LastAccessedAt.Before(cutoff) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

// Count returns the number of active sessions
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func (m *Manager) loadOrCreateRegistry(id string) (*progress.Registry, error) {
	if m.persistence != nil && m.persistence.Exists(id) {
		registry, err := m.persistence.Load(id)
		if err != nil {
			return nil, fmt.Errorf("failed to load persisted progression: %w", err)
		}
		return registry, nil
	}
	return progress.NewRegistry(), nil
}

// generateSessionID generates a random 4-character session ID
func (m *Manager) generateSessionID() string {
	bytes := make([]byte, 2)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

// sessionExists checks if a session exists (case-insensitive)
func (m *Manager) sessionExists(id string) bool {
	_, exists := m.sessions[strings.ToLower(id)]
	return exists
}
