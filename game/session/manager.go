package session

import (
	"errors"
	"sync"

	"github.com/wordduel/server/game/lobby"
)

var (
	ErrLobbyNotFound  = errors.New("lobby not found")
	ErrNotInLobby     = errors.New("connection is not in a lobby")
	ErrAlreadyInLobby = errors.New("connection is already in a lobby")
)

// Manager owns the fixed pool of lobbies and the connection-to-lobby
// reverse index.
type Manager struct {
	lobbies map[string]*lobby.Lobby
	order   []string
	byConn  map[string]string
	mu      sync.RWMutex
}

// NewManager creates a registry pre-provisioned with one lobby per
// identifier. The pool is fixed for the lifetime of the manager.
func NewManager(ids []string) *Manager {
	m := &Manager{
		lobbies: make(map[string]*lobby.Lobby, len(ids)),
		order:   make([]string, 0, len(ids)),
		byConn:  make(map[string]string),
	}

	for _, id := range ids {
		if _, exists := m.lobbies[id]; exists {
			continue
		}
		m.lobbies[id] = lobby.New(id)
		m.order = append(m.order, id)
	}

	return m
}

// Get retrieves a lobby from the pool by ID.
func (m *Manager) Get(id string) (*lobby.Lobby, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	l, exists := m.lobbies[id]
	if !exists {
		return nil, ErrLobbyNotFound
	}
	return l, nil
}

// List returns all lobbies in their configured order.
func (m *Manager) List() []*lobby.Lobby {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*lobby.Lobby, 0, len(m.order))
	for _, id := range m.order {
		result = append(result, m.lobbies[id])
	}
	return result
}

// LobbyFor resolves the lobby a connection is currently bound to.
func (m *Manager) LobbyFor(connID string) (*lobby.Lobby, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, exists := m.byConn[connID]
	if !exists {
		return nil, ErrNotInLobby
	}
	return m.lobbies[id], nil
}

// Bind records that a connection belongs to a lobby. A connection may be
// bound to at most one lobby at a time.
func (m *Manager) Bind(connID, lobbyID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.lobbies[lobbyID]; !exists {
		return ErrLobbyNotFound
	}
	if _, bound := m.byConn[connID]; bound {
		return ErrAlreadyInLobby
	}

	m.byConn[connID] = lobbyID
	return nil
}

// Unbind removes a connection's lobby binding, if any.
func (m *Manager) Unbind(connID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.byConn, connID)
}

// Count returns the number of lobbies in the pool.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.lobbies)
}
