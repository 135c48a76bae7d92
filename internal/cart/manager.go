package cart

import "sync"

// Manager hands out one durable cart per shopper session. Carts are loaded
// from storage on first use and cached. Mutations on a cart come from its
// owning session only; two sessions never share a cart.
type Manager struct {
	mu      sync.Mutex
	storage Storage
	carts   map[string]*Cart
}

// NewManager creates a Manager backed by the given storage.
func NewManager(storage Storage) *Manager {
	return &Manager{
		storage: storage,
		carts:   make(map[string]*Cart),
	}
}

// Cart returns the cart for the given session ID, loading it from storage
// the first time the session is seen.
func (m *Manager) Cart(sessionID string) *Cart {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.carts[sessionID]
	if !ok {
		c = New(m.storage, "cart:"+sessionID)
		m.carts[sessionID] = c
	}
	return c
}
