package cart

import (
	"sync"

	"github.com/google/uuid"

	"burgerhouse/internal/domain"
)

// Manager issues session carts keyed by a random cart id, the server-side
// equivalent of a per-tab cart context.
type Manager struct {
	mu    sync.RWMutex
	carts map[string]*Cart
}

func NewManager() *Manager {
	return &Manager{carts: make(map[string]*Cart)}
}

// Create returns a fresh empty cart and its id.
func (m *Manager) Create() (string, *Cart) {
	id := uuid.NewString()
	c := newCart()
	m.mu.Lock()
	m.carts[id] = c
	m.mu.Unlock()
	return id, c
}

// Get returns the cart for id, or domain.ErrNotFound.
func (m *Manager) Get(id string) (*Cart, error) {
	m.mu.RLock()
	c, ok := m.carts[id]
	m.mu.RUnlock()
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

// Drop forgets the cart for id. Unknown ids are a no-op.
func (m *Manager) Drop(id string) {
	m.mu.Lock()
	delete(m.carts, id)
	m.mu.Unlock()
}
