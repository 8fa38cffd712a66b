package cart

import (
	"sync"

	"burgerhouse/internal/domain"
)

// Cart holds one session's pending line items in insertion order, keyed by
// product id. It lives only in memory; it is gone after a restart.
type Cart struct {
	mu    sync.Mutex
	items []domain.OrderItem
	index map[string]int
}

func newCart() *Cart {
	return &Cart{index: make(map[string]int)}
}

// AddItem merges by product id: a repeated id bumps the quantity by one and
// keeps the name, price and image from the first insertion. A new id is
// inserted with quantity 1. The incoming quantity is ignored either way.
func (c *Cart) AddItem(item domain.OrderItem) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i, ok := c.index[item.ID]; ok {
		c.items[i].Quantity++
		return
	}
	item.Quantity = 1
	c.index[item.ID] = len(c.items)
	c.items = append(c.items, item)
}

// RemoveItem deletes the entry if present; unknown ids are a no-op.
func (c *Cart) RemoveItem(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(id)
}

// UpdateQuantity sets the quantity for id. Zero or negative removes the item,
// matching decrement-to-zero behavior. Unknown ids are a no-op.
func (c *Cart) UpdateQuantity(id string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.index[id]
	if !ok {
		return
	}
	if quantity <= 0 {
		c.removeLocked(id)
		return
	}
	c.items[i].Quantity = quantity
}

// Items returns a copy of the line items in insertion order.
func (c *Cart) Items() []domain.OrderItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.OrderItem(nil), c.items...)
}

// ItemCount is the sum of all quantities.
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// TotalCents is derived live from the current contents; it is distinct from
// the snapshot frozen into an order at checkout.
func (c *Cart) TotalCents() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total int64
	for _, item := range c.items {
		total += item.SubtotalCents()
	}
	return total
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.index = make(map[string]int)
}

func (c *Cart) removeLocked(id string) {
	i, ok := c.index[id]
	if !ok {
		return
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	delete(c.index, id)
	for j := i; j < len(c.items); j++ {
		c.index[c.items[j].ID] = j
	}
}
