package storefront

import (
	"sync"

	"prokat-rental/internal/domain"
)

// Cart is the session's uncommitted, ordered selection of equipment.
// Duplicates are allowed and each occurrence is billed. Add does not check
// availability: the service re-checks every id when the order is created.
type Cart struct {
	mu    sync.Mutex
	items []domain.Equipment
}

func NewCart() *Cart {
	return &Cart{}
}

// Add appends item unconditionally
func (c *Cart) Add(item domain.Equipment) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, item)
}

// Remove drops every occurrence of the equipment id. Unknown ids are a no-op.
func (c *Cart) Remove(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.items[:0:0]
	for _, item := range c.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	c.items = kept
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Items returns a copy of the cart contents in insertion order
func (c *Cart) Items() []domain.Equipment {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]domain.Equipment, len(c.items))
	copy(items, c.items)
	return items
}

// Total sums the prices of all items
func (c *Cart) Total() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total int64
	for _, item := range c.items {
		total += item.Price
	}
	return total
}

func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}
