package cart

import (
	"encoding/json"
	"log"
)

// Item represents one product line in a shopper's in-progress cart. Price is
// snapshotted when the item is added and is not refreshed from the catalog.
type Item struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	NameAr   string  `json:"name_ar,omitempty"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity"`
	Category string  `json:"category,omitempty"`
}

// Cart holds a single shopper's pending selections, keyed by product ID,
// with at most one line per product. Mutations are write-through to the
// backing Storage; the stored value is read once at construction. A corrupt
// stored value resets to an empty cart instead of failing.
//
// A Cart has a single writer (the owning session) and is not safe for
// concurrent use on its own; the Manager serializes access per session.
type Cart struct {
	storage Storage
	key     string
	items   []Item
}

// New loads the cart stored under key, or an empty cart when nothing usable
// is stored.
func New(storage Storage, key string) *Cart {
	c := &Cart{storage: storage, key: key}
	raw, ok := storage.Get(key)
	if ok && raw != "" {
		if err := json.Unmarshal([]byte(raw), &c.items); err != nil {
			log.Printf("Failed to parse saved cart %q, starting empty: %v", key, err)
			c.items = nil
		}
	}
	return c
}

// Add inserts item with the given quantity, or increments the quantity of an
// existing line for the same product. Quantities below 1 count as 1. Add
// never fails; stock and availability are checked at order submission, not
// here.
func (c *Cart) Add(item Item, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.items {
		if c.items[i].ID == item.ID {
			c.items[i].Quantity += quantity
			c.save()
			return
		}
	}
	item.Quantity = quantity
	c.items = append(c.items, item)
	c.save()
}

// Remove deletes the line for the given product ID. Removing an absent
// product is a no-op, not an error.
func (c *Cart) Remove(id string) {
	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.save()
			return
		}
	}
}

// UpdateQuantity sets the line's quantity to exactly quantity. A quantity
// below 1 removes the line instead.
func (c *Cart) UpdateQuantity(id string, quantity int) {
	if quantity < 1 {
		c.Remove(id)
		return
	}
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Quantity = quantity
			c.save()
			return
		}
	}
}

// Clear empties the cart. Called after a successful order submission.
func (c *Cart) Clear() {
	c.items = nil
	c.save()
}

// Items returns a copy of the cart lines.
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Count is the sum of quantities over all lines.
func (c *Cart) Count() int {
	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

// Subtotal is the sum of unit price times quantity over all lines.
func (c *Cart) Subtotal() float64 {
	total := 0.0
	for _, item := range c.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

func (c *Cart) save() {
	data, err := json.Marshal(c.items)
	if err != nil {
		log.Printf("Failed to serialize cart %q: %v", c.key, err)
		return
	}
	if err := c.storage.Set(c.key, string(data)); err != nil {
		log.Printf("Failed to persist cart %q: %v", c.key, err)
	}
}
