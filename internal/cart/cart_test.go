package cart_test

import (
	"fmt"
	"testing"

	"souq/internal/cart"

	"github.com/stretchr/testify/assert"
)

func TestCart_AddMergesExistingLine(t *testing.T) {
	c := cart.New(cart.NewMemoryStorage(), "cart:test")

	item := cart.Item{ID: "p1", Name: "iPhone 15", Price: 3499}
	c.Add(item, 2)
	c.Add(item, 3)

	items := c.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, 5, c.Count())
}

func TestCart_AddQuantityFloor(t *testing.T) {
	c := cart.New(cart.NewMemoryStorage(), "cart:test")

	c.Add(cart.Item{ID: "p1", Name: "Case", Price: 49}, 0)
	assert.Equal(t, 1, c.Count())

	c.Add(cart.Item{ID: "p2", Name: "Cable", Price: 29}, -5)
	items := c.Items()
	assert.Len(t, items, 2)
	for _, item := range items {
		if item.ID == "p2" {
			assert.Equal(t, 1, item.Quantity)
		}
	}
}

func TestCart_UpdateQuantity(t *testing.T) {
	c := cart.New(cart.NewMemoryStorage(), "cart:test")
	c.Add(cart.Item{ID: "p1", Name: "Charger", Price: 99}, 1)

	c.UpdateQuantity("p1", 4)
	assert.Equal(t, 4, c.Count())

	// Zero and below remove the line entirely.
	c.UpdateQuantity("p1", 0)
	assert.True(t, c.IsEmpty())

	c.Add(cart.Item{ID: "p1", Name: "Charger", Price: 99}, 2)
	c.UpdateQuantity("p1", -3)
	assert.True(t, c.IsEmpty())

	// Updating a line that is not there does nothing.
	c.UpdateQuantity("ghost", 5)
	assert.True(t, c.IsEmpty())
}

func TestCart_RemoveIsIdempotent(t *testing.T) {
	c := cart.New(cart.NewMemoryStorage(), "cart:test")
	c.Add(cart.Item{ID: "p1", Name: "AirPods", Price: 899}, 1)

	c.Remove("p1")
	assert.True(t, c.IsEmpty())

	c.Remove("p1")
	c.Remove("never-added")
	assert.True(t, c.IsEmpty())
}

func TestCart_Subtotal(t *testing.T) {
	c := cart.New(cart.NewMemoryStorage(), "cart:test")
	c.Add(cart.Item{ID: "p1", Name: "Watch", Price: 100}, 2)
	c.Add(cart.Item{ID: "p2", Name: "Band", Price: 50}, 1)

	assert.Equal(t, 250.0, c.Subtotal())
	assert.Equal(t, 3, c.Count())
}

func TestCart_PersistsAcrossLoads(t *testing.T) {
	storage := cart.NewMemoryStorage()

	c := cart.New(storage, "cart:s1")
	c.Add(cart.Item{ID: "p1", Name: "iPad", Price: 2099}, 2)
	c.Add(cart.Item{ID: "p2", Name: "Pencil", Price: 399}, 1)

	reloaded := cart.New(storage, "cart:s1")
	assert.Equal(t, 3, reloaded.Count())
	assert.Equal(t, 4597.0, reloaded.Subtotal())

	// A different key starts fresh.
	other := cart.New(storage, "cart:s2")
	assert.True(t, other.IsEmpty())
}

func TestCart_CorruptStorageStartsEmpty(t *testing.T) {
	storage := cart.NewMemoryStorage()
	assert.NoError(t, storage.Set("cart:s1", "{not json"))

	c := cart.New(storage, "cart:s1")
	assert.True(t, c.IsEmpty())

	// The cart stays usable after the reset.
	c.Add(cart.Item{ID: "p1", Name: "Mac mini", Price: 2499}, 1)
	assert.Equal(t, 1, c.Count())
}

// failingStorage rejects every write.
type failingStorage struct{}

func (failingStorage) Get(string) (string, bool) { return "", false }
func (failingStorage) Set(string, string) error  { return fmt.Errorf("disk full") }
func (failingStorage) Delete(string) error       { return fmt.Errorf("disk full") }

func TestCart_StorageFailureDoesNotLoseState(t *testing.T) {
	// Persistence is best effort; the in-memory cart keeps working when the
	// backing store rejects writes.
	c := cart.New(failingStorage{}, "cart:s1")
	c.Add(cart.Item{ID: "p1", Name: "Keyboard", Price: 549}, 2)

	assert.Equal(t, 2, c.Count())
	assert.Equal(t, 1098.0, c.Subtotal())
}

func TestFileStorage_RoundTrip(t *testing.T) {
	path := t.TempDir() + "/carts.json"

	storage := cart.NewFileStorage(path)
	c := cart.New(storage, "cart:s1")
	c.Add(cart.Item{ID: "p1", Name: "iPhone 15 Pro", Price: 4299}, 1)

	// A fresh storage over the same file sees the persisted cart.
	reopened := cart.NewFileStorage(path)
	reloaded := cart.New(reopened, "cart:s1")
	assert.Equal(t, 1, reloaded.Count())
	assert.Equal(t, 4299.0, reloaded.Subtotal())
}

func TestManager_SeparateSessions(t *testing.T) {
	m := cart.NewManager(cart.NewMemoryStorage())

	m.Cart("alice").Add(cart.Item{ID: "p1", Name: "iPhone", Price: 3499}, 1)

	assert.Equal(t, 1, m.Cart("alice").Count())
	assert.True(t, m.Cart("bob").IsEmpty())

	// Same session gets the same cart back.
	assert.Equal(t, 1, m.Cart("alice").Count())
}
