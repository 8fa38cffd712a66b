package cart

import (
	"errors"
	"testing"

	"burgerhouse/internal/domain"
)

func classic(price int64) domain.OrderItem {
	return domain.OrderItem{
		ID:             "Classic Burger",
		Name:           "Classic Burger",
		UnitPriceCents: price,
		ImageURL:       "https://example.com/classic.jpg",
	}
}

func TestCartAddItemMergesByID(t *testing.T) {
	c := newCart()
	c.AddItem(classic(3290))

	// Re-adding the same id with a different price must keep the first
	// insertion's price, name and image.
	second := classic(9999)
	second.Name = "Renamed"
	second.ImageURL = "https://example.com/other.jpg"
	c.AddItem(second)

	items := c.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 line, got %d", len(items))
	}
	got := items[0]
	if got.Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", got.Quantity)
	}
	if got.UnitPriceCents != 3290 || got.Name != "Classic Burger" || got.ImageURL != "https://example.com/classic.jpg" {
		t.Fatalf("first insertion's fields not preserved: %+v", got)
	}
}

func TestCartAddItemIgnoresIncomingQuantity(t *testing.T) {
	c := newCart()
	item := classic(3290)
	item.Quantity = 5
	c.AddItem(item)

	if count := c.ItemCount(); count != 1 {
		t.Fatalf("expected count 1, got %d", count)
	}
}

func TestCartUpdateQuantityZeroRemoves(t *testing.T) {
	c := newCart()
	c.AddItem(classic(3290))
	c.AddItem(domain.OrderItem{ID: "Bacon Supreme", Name: "Bacon Supreme", UnitPriceCents: 3890})

	c.UpdateQuantity("Classic Burger", 0)

	items := c.Items()
	if len(items) != 1 || items[0].ID != "Bacon Supreme" {
		t.Fatalf("expected only Bacon Supreme left, got %+v", items)
	}
	if count := c.ItemCount(); count != 1 {
		t.Fatalf("expected count 1 after removal, got %d", count)
	}
	if total := c.TotalCents(); total != 3890 {
		t.Fatalf("expected total 3890 after removal, got %d", total)
	}
}

func TestCartUpdateQuantityNegativeRemoves(t *testing.T) {
	c := newCart()
	c.AddItem(classic(3290))
	c.UpdateQuantity("Classic Burger", -1)
	if len(c.Items()) != 0 {
		t.Fatalf("expected empty cart")
	}
}

func TestCartUpdateQuantityUnknownIDIsNoop(t *testing.T) {
	c := newCart()
	c.AddItem(classic(3290))
	c.UpdateQuantity("Nope", 3)
	if count := c.ItemCount(); count != 1 {
		t.Fatalf("expected count unchanged, got %d", count)
	}
}

func TestCartRemoveItemUnknownIDIsNoop(t *testing.T) {
	c := newCart()
	c.AddItem(classic(3290))
	c.RemoveItem("Nope")
	if len(c.Items()) != 1 {
		t.Fatalf("expected item still present")
	}
}

func TestCartTotalTracksOperations(t *testing.T) {
	c := newCart()
	check := func(want int64) {
		t.Helper()
		if got := c.TotalCents(); got != want {
			t.Fatalf("expected total %d, got %d", want, got)
		}
		var derived int64
		for _, item := range c.Items() {
			derived += item.UnitPriceCents * int64(item.Quantity)
		}
		if derived != c.TotalCents() {
			t.Fatalf("total %d does not match sum over items %d", c.TotalCents(), derived)
		}
	}

	check(0)
	c.AddItem(classic(3290))
	check(3290)
	c.AddItem(classic(3290))
	check(6580)
	c.AddItem(domain.OrderItem{ID: "Bacon Supreme", Name: "Bacon Supreme", UnitPriceCents: 3890})
	check(10470)
	c.UpdateQuantity("Bacon Supreme", 3)
	check(18250)
	c.RemoveItem("Classic Burger")
	check(11670)
	c.UpdateQuantity("Bacon Supreme", 0)
	check(0)
}

func TestCartInsertionOrderPreserved(t *testing.T) {
	c := newCart()
	names := []string{"Classic Burger", "Bacon Supreme", "Mushroom Deluxe", "Veggie Special"}
	for _, name := range names {
		c.AddItem(domain.OrderItem{ID: name, Name: name, UnitPriceCents: 1000})
	}
	c.RemoveItem("Bacon Supreme")
	c.AddItem(domain.OrderItem{ID: "Classic Burger", Name: "Classic Burger", UnitPriceCents: 1000})

	items := c.Items()
	want := []string{"Classic Burger", "Mushroom Deluxe", "Veggie Special"}
	if len(items) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(items))
	}
	for i, name := range want {
		if items[i].ID != name {
			t.Fatalf("position %d: expected %s, got %s", i, name, items[i].ID)
		}
	}
}

func TestCartClear(t *testing.T) {
	c := newCart()
	c.AddItem(classic(3290))
	c.Clear()
	if c.ItemCount() != 0 || c.TotalCents() != 0 {
		t.Fatalf("expected empty cart after clear")
	}
	c.AddItem(classic(3290))
	if c.ItemCount() != 1 {
		t.Fatalf("expected cart usable after clear")
	}
}

func TestManagerCreateAndGet(t *testing.T) {
	m := NewManager()
	id, created := m.Create()
	if id == "" {
		t.Fatalf("expected non-empty cart id")
	}
	got, err := m.Get(id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != created {
		t.Fatalf("expected same cart instance")
	}
}

func TestManagerGetUnknown(t *testing.T) {
	m := NewManager()
	_, err := m.Get("nope")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestManagerDrop(t *testing.T) {
	m := NewManager()
	id, _ := m.Create()
	m.Drop(id)
	if _, err := m.Get(id); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected cart gone after drop, got %v", err)
	}
}
