package menu

import (
	"context"
	"testing"

	"burgerhouse/internal/domain"
	"burgerhouse/internal/kv"
)

func TestCatalogListEmpty(t *testing.T) {
	catalog := NewCatalog(kv.NewMemory())
	items, err := catalog.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty menu, got %d items", len(items))
	}
}

func TestCatalogUpsertDefaultsIDToName(t *testing.T) {
	catalog := NewCatalog(kv.NewMemory())
	ctx := context.Background()

	item, err := catalog.Upsert(ctx, domain.MenuItem{Name: "Classic Burger", PriceCents: 3290})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if item.ID != "Classic Burger" {
		t.Fatalf("expected id to default to name, got %q", item.ID)
	}

	got, err := catalog.FindByID(ctx, "Classic Burger")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.PriceCents != 3290 {
		t.Fatalf("unexpected price: %d", got.PriceCents)
	}
}

func TestCatalogUpsertReplacesInPlace(t *testing.T) {
	catalog := NewCatalog(kv.NewMemory())
	ctx := context.Background()

	for _, name := range []string{"Classic Burger", "Bacon Supreme", "Veggie Special"} {
		if _, err := catalog.Upsert(ctx, domain.MenuItem{Name: name, PriceCents: 1000}); err != nil {
			t.Fatalf("upsert %s: %v", name, err)
		}
	}
	if _, err := catalog.Upsert(ctx, domain.MenuItem{Name: "Bacon Supreme", PriceCents: 3890}); err != nil {
		t.Fatalf("upsert update: %v", err)
	}

	items, err := catalog.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if items[1].ID != "Bacon Supreme" || items[1].PriceCents != 3890 {
		t.Fatalf("expected update in place, got %+v", items[1])
	}
}

func TestCatalogFindUnknownID(t *testing.T) {
	catalog := NewCatalog(kv.NewMemory())
	_, err := catalog.FindByID(context.Background(), "Nope")
	if err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
