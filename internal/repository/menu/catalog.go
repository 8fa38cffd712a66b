package menu

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"burgerhouse/internal/domain"
	"burgerhouse/internal/kv"
)

const menuKey = "burgerhouse_menu"

// Catalog stores the menu as one JSON array under a single key, preserving
// insertion order. Same single-key layout as the order store.
type Catalog struct {
	mu sync.Mutex
	kv kv.Store
}

func NewCatalog(store kv.Store) *Catalog {
	return &Catalog{kv: store}
}

func (c *Catalog) List(ctx context.Context) ([]domain.MenuItem, error) {
	return c.load(ctx)
}

func (c *Catalog) FindByID(ctx context.Context, id string) (*domain.MenuItem, error) {
	items, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// Upsert replaces the item with the same id in place, or appends it. The id
// defaults to the display name when unset.
func (c *Catalog) Upsert(ctx context.Context, item domain.MenuItem) (*domain.MenuItem, error) {
	if strings.TrimSpace(item.ID) == "" {
		item.ID = item.Name
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	replaced := false
	for i := range items {
		if items[i].ID == item.ID {
			items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		items = append(items, item)
	}
	if err := c.persist(ctx, items); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Catalog) load(ctx context.Context) ([]domain.MenuItem, error) {
	raw, ok, err := c.kv.Get(ctx, menuKey)
	if err != nil {
		return nil, fmt.Errorf("load menu: %w", err)
	}
	if !ok || raw == "" {
		return []domain.MenuItem{}, nil
	}
	var items []domain.MenuItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("decode menu: %w", err)
	}
	return items, nil
}

func (c *Catalog) persist(ctx context.Context, items []domain.MenuItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode menu: %w", err)
	}
	if err := c.kv.Set(ctx, menuKey, string(raw)); err != nil {
		return fmt.Errorf("persist menu: %w", err)
	}
	return nil
}
