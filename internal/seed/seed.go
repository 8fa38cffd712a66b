package seed

import (
	"context"
	"fmt"

	"burgerhouse/internal/domain"
)

type MenuWriter interface {
	Upsert(ctx context.Context, item domain.MenuItem) (*domain.MenuItem, error)
}

// Apply inserts the house menu. It is idempotent: re-running replaces items
// in place without duplicating them.
func Apply(ctx context.Context, menu MenuWriter) error {
	items := []domain.MenuItem{
		{
			Name:        "Classic Burger",
			Description: "Hambúrguer artesanal, queijo cheddar, alface, tomate e molho especial",
			PriceCents:  3290,
			ImageURL:    "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?auto=format&fit=crop&q=80",
		},
		{
			Name:        "Bacon Supreme",
			Description: "Hambúrguer artesanal, muito bacon, queijo, cebola caramelizada",
			PriceCents:  3890,
			ImageURL:    "https://images.unsplash.com/photo-1553979459-d2229ba7433b?auto=format&fit=crop&q=80",
		},
		{
			Name:        "Mushroom Deluxe",
			Description: "Hambúrguer artesanal, cogumelos salteados, queijo suíço, rúcula",
			PriceCents:  3690,
			ImageURL:    "https://images.unsplash.com/photo-1586190848861-99aa4a171e90?auto=format&fit=crop&q=80",
		},
		{
			Name:        "Veggie Special",
			Description: "Hambúrguer de grão de bico, queijo vegano, alface, tomate",
			PriceCents:  3490,
			ImageURL:    "https://images.unsplash.com/photo-1520072959219-c595dc870360?auto=format&fit=crop&q=80",
		},
	}

	for _, item := range items {
		if _, err := menu.Upsert(ctx, item); err != nil {
			return fmt.Errorf("upsert menu item %s: %w", item.Name, err)
		}
	}

	return nil
}
