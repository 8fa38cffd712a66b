package menu

import (
	"context"

	"burgerhouse/internal/domain"
)

// Repository is the menu catalog contract.
type Repository interface {
	List(ctx context.Context) ([]domain.MenuItem, error)
	FindByID(ctx context.Context, id string) (*domain.MenuItem, error)
	Upsert(ctx context.Context, item domain.MenuItem) (*domain.MenuItem, error)
}
