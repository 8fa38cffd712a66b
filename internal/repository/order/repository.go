package order

import (
	"context"

	"burgerhouse/internal/domain"
)

// Repository is the order store contract consumed by services and handlers.
type Repository interface {
	Save(ctx context.Context, o domain.Order) error
	List(ctx context.Context) ([]domain.Order, error)
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error
}
