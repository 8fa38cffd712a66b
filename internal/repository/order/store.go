package order

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"burgerhouse/internal/domain"
	"burgerhouse/internal/kv"
)

const ordersKey = "burgerhouse_orders"

// Store persists all orders as one JSON array under a single key, newest
// first. The mutex serializes read-modify-write within this process; two
// processes sharing a backend can still race and lose an update, which is
// accepted under the single-operator assumption.
type Store struct {
	mu sync.Mutex
	kv kv.Store
}

func NewStore(store kv.Store) *Store {
	return &Store{kv: store}
}

// Save prepends the order so List returns newest first.
func (s *Store) Save(ctx context.Context, o domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.load(ctx)
	if err != nil {
		return err
	}
	orders = append([]domain.Order{o}, orders...)
	return s.persist(ctx, orders)
}

// List returns orders in persisted order, or an empty slice when nothing has
// been stored yet.
func (s *Store) List(ctx context.Context) ([]domain.Order, error) {
	return s.load(ctx)
}

// FindByID scans the stored list for the first matching id.
func (s *Store) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	orders, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// UpdateStatus replaces only the status field of the matching record and
// re-persists the whole list. Unknown ids are a no-op.
func (s *Store) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.load(ctx)
	if err != nil {
		return err
	}
	found := false
	for i := range orders {
		if orders[i].ID == id {
			orders[i].Status = status
			found = true
			break
		}
	}
	if !found {
		return nil
	}
	return s.persist(ctx, orders)
}

func (s *Store) load(ctx context.Context) ([]domain.Order, error) {
	raw, ok, err := s.kv.Get(ctx, ordersKey)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	if !ok || raw == "" {
		return []domain.Order{}, nil
	}
	var orders []domain.Order
	if err := json.Unmarshal([]byte(raw), &orders); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return orders, nil
}

func (s *Store) persist(ctx context.Context, orders []domain.Order) error {
	raw, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("encode orders: %w", err)
	}
	if err := s.kv.Set(ctx, ordersKey, string(raw)); err != nil {
		return fmt.Errorf("persist orders: %w", err)
	}
	return nil
}
