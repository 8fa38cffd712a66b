package order

import (
	"context"
	"fmt"

	"burgerhouse/internal/domain"
	"burgerhouse/internal/metrics"
	orderrepo "burgerhouse/internal/repository/order"
)

// Service exposes the order store to the admin list and the tracker.
type Service struct {
	repo    orderrepo.Repository
	metrics *metrics.StoreMetrics
}

func New(repo orderrepo.Repository, m *metrics.StoreMetrics) *Service {
	return &Service{repo: repo, metrics: m}
}

// List returns all orders, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Order, error) {
	return s.repo.List(ctx)
}

// Get returns the order for id, or domain.ErrNotFound.
func (s *Service) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateStatus sets the order's status. Any known status is reachable from
// any other; the workflow is operator-driven, not system-enforced. Unknown
// ids surface domain.ErrNotFound so the admin view can say so.
func (s *Service) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	if !status.Valid() {
		return fmt.Errorf("unknown status %q", status)
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	s.metrics.StatusTransitions.WithLabelValues(string(status)).Inc()
	return nil
}
