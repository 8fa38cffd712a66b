package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"burgerhouse/internal/domain"
	"burgerhouse/internal/metrics"
	orderrepo "burgerhouse/internal/repository/order"
	"burgerhouse/internal/service/cart"
)

// Service runs the checkout flow: validate the form, assemble the order,
// persist it and hand back the WhatsApp link.
type Service struct {
	orders         orderrepo.Repository
	metrics        *metrics.StoreMetrics
	whatsAppNumber string
	now            Clock
	newID          IDGenerator
}

func New(orders orderrepo.Repository, m *metrics.StoreMetrics, whatsAppNumber string) *Service {
	return &Service{
		orders:         orders,
		metrics:        m,
		whatsAppNumber: whatsAppNumber,
		now:            time.Now,
		newID:          NewOrderID,
	}
}

type Result struct {
	Order        domain.Order
	WhatsAppLink string
}

// Checkout returns either a Result, a non-empty field-error map, or an error
// from the store. On success the cart is cleared.
func (s *Service) Checkout(ctx context.Context, c *cart.Cart, form Form) (*Result, map[string]string, error) {
	if errs := Validate(form); len(errs) > 0 {
		return nil, errs, nil
	}

	items := c.Items()
	if len(items) == 0 {
		return nil, map[string]string{"cart": "Seu carrinho está vazio"}, nil
	}

	id, err := s.reserveID(ctx)
	if err != nil {
		return nil, nil, err
	}

	customer := domain.Customer{
		Name:       form.Name,
		Phone:      form.Phone,
		Address:    form.Address,
		PostalCode: form.PostalCode,
	}
	payment := domain.Payment{Method: form.PaymentMethod}
	switch form.PaymentMethod {
	case domain.PaymentCash:
		payment.ChangeForCents = form.ChangeForCents
	case domain.PaymentPix:
		payment.PixProofRef = form.PixProofRef
	}

	o := BuildOrder(items, customer, payment, c.TotalCents(), s.now, func() string { return id })
	if err := s.orders.Save(ctx, o); err != nil {
		return nil, nil, fmt.Errorf("save order: %w", err)
	}
	s.metrics.OrdersCreated.Inc()
	c.Clear()

	return &Result{
		Order:        o,
		WhatsAppLink: WhatsAppLink(s.whatsAppNumber, FormatSummary(o)),
	}, nil, nil
}

// reserveID draws ids until one is unused in the store. Five attempts is far
// more than the id space needs; hitting the limit means the generator broke.
func (s *Service) reserveID(ctx context.Context) (string, error) {
	for i := 0; i < 5; i++ {
		id := s.newID()
		_, err := s.orders.FindByID(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			return id, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", errors.New("order id collision")
}
