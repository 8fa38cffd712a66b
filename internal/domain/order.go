package domain

import "time"

// OrderStatus is operator-driven: any status may be set from any other.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether s is one of the known order statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusReady, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
	PaymentPix  PaymentMethod = "pix"
)

// OrderItem is a cart line frozen into an order at checkout. The ID is the
// product's display name, which doubles as the menu's stable identity.
type OrderItem struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	Quantity       int    `json:"quantity"`
	ImageURL       string `json:"imageUrl,omitempty"`
}

// SubtotalCents is the line total for the item.
func (i OrderItem) SubtotalCents() int64 {
	return i.UnitPriceCents * int64(i.Quantity)
}

type Customer struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	PostalCode string `json:"postalCode"`
}

type Payment struct {
	Method PaymentMethod `json:"method"`
	// ChangeForCents is set only for cash payments where the customer needs
	// change; PixProofRef is an opaque reference to the uploaded receipt.
	ChangeForCents *int64 `json:"changeForCents,omitempty"`
	PixProofRef    string `json:"pixProofRef,omitempty"`
}

// Order is immutable after assembly except for Status. TotalCents is the
// snapshot taken at checkout and is never recomputed from Items.
type Order struct {
	ID               string      `json:"id"`
	Items            []OrderItem `json:"items"`
	Customer         Customer    `json:"customer"`
	Payment          Payment     `json:"payment"`
	TotalCents       int64       `json:"totalCents"`
	Status           OrderStatus `json:"status"`
	CreatedAt        time.Time   `json:"createdAt"`
	EstimatedReadyAt *time.Time  `json:"estimatedReadyAt,omitempty"`
}
