package checkout

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"burgerhouse/internal/domain"
)

// Clock and IDGenerator are injected so assembly is deterministic in tests.
type (
	Clock       func() time.Time
	IDGenerator func() string
)

const (
	orderIDPrefix   = "ORD-"
	orderIDLength   = 5
	idAlphabet      = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	preparationTime = 45 * time.Minute
)

// NewOrderID returns a short order code like ORD-7K2QX, drawn from uuid
// randomness rather than the wall clock so rapid double-submits cannot
// collide on the same millisecond.
func NewOrderID() string {
	u := uuid.New()
	b := make([]byte, orderIDLength)
	for i := range b {
		b[i] = idAlphabet[int(u[i])%len(idAlphabet)]
	}
	return orderIDPrefix + string(b)
}

// BuildOrder freezes the cart lines and validated form fields into an Order.
// Validation is the caller's responsibility. The total is the caller's
// point-in-time snapshot and is stored as-is, never recomputed from items.
func BuildOrder(items []domain.OrderItem, customer domain.Customer, payment domain.Payment, totalCents int64, now Clock, newID IDGenerator) domain.Order {
	createdAt := now().UTC()
	readyAt := createdAt.Add(preparationTime)
	return domain.Order{
		ID:               newID(),
		Items:            append([]domain.OrderItem(nil), items...),
		Customer:         customer,
		Payment:          payment,
		TotalCents:       totalCents,
		Status:           domain.StatusPending,
		CreatedAt:        createdAt,
		EstimatedReadyAt: &readyAt,
	}
}

// FormatSummary renders the order as the WhatsApp message text handed to the
// customer's messaging app. The output is customer-facing and stays in
// Portuguese.
func FormatSummary(o domain.Order) string {
	var b strings.Builder

	b.WriteString("🍔 *NOVO PEDIDO - BURGER HOUSE*\n")
	fmt.Fprintf(&b, "*Cliente:* %s\n", o.Customer.Name)
	fmt.Fprintf(&b, "*Telefone:* %s\n", o.Customer.Phone)
	fmt.Fprintf(&b, "*Endereço:* %s\n", o.Customer.Address)
	fmt.Fprintf(&b, "*CEP:* %s\n", o.Customer.PostalCode)

	b.WriteString("\n*Pedido:*")
	for _, item := range o.Items {
		fmt.Fprintf(&b, "\n- %dx %s (R$ %s)", item.Quantity, item.Name, FormatCents(item.SubtotalCents()))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "\n*Forma de Pagamento:* %s\n", paymentLabel(o.Payment))
	fmt.Fprintf(&b, "\n*Total do Pedido:* R$ %s", FormatCents(o.TotalCents))

	return b.String()
}

// WhatsAppLink builds the wa.me hand-off URI embedding the escaped summary.
// Opening the link is the caller's concern.
func WhatsAppLink(number, summary string) string {
	escaped := strings.ReplaceAll(url.QueryEscape(summary), "+", "%20")
	return "https://wa.me/" + number + "?text=" + escaped
}

// FormatCents renders integer cents as a currency amount with exactly two
// decimal digits.
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

func paymentLabel(p domain.Payment) string {
	switch p.Method {
	case domain.PaymentCash:
		if p.ChangeForCents != nil {
			return fmt.Sprintf("Dinheiro (Troco para R$ %s)", FormatCents(*p.ChangeForCents))
		}
		return "Dinheiro"
	case domain.PaymentCard:
		return "Cartão"
	case domain.PaymentPix:
		return "PIX"
	}
	return string(p.Method)
}
