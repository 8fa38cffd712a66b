package checkout

import (
	"strings"

	"burgerhouse/internal/domain"
)

// Form carries the raw checkout fields as submitted by the customer.
type Form struct {
	Name           string
	Phone          string
	PostalCode     string
	Address        string
	PaymentMethod  domain.PaymentMethod
	ChangeForCents *int64
	PixProofRef    string
}

// Validate returns a field-name to message mapping; an empty map means the
// form may be submitted. It never mutates the form.
func Validate(f Form) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(f.Name) == "" {
		errs["name"] = "Nome é obrigatório"
	}
	if len(digitsOnly(f.Phone)) < 11 {
		errs["phone"] = "Telefone inválido"
	}
	if len(digitsOnly(f.PostalCode)) < 8 {
		errs["postalCode"] = "CEP inválido"
	}
	if strings.TrimSpace(f.Address) == "" {
		errs["address"] = "Endereço é obrigatório"
	}
	if f.PaymentMethod == domain.PaymentPix && f.PixProofRef == "" {
		errs["pixProof"] = "Comprovante do PIX é obrigatório"
	}

	return errs
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
