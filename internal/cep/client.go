// Package cep resolves Brazilian postal codes to street addresses through the
// public ViaCEP service.
package cep

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://viacep.com.br"

type Client struct {
	baseURL string
	http    *http.Client
	logger  *log.Logger
}

func NewClient(baseURL string, logger *log.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 5 * time.Second},
		logger:  logger,
	}
}

// Address is the resolved street address, formatted the way the checkout
// form pre-fills it.
type Address struct {
	Street   string `json:"street"`
	District string `json:"district"`
	City     string `json:"city"`
	State    string `json:"state"`
}

func (a Address) String() string {
	return fmt.Sprintf("%s, %s, %s/%s", a.Street, a.District, a.City, a.State)
}

type viaCEPResponse struct {
	Erro       json.RawMessage `json:"erro"` // the service returns either a bool or "true"
	Logradouro string          `json:"logradouro"`
	Bairro     string          `json:"bairro"`
	Localidade string          `json:"localidade"`
	UF         string          `json:"uf"`
}

// Lookup resolves the digit-only form of cep. Lookup failures are swallowed:
// the result is found=false and a server-side log line, never a user-facing
// error, so the form stays editable with the field unchanged.
func (c *Client) Lookup(ctx context.Context, cep string) (Address, bool) {
	digits := digitsOnly(cep)
	if len(digits) != 8 {
		return Address{}, false
	}

	url := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, digits)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.logger.Printf("cep lookup %s: build request: %v", digits, err)
		return Address{}, false
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Printf("cep lookup %s: %v", digits, err)
		return Address{}, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Printf("cep lookup %s: status %d", digits, resp.StatusCode)
		return Address{}, false
	}

	var body viaCEPResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		c.logger.Printf("cep lookup %s: decode: %v", digits, err)
		return Address{}, false
	}
	if body.erro() {
		return Address{}, false
	}

	return Address{
		Street:   body.Logradouro,
		District: body.Bairro,
		City:     body.Localidade,
		State:    body.UF,
	}, true
}

// erro treats any non-empty, non-false payload as "not found", matching the
// truthy check the service's consumers rely on.
func (r viaCEPResponse) erro() bool {
	if len(r.Erro) == 0 {
		return false
	}
	s := string(r.Erro)
	return s != "false" && s != `"false"` && s != "null"
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
