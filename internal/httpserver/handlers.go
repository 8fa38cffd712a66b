package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"burgerhouse/internal/domain"
	cartsvc "burgerhouse/internal/service/cart"
	checkoutsvc "burgerhouse/internal/service/checkout"
)

type handlers struct {
	deps Deps
}

type cartResponse struct {
	ID         string             `json:"id"`
	Items      []domain.OrderItem `json:"items"`
	ItemCount  int                `json:"itemCount"`
	TotalCents int64              `json:"totalCents"`
}

func cartView(id string, c *cartsvc.Cart) cartResponse {
	return cartResponse{
		ID:         id,
		Items:      c.Items(),
		ItemCount:  c.ItemCount(),
		TotalCents: c.TotalCents(),
	}
}

func (h *handlers) listMenu(c *gin.Context) {
	items, err := h.deps.Menu.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "menu unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *handlers) storeStatus(c *gin.Context) {
	hours := h.deps.Hours
	c.JSON(http.StatusOK, gin.H{
		"open":        hours.OpenAt(h.deps.Now()),
		"openingHour": hours.Opening,
		"closingHour": hours.Closing,
	})
}

func (h *handlers) lookupAddress(c *gin.Context) {
	addr, found := h.deps.CEP.Lookup(c.Request.Context(), c.Param("cep"))
	if !found {
		// Lookup failures are silent: the form keeps whatever the
		// customer typed.
		c.JSON(http.StatusOK, gin.H{"found": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"found": true, "address": addr.String(), "parts": addr})
}

func (h *handlers) createCart(c *gin.Context) {
	id, created := h.deps.Carts.Create()
	c.JSON(http.StatusCreated, cartView(id, created))
}

func (h *handlers) loadCart(c *gin.Context) (*cartsvc.Cart, bool) {
	cartID := c.Param("cartID")
	crt, err := h.deps.Carts.Get(cartID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "cart not found"})
		return nil, false
	}
	return crt, true
}

func (h *handlers) getCart(c *gin.Context) {
	crt, ok := h.loadCart(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, cartView(c.Param("cartID"), crt))
}

type addItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

func (h *handlers) addCartItem(c *gin.Context) {
	crt, ok := h.loadCart(c)
	if !ok {
		return
	}

	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "productId required"})
		return
	}

	item, err := h.deps.Menu.FindByID(c.Request.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "menu unavailable"})
		return
	}

	crt.AddItem(domain.OrderItem{
		ID:             item.ID,
		Name:           item.Name,
		UnitPriceCents: item.PriceCents,
		ImageURL:       item.ImageURL,
	})
	c.JSON(http.StatusOK, cartView(c.Param("cartID"), crt))
}

type updateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

func (h *handlers) updateCartItem(c *gin.Context) {
	crt, ok := h.loadCart(c)
	if !ok {
		return
	}

	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Quantity == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity required"})
		return
	}

	crt.UpdateQuantity(c.Param("productID"), *req.Quantity)
	c.JSON(http.StatusOK, cartView(c.Param("cartID"), crt))
}

func (h *handlers) removeCartItem(c *gin.Context) {
	crt, ok := h.loadCart(c)
	if !ok {
		return
	}
	crt.RemoveItem(c.Param("productID"))
	c.JSON(http.StatusOK, cartView(c.Param("cartID"), crt))
}

type checkoutRequest struct {
	Customer struct {
		Name       string `json:"name"`
		Phone      string `json:"phone"`
		Address    string `json:"address"`
		PostalCode string `json:"postalCode"`
	} `json:"customer"`
	Payment struct {
		Method         string `json:"method"`
		ChangeForCents *int64 `json:"changeForCents"`
		PixProofRef    string `json:"pixProofRef"`
	} `json:"payment"`
}

func (h *handlers) checkout(c *gin.Context) {
	crt, ok := h.loadCart(c)
	if !ok {
		return
	}

	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid checkout payload"})
		return
	}

	method := domain.PaymentMethod(strings.ToLower(strings.TrimSpace(req.Payment.Method)))
	switch method {
	case domain.PaymentCash, domain.PaymentCard, domain.PaymentPix:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown payment method"})
		return
	}

	form := checkoutsvc.Form{
		Name:           req.Customer.Name,
		Phone:          req.Customer.Phone,
		PostalCode:     req.Customer.PostalCode,
		Address:        req.Customer.Address,
		PaymentMethod:  method,
		ChangeForCents: req.Payment.ChangeForCents,
		PixProofRef:    req.Payment.PixProofRef,
	}

	res, fieldErrs, err := h.deps.Checkout.Checkout(c.Request.Context(), crt, form)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not place order"})
		return
	}
	if len(fieldErrs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fieldErrs})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"order":        res.Order,
		"whatsappLink": res.WhatsAppLink,
	})
}

func (h *handlers) listOrders(c *gin.Context) {
	orders, err := h.deps.Orders.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "orders unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *handlers) getOrder(c *gin.Context) {
	o, err := h.deps.Orders.Get(c.Request.Context(), c.Param("orderID"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "orders unavailable"})
		return
	}
	c.JSON(http.StatusOK, o)
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *handlers) updateOrderStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status required"})
		return
	}

	status := domain.OrderStatus(req.Status)
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
		return
	}

	id := c.Param("orderID")
	if err := h.deps.Orders.UpdateStatus(c.Request.Context(), id, status); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update status"})
		return
	}

	o, err := h.deps.Orders.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load order"})
		return
	}
	c.JSON(http.StatusOK, o)
}
