package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/dakarmarket/backend/internal/domain/errors"
	"github.com/dakarmarket/backend/internal/domain/model"
	"github.com/dakarmarket/backend/internal/server/http/dto"
)

// OrderHandler manages checkout and order lifecycle endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Checkout handles POST /api/orders/checkout.
func (h *OrderHandler) Checkout(c *gin.Context) {
	orders, err := h.facade.Checkout(c.Request.Context(), CurrentProfile(c))
	if err != nil && !errors.Is(err, domainErrors.ErrCartNotCleared) {
		switch {
		case errors.Is(err, domainErrors.ErrForbidden):
			c.Status(http.StatusForbidden)
		case errors.Is(err, domainErrors.ErrEmptyCart):
			c.Status(http.StatusUnprocessableEntity)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	resp := dto.CheckoutResponse{Orders: make([]dto.OrderResponse, 0, len(orders))}
	for _, o := range orders {
		resp.Orders = append(resp.Orders, toOrderResponse(o))
	}
	if err != nil {
		resp.Warning = "orders placed but cart not cleared"
	}
	c.JSON(http.StatusCreated, resp)
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	status := model.OrderStatus(c.Query("status"))
	orders, err := h.facade.Orders(c.Request.Context(), CurrentProfile(c), status)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidStatus):
			c.Status(http.StatusUnprocessableEntity)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	resp := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, toOrderResponse(o))
	}
	c.JSON(http.StatusOK, resp)
}

// StatusCounts handles GET /api/orders/counts.
func (h *OrderHandler) StatusCounts(c *gin.Context) {
	counts, err := h.facade.OrderStatusCounts(c.Request.Context(), CurrentProfile(c))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	resp := make(map[string]int, len(counts))
	for status, count := range counts {
		resp[string(status)] = count
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateStatus handles PATCH /api/orders/:id/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req dto.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.TransitionOrder(c.Request.Context(), CurrentProfile(c), c.Param("id"), model.OrderStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidStatus):
			c.Status(http.StatusUnprocessableEntity)
		case errors.Is(err, domainErrors.ErrForbidden):
			c.Status(http.StatusForbidden)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrInvalidTransition):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(*order))
}
