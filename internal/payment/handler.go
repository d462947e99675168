package payment

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"kissthecheff/internal/nav"
	"kissthecheff/internal/order"
)

type Handler struct {
	flow   *Flow
	orders *order.Service
	nav    *nav.Controller
}

func NewHandler(flow *Flow, orders *order.Service, navc *nav.Controller) *Handler {
	return &Handler{flow: flow, orders: orders, nav: navc}
}

// --------------------------------------------------
// Payment state (methods, selection, message, order total)
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	_, total, err := h.orders.Lines(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"methods":  Methods(),
		"selected": h.flow.Selected(),
		"message":  h.flow.Message(),
		"total":    total,
	})
}

// --------------------------------------------------
// Select a payment method
// --------------------------------------------------
func (h *Handler) SelectMethod(c *gin.Context) {
	var req struct {
		Method string `json:"method"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.flow.SelectMethod(req.Method); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"selected": h.flow.Selected()})
}

// --------------------------------------------------
// Confirm the order
// --------------------------------------------------

// On success the basket is cleared and navigation returns to the
// menu after the confirmation delay. Confirming without a method is
// a recoverable failure surfaced through the message.
func (h *Handler) Confirm(c *gin.Context) {
	err := h.flow.Confirm(func() {
		h.orders.ClearBasket()
		h.nav.OrderCompleted()
	})
	if err != nil {
		if errors.Is(err, ErrNoMethodSelected) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   err.Error(),
				"message": h.flow.Message(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"message": h.flow.Message()})
}
