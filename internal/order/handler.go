package order

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// Current order (lines + totals)
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	lines, total, err := h.service.Lines(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if lines == nil {
		lines = []Line{}
	}

	c.JSON(http.StatusOK, gin.H{
		"lines":          lines,
		"total":          total,
		"total_quantity": h.service.TotalQuantity(),
	})
}

// --------------------------------------------------
// Quantity mutations
// --------------------------------------------------
func (h *Handler) Increment(c *gin.Context) {
	err := h.service.AddItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrUnknownItem) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"quantity": h.service.basket.Quantity(c.Param("id"))})
}

func (h *Handler) Decrement(c *gin.Context) {
	h.service.DecrementItem(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"quantity": h.service.basket.Quantity(c.Param("id"))})
}

func (h *Handler) Remove(c *gin.Context) {
	h.service.RemoveItem(c.Param("id"))
	c.Status(http.StatusNoContent)
}

func (h *Handler) Clear(c *gin.Context) {
	h.service.ClearBasket()
	c.Status(http.StatusNoContent)
}
