package nav

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	controller *Controller
}

func NewHandler(controller *Controller) *Handler {
	return &Handler{controller: controller}
}

// --------------------------------------------------
// Current screen
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"screen": h.controller.Current()})
}

// --------------------------------------------------
// Navigate to a screen
// --------------------------------------------------
func (h *Handler) Navigate(c *gin.Context) {
	var req struct {
		To Screen `json:"to"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.controller.Navigate(req.To); err != nil {
		if errors.Is(err, ErrUnknownScreen) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"screen": h.controller.Current()})
}
