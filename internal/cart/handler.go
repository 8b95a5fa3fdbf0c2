package cart

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/IlogonPearl/Canteen-Genai-System/internal/catalog"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// GET /cart
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	sessionID := c.GetString("sessionID")

	cart, err := h.service.Get(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "cart store unavailable"})
		return
	}

	total, err := cart.Total(h.service.menu)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": cart.Lines(),
		"total": total,
	})
}

// --------------------------------------------------
// PUT /cart/items
// --------------------------------------------------
func (h *Handler) SetItem(c *gin.Context) {
	sessionID := c.GetString("sessionID")

	var req struct {
		Item     string `json:"item"`
		Quantity *int   `json:"quantity"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || req.Item == "" || req.Quantity == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item and quantity are required"})
		return
	}

	cart, err := h.service.SetQuantity(
		c.Request.Context(),
		sessionID,
		req.Item,
		*req.Quantity,
	)
	if err != nil {
		if errors.Is(err, catalog.ErrUnknownItem) || errors.Is(err, ErrNegativeQuantity) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "cart store unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": cart.Lines(),
	})
}

// --------------------------------------------------
// DELETE /cart
// --------------------------------------------------
func (h *Handler) Clear(c *gin.Context) {
	sessionID := c.GetString("sessionID")

	if err := h.service.Clear(c.Request.Context(), sessionID); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "cart store unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "cart cleared"})
}
