package order

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/IlogonPearl/Canteen-Genai-System/internal/catalog"
	"github.com/IlogonPearl/Canteen-Genai-System/internal/db"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// POST /checkout
// --------------------------------------------------
func (h *Handler) Checkout(c *gin.Context) {
	sessionID := c.GetString("sessionID")
	userID := c.GetString("userID")

	var req struct {
		PaymentMethod string `json:"payment_method"`
		Details       string `json:"details"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || req.PaymentMethod == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "payment_method is required"})
		return
	}

	result, err := h.service.Checkout(
		c.Request.Context(),
		sessionID,
		PaymentMethod(req.PaymentMethod),
		req.Details,
		userID,
	)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyCart),
			errors.Is(err, ErrInvalidPayment),
			errors.Is(err, catalog.ErrUnknownItem):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, db.ErrPersistence):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "could not save receipt, please try again"})
		default:
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "checkout unavailable"})
		}
		return
	}

	c.JSON(http.StatusCreated, result)
}

// --------------------------------------------------
// GET /receipts
// --------------------------------------------------
func (h *Handler) ListReceipts(c *gin.Context) {
	receipts, err := h.service.ListReceipts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "could not load receipts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"receipts": receipts})
}
