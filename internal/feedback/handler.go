package feedback

import (
	"errors"
	"net/http"
	"strconv"

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
// POST /feedback
// --------------------------------------------------
func (h *Handler) Submit(c *gin.Context) {
	userID := c.GetString("userID")

	var req struct {
		Item   string `json:"item"`
		Text   string `json:"feedback"`
		Rating *int   `json:"rating"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	fb, err := h.service.Submit(
		c.Request.Context(),
		req.Item,
		req.Text,
		req.Rating,
		userID,
	)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyText),
			errors.Is(err, ErrInvalidRating),
			errors.Is(err, catalog.ErrUnknownItem):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "could not save feedback, please try again"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "feedback recorded, thank you",
		"feedback": fb,
	})
}

// --------------------------------------------------
// GET /feedback?limit=5
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	var (
		feedbacks []*Feedback
		err       error
	)

	if limit, convErr := strconv.Atoi(c.Query("limit")); convErr == nil && limit > 0 {
		feedbacks, err = h.service.Recent(c.Request.Context(), limit)
	} else {
		feedbacks, err = h.service.List(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "could not load feedback"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"feedback": feedbacks})
}
