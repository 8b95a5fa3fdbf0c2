package assistant

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
// POST /assistant/ask
// --------------------------------------------------
func (h *Handler) Ask(c *gin.Context) {
	var req struct {
		Question string `json:"question"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	answer, err := h.service.Ask(c.Request.Context(), req.Question)
	if err != nil {
		if errors.Is(err, ErrEmptyQuestion) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		// AI failure is never fatal to the session; tell the user and move on.
		c.JSON(http.StatusBadGateway, gin.H{"error": "AI model error, please try again later"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"answer": answer})
}
