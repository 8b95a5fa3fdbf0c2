package session

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// --------------------------------------------------
// POST /session
// --------------------------------------------------
// Open a new anonymous ordering session. The optional user_id is echoed
// onto receipts and feedback written during the session.
func Open(c *gin.Context) {
	var req struct {
		UserID string `json:"user_id"`
	}

	// Body is optional; an empty one opens an anonymous session.
	_ = c.ShouldBindJSON(&req)

	sessionID := NewSessionID()
	token, err := GenerateToken(sessionID, req.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not open session"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"session_id": sessionID,
		"token":      token,
	})
}
