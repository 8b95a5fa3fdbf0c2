package report

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/IlogonPearl/Canteen-Genai-System/internal/catalog"
	"github.com/IlogonPearl/Canteen-Genai-System/internal/order"
)

type Handler struct {
	receipts order.Repository
	menu     *catalog.Catalog
}

func NewHandler(receipts order.Repository, menu *catalog.Catalog) *Handler {
	return &Handler{receipts: receipts, menu: menu}
}

// --------------------------------------------------
// GET /reports/sales/items
// --------------------------------------------------
func (h *Handler) SalesByItem(c *gin.Context) {
	receipts, err := h.receipts.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "could not load receipts"})
		return
	}

	rows := Expand(receipts, h.menu)
	c.JSON(http.StatusOK, gin.H{"sales": ByItem(rows)})
}

// --------------------------------------------------
// GET /reports/sales/categories
// --------------------------------------------------
func (h *Handler) SalesByCategory(c *gin.Context) {
	receipts, err := h.receipts.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "could not load receipts"})
		return
	}

	rows := Expand(receipts, h.menu)
	c.JSON(http.StatusOK, gin.H{"sales": ByCategory(rows, h.menu)})
}
