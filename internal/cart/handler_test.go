package cart

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	menu := testMenu(t)
	handler := NewHandler(NewService(NewMemoryStore(), menu))

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("sessionID", "session-1")
	})
	r.GET("/cart", handler.Get)
	r.PUT("/cart/items", handler.SetItem)
	r.DELETE("/cart", handler.Clear)

	return r
}

func putItem(t *testing.T, r *gin.Engine, item string, qty int) *httptest.ResponseRecorder {
	t.Helper()

	body, _ := json.Marshal(map[string]any{"item": item, "quantity": qty})
	req := httptest.NewRequest(http.MethodPut, "/cart/items", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCartEndpoints_AddAndTotal(t *testing.T) {
	r := setupTestRouter(t)

	require.Equal(t, http.StatusOK, putItem(t, r, "Burger", 2).Code)
	require.Equal(t, http.StatusOK, putItem(t, r, "Fries", 1).Code)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []Line `json:"items"`
		Total int    `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, 130, resp.Total)
	assert.Len(t, resp.Items, 2)
}

func TestCartEndpoints_UnknownItem(t *testing.T) {
	r := setupTestRouter(t)

	w := putItem(t, r, "Sushi", 1)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartEndpoints_NegativeQuantity(t *testing.T) {
	r := setupTestRouter(t)

	w := putItem(t, r, "Burger", -2)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartEndpoints_Clear(t *testing.T) {
	r := setupTestRouter(t)

	require.Equal(t, http.StatusOK, putItem(t, r, "Burger", 2).Code)

	req := httptest.NewRequest(http.MethodDelete, "/cart", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/cart", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp struct {
		Items []Line `json:"items"`
		Total int    `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Items)
	assert.Zero(t, resp.Total)
}
