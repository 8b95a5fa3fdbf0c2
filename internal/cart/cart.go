package cart

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/IlogonPearl/Canteen-Genai-System/internal/catalog"
)

var ErrNegativeQuantity = errors.New("quantity must not be negative")

// Line is one cart entry. Quantity is always > 0 while the line exists.
type Line struct {
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
}

// Cart is the session-scoped item → quantity map accumulated before checkout.
type Cart struct {
	SessionID string         `json:"session_id"`
	Items     map[string]int `json:"items"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func New(sessionID string) *Cart {
	return &Cart{
		SessionID: sessionID,
		Items:     make(map[string]int),
		UpdatedAt: time.Now(),
	}
}

// SetQuantity upserts an entry. Zero removes it, negative is rejected.
func (c *Cart) SetQuantity(item string, qty int) error {
	if qty < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeQuantity, qty)
	}

	if c.Items == nil {
		c.Items = make(map[string]int)
	}

	if qty == 0 {
		delete(c.Items, item)
	} else {
		c.Items[item] = qty
	}

	c.UpdatedAt = time.Now()
	return nil
}

func (c *Cart) Quantity(item string) int {
	return c.Items[item]
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Lines returns the cart entries sorted by item name.
func (c *Cart) Lines() []Line {
	lines := make([]Line, 0, len(c.Items))
	for item, qty := range c.Items {
		lines = append(lines, Line{Item: item, Quantity: qty})
	}

	sort.Slice(lines, func(i, j int) bool {
		return lines[i].Item < lines[j].Item
	})

	return lines
}

// Total prices the cart against the current catalog.
func (c *Cart) Total(menu *catalog.Catalog) (int, error) {
	total := 0

	for item, qty := range c.Items {
		price, err := menu.PriceOf(item)
		if err != nil {
			return 0, err
		}
		total += price * qty
	}

	return total, nil
}

// Clear empties the cart after a successful checkout.
func (c *Cart) Clear() {
	c.Items = make(map[string]int)
	c.UpdatedAt = time.Now()
}
