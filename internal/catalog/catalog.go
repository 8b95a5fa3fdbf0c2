package catalog

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownItem = errors.New("item not found in catalog")

// Item is one orderable entry on the canteen menu.
type Item struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    int    `json:"price"` // whole pesos
}

// Catalog is the static category → item → price menu.
// It is built once at startup and never mutated.
type Catalog struct {
	categories map[string]map[string]int
	byName     map[string]Item
}

// New validates and indexes a category → item → price mapping.
func New(data map[string]map[string]int) (*Catalog, error) {
	c := &Catalog{
		categories: make(map[string]map[string]int, len(data)),
		byName:     make(map[string]Item),
	}

	for category, items := range data {
		if category == "" {
			return nil, errors.New("empty category name")
		}

		c.categories[category] = make(map[string]int, len(items))

		for name, price := range items {
			if name == "" {
				return nil, fmt.Errorf("empty item name in category %q", category)
			}
			if price <= 0 {
				return nil, fmt.Errorf("item %q has non-positive price %d", name, price)
			}
			if _, dup := c.byName[name]; dup {
				return nil, fmt.Errorf("item %q appears in more than one category", name)
			}

			c.categories[category][name] = price
			c.byName[name] = Item{Name: name, Category: category, Price: price}
		}
	}

	return c, nil
}

// Default is the standard canteen menu.
func Default() *Catalog {
	c, err := New(map[string]map[string]int{
		"Breakfast": {"Pancakes": 30, "Omelette": 25, "Toast": 15},
		"Snack":     {"Burger": 50, "Spaghetti": 60, "Fries": 40, "Pizza": 250},
		"Lunch":     {"Rice": 10, "Fried Egg": 20, "Chicken Curry": 70, "Fried Chicken": 50, "Hotdog": 35},
		"Drinks":    {"Coke": 20, "Iced Tea": 25, "Bottled Water": 15, "Coffee": 20, "Milk Tea": 45},
		"Dessert":   {"Ice Cream": 30, "Cupcake": 25, "Leche Flan": 35},
	})
	if err != nil {
		panic(err) // static data, cannot fail
	}
	return c
}

// PriceOf returns the unit price of an item.
func (c *Catalog) PriceOf(name string) (int, error) {
	item, ok := c.byName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownItem, name)
	}
	return item.Price, nil
}

// CategoryOf reports which category an item belongs to.
func (c *Catalog) CategoryOf(name string) (string, bool) {
	item, ok := c.byName[name]
	if !ok {
		return "", false
	}
	return item.Category, true
}

// Has reports whether an item exists on the menu.
func (c *Catalog) Has(name string) bool {
	_, ok := c.byName[name]
	return ok
}

// Items returns every menu item sorted by category then name.
func (c *Catalog) Items() []Item {
	items := make([]Item, 0, len(c.byName))
	for _, item := range c.byName {
		items = append(items, item)
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Category != items[j].Category {
			return items[i].Category < items[j].Category
		}
		return items[i].Name < items[j].Name
	})

	return items
}

// Categories returns category names in sorted order.
func (c *Catalog) Categories() []string {
	names := make([]string, 0, len(c.categories))
	for name := range c.categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByCategory returns the category → item → price view for the menu endpoint.
func (c *Catalog) ByCategory() map[string]map[string]int {
	out := make(map[string]map[string]int, len(c.categories))
	for category, items := range c.categories {
		view := make(map[string]int, len(items))
		for name, price := range items {
			view[name] = price
		}
		out[category] = view
	}
	return out
}
