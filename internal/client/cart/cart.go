// Package cart implements the decoration cart: a map from item id to
// quantity, held in memory until the booking it belongs to is confirmed.
// It is never persisted.
package cart

import (
	"sort"

	"github.com/lookdine/lookdine/internal/client/models"
)

// Line is one cart position.
type Line struct {
	Item     models.DecorationItem
	Quantity int
}

// Cart tracks quantities for a fixed item catalog. Not safe for concurrent
// use; the UI drives it from a single goroutine.
type Cart struct {
	items      map[string]int
	priceIndex map[string]models.DecorationItem
}

// New builds an empty cart over the given catalog. Items outside the catalog
// cannot be added.
func New(catalog []models.DecorationItem) *Cart {
	idx := make(map[string]models.DecorationItem, len(catalog))
	for _, item := range catalog {
		idx[item.ID] = item
	}
	return &Cart{items: make(map[string]int), priceIndex: idx}
}

// Add increments the quantity of the item, creating the line on first add.
// Unknown ids are ignored and reported via the return value.
func (c *Cart) Add(itemID string) bool {
	if _, ok := c.priceIndex[itemID]; !ok {
		return false
	}
	c.items[itemID]++
	return true
}

// Remove decrements the quantity; removing the last unit deletes the line
// entirely.
func (c *Cart) Remove(itemID string) {
	q, ok := c.items[itemID]
	if !ok {
		return
	}
	if q <= 1 {
		delete(c.items, itemID)
		return
	}
	c.items[itemID] = q - 1
}

// Quantity returns the current quantity for an item, zero if absent.
func (c *Cart) Quantity(itemID string) int {
	return c.items[itemID]
}

// Total is the derived sum of price × quantity over all lines.
func (c *Cart) Total() int {
	total := 0
	for id, q := range c.items {
		total += c.priceIndex[id].Price * q
	}
	return total
}

// Count is the total number of units across all lines.
func (c *Cart) Count() int {
	n := 0
	for _, q := range c.items {
		n += q
	}
	return n
}

// Lines returns the cart contents ordered by item id.
func (c *Cart) Lines() []Line {
	lines := make([]Line, 0, len(c.items))
	for id, q := range c.items {
		lines = append(lines, Line{Item: c.priceIndex[id], Quantity: q})
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].Item.ID < lines[j].Item.ID })
	return lines
}

// Empty reports whether the cart has no lines.
func (c *Cart) Empty() bool {
	return len(c.items) == 0
}

// Clear drops all lines. Called once the booking the cart decorates is
// confirmed.
func (c *Cart) Clear() {
	c.items = make(map[string]int)
}
