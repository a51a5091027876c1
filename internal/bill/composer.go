// Package bill implements the bill-composition engine: the mutable
// in-progress line item list, the totals math, and the finalizer that
// snapshots the composition into an immutable historical bill.
package bill

import (
	"github.com/shopspring/decimal"

	"github.com/storebill/storebill/internal/models"
)

// Composer owns the current in-progress bill's line items. It keeps the
// uniqueness invariant (one line per product ID) and recomputes each
// line's total on every mutation so total == price * quantity always
// holds. The composer assumes a single writer.
type Composer struct {
	items []models.BillItem
}

// NewComposer returns an empty composer.
func NewComposer() *Composer {
	return &Composer{}
}

// AddItem rings up one unit of the product. An existing line for the same
// product ID gets its quantity incremented at the line's snapshotted price
// (the price is not re-read from the catalog); otherwise a new line with
// quantity 1 is appended. Existing lines keep their position.
func (c *Composer) AddItem(p models.Product) {
	for i := range c.items {
		if c.items[i].ProductID == p.ID {
			c.items[i].Quantity++
			c.items[i].Total = lineTotal(c.items[i].Price, c.items[i].Quantity)
			return
		}
	}
	c.items = append(c.items, models.BillItem{
		ProductID:   p.ID,
		ProductName: p.Name,
		Price:       p.Price,
		Quantity:    1,
		Total:       p.Price,
	})
}

// UpdateQuantity sets the quantity of the line for productID and recomputes
// its total. A quantity of zero or less removes the line. Unknown product
// IDs are a silent no-op.
func (c *Composer) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity = quantity
			c.items[i].Total = lineTotal(c.items[i].Price, quantity)
			return
		}
	}
}

// RemoveItem removes the line for productID if present.
func (c *Composer) RemoveItem(productID string) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// ReconcileCatalogUpdate propagates a catalog edit into the matching line:
// the name and price are replaced with the new values and the total is
// recomputed, while the quantity is preserved. After this, the line again
// reflects the catalog price as of the last add or edit.
func (c *Composer) ReconcileCatalogUpdate(p models.Product) {
	for i := range c.items {
		if c.items[i].ProductID == p.ID {
			c.items[i].ProductName = p.Name
			c.items[i].Price = p.Price
			c.items[i].Total = lineTotal(p.Price, c.items[i].Quantity)
			return
		}
	}
}

// ReconcileCatalogDelete removes the line referencing a deleted product.
func (c *Composer) ReconcileCatalogDelete(productID string) {
	c.RemoveItem(productID)
}

// Clear empties the composer. Interactive callers confirm with the user
// first; the operation itself is unconditional.
func (c *Composer) Clear() {
	c.items = nil
}

// Subtotal returns the sum of all line totals, zero for an empty bill.
func (c *Composer) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for i := range c.items {
		subtotal = subtotal.Add(c.items[i].Total)
	}
	return subtotal
}

// Items returns a defensive copy of the current lines in order.
func (c *Composer) Items() []models.BillItem {
	out := make([]models.BillItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of lines on the in-progress bill.
func (c *Composer) Len() int { return len(c.items) }

func lineTotal(price decimal.Decimal, quantity int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(quantity)))
}
