package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillItem is one line on the in-progress bill. There is at most one
// BillItem per product ID; ringing the same product up again increments
// the quantity instead of adding a line.
type BillItem struct {
	// ProductID references the catalog product this line was rung up from.
	ProductID string `json:"productId"`

	// ProductName is a denormalized snapshot of the product name.
	ProductName string `json:"productName"`

	// Price is the unit price snapshotted at add time (or at the last
	// catalog edit of the product), not a live catalog read.
	Price decimal.Decimal `json:"price"`

	// Quantity is the number of units on this line. Always positive;
	// a quantity of zero removes the line instead.
	Quantity int `json:"quantity"`

	// Total is Price * Quantity. Recomputed on every mutation so the
	// invariant holds at all times.
	Total decimal.Decimal `json:"total"`
}

// Bill is a finalized bill. Bills are created only by the finalizer and
// never mutated afterwards; the history store owns them.
type Bill struct {
	// ID is the unique identifier for the bill (UUID format).
	ID string `json:"id"`

	// Date is when the bill was finalized (RFC 3339 in JSON).
	Date time.Time `json:"date"`

	// Items is the deep-copied snapshot of the composed line items.
	Items []BillItem `json:"items"`

	// TotalAmount is the grand total: subtotal plus 5% tax, rounded to
	// two decimal places.
	TotalAmount decimal.Decimal `json:"totalAmount"`
}
