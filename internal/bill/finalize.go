package bill

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/storebill/storebill/internal/errs"
	"github.com/storebill/storebill/internal/models"
)

// taxRate is the fixed 5% surcharge applied to the subtotal at finalize time.
var taxRate = decimal.New(5, -2)

// IDSource supplies opaque unique IDs for finalized bills.
type IDSource func() string

// Clock supplies the finalize timestamp.
type Clock func() time.Time

// Finalizer snapshots a composed line item list into an immutable Bill.
type Finalizer struct {
	newID IDSource
	now   Clock
}

// FinalizerOption configures a Finalizer.
type FinalizerOption func(*Finalizer)

// WithIDSource overrides the default UUID-based bill ID source.
func WithIDSource(fn IDSource) FinalizerOption {
	return func(f *Finalizer) { f.newID = fn }
}

// WithClock overrides the wall clock, for deterministic timestamps.
func WithClock(fn Clock) FinalizerOption {
	return func(f *Finalizer) { f.now = fn }
}

// NewFinalizer returns a finalizer using UUIDs and the wall clock.
func NewFinalizer(opts ...FinalizerOption) *Finalizer {
	f := &Finalizer{newID: uuid.NewString, now: time.Now}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Finalize builds an immutable Bill from the given lines: subtotal is the
// sum of line totals, tax is 5% of the subtotal, and the grand total is
// rounded to two decimal places. The items are deep-copied so later
// composer mutations cannot reach the recorded bill. Finalizing an empty
// list fails with errs.ErrEmptyBill and has no effect.
func (f *Finalizer) Finalize(items []models.BillItem) (models.Bill, error) {
	if len(items) == 0 {
		return models.Bill{}, errs.ErrEmptyBill
	}

	_, _, total := Totals(items)

	snapshot := make([]models.BillItem, len(items))
	copy(snapshot, items)

	return models.Bill{
		ID:          f.newID(),
		Date:        f.now().UTC(),
		Items:       snapshot,
		TotalAmount: total,
	}, nil
}

// Totals derives the subtotal, the 5% tax amount, and the rounded grand
// total for a line item list. Used both by Finalize and by callers that
// preview the amounts before finalizing.
func Totals(items []models.BillItem) (subtotal, tax, total decimal.Decimal) {
	subtotal = decimal.Zero
	for i := range items {
		subtotal = subtotal.Add(items[i].Total)
	}
	tax = subtotal.Mul(taxRate)
	total = subtotal.Add(tax).Round(2)
	return subtotal, tax, total
}
