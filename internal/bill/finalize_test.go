package bill

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storebill/storebill/internal/errs"
	"github.com/storebill/storebill/internal/models"
)

func item(productID string, price int64, quantity int) models.BillItem {
	p := decimal.NewFromInt(price)
	return models.BillItem{
		ProductID: productID,
		Price:     p,
		Quantity:  quantity,
		Total:     p.Mul(decimal.NewFromInt(int64(quantity))),
	}
}

func TestFinalizeEmptyBill(t *testing.T) {
	f := NewFinalizer()

	_, err := f.Finalize(nil)
	require.ErrorIs(t, err, errs.ErrEmptyBill)

	_, err = f.Finalize([]models.BillItem{})
	require.ErrorIs(t, err, errs.ErrEmptyBill)
}

func TestFinalizeComputesTaxedTotal(t *testing.T) {
	// 20x1 + 10x2: subtotal 40, tax 2.00, total 42.00
	items := []models.BillItem{
		item("a", 20, 1),
		item("b", 10, 2),
	}

	subtotal, tax, total := Totals(items)
	assert.True(t, subtotal.Equal(decimal.NewFromInt(40)), "subtotal = %s", subtotal)
	assert.True(t, tax.Equal(decimal.NewFromInt(2)), "tax = %s", tax)
	assert.True(t, total.Equal(decimal.NewFromInt(42)), "total = %s", total)

	now := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	f := NewFinalizer(
		WithIDSource(func() string { return "bill-test-1" }),
		WithClock(func() time.Time { return now }),
	)

	b, err := f.Finalize(items)
	require.NoError(t, err)
	assert.Equal(t, "bill-test-1", b.ID)
	assert.Equal(t, now, b.Date)
	assert.True(t, b.TotalAmount.Equal(decimal.NewFromInt(42)),
		"totalAmount = %s, want 42.00", b.TotalAmount)
}

func TestFinalizeRoundsToTwoPlaces(t *testing.T) {
	// subtotal 0.30, tax 0.015, 0.315 rounds half away from zero to 0.32
	items := []models.BillItem{
		{ProductID: "a", Price: decimal.RequireFromString("0.10"), Quantity: 3, Total: decimal.RequireFromString("0.30")},
	}

	f := NewFinalizer()
	b, err := f.Finalize(items)
	require.NoError(t, err)
	assert.True(t, b.TotalAmount.Equal(decimal.RequireFromString("0.32")),
		"totalAmount = %s, want 0.32", b.TotalAmount)
}

func TestFinalizeSnapshotsItems(t *testing.T) {
	items := []models.BillItem{item("a", 20, 1)}

	f := NewFinalizer()
	b, err := f.Finalize(items)
	require.NoError(t, err)

	// Mutating the source list must not reach the finalized bill.
	items[0].Quantity = 99
	items[0].ProductName = "changed"

	require.Len(t, b.Items, 1)
	assert.Equal(t, 1, b.Items[0].Quantity)
	assert.Empty(t, b.Items[0].ProductName)
}
