package billing

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBill(t *testing.T) {
	billDate := time.Date(2024, 6, 15, 14, 0, 0, 0, time.UTC)

	t.Run("creates bill with zero total", func(t *testing.T) {
		b, err := NewBill(7, uuid.New(), billDate)
		require.NoError(t, err)
		assert.Equal(t, int64(7), b.InvoiceNumber)
		assert.True(t, b.TotalAmount.IsZero())
		assert.Empty(t, b.Lines)
	})

	t.Run("rejects missing customer", func(t *testing.T) {
		_, err := NewBill(7, uuid.Nil, billDate)
		require.Error(t, err)
	})

	t.Run("rejects non-positive invoice number", func(t *testing.T) {
		_, err := NewBill(0, uuid.New(), billDate)
		require.Error(t, err)
	})
}

func TestBill_AddLine(t *testing.T) {
	billDate := time.Date(2024, 6, 15, 14, 0, 0, 0, time.UTC)

	t.Run("total applies cgst and sgst to the base", func(t *testing.T) {
		b, err := NewBill(1, uuid.New(), billDate)
		require.NoError(t, err)

		b.AddLine("Widget", 10, decimal.NewFromInt(100),
			decimal.NewFromInt(9), decimal.NewFromInt(9), decimal.NewFromInt(2), uuid.New())

		// 1000 * (1 + 18/100); cess is recorded on the line but stays out of
		// the invoice grand total.
		assert.True(t, b.TotalAmount.Equal(decimal.NewFromInt(1180)), "total = %s", b.TotalAmount)
		require.Len(t, b.Lines, 1)
		assert.True(t, b.Lines[0].CESSRate.Equal(decimal.NewFromInt(2)))
	})

	t.Run("lines split across batches keep per-portion rates", func(t *testing.T) {
		b, err := NewBill(2, uuid.New(), billDate)
		require.NoError(t, err)

		batchA, batchB := uuid.New(), uuid.New()
		b.AddLine("Widget", 5, decimal.NewFromInt(100),
			decimal.NewFromInt(9), decimal.NewFromInt(9), decimal.Zero, batchA)
		b.AddLine("Widget", 2, decimal.NewFromInt(100),
			decimal.NewFromInt(14), decimal.NewFromInt(14), decimal.Zero, batchB)

		// 500*1.18 + 200*1.28
		assert.True(t, b.TotalAmount.Equal(decimal.NewFromInt(846)), "total = %s", b.TotalAmount)
		assert.Equal(t, int64(7), b.TotalQuantityFor("Widget"))
	})

	t.Run("bill total equals the documented line formula", func(t *testing.T) {
		b, err := NewBill(3, uuid.New(), billDate)
		require.NoError(t, err)

		b.AddLine("Widget", 3, decimal.NewFromFloat(33.33),
			decimal.NewFromFloat(2.5), decimal.NewFromFloat(2.5), decimal.Zero, uuid.New())
		b.AddLine("Gadget", 1, decimal.NewFromInt(500),
			decimal.NewFromInt(9), decimal.NewFromInt(9), decimal.NewFromInt(1), uuid.New())

		want := decimal.Zero
		for _, l := range b.Lines {
			base := l.UnitPrice.Mul(decimal.NewFromInt(l.Quantity))
			want = want.Add(base.Mul(decimal.NewFromInt(1).Add(l.CGSTRate.Add(l.SGSTRate).Div(decimal.NewFromInt(100)))))
		}
		assert.True(t, b.TotalAmount.Equal(want), "total = %s want %s", b.TotalAmount, want)
	})
}
