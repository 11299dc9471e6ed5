package inventory

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBatch(t *testing.T) {
	purchaseDate := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	t.Run("creates batch with remaining equal to original", func(t *testing.T) {
		b, err := NewBatch("widget pro", "acme", nil, 50,
			decimal.NewFromFloat(99.50),
			decimal.NewFromInt(9), decimal.NewFromInt(9), decimal.NewFromInt(2),
			purchaseDate, "INV-001")

		require.NoError(t, err)
		assert.Equal(t, "Widget Pro", b.ProductName)
		assert.Equal(t, "Acme", b.Brand)
		assert.Equal(t, int64(50), b.OriginalQuantity)
		assert.Equal(t, int64(50), b.RemainingQuantity)
		assert.Equal(t, int64(0), b.SoldQuantity())
		assert.True(t, b.HasStock())
	})

	t.Run("fails with empty product name", func(t *testing.T) {
		_, err := NewBatch("  ", "Acme", nil, 10,
			decimal.NewFromInt(10), decimal.Zero, decimal.Zero, decimal.Zero,
			purchaseDate, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Product name")
	})

	t.Run("fails with negative quantity", func(t *testing.T) {
		_, err := NewBatch("Widget", "Acme", nil, -1,
			decimal.NewFromInt(10), decimal.Zero, decimal.Zero, decimal.Zero,
			purchaseDate, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Quantity")
	})

	t.Run("fails with negative price", func(t *testing.T) {
		_, err := NewBatch("Widget", "Acme", nil, 10,
			decimal.NewFromInt(-5), decimal.Zero, decimal.Zero, decimal.Zero,
			purchaseDate, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Unit price")
	})

	t.Run("fails with negative tax rate", func(t *testing.T) {
		_, err := NewBatch("Widget", "Acme", nil, 10,
			decimal.NewFromInt(5), decimal.NewFromInt(-9), decimal.Zero, decimal.Zero,
			purchaseDate, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Tax rates")
	})

	t.Run("allows zero quantity", func(t *testing.T) {
		b, err := NewBatch("Widget", "Acme", nil, 0,
			decimal.NewFromInt(10), decimal.Zero, decimal.Zero, decimal.Zero,
			purchaseDate, "")
		require.NoError(t, err)
		assert.False(t, b.HasStock())
	})
}

func TestBatch_Deduct(t *testing.T) {
	newBatch := func(qty int64) *Batch {
		b, err := NewBatch("Widget", "Acme", nil, qty,
			decimal.NewFromInt(100), decimal.NewFromInt(9), decimal.NewFromInt(9), decimal.Zero,
			time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "")
		require.NoError(t, err)
		return b
	}

	t.Run("reduces remaining and derives sold", func(t *testing.T) {
		b := newBatch(10)
		require.NoError(t, b.Deduct(4))
		assert.Equal(t, int64(6), b.RemainingQuantity)
		assert.Equal(t, int64(4), b.SoldQuantity())
		assert.Equal(t, int64(10), b.OriginalQuantity)
	})

	t.Run("rejects overdraw", func(t *testing.T) {
		b := newBatch(3)
		err := b.Deduct(4)
		require.Error(t, err)
		assert.Equal(t, int64(3), b.RemainingQuantity)
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		b := newBatch(3)
		require.Error(t, b.Deduct(0))
		require.Error(t, b.Deduct(-1))
	})

	t.Run("sold always equals sum of deductions", func(t *testing.T) {
		b := newBatch(20)
		deductions := []int64{5, 3, 7, 5}
		var total int64
		for _, d := range deductions {
			require.NoError(t, b.Deduct(d))
			total += d
		}
		assert.Equal(t, total, b.SoldQuantity())
		assert.Equal(t, int64(0), b.RemainingQuantity)
	})
}

func TestNormalizeName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"blue WIDGET", "Blue Widget"},
		{"  spaced   out ", "Spaced Out"},
		{"x", "X"},
		{"", ""},
		{"élite tea", "Élite Tea"},
		{"çay SET", "Çay Set"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, NormalizeName(c.in))
	}
}
