package inventory

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gstbill/backend/internal/domain/shared"
)

func testBatch(t *testing.T, product string, qty int64, price float64, purchased time.Time) Batch {
	t.Helper()
	b, err := NewBatch(product, "Acme", nil, qty,
		decimal.NewFromFloat(price),
		decimal.NewFromInt(9), decimal.NewFromInt(9), decimal.Zero,
		purchased, "")
	require.NoError(t, err)
	return *b
}

func TestPlanAllocation(t *testing.T) {
	jan1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	jan10 := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	t.Run("consumes oldest batch first across batches", func(t *testing.T) {
		a := testBatch(t, "Widget", 5, 100, jan1)
		b := testBatch(t, "Widget", 5, 110, jan10)

		plan, err := PlanAllocation("Widget", 7, []Batch{b, a})

		require.NoError(t, err)
		require.Len(t, plan.Tuples, 2)
		assert.Equal(t, a.ID, plan.Tuples[0].BatchID)
		assert.Equal(t, int64(5), plan.Tuples[0].QuantityTaken)
		assert.True(t, plan.Tuples[0].UnitPrice.Equal(decimal.NewFromInt(100)))
		assert.Equal(t, b.ID, plan.Tuples[1].BatchID)
		assert.Equal(t, int64(2), plan.Tuples[1].QuantityTaken)
		assert.True(t, plan.Tuples[1].UnitPrice.Equal(decimal.NewFromInt(110)))
		assert.Equal(t, int64(7), plan.TotalTaken())
		assert.Equal(t, int64(10), plan.TotalAvailable)
	})

	t.Run("older batch is exhausted before a newer one is touched", func(t *testing.T) {
		batches := []Batch{
			testBatch(t, "Widget", 3, 100, jan10),
			testBatch(t, "Widget", 4, 100, jan1),
			testBatch(t, "Widget", 2, 100, time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)),
		}

		plan, err := PlanAllocation("Widget", 8, batches)

		require.NoError(t, err)
		require.Len(t, plan.Tuples, 3)
		// Every tuple except the last takes the batch's full remaining quantity.
		assert.Equal(t, int64(4), plan.Tuples[0].QuantityTaken)
		assert.Equal(t, int64(3), plan.Tuples[1].QuantityTaken)
		assert.Equal(t, int64(1), plan.Tuples[2].QuantityTaken)
	})

	t.Run("fails with insufficient stock and reports totals", func(t *testing.T) {
		batches := []Batch{
			testBatch(t, "Widget", 2, 100, jan1),
			testBatch(t, "Widget", 3, 100, jan10),
		}

		plan, err := PlanAllocation("Widget", 6, batches)

		require.Error(t, err)
		assert.Nil(t, plan)
		var insufficientErr *shared.InsufficientStockError
		require.ErrorAs(t, err, &insufficientErr)
		assert.Equal(t, int64(5), insufficientErr.Available)
		assert.Equal(t, int64(6), insufficientErr.Requested)
	})

	t.Run("ignores drained batches", func(t *testing.T) {
		drained := testBatch(t, "Widget", 5, 100, jan1)
		require.NoError(t, (&drained).Deduct(5))
		fresh := testBatch(t, "Widget", 5, 100, jan10)

		plan, err := PlanAllocation("Widget", 3, []Batch{drained, fresh})

		require.NoError(t, err)
		require.Len(t, plan.Tuples, 1)
		assert.Equal(t, fresh.ID, plan.Tuples[0].BatchID)
	})

	t.Run("rejects non-positive request", func(t *testing.T) {
		_, err := PlanAllocation("Widget", 0, nil)
		require.Error(t, err)
	})

	t.Run("tuples carry each batch's own rates", func(t *testing.T) {
		a, err := NewBatch("Widget", "Acme", nil, 2,
			decimal.NewFromInt(100),
			decimal.NewFromInt(9), decimal.NewFromInt(9), decimal.Zero,
			jan1, "")
		require.NoError(t, err)
		b, err := NewBatch("Widget", "Acme", nil, 2,
			decimal.NewFromInt(100),
			decimal.NewFromInt(14), decimal.NewFromInt(14), decimal.NewFromInt(1),
			jan10, "")
		require.NoError(t, err)

		plan, err := PlanAllocation("Widget", 4, []Batch{*a, *b})

		require.NoError(t, err)
		require.Len(t, plan.Tuples, 2)
		assert.True(t, plan.Tuples[0].CGSTRate.Equal(decimal.NewFromInt(9)))
		assert.True(t, plan.Tuples[1].CGSTRate.Equal(decimal.NewFromInt(14)))
		assert.True(t, plan.Tuples[1].CESSRate.Equal(decimal.NewFromInt(1)))
	})
}

func TestSortBatchesFIFO(t *testing.T) {
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("orders by purchase date then creation time", func(t *testing.T) {
		older := testBatch(t, "Widget", 1, 100, day.AddDate(0, 0, -2))
		newer := testBatch(t, "Widget", 1, 100, day)

		batches := []Batch{newer, older}
		SortBatchesFIFO(batches)

		assert.Equal(t, older.ID, batches[0].ID)
		assert.Equal(t, newer.ID, batches[1].ID)
	})

	t.Run("same-date ordering is deterministic across shuffles", func(t *testing.T) {
		a := testBatch(t, "Widget", 1, 100, day)
		b := testBatch(t, "Widget", 1, 100, day)
		c := testBatch(t, "Widget", 1, 100, day)
		// Pin identical creation times so only the ID tie-break remains.
		created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		a.CreatedAt, b.CreatedAt, c.CreatedAt = created, created, created

		first := []Batch{a, b, c}
		second := []Batch{c, a, b}
		SortBatchesFIFO(first)
		SortBatchesFIFO(second)

		for i := range first {
			assert.Equal(t, first[i].ID, second[i].ID)
		}
	})
}
