package inventory

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gstbill/backend/internal/domain/shared"
)

// AllocationTuple describes one batch's contribution to satisfying a requested
// quantity. A single request may span batches with different prices or tax
// rates, so callers must not assume one rate per request.
type AllocationTuple struct {
	BatchID       uuid.UUID
	QuantityTaken int64
	UnitPrice     decimal.Decimal
	CGSTRate      decimal.Decimal
	SGSTRate      decimal.Decimal
	CESSRate      decimal.Decimal
}

// AllocationPlan is the outcome of planning a FIFO allocation: the ordered set
// of per-batch deductions that together satisfy the requested quantity.
type AllocationPlan struct {
	Product        string
	Requested      int64
	Tuples         []AllocationTuple
	TotalAvailable int64
}

// SortBatchesFIFO orders batches oldest purchase date first. Ties are broken by
// creation time and then by batch ID ascending: the source data has no natural
// secondary key, so this is a documented policy that guarantees a deterministic
// total order, stable across retries.
func SortBatchesFIFO(batches []Batch) {
	sort.Slice(batches, func(i, j int) bool {
		if !batches[i].PurchaseDate.Equal(batches[j].PurchaseDate) {
			return batches[i].PurchaseDate.Before(batches[j].PurchaseDate)
		}
		if !batches[i].CreatedAt.Equal(batches[j].CreatedAt) {
			return batches[i].CreatedAt.Before(batches[j].CreatedAt)
		}
		return batches[i].ID.String() < batches[j].ID.String()
	})
}

// PlanAllocation walks the product's batches oldest first and computes the
// deductions needed to satisfy the requested quantity. It performs no writes:
// the caller executes the plan inside the same transaction that fetched the
// batches, otherwise the availability picture may be stale.
//
// Returns InsufficientStockError when the batches cannot cover the request;
// in that case no plan is produced.
func PlanAllocation(product string, requested int64, batches []Batch) (*AllocationPlan, error) {
	if requested <= 0 {
		return nil, shared.NewValidationError("Requested quantity must be positive")
	}

	available := make([]Batch, 0, len(batches))
	var totalAvailable int64
	for _, b := range batches {
		if b.HasStock() {
			available = append(available, b)
			totalAvailable += b.RemainingQuantity
		}
	}

	if totalAvailable < requested {
		return nil, shared.NewInsufficientStockError(product, totalAvailable, requested)
	}

	SortBatchesFIFO(available)

	tuples := make([]AllocationTuple, 0, len(available))
	remaining := requested
	for _, b := range available {
		if remaining == 0 {
			break
		}
		take := remaining
		if b.RemainingQuantity < take {
			take = b.RemainingQuantity
		}
		tuples = append(tuples, AllocationTuple{
			BatchID:       b.ID,
			QuantityTaken: take,
			UnitPrice:     b.UnitPrice,
			CGSTRate:      b.CGSTRate,
			SGSTRate:      b.SGSTRate,
			CESSRate:      b.CESSRate,
		})
		remaining -= take
	}

	return &AllocationPlan{
		Product:        product,
		Requested:      requested,
		Tuples:         tuples,
		TotalAvailable: totalAvailable,
	}, nil
}

// TotalTaken sums the quantities across all tuples in the plan. For a
// successful plan this always equals the requested quantity.
func (p *AllocationPlan) TotalTaken() int64 {
	var total int64
	for _, t := range p.Tuples {
		total += t.QuantityTaken
	}
	return total
}
