package billing

import (
	"context"
	"time"
)

// BillRepository persists bill headers and their lines.
type BillRepository interface {
	// Create persists a bill and all of its lines
	Create(ctx context.Context, bill *Bill) error

	// FindByInvoiceNumber loads a bill with its lines. Invoice numbers are
	// unique per fiscal year only, so the lookup is scoped to one.
	FindByInvoiceNumber(ctx context.Context, fiscalYear int, invoiceNumber int64) (*Bill, error)

	// List returns bills in the given date range, newest first. Zero times
	// leave the corresponding bound open.
	List(ctx context.Context, from, to time.Time) ([]Bill, error)
}

// SequenceRepository persists per-year invoice counters.
type SequenceRepository interface {
	// Current returns the last issued number for the year, creating the
	// counter row at zero if the year has no row yet. When called inside a
	// transaction the row stays locked until commit.
	Current(ctx context.Context, year int) (int64, error)

	// Advance moves the counter from the observed value to the new one. The
	// write is conditional on the stored value still being from; a lost race
	// surfaces as ErrConcurrentModification.
	Advance(ctx context.Context, year int, from, to int64) error
}
