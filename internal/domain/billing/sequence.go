package billing

import "time"

// SequenceCounter holds the last issued invoice number for one fiscal year.
// It is mutated only through a SequenceRepository's conditional advance, so
// two callers can never persist the same candidate.
type SequenceCounter struct {
	Year              int // fiscal year, labelled by its starting calendar year
	LastInvoiceNumber int64
}

// FiscalYear returns the fiscal year a date falls in, labelled by the
// calendar year the fiscal year starts in: April 2024 through March 2025 is
// fiscal year 2024.
func FiscalYear(t time.Time) int {
	if t.Month() < time.April {
		return t.Year() - 1
	}
	return t.Year()
}

// NextCandidate computes the invoice number to issue after last, applying the
// fiscal-year rollover rule: on April 1st the candidate is forced back to 1
// regardless of the stored value.
//
// Note the reset fires on every call made on April 1st, not only the first of
// that day. This reproduces the established behavior; changing it to a
// once-per-year reset would need a product decision and a reset-done marker.
func NextCandidate(now time.Time, last int64) int64 {
	if now.Month() == time.April && now.Day() == 1 {
		return 1
	}
	return last + 1
}
