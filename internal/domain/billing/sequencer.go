package billing

import (
	"context"
	"time"
)

// InvoiceSequencer issues the next invoice number for the active fiscal year.
// Numbers within a year are strictly increasing and never reused as long as
// the repository is driven inside the caller's transaction: the counter row is
// locked on read and the advance is conditional on the observed value.
type InvoiceSequencer struct {
	repo SequenceRepository
	now  func() time.Time
}

// NewInvoiceSequencer creates a sequencer using the wall clock.
func NewInvoiceSequencer(repo SequenceRepository) *InvoiceSequencer {
	return NewInvoiceSequencerWithClock(repo, time.Now)
}

// NewInvoiceSequencerWithClock creates a sequencer with an injected clock.
func NewInvoiceSequencerWithClock(repo SequenceRepository, now func() time.Time) *InvoiceSequencer {
	return &InvoiceSequencer{repo: repo, now: now}
}

// Next issues the next invoice number for the active fiscal year, creating
// the year's counter on first use and applying the April 1st reset rule. The
// counter row is keyed by fiscal year, so numbering carries across the
// calendar-year boundary in January and restarts with the fresh row in April.
func (s *InvoiceSequencer) Next(ctx context.Context) (int64, error) {
	now := s.now()
	year := FiscalYear(now)

	last, err := s.repo.Current(ctx, year)
	if err != nil {
		return 0, err
	}

	candidate := NextCandidate(now, last)
	if err := s.repo.Advance(ctx, year, last, candidate); err != nil {
		return 0, err
	}
	return candidate, nil
}
