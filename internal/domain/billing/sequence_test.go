package billing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gstbill/backend/internal/domain/shared"
)

func TestNextCandidate(t *testing.T) {
	t.Run("increments on an ordinary day", func(t *testing.T) {
		now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
		assert.Equal(t, int64(42), NextCandidate(now, 41))
		assert.Equal(t, int64(1), NextCandidate(now, 0))
	})

	t.Run("forces 1 on April 1st regardless of stored value", func(t *testing.T) {
		april1 := time.Date(2024, 4, 1, 15, 30, 0, 0, time.UTC)
		assert.Equal(t, int64(1), NextCandidate(april1, 0))
		assert.Equal(t, int64(1), NextCandidate(april1, 99))
		// The reset applies on every call made that day, not only the first.
		assert.Equal(t, int64(1), NextCandidate(april1, 1))
	})

	t.Run("does not reset on other days of April", func(t *testing.T) {
		april2 := time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, int64(100), NextCandidate(april2, 99))
	})
}

func TestFiscalYear(t *testing.T) {
	tests := []struct {
		date time.Time
		want int
	}{
		{time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), 2024},
		{time.Date(2024, 12, 31, 23, 59, 0, 0, time.UTC), 2024},
		{time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), 2024},
		{time.Date(2025, 3, 31, 23, 59, 0, 0, time.UTC), 2024},
		{time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), 2025},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FiscalYear(tt.date), tt.date.Format("2006-01-02"))
	}
}

// memorySequenceRepository drives the conditional-advance contract in memory.
type memorySequenceRepository struct {
	counters map[int]int64
}

func newMemorySequenceRepository() *memorySequenceRepository {
	return &memorySequenceRepository{counters: make(map[int]int64)}
}

func (r *memorySequenceRepository) Current(_ context.Context, year int) (int64, error) {
	if _, ok := r.counters[year]; !ok {
		r.counters[year] = 0
	}
	return r.counters[year], nil
}

func (r *memorySequenceRepository) Advance(_ context.Context, year int, from, to int64) error {
	if r.counters[year] != from {
		return shared.ErrConcurrentModification
	}
	r.counters[year] = to
	return nil
}

func TestInvoiceSequencer_Next(t *testing.T) {
	ctx := context.Background()

	t.Run("fresh year starts at 1 then 2", func(t *testing.T) {
		repo := newMemorySequenceRepository()
		seq := NewInvoiceSequencerWithClock(repo, func() time.Time {
			return time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
		})

		n, err := seq.Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		n, err = seq.Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})

	t.Run("serialized calls issue exactly 1..N", func(t *testing.T) {
		repo := newMemorySequenceRepository()
		seq := NewInvoiceSequencerWithClock(repo, func() time.Time {
			return time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
		})

		for want := int64(1); want <= 50; want++ {
			n, err := seq.Next(ctx)
			require.NoError(t, err)
			require.Equal(t, want, n)
		}
	})

	t.Run("april 1st resets every call that day", func(t *testing.T) {
		repo := newMemorySequenceRepository()
		repo.counters[2024] = 37

		seq := NewInvoiceSequencerWithClock(repo, func() time.Time {
			return time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)
		})

		n, err := seq.Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		n, err = seq.Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("numbering carries across the calendar year boundary", func(t *testing.T) {
		repo := newMemorySequenceRepository()
		repo.counters[2024] = 7

		// January 2025 is still fiscal year 2024, so the sequence continues.
		seq := NewInvoiceSequencerWithClock(repo, func() time.Time {
			return time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC)
		})

		n, err := seq.Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(8), n)

		// April opens a fresh fiscal year and the numbering restarts.
		seq = NewInvoiceSequencerWithClock(repo, func() time.Time {
			return time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
		})
		n, err = seq.Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
		assert.Equal(t, int64(8), repo.counters[2024])
		assert.Equal(t, int64(1), repo.counters[2025])
	})

	t.Run("lost advance race surfaces concurrent modification", func(t *testing.T) {
		repo := newMemorySequenceRepository()
		seq := NewInvoiceSequencerWithClock(repo, func() time.Time {
			return time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
		})

		// Another caller advances the counter between our read and write.
		_, err := repo.Current(ctx, 2024)
		require.NoError(t, err)
		repo.counters[2024] = 5

		// Simulate the interleaving: the sequencer observed 0 but the row now
		// holds 5, so its conditional advance from 0 must fail.
		err = repo.Advance(ctx, 2024, 0, 1)
		require.ErrorIs(t, err, shared.ErrConcurrentModification)

		// A full retry sees the new value and succeeds with no duplicate.
		n, err := seq.Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(6), n)
	})
}
