package billing

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/gstbill/backend/internal/domain/billing"
	"github.com/gstbill/backend/internal/domain/inventory"
	"github.com/gstbill/backend/internal/domain/partner"
	"github.com/gstbill/backend/internal/domain/shared"
)

// maxGenerateRetries bounds how often a bill generation is retried after a
// concurrent allocation drained a batch between read and write. Each retry
// restarts the whole operation; the allocation is never resumed mid-walk
// because the FIFO order and availability picture are stale by then.
const maxGenerateRetries = 3

// BillingService generates bills: it composes the invoice sequencer, the FIFO
// allocator and the bill store into one all-or-nothing operation. A bill
// generation moves Building -> Pricing -> Allocating and terminates in either
// Committed (bill stored, stock decremented) or RolledBack (no visible effect).
type BillingService struct {
	scope        TransactionScope
	customerRepo partner.CustomerRepository
	billRepo     billing.BillRepository
	now          func() time.Time
	logger       *zap.Logger
}

// NewBillingService creates a BillingService using the wall clock.
func NewBillingService(scope TransactionScope, customerRepo partner.CustomerRepository, billRepo billing.BillRepository, logger *zap.Logger) *BillingService {
	return NewBillingServiceWithClock(scope, customerRepo, billRepo, time.Now, logger)
}

// NewBillingServiceWithClock creates a BillingService with an injected clock,
// used by the sequencer's fiscal-year rule and the bill date.
func NewBillingServiceWithClock(scope TransactionScope, customerRepo partner.CustomerRepository, billRepo billing.BillRepository, now func() time.Time, logger *zap.Logger) *BillingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BillingService{
		scope:        scope,
		customerRepo: customerRepo,
		billRepo:     billRepo,
		now:          now,
		logger:       logger,
	}
}

// GenerateBill turns a cart into a persisted bill. Per cart line the stock is
// allocated FIFO across the product's batches; one bill line is persisted per
// allocation tuple so a line spanning batches with different tax rates is
// taxed per portion. Any failure after any write rolls everything back: no
// bill, no lines, no decrements, counter restored.
func (s *BillingService) GenerateBill(ctx context.Context, cart Cart) (*BillResult, error) {
	// Building
	if len(cart.Lines) == 0 {
		return nil, shared.NewValidationError("Cart must have at least one line")
	}
	if cart.CustomerName == "" {
		return nil, shared.NewValidationError("Customer is required")
	}
	for _, line := range cart.Lines {
		if line.Quantity <= 0 {
			return nil, shared.NewValidationError("Line quantity must be positive")
		}
		if line.UnitPrice.IsNegative() {
			return nil, shared.NewValidationError("Line price must not be negative")
		}
	}

	customer, err := s.customerRepo.FindByName(ctx, cart.CustomerName)
	if err != nil {
		return nil, err
	}

	var result *BillResult
	for attempt := 1; ; attempt++ {
		result, err = s.generateOnce(ctx, customer, cart.Lines)
		if err == nil {
			return result, nil
		}
		if !errors.Is(err, shared.ErrConcurrentModification) || attempt >= maxGenerateRetries {
			return nil, err
		}
		s.logger.Warn("Bill generation hit a concurrent allocation, retrying",
			zap.Int("attempt", attempt),
			zap.String("customer", cart.CustomerName),
		)
	}
}

// generateOnce is one attempt at the transaction: sequence, allocate, persist.
func (s *BillingService) generateOnce(ctx context.Context, customer *partner.Customer, lines []CartLine) (*BillResult, error) {
	var result *BillResult

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		// Pricing: the invoice number is issued inside the transaction, so a
		// rolled-back bill also rolls the counter back and the numbering
		// stays gap-free.
		sequencer := billing.NewInvoiceSequencerWithClock(repos.SequenceRepo(), s.now)
		invoiceNumber, err := sequencer.Next(ctx)
		if err != nil {
			return err
		}

		bill, err := billing.NewBill(invoiceNumber, customer.ID, s.now())
		if err != nil {
			return err
		}

		// Allocating: the availability check and the decrements share this
		// transaction; any pre-flight stock display the caller did was
		// advisory only.
		for _, line := range lines {
			batches, err := repos.BatchRepo().FindAllocatable(ctx, line.ProductName)
			if err != nil {
				return err
			}
			plan, err := inventory.PlanAllocation(line.ProductName, line.Quantity, batches)
			if err != nil {
				return err
			}
			for _, tuple := range plan.Tuples {
				if err := repos.BatchRepo().DecrementRemaining(ctx, tuple.BatchID, tuple.QuantityTaken); err != nil {
					return err
				}
				// The quoted cart price is the snapshot on the line; the tax
				// rates come from the batch the portion was taken from.
				bill.AddLine(line.ProductName, tuple.QuantityTaken, line.UnitPrice,
					tuple.CGSTRate, tuple.SGSTRate, tuple.CESSRate, tuple.BatchID)
			}
		}

		if err := repos.BillRepo().Create(ctx, bill); err != nil {
			return err
		}

		lineResults := make([]BillLineResult, len(bill.Lines))
		for i, l := range bill.Lines {
			lineResults[i] = BillLineResult{
				ProductName: l.ProductName,
				Quantity:    l.Quantity,
				UnitPrice:   l.UnitPrice,
				CGSTRate:    l.CGSTRate,
				SGSTRate:    l.SGSTRate,
				CESSRate:    l.CESSRate,
			}
		}
		result = &BillResult{
			InvoiceNumber: bill.InvoiceNumber,
			TotalAmount:   bill.TotalAmount,
			BillDate:      bill.BillDate,
			Lines:         lineResults,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Bill generated",
		zap.Int64("invoice_number", result.InvoiceNumber),
		zap.String("customer", customer.Name),
		zap.String("total", result.TotalAmount.StringFixed(2)),
	)
	return result, nil
}

// ListBills returns the sales report for a date range.
func (s *BillingService) ListBills(ctx context.Context, from, to time.Time) ([]billing.Bill, error) {
	return s.billRepo.List(ctx, from, to)
}

// FindBill loads a bill with its lines by fiscal year and invoice number.
func (s *BillingService) FindBill(ctx context.Context, fiscalYear int, invoiceNumber int64) (*billing.Bill, error) {
	return s.billRepo.FindByInvoiceNumber(ctx, fiscalYear, invoiceNumber)
}
