package inventory

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gstbill/backend/internal/domain/billing"
	"github.com/gstbill/backend/internal/domain/inventory"
	"github.com/gstbill/backend/internal/domain/partner"
	"github.com/gstbill/backend/internal/domain/shared"
)

// PurchaseService records purchase entries as stock batches. One submission
// may carry several product lines; all of its batches are created in a single
// transaction.
type PurchaseService struct {
	scope       TransactionScope
	companyRepo partner.CompanyRepository
	logger      *zap.Logger
}

// NewPurchaseService creates a PurchaseService.
func NewPurchaseService(scope TransactionScope, companyRepo partner.CompanyRepository, logger *zap.Logger) *PurchaseService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PurchaseService{
		scope:       scope,
		companyRepo: companyRepo,
		logger:      logger,
	}
}

// RecordPurchase validates the submission and creates one batch per line.
// The GST slab on each line is split into equal CGST and SGST halves here, at
// entry time; the rates are frozen on the batch from then on.
func (s *PurchaseService) RecordPurchase(ctx context.Context, input PurchaseInput) (*PurchaseResult, error) {
	if len(input.Lines) == 0 {
		return nil, shared.NewValidationError("Purchase entry must have at least one line")
	}

	var companyID *uuid.UUID
	if input.CompanyName != "" {
		company, err := s.companyRepo.FindByName(ctx, input.CompanyName)
		if err != nil {
			return nil, err
		}
		companyID = &company.ID
	}

	batches := make([]*inventory.Batch, 0, len(input.Lines))
	for _, line := range input.Lines {
		if line.GSTSlab.IsNegative() {
			return nil, shared.NewValidationError("GST slab must not be negative")
		}
		cgst, sgst := billing.SplitSlab(line.GSTSlab)
		batch, err := inventory.NewBatch(
			line.ProductName, line.Brand, companyID,
			line.Quantity, line.UnitPrice,
			cgst, sgst, line.CESSRate,
			input.PurchaseDate, input.SupplierInvoice,
		)
		if err != nil {
			return nil, err
		}
		batches = append(batches, batch)
	}

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		return repos.BatchRepo().CreateAll(ctx, batches)
	})
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, len(batches))
	for i, b := range batches {
		ids[i] = b.ID
	}

	s.logger.Info("Purchase recorded",
		zap.Int("lines", len(batches)),
		zap.String("supplier_invoice", input.SupplierInvoice),
	)
	return &PurchaseResult{BatchIDs: ids}, nil
}
