package billing

import (
	"context"

	"github.com/gstbill/backend/internal/domain/billing"
	"github.com/gstbill/backend/internal/domain/inventory"
)

// TransactionScope provides transactional access to the stores a bill
// generation touches. The availability check, the per-batch decrements, the
// sequence advance and the bill writes of one call all run inside one
// database transaction and commit or roll back as a unit.
type TransactionScope interface {
	// Execute runs fn within a database transaction. An error from fn rolls
	// the transaction back; success commits it.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories exposes the repositories scoped to the current
// transaction.
type TransactionalRepositories interface {
	// BatchRepo returns the batch repository bound to the transaction
	BatchRepo() inventory.BatchRepository
	// BillRepo returns the bill repository bound to the transaction
	BillRepo() billing.BillRepository
	// SequenceRepo returns the sequence repository bound to the transaction
	SequenceRepo() billing.SequenceRepository
}
