package inventory

import (
	"context"

	"github.com/gstbill/backend/internal/domain/inventory"
)

// TransactionScope provides transactional access to the batch store. All
// repository operations inside Execute share one database transaction and
// commit or roll back atomically.
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
}

// NoOpTransactionScope runs the function without a real transaction. Useful in
// tests where atomicity is not under test.
type NoOpTransactionScope struct {
	batchRepo inventory.BatchRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope over the repository.
func NewNoOpTransactionScope(batchRepo inventory.BatchRepository) *NoOpTransactionScope {
	return &NoOpTransactionScope{batchRepo: batchRepo}
}

// Execute runs fn directly.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// BatchRepo returns the batch repository.
func (s *NoOpTransactionScope) BatchRepo() inventory.BatchRepository {
	return s.batchRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
