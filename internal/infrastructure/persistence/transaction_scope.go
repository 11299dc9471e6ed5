package persistence

import (
	"context"

	"gorm.io/gorm"

	appbilling "github.com/gstbill/backend/internal/application/billing"
	appinv "github.com/gstbill/backend/internal/application/inventory"
	"github.com/gstbill/backend/internal/domain/billing"
	"github.com/gstbill/backend/internal/domain/inventory"
)

// GormInventoryTransactionScope implements the inventory TransactionScope
// using GORM transactions.
type GormInventoryTransactionScope struct {
	db *gorm.DB
}

// NewGormInventoryTransactionScope creates a new GormInventoryTransactionScope
func NewGormInventoryTransactionScope(db *gorm.DB) *GormInventoryTransactionScope {
	return &GormInventoryTransactionScope{db: db}
}

// Execute runs the given function within a database transaction. An error
// from the function rolls the transaction back; success commits it.
func (s *GormInventoryTransactionScope) Execute(ctx context.Context, fn func(repos appinv.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormInventoryRepositories{tx: tx})
	})
}

// gormInventoryRepositories provides transaction-scoped repositories.
type gormInventoryRepositories struct {
	tx *gorm.DB
}

// BatchRepo returns the batch repository scoped to the current transaction.
func (r *gormInventoryRepositories) BatchRepo() inventory.BatchRepository {
	return NewGormBatchRepository(r.tx)
}

// GormBillingTransactionScope implements the billing TransactionScope using
// GORM transactions. Bill generation runs its availability checks, batch
// decrements, sequence advance and bill writes through one instance of this
// scope so they commit or roll back as a unit.
type GormBillingTransactionScope struct {
	db *gorm.DB
}

// NewGormBillingTransactionScope creates a new GormBillingTransactionScope
func NewGormBillingTransactionScope(db *gorm.DB) *GormBillingTransactionScope {
	return &GormBillingTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
func (s *GormBillingTransactionScope) Execute(ctx context.Context, fn func(repos appbilling.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormBillingRepositories{tx: tx})
	})
}

// gormBillingRepositories provides transaction-scoped repositories.
type gormBillingRepositories struct {
	tx *gorm.DB
}

// BatchRepo returns the batch repository scoped to the current transaction.
func (r *gormBillingRepositories) BatchRepo() inventory.BatchRepository {
	return NewGormBatchRepository(r.tx)
}

// BillRepo returns the bill repository scoped to the current transaction.
func (r *gormBillingRepositories) BillRepo() billing.BillRepository {
	return NewGormBillRepository(r.tx)
}

// SequenceRepo returns the sequence repository scoped to the current transaction.
func (r *gormBillingRepositories) SequenceRepo() billing.SequenceRepository {
	return NewGormSequenceRepository(r.tx)
}

var _ appinv.TransactionScope = (*GormInventoryTransactionScope)(nil)
var _ appinv.TransactionalRepositories = (*gormInventoryRepositories)(nil)
var _ appbilling.TransactionScope = (*GormBillingTransactionScope)(nil)
var _ appbilling.TransactionalRepositories = (*gormBillingRepositories)(nil)
