package persistence

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	appprocurement "github.com/hsf/backend/internal/application/procurement"
	"github.com/hsf/backend/internal/domain/catalog"
	"github.com/hsf/backend/internal/domain/inventory"
	"github.com/hsf/backend/internal/domain/procurement"
	"github.com/hsf/backend/internal/domain/sequence"
)

// GormProcurementTransactionScope implements the procurement application
// TransactionScope using GORM transactions
type GormProcurementTransactionScope struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewGormProcurementTransactionScope creates a new GormProcurementTransactionScope
func NewGormProcurementTransactionScope(db *gorm.DB, logger *zap.Logger) *GormProcurementTransactionScope {
	return &GormProcurementTransactionScope{db: db, logger: logger}
}

// Execute runs the given function within a database transaction
func (s *GormProcurementTransactionScope) Execute(ctx context.Context, fn func(repos appprocurement.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := &gormProcurementRepositories{tx: tx, logger: s.logger}
		return fn(repos)
	})
}

// gormProcurementRepositories provides repositories scoped to a transaction
type gormProcurementRepositories struct {
	tx     *gorm.DB
	logger *zap.Logger
}

func (r *gormProcurementRepositories) InvoiceRepo() procurement.PurchaseInvoiceRepository {
	return NewGormPurchaseInvoiceRepository(r.tx)
}

func (r *gormProcurementRepositories) DeliveryRepo() procurement.InboundDeliveryRepository {
	return NewGormInboundDeliveryRepository(r.tx)
}

func (r *gormProcurementRepositories) ComponentRepo() catalog.ComponentRepository {
	return NewGormComponentRepository(r.tx)
}

func (r *gormProcurementRepositories) LedgerRepo() inventory.LedgerRepository {
	return NewGormLedgerRepository(r.tx)
}

func (r *gormProcurementRepositories) Sequences() sequence.Allocator {
	return NewSequenceAllocator(r.tx, r.logger)
}

var (
	_ appprocurement.TransactionScope          = (*GormProcurementTransactionScope)(nil)
	_ appprocurement.TransactionalRepositories = (*gormProcurementRepositories)(nil)
)
