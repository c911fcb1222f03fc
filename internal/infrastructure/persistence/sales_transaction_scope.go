package persistence

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	appsales "github.com/hsf/backend/internal/application/sales"
	"github.com/hsf/backend/internal/domain/catalog"
	"github.com/hsf/backend/internal/domain/inventory"
	"github.com/hsf/backend/internal/domain/sales"
	"github.com/hsf/backend/internal/domain/sequence"
)

// GormSalesTransactionScope implements the sales application TransactionScope
// using GORM transactions
type GormSalesTransactionScope struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewGormSalesTransactionScope creates a new GormSalesTransactionScope
func NewGormSalesTransactionScope(db *gorm.DB, logger *zap.Logger) *GormSalesTransactionScope {
	return &GormSalesTransactionScope{db: db, logger: logger}
}

// Execute runs the given function within a database transaction
func (s *GormSalesTransactionScope) Execute(ctx context.Context, fn func(repos appsales.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := &gormSalesRepositories{tx: tx, logger: s.logger}
		return fn(repos)
	})
}

// gormSalesRepositories provides repositories scoped to a transaction
type gormSalesRepositories struct {
	tx     *gorm.DB
	logger *zap.Logger
}

func (r *gormSalesRepositories) CartRepo() sales.CartRepository {
	return NewGormCartRepository(r.tx)
}

func (r *gormSalesRepositories) QuoteRepo() sales.SalesQuoteRepository {
	return NewGormSalesQuoteRepository(r.tx)
}

func (r *gormSalesRepositories) InvoiceRepo() sales.SalesInvoiceRepository {
	return NewGormSalesInvoiceRepository(r.tx)
}

func (r *gormSalesRepositories) DeliveryRepo() sales.SalesDeliveryRepository {
	return NewGormSalesDeliveryRepository(r.tx)
}

func (r *gormSalesRepositories) ComponentRepo() catalog.ComponentRepository {
	return NewGormComponentRepository(r.tx)
}

func (r *gormSalesRepositories) LedgerRepo() inventory.LedgerRepository {
	return NewGormLedgerRepository(r.tx)
}

func (r *gormSalesRepositories) Sequences() sequence.Allocator {
	return NewSequenceAllocator(r.tx, r.logger)
}

var (
	_ appsales.TransactionScope          = (*GormSalesTransactionScope)(nil)
	_ appsales.TransactionalRepositories = (*gormSalesRepositories)(nil)
)
