package sales

import (
	"context"

	"github.com/hsf/backend/internal/domain/catalog"
	"github.com/hsf/backend/internal/domain/inventory"
	"github.com/hsf/backend/internal/domain/sales"
	"github.com/hsf/backend/internal/domain/sequence"
)

// TransactionScope provides transactional access to the repositories the
// sales workflows touch. Quote promotion, delivery completion and voiding
// each span several tables and must commit or roll back as one unit.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides the repositories scoped to the current
// transaction.
type TransactionalRepositories interface {
	CartRepo() sales.CartRepository
	QuoteRepo() sales.SalesQuoteRepository
	InvoiceRepo() sales.SalesInvoiceRepository
	DeliveryRepo() sales.SalesDeliveryRepository
	ComponentRepo() catalog.ComponentRepository
	LedgerRepo() inventory.LedgerRepository
	Sequences() sequence.Allocator
}

// NoOpTransactionScope runs the function without a real transaction. Used in
// tests with mocked repositories.
type NoOpTransactionScope struct {
	cartRepo      sales.CartRepository
	quoteRepo     sales.SalesQuoteRepository
	invoiceRepo   sales.SalesInvoiceRepository
	deliveryRepo  sales.SalesDeliveryRepository
	componentRepo catalog.ComponentRepository
	ledgerRepo    inventory.LedgerRepository
	sequences     sequence.Allocator
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	cartRepo sales.CartRepository,
	quoteRepo sales.SalesQuoteRepository,
	invoiceRepo sales.SalesInvoiceRepository,
	deliveryRepo sales.SalesDeliveryRepository,
	componentRepo catalog.ComponentRepository,
	ledgerRepo inventory.LedgerRepository,
	sequences sequence.Allocator,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		cartRepo:      cartRepo,
		quoteRepo:     quoteRepo,
		invoiceRepo:   invoiceRepo,
		deliveryRepo:  deliveryRepo,
		componentRepo: componentRepo,
		ledgerRepo:    ledgerRepo,
		sequences:     sequences,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// CartRepo returns the cart repository.
func (s *NoOpTransactionScope) CartRepo() sales.CartRepository { return s.cartRepo }

// QuoteRepo returns the sales quote repository.
func (s *NoOpTransactionScope) QuoteRepo() sales.SalesQuoteRepository { return s.quoteRepo }

// InvoiceRepo returns the sales invoice repository.
func (s *NoOpTransactionScope) InvoiceRepo() sales.SalesInvoiceRepository { return s.invoiceRepo }

// DeliveryRepo returns the sales delivery repository.
func (s *NoOpTransactionScope) DeliveryRepo() sales.SalesDeliveryRepository { return s.deliveryRepo }

// ComponentRepo returns the component repository.
func (s *NoOpTransactionScope) ComponentRepo() catalog.ComponentRepository { return s.componentRepo }

// LedgerRepo returns the inventory ledger repository.
func (s *NoOpTransactionScope) LedgerRepo() inventory.LedgerRepository { return s.ledgerRepo }

// Sequences returns the document number allocator.
func (s *NoOpTransactionScope) Sequences() sequence.Allocator { return s.sequences }
