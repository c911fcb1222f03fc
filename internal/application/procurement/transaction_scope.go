package procurement

import (
	"context"

	"github.com/hsf/backend/internal/domain/catalog"
	"github.com/hsf/backend/internal/domain/inventory"
	"github.com/hsf/backend/internal/domain/procurement"
	"github.com/hsf/backend/internal/domain/sequence"
)

// TransactionScope provides transactional access to the repositories the
// procurement workflows touch. Everything executed inside the scope commits
// or rolls back as one database transaction; the sequence allocator
// participates too, so an aborted create never burns a document number.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides the repositories scoped to the current
// transaction.
type TransactionalRepositories interface {
	InvoiceRepo() procurement.PurchaseInvoiceRepository
	DeliveryRepo() procurement.InboundDeliveryRepository
	ComponentRepo() catalog.ComponentRepository
	LedgerRepo() inventory.LedgerRepository
	Sequences() sequence.Allocator
}

// NoOpTransactionScope runs the function without a real transaction. Used in
// tests with mocked repositories.
type NoOpTransactionScope struct {
	invoiceRepo   procurement.PurchaseInvoiceRepository
	deliveryRepo  procurement.InboundDeliveryRepository
	componentRepo catalog.ComponentRepository
	ledgerRepo    inventory.LedgerRepository
	sequences     sequence.Allocator
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	invoiceRepo procurement.PurchaseInvoiceRepository,
	deliveryRepo procurement.InboundDeliveryRepository,
	componentRepo catalog.ComponentRepository,
	ledgerRepo inventory.LedgerRepository,
	sequences sequence.Allocator,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
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

// InvoiceRepo returns the purchase invoice repository.
func (s *NoOpTransactionScope) InvoiceRepo() procurement.PurchaseInvoiceRepository {
	return s.invoiceRepo
}

// DeliveryRepo returns the inbound delivery repository.
func (s *NoOpTransactionScope) DeliveryRepo() procurement.InboundDeliveryRepository {
	return s.deliveryRepo
}

// ComponentRepo returns the component repository.
func (s *NoOpTransactionScope) ComponentRepo() catalog.ComponentRepository {
	return s.componentRepo
}

// LedgerRepo returns the inventory ledger repository.
func (s *NoOpTransactionScope) LedgerRepo() inventory.LedgerRepository {
	return s.ledgerRepo
}

// Sequences returns the document number allocator.
func (s *NoOpTransactionScope) Sequences() sequence.Allocator {
	return s.sequences
}
