package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/hsf/backend/internal/domain/catalog"
	"github.com/hsf/backend/internal/domain/inventory"
	"github.com/hsf/backend/internal/domain/sales"
	"github.com/hsf/backend/internal/domain/sequence"
)

// MockCartRepository is a mock implementation of sales.CartRepository
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.CartLine, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sales.CartLine), args.Error(1)
}

func (m *MockCartRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*sales.CartLine, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*sales.CartLine), args.Error(1)
}

func (m *MockCartRepository) FindByCustomerAndComponent(ctx context.Context, customerID, componentID uuid.UUID) (*sales.CartLine, error) {
	args := m.Called(ctx, customerID, componentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sales.CartLine), args.Error(1)
}

func (m *MockCartRepository) Save(ctx context.Context, line *sales.CartLine) error {
	args := m.Called(ctx, line)
	return args.Error(0)
}

func (m *MockCartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCartRepository) ClearByCustomer(ctx context.Context, customerID uuid.UUID) error {
	args := m.Called(ctx, customerID)
	return args.Error(0)
}

// MockSalesQuoteRepository is a mock implementation of sales.SalesQuoteRepository
type MockSalesQuoteRepository struct {
	mock.Mock
}

func (m *MockSalesQuoteRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.SalesQuote, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sales.SalesQuote), args.Error(1)
}

func (m *MockSalesQuoteRepository) FindByNumber(ctx context.Context, no string) (*sales.SalesQuote, error) {
	args := m.Called(ctx, no)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sales.SalesQuote), args.Error(1)
}

func (m *MockSalesQuoteRepository) FindAll(ctx context.Context, offset, limit int) ([]*sales.SalesQuote, int64, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*sales.SalesQuote), args.Get(1).(int64), args.Error(2)
}

func (m *MockSalesQuoteRepository) Save(ctx context.Context, quote *sales.SalesQuote) error {
	args := m.Called(ctx, quote)
	return args.Error(0)
}

func (m *MockSalesQuoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSalesInvoiceRepository is a mock implementation of sales.SalesInvoiceRepository
type MockSalesInvoiceRepository struct {
	mock.Mock
}

func (m *MockSalesInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.SalesInvoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sales.SalesInvoice), args.Error(1)
}

func (m *MockSalesInvoiceRepository) FindByNumber(ctx context.Context, no string) (*sales.SalesInvoice, error) {
	args := m.Called(ctx, no)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sales.SalesInvoice), args.Error(1)
}

func (m *MockSalesInvoiceRepository) FindByQuoteNumber(ctx context.Context, quoteNo string) (*sales.SalesInvoice, error) {
	args := m.Called(ctx, quoteNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sales.SalesInvoice), args.Error(1)
}

func (m *MockSalesInvoiceRepository) FindAll(ctx context.Context, offset, limit int) ([]*sales.SalesInvoice, int64, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*sales.SalesInvoice), args.Get(1).(int64), args.Error(2)
}

func (m *MockSalesInvoiceRepository) Save(ctx context.Context, invoice *sales.SalesInvoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

// MockSalesDeliveryRepository is a mock implementation of sales.SalesDeliveryRepository
type MockSalesDeliveryRepository struct {
	mock.Mock
}

func (m *MockSalesDeliveryRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.SalesDelivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sales.SalesDelivery), args.Error(1)
}

func (m *MockSalesDeliveryRepository) FindByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]*sales.SalesDelivery, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*sales.SalesDelivery), args.Error(1)
}

func (m *MockSalesDeliveryRepository) FindActiveByInvoice(ctx context.Context, invoiceID uuid.UUID) (*sales.SalesDelivery, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sales.SalesDelivery), args.Error(1)
}

func (m *MockSalesDeliveryRepository) FindByStatus(ctx context.Context, status sales.SalesDeliveryStatus, limit int) ([]*sales.SalesDelivery, error) {
	args := m.Called(ctx, status, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*sales.SalesDelivery), args.Error(1)
}

func (m *MockSalesDeliveryRepository) FindAll(ctx context.Context, offset, limit int) ([]*sales.SalesDelivery, int64, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*sales.SalesDelivery), args.Get(1).(int64), args.Error(2)
}

func (m *MockSalesDeliveryRepository) Save(ctx context.Context, delivery *sales.SalesDelivery) error {
	args := m.Called(ctx, delivery)
	return args.Error(0)
}

// MockComponentRepository is a mock implementation of catalog.ComponentRepository
type MockComponentRepository struct {
	mock.Mock
}

func (m *MockComponentRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Component, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Component), args.Error(1)
}

func (m *MockComponentRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*catalog.Component, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]*catalog.Component), args.Error(1)
}

func (m *MockComponentRepository) FindAll(ctx context.Context, offset, limit int) ([]*catalog.Component, int64, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*catalog.Component), args.Get(1).(int64), args.Error(2)
}

func (m *MockComponentRepository) Save(ctx context.Context, component *catalog.Component) error {
	args := m.Called(ctx, component)
	return args.Error(0)
}

func (m *MockComponentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockLedgerRepository is a mock implementation of inventory.LedgerRepository
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) Append(ctx context.Context, entries ...*inventory.LedgerEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockLedgerRepository) FindByResource(ctx context.Context, resourceType inventory.ResourceType, resourceID uuid.UUID) ([]inventory.LedgerEntry, error) {
	args := m.Called(ctx, resourceType, resourceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) DeleteByResource(ctx context.Context, resourceType inventory.ResourceType, resourceID uuid.UUID) (int64, error) {
	args := m.Called(ctx, resourceType, resourceID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedgerRepository) FindByComponent(ctx context.Context, componentID uuid.UUID, asOf time.Time) ([]inventory.LedgerEntry, error) {
	args := m.Called(ctx, componentID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.LedgerEntry), args.Error(1)
}

// StubAllocator hands out sequential numbers per series without a database.
type StubAllocator struct {
	counters map[string]int64
}

func NewStubAllocator() *StubAllocator {
	return &StubAllocator{counters: make(map[string]int64)}
}

func (a *StubAllocator) Next(_ context.Context, series sequence.Series) (string, error) {
	a.counters[series.Name]++
	return series.Format(a.counters[series.Name]), nil
}
