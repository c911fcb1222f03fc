package procurement

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/hsf/backend/internal/domain/catalog"
	"github.com/hsf/backend/internal/domain/inventory"
	"github.com/hsf/backend/internal/domain/procurement"
	"github.com/hsf/backend/internal/domain/sequence"
)

// MockPurchaseInvoiceRepository is a mock implementation of procurement.PurchaseInvoiceRepository
type MockPurchaseInvoiceRepository struct {
	mock.Mock
}

func (m *MockPurchaseInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*procurement.PurchaseInvoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*procurement.PurchaseInvoice), args.Error(1)
}

func (m *MockPurchaseInvoiceRepository) FindByNumber(ctx context.Context, no string) (*procurement.PurchaseInvoice, error) {
	args := m.Called(ctx, no)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*procurement.PurchaseInvoice), args.Error(1)
}

func (m *MockPurchaseInvoiceRepository) FindAll(ctx context.Context, offset, limit int) ([]*procurement.PurchaseInvoice, int64, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*procurement.PurchaseInvoice), args.Get(1).(int64), args.Error(2)
}

func (m *MockPurchaseInvoiceRepository) Save(ctx context.Context, invoice *procurement.PurchaseInvoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

// MockInboundDeliveryRepository is a mock implementation of procurement.InboundDeliveryRepository
type MockInboundDeliveryRepository struct {
	mock.Mock
}

func (m *MockInboundDeliveryRepository) FindByID(ctx context.Context, id uuid.UUID) (*procurement.InboundDelivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*procurement.InboundDelivery), args.Error(1)
}

func (m *MockInboundDeliveryRepository) FindByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]*procurement.InboundDelivery, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*procurement.InboundDelivery), args.Error(1)
}

func (m *MockInboundDeliveryRepository) FindAll(ctx context.Context, offset, limit int) ([]*procurement.InboundDelivery, int64, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*procurement.InboundDelivery), args.Get(1).(int64), args.Error(2)
}

func (m *MockInboundDeliveryRepository) Save(ctx context.Context, delivery *procurement.InboundDelivery) error {
	args := m.Called(ctx, delivery)
	return args.Error(0)
}

func (m *MockInboundDeliveryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInboundDeliveryRepository) ReceivedTotals(ctx context.Context, invoiceID uuid.UUID) (map[uuid.UUID]decimal.Decimal, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]decimal.Decimal), args.Error(1)
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
