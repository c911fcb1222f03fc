package procurement

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hsf/backend/internal/domain/catalog"
	domainprocurement "github.com/hsf/backend/internal/domain/procurement"
)

type invoiceFixture struct {
	invoiceRepo   *MockPurchaseInvoiceRepository
	deliveryRepo  *MockInboundDeliveryRepository
	componentRepo *MockComponentRepository
	service       *PurchaseInvoiceService
}

func newInvoiceFixture() *invoiceFixture {
	invoiceRepo := new(MockPurchaseInvoiceRepository)
	deliveryRepo := new(MockInboundDeliveryRepository)
	componentRepo := new(MockComponentRepository)
	scope := NewNoOpTransactionScope(invoiceRepo, deliveryRepo, componentRepo, new(MockLedgerRepository), NewStubAllocator())
	return &invoiceFixture{
		invoiceRepo:   invoiceRepo,
		deliveryRepo:  deliveryRepo,
		componentRepo: componentRepo,
		service:       NewPurchaseInvoiceService(invoiceRepo, deliveryRepo, scope, zap.NewNop()),
	}
}

func fixtureComponent(name string) *catalog.Component {
	c, _ := catalog.NewComponent(name, name+"-001", uuid.New(), "Hardware")
	return c
}

func TestPurchaseInvoiceService_Create(t *testing.T) {
	f := newInvoiceFixture()
	component := fixtureComponent("Widget")

	f.componentRepo.On("FindByIDs", mock.Anything, []uuid.UUID{component.ID}).
		Return(map[uuid.UUID]*catalog.Component{component.ID: component}, nil)
	f.invoiceRepo.On("Save", mock.Anything, mock.AnythingOfType("*procurement.PurchaseInvoice")).Return(nil)

	resp, err := f.service.Create(context.Background(), CreatePurchaseInvoiceRequest{
		SupplierName: "Acme Components",
		InvoiceDate:  time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Lines: []CreatePurchaseInvoiceLineInput{{
			ComponentID:  component.ID,
			Quantity:     decimal.NewFromInt(10),
			PricePerUnit: decimal.NewFromFloat(2.5),
		}},
	})
	require.NoError(t, err)

	assert.Equal(t, "BUY-00001", resp.PurchaseInvoiceNo)
	assert.Equal(t, "PENDING", resp.Status)
	assert.True(t, resp.SumTotalLineAmounts.Equal(decimal.NewFromInt(25)))
	require.Len(t, resp.Lines, 1)
	assert.Equal(t, "Widget", resp.Lines[0].ComponentName)
	assert.Equal(t, "Hardware", resp.Lines[0].CategoryName)
}

func TestPurchaseInvoiceService_CreateUnknownComponent(t *testing.T) {
	f := newInvoiceFixture()
	componentID := uuid.New()

	f.componentRepo.On("FindByIDs", mock.Anything, []uuid.UUID{componentID}).
		Return(map[uuid.UUID]*catalog.Component{}, nil)

	_, err := f.service.Create(context.Background(), CreatePurchaseInvoiceRequest{
		SupplierName: "Acme Components",
		InvoiceDate:  time.Now(),
		Lines: []CreatePurchaseInvoiceLineInput{{
			ComponentID:  componentID,
			Quantity:     decimal.NewFromInt(1),
			PricePerUnit: decimal.NewFromInt(1),
		}},
	})
	assert.Error(t, err)
	f.invoiceRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestPurchaseInvoiceService_CreateSequentialNumbers(t *testing.T) {
	f := newInvoiceFixture()
	component := fixtureComponent("Widget")

	f.componentRepo.On("FindByIDs", mock.Anything, mock.Anything).
		Return(map[uuid.UUID]*catalog.Component{component.ID: component}, nil)
	f.invoiceRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

	req := CreatePurchaseInvoiceRequest{
		SupplierName: "Acme Components",
		InvoiceDate:  time.Now(),
		Lines: []CreatePurchaseInvoiceLineInput{{
			ComponentID:  component.ID,
			Quantity:     decimal.NewFromInt(1),
			PricePerUnit: decimal.NewFromInt(1),
		}},
	}
	first, err := f.service.Create(context.Background(), req)
	require.NoError(t, err)
	second, err := f.service.Create(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "BUY-00001", first.PurchaseInvoiceNo)
	assert.Equal(t, "BUY-00002", second.PurchaseInvoiceNo)
}

func TestPurchaseInvoiceService_DeleteBlockedByDeliveries(t *testing.T) {
	f := newInvoiceFixture()
	inv, line := fixtureInvoice(t, 10)

	delivery, err := domainprocurement.NewInboundDelivery(inv, inv.InvoiceDate, "", "", "")
	require.NoError(t, err)
	_, err = delivery.AddLine(line, decimal.NewFromInt(1), decimal.Zero, decimal.NewFromInt(10))
	require.NoError(t, err)

	f.invoiceRepo.On("FindByID", mock.Anything, inv.ID).Return(inv, nil)
	f.deliveryRepo.On("FindByInvoice", mock.Anything, inv.ID).
		Return([]*domainprocurement.InboundDelivery{delivery}, nil)

	err = f.service.Delete(context.Background(), inv.ID)
	assert.Error(t, err)
	assert.False(t, inv.Deleted)
}

func TestPurchaseInvoiceService_Delete(t *testing.T) {
	f := newInvoiceFixture()
	inv, _ := fixtureInvoice(t, 10)

	f.invoiceRepo.On("FindByID", mock.Anything, inv.ID).Return(inv, nil)
	f.deliveryRepo.On("FindByInvoice", mock.Anything, inv.ID).
		Return([]*domainprocurement.InboundDelivery{}, nil)
	f.invoiceRepo.On("Save", mock.Anything, inv).Return(nil)

	require.NoError(t, f.service.Delete(context.Background(), inv.ID))
	assert.True(t, inv.Deleted)
}

func TestPurchaseInvoiceService_UpdateBlockedByDeliveries(t *testing.T) {
	f := newInvoiceFixture()
	inv, line := fixtureInvoice(t, 10)

	delivery, err := domainprocurement.NewInboundDelivery(inv, inv.InvoiceDate, "", "", "")
	require.NoError(t, err)
	_, err = delivery.AddLine(line, decimal.NewFromInt(1), decimal.Zero, decimal.NewFromInt(10))
	require.NoError(t, err)

	f.invoiceRepo.On("FindByID", mock.Anything, inv.ID).Return(inv, nil)
	f.deliveryRepo.On("FindByInvoice", mock.Anything, inv.ID).
		Return([]*domainprocurement.InboundDelivery{delivery}, nil)

	name := "Other Supplier"
	_, err = f.service.Update(context.Background(), inv.ID, UpdatePurchaseInvoiceRequest{SupplierName: &name})
	assert.Error(t, err)
	assert.Equal(t, "Acme Components", inv.SupplierName)
}
