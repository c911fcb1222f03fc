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

	domaininventory "github.com/hsf/backend/internal/domain/inventory"
	domainprocurement "github.com/hsf/backend/internal/domain/procurement"
)

type deliveryFixture struct {
	invoiceRepo   *MockPurchaseInvoiceRepository
	deliveryRepo  *MockInboundDeliveryRepository
	componentRepo *MockComponentRepository
	ledgerRepo    *MockLedgerRepository
	service       *InboundDeliveryService
}

func newDeliveryFixture() *deliveryFixture {
	invoiceRepo := new(MockPurchaseInvoiceRepository)
	deliveryRepo := new(MockInboundDeliveryRepository)
	componentRepo := new(MockComponentRepository)
	ledgerRepo := new(MockLedgerRepository)
	scope := NewNoOpTransactionScope(invoiceRepo, deliveryRepo, componentRepo, ledgerRepo, NewStubAllocator())
	return &deliveryFixture{
		invoiceRepo:   invoiceRepo,
		deliveryRepo:  deliveryRepo,
		componentRepo: componentRepo,
		ledgerRepo:    ledgerRepo,
		service:       NewInboundDeliveryService(deliveryRepo, scope, nil, zap.NewNop()),
	}
}

func fixtureInvoice(t *testing.T, quantity int64) (*domainprocurement.PurchaseInvoice, *domainprocurement.PurchaseInvoiceLine) {
	t.Helper()
	inv, err := domainprocurement.NewPurchaseInvoice("Acme Components",
		time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), nil, "")
	require.NoError(t, err)
	require.NoError(t, inv.SetNumber("BUY-00001"))
	line, err := inv.AddLine(uuid.New(), "Widget", uuid.New(), "Hardware",
		decimal.NewFromInt(quantity), decimal.NewFromInt(2))
	require.NoError(t, err)
	return inv, line
}

func TestInboundDeliveryService_CreateFullReceipt(t *testing.T) {
	f := newDeliveryFixture()
	inv, line := fixtureInvoice(t, 10)

	f.invoiceRepo.On("FindByID", mock.Anything, inv.ID).Return(inv, nil)
	f.deliveryRepo.On("ReceivedTotals", mock.Anything, inv.ID).Return(map[uuid.UUID]decimal.Decimal{}, nil)
	f.deliveryRepo.On("Save", mock.Anything, mock.AnythingOfType("*procurement.InboundDelivery")).Return(nil)
	f.ledgerRepo.On("Append", mock.Anything, mock.Anything).Return(nil)
	f.invoiceRepo.On("Save", mock.Anything, inv).Return(nil)

	resp, err := f.service.Create(context.Background(), CreateInboundDeliveryRequest{
		PurchaseInvoiceID: inv.ID,
		DeliveryDate:      inv.InvoiceDate.AddDate(0, 0, 1),
		Lines: []CreateInboundDeliveryLineInput{{
			PurchaseInvoiceLineID: line.ID,
			ReceivedQuantity:      decimal.NewFromInt(8),
			DamagedQuantity:       decimal.NewFromInt(2),
		}},
	})
	require.NoError(t, err)

	assert.Equal(t, "IBD-00001", resp.InboundDeliveryNo)
	assert.Equal(t, "DELIVERED", resp.Status)
	// 8 received + 2 damaged covers the 10 ordered
	assert.Equal(t, domainprocurement.PurchaseInvoiceStatusCompleted, inv.Status)

	// one receipt for the received quantity only
	appendCall := f.ledgerRepo.Calls[0]
	entries := appendCall.Arguments.Get(1).([]*domaininventory.LedgerEntry)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].InStock.Equal(decimal.NewFromInt(8)))
	assert.Equal(t, domaininventory.ResourceTypeInboundDelivery, entries[0].ResourceType)
}

func TestInboundDeliveryService_CreatePartialKeepsPending(t *testing.T) {
	f := newDeliveryFixture()
	inv, line := fixtureInvoice(t, 10)

	f.invoiceRepo.On("FindByID", mock.Anything, inv.ID).Return(inv, nil)
	f.deliveryRepo.On("ReceivedTotals", mock.Anything, inv.ID).Return(map[uuid.UUID]decimal.Decimal{}, nil)
	f.deliveryRepo.On("Save", mock.Anything, mock.Anything).Return(nil)
	f.ledgerRepo.On("Append", mock.Anything, mock.Anything).Return(nil)
	f.invoiceRepo.On("Save", mock.Anything, inv).Return(nil)

	_, err := f.service.Create(context.Background(), CreateInboundDeliveryRequest{
		PurchaseInvoiceID: inv.ID,
		DeliveryDate:      inv.InvoiceDate,
		Lines: []CreateInboundDeliveryLineInput{{
			PurchaseInvoiceLineID: line.ID,
			ReceivedQuantity:      decimal.NewFromInt(4),
		}},
	})
	require.NoError(t, err)
	assert.Equal(t, domainprocurement.PurchaseInvoiceStatusPending, inv.Status)
}

func TestInboundDeliveryService_CreateRejectsOverDelivery(t *testing.T) {
	f := newDeliveryFixture()
	inv, line := fixtureInvoice(t, 10)

	// 7 already received by an earlier delivery
	f.invoiceRepo.On("FindByID", mock.Anything, inv.ID).Return(inv, nil)
	f.deliveryRepo.On("ReceivedTotals", mock.Anything, inv.ID).Return(map[uuid.UUID]decimal.Decimal{
		line.ID: decimal.NewFromInt(7),
	}, nil)

	_, err := f.service.Create(context.Background(), CreateInboundDeliveryRequest{
		PurchaseInvoiceID: inv.ID,
		DeliveryDate:      inv.InvoiceDate,
		Lines: []CreateInboundDeliveryLineInput{{
			PurchaseInvoiceLineID: line.ID,
			ReceivedQuantity:      decimal.NewFromInt(4),
		}},
	})
	assert.Error(t, err)
	f.ledgerRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestInboundDeliveryService_CreateUnknownLine(t *testing.T) {
	f := newDeliveryFixture()
	inv, _ := fixtureInvoice(t, 10)

	f.invoiceRepo.On("FindByID", mock.Anything, inv.ID).Return(inv, nil)
	f.deliveryRepo.On("ReceivedTotals", mock.Anything, inv.ID).Return(map[uuid.UUID]decimal.Decimal{}, nil)

	_, err := f.service.Create(context.Background(), CreateInboundDeliveryRequest{
		PurchaseInvoiceID: inv.ID,
		DeliveryDate:      inv.InvoiceDate,
		Lines: []CreateInboundDeliveryLineInput{{
			PurchaseInvoiceLineID: uuid.New(),
			ReceivedQuantity:      decimal.NewFromInt(1),
		}},
	})
	assert.Error(t, err)
}

func TestInboundDeliveryService_DeleteReopensInvoice(t *testing.T) {
	f := newDeliveryFixture()
	inv, line := fixtureInvoice(t, 10)
	inv.Status = domainprocurement.PurchaseInvoiceStatusCompleted

	delivery, err := domainprocurement.NewInboundDelivery(inv, inv.InvoiceDate, "", "", "")
	require.NoError(t, err)
	require.NoError(t, delivery.SetNumber("IBD-00001"))
	_, err = delivery.AddLine(line, decimal.NewFromInt(10), decimal.Zero, decimal.NewFromInt(10))
	require.NoError(t, err)

	f.deliveryRepo.On("FindByID", mock.Anything, delivery.ID).Return(delivery, nil)
	f.invoiceRepo.On("FindByID", mock.Anything, inv.ID).Return(inv, nil)
	f.ledgerRepo.On("DeleteByResource", mock.Anything, domaininventory.ResourceTypeInboundDelivery, delivery.ID).Return(int64(1), nil)
	f.deliveryRepo.On("Delete", mock.Anything, delivery.ID).Return(nil)
	// after the delete nothing remains received
	f.deliveryRepo.On("ReceivedTotals", mock.Anything, inv.ID).Return(map[uuid.UUID]decimal.Decimal{}, nil)
	f.invoiceRepo.On("Save", mock.Anything, inv).Return(nil)

	require.NoError(t, f.service.Delete(context.Background(), delivery.ID))

	assert.Equal(t, domainprocurement.PurchaseInvoiceStatusPending, inv.Status)
	f.ledgerRepo.AssertExpectations(t)
	f.deliveryRepo.AssertExpectations(t)
}
