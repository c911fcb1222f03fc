package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/hsf/backend/internal/domain/procurement"
	"github.com/hsf/backend/internal/domain/shared"
)

func setupProcurementDB(t *testing.T) *gorm.DB {
	t.Helper()
	return setupTestDB(t,
		&procurement.PurchaseInvoice{},
		&procurement.PurchaseInvoiceLine{},
		&procurement.InboundDelivery{},
		&procurement.InboundDeliveryLine{},
		&procurement.InboundDeliveryAttachment{},
	)
}

func storedInvoice(t *testing.T, repo *GormPurchaseInvoiceRepository, number string, quantity int64) *procurement.PurchaseInvoice {
	t.Helper()
	invoice, err := procurement.NewPurchaseInvoice("ACME Components", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), nil, "")
	require.NoError(t, err)
	require.NoError(t, invoice.SetNumber(number))
	_, err = invoice.AddLine(uuid.New(), "RAM DDR5 32GB", uuid.New(), "Memory", decimal.NewFromInt(quantity), decimal.NewFromInt(150))
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), invoice))
	return invoice
}

func TestGormPurchaseInvoiceRepository(t *testing.T) {
	db := setupProcurementDB(t)
	repo := NewGormPurchaseInvoiceRepository(db)
	ctx := context.Background()

	t.Run("round-trips an invoice with lines", func(t *testing.T) {
		invoice := storedInvoice(t, repo, "BUY-00001", 10)

		found, err := repo.FindByID(ctx, invoice.ID)
		require.NoError(t, err)
		assert.Equal(t, "BUY-00001", found.PurchaseInvoiceNo)
		assert.Equal(t, "ACME Components", found.SupplierName)
		require.Len(t, found.Lines, 1)
		assert.Equal(t, "RAM DDR5 32GB", found.Lines[0].ComponentName)
		assert.True(t, found.SumTotalLineAmounts.Equal(decimal.NewFromInt(1500)))
	})

	t.Run("finds by document number", func(t *testing.T) {
		found, err := repo.FindByNumber(ctx, "BUY-00001")
		require.NoError(t, err)
		assert.Equal(t, "BUY-00001", found.PurchaseInvoiceNo)

		_, err = repo.FindByNumber(ctx, "BUY-99999")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("soft-deleted invoices are invisible to lookups", func(t *testing.T) {
		invoice := storedInvoice(t, repo, "BUY-00002", 4)
		invoice.MarkDeleted()
		require.NoError(t, repo.Save(ctx, invoice))

		_, err := repo.FindByID(ctx, invoice.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)

		_, err = repo.FindByNumber(ctx, "BUY-00002")
		assert.ErrorIs(t, err, shared.ErrNotFound)

		invoices, total, err := repo.FindAll(ctx, 0, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, invoices, 1)
		assert.Equal(t, "BUY-00001", invoices[0].PurchaseInvoiceNo)
	})

	t.Run("paginates", func(t *testing.T) {
		storedInvoice(t, repo, "BUY-00003", 2)

		invoices, total, err := repo.FindAll(ctx, 1, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, invoices, 1)
	})
}

func TestGormInboundDeliveryRepository(t *testing.T) {
	db := setupProcurementDB(t)
	invoiceRepo := NewGormPurchaseInvoiceRepository(db)
	repo := NewGormInboundDeliveryRepository(db)
	ctx := context.Background()

	invoice := storedInvoice(t, invoiceRepo, "BUY-00001", 10)
	line := &invoice.Lines[0]
	deliveryDate := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)

	storedDelivery := func(t *testing.T, number string, received, damaged int64) *procurement.InboundDelivery {
		t.Helper()
		totals, err := repo.ReceivedTotals(ctx, invoice.ID)
		require.NoError(t, err)
		deliverable := invoice.DeliverableQuantities(totals)

		delivery, err := procurement.NewInboundDelivery(invoice, deliveryDate, "PO-REF", "warehouse", "")
		require.NoError(t, err)
		require.NoError(t, delivery.SetNumber(number))
		_, err = delivery.AddLine(line, decimal.NewFromInt(received), decimal.NewFromInt(damaged), deliverable[line.ID])
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, delivery))
		return delivery
	}

	t.Run("round-trips a delivery with lines and attachments", func(t *testing.T) {
		delivery := storedDelivery(t, "IBD-00001", 3, 1)
		_, err := delivery.AddAttachment("note.pdf", "deliveries/IBD-00001/note.pdf", "alice")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, delivery))

		found, err := repo.FindByID(ctx, delivery.ID)
		require.NoError(t, err)
		assert.Equal(t, "IBD-00001", found.InboundDeliveryNo)
		require.Len(t, found.Lines, 1)
		assert.True(t, found.Lines[0].ReceivedQuantity.Equal(decimal.NewFromInt(3)))
		require.Len(t, found.Attachments, 1)
		assert.Equal(t, "deliveries/IBD-00001/note.pdf", found.Attachments[0].FileS3Key)
	})

	t.Run("sums received plus damaged per invoice line", func(t *testing.T) {
		storedDelivery(t, "IBD-00002", 2, 0)

		totals, err := repo.ReceivedTotals(ctx, invoice.ID)
		require.NoError(t, err)
		require.Contains(t, totals, line.ID)
		assert.True(t, totals[line.ID].Equal(decimal.NewFromInt(6)), "got %s", totals[line.ID])
	})

	t.Run("soft delete drops the delivery from totals and lookups", func(t *testing.T) {
		delivery := storedDelivery(t, "IBD-00003", 4, 0)
		require.NoError(t, repo.Delete(ctx, delivery.ID))

		_, err := repo.FindByID(ctx, delivery.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)

		totals, err := repo.ReceivedTotals(ctx, invoice.ID)
		require.NoError(t, err)
		assert.True(t, totals[line.ID].Equal(decimal.NewFromInt(6)), "got %s", totals[line.ID])

		deliveries, err := repo.FindByInvoice(ctx, invoice.ID)
		require.NoError(t, err)
		assert.Len(t, deliveries, 2)
	})

	t.Run("deleting twice reports not found", func(t *testing.T) {
		delivery := storedDelivery(t, "IBD-00004", 1, 0)
		require.NoError(t, repo.Delete(ctx, delivery.ID))
		assert.ErrorIs(t, repo.Delete(ctx, delivery.ID), shared.ErrNotFound)
	})
}
