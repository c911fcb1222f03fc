package procurement

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseInvoiceRepository manages purchase invoice persistence. Soft-deleted
// invoices are excluded from every query unless stated otherwise.
type PurchaseInvoiceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PurchaseInvoice, error)
	FindByNumber(ctx context.Context, purchaseInvoiceNo string) (*PurchaseInvoice, error)
	FindAll(ctx context.Context, offset, limit int) ([]*PurchaseInvoice, int64, error)
	Save(ctx context.Context, invoice *PurchaseInvoice) error
}

// InboundDeliveryRepository manages inbound delivery persistence.
type InboundDeliveryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*InboundDelivery, error)
	FindByInvoice(ctx context.Context, purchaseInvoiceID uuid.UUID) ([]*InboundDelivery, error)
	FindAll(ctx context.Context, offset, limit int) ([]*InboundDelivery, int64, error)
	Save(ctx context.Context, delivery *InboundDelivery) error
	// Delete soft-deletes the delivery. Its document number stays burned and
	// the row keeps feeding sequence seeding, but it no longer counts toward
	// received totals.
	Delete(ctx context.Context, id uuid.UUID) error
	// ReceivedTotals sums received plus damaged quantities per invoice line
	// across every non-deleted delivery of the invoice.
	ReceivedTotals(ctx context.Context, purchaseInvoiceID uuid.UUID) (map[uuid.UUID]decimal.Decimal, error)
}
