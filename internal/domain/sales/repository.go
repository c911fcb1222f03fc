package sales

import (
	"context"

	"github.com/google/uuid"
)

// CartRepository manages the per-customer quoting scratch area.
type CartRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CartLine, error)
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*CartLine, error)
	FindByCustomerAndComponent(ctx context.Context, customerID, componentID uuid.UUID) (*CartLine, error)
	Save(ctx context.Context, line *CartLine) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ClearByCustomer empties one customer's cart.
	ClearByCustomer(ctx context.Context, customerID uuid.UUID) error
}

// SalesQuoteRepository manages sales quote persistence.
type SalesQuoteRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SalesQuote, error)
	FindByNumber(ctx context.Context, salesQuoteNo string) (*SalesQuote, error)
	FindAll(ctx context.Context, offset, limit int) ([]*SalesQuote, int64, error)
	Save(ctx context.Context, quote *SalesQuote) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SalesInvoiceRepository manages sales invoice persistence.
type SalesInvoiceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SalesInvoice, error)
	FindByNumber(ctx context.Context, salesInvoiceNo string) (*SalesInvoice, error)
	// FindByQuoteNumber looks an invoice up by the quote it was promoted
	// from. Promotion idempotency keys on this.
	FindByQuoteNumber(ctx context.Context, salesQuoteNo string) (*SalesInvoice, error)
	FindAll(ctx context.Context, offset, limit int) ([]*SalesInvoice, int64, error)
	Save(ctx context.Context, invoice *SalesInvoice) error
}

// SalesDeliveryRepository manages sales delivery persistence.
type SalesDeliveryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SalesDelivery, error)
	FindByInvoice(ctx context.Context, salesInvoiceID uuid.UUID) ([]*SalesDelivery, error)
	// FindActiveByInvoice returns the invoice's non-void delivery, or
	// shared.ErrNotFound when none exists.
	FindActiveByInvoice(ctx context.Context, salesInvoiceID uuid.UUID) (*SalesDelivery, error)
	// FindByStatus lists deliveries in the given status, oldest first. The
	// delivery scheduler drains PROCESSING with it.
	FindByStatus(ctx context.Context, status SalesDeliveryStatus, limit int) ([]*SalesDelivery, error)
	FindAll(ctx context.Context, offset, limit int) ([]*SalesDelivery, int64, error)
	Save(ctx context.Context, delivery *SalesDelivery) error
}
