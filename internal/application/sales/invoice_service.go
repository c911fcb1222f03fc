package sales

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hsf/backend/internal/domain/sales"
	"github.com/hsf/backend/internal/domain/sequence"
	"github.com/hsf/backend/internal/domain/shared"
)

// InvoiceService promotes quotes into sales invoices and manages their
// lifecycle.
type InvoiceService struct {
	invoiceRepo  sales.SalesInvoiceRepository
	deliveryRepo sales.SalesDeliveryRepository
	txScope      TransactionScope
	logger       *zap.Logger
	now          func() time.Time
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(
	invoiceRepo sales.SalesInvoiceRepository,
	deliveryRepo sales.SalesDeliveryRepository,
	txScope TransactionScope,
	logger *zap.Logger,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:  invoiceRepo,
		deliveryRepo: deliveryRepo,
		txScope:      txScope,
		logger:       logger,
		now:          time.Now,
	}
}

// PromoteQuote turns a quote into a pending invoice and deletes the quote in
// the same transaction. Promotion is idempotent on the quote number: if an
// invoice for it already exists, that invoice is returned and nothing new is
// allocated.
func (s *InvoiceService) PromoteQuote(ctx context.Context, req PromoteQuoteRequest) (*SalesInvoiceResponse, error) {
	invoiceDate := s.now()
	if req.InvoiceDate != nil {
		invoiceDate = *req.InvoiceDate
	}

	var invoice *sales.SalesInvoice
	var reused bool

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		existing, err := repos.InvoiceRepo().FindByQuoteNumber(ctx, req.SalesQuoteNo)
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return err
		}
		if existing != nil {
			invoice = existing
			reused = true
			return nil
		}

		quote, err := repos.QuoteRepo().FindByNumber(ctx, req.SalesQuoteNo)
		if err != nil {
			return err
		}

		invoice, err = sales.NewSalesInvoiceFromQuote(quote, invoiceDate)
		if err != nil {
			return err
		}
		no, err := repos.Sequences().Next(ctx, sequence.SalesInvoices)
		if err != nil {
			return err
		}
		if err := invoice.SetNumber(no); err != nil {
			return err
		}
		if err := repos.InvoiceRepo().Save(ctx, invoice); err != nil {
			return err
		}
		// The quote is consumed by promotion.
		return repos.QuoteRepo().Delete(ctx, quote.ID)
	})
	if err != nil {
		return nil, err
	}

	if !reused {
		s.logger.Info("sales quote promoted",
			zap.String("sales_quote_no", invoice.SalesQuoteNo),
			zap.String("sales_invoice_no", invoice.SalesInvoiceNo))
	}

	response := ToSalesInvoiceResponse(invoice)
	return &response, nil
}

// GetByID retrieves a sales invoice by ID
func (s *InvoiceService) GetByID(ctx context.Context, id uuid.UUID) (*SalesInvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToSalesInvoiceResponse(invoice)
	return &response, nil
}

// GetByNumber retrieves a sales invoice by its document number
func (s *InvoiceService) GetByNumber(ctx context.Context, no string) (*SalesInvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByNumber(ctx, no)
	if err != nil {
		return nil, err
	}
	response := ToSalesInvoiceResponse(invoice)
	return &response, nil
}

// List returns a page of sales invoices
func (s *InvoiceService) List(ctx context.Context, offset, limit int) (*ListResponse[SalesInvoiceResponse], error) {
	invoices, total, err := s.invoiceRepo.FindAll(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	items := make([]SalesInvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		items = append(items, ToSalesInvoiceResponse(inv))
	}
	return &ListResponse[SalesInvoiceResponse]{Items: items, Total: total, Offset: offset, Limit: limit}, nil
}

// Void cancels an invoice that has no active delivery. Shipped or planned
// deliveries must be voided first so their stock effects are unwound.
func (s *InvoiceService) Void(ctx context.Context, id uuid.UUID) (*SalesInvoiceResponse, error) {
	var invoice *sales.SalesInvoice

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		invoice, err = repos.InvoiceRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}

		active, err := repos.DeliveryRepo().FindActiveByInvoice(ctx, invoice.ID)
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return err
		}
		if active != nil {
			return shared.NewDomainError("HAS_ACTIVE_DELIVERY", "Invoice has an active delivery; void it first")
		}

		if err := invoice.MarkVoid(); err != nil {
			return err
		}
		return repos.InvoiceRepo().Save(ctx, invoice)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("sales invoice voided", zap.String("sales_invoice_no", invoice.SalesInvoiceNo))
	response := ToSalesInvoiceResponse(invoice)
	return &response, nil
}
