package sales

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hsf/backend/internal/domain/inventory"
	"github.com/hsf/backend/internal/domain/sales"
	"github.com/hsf/backend/internal/domain/sequence"
	"github.com/hsf/backend/internal/domain/shared"
)

// DeliveryService ships and unships sales invoices. Planning a delivery
// completes the invoice, delivering writes the outbound ledger rows, and
// voiding reverses both.
type DeliveryService struct {
	deliveryRepo sales.SalesDeliveryRepository
	txScope      TransactionScope
	logger       *zap.Logger
	now          func() time.Time
}

// NewDeliveryService creates a new DeliveryService
func NewDeliveryService(deliveryRepo sales.SalesDeliveryRepository, txScope TransactionScope, logger *zap.Logger) *DeliveryService {
	return &DeliveryService{
		deliveryRepo: deliveryRepo,
		txScope:      txScope,
		logger:       logger,
		now:          time.Now,
	}
}

// Create plans a delivery covering every line of the invoice and moves the
// invoice to COMPLETED: once a delivery is underway the invoice can no longer
// be voided directly. An invoice can have at most one non-void delivery;
// creating a second one is a conflict.
func (s *DeliveryService) Create(ctx context.Context, req CreateSalesDeliveryRequest) (*SalesDeliveryResponse, error) {
	deliveryDate := s.now()
	if req.DeliveryDate != nil {
		deliveryDate = *req.DeliveryDate
	}

	var delivery *sales.SalesDelivery

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		invoice, err := repos.InvoiceRepo().FindByID(ctx, req.SalesInvoiceID)
		if err != nil {
			return err
		}

		active, err := repos.DeliveryRepo().FindActiveByInvoice(ctx, invoice.ID)
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return err
		}
		if active != nil {
			return shared.NewDomainError("DELIVERY_EXISTS", "Invoice already has an active delivery: "+active.SalesDeliveryNo)
		}

		delivery, err = sales.NewSalesDeliveryFromInvoice(invoice, deliveryDate, req.Notes)
		if err != nil {
			return err
		}
		no, err := repos.Sequences().Next(ctx, sequence.SalesDeliveries)
		if err != nil {
			return err
		}
		if err := delivery.SetNumber(no); err != nil {
			return err
		}
		if err := repos.DeliveryRepo().Save(ctx, delivery); err != nil {
			return err
		}

		if err := invoice.MarkCompleted(); err != nil {
			return err
		}
		return repos.InvoiceRepo().Save(ctx, invoice)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("sales delivery planned",
		zap.String("sales_delivery_no", delivery.SalesDeliveryNo),
		zap.String("sales_invoice_no", delivery.SalesInvoiceNo))

	response := ToSalesDeliveryResponse(delivery)
	return &response, nil
}

// MarkDelivered ships the goods: the delivery moves to DELIVERED and one
// ledger issue is appended per line, in one transaction. The invoice already
// completed when the delivery was created.
func (s *DeliveryService) MarkDelivered(ctx context.Context, id uuid.UUID, req MarkDeliveredRequest) (*SalesDeliveryResponse, error) {
	var delivery *sales.SalesDelivery

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		delivery, err = repos.DeliveryRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		at := s.now()
		if err := delivery.MarkDelivered(req.DeliveredBy, at); err != nil {
			return err
		}
		if err := repos.DeliveryRepo().Save(ctx, delivery); err != nil {
			return err
		}

		entries := make([]*inventory.LedgerEntry, 0, len(delivery.Lines))
		for idx := range delivery.Lines {
			line := &delivery.Lines[idx]
			entry, err := inventory.NewIssue(
				line.ComponentID,
				line.Quantity,
				at,
				inventory.ResourceTypeSalesDelivery,
				delivery.ID,
				inventory.ResourceLineTypeSalesDeliveryLine,
				line.ID,
			)
			if err != nil {
				return err
			}
			entries = append(entries, entry)
		}
		return repos.LedgerRepo().Append(ctx, entries...)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("sales delivery delivered",
		zap.String("sales_delivery_no", delivery.SalesDeliveryNo),
		zap.String("sales_invoice_no", delivery.SalesInvoiceNo))

	response := ToSalesDeliveryResponse(delivery)
	return &response, nil
}

// Void cancels a delivery and reopens the invoice to PENDING so it can be
// redelivered. A delivered one additionally has its ledger issues removed;
// for a planned one the ledger reversal finds nothing to undo.
func (s *DeliveryService) Void(ctx context.Context, id uuid.UUID) (*SalesDeliveryResponse, error) {
	var delivery *sales.SalesDelivery

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		delivery, err = repos.DeliveryRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := delivery.MarkVoid(); err != nil {
			return err
		}
		if err := repos.DeliveryRepo().Save(ctx, delivery); err != nil {
			return err
		}

		if _, err := repos.LedgerRepo().DeleteByResource(ctx, inventory.ResourceTypeSalesDelivery, delivery.ID); err != nil {
			return err
		}
		invoice, err := repos.InvoiceRepo().FindByID(ctx, delivery.SalesInvoiceID)
		if err != nil {
			return err
		}
		if err := invoice.Reopen(); err != nil {
			return err
		}
		return repos.InvoiceRepo().Save(ctx, invoice)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("sales delivery voided",
		zap.String("sales_delivery_no", delivery.SalesDeliveryNo),
		zap.String("sales_invoice_no", delivery.SalesInvoiceNo))

	response := ToSalesDeliveryResponse(delivery)
	return &response, nil
}

// GetByID retrieves a sales delivery by ID
func (s *DeliveryService) GetByID(ctx context.Context, id uuid.UUID) (*SalesDeliveryResponse, error) {
	delivery, err := s.deliveryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToSalesDeliveryResponse(delivery)
	return &response, nil
}

// List returns a page of sales deliveries
func (s *DeliveryService) List(ctx context.Context, offset, limit int) (*ListResponse[SalesDeliveryResponse], error) {
	deliveries, total, err := s.deliveryRepo.FindAll(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	items := make([]SalesDeliveryResponse, 0, len(deliveries))
	for _, d := range deliveries {
		items = append(items, ToSalesDeliveryResponse(d))
	}
	return &ListResponse[SalesDeliveryResponse]{Items: items, Total: total, Offset: offset, Limit: limit}, nil
}
