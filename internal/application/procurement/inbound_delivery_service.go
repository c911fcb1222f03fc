package procurement

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hsf/backend/internal/domain/inventory"
	"github.com/hsf/backend/internal/domain/procurement"
	"github.com/hsf/backend/internal/domain/sequence"
	"github.com/hsf/backend/internal/domain/shared"
)

// AttachmentSigner produces temporary download URLs for stored attachment
// objects.
type AttachmentSigner interface {
	PresignGet(ctx context.Context, key string) (string, error)
}

// InboundDeliveryService records goods receipts against purchase invoices.
// Every receipt and its reversal is atomic across three tables: the delivery
// itself, the inventory ledger, and the invoice status.
type InboundDeliveryService struct {
	deliveryRepo procurement.InboundDeliveryRepository
	txScope      TransactionScope
	signer       AttachmentSigner
	logger       *zap.Logger
}

// NewInboundDeliveryService creates a new InboundDeliveryService
func NewInboundDeliveryService(
	deliveryRepo procurement.InboundDeliveryRepository,
	txScope TransactionScope,
	signer AttachmentSigner,
	logger *zap.Logger,
) *InboundDeliveryService {
	return &InboundDeliveryService{
		deliveryRepo: deliveryRepo,
		txScope:      txScope,
		signer:       signer,
		logger:       logger,
	}
}

// Create records a goods receipt: it persists the delivery, appends one
// ledger receipt per line with received stock, and recomputes the invoice
// status from the cumulative totals. All of it commits as one transaction.
func (s *InboundDeliveryService) Create(ctx context.Context, req CreateInboundDeliveryRequest) (*InboundDeliveryResponse, error) {
	var delivery *procurement.InboundDelivery

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		invoice, err := repos.InvoiceRepo().FindByID(ctx, req.PurchaseInvoiceID)
		if err != nil {
			return err
		}

		receivedTotals, err := repos.DeliveryRepo().ReceivedTotals(ctx, invoice.ID)
		if err != nil {
			return err
		}
		deliverable := invoice.DeliverableQuantities(receivedTotals)

		delivery, err = procurement.NewInboundDelivery(invoice, req.DeliveryDate, req.Reference, req.ReceivedBy, req.Notes)
		if err != nil {
			return err
		}
		for _, lineReq := range req.Lines {
			invoiceLine := invoice.GetLine(lineReq.PurchaseInvoiceLineID)
			if invoiceLine == nil {
				return shared.NewDomainError("LINE_NOT_FOUND", "Purchase invoice line not found: "+lineReq.PurchaseInvoiceLineID.String())
			}
			if _, err := delivery.AddLine(invoiceLine, lineReq.ReceivedQuantity, lineReq.DamagedQuantity, deliverable[invoiceLine.ID]); err != nil {
				return err
			}
		}
		for _, att := range req.Attachments {
			if _, err := delivery.AddAttachment(att.FileName, att.FileS3Key, att.UploadedBy); err != nil {
				return err
			}
		}

		no, err := repos.Sequences().Next(ctx, sequence.InboundDeliveries)
		if err != nil {
			return err
		}
		if err := delivery.SetNumber(no); err != nil {
			return err
		}
		if err := repos.DeliveryRepo().Save(ctx, delivery); err != nil {
			return err
		}

		// Damaged goods never reach the ledger; zero-received lines leave
		// no ledger trace at all.
		entries := make([]*inventory.LedgerEntry, 0, len(delivery.Lines))
		for idx := range delivery.Lines {
			line := &delivery.Lines[idx]
			if line.ReceivedQuantity.IsZero() {
				continue
			}
			entry, err := inventory.NewReceipt(
				line.ComponentID,
				line.ReceivedQuantity,
				delivery.DeliveryDate,
				inventory.ResourceTypeInboundDelivery,
				delivery.ID,
				inventory.ResourceLineTypeInboundDeliveryLine,
				line.ID,
				line.PricePerUnit,
			)
			if err != nil {
				return err
			}
			entries = append(entries, entry)
		}
		if err := repos.LedgerRepo().Append(ctx, entries...); err != nil {
			return err
		}

		for lineID, qty := range delivery.ReceivedTotals() {
			receivedTotals[lineID] = receivedTotals[lineID].Add(qty)
		}
		invoice.RecomputeStatus(receivedTotals)
		return repos.InvoiceRepo().Save(ctx, invoice)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("inbound delivery recorded",
		zap.String("inbound_delivery_no", delivery.InboundDeliveryNo),
		zap.String("purchase_invoice_no", delivery.PurchaseInvoiceNo),
		zap.Int("lines", len(delivery.Lines)))

	response := ToInboundDeliveryResponse(delivery)
	return &response, nil
}

// GetByID retrieves an inbound delivery. When withURLs is set, each
// attachment carries a presigned download URL.
func (s *InboundDeliveryService) GetByID(ctx context.Context, id uuid.UUID, withURLs bool) (*InboundDeliveryResponse, error) {
	delivery, err := s.deliveryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToInboundDeliveryResponse(delivery)
	if withURLs && s.signer != nil {
		for idx := range response.Attachments {
			url, err := s.signer.PresignGet(ctx, response.Attachments[idx].FileS3Key)
			if err != nil {
				s.logger.Warn("presign attachment failed",
					zap.String("key", response.Attachments[idx].FileS3Key),
					zap.Error(err))
				continue
			}
			response.Attachments[idx].DownloadURL = url
		}
	}
	return &response, nil
}

// List returns a page of inbound deliveries
func (s *InboundDeliveryService) List(ctx context.Context, offset, limit int) (*ListResponse[InboundDeliveryResponse], error) {
	deliveries, total, err := s.deliveryRepo.FindAll(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	items := make([]InboundDeliveryResponse, 0, len(deliveries))
	for _, d := range deliveries {
		items = append(items, ToInboundDeliveryResponse(d))
	}
	return &ListResponse[InboundDeliveryResponse]{Items: items, Total: total, Offset: offset, Limit: limit}, nil
}

// Delete undoes a goods receipt: it removes the delivery with its lines and
// attachments, deletes the ledger rows it produced, and recomputes the
// invoice status from the deliveries that remain. A COMPLETED invoice whose
// last covering delivery is removed drops back to PENDING.
func (s *InboundDeliveryService) Delete(ctx context.Context, id uuid.UUID) error {
	var deliveryNo, invoiceNo string

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		delivery, err := repos.DeliveryRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		deliveryNo = delivery.InboundDeliveryNo
		invoiceNo = delivery.PurchaseInvoiceNo

		invoice, err := repos.InvoiceRepo().FindByID(ctx, delivery.PurchaseInvoiceID)
		if err != nil {
			return err
		}

		if _, err := repos.LedgerRepo().DeleteByResource(ctx, inventory.ResourceTypeInboundDelivery, delivery.ID); err != nil {
			return err
		}
		if err := repos.DeliveryRepo().Delete(ctx, delivery.ID); err != nil {
			return err
		}

		receivedTotals, err := repos.DeliveryRepo().ReceivedTotals(ctx, invoice.ID)
		if err != nil {
			return err
		}
		invoice.RecomputeStatus(receivedTotals)
		return repos.InvoiceRepo().Save(ctx, invoice)
	})
	if err != nil {
		return err
	}

	s.logger.Info("inbound delivery reversed",
		zap.String("inbound_delivery_no", deliveryNo),
		zap.String("purchase_invoice_no", invoiceNo))
	return nil
}
