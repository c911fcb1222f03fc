package procurement

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hsf/backend/internal/domain/procurement"
	"github.com/hsf/backend/internal/domain/sequence"
	"github.com/hsf/backend/internal/domain/shared"
)

// PurchaseInvoiceService handles purchase invoice business operations
type PurchaseInvoiceService struct {
	invoiceRepo  procurement.PurchaseInvoiceRepository
	deliveryRepo procurement.InboundDeliveryRepository
	txScope      TransactionScope
	logger       *zap.Logger
}

// NewPurchaseInvoiceService creates a new PurchaseInvoiceService
func NewPurchaseInvoiceService(
	invoiceRepo procurement.PurchaseInvoiceRepository,
	deliveryRepo procurement.InboundDeliveryRepository,
	txScope TransactionScope,
	logger *zap.Logger,
) *PurchaseInvoiceService {
	return &PurchaseInvoiceService{
		invoiceRepo:  invoiceRepo,
		deliveryRepo: deliveryRepo,
		txScope:      txScope,
		logger:       logger,
	}
}

// Create creates a purchase invoice. Number allocation and the insert run in
// one transaction so a failed create never leaves a gap in the BUY series.
func (s *PurchaseInvoiceService) Create(ctx context.Context, req CreatePurchaseInvoiceRequest) (*PurchaseInvoiceResponse, error) {
	invoice, err := procurement.NewPurchaseInvoice(req.SupplierName, req.InvoiceDate, req.ExpectedDeliveryDate, req.Notes)
	if err != nil {
		return nil, err
	}

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		componentIDs := make([]uuid.UUID, 0, len(req.Lines))
		for _, line := range req.Lines {
			componentIDs = append(componentIDs, line.ComponentID)
		}
		components, err := repos.ComponentRepo().FindByIDs(ctx, componentIDs)
		if err != nil {
			return err
		}
		for _, line := range req.Lines {
			component, ok := components[line.ComponentID]
			if !ok {
				return shared.NewDomainError("COMPONENT_NOT_FOUND", "Component not found: "+line.ComponentID.String())
			}
			if _, err := invoice.AddLine(component.ID, component.Name, component.CategoryID, component.CategoryName, line.Quantity, line.PricePerUnit); err != nil {
				return err
			}
		}

		no, err := repos.Sequences().Next(ctx, sequence.PurchaseInvoices)
		if err != nil {
			return err
		}
		if err := invoice.SetNumber(no); err != nil {
			return err
		}

		return repos.InvoiceRepo().Save(ctx, invoice)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("purchase invoice created",
		zap.String("purchase_invoice_no", invoice.PurchaseInvoiceNo),
		zap.String("supplier", invoice.SupplierName),
		zap.Int("lines", len(invoice.Lines)))

	response := ToPurchaseInvoiceResponse(invoice)
	return &response, nil
}

// GetByID retrieves a purchase invoice by ID
func (s *PurchaseInvoiceService) GetByID(ctx context.Context, id uuid.UUID) (*PurchaseInvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToPurchaseInvoiceResponse(invoice)
	return &response, nil
}

// GetByNumber retrieves a purchase invoice by its document number
func (s *PurchaseInvoiceService) GetByNumber(ctx context.Context, no string) (*PurchaseInvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByNumber(ctx, no)
	if err != nil {
		return nil, err
	}
	response := ToPurchaseInvoiceResponse(invoice)
	return &response, nil
}

// List returns a page of purchase invoices
func (s *PurchaseInvoiceService) List(ctx context.Context, offset, limit int) (*ListResponse[PurchaseInvoiceResponse], error) {
	invoices, total, err := s.invoiceRepo.FindAll(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	items := make([]PurchaseInvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		items = append(items, ToPurchaseInvoiceResponse(inv))
	}
	return &ListResponse[PurchaseInvoiceResponse]{Items: items, Total: total, Offset: offset, Limit: limit}, nil
}

// Update changes header fields of an invoice that has no deliveries yet.
// Once goods were received the ordered document is frozen.
func (s *PurchaseInvoiceService) Update(ctx context.Context, id uuid.UUID, req UpdatePurchaseInvoiceRequest) (*PurchaseInvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.ensureNoDeliveries(ctx, id); err != nil {
		return nil, err
	}

	if req.SupplierName != nil {
		if *req.SupplierName == "" {
			return nil, shared.NewDomainError("INVALID_SUPPLIER_NAME", "Supplier name cannot be empty")
		}
		invoice.SupplierName = *req.SupplierName
	}
	if req.ExpectedDeliveryDate != nil {
		invoice.ExpectedDeliveryDate = req.ExpectedDeliveryDate
	}
	if req.Notes != nil {
		invoice.Notes = *req.Notes
	}

	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}
	response := ToPurchaseInvoiceResponse(invoice)
	return &response, nil
}

// UpdateLine changes quantity and price of an ordered line while no
// deliveries exist.
func (s *PurchaseInvoiceService) UpdateLine(ctx context.Context, id, lineID uuid.UUID, req CreatePurchaseInvoiceLineInput) (*PurchaseInvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.ensureNoDeliveries(ctx, id); err != nil {
		return nil, err
	}
	if err := invoice.UpdateLine(lineID, req.Quantity, req.PricePerUnit); err != nil {
		return nil, err
	}
	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}
	response := ToPurchaseInvoiceResponse(invoice)
	return &response, nil
}

// Delete soft-deletes an invoice. The document number stays burned; the row
// is kept so the series remains dense. Invoices with deliveries cannot be
// deleted, their deliveries must be removed first.
func (s *PurchaseInvoiceService) Delete(ctx context.Context, id uuid.UUID) error {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.ensureNoDeliveries(ctx, id); err != nil {
		return err
	}

	invoice.MarkDeleted()
	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return err
	}

	s.logger.Info("purchase invoice deleted",
		zap.String("purchase_invoice_no", invoice.PurchaseInvoiceNo))
	return nil
}

func (s *PurchaseInvoiceService) ensureNoDeliveries(ctx context.Context, invoiceID uuid.UUID) error {
	deliveries, err := s.deliveryRepo.FindByInvoice(ctx, invoiceID)
	if err != nil {
		return err
	}
	if len(deliveries) > 0 {
		return shared.NewDomainError("HAS_DELIVERIES", "Purchase invoice has deliveries; remove them first")
	}
	return nil
}
