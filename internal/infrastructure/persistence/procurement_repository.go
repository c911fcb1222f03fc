package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/hsf/backend/internal/domain/procurement"
	"github.com/hsf/backend/internal/domain/shared"
)

// GormPurchaseInvoiceRepository implements procurement.PurchaseInvoiceRepository
// using GORM
type GormPurchaseInvoiceRepository struct {
	db *gorm.DB
}

// NewGormPurchaseInvoiceRepository creates a new GormPurchaseInvoiceRepository
func NewGormPurchaseInvoiceRepository(db *gorm.DB) *GormPurchaseInvoiceRepository {
	return &GormPurchaseInvoiceRepository{db: db}
}

var _ procurement.PurchaseInvoiceRepository = (*GormPurchaseInvoiceRepository)(nil)

// FindByID finds a non-deleted invoice with its lines
func (r *GormPurchaseInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*procurement.PurchaseInvoice, error) {
	var invoice procurement.PurchaseInvoice
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		First(&invoice, "id = ? AND deleted = ?", id, false).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &invoice, nil
}

// FindByNumber finds a non-deleted invoice by its document number
func (r *GormPurchaseInvoiceRepository) FindByNumber(ctx context.Context, purchaseInvoiceNo string) (*procurement.PurchaseInvoice, error) {
	var invoice procurement.PurchaseInvoice
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		First(&invoice, "purchase_invoice_no = ? AND deleted = ?", purchaseInvoiceNo, false).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &invoice, nil
}

// FindAll returns a page of non-deleted invoices, newest first
func (r *GormPurchaseInvoiceRepository) FindAll(ctx context.Context, offset, limit int) ([]*procurement.PurchaseInvoice, int64, error) {
	query := r.db.WithContext(ctx).Model(&procurement.PurchaseInvoice{}).Where("deleted = ?", false)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var invoices []*procurement.PurchaseInvoice
	if err := query.
		Preload("Lines").
		Order("invoice_date DESC, purchase_invoice_no DESC").
		Offset(offset).Limit(limit).
		Find(&invoices).Error; err != nil {
		return nil, 0, err
	}
	return invoices, total, nil
}

// Save persists an invoice and its lines
func (r *GormPurchaseInvoiceRepository) Save(ctx context.Context, invoice *procurement.PurchaseInvoice) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(invoice).Error
}

// GormInboundDeliveryRepository implements procurement.InboundDeliveryRepository
// using GORM
type GormInboundDeliveryRepository struct {
	db *gorm.DB
}

// NewGormInboundDeliveryRepository creates a new GormInboundDeliveryRepository
func NewGormInboundDeliveryRepository(db *gorm.DB) *GormInboundDeliveryRepository {
	return &GormInboundDeliveryRepository{db: db}
}

var _ procurement.InboundDeliveryRepository = (*GormInboundDeliveryRepository)(nil)

// FindByID finds a non-deleted delivery with its lines and attachments
func (r *GormInboundDeliveryRepository) FindByID(ctx context.Context, id uuid.UUID) (*procurement.InboundDelivery, error) {
	var delivery procurement.InboundDelivery
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		Preload("Attachments").
		First(&delivery, "id = ? AND deleted = ?", id, false).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &delivery, nil
}

// FindByInvoice returns all non-deleted deliveries against an invoice
func (r *GormInboundDeliveryRepository) FindByInvoice(ctx context.Context, purchaseInvoiceID uuid.UUID) ([]*procurement.InboundDelivery, error) {
	var deliveries []*procurement.InboundDelivery
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		Preload("Attachments").
		Where("purchase_invoice_id = ? AND deleted = ?", purchaseInvoiceID, false).
		Order("delivery_date, inbound_delivery_no").
		Find(&deliveries).Error; err != nil {
		return nil, err
	}
	return deliveries, nil
}

// FindAll returns a page of non-deleted deliveries, newest first
func (r *GormInboundDeliveryRepository) FindAll(ctx context.Context, offset, limit int) ([]*procurement.InboundDelivery, int64, error) {
	query := r.db.WithContext(ctx).Model(&procurement.InboundDelivery{}).Where("deleted = ?", false)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var deliveries []*procurement.InboundDelivery
	if err := query.
		Preload("Lines").
		Preload("Attachments").
		Order("delivery_date DESC, inbound_delivery_no DESC").
		Offset(offset).Limit(limit).
		Find(&deliveries).Error; err != nil {
		return nil, 0, err
	}
	return deliveries, total, nil
}

// Save persists a delivery with its lines and attachments
func (r *GormInboundDeliveryRepository) Save(ctx context.Context, delivery *procurement.InboundDelivery) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(delivery).Error
}

// Delete soft-deletes a delivery
func (r *GormInboundDeliveryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&procurement.InboundDelivery{}).
		Where("id = ? AND deleted = ?", id, false).
		Update("deleted", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// ReceivedTotals sums received plus damaged quantities per invoice line across
// every non-deleted delivery of the invoice
func (r *GormInboundDeliveryRepository) ReceivedTotals(ctx context.Context, purchaseInvoiceID uuid.UUID) (map[uuid.UUID]decimal.Decimal, error) {
	var rows []struct {
		PurchaseInvoiceLineID uuid.UUID
		Total                 decimal.Decimal
	}
	if err := r.db.WithContext(ctx).
		Table("inbound_delivery_lines").
		Select("inbound_delivery_lines.purchase_invoice_line_id, SUM(inbound_delivery_lines.received_quantity + inbound_delivery_lines.damaged_quantity) AS total").
		Joins("JOIN inbound_deliveries ON inbound_deliveries.id = inbound_delivery_lines.inbound_delivery_id").
		Where("inbound_deliveries.purchase_invoice_id = ? AND inbound_deliveries.deleted = ?", purchaseInvoiceID, false).
		Group("inbound_delivery_lines.purchase_invoice_line_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	totals := make(map[uuid.UUID]decimal.Decimal, len(rows))
	for _, row := range rows {
		totals[row.PurchaseInvoiceLineID] = row.Total
	}
	return totals, nil
}

