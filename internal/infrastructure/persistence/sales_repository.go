package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hsf/backend/internal/domain/sales"
	"github.com/hsf/backend/internal/domain/shared"
)

// GormCartRepository implements sales.CartRepository using GORM
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GormCartRepository
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

var _ sales.CartRepository = (*GormCartRepository)(nil)

// FindByID finds a single cart line
func (r *GormCartRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.CartLine, error) {
	var line sales.CartLine
	if err := r.db.WithContext(ctx).First(&line, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &line, nil
}

// FindByCustomer returns a customer's cart lines, oldest first
func (r *GormCartRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*sales.CartLine, error) {
	var lines []*sales.CartLine
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at").
		Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

// FindByCustomerAndComponent finds the customer's cart line holding a component
func (r *GormCartRepository) FindByCustomerAndComponent(ctx context.Context, customerID, componentID uuid.UUID) (*sales.CartLine, error) {
	var line sales.CartLine
	if err := r.db.WithContext(ctx).
		First(&line, "customer_id = ? AND component_id = ?", customerID, componentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &line, nil
}

// Save persists a cart line
func (r *GormCartRepository) Save(ctx context.Context, line *sales.CartLine) error {
	return r.db.WithContext(ctx).Save(line).Error
}

// Delete removes a cart line
func (r *GormCartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&sales.CartLine{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// ClearByCustomer empties one customer's cart
func (r *GormCartRepository) ClearByCustomer(ctx context.Context, customerID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Delete(&sales.CartLine{}).Error
}

// GormSalesQuoteRepository implements sales.SalesQuoteRepository using GORM
type GormSalesQuoteRepository struct {
	db *gorm.DB
}

// NewGormSalesQuoteRepository creates a new GormSalesQuoteRepository
func NewGormSalesQuoteRepository(db *gorm.DB) *GormSalesQuoteRepository {
	return &GormSalesQuoteRepository{db: db}
}

var _ sales.SalesQuoteRepository = (*GormSalesQuoteRepository)(nil)

// FindByID finds a quote with its lines
func (r *GormSalesQuoteRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.SalesQuote, error) {
	var quote sales.SalesQuote
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		First(&quote, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &quote, nil
}

// FindByNumber finds a quote by its document number
func (r *GormSalesQuoteRepository) FindByNumber(ctx context.Context, salesQuoteNo string) (*sales.SalesQuote, error) {
	var quote sales.SalesQuote
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		First(&quote, "sales_quote_no = ?", salesQuoteNo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &quote, nil
}

// FindAll returns a page of quotes, newest first
func (r *GormSalesQuoteRepository) FindAll(ctx context.Context, offset, limit int) ([]*sales.SalesQuote, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&sales.SalesQuote{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var quotes []*sales.SalesQuote
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		Order("quote_date DESC, sales_quote_no DESC").
		Offset(offset).Limit(limit).
		Find(&quotes).Error; err != nil {
		return nil, 0, err
	}
	return quotes, total, nil
}

// Save persists a quote and its lines
func (r *GormSalesQuoteRepository) Save(ctx context.Context, quote *sales.SalesQuote) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(quote).Error
}

// Delete removes a quote with its lines
func (r *GormSalesQuoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("sales_quote_id = ?", id).Delete(&sales.SalesQuoteLine{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&sales.SalesQuote{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// GormSalesInvoiceRepository implements sales.SalesInvoiceRepository using GORM
type GormSalesInvoiceRepository struct {
	db *gorm.DB
}

// NewGormSalesInvoiceRepository creates a new GormSalesInvoiceRepository
func NewGormSalesInvoiceRepository(db *gorm.DB) *GormSalesInvoiceRepository {
	return &GormSalesInvoiceRepository{db: db}
}

var _ sales.SalesInvoiceRepository = (*GormSalesInvoiceRepository)(nil)

// FindByID finds an invoice with its lines
func (r *GormSalesInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.SalesInvoice, error) {
	var invoice sales.SalesInvoice
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		First(&invoice, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &invoice, nil
}

// FindByNumber finds an invoice by its document number
func (r *GormSalesInvoiceRepository) FindByNumber(ctx context.Context, salesInvoiceNo string) (*sales.SalesInvoice, error) {
	var invoice sales.SalesInvoice
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		First(&invoice, "sales_invoice_no = ?", salesInvoiceNo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &invoice, nil
}

// FindByQuoteNumber finds the invoice promoted from a quote
func (r *GormSalesInvoiceRepository) FindByQuoteNumber(ctx context.Context, salesQuoteNo string) (*sales.SalesInvoice, error) {
	var invoice sales.SalesInvoice
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		First(&invoice, "sales_quote_no = ?", salesQuoteNo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &invoice, nil
}

// FindAll returns a page of invoices, newest first
func (r *GormSalesInvoiceRepository) FindAll(ctx context.Context, offset, limit int) ([]*sales.SalesInvoice, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&sales.SalesInvoice{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var invoices []*sales.SalesInvoice
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		Order("invoice_date DESC, sales_invoice_no DESC").
		Offset(offset).Limit(limit).
		Find(&invoices).Error; err != nil {
		return nil, 0, err
	}
	return invoices, total, nil
}

// Save persists an invoice and its lines
func (r *GormSalesInvoiceRepository) Save(ctx context.Context, invoice *sales.SalesInvoice) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(invoice).Error
}

// GormSalesDeliveryRepository implements sales.SalesDeliveryRepository using GORM
type GormSalesDeliveryRepository struct {
	db *gorm.DB
}

// NewGormSalesDeliveryRepository creates a new GormSalesDeliveryRepository
func NewGormSalesDeliveryRepository(db *gorm.DB) *GormSalesDeliveryRepository {
	return &GormSalesDeliveryRepository{db: db}
}

var _ sales.SalesDeliveryRepository = (*GormSalesDeliveryRepository)(nil)

// FindByID finds a delivery with its lines
func (r *GormSalesDeliveryRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.SalesDelivery, error) {
	var delivery sales.SalesDelivery
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		First(&delivery, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &delivery, nil
}

// FindByInvoice returns all deliveries against an invoice, void ones included
func (r *GormSalesDeliveryRepository) FindByInvoice(ctx context.Context, salesInvoiceID uuid.UUID) ([]*sales.SalesDelivery, error) {
	var deliveries []*sales.SalesDelivery
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		Where("sales_invoice_id = ?", salesInvoiceID).
		Order("created_at").
		Find(&deliveries).Error; err != nil {
		return nil, err
	}
	return deliveries, nil
}

// FindActiveByInvoice returns the invoice's non-void delivery
func (r *GormSalesDeliveryRepository) FindActiveByInvoice(ctx context.Context, salesInvoiceID uuid.UUID) (*sales.SalesDelivery, error) {
	var delivery sales.SalesDelivery
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		First(&delivery, "sales_invoice_id = ? AND status <> ?", salesInvoiceID, sales.SalesDeliveryStatusVoid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &delivery, nil
}

// FindByStatus lists deliveries in the given status, oldest delivery date first
func (r *GormSalesDeliveryRepository) FindByStatus(ctx context.Context, status sales.SalesDeliveryStatus, limit int) ([]*sales.SalesDelivery, error) {
	var deliveries []*sales.SalesDelivery
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		Where("status = ?", status).
		Order("delivery_date").
		Limit(limit).
		Find(&deliveries).Error; err != nil {
		return nil, err
	}
	return deliveries, nil
}

// FindAll returns a page of deliveries, newest first
func (r *GormSalesDeliveryRepository) FindAll(ctx context.Context, offset, limit int) ([]*sales.SalesDelivery, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&sales.SalesDelivery{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var deliveries []*sales.SalesDelivery
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		Order("delivery_date DESC, sales_delivery_no DESC").
		Offset(offset).Limit(limit).
		Find(&deliveries).Error; err != nil {
		return nil, 0, err
	}
	return deliveries, total, nil
}

// Save persists a delivery and its lines
func (r *GormSalesDeliveryRepository) Save(ctx context.Context, delivery *sales.SalesDelivery) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(delivery).Error
}
