package procurement

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hsf/backend/internal/domain/procurement"
)

// ==================== Purchase Invoice DTOs ====================

// CreatePurchaseInvoiceRequest represents a request to create a purchase invoice
type CreatePurchaseInvoiceRequest struct {
	SupplierName         string                           `json:"supplier_name" binding:"required,min=1,max=200"`
	InvoiceDate          time.Time                        `json:"invoice_date" binding:"required"`
	ExpectedDeliveryDate *time.Time                       `json:"expected_delivery_date"`
	Notes                string                           `json:"notes"`
	Lines                []CreatePurchaseInvoiceLineInput `json:"lines" binding:"required,min=1,dive"`
}

// CreatePurchaseInvoiceLineInput represents a line in the create invoice request
type CreatePurchaseInvoiceLineInput struct {
	ComponentID  uuid.UUID       `json:"component_id" binding:"required"`
	Quantity     decimal.Decimal `json:"quantity" binding:"required,dgt0"`
	PricePerUnit decimal.Decimal `json:"price_per_unit" binding:"required,dgt0"`
}

// UpdatePurchaseInvoiceRequest represents a request to update invoice header fields
type UpdatePurchaseInvoiceRequest struct {
	SupplierName         *string    `json:"supplier_name"`
	ExpectedDeliveryDate *time.Time `json:"expected_delivery_date"`
	Notes                *string    `json:"notes"`
}

// PurchaseInvoiceLineResponse represents a purchase invoice line in responses
type PurchaseInvoiceLineResponse struct {
	ID              uuid.UUID       `json:"id"`
	ComponentID     uuid.UUID       `json:"component_id"`
	ComponentName   string          `json:"component_name"`
	CategoryID      uuid.UUID       `json:"category_id"`
	CategoryName    string          `json:"category_name"`
	Quantity        decimal.Decimal `json:"quantity"`
	PricePerUnit    decimal.Decimal `json:"price_per_unit"`
	TotalLineAmount decimal.Decimal `json:"total_line_amount"`
}

// PurchaseInvoiceResponse represents a purchase invoice in responses
type PurchaseInvoiceResponse struct {
	ID                   uuid.UUID                     `json:"id"`
	PurchaseInvoiceNo    string                        `json:"purchase_invoice_no"`
	InvoiceDate          time.Time                     `json:"invoice_date"`
	ExpectedDeliveryDate *time.Time                    `json:"expected_delivery_date,omitempty"`
	SupplierName         string                        `json:"supplier_name"`
	Notes                string                        `json:"notes,omitempty"`
	Status               string                        `json:"status"`
	SumTotalLineAmounts  decimal.Decimal               `json:"sum_total_line_amounts"`
	Lines                []PurchaseInvoiceLineResponse `json:"lines"`
	CreatedAt            time.Time                     `json:"created_at"`
	UpdatedAt            time.Time                     `json:"updated_at"`
}

// ToPurchaseInvoiceResponse converts a domain purchase invoice to a response DTO
func ToPurchaseInvoiceResponse(inv *procurement.PurchaseInvoice) PurchaseInvoiceResponse {
	lines := make([]PurchaseInvoiceLineResponse, 0, len(inv.Lines))
	for _, l := range inv.Lines {
		lines = append(lines, PurchaseInvoiceLineResponse{
			ID:              l.ID,
			ComponentID:     l.ComponentID,
			ComponentName:   l.ComponentName,
			CategoryID:      l.CategoryID,
			CategoryName:    l.CategoryName,
			Quantity:        l.Quantity,
			PricePerUnit:    l.PricePerUnit,
			TotalLineAmount: l.TotalLineAmount,
		})
	}
	return PurchaseInvoiceResponse{
		ID:                   inv.ID,
		PurchaseInvoiceNo:    inv.PurchaseInvoiceNo,
		InvoiceDate:          inv.InvoiceDate,
		ExpectedDeliveryDate: inv.ExpectedDeliveryDate,
		SupplierName:         inv.SupplierName,
		Notes:                inv.Notes,
		Status:               inv.Status.String(),
		SumTotalLineAmounts:  inv.SumTotalLineAmounts,
		Lines:                lines,
		CreatedAt:            inv.CreatedAt,
		UpdatedAt:            inv.UpdatedAt,
	}
}

// ==================== Inbound Delivery DTOs ====================

// CreateInboundDeliveryRequest represents a request to record a goods receipt
type CreateInboundDeliveryRequest struct {
	PurchaseInvoiceID uuid.UUID                        `json:"purchase_invoice_id" binding:"required"`
	DeliveryDate      time.Time                        `json:"delivery_date" binding:"required"`
	Reference         string                           `json:"reference"`
	ReceivedBy        string                           `json:"received_by"`
	Notes             string                           `json:"notes"`
	Lines             []CreateInboundDeliveryLineInput `json:"lines" binding:"required,min=1,dive"`
	Attachments       []AttachmentInput                `json:"attachments"`
}

// CreateInboundDeliveryLineInput represents a received line in the create request
type CreateInboundDeliveryLineInput struct {
	PurchaseInvoiceLineID uuid.UUID       `json:"purchase_invoice_line_id" binding:"required"`
	ReceivedQuantity      decimal.Decimal `json:"received_quantity"`
	DamagedQuantity       decimal.Decimal `json:"damaged_quantity"`
}

// AttachmentInput references an already uploaded object
type AttachmentInput struct {
	FileName   string `json:"file_name" binding:"required,min=1,max=255"`
	FileS3Key  string `json:"file_s3_key" binding:"required,min=1,max=500"`
	UploadedBy string `json:"uploaded_by"`
}

// InboundDeliveryLineResponse represents an inbound delivery line in responses
type InboundDeliveryLineResponse struct {
	ID                    uuid.UUID       `json:"id"`
	PurchaseInvoiceLineID uuid.UUID       `json:"purchase_invoice_line_id"`
	ComponentID           uuid.UUID       `json:"component_id"`
	ComponentName         string          `json:"component_name"`
	CategoryID            uuid.UUID       `json:"category_id"`
	CategoryName          string          `json:"category_name"`
	ExpectedQuantity      decimal.Decimal `json:"expected_quantity"`
	ReceivedQuantity      decimal.Decimal `json:"received_quantity"`
	DamagedQuantity       decimal.Decimal `json:"damaged_quantity"`
	PricePerUnit          decimal.Decimal `json:"price_per_unit"`
	TotalLineAmount       decimal.Decimal `json:"total_line_amount"`
}

// AttachmentResponse represents an attachment together with a temporary
// download URL when one was requested
type AttachmentResponse struct {
	ID          uuid.UUID `json:"id"`
	FileName    string    `json:"file_name"`
	FileS3Key   string    `json:"file_s3_key"`
	UploadedBy  string    `json:"uploaded_by,omitempty"`
	DownloadURL string    `json:"download_url,omitempty"`
}

// InboundDeliveryResponse represents an inbound delivery in responses
type InboundDeliveryResponse struct {
	ID                uuid.UUID                     `json:"id"`
	InboundDeliveryNo string                        `json:"inbound_delivery_no"`
	PurchaseInvoiceID uuid.UUID                     `json:"purchase_invoice_id"`
	PurchaseInvoiceNo string                        `json:"purchase_invoice_no"`
	DeliveryDate      time.Time                     `json:"delivery_date"`
	Reference         string                        `json:"reference,omitempty"`
	ReceivedBy        string                        `json:"received_by,omitempty"`
	Notes             string                        `json:"notes,omitempty"`
	Status            string                        `json:"status"`
	Lines             []InboundDeliveryLineResponse `json:"lines"`
	Attachments       []AttachmentResponse          `json:"attachments"`
	CreatedAt         time.Time                     `json:"created_at"`
	UpdatedAt         time.Time                     `json:"updated_at"`
}

// ToInboundDeliveryResponse converts a domain inbound delivery to a response DTO
func ToInboundDeliveryResponse(d *procurement.InboundDelivery) InboundDeliveryResponse {
	lines := make([]InboundDeliveryLineResponse, 0, len(d.Lines))
	for _, l := range d.Lines {
		lines = append(lines, InboundDeliveryLineResponse{
			ID:                    l.ID,
			PurchaseInvoiceLineID: l.PurchaseInvoiceLineID,
			ComponentID:           l.ComponentID,
			ComponentName:         l.ComponentName,
			CategoryID:            l.CategoryID,
			CategoryName:          l.CategoryName,
			ExpectedQuantity:      l.ExpectedQuantity,
			ReceivedQuantity:      l.ReceivedQuantity,
			DamagedQuantity:       l.DamagedQuantity,
			PricePerUnit:          l.PricePerUnit,
			TotalLineAmount:       l.TotalLineAmount,
		})
	}
	attachments := make([]AttachmentResponse, 0, len(d.Attachments))
	for _, a := range d.Attachments {
		attachments = append(attachments, AttachmentResponse{
			ID:         a.ID,
			FileName:   a.FileName,
			FileS3Key:  a.FileS3Key,
			UploadedBy: a.UploadedBy,
		})
	}
	return InboundDeliveryResponse{
		ID:                d.ID,
		InboundDeliveryNo: d.InboundDeliveryNo,
		PurchaseInvoiceID: d.PurchaseInvoiceID,
		PurchaseInvoiceNo: d.PurchaseInvoiceNo,
		DeliveryDate:      d.DeliveryDate,
		Reference:         d.Reference,
		ReceivedBy:        d.ReceivedBy,
		Notes:             d.Notes,
		Status:            d.Status.String(),
		Lines:             lines,
		Attachments:       attachments,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}

// ListResponse wraps a page of results
type ListResponse[T any] struct {
	Items  []T   `json:"items"`
	Total  int64 `json:"total"`
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
}
