package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hsf/backend/internal/domain/sales"
)

// ==================== Cart DTOs ====================

// AddCartLineRequest stages a component quantity in a customer's cart
type AddCartLineRequest struct {
	CustomerID  uuid.UUID       `json:"customer_id" binding:"required"`
	ComponentID uuid.UUID       `json:"component_id" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required,dgt0"`
}

// UpdateCartLineRequest replaces the staged quantity
type UpdateCartLineRequest struct {
	Quantity decimal.Decimal `json:"quantity" binding:"required,dgt0"`
}

// CartLineResponse represents a cart line in responses
type CartLineResponse struct {
	ID            uuid.UUID       `json:"id"`
	CustomerID    uuid.UUID       `json:"customer_id"`
	ComponentID   uuid.UUID       `json:"component_id"`
	ComponentName string          `json:"component_name"`
	Quantity      decimal.Decimal `json:"quantity"`
}

// ToCartLineResponse converts a domain cart line to a response DTO
func ToCartLineResponse(l *sales.CartLine) CartLineResponse {
	return CartLineResponse{
		ID:            l.ID,
		CustomerID:    l.CustomerID,
		ComponentID:   l.ComponentID,
		ComponentName: l.ComponentName,
		Quantity:      l.Quantity,
	}
}

// ==================== Sales Quote DTOs ====================

// CreateSalesQuoteRequest turns a customer's whole cart into a quote priced
// on the quote date's weekday tier
type CreateSalesQuoteRequest struct {
	CustomerID        uuid.UUID  `json:"customer_id" binding:"required"`
	CustomerName      string     `json:"customer_name"`
	ShippingAddress   string     `json:"shipping_address" binding:"required"`
	PaymentMethodName string     `json:"payment_method_name" binding:"required"`
	Notes             string     `json:"notes"`
	QuoteDate         *time.Time `json:"quote_date"`
}

// SalesQuoteLineResponse represents a quote line in responses
type SalesQuoteLineResponse struct {
	ID              uuid.UUID       `json:"id"`
	ComponentID     uuid.UUID       `json:"component_id"`
	ComponentName   string          `json:"component_name"`
	Quantity        decimal.Decimal `json:"quantity"`
	PricePerUnit    decimal.Decimal `json:"price_per_unit"`
	TotalLineAmount decimal.Decimal `json:"total_line_amount"`
}

// SalesQuoteResponse represents a sales quote in responses
type SalesQuoteResponse struct {
	ID                  uuid.UUID                `json:"id"`
	SalesQuoteNo        string                   `json:"sales_quote_no"`
	QuoteDate           time.Time                `json:"quote_date"`
	CustomerID          uuid.UUID                `json:"customer_id"`
	CustomerName        string                   `json:"customer_name,omitempty"`
	ShippingAddress     string                   `json:"shipping_address"`
	PaymentMethodName   string                   `json:"payment_method_name"`
	Notes               string                   `json:"notes,omitempty"`
	SumTotalLineAmounts decimal.Decimal          `json:"sum_total_line_amounts"`
	TotalPayableAmount  decimal.Decimal          `json:"total_payable_amount"`
	Lines               []SalesQuoteLineResponse `json:"lines"`
	CreatedAt           time.Time                `json:"created_at"`
}

// ToSalesQuoteResponse converts a domain sales quote to a response DTO
func ToSalesQuoteResponse(q *sales.SalesQuote) SalesQuoteResponse {
	lines := make([]SalesQuoteLineResponse, 0, len(q.Lines))
	for _, l := range q.Lines {
		lines = append(lines, SalesQuoteLineResponse{
			ID:              l.ID,
			ComponentID:     l.ComponentID,
			ComponentName:   l.ComponentName,
			Quantity:        l.Quantity,
			PricePerUnit:    l.PricePerUnit,
			TotalLineAmount: l.TotalLineAmount,
		})
	}
	return SalesQuoteResponse{
		ID:                  q.ID,
		SalesQuoteNo:        q.SalesQuoteNo,
		QuoteDate:           q.QuoteDate,
		CustomerID:          q.CustomerID,
		CustomerName:        q.CustomerName,
		ShippingAddress:     q.ShippingAddress,
		PaymentMethodName:   q.PaymentMethodName,
		Notes:               q.Notes,
		SumTotalLineAmounts: q.SumTotalLineAmounts,
		TotalPayableAmount:  q.TotalPayableAmount,
		Lines:               lines,
		CreatedAt:           q.CreatedAt,
	}
}

// ==================== Sales Invoice DTOs ====================

// PromoteQuoteRequest turns a quote into an invoice
type PromoteQuoteRequest struct {
	SalesQuoteNo string     `json:"sales_quote_no" binding:"required"`
	InvoiceDate  *time.Time `json:"invoice_date"`
}

// SalesInvoiceLineResponse represents an invoice line in responses
type SalesInvoiceLineResponse struct {
	ID              uuid.UUID       `json:"id"`
	ComponentID     uuid.UUID       `json:"component_id"`
	ComponentName   string          `json:"component_name"`
	Quantity        decimal.Decimal `json:"quantity"`
	PricePerUnit    decimal.Decimal `json:"price_per_unit"`
	TotalLineAmount decimal.Decimal `json:"total_line_amount"`
}

// SalesInvoiceResponse represents a sales invoice in responses
type SalesInvoiceResponse struct {
	ID                  uuid.UUID                  `json:"id"`
	SalesInvoiceNo      string                     `json:"sales_invoice_no"`
	SalesQuoteNo        string                     `json:"sales_quote_no"`
	InvoiceDate         time.Time                  `json:"invoice_date"`
	CustomerID          uuid.UUID                  `json:"customer_id"`
	CustomerName        string                     `json:"customer_name,omitempty"`
	ShippingAddress     string                     `json:"shipping_address"`
	PaymentMethodName   string                     `json:"payment_method_name"`
	Notes               string                     `json:"notes,omitempty"`
	Status              string                     `json:"status"`
	SumTotalLineAmounts decimal.Decimal            `json:"sum_total_line_amounts"`
	TotalPayableAmount  decimal.Decimal            `json:"total_payable_amount"`
	Lines               []SalesInvoiceLineResponse `json:"lines"`
	CreatedAt           time.Time                  `json:"created_at"`
	UpdatedAt           time.Time                  `json:"updated_at"`
}

// ToSalesInvoiceResponse converts a domain sales invoice to a response DTO
func ToSalesInvoiceResponse(inv *sales.SalesInvoice) SalesInvoiceResponse {
	lines := make([]SalesInvoiceLineResponse, 0, len(inv.Lines))
	for _, l := range inv.Lines {
		lines = append(lines, SalesInvoiceLineResponse{
			ID:              l.ID,
			ComponentID:     l.ComponentID,
			ComponentName:   l.ComponentName,
			Quantity:        l.Quantity,
			PricePerUnit:    l.PricePerUnit,
			TotalLineAmount: l.TotalLineAmount,
		})
	}
	return SalesInvoiceResponse{
		ID:                  inv.ID,
		SalesInvoiceNo:      inv.SalesInvoiceNo,
		SalesQuoteNo:        inv.SalesQuoteNo,
		InvoiceDate:         inv.InvoiceDate,
		CustomerID:          inv.CustomerID,
		CustomerName:        inv.CustomerName,
		ShippingAddress:     inv.ShippingAddress,
		PaymentMethodName:   inv.PaymentMethodName,
		Notes:               inv.Notes,
		Status:              inv.Status.String(),
		SumTotalLineAmounts: inv.SumTotalLineAmounts,
		TotalPayableAmount:  inv.TotalPayableAmount,
		Lines:               lines,
		CreatedAt:           inv.CreatedAt,
		UpdatedAt:           inv.UpdatedAt,
	}
}

// ==================== Sales Delivery DTOs ====================

// CreateSalesDeliveryRequest plans a delivery for an invoice
type CreateSalesDeliveryRequest struct {
	SalesInvoiceID uuid.UUID  `json:"sales_invoice_id" binding:"required"`
	DeliveryDate   *time.Time `json:"delivery_date"`
	Notes          string     `json:"notes"`
}

// MarkDeliveredRequest records who handed the goods over
type MarkDeliveredRequest struct {
	DeliveredBy string `json:"delivered_by"`
}

// SalesDeliveryLineResponse represents a delivery line in responses
type SalesDeliveryLineResponse struct {
	ID            uuid.UUID       `json:"id"`
	ComponentID   uuid.UUID       `json:"component_id"`
	ComponentName string          `json:"component_name"`
	Quantity      decimal.Decimal `json:"quantity"`
}

// SalesDeliveryResponse represents a sales delivery in responses
type SalesDeliveryResponse struct {
	ID              uuid.UUID                   `json:"id"`
	SalesDeliveryNo string                      `json:"sales_delivery_no"`
	SalesInvoiceID  uuid.UUID                   `json:"sales_invoice_id"`
	SalesInvoiceNo  string                      `json:"sales_invoice_no"`
	DeliveryDate    time.Time                   `json:"delivery_date"`
	DeliveredAt     *time.Time                  `json:"delivered_at,omitempty"`
	DeliveredBy     string                      `json:"delivered_by,omitempty"`
	Notes           string                      `json:"notes,omitempty"`
	Status          string                      `json:"status"`
	Lines           []SalesDeliveryLineResponse `json:"lines"`
	CreatedAt       time.Time                   `json:"created_at"`
	UpdatedAt       time.Time                   `json:"updated_at"`
}

// ToSalesDeliveryResponse converts a domain sales delivery to a response DTO
func ToSalesDeliveryResponse(d *sales.SalesDelivery) SalesDeliveryResponse {
	lines := make([]SalesDeliveryLineResponse, 0, len(d.Lines))
	for _, l := range d.Lines {
		lines = append(lines, SalesDeliveryLineResponse{
			ID:            l.ID,
			ComponentID:   l.ComponentID,
			ComponentName: l.ComponentName,
			Quantity:      l.Quantity,
		})
	}
	return SalesDeliveryResponse{
		ID:              d.ID,
		SalesDeliveryNo: d.SalesDeliveryNo,
		SalesInvoiceID:  d.SalesInvoiceID,
		SalesInvoiceNo:  d.SalesInvoiceNo,
		DeliveryDate:    d.DeliveryDate,
		DeliveredAt:     d.DeliveredAt,
		DeliveredBy:     d.DeliveredBy,
		Notes:           d.Notes,
		Status:          d.Status.String(),
		Lines:           lines,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

// ListResponse wraps a page of results
type ListResponse[T any] struct {
	Items  []T   `json:"items"`
	Total  int64 `json:"total"`
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
}
