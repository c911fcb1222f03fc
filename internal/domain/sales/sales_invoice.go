package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hsf/backend/internal/domain/shared"
)

// SalesInvoiceStatus is stored as an int.
type SalesInvoiceStatus int

const (
	SalesInvoiceStatusPending   SalesInvoiceStatus = 0
	SalesInvoiceStatusCompleted SalesInvoiceStatus = 1
	SalesInvoiceStatusVoid      SalesInvoiceStatus = 2
)

var salesInvoiceStatusNames = map[SalesInvoiceStatus]string{
	SalesInvoiceStatusPending:   "PENDING",
	SalesInvoiceStatusCompleted: "COMPLETED",
	SalesInvoiceStatusVoid:      "VOID",
}

// String returns the status name
func (s SalesInvoiceStatus) String() string {
	if name, ok := salesInvoiceStatusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsValid checks if the status is a known SalesInvoiceStatus
func (s SalesInvoiceStatus) IsValid() bool {
	_, ok := salesInvoiceStatusNames[s]
	return ok
}

// SalesInvoiceLine mirrors the quote line it was promoted from.
type SalesInvoiceLine struct {
	shared.BaseEntity
	SalesInvoiceID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	ComponentID     uuid.UUID       `gorm:"type:uuid;not null"`
	ComponentName   string          `gorm:"type:varchar(200);not null"`
	Quantity        decimal.Decimal `gorm:"type:decimal(20,6);not null"`
	PricePerUnit    decimal.Decimal `gorm:"type:decimal(20,6);not null"`
	TotalLineAmount decimal.Decimal `gorm:"type:decimal(20,6);not null"`
}

// TableName returns the table name for GORM
func (SalesInvoiceLine) TableName() string {
	return "sales_invoice_lines"
}

// SalesInvoice is a promoted quote. SalesQuoteNo carries a unique index so
// promoting the same quote twice returns the existing invoice instead of
// minting a second one.
type SalesInvoice struct {
	shared.BaseEntity
	SalesInvoiceNo      string             `gorm:"type:varchar(50);not null;uniqueIndex"`
	SalesQuoteNo        string             `gorm:"type:varchar(50);not null;uniqueIndex"`
	InvoiceDate         time.Time          `gorm:"not null"`
	CustomerID          uuid.UUID          `gorm:"type:uuid;not null;index"`
	CustomerName        string             `gorm:"type:varchar(200)"`
	ShippingAddress     string             `gorm:"type:text;not null"`
	PaymentMethodName   string             `gorm:"type:varchar(100);not null"`
	Notes               string             `gorm:"type:text"`
	Status              SalesInvoiceStatus `gorm:"not null;default:0"`
	SumTotalLineAmounts decimal.Decimal    `gorm:"type:decimal(20,6);not null;default:0"`
	TotalPayableAmount  decimal.Decimal    `gorm:"type:decimal(20,6);not null;default:0"`
	Lines               []SalesInvoiceLine `gorm:"foreignKey:SalesInvoiceID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (SalesInvoice) TableName() string {
	return "sales_invoices"
}

// NewSalesInvoiceFromQuote promotes a quote into a pending invoice, copying
// its lines and totals.
func NewSalesInvoiceFromQuote(quote *SalesQuote, invoiceDate time.Time) (*SalesInvoice, error) {
	if quote == nil {
		return nil, shared.NewDomainError("INVALID_QUOTE", "Sales quote cannot be nil")
	}
	if len(quote.Lines) == 0 {
		return nil, shared.NewDomainError("EMPTY_QUOTE", "Cannot invoice a quote with no lines")
	}
	if invoiceDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_INVOICE_DATE", "Invoice date cannot be empty")
	}

	inv := &SalesInvoice{
		BaseEntity:          shared.NewBaseEntity(),
		SalesQuoteNo:        quote.SalesQuoteNo,
		InvoiceDate:         invoiceDate,
		CustomerID:          quote.CustomerID,
		CustomerName:        quote.CustomerName,
		ShippingAddress:     quote.ShippingAddress,
		PaymentMethodName:   quote.PaymentMethodName,
		Notes:               quote.Notes,
		Status:              SalesInvoiceStatusPending,
		SumTotalLineAmounts: quote.SumTotalLineAmounts,
		TotalPayableAmount:  quote.TotalPayableAmount,
		Lines:               make([]SalesInvoiceLine, 0, len(quote.Lines)),
	}
	for _, ql := range quote.Lines {
		inv.Lines = append(inv.Lines, SalesInvoiceLine{
			BaseEntity:      shared.NewBaseEntity(),
			SalesInvoiceID:  inv.ID,
			ComponentID:     ql.ComponentID,
			ComponentName:   ql.ComponentName,
			Quantity:        ql.Quantity,
			PricePerUnit:    ql.PricePerUnit,
			TotalLineAmount: ql.TotalLineAmount,
		})
	}
	return inv, nil
}

// SetNumber assigns the allocated document number. It can only be set once.
func (inv *SalesInvoice) SetNumber(no string) error {
	if inv.SalesInvoiceNo != "" {
		return shared.NewDomainError("NUMBER_ASSIGNED", "Document number is already assigned")
	}
	if no == "" {
		return shared.NewDomainError("INVALID_NUMBER", "Document number cannot be empty")
	}
	inv.SalesInvoiceNo = no
	return nil
}

// MarkCompleted transitions the invoice to COMPLETED when a delivery starts
// covering it.
func (inv *SalesInvoice) MarkCompleted() error {
	if inv.Status == SalesInvoiceStatusVoid {
		return shared.NewDomainError("INVOICE_VOID", "Cannot complete a void invoice")
	}
	inv.Status = SalesInvoiceStatusCompleted
	inv.UpdatedAt = time.Now()
	return nil
}

// Reopen returns the invoice to PENDING after its delivery is voided.
func (inv *SalesInvoice) Reopen() error {
	if inv.Status == SalesInvoiceStatusVoid {
		return shared.NewDomainError("INVOICE_VOID", "Cannot reopen a void invoice")
	}
	inv.Status = SalesInvoiceStatusPending
	inv.UpdatedAt = time.Now()
	return nil
}

// MarkVoid cancels the invoice. A completed invoice cannot be voided; its
// delivery must be voided first so the stock issues are reversed.
func (inv *SalesInvoice) MarkVoid() error {
	if inv.Status == SalesInvoiceStatusCompleted {
		return shared.NewDomainError("INVOICE_COMPLETED", "Cannot void a completed invoice; void its delivery first")
	}
	inv.Status = SalesInvoiceStatusVoid
	inv.UpdatedAt = time.Now()
	return nil
}
