package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hsf/backend/internal/domain/shared"
)

// SalesQuoteLine is a priced cart line. The unit price is frozen at the
// moment of quoting from the component's weekday price tier.
type SalesQuoteLine struct {
	shared.BaseEntity
	SalesQuoteID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	ComponentID     uuid.UUID       `gorm:"type:uuid;not null"`
	ComponentName   string          `gorm:"type:varchar(200);not null"`
	Quantity        decimal.Decimal `gorm:"type:decimal(20,6);not null"`
	PricePerUnit    decimal.Decimal `gorm:"type:decimal(20,6);not null"`
	TotalLineAmount decimal.Decimal `gorm:"type:decimal(20,6);not null"`
}

// TableName returns the table name for GORM
func (SalesQuoteLine) TableName() string {
	return "sales_quote_lines"
}

// SalesQuote is a priced offer built from a customer's cart. Promoting it to
// an invoice deletes the quote; it has no status of its own.
// TotalPayableAmount equals SumTotalLineAmounts today; they diverge once
// order-level charges or discounts exist, so both are persisted.
type SalesQuote struct {
	shared.BaseEntity
	SalesQuoteNo        string           `gorm:"type:varchar(50);not null;uniqueIndex"`
	QuoteDate           time.Time        `gorm:"not null"`
	CustomerID          uuid.UUID        `gorm:"type:uuid;not null;index"`
	CustomerName        string           `gorm:"type:varchar(200)"`
	ShippingAddress     string           `gorm:"type:text;not null"`
	PaymentMethodName   string           `gorm:"type:varchar(100);not null"`
	Notes               string           `gorm:"type:text"`
	SumTotalLineAmounts decimal.Decimal  `gorm:"type:decimal(20,6);not null;default:0"`
	TotalPayableAmount  decimal.Decimal  `gorm:"type:decimal(20,6);not null;default:0"`
	Lines               []SalesQuoteLine `gorm:"foreignKey:SalesQuoteID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (SalesQuote) TableName() string {
	return "sales_quotes"
}

// NewSalesQuote creates an empty quote for a customer with the shipping and
// payment details the goods will be invoiced under.
func NewSalesQuote(customerID uuid.UUID, customerName, shippingAddress, paymentMethodName, notes string, quoteDate time.Time) (*SalesQuote, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}
	if shippingAddress == "" {
		return nil, shared.NewDomainError("INVALID_SHIPPING_ADDRESS", "Shipping address cannot be empty")
	}
	if paymentMethodName == "" {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Payment method cannot be empty")
	}
	if quoteDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_QUOTE_DATE", "Quote date cannot be empty")
	}

	return &SalesQuote{
		BaseEntity:          shared.NewBaseEntity(),
		QuoteDate:           quoteDate,
		CustomerID:          customerID,
		CustomerName:        customerName,
		ShippingAddress:     shippingAddress,
		PaymentMethodName:   paymentMethodName,
		Notes:               notes,
		SumTotalLineAmounts: decimal.Zero,
		TotalPayableAmount:  decimal.Zero,
		Lines:               make([]SalesQuoteLine, 0),
	}, nil
}

// SetNumber assigns the allocated document number. It can only be set once.
func (q *SalesQuote) SetNumber(no string) error {
	if q.SalesQuoteNo != "" {
		return shared.NewDomainError("NUMBER_ASSIGNED", "Document number is already assigned")
	}
	if no == "" {
		return shared.NewDomainError("INVALID_NUMBER", "Document number cannot be empty")
	}
	q.SalesQuoteNo = no
	return nil
}

// AddLine prices one cart line into the quote and refreshes the totals.
func (q *SalesQuote) AddLine(componentID uuid.UUID, componentName string, quantity, pricePerUnit decimal.Decimal) (*SalesQuoteLine, error) {
	if componentID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_COMPONENT", "Component ID cannot be empty")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if pricePerUnit.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price per unit cannot be negative")
	}

	line := SalesQuoteLine{
		BaseEntity:      shared.NewBaseEntity(),
		SalesQuoteID:    q.ID,
		ComponentID:     componentID,
		ComponentName:   componentName,
		Quantity:        quantity,
		PricePerUnit:    pricePerUnit,
		TotalLineAmount: quantity.Mul(pricePerUnit),
	}
	q.Lines = append(q.Lines, line)
	q.SumTotalLineAmounts = q.SumTotalLineAmounts.Add(line.TotalLineAmount)
	q.TotalPayableAmount = q.SumTotalLineAmounts
	q.UpdatedAt = time.Now()

	return &q.Lines[len(q.Lines)-1], nil
}
