package procurement

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hsf/backend/internal/domain/shared"
)

// InboundDeliveryStatus is stored as an int.
type InboundDeliveryStatus int

const (
	InboundDeliveryStatusDelivered InboundDeliveryStatus = 0
	InboundDeliveryStatusCancelled InboundDeliveryStatus = 1
)

var inboundDeliveryStatusNames = map[InboundDeliveryStatus]string{
	InboundDeliveryStatusDelivered: "DELIVERED",
	InboundDeliveryStatusCancelled: "CANCELLED",
}

// String returns the status name
func (s InboundDeliveryStatus) String() string {
	if name, ok := inboundDeliveryStatusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsValid checks if the status is a known InboundDeliveryStatus
func (s InboundDeliveryStatus) IsValid() bool {
	_, ok := inboundDeliveryStatusNames[s]
	return ok
}

// InboundDeliveryLine records what actually arrived against one purchase
// invoice line. The line total is priced on the received quantity only;
// damaged goods count toward fulfilment but are never billed or stocked.
type InboundDeliveryLine struct {
	shared.BaseEntity
	InboundDeliveryID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	PurchaseInvoiceLineID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ComponentID           uuid.UUID       `gorm:"type:uuid;not null"`
	ComponentName         string          `gorm:"type:varchar(200);not null"`
	CategoryID            uuid.UUID       `gorm:"type:uuid;not null"`
	CategoryName          string          `gorm:"type:varchar(200);not null"`
	ExpectedQuantity      decimal.Decimal `gorm:"type:decimal(20,6);not null"`
	ReceivedQuantity      decimal.Decimal `gorm:"type:decimal(20,6);not null"`
	DamagedQuantity       decimal.Decimal `gorm:"type:decimal(20,6);not null;default:0"`
	PricePerUnit          decimal.Decimal `gorm:"type:decimal(20,6);not null"`
	TotalLineAmount       decimal.Decimal `gorm:"type:decimal(20,6);not null"`
}

// TableName returns the table name for GORM
func (InboundDeliveryLine) TableName() string {
	return "inbound_delivery_lines"
}

// FulfilledQuantity is the quantity this line counts toward completing the
// ordered line: received plus damaged.
func (l InboundDeliveryLine) FulfilledQuantity() decimal.Decimal {
	return l.ReceivedQuantity.Add(l.DamagedQuantity)
}

// InboundDeliveryAttachment is a document (delivery note, photo) stored in
// object storage and linked to a delivery. Only the key is persisted;
// download URLs are presigned on demand.
type InboundDeliveryAttachment struct {
	shared.BaseEntity
	InboundDeliveryID uuid.UUID `gorm:"type:uuid;not null;index"`
	FileName          string    `gorm:"type:varchar(255);not null"`
	FileS3Key         string    `gorm:"type:varchar(500);not null"`
	UploadedBy        string    `gorm:"type:varchar(100)"`
}

// TableName returns the table name for GORM
func (InboundDeliveryAttachment) TableName() string {
	return "inbound_delivery_attachments"
}

// InboundDelivery is one goods receipt against a purchase invoice. A delivery
// is immutable once created; corrections are made by deleting it and
// recording a new one.
type InboundDelivery struct {
	shared.BaseEntity
	InboundDeliveryNo string                      `gorm:"type:varchar(50);not null;uniqueIndex"`
	PurchaseInvoiceID uuid.UUID                   `gorm:"type:uuid;not null;index"`
	PurchaseInvoiceNo string                      `gorm:"type:varchar(50);not null"`
	DeliveryDate      time.Time                   `gorm:"not null"`
	Reference         string                      `gorm:"type:varchar(200)"`
	ReceivedBy        string                      `gorm:"type:varchar(100)"`
	Notes             string                      `gorm:"type:text"`
	Status            InboundDeliveryStatus       `gorm:"not null;default:0"`
	Deleted           bool                        `gorm:"not null;default:false"`
	Lines             []InboundDeliveryLine       `gorm:"foreignKey:InboundDeliveryID;references:ID;constraint:OnDelete:CASCADE"`
	Attachments       []InboundDeliveryAttachment `gorm:"foreignKey:InboundDeliveryID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (InboundDelivery) TableName() string {
	return "inbound_deliveries"
}

// NewInboundDelivery creates a delivery against an invoice. The delivery date
// cannot precede the invoice date.
func NewInboundDelivery(invoice *PurchaseInvoice, deliveryDate time.Time, reference, receivedBy, notes string) (*InboundDelivery, error) {
	if invoice == nil {
		return nil, shared.NewDomainError("INVALID_INVOICE", "Purchase invoice cannot be nil")
	}
	if invoice.Deleted {
		return nil, shared.NewDomainError("INVOICE_DELETED", "Cannot deliver against a deleted purchase invoice")
	}
	if deliveryDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DELIVERY_DATE", "Delivery date cannot be empty")
	}
	if deliveryDate.Before(invoice.InvoiceDate) {
		return nil, shared.NewDomainError("DELIVERY_BEFORE_INVOICE", "Delivery date cannot precede the invoice date")
	}

	return &InboundDelivery{
		BaseEntity:        shared.NewBaseEntity(),
		PurchaseInvoiceID: invoice.ID,
		PurchaseInvoiceNo: invoice.PurchaseInvoiceNo,
		DeliveryDate:      deliveryDate,
		Reference:         reference,
		ReceivedBy:        receivedBy,
		Notes:             notes,
		Status:            InboundDeliveryStatusDelivered,
		Lines:             make([]InboundDeliveryLine, 0),
		Attachments:       make([]InboundDeliveryAttachment, 0),
	}, nil
}

// SetNumber assigns the allocated document number. It can only be set once.
func (d *InboundDelivery) SetNumber(no string) error {
	if d.InboundDeliveryNo != "" {
		return shared.NewDomainError("NUMBER_ASSIGNED", "Document number is already assigned")
	}
	if no == "" {
		return shared.NewDomainError("INVALID_NUMBER", "Document number cannot be empty")
	}
	d.InboundDeliveryNo = no
	return nil
}

// AddLine records the goods received against one invoice line. deliverable is
// the quantity still open on that line before this delivery.
func (d *InboundDelivery) AddLine(invoiceLine *PurchaseInvoiceLine, received, damaged, deliverable decimal.Decimal) (*InboundDeliveryLine, error) {
	if invoiceLine == nil {
		return nil, shared.NewDomainError("LINE_NOT_FOUND", "Purchase invoice line not found")
	}
	if received.IsNegative() {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Received quantity cannot be negative")
	}
	if damaged.IsNegative() {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Damaged quantity cannot be negative")
	}
	fulfilled := received.Add(damaged)
	if fulfilled.IsZero() {
		return nil, shared.NewDomainError("EMPTY_LINE", "Delivery line must receive or damage a positive quantity")
	}
	if fulfilled.GreaterThan(deliverable) {
		return nil, shared.NewDomainError("OVER_DELIVERY", "Received and damaged quantity exceeds the open quantity on the invoice line")
	}
	for _, existing := range d.Lines {
		if existing.PurchaseInvoiceLineID == invoiceLine.ID {
			return nil, shared.NewDomainError("DUPLICATE_LINE", "Invoice line already appears on this delivery")
		}
	}

	line := InboundDeliveryLine{
		BaseEntity:            shared.NewBaseEntity(),
		InboundDeliveryID:     d.ID,
		PurchaseInvoiceLineID: invoiceLine.ID,
		ComponentID:           invoiceLine.ComponentID,
		ComponentName:         invoiceLine.ComponentName,
		CategoryID:            invoiceLine.CategoryID,
		CategoryName:          invoiceLine.CategoryName,
		ExpectedQuantity:      deliverable,
		ReceivedQuantity:      received,
		DamagedQuantity:       damaged,
		PricePerUnit:          invoiceLine.PricePerUnit,
		TotalLineAmount:       invoiceLine.PricePerUnit.Mul(received),
	}
	d.Lines = append(d.Lines, line)
	d.UpdatedAt = time.Now()

	return &d.Lines[len(d.Lines)-1], nil
}

// AddAttachment links an uploaded object to the delivery.
func (d *InboundDelivery) AddAttachment(fileName, s3Key, uploadedBy string) (*InboundDeliveryAttachment, error) {
	if fileName == "" {
		return nil, shared.NewDomainError("INVALID_FILE_NAME", "File name cannot be empty")
	}
	if s3Key == "" {
		return nil, shared.NewDomainError("INVALID_FILE_KEY", "File key cannot be empty")
	}

	att := InboundDeliveryAttachment{
		BaseEntity:        shared.NewBaseEntity(),
		InboundDeliveryID: d.ID,
		FileName:          fileName,
		FileS3Key:         s3Key,
		UploadedBy:        uploadedBy,
	}
	d.Attachments = append(d.Attachments, att)
	d.UpdatedAt = time.Now()

	return &d.Attachments[len(d.Attachments)-1], nil
}

// ReceivedTotals sums received plus damaged per invoice line for this
// delivery alone.
func (d *InboundDelivery) ReceivedTotals() map[uuid.UUID]decimal.Decimal {
	totals := make(map[uuid.UUID]decimal.Decimal, len(d.Lines))
	for _, line := range d.Lines {
		totals[line.PurchaseInvoiceLineID] = totals[line.PurchaseInvoiceLineID].Add(line.FulfilledQuantity())
	}
	return totals
}
