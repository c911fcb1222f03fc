package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hsf/backend/internal/domain/shared"
)

// SalesDeliveryStatus is stored as an int.
type SalesDeliveryStatus int

const (
	SalesDeliveryStatusProcessing SalesDeliveryStatus = 0
	SalesDeliveryStatusDelivered  SalesDeliveryStatus = 1
	SalesDeliveryStatusVoid       SalesDeliveryStatus = 2
)

var salesDeliveryStatusNames = map[SalesDeliveryStatus]string{
	SalesDeliveryStatusProcessing: "PROCESSING",
	SalesDeliveryStatusDelivered:  "DELIVERED",
	SalesDeliveryStatusVoid:       "VOID",
}

// String returns the status name
func (s SalesDeliveryStatus) String() string {
	if name, ok := salesDeliveryStatusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsValid checks if the status is a known SalesDeliveryStatus
func (s SalesDeliveryStatus) IsValid() bool {
	_, ok := salesDeliveryStatusNames[s]
	return ok
}

// IsActive reports whether this delivery still occupies its invoice. An
// invoice may have at most one active (non-void) delivery at a time.
func (s SalesDeliveryStatus) IsActive() bool {
	return s != SalesDeliveryStatusVoid
}

// SalesDeliveryLine is the outbound counterpart of an invoice line.
type SalesDeliveryLine struct {
	shared.BaseEntity
	SalesDeliveryID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ComponentID     uuid.UUID       `gorm:"type:uuid;not null"`
	ComponentName   string          `gorm:"type:varchar(200);not null"`
	Quantity        decimal.Decimal `gorm:"type:decimal(20,6);not null"`
}

// TableName returns the table name for GORM
func (SalesDeliveryLine) TableName() string {
	return "sales_delivery_lines"
}

// SalesDelivery ships the goods of a sales invoice. It starts PROCESSING,
// moves to DELIVERED when the goods leave stock, and can be voided from
// either state to undo the shipment.
type SalesDelivery struct {
	shared.BaseEntity
	SalesDeliveryNo string              `gorm:"type:varchar(50);not null;uniqueIndex"`
	SalesInvoiceID  uuid.UUID           `gorm:"type:uuid;not null;index"`
	SalesInvoiceNo  string              `gorm:"type:varchar(50);not null"`
	DeliveryDate    time.Time           `gorm:"not null"`
	DeliveredAt     *time.Time          `gorm:""`
	DeliveredBy     string              `gorm:"type:varchar(100)"`
	Notes           string              `gorm:"type:text"`
	Status          SalesDeliveryStatus `gorm:"not null;default:0"`
	Lines           []SalesDeliveryLine `gorm:"foreignKey:SalesDeliveryID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (SalesDelivery) TableName() string {
	return "sales_deliveries"
}

// NewSalesDeliveryFromInvoice plans a delivery covering every line of the
// invoice. Void invoices cannot be shipped.
func NewSalesDeliveryFromInvoice(invoice *SalesInvoice, deliveryDate time.Time, notes string) (*SalesDelivery, error) {
	if invoice == nil {
		return nil, shared.NewDomainError("INVALID_INVOICE", "Sales invoice cannot be nil")
	}
	if invoice.Status == SalesInvoiceStatusVoid {
		return nil, shared.NewDomainError("INVOICE_VOID", "Cannot deliver a void invoice")
	}
	if deliveryDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DELIVERY_DATE", "Delivery date cannot be empty")
	}

	d := &SalesDelivery{
		BaseEntity:     shared.NewBaseEntity(),
		SalesInvoiceID: invoice.ID,
		SalesInvoiceNo: invoice.SalesInvoiceNo,
		DeliveryDate:   deliveryDate,
		Notes:          notes,
		Status:         SalesDeliveryStatusProcessing,
		Lines:          make([]SalesDeliveryLine, 0, len(invoice.Lines)),
	}
	for _, il := range invoice.Lines {
		d.Lines = append(d.Lines, SalesDeliveryLine{
			BaseEntity:      shared.NewBaseEntity(),
			SalesDeliveryID: d.ID,
			ComponentID:     il.ComponentID,
			ComponentName:   il.ComponentName,
			Quantity:        il.Quantity,
		})
	}
	return d, nil
}

// SetNumber assigns the allocated document number. It can only be set once.
func (d *SalesDelivery) SetNumber(no string) error {
	if d.SalesDeliveryNo != "" {
		return shared.NewDomainError("NUMBER_ASSIGNED", "Document number is already assigned")
	}
	if no == "" {
		return shared.NewDomainError("INVALID_NUMBER", "Document number cannot be empty")
	}
	d.SalesDeliveryNo = no
	return nil
}

// MarkDelivered records that the goods left the warehouse.
func (d *SalesDelivery) MarkDelivered(deliveredBy string, at time.Time) error {
	if d.Status == SalesDeliveryStatusVoid {
		return shared.NewDomainError("DELIVERY_VOID", "Cannot deliver a void delivery")
	}
	if d.Status == SalesDeliveryStatusDelivered {
		return shared.NewDomainError("ALREADY_DELIVERED", "Delivery is already delivered")
	}
	d.Status = SalesDeliveryStatusDelivered
	d.DeliveredAt = &at
	d.DeliveredBy = deliveredBy
	d.UpdatedAt = time.Now()
	return nil
}

// MarkVoid cancels the delivery from any non-void state.
func (d *SalesDelivery) MarkVoid() error {
	if d.Status == SalesDeliveryStatusVoid {
		return shared.NewDomainError("ALREADY_VOID", "Delivery is already void")
	}
	d.Status = SalesDeliveryStatusVoid
	d.UpdatedAt = time.Now()
	return nil
}
