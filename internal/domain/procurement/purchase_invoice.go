package procurement

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hsf/backend/internal/domain/shared"
)

// PurchaseInvoiceStatus is stored as an int; the names are the API-boundary
// representation.
type PurchaseInvoiceStatus int

const (
	PurchaseInvoiceStatusPending    PurchaseInvoiceStatus = 0
	PurchaseInvoiceStatusProcessing PurchaseInvoiceStatus = 1
	PurchaseInvoiceStatusCompleted  PurchaseInvoiceStatus = 2
	// Cancelled is a modeled state with no triggering operation yet; the
	// intended business rule is unconfirmed.
	PurchaseInvoiceStatusCancelled PurchaseInvoiceStatus = 3
)

var purchaseInvoiceStatusNames = map[PurchaseInvoiceStatus]string{
	PurchaseInvoiceStatusPending:    "PENDING",
	PurchaseInvoiceStatusProcessing: "PROCESSING",
	PurchaseInvoiceStatusCompleted:  "COMPLETED",
	PurchaseInvoiceStatusCancelled:  "CANCELLED",
}

// String returns the status name
func (s PurchaseInvoiceStatus) String() string {
	if name, ok := purchaseInvoiceStatusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsValid checks if the status is a known PurchaseInvoiceStatus
func (s PurchaseInvoiceStatus) IsValid() bool {
	_, ok := purchaseInvoiceStatusNames[s]
	return ok
}

// PurchaseInvoiceLine is one ordered component on a purchase invoice.
// Lines are owned by their invoice and never outlive it.
type PurchaseInvoiceLine struct {
	shared.BaseEntity
	PurchaseInvoiceID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ComponentID       uuid.UUID       `gorm:"type:uuid;not null"`
	ComponentName     string          `gorm:"type:varchar(200);not null"`
	CategoryID        uuid.UUID       `gorm:"type:uuid;not null"`
	CategoryName      string          `gorm:"type:varchar(200);not null"`
	Quantity          decimal.Decimal `gorm:"type:decimal(20,6);not null"`
	PricePerUnit      decimal.Decimal `gorm:"type:decimal(20,6);not null"`
	TotalLineAmount   decimal.Decimal `gorm:"type:decimal(20,6);not null"`
}

// TableName returns the table name for GORM
func (PurchaseInvoiceLine) TableName() string {
	return "purchase_invoice_lines"
}

// PurchaseInvoice is an order placed with a supplier. It moves to COMPLETED
// once every line has been fully received (received + damaged covers the
// ordered quantity) across all its inbound deliveries.
type PurchaseInvoice struct {
	shared.BaseEntity
	PurchaseInvoiceNo    string                `gorm:"type:varchar(50);not null;uniqueIndex"`
	InvoiceDate          time.Time             `gorm:"not null"`
	ExpectedDeliveryDate *time.Time            `gorm:"type:date"`
	SupplierName         string                `gorm:"type:varchar(200);not null"`
	Notes                string                `gorm:"type:text"`
	Status               PurchaseInvoiceStatus `gorm:"not null;default:0"`
	SumTotalLineAmounts  decimal.Decimal       `gorm:"type:decimal(20,6);not null;default:0"`
	Deleted              bool                  `gorm:"not null;default:false"`
	Lines                []PurchaseInvoiceLine `gorm:"foreignKey:PurchaseInvoiceID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (PurchaseInvoice) TableName() string {
	return "purchase_invoices"
}

// NewPurchaseInvoice creates a pending purchase invoice. The document number
// is assigned separately, inside the persisting transaction.
func NewPurchaseInvoice(supplierName string, invoiceDate time.Time, expectedDeliveryDate *time.Time, notes string) (*PurchaseInvoice, error) {
	if supplierName == "" {
		return nil, shared.NewDomainError("INVALID_SUPPLIER_NAME", "Supplier name cannot be empty")
	}
	if invoiceDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_INVOICE_DATE", "Invoice date cannot be empty")
	}

	return &PurchaseInvoice{
		BaseEntity:           shared.NewBaseEntity(),
		InvoiceDate:          invoiceDate,
		ExpectedDeliveryDate: expectedDeliveryDate,
		SupplierName:         supplierName,
		Notes:                notes,
		Status:               PurchaseInvoiceStatusPending,
		SumTotalLineAmounts:  decimal.Zero,
		Lines:                make([]PurchaseInvoiceLine, 0),
	}, nil
}

// SetNumber assigns the allocated document number. It can only be set once.
func (inv *PurchaseInvoice) SetNumber(no string) error {
	if inv.PurchaseInvoiceNo != "" {
		return shared.NewDomainError("NUMBER_ASSIGNED", "Document number is already assigned")
	}
	if no == "" {
		return shared.NewDomainError("INVALID_NUMBER", "Document number cannot be empty")
	}
	inv.PurchaseInvoiceNo = no
	return nil
}

// AddLine appends an ordered line and recomputes the invoice total.
func (inv *PurchaseInvoice) AddLine(componentID uuid.UUID, componentName string, categoryID uuid.UUID, categoryName string, quantity, pricePerUnit decimal.Decimal) (*PurchaseInvoiceLine, error) {
	if componentID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_COMPONENT", "Component ID cannot be empty")
	}
	if componentName == "" {
		return nil, shared.NewDomainError("INVALID_COMPONENT_NAME", "Component name cannot be empty")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if pricePerUnit.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price per unit cannot be negative")
	}

	line := PurchaseInvoiceLine{
		BaseEntity:        shared.NewBaseEntity(),
		PurchaseInvoiceID: inv.ID,
		ComponentID:       componentID,
		ComponentName:     componentName,
		CategoryID:        categoryID,
		CategoryName:      categoryName,
		Quantity:          quantity,
		PricePerUnit:      pricePerUnit,
		TotalLineAmount:   quantity.Mul(pricePerUnit),
	}
	inv.Lines = append(inv.Lines, line)
	inv.recalculateTotals()
	inv.UpdatedAt = time.Now()

	return &inv.Lines[len(inv.Lines)-1], nil
}

// UpdateLine changes quantity and price of an existing line and recomputes
// the derived amounts.
func (inv *PurchaseInvoice) UpdateLine(lineID uuid.UUID, quantity, pricePerUnit decimal.Decimal) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if pricePerUnit.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price per unit cannot be negative")
	}

	for idx := range inv.Lines {
		if inv.Lines[idx].ID == lineID {
			inv.Lines[idx].Quantity = quantity
			inv.Lines[idx].PricePerUnit = pricePerUnit
			inv.Lines[idx].TotalLineAmount = quantity.Mul(pricePerUnit)
			inv.Lines[idx].UpdatedAt = time.Now()
			inv.recalculateTotals()
			inv.UpdatedAt = time.Now()
			return nil
		}
	}
	return shared.NewDomainError("LINE_NOT_FOUND", "Purchase invoice line not found")
}

// RemoveLine deletes a line and recomputes the invoice total.
func (inv *PurchaseInvoice) RemoveLine(lineID uuid.UUID) error {
	for idx := range inv.Lines {
		if inv.Lines[idx].ID == lineID {
			inv.Lines = append(inv.Lines[:idx], inv.Lines[idx+1:]...)
			inv.recalculateTotals()
			inv.UpdatedAt = time.Now()
			return nil
		}
	}
	return shared.NewDomainError("LINE_NOT_FOUND", "Purchase invoice line not found")
}

// GetLine returns a line by its ID.
func (inv *PurchaseInvoice) GetLine(lineID uuid.UUID) *PurchaseInvoiceLine {
	for idx := range inv.Lines {
		if inv.Lines[idx].ID == lineID {
			return &inv.Lines[idx]
		}
	}
	return nil
}

// DeliverableQuantities returns, per line, the quantity still open for
// delivery: ordered minus what was already received or damaged across all
// deliveries. receivedTotals maps line ID to that cumulative sum.
func (inv *PurchaseInvoice) DeliverableQuantities(receivedTotals map[uuid.UUID]decimal.Decimal) map[uuid.UUID]decimal.Decimal {
	deliverable := make(map[uuid.UUID]decimal.Decimal, len(inv.Lines))
	for _, line := range inv.Lines {
		remaining := line.Quantity.Sub(receivedTotals[line.ID])
		if remaining.IsNegative() {
			remaining = decimal.Zero
		}
		deliverable[line.ID] = remaining
	}
	return deliverable
}

// RecomputeStatus derives the invoice status from the cumulative received
// totals of all its deliveries: COMPLETED when every line is fully covered,
// PENDING otherwise. Both delivery creation and deletion funnel through this
// so that removing one of several partial deliveries cannot leave a stale
// COMPLETED status. CANCELLED is terminal and never recomputed.
func (inv *PurchaseInvoice) RecomputeStatus(receivedTotals map[uuid.UUID]decimal.Decimal) {
	if inv.Status == PurchaseInvoiceStatusCancelled {
		return
	}

	// an invoice with no lines loaded has nothing covered, not everything
	if len(inv.Lines) == 0 {
		inv.Status = PurchaseInvoiceStatusPending
		inv.UpdatedAt = time.Now()
		return
	}

	for _, line := range inv.Lines {
		if receivedTotals[line.ID].LessThan(line.Quantity) {
			inv.Status = PurchaseInvoiceStatusPending
			inv.UpdatedAt = time.Now()
			return
		}
	}
	inv.Status = PurchaseInvoiceStatusCompleted
	inv.UpdatedAt = time.Now()
}

// IsCompleted returns true when all lines are fully received.
func (inv *PurchaseInvoice) IsCompleted() bool {
	return inv.Status == PurchaseInvoiceStatusCompleted
}

// MarkDeleted soft-deletes the invoice.
func (inv *PurchaseInvoice) MarkDeleted() {
	inv.Deleted = true
	inv.UpdatedAt = time.Now()
}

func (inv *PurchaseInvoice) recalculateTotals() {
	total := decimal.Zero
	for _, line := range inv.Lines {
		total = total.Add(line.TotalLineAmount)
	}
	inv.SumTotalLineAmounts = total
}
