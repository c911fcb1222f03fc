package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hsf/backend/internal/domain/shared"
)

// ResourceType identifies the kind of source document a ledger entry is
// keyed to.
type ResourceType string

const (
	ResourceTypeInboundDelivery ResourceType = "InboundDelivery"
	ResourceTypeSalesDelivery   ResourceType = "SalesDelivery"
)

// ResourceLineType identifies the kind of source document line.
type ResourceLineType string

const (
	ResourceLineTypeInboundDeliveryLine ResourceLineType = "InboundDeliveryLine"
	ResourceLineTypeSalesDeliveryLine   ResourceLineType = "SalesDeliveryLine"
)

// LedgerEntry is one immutable stock movement. Exactly one of InStock and
// OutStock is set: an entry records either a receipt or an issue, never both.
// Entries are never updated in place; a correction is a new offsetting entry
// plus, optionally, removal of the erroneous entry via reversal.
type LedgerEntry struct {
	shared.BaseEntity
	ComponentID      uuid.UUID        `gorm:"type:uuid;not null;index"`
	StockDate        time.Time        `gorm:"type:date;not null;index"`
	InStock          *decimal.Decimal `gorm:"type:decimal(20,6)"`
	OutStock         *decimal.Decimal `gorm:"type:decimal(20,6)"`
	ResourceType     ResourceType     `gorm:"type:varchar(50);not null;index:idx_ledger_resource,priority:1"`
	ResourceID       uuid.UUID        `gorm:"type:uuid;not null;index:idx_ledger_resource,priority:2"`
	ResourceLineType ResourceLineType `gorm:"type:varchar(50);not null"`
	ResourceLineID   uuid.UUID        `gorm:"type:uuid;not null"`
	// BuyPrice is the unit cost, set only on receipts.
	BuyPrice *decimal.Decimal `gorm:"type:decimal(20,6)"`
}

// TableName returns the table name for GORM
func (LedgerEntry) TableName() string {
	return "inventory_ledger"
}

// NewReceipt creates an inbound ledger entry for goods received against a
// source document line.
func NewReceipt(componentID uuid.UUID, quantity decimal.Decimal, stockDate time.Time, resourceType ResourceType, resourceID uuid.UUID, lineType ResourceLineType, lineID uuid.UUID, unitCost decimal.Decimal) (*LedgerEntry, error) {
	if err := validateSource(componentID, resourceType, resourceID, lineType, lineID); err != nil {
		return nil, err
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Receipt quantity must be positive")
	}
	if unitCost.IsNegative() {
		return nil, shared.NewDomainError("INVALID_COST", "Unit cost cannot be negative")
	}

	return &LedgerEntry{
		BaseEntity:       shared.NewBaseEntity(),
		ComponentID:      componentID,
		StockDate:        stockDate,
		InStock:          &quantity,
		ResourceType:     resourceType,
		ResourceID:       resourceID,
		ResourceLineType: lineType,
		ResourceLineID:   lineID,
		BuyPrice:         &unitCost,
	}, nil
}

// NewIssue creates an outbound ledger entry for goods shipped against a
// source document line.
func NewIssue(componentID uuid.UUID, quantity decimal.Decimal, stockDate time.Time, resourceType ResourceType, resourceID uuid.UUID, lineType ResourceLineType, lineID uuid.UUID) (*LedgerEntry, error) {
	if err := validateSource(componentID, resourceType, resourceID, lineType, lineID); err != nil {
		return nil, err
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Issue quantity must be positive")
	}

	return &LedgerEntry{
		BaseEntity:       shared.NewBaseEntity(),
		ComponentID:      componentID,
		StockDate:        stockDate,
		OutStock:         &quantity,
		ResourceType:     resourceType,
		ResourceID:       resourceID,
		ResourceLineType: lineType,
		ResourceLineID:   lineID,
	}, nil
}

func validateSource(componentID uuid.UUID, resourceType ResourceType, resourceID uuid.UUID, lineType ResourceLineType, lineID uuid.UUID) error {
	if componentID == uuid.Nil {
		return shared.NewDomainError("INVALID_COMPONENT", "Component ID cannot be empty")
	}
	if resourceType == "" || resourceID == uuid.Nil {
		return shared.NewDomainError("INVALID_RESOURCE", "Source document reference cannot be empty")
	}
	if lineType == "" || lineID == uuid.Nil {
		return shared.NewDomainError("INVALID_RESOURCE_LINE", "Source line reference cannot be empty")
	}
	return nil
}

// IsReceipt reports whether the entry records stock coming in.
func (e *LedgerEntry) IsReceipt() bool {
	return e.InStock != nil
}

// SignedQuantity returns InStock − OutStock for balance computation.
func (e *LedgerEntry) SignedQuantity() decimal.Decimal {
	qty := decimal.Zero
	if e.InStock != nil {
		qty = qty.Add(*e.InStock)
	}
	if e.OutStock != nil {
		qty = qty.Sub(*e.OutStock)
	}
	return qty
}

// Validate checks the in/out exclusivity invariant. A violation is a
// programmer error: entries are only built through NewReceipt/NewIssue, so a
// row with both or neither side populated means corrupted data.
func (e *LedgerEntry) Validate() error {
	if (e.InStock == nil) == (e.OutStock == nil) {
		return shared.ErrInvariant
	}
	return nil
}
