package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hsf/backend/internal/domain/shared"
)

// CartLine is a staged quantity of a component waiting to be turned into a
// sales quote. Each customer has their own cart; quoting consumes every line
// of that customer's cart. A customer stages at most one line per component.
type CartLine struct {
	shared.BaseEntity
	CustomerID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_cart_customer_component,priority:1"`
	ComponentID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_cart_customer_component,priority:2"`
	ComponentName string          `gorm:"type:varchar(200);not null"`
	Quantity      decimal.Decimal `gorm:"type:decimal(20,6);not null"`
}

// TableName returns the table name for GORM
func (CartLine) TableName() string {
	return "cart_lines"
}

// NewCartLine stages a component quantity in a customer's cart.
func NewCartLine(customerID, componentID uuid.UUID, componentName string, quantity decimal.Decimal) (*CartLine, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}
	if componentID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_COMPONENT", "Component ID cannot be empty")
	}
	if componentName == "" {
		return nil, shared.NewDomainError("INVALID_COMPONENT_NAME", "Component name cannot be empty")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	return &CartLine{
		BaseEntity:    shared.NewBaseEntity(),
		CustomerID:    customerID,
		ComponentID:   componentID,
		ComponentName: componentName,
		Quantity:      quantity,
	}, nil
}

// SetQuantity replaces the staged quantity.
func (c *CartLine) SetQuantity(quantity decimal.Decimal) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	c.Quantity = quantity
	c.UpdatedAt = time.Now()
	return nil
}
