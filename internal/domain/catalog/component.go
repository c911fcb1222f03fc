package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hsf/backend/internal/domain/shared"
)

// DayType selects which sell price applies on a given weekday.
// 0 is the default tier, 1..7 are Monday..Sunday (ISO weekday numbering).
type DayType int

const (
	DayTypeDefault DayType = 0
	DayTypeMonday  DayType = 1
	DayTypeSunday  DayType = 7
)

// DayTypeFor returns the DayType matching t's weekday.
func DayTypeFor(t time.Time) DayType {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7 // time.Sunday is 0, the price tiers use ISO numbering
	}
	return DayType(wd)
}

// IsValid reports whether d is a known day type.
func (d DayType) IsValid() bool {
	return d >= DayTypeDefault && d <= DayTypeSunday
}

// ComponentCategory groups components for catalog browsing.
type ComponentCategory struct {
	shared.BaseEntity
	Name   string `gorm:"type:varchar(200);not null;uniqueIndex"`
	Status int    `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (ComponentCategory) TableName() string {
	return "component_categories"
}

// SellPriceSetting is one price tier of a component. A component has at most
// one active setting per day type; the default tier (day type 0) is the
// fallback when no weekday-specific tier is active.
type SellPriceSetting struct {
	shared.BaseEntity
	ComponentID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	DayType      DayType         `gorm:"not null"`
	PricePerUnit decimal.Decimal `gorm:"type:decimal(20,6);not null"`
	Active       bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (SellPriceSetting) TableName() string {
	return "sell_price_settings"
}

// Component is a sellable computer component.
type Component struct {
	shared.BaseEntity
	Name        string    `gorm:"type:varchar(200);not null;uniqueIndex"`
	ProductCode string    `gorm:"type:varchar(50);not null;uniqueIndex"`
	Description string    `gorm:"type:text"`
	CategoryID  uuid.UUID `gorm:"type:uuid;not null;index"`
	// CategoryName is denormalized onto the component so document lines can
	// snapshot it without a join.
	CategoryName string             `gorm:"type:varchar(200);not null"`
	Status       int                `gorm:"not null;default:0"`
	SellPrices   []SellPriceSetting `gorm:"foreignKey:ComponentID;references:ID"`
}

// TableName returns the table name for GORM
func (Component) TableName() string {
	return "components"
}

// NewComponent creates a new catalog component.
func NewComponent(name, productCode string, categoryID uuid.UUID, categoryName string) (*Component, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Component name cannot be empty")
	}
	if productCode == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_CODE", "Product code cannot be empty")
	}
	if categoryID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Category ID cannot be empty")
	}
	return &Component{
		BaseEntity:   shared.NewBaseEntity(),
		Name:         name,
		ProductCode:  productCode,
		CategoryID:   categoryID,
		CategoryName: categoryName,
		SellPrices:   make([]SellPriceSetting, 0),
	}, nil
}

// PriceOn returns the unit sell price applicable at the given time:
// the active tier for that weekday when one exists, otherwise the default
// tier, otherwise zero.
func (c *Component) PriceOn(t time.Time) decimal.Decimal {
	dayType := DayTypeFor(t)

	defaultPrice := decimal.Zero
	for _, sps := range c.SellPrices {
		if sps.DayType == DayTypeDefault {
			defaultPrice = sps.PricePerUnit
			break
		}
	}

	for _, sps := range c.SellPrices {
		if sps.DayType == dayType && sps.Active {
			return sps.PricePerUnit
		}
	}
	return defaultPrice
}

// SetPrice adds or replaces the price tier for a day type.
func (c *Component) SetPrice(dayType DayType, price decimal.Decimal, active bool) error {
	if !dayType.IsValid() {
		return shared.NewDomainError("INVALID_DAY_TYPE", "Unknown day type")
	}
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	for idx := range c.SellPrices {
		if c.SellPrices[idx].DayType == dayType {
			c.SellPrices[idx].PricePerUnit = price
			c.SellPrices[idx].Active = active
			c.SellPrices[idx].UpdatedAt = time.Now()
			return nil
		}
	}

	c.SellPrices = append(c.SellPrices, SellPriceSetting{
		BaseEntity:   shared.NewBaseEntity(),
		ComponentID:  c.ID,
		DayType:      dayType,
		PricePerUnit: price,
		Active:       active,
	})
	return nil
}
