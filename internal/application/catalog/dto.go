package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hsf/backend/internal/domain/catalog"
)

// CreateComponentRequest represents a request to create a catalog component
type CreateComponentRequest struct {
	Name        string    `json:"name" binding:"required,min=1,max=200"`
	ProductCode string    `json:"product_code" binding:"required,min=1,max=50"`
	Description string    `json:"description"`
	CategoryID  uuid.UUID `json:"category_id" binding:"required"`
}

// UpdateComponentRequest represents a request to update component fields
type UpdateComponentRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// SetPriceRequest sets one price tier of a component
type SetPriceRequest struct {
	DayType      int             `json:"day_type"`
	PricePerUnit decimal.Decimal `json:"price_per_unit" binding:"required,dgt0"`
	Active       bool            `json:"active"`
}

// CreateCategoryRequest represents a request to create a category
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=200"`
}

// SellPriceResponse represents a price tier in responses
type SellPriceResponse struct {
	DayType      int             `json:"day_type"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
	Active       bool            `json:"active"`
}

// ComponentResponse represents a component in responses
type ComponentResponse struct {
	ID           uuid.UUID           `json:"id"`
	Name         string              `json:"name"`
	ProductCode  string              `json:"product_code"`
	Description  string              `json:"description,omitempty"`
	CategoryID   uuid.UUID           `json:"category_id"`
	CategoryName string              `json:"category_name"`
	SellPrices   []SellPriceResponse `json:"sell_prices"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// ToComponentResponse converts a domain component to a response DTO
func ToComponentResponse(c *catalog.Component) ComponentResponse {
	prices := make([]SellPriceResponse, 0, len(c.SellPrices))
	for _, p := range c.SellPrices {
		prices = append(prices, SellPriceResponse{
			DayType:      int(p.DayType),
			PricePerUnit: p.PricePerUnit,
			Active:       p.Active,
		})
	}
	return ComponentResponse{
		ID:           c.ID,
		Name:         c.Name,
		ProductCode:  c.ProductCode,
		Description:  c.Description,
		CategoryID:   c.CategoryID,
		CategoryName: c.CategoryName,
		SellPrices:   prices,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// CategoryResponse represents a category in responses
type CategoryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ToCategoryResponse converts a domain category to a response DTO
func ToCategoryResponse(c *catalog.ComponentCategory) CategoryResponse {
	return CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
	}
}

// ListResponse wraps a page of results
type ListResponse[T any] struct {
	Items  []T   `json:"items"`
	Total  int64 `json:"total"`
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
}
