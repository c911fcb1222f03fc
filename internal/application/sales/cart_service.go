package sales

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/hsf/backend/internal/domain/catalog"
	"github.com/hsf/backend/internal/domain/sales"
	"github.com/hsf/backend/internal/domain/shared"
)

// CartService manages the quoting scratch area.
type CartService struct {
	cartRepo      sales.CartRepository
	componentRepo catalog.ComponentRepository
}

// NewCartService creates a new CartService
func NewCartService(cartRepo sales.CartRepository, componentRepo catalog.ComponentRepository) *CartService {
	return &CartService{
		cartRepo:      cartRepo,
		componentRepo: componentRepo,
	}
}

// AddLine stages a component quantity in the customer's cart. Adding a
// component the customer already staged accumulates onto the existing line.
func (s *CartService) AddLine(ctx context.Context, req AddCartLineRequest) (*CartLineResponse, error) {
	component, err := s.componentRepo.FindByID(ctx, req.ComponentID)
	if err != nil {
		return nil, err
	}

	existing, err := s.cartRepo.FindByCustomerAndComponent(ctx, req.CustomerID, req.ComponentID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		if err := existing.SetQuantity(existing.Quantity.Add(req.Quantity)); err != nil {
			return nil, err
		}
		if err := s.cartRepo.Save(ctx, existing); err != nil {
			return nil, err
		}
		response := ToCartLineResponse(existing)
		return &response, nil
	}

	line, err := sales.NewCartLine(req.CustomerID, component.ID, component.Name, req.Quantity)
	if err != nil {
		return nil, err
	}
	if err := s.cartRepo.Save(ctx, line); err != nil {
		return nil, err
	}
	response := ToCartLineResponse(line)
	return &response, nil
}

// UpdateLine replaces the staged quantity of a cart line.
func (s *CartService) UpdateLine(ctx context.Context, id uuid.UUID, req UpdateCartLineRequest) (*CartLineResponse, error) {
	line, err := s.cartRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("CART_LINE_NOT_FOUND", "Cart line not found")
		}
		return nil, err
	}
	if err := line.SetQuantity(req.Quantity); err != nil {
		return nil, err
	}
	if err := s.cartRepo.Save(ctx, line); err != nil {
		return nil, err
	}
	response := ToCartLineResponse(line)
	return &response, nil
}

// RemoveLine deletes one cart line.
func (s *CartService) RemoveLine(ctx context.Context, id uuid.UUID) error {
	return s.cartRepo.Delete(ctx, id)
}

// List returns every line staged by a customer.
func (s *CartService) List(ctx context.Context, customerID uuid.UUID) ([]CartLineResponse, error) {
	lines, err := s.cartRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	items := make([]CartLineResponse, 0, len(lines))
	for _, line := range lines {
		items = append(items, ToCartLineResponse(line))
	}
	return items, nil
}

// Clear empties a customer's cart.
func (s *CartService) Clear(ctx context.Context, customerID uuid.UUID) error {
	return s.cartRepo.ClearByCustomer(ctx, customerID)
}
