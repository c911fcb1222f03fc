package catalog

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hsf/backend/internal/domain/catalog"
	"github.com/hsf/backend/internal/domain/shared"
)

// ComponentService manages the sellable component catalog.
type ComponentService struct {
	componentRepo catalog.ComponentRepository
	categoryRepo  catalog.CategoryRepository
	logger        *zap.Logger
}

// NewComponentService creates a new ComponentService
func NewComponentService(componentRepo catalog.ComponentRepository, categoryRepo catalog.CategoryRepository, logger *zap.Logger) *ComponentService {
	return &ComponentService{
		componentRepo: componentRepo,
		categoryRepo:  categoryRepo,
		logger:        logger,
	}
}

// Create registers a new component under an existing category.
func (s *ComponentService) Create(ctx context.Context, req CreateComponentRequest) (*ComponentResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}

	component, err := catalog.NewComponent(req.Name, req.ProductCode, category.ID, category.Name)
	if err != nil {
		return nil, err
	}
	component.Description = req.Description

	if err := s.componentRepo.Save(ctx, component); err != nil {
		return nil, err
	}

	s.logger.Info("component created",
		zap.String("name", component.Name),
		zap.String("product_code", component.ProductCode))

	response := ToComponentResponse(component)
	return &response, nil
}

// GetByID retrieves a component by ID
func (s *ComponentService) GetByID(ctx context.Context, id uuid.UUID) (*ComponentResponse, error) {
	component, err := s.componentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToComponentResponse(component)
	return &response, nil
}

// List returns a page of components
func (s *ComponentService) List(ctx context.Context, offset, limit int) (*ListResponse[ComponentResponse], error) {
	components, total, err := s.componentRepo.FindAll(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	items := make([]ComponentResponse, 0, len(components))
	for _, c := range components {
		items = append(items, ToComponentResponse(c))
	}
	return &ListResponse[ComponentResponse]{Items: items, Total: total, Offset: offset, Limit: limit}, nil
}

// Update changes component fields
func (s *ComponentService) Update(ctx context.Context, id uuid.UUID, req UpdateComponentRequest) (*ComponentResponse, error) {
	component, err := s.componentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		if *req.Name == "" {
			return nil, shared.NewDomainError("INVALID_NAME", "Component name cannot be empty")
		}
		component.Name = *req.Name
	}
	if req.Description != nil {
		component.Description = *req.Description
	}
	if err := s.componentRepo.Save(ctx, component); err != nil {
		return nil, err
	}
	response := ToComponentResponse(component)
	return &response, nil
}

// SetPrice adds or replaces one price tier of a component.
func (s *ComponentService) SetPrice(ctx context.Context, id uuid.UUID, req SetPriceRequest) (*ComponentResponse, error) {
	component, err := s.componentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := component.SetPrice(catalog.DayType(req.DayType), req.PricePerUnit, req.Active); err != nil {
		return nil, err
	}
	if err := s.componentRepo.Save(ctx, component); err != nil {
		return nil, err
	}
	response := ToComponentResponse(component)
	return &response, nil
}

// Delete removes a component from the catalog. Ledger history keeps its own
// component reference, so past movements survive the removal.
func (s *ComponentService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.componentRepo.Delete(ctx, id)
}

// CreateCategory registers a new category
func (s *ComponentService) CreateCategory(ctx context.Context, req CreateCategoryRequest) (*CategoryResponse, error) {
	if req.Name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}
	category := &catalog.ComponentCategory{
		BaseEntity: shared.NewBaseEntity(),
		Name:       req.Name,
	}
	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}
	response := ToCategoryResponse(category)
	return &response, nil
}

// ListCategories returns every category
func (s *ComponentService) ListCategories(ctx context.Context) ([]CategoryResponse, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		items = append(items, ToCategoryResponse(c))
	}
	return items, nil
}
