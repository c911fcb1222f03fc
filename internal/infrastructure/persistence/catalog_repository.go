package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hsf/backend/internal/domain/catalog"
	"github.com/hsf/backend/internal/domain/shared"
)

// GormComponentRepository implements catalog.ComponentRepository using GORM
type GormComponentRepository struct {
	db *gorm.DB
}

// NewGormComponentRepository creates a new GormComponentRepository
func NewGormComponentRepository(db *gorm.DB) *GormComponentRepository {
	return &GormComponentRepository{db: db}
}

var _ catalog.ComponentRepository = (*GormComponentRepository)(nil)

// FindByID finds a component with its price tiers
func (r *GormComponentRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Component, error) {
	var component catalog.Component
	if err := r.db.WithContext(ctx).
		Preload("SellPrices").
		First(&component, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &component, nil
}

// FindByIDs loads the given components keyed by ID with price tiers preloaded
func (r *GormComponentRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*catalog.Component, error) {
	var components []*catalog.Component
	if err := r.db.WithContext(ctx).
		Preload("SellPrices").
		Where("id IN ?", ids).
		Find(&components).Error; err != nil {
		return nil, err
	}
	result := make(map[uuid.UUID]*catalog.Component, len(components))
	for _, c := range components {
		result[c.ID] = c
	}
	return result, nil
}

// FindAll returns a page of components ordered by name
func (r *GormComponentRepository) FindAll(ctx context.Context, offset, limit int) ([]*catalog.Component, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&catalog.Component{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var components []*catalog.Component
	if err := r.db.WithContext(ctx).
		Preload("SellPrices").
		Order("name").
		Offset(offset).Limit(limit).
		Find(&components).Error; err != nil {
		return nil, 0, err
	}
	return components, total, nil
}

// Save persists a component and its price tiers
func (r *GormComponentRepository) Save(ctx context.Context, component *catalog.Component) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(component).Error
}

// Delete removes a component with its price tiers
func (r *GormComponentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("component_id = ?", id).Delete(&catalog.SellPriceSetting{}).Error; err != nil {
			return err
		}
		return tx.Delete(&catalog.Component{}, "id = ?", id).Error
	})
}

// GormCategoryRepository implements catalog.CategoryRepository using GORM
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GormCategoryRepository
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

var _ catalog.CategoryRepository = (*GormCategoryRepository)(nil)

// FindByID finds a category by its ID
func (r *GormCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.ComponentCategory, error) {
	var category catalog.ComponentCategory
	if err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// FindAll returns every category ordered by name
func (r *GormCategoryRepository) FindAll(ctx context.Context) ([]*catalog.ComponentCategory, error) {
	var categories []*catalog.ComponentCategory
	if err := r.db.WithContext(ctx).Order("name").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// Save persists a category
func (r *GormCategoryRepository) Save(ctx context.Context, category *catalog.ComponentCategory) error {
	return r.db.WithContext(ctx).Save(category).Error
}

// Delete removes a category
func (r *GormCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&catalog.ComponentCategory{}, "id = ?", id).Error
}
