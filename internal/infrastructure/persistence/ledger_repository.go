package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hsf/backend/internal/domain/inventory"
)

// GormLedgerRepository implements inventory.LedgerRepository using GORM
type GormLedgerRepository struct {
	db *gorm.DB
}

// NewGormLedgerRepository creates a new GormLedgerRepository
func NewGormLedgerRepository(db *gorm.DB) *GormLedgerRepository {
	return &GormLedgerRepository{db: db}
}

var _ inventory.LedgerRepository = (*GormLedgerRepository)(nil)

// Append inserts new ledger entries
func (r *GormLedgerRepository) Append(ctx context.Context, entries ...*inventory.LedgerEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(entries).Error
}

// FindByResource returns all entries keyed to a source document
func (r *GormLedgerRepository) FindByResource(ctx context.Context, resourceType inventory.ResourceType, resourceID uuid.UUID) ([]inventory.LedgerEntry, error) {
	var entries []inventory.LedgerEntry
	if err := r.db.WithContext(ctx).
		Where("resource_type = ? AND resource_id = ?", resourceType, resourceID).
		Order("created_at").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// DeleteByResource removes all entries keyed to a source document
func (r *GormLedgerRepository) DeleteByResource(ctx context.Context, resourceType inventory.ResourceType, resourceID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("resource_type = ? AND resource_id = ?", resourceType, resourceID).
		Delete(&inventory.LedgerEntry{})
	return result.RowsAffected, result.Error
}

// FindByComponent returns a component's entries up to asOf in ledger order
func (r *GormLedgerRepository) FindByComponent(ctx context.Context, componentID uuid.UUID, asOf time.Time) ([]inventory.LedgerEntry, error) {
	var entries []inventory.LedgerEntry
	if err := r.db.WithContext(ctx).
		Where("component_id = ? AND stock_date <= ?", componentID, asOf).
		Order("stock_date, created_at").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
