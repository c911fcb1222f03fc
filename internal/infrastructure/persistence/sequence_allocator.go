package persistence

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hsf/backend/internal/domain/sequence"
)

// DocumentSequence is one row per document series holding the last allocated
// value. Allocation locks the row, so two transactions can never mint the
// same number and the series stays dense: a rolled-back transaction releases
// the lock without advancing the counter.
type DocumentSequence struct {
	SeriesName string `gorm:"primaryKey;type:varchar(50)"`
	LastValue  int64  `gorm:"not null"`
	UpdatedAt  time.Time
}

// TableName returns the table name for GORM
func (DocumentSequence) TableName() string {
	return "document_sequences"
}

// legacySources maps each series to the document table and column it was
// historically numbered in. A missing counter row is seeded from the highest
// parseable number found there, so databases predating the counter table
// continue their series without collisions.
var legacySources = map[string]struct {
	table  string
	column string
}{
	sequence.PurchaseInvoices.Name:  {"purchase_invoices", "purchase_invoice_no"},
	sequence.InboundDeliveries.Name: {"inbound_deliveries", "inbound_delivery_no"},
	sequence.SalesQuotes.Name:       {"sales_quotes", "sales_quote_no"},
	sequence.SalesInvoices.Name:     {"sales_invoices", "sales_invoice_no"},
	sequence.SalesDeliveries.Name:   {"sales_deliveries", "sales_delivery_no"},
}

// SequenceAllocator allocates document numbers from the document_sequences
// counter table. It must be used inside the transaction that persists the
// numbered document.
type SequenceAllocator struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewSequenceAllocator creates a SequenceAllocator on the given (transactional) DB handle.
func NewSequenceAllocator(db *gorm.DB, logger *zap.Logger) *SequenceAllocator {
	return &SequenceAllocator{db: db, logger: logger}
}

var _ sequence.Allocator = (*SequenceAllocator)(nil)

// Next returns the next document number of the series.
func (a *SequenceAllocator) Next(ctx context.Context, series sequence.Series) (string, error) {
	db := a.db.WithContext(ctx)

	var row DocumentSequence
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("series_name = ?", series.Name).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		seed, seedErr := a.seedFromLegacy(db, series)
		if seedErr != nil {
			return "", seedErr
		}
		row = DocumentSequence{SeriesName: series.Name, LastValue: seed}
		// a plain insert losing the seeding race would abort the whole
		// enclosing transaction on Postgres, so the conflict is swallowed
		// in the statement itself and the winner's row locked afterwards
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
			return "", err
		}
		var seeded DocumentSequence
		if err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("series_name = ?", series.Name).
			First(&seeded).Error; err != nil {
			return "", err
		}
		row = seeded
	} else if err != nil {
		return "", err
	}

	next := row.LastValue + 1
	if err := db.Model(&DocumentSequence{}).
		Where("series_name = ?", series.Name).
		Update("last_value", next).Error; err != nil {
		return "", err
	}
	return series.Format(next), nil
}

// seedFromLegacy finds the highest number already minted for the series by
// parsing the stored document numbers, canonical and legacy prefixes alike.
// Deleted documents still count, their numbers stay burned.
func (a *SequenceAllocator) seedFromLegacy(db *gorm.DB, series sequence.Series) (int64, error) {
	src, ok := legacySources[series.Name]
	if !ok {
		return 0, nil
	}

	var numbers []string
	if err := db.Table(src.table).Pluck(src.column, &numbers).Error; err != nil {
		return 0, err
	}

	var max int64
	for _, no := range numbers {
		n, ok := series.Parse(no)
		if !ok {
			a.logger.Warn("skipping unparseable document number while seeding sequence",
				zap.String("series", series.Name),
				zap.String("document_no", no))
			continue
		}
		if n > max {
			max = n
		}
	}
	return max, nil
}
