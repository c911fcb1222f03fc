package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hsf/backend/internal/domain/catalog"
	"github.com/hsf/backend/internal/domain/inventory"
)

// MovementService answers stock questions from the ledger. Stock on hand is
// never stored; it is always the sum of the append-only rows.
type MovementService struct {
	ledgerRepo    inventory.LedgerRepository
	componentRepo catalog.ComponentRepository
}

// NewMovementService creates a new MovementService
func NewMovementService(ledgerRepo inventory.LedgerRepository, componentRepo catalog.ComponentRepository) *MovementService {
	return &MovementService{
		ledgerRepo:    ledgerRepo,
		componentRepo: componentRepo,
	}
}

// MovementRow is one ledger entry with the running balance after it.
type MovementRow struct {
	ID               uuid.UUID        `json:"id"`
	StockDate        time.Time        `json:"stock_date"`
	InStock          *decimal.Decimal `json:"in_stock,omitempty"`
	OutStock         *decimal.Decimal `json:"out_stock,omitempty"`
	BuyPrice         *decimal.Decimal `json:"buy_price,omitempty"`
	ResourceType     string           `json:"resource_type"`
	ResourceID       uuid.UUID        `json:"resource_id"`
	ResourceLineType string           `json:"resource_line_type"`
	ResourceLineID   uuid.UUID        `json:"resource_line_id"`
	Balance          decimal.Decimal  `json:"balance"`
}

// MovementReport is the ledger history of one component up to a point in
// time.
type MovementReport struct {
	ComponentID   uuid.UUID       `json:"component_id"`
	ComponentName string          `json:"component_name"`
	AsOf          time.Time       `json:"as_of"`
	Rows          []MovementRow   `json:"rows"`
	StockOnHand   decimal.Decimal `json:"stock_on_hand"`
}

// Report builds the movement history of a component with a running balance
// per row. Rows come back in ledger order: stock date, then insertion.
func (s *MovementService) Report(ctx context.Context, componentID uuid.UUID, asOf time.Time) (*MovementReport, error) {
	component, err := s.componentRepo.FindByID(ctx, componentID)
	if err != nil {
		return nil, err
	}

	entries, err := s.ledgerRepo.FindByComponent(ctx, componentID, asOf)
	if err != nil {
		return nil, err
	}

	report := &MovementReport{
		ComponentID:   component.ID,
		ComponentName: component.Name,
		AsOf:          asOf,
		Rows:          make([]MovementRow, 0, len(entries)),
		StockOnHand:   decimal.Zero,
	}
	for _, entry := range entries {
		report.StockOnHand = report.StockOnHand.Add(entry.SignedQuantity())
		report.Rows = append(report.Rows, MovementRow{
			ID:               entry.ID,
			StockDate:        entry.StockDate,
			InStock:          entry.InStock,
			OutStock:         entry.OutStock,
			BuyPrice:         entry.BuyPrice,
			ResourceType:     string(entry.ResourceType),
			ResourceID:       entry.ResourceID,
			ResourceLineType: string(entry.ResourceLineType),
			ResourceLineID:   entry.ResourceLineID,
			Balance:          report.StockOnHand,
		})
	}
	return report, nil
}

// StockOnHand returns the current balance of a component.
func (s *MovementService) StockOnHand(ctx context.Context, componentID uuid.UUID) (decimal.Decimal, error) {
	entries, err := s.ledgerRepo.FindByComponent(ctx, componentID, time.Now())
	if err != nil {
		return decimal.Zero, err
	}
	balance := decimal.Zero
	for _, entry := range entries {
		balance = balance.Add(entry.SignedQuantity())
	}
	return balance, nil
}
