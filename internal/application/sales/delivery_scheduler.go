package sales

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/hsf/backend/internal/domain/sales"
)

// DeliveryScheduler ships planned deliveries automatically once their
// delivery date has passed. It drives the same MarkDelivered workflow the
// HTTP surface uses, so the ledger and invoice effects are identical.
type DeliveryScheduler struct {
	deliveryRepo    sales.SalesDeliveryRepository
	deliveryService *DeliveryService
	logger          *zap.Logger
	interval        time.Duration
	batchSize       int
	now             func() time.Time
}

// NewDeliveryScheduler creates a new DeliveryScheduler
func NewDeliveryScheduler(
	deliveryRepo sales.SalesDeliveryRepository,
	deliveryService *DeliveryService,
	interval time.Duration,
	batchSize int,
	logger *zap.Logger,
) *DeliveryScheduler {
	if interval <= 0 {
		interval = time.Minute
	}
	if batchSize <= 0 {
		batchSize = 100
	}
	return &DeliveryScheduler{
		deliveryRepo:    deliveryRepo,
		deliveryService: deliveryService,
		logger:          logger,
		interval:        interval,
		batchSize:       batchSize,
		now:             time.Now,
	}
}

// Run ticks until the context is cancelled.
func (s *DeliveryScheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("delivery scheduler started",
		zap.Duration("interval", s.interval),
		zap.Int("batch_size", s.batchSize))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("delivery scheduler stopped")
			return
		case <-ticker.C:
			if _, err := s.ShipDue(ctx); err != nil {
				s.logger.Error("delivery scheduler pass failed", zap.Error(err))
			}
		}
	}
}

// ShipDue delivers every PROCESSING delivery whose delivery date is not in
// the future. Failures on one delivery do not stop the pass.
func (s *DeliveryScheduler) ShipDue(ctx context.Context) (int, error) {
	pending, err := s.deliveryRepo.FindByStatus(ctx, sales.SalesDeliveryStatusProcessing, s.batchSize)
	if err != nil {
		return 0, err
	}

	now := s.now()
	shipped := 0
	for _, delivery := range pending {
		if delivery.DeliveryDate.After(now) {
			continue
		}
		if _, err := s.deliveryService.MarkDelivered(ctx, delivery.ID, MarkDeliveredRequest{DeliveredBy: "scheduler"}); err != nil {
			s.logger.Error("scheduled delivery failed",
				zap.String("sales_delivery_no", delivery.SalesDeliveryNo),
				zap.Error(err))
			continue
		}
		shipped++
	}

	if shipped > 0 {
		s.logger.Info("scheduled deliveries shipped", zap.Int("count", shipped))
	}
	return shipped, nil
}
