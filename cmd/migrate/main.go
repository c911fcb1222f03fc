package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/hsf/backend/internal/domain/catalog"
	"github.com/hsf/backend/internal/domain/inventory"
	"github.com/hsf/backend/internal/domain/procurement"
	"github.com/hsf/backend/internal/domain/sales"
	"github.com/hsf/backend/internal/infrastructure/config"
	"github.com/hsf/backend/internal/infrastructure/logger"
	"github.com/hsf/backend/internal/infrastructure/persistence"
)

// models lists every persisted aggregate in dependency order
var models = []interface{}{
	&catalog.ComponentCategory{},
	&catalog.Component{},
	&catalog.SellPriceSetting{},
	&inventory.LedgerEntry{},
	&procurement.PurchaseInvoice{},
	&procurement.PurchaseInvoiceLine{},
	&procurement.InboundDelivery{},
	&procurement.InboundDeliveryLine{},
	&procurement.InboundDeliveryAttachment{},
	&sales.CartLine{},
	&sales.SalesQuote{},
	&sales.SalesQuoteLine{},
	&sales.SalesInvoice{},
	&sales.SalesInvoiceLine{},
	&sales.SalesDelivery{},
	&sales.SalesDeliveryLine{},
	&persistence.DocumentSequence{},
}

func main() {
	var logLevel string
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	log, err := logger.New(config.LogConfig{
		Level:  logLevel,
		Format: "console",
		Output: "stdout",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	db, err := persistence.NewDatabase(cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()

	log.Info("Running schema migration",
		zap.String("database", cfg.Database.DBName),
		zap.Int("models", len(models)),
	)

	if err := db.DB.AutoMigrate(models...); err != nil {
		log.Fatal("Migration failed", zap.Error(err))
	}

	log.Info("Migration completed successfully")
}
