package migration

import (
	exportdomain "github.com/jaipurwood/prodsheet/internal/export/domain"
	factorydomain "github.com/jaipurwood/prodsheet/internal/factory/domain"
	materialdomain "github.com/jaipurwood/prodsheet/internal/material/domain"
	orderdomain "github.com/jaipurwood/prodsheet/internal/order/domain"
	productdomain "github.com/jaipurwood/prodsheet/internal/product/domain"
	quotationdomain "github.com/jaipurwood/prodsheet/internal/quotation/domain"
	templatedomain "github.com/jaipurwood/prodsheet/internal/sheettemplate/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Options(
	fx.Invoke(Run),
)

// Run applies the schema. AutoMigrate is additive only; it never drops
// columns, so stale data survives upgrades.
func Run(db *gorm.DB, log *zap.Logger) error {
	err := db.AutoMigrate(
		&productdomain.Product{},
		&materialdomain.Material{},
		&factorydomain.Factory{},
		&orderdomain.Order{},
		&orderdomain.OrderItem{},
		&quotationdomain.Quotation{},
		&quotationdomain.QuotationItem{},
		&exportdomain.ExportRecord{},
		&templatedomain.TemplateSetting{},
	)
	if err != nil {
		return err
	}

	log.Named("migration").Info("schema migrated")
	return nil
}
