package migration

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/jaipurwood/prodsheet/internal/config"
	factorydomain "github.com/jaipurwood/prodsheet/internal/factory/domain"
	templatedomain "github.com/jaipurwood/prodsheet/internal/sheettemplate/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var SeedModule = fx.Options(
	fx.Invoke(Seed),
)

var defaultFactories = []struct {
	Code string
	Name string
}{
	{Code: "SAE", Name: "Shekhawati Art Exports"},
	{Code: "CAC", Name: "Country Art & Crafts"},
	{Code: "GAE", Name: "Global Art Exports"},
}

// Seed inserts the default factories and template row. Existing rows
// are left untouched, so it is safe to run on every start.
func Seed(cfg config.Config, branding *config.BrandingConfigHolder, db *gorm.DB, genID *snowflake.Node, log *zap.Logger) error {
	if !cfg.SeedOnStart {
		return nil
	}
	logger := log.Named("seed")

	now := time.Now().UTC()
	for _, f := range defaultFactories {
		factory := factorydomain.Factory{
			ID:        genID.Generate(),
			Code:      f.Code,
			Name:      f.Name,
			CreatedAt: now,
			UpdatedAt: now,
		}
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "code"}},
			DoNothing: true,
		}).Create(&factory).Error
		if err != nil {
			return err
		}
	}

	defaults := branding.Get()
	template := templatedomain.TemplateSetting{
		ID:             templatedomain.SingletonID,
		CompanyName:    defaults.CompanyName,
		LogoText:       defaults.LogoText,
		PrimaryColor:   defaults.PrimaryColor,
		AccentColor:    defaults.AccentColor,
		FontFamily:     defaults.FontFamily,
		BodyFont:       defaults.BodyFont,
		PageMarginMM:   defaults.PageMarginMM,
		HeaderHeightMM: defaults.HeaderHeightMM,
		FooterHeightMM: defaults.FooterHeightMM,
		ShowBorders:    true,
		UpdatedAt:      now,
	}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoNothing: true,
	}).Create(&template).Error
	if err != nil {
		return err
	}

	logger.Info("seed data applied",
		zap.Int("factories", len(defaultFactories)),
	)
	return nil
}
