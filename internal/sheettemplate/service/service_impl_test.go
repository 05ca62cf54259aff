package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/jaipurwood/prodsheet/internal/config"
	"github.com/jaipurwood/prodsheet/internal/sheettemplate/domain"
	templaterepo "github.com/jaipurwood/prodsheet/internal/sheettemplate/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupTemplateService(t *testing.T) domain.Service {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&domain.TemplateSetting{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	holder, err := config.NewBrandingConfigHolder()
	if err != nil {
		t.Fatalf("branding holder: %v", err)
	}

	return New(Params{
		DB:       db,
		Log:      zap.NewNop(),
		Repo:     templaterepo.Provide(),
		Branding: holder,
	})
}

func TestGetTemplateFallsBackToDefaults(t *testing.T) {
	templates := setupTemplateService(t)

	setting, err := templates.Get(context.Background())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if setting.LogoText != "JAIPUR" {
		t.Fatalf("expected default logo text, got %q", setting.LogoText)
	}
	if setting.PrimaryColor != "#3d2c1e" || setting.AccentColor != "#d4622e" {
		t.Fatalf("expected default palette, got %q / %q", setting.PrimaryColor, setting.AccentColor)
	}
	if setting.PageMarginMM != 15 || setting.HeaderHeightMM != 25 || setting.FooterHeightMM != 20 {
		t.Fatalf("unexpected default dimensions: %+v", setting)
	}
}

func TestUpdateTemplatePersistsOverrides(t *testing.T) {
	templates := setupTemplateService(t)
	ctx := context.Background()

	logo := "OAKWORKS"
	margin := 12
	updated, err := templates.Update(ctx, domain.UpdateRequest{
		LogoText:     &logo,
		PageMarginMM: &margin,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.LogoText != "OAKWORKS" || updated.PageMarginMM != 12 {
		t.Fatalf("unexpected update result: %+v", updated)
	}

	fetched, err := templates.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if fetched.LogoText != "OAKWORKS" {
		t.Fatalf("expected stored override, got %q", fetched.LogoText)
	}
	if fetched.HeaderHeightMM != 25 {
		t.Fatalf("expected untouched header height, got %d", fetched.HeaderHeightMM)
	}
}

func TestUpdateTemplateValidation(t *testing.T) {
	templates := setupTemplateService(t)
	ctx := context.Background()

	blank := "  "
	_, err := templates.Update(ctx, domain.UpdateRequest{LogoText: &blank})
	if err != domain.ErrInvalidLogoText {
		t.Fatalf("expected ErrInvalidLogoText, got %v", err)
	}

	negative := -5
	_, err = templates.Update(ctx, domain.UpdateRequest{PageMarginMM: &negative})
	if err != domain.ErrInvalidMargin {
		t.Fatalf("expected ErrInvalidMargin, got %v", err)
	}
}

func TestResetTemplateRestoresDefaults(t *testing.T) {
	templates := setupTemplateService(t)
	ctx := context.Background()

	logo := "OAKWORKS"
	if _, err := templates.Update(ctx, domain.UpdateRequest{LogoText: &logo}); err != nil {
		t.Fatalf("update: %v", err)
	}

	reset, err := templates.Reset(ctx)
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if reset.LogoText != "JAIPUR" {
		t.Fatalf("expected defaults restored, got %q", reset.LogoText)
	}

	fetched, err := templates.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if fetched.LogoText != "JAIPUR" {
		t.Fatalf("expected persisted defaults, got %q", fetched.LogoText)
	}
}
