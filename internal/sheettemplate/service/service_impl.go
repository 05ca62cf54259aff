package service

import (
	"context"
	"strings"
	"time"

	"github.com/jaipurwood/prodsheet/internal/config"
	"github.com/jaipurwood/prodsheet/internal/sheettemplate/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	Repo     domain.Repository
	Branding *config.BrandingConfigHolder
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	repo     domain.Repository
	branding *config.BrandingConfigHolder
}

func New(p Params) domain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("sheettemplate.service"),
		repo:     p.Repo,
		branding: p.Branding,
	}
}

// Get returns the stored settings, or the branding defaults when no
// row exists yet.
func (s *Service) Get(ctx context.Context) (domain.TemplateSetting, error) {
	setting, err := s.repo.Find(ctx, s.db)
	if err != nil {
		return domain.TemplateSetting{}, err
	}
	if setting == nil {
		return s.defaults(), nil
	}
	return *setting, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (domain.TemplateSetting, error) {
	setting, err := s.Get(ctx)
	if err != nil {
		return domain.TemplateSetting{}, err
	}

	if req.CompanyName != nil {
		setting.CompanyName = strings.TrimSpace(*req.CompanyName)
	}
	if req.LogoText != nil {
		logo := strings.TrimSpace(*req.LogoText)
		if logo == "" {
			return domain.TemplateSetting{}, domain.ErrInvalidLogoText
		}
		setting.LogoText = logo
	}
	if req.PrimaryColor != nil {
		setting.PrimaryColor = strings.TrimSpace(*req.PrimaryColor)
	}
	if req.AccentColor != nil {
		setting.AccentColor = strings.TrimSpace(*req.AccentColor)
	}
	if req.FontFamily != nil {
		setting.FontFamily = strings.TrimSpace(*req.FontFamily)
	}
	if req.BodyFont != nil {
		setting.BodyFont = strings.TrimSpace(*req.BodyFont)
	}
	if req.PageMarginMM != nil {
		if *req.PageMarginMM < 0 {
			return domain.TemplateSetting{}, domain.ErrInvalidMargin
		}
		setting.PageMarginMM = *req.PageMarginMM
	}
	if req.HeaderHeightMM != nil {
		if *req.HeaderHeightMM < 0 {
			return domain.TemplateSetting{}, domain.ErrInvalidMargin
		}
		setting.HeaderHeightMM = *req.HeaderHeightMM
	}
	if req.FooterHeightMM != nil {
		if *req.FooterHeightMM < 0 {
			return domain.TemplateSetting{}, domain.ErrInvalidMargin
		}
		setting.FooterHeightMM = *req.FooterHeightMM
	}
	if req.ShowBorders != nil {
		setting.ShowBorders = *req.ShowBorders
	}

	setting.ID = domain.SingletonID
	setting.UpdatedAt = time.Now().UTC()

	if err := s.repo.Upsert(ctx, s.db, &setting); err != nil {
		return domain.TemplateSetting{}, err
	}

	s.log.Info("template settings updated")
	return setting, nil
}

// Reset discards any stored overrides and persists the branding
// defaults again.
func (s *Service) Reset(ctx context.Context) (domain.TemplateSetting, error) {
	setting := s.defaults()
	setting.UpdatedAt = time.Now().UTC()

	if err := s.repo.Upsert(ctx, s.db, &setting); err != nil {
		return domain.TemplateSetting{}, err
	}

	s.log.Info("template settings reset to defaults")
	return setting, nil
}

func (s *Service) defaults() domain.TemplateSetting {
	branding := s.branding.Get()
	return domain.TemplateSetting{
		ID:             domain.SingletonID,
		CompanyName:    branding.CompanyName,
		LogoText:       branding.LogoText,
		PrimaryColor:   branding.PrimaryColor,
		AccentColor:    branding.AccentColor,
		FontFamily:     branding.FontFamily,
		BodyFont:       branding.BodyFont,
		PageMarginMM:   branding.PageMarginMM,
		HeaderHeightMM: branding.HeaderHeightMM,
		FooterHeightMM: branding.FooterHeightMM,
		ShowBorders:    true,
	}
}
