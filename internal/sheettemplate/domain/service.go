package domain

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	Find(ctx context.Context, db *gorm.DB) (*TemplateSetting, error)
	Upsert(ctx context.Context, db *gorm.DB, setting *TemplateSetting) error
}

type UpdateRequest struct {
	CompanyName    *string
	LogoText       *string
	PrimaryColor   *string
	AccentColor    *string
	FontFamily     *string
	BodyFont       *string
	PageMarginMM   *int
	HeaderHeightMM *int
	FooterHeightMM *int
	ShowBorders    *bool
}

type Service interface {
	Get(context.Context) (TemplateSetting, error)
	Update(context.Context, UpdateRequest) (TemplateSetting, error)
	Reset(context.Context) (TemplateSetting, error)
}

var (
	ErrInvalidLogoText = errors.New("invalid_logo_text")
	ErrInvalidMargin   = errors.New("invalid_margin")
)
