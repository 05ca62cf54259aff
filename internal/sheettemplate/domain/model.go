package domain

import (
	"time"

	sheetdomain "github.com/jaipurwood/prodsheet/internal/sheet/domain"
)

// SingletonID is the only row templates ever use. Documents share one
// branding profile.
const SingletonID = "default"

// TemplateSetting stores the document branding. Blank fields fall back
// to the branding config defaults at render time.
type TemplateSetting struct {
	ID             string `gorm:"primaryKey" json:"id"`
	CompanyName    string `json:"company_name"`
	LogoText       string `json:"logo_text"`
	PrimaryColor   string `json:"primary_color"`
	AccentColor    string `json:"accent_color"`
	FontFamily     string `json:"font_family"`
	BodyFont       string `json:"body_font"`
	PageMarginMM   int    `gorm:"column:page_margin_mm" json:"page_margin_mm"`
	HeaderHeightMM int    `gorm:"column:header_height_mm" json:"header_height_mm"`
	FooterHeightMM int    `gorm:"column:footer_height_mm" json:"footer_height_mm"`
	ShowBorders    bool   `json:"show_borders"`

	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// RenderView maps the stored settings into the renderer's template
// parameters.
func (t TemplateSetting) RenderView() sheetdomain.TemplateView {
	return sheetdomain.TemplateView{
		CompanyName:    t.CompanyName,
		LogoText:       t.LogoText,
		PrimaryColor:   t.PrimaryColor,
		AccentColor:    t.AccentColor,
		FontFamily:     t.FontFamily,
		BodyFont:       t.BodyFont,
		PageMarginMM:   t.PageMarginMM,
		HeaderHeightMM: t.HeaderHeightMM,
		FooterHeightMM: t.FooterHeightMM,
		ShowBorders:    t.ShowBorders,
	}
}
