package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	templatedomain "github.com/jaipurwood/prodsheet/internal/sheettemplate/domain"
)

type updateTemplateRequest struct {
	CompanyName    *string `json:"company_name"`
	LogoText       *string `json:"logo_text"`
	PrimaryColor   *string `json:"primary_color"`
	AccentColor    *string `json:"accent_color"`
	FontFamily     *string `json:"font_family"`
	BodyFont       *string `json:"body_font"`
	PageMarginMM   *int    `json:"page_margin_mm"`
	HeaderHeightMM *int    `json:"header_height_mm"`
	FooterHeightMM *int    `json:"footer_height_mm"`
	ShowBorders    *bool   `json:"show_borders"`
}

func (s *Server) GetTemplateSettings(c *gin.Context) {
	resp, err := s.templateSvc.Get(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateTemplateSettings(c *gin.Context) {
	var req updateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.templateSvc.Update(c.Request.Context(), templatedomain.UpdateRequest{
		CompanyName:    req.CompanyName,
		LogoText:       req.LogoText,
		PrimaryColor:   req.PrimaryColor,
		AccentColor:    req.AccentColor,
		FontFamily:     req.FontFamily,
		BodyFont:       req.BodyFont,
		PageMarginMM:   req.PageMarginMM,
		HeaderHeightMM: req.HeaderHeightMM,
		FooterHeightMM: req.FooterHeightMM,
		ShowBorders:    req.ShowBorders,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ResetTemplateSettings(c *gin.Context) {
	resp, err := s.templateSvc.Reset(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func isTemplateValidationError(err error) bool {
	switch err {
	case templatedomain.ErrInvalidLogoText,
		templatedomain.ErrInvalidMargin:
		return true
	default:
		return false
	}
}
