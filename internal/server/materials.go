package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	materialdomain "github.com/jaipurwood/prodsheet/internal/material/domain"
)

type createMaterialRequest struct {
	Kind        string `json:"kind"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
	ImageURL    string `json:"image_url"`
}

type updateMaterialRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
	ImageURL    *string `json:"image_url"`
}

func (s *Server) CreateMaterial(c *gin.Context) {
	var req createMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	kind, err := materialdomain.ParseKind(strings.TrimSpace(req.Kind))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.materialSvc.Create(c.Request.Context(), materialdomain.CreateRequest{
		Kind:        kind,
		Code:        strings.TrimSpace(req.Code),
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Color:       strings.TrimSpace(req.Color),
		ImageURL:    strings.TrimSpace(req.ImageURL),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateMaterial(c *gin.Context) {
	var req updateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.materialSvc.Update(c.Request.Context(), materialdomain.UpdateRequest{
		ID:          strings.TrimSpace(c.Param("id")),
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteMaterial(c *gin.Context) {
	if err := s.materialSvc.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}

func (s *Server) ListMaterials(c *gin.Context) {
	kind, err := materialdomain.ParseKind(strings.TrimSpace(c.Query("kind")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.materialSvc.List(c.Request.Context(), kind)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"materials": resp}})
}

func isMaterialValidationError(err error) bool {
	switch err {
	case materialdomain.ErrInvalidKind,
		materialdomain.ErrInvalidCode,
		materialdomain.ErrInvalidID:
		return true
	default:
		return false
	}
}
