package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	factorydomain "github.com/jaipurwood/prodsheet/internal/factory/domain"
)

type createFactoryRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

func (s *Server) CreateFactory(c *gin.Context) {
	var req createFactoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.factorySvc.Create(c.Request.Context(), factorydomain.CreateRequest{
		Code: strings.TrimSpace(req.Code),
		Name: strings.TrimSpace(req.Name),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteFactory(c *gin.Context) {
	if err := s.factorySvc.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}

func (s *Server) ListFactories(c *gin.Context) {
	resp, err := s.factorySvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"factories": resp}})
}

func (s *Server) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"categories": s.factorySvc.Categories(c.Request.Context())}})
}

func isFactoryValidationError(err error) bool {
	switch err {
	case factorydomain.ErrInvalidCode,
		factorydomain.ErrInvalidName,
		factorydomain.ErrInvalidID:
		return true
	default:
		return false
	}
}
