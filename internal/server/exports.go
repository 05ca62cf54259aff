package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	exportdomain "github.com/jaipurwood/prodsheet/internal/export/domain"
)

func (s *Server) ListExports(c *gin.Context) {
	var query struct {
		Kind      string `form:"kind"`
		PageToken string `form:"page_token"`
		PageSize  string `form:"page_size"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	pageSize, err := parsePageSize(query.PageSize)
	if err != nil {
		AbortWithError(c, newValidationError("page_size", "invalid_page_size", "invalid page size"))
		return
	}

	resp, err := s.exportSvc.List(c.Request.Context(), exportdomain.ListRequest{
		Kind:      strings.TrimSpace(query.Kind),
		PageToken: strings.TrimSpace(query.PageToken),
		PageSize:  pageSize,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func isExportValidationError(err error) bool {
	switch err {
	case exportdomain.ErrInvalidKind,
		exportdomain.ErrInvalidFormat,
		exportdomain.ErrInvalidID:
		return true
	default:
		return false
	}
}
