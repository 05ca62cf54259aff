package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	productdomain "github.com/jaipurwood/prodsheet/internal/product/domain"
)

type createProductRequest struct {
	ProductCode string  `json:"product_code"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	HeightCM    float64 `json:"height_cm"`
	DepthCM     float64 `json:"depth_cm"`
	WidthCM     float64 `json:"width_cm"`
	FOBUSD      float64 `json:"fob_usd"`
	FOBGBP      float64 `json:"fob_gbp"`
	Warehouse1  float64 `json:"warehouse_700"`
	Warehouse2  float64  `json:"warehouse_2000"`
	ImageURL    string   `json:"image_url"`
	Images      []string `json:"images"`
}

type updateProductRequest struct {
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	HeightCM    *float64 `json:"height_cm"`
	DepthCM     *float64 `json:"depth_cm"`
	WidthCM     *float64 `json:"width_cm"`
	FOBUSD      *float64 `json:"fob_usd"`
	FOBGBP      *float64 `json:"fob_gbp"`
	Warehouse1  *float64 `json:"warehouse_700"`
	Warehouse2  *float64  `json:"warehouse_2000"`
	ImageURL    *string   `json:"image_url"`
	Images      *[]string `json:"images"`
}

func (s *Server) CreateProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.productSvc.Create(c.Request.Context(), productdomain.CreateRequest{
		ProductCode: strings.TrimSpace(req.ProductCode),
		Description: strings.TrimSpace(req.Description),
		Category:    strings.TrimSpace(req.Category),
		HeightCM:    req.HeightCM,
		DepthCM:     req.DepthCM,
		WidthCM:     req.WidthCM,
		FOBUSD:      req.FOBUSD,
		FOBGBP:      req.FOBGBP,
		Warehouse1:  req.Warehouse1,
		Warehouse2:  req.Warehouse2,
		ImageURL:    strings.TrimSpace(req.ImageURL),
		Images:      req.Images,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateProduct(c *gin.Context) {
	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.productSvc.Update(c.Request.Context(), productdomain.UpdateRequest{
		ID:          strings.TrimSpace(c.Param("id")),
		Description: req.Description,
		Category:    req.Category,
		HeightCM:    req.HeightCM,
		DepthCM:     req.DepthCM,
		WidthCM:     req.WidthCM,
		FOBUSD:      req.FOBUSD,
		FOBGBP:      req.FOBGBP,
		Warehouse1:  req.Warehouse1,
		Warehouse2:  req.Warehouse2,
		ImageURL:    req.ImageURL,
		Images:      req.Images,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteProduct(c *gin.Context) {
	if err := s.productSvc.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}

func (s *Server) GetProductByID(c *gin.Context) {
	resp, err := s.productSvc.Get(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListProducts(c *gin.Context) {
	var query struct {
		Category  string `form:"category"`
		Search    string `form:"search"`
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

	resp, err := s.productSvc.List(c.Request.Context(), productdomain.ListRequest{
		Category:  strings.TrimSpace(query.Category),
		Search:    strings.TrimSpace(query.Search),
		PageToken: strings.TrimSpace(query.PageToken),
		PageSize:  pageSize,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func isProductValidationError(err error) bool {
	switch err {
	case productdomain.ErrInvalidCode,
		productdomain.ErrInvalidDimension,
		productdomain.ErrInvalidID:
		return true
	default:
		return false
	}
}
