package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	exportdomain "github.com/jaipurwood/prodsheet/internal/export/domain"
	quotationdomain "github.com/jaipurwood/prodsheet/internal/quotation/domain"
	"github.com/jaipurwood/prodsheet/internal/sheet/render"
)

type createQuotationRequest struct {
	Reference     string `json:"reference"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	Date          string `json:"date"`
	Notes         string `json:"notes"`
	Basis         string `json:"price_basis"`
}

type updateQuotationRequest struct {
	CustomerName  *string `json:"customer_name"`
	CustomerEmail *string `json:"customer_email"`
	Date          *string `json:"date"`
	Notes         *string `json:"notes"`
	Status        *string `json:"status"`
}

type addQuotationItemRequest struct {
	ProductCode string `json:"product_code"`
	Quantity    int    `json:"quantity"`
}

type updateQuotationItemRequest struct {
	Quantity  *int     `json:"quantity"`
	UnitPrice *float64 `json:"unit_price"`
}

func (s *Server) CreateQuotation(c *gin.Context) {
	var req createQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.quotationSvc.Create(c.Request.Context(), quotationdomain.CreateRequest{
		Reference:     strings.TrimSpace(req.Reference),
		CustomerName:  strings.TrimSpace(req.CustomerName),
		CustomerEmail: strings.TrimSpace(req.CustomerEmail),
		Date:          strings.TrimSpace(req.Date),
		Notes:         req.Notes,
		Basis:         strings.TrimSpace(req.Basis),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateQuotation(c *gin.Context) {
	var req updateQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.quotationSvc.Update(c.Request.Context(), quotationdomain.UpdateRequest{
		ID:            strings.TrimSpace(c.Param("id")),
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Date:          req.Date,
		Notes:         req.Notes,
		Status:        req.Status,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteQuotation(c *gin.Context) {
	if err := s.quotationSvc.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}

func (s *Server) GetQuotationByID(c *gin.Context) {
	resp, err := s.quotationSvc.Get(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListQuotations(c *gin.Context) {
	var query struct {
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

	resp, err := s.quotationSvc.List(c.Request.Context(), quotationdomain.ListRequest{
		PageToken: strings.TrimSpace(query.PageToken),
		PageSize:  pageSize,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) AddQuotationItem(c *gin.Context) {
	var req addQuotationItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, duplicate, err := s.quotationSvc.AddItem(c.Request.Context(), quotationdomain.AddItemRequest{
		QuotationID: strings.TrimSpace(c.Param("id")),
		ProductCode: strings.TrimSpace(req.ProductCode),
		Quantity:    req.Quantity,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if duplicate {
		c.JSON(http.StatusOK, gin.H{"data": resp, "notice": "product already on quotation"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateQuotationItem(c *gin.Context) {
	var req updateQuotationItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.quotationSvc.UpdateItem(c.Request.Context(), quotationdomain.UpdateItemRequest{
		QuotationID: strings.TrimSpace(c.Param("id")),
		ItemID:      strings.TrimSpace(c.Param("itemId")),
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) RemoveQuotationItem(c *gin.Context) {
	resp, err := s.quotationSvc.RemoveItem(c.Request.Context(),
		strings.TrimSpace(c.Param("id")),
		strings.TrimSpace(c.Param("itemId")),
	)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// QuotationDocument streams the printable HTML quotation.
func (s *Server) QuotationDocument(c *gin.Context) {
	artifact, err := s.renderQuotation(c, s.htmlRend, exportdomain.FormatHTML)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Data(http.StatusOK, artifact.ContentType, artifact.Bytes)
}

// QuotationDocumentPDF streams the quotation as a PDF download.
func (s *Server) QuotationDocumentPDF(c *gin.Context) {
	artifact, err := s.renderQuotation(c, s.pdfRend, exportdomain.FormatPDF)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	c.Data(http.StatusOK, artifact.ContentType, artifact.Bytes)
}

func (s *Server) renderQuotation(c *gin.Context, renderer render.Renderer, format string) (render.Artifact, error) {
	id := strings.TrimSpace(c.Param("id"))

	quotation, err := s.quotationSvc.Get(c.Request.Context(), id)
	if err != nil {
		return render.Artifact{}, err
	}

	tmpl, err := s.templateSvc.Get(c.Request.Context())
	if err != nil {
		return render.Artifact{}, err
	}

	doc := s.assembler.AssembleQuotation(quotation.RenderView(), tmpl.RenderView())
	artifact, err := renderer.Render(c.Request.Context(), doc)
	if err != nil {
		return render.Artifact{}, err
	}

	_, err = s.exportSvc.Record(c.Request.Context(), exportdomain.RecordRequest{
		Kind:     exportdomain.KindQuotation,
		RefID:    id,
		Format:   format,
		Filename: artifact.Filename,
	})
	if err != nil {
		return render.Artifact{}, err
	}

	return artifact, nil
}

func isQuotationValidationError(err error) bool {
	switch err {
	case quotationdomain.ErrInvalidReference,
		quotationdomain.ErrInvalidStatus,
		quotationdomain.ErrInvalidQuantity,
		quotationdomain.ErrInvalidID:
		return true
	default:
		return false
	}
}
