package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	exportdomain "github.com/jaipurwood/prodsheet/internal/export/domain"
	orderdomain "github.com/jaipurwood/prodsheet/internal/order/domain"
	"github.com/jaipurwood/prodsheet/internal/sheet/render"
)

type orderItemPayload struct {
	ID          string `json:"id"`
	ProductCode string `json:"product_code"`
	Description string `json:"description"`
	Category    string `json:"category"`

	HeightCM float64 `json:"height_cm"`
	DepthCM  float64 `json:"depth_cm"`
	WidthCM  float64 `json:"width_cm"`
	CBM      float64 `json:"cbm"`
	CBMAuto  *bool   `json:"cbm_auto"`

	Quantity          int    `json:"quantity"`
	InHouseProduction bool   `json:"in_house_production"`
	MachineHall       string `json:"machine_hall"`

	LeatherCode  string `json:"leather_code"`
	LeatherImage string `json:"leather_image"`
	FinishCode   string `json:"finish_code"`
	FinishImage  string `json:"finish_image"`

	ColorNotes string `json:"color_notes"`
	LegColor   string `json:"leg_color"`
	WoodFinish string `json:"wood_finish"`
	Notes      string `json:"notes"`

	ProductImage    string   `json:"product_image"`
	Images          []string `json:"images"`
	ReferenceImages []string `json:"reference_images"`
}

type createOrderRequest struct {
	SalesOrderRef     string             `json:"sales_order_ref"`
	BuyerPORef        string             `json:"buyer_po_ref"`
	BuyerName         string             `json:"buyer_name"`
	EntryDate         string             `json:"entry_date"`
	FactoryInformDate string             `json:"factory_inform_date"`
	Factory           string             `json:"factory"`
	Status            string             `json:"status"`
	Items             []orderItemPayload `json:"items"`
}

type updateOrderRequest struct {
	SalesOrderRef     *string             `json:"sales_order_ref"`
	BuyerPORef        *string             `json:"buyer_po_ref"`
	BuyerName         *string             `json:"buyer_name"`
	EntryDate         *string             `json:"entry_date"`
	FactoryInformDate *string             `json:"factory_inform_date"`
	Factory           *string             `json:"factory"`
	Status            *string             `json:"status"`
	Items             *[]orderItemPayload `json:"items"`
}

func itemInputs(payloads []orderItemPayload) []orderdomain.ItemInput {
	items := make([]orderdomain.ItemInput, 0, len(payloads))
	for _, p := range payloads {
		// Lines without an explicit CBM are recomputed from dimensions.
		cbmAuto := p.CBM == 0
		if p.CBMAuto != nil {
			cbmAuto = *p.CBMAuto
		}
		items = append(items, orderdomain.ItemInput{
			ID:                strings.TrimSpace(p.ID),
			ProductCode:       strings.TrimSpace(p.ProductCode),
			Description:       strings.TrimSpace(p.Description),
			Category:          strings.TrimSpace(p.Category),
			HeightCM:          p.HeightCM,
			DepthCM:           p.DepthCM,
			WidthCM:           p.WidthCM,
			CBM:               p.CBM,
			CBMAuto:           cbmAuto,
			Quantity:          p.Quantity,
			InHouseProduction: p.InHouseProduction,
			MachineHall:       strings.TrimSpace(p.MachineHall),
			LeatherCode:       strings.TrimSpace(p.LeatherCode),
			LeatherImage:      strings.TrimSpace(p.LeatherImage),
			FinishCode:        strings.TrimSpace(p.FinishCode),
			FinishImage:       strings.TrimSpace(p.FinishImage),
			ColorNotes:        p.ColorNotes,
			LegColor:          strings.TrimSpace(p.LegColor),
			WoodFinish:        strings.TrimSpace(p.WoodFinish),
			Notes:             p.Notes,
			ProductImage:      strings.TrimSpace(p.ProductImage),
			Images:            p.Images,
			ReferenceImages:   p.ReferenceImages,
		})
	}
	return items
}

func (s *Server) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.orderSvc.Create(c.Request.Context(), orderdomain.CreateRequest{
		SalesOrderRef:     strings.TrimSpace(req.SalesOrderRef),
		BuyerPORef:        strings.TrimSpace(req.BuyerPORef),
		BuyerName:         strings.TrimSpace(req.BuyerName),
		EntryDate:         strings.TrimSpace(req.EntryDate),
		FactoryInformDate: strings.TrimSpace(req.FactoryInformDate),
		Factory:           strings.TrimSpace(req.Factory),
		Status:            strings.TrimSpace(req.Status),
		Items:             itemInputs(req.Items),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateOrder(c *gin.Context) {
	var req updateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	update := orderdomain.UpdateRequest{
		ID:                strings.TrimSpace(c.Param("id")),
		SalesOrderRef:     req.SalesOrderRef,
		BuyerPORef:        req.BuyerPORef,
		BuyerName:         req.BuyerName,
		EntryDate:         req.EntryDate,
		FactoryInformDate: req.FactoryInformDate,
		Factory:           req.Factory,
		Status:            req.Status,
	}
	if req.Items != nil {
		items := itemInputs(*req.Items)
		update.Items = &items
	}

	resp, err := s.orderSvc.Update(c.Request.Context(), update)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteOrder(c *gin.Context) {
	if err := s.orderSvc.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}

func (s *Server) GetOrderByID(c *gin.Context) {
	resp, err := s.orderSvc.Get(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListOrders(c *gin.Context) {
	var query struct {
		Status    string `form:"status"`
		Buyer     string `form:"buyer"`
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

	resp, err := s.orderSvc.List(c.Request.Context(), orderdomain.ListRequest{
		Status:    strings.TrimSpace(query.Status),
		Buyer:     strings.TrimSpace(query.Buyer),
		PageToken: strings.TrimSpace(query.PageToken),
		PageSize:  pageSize,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// OrderDocument streams the printable HTML production sheet.
func (s *Server) OrderDocument(c *gin.Context) {
	artifact, err := s.renderOrder(c, s.htmlRend, exportdomain.FormatHTML)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Data(http.StatusOK, artifact.ContentType, artifact.Bytes)
}

// OrderDocumentPDF streams the production sheet as a PDF download.
func (s *Server) OrderDocumentPDF(c *gin.Context) {
	artifact, err := s.renderOrder(c, s.pdfRend, exportdomain.FormatPDF)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	c.Data(http.StatusOK, artifact.ContentType, artifact.Bytes)
}

func (s *Server) renderOrder(c *gin.Context, renderer render.Renderer, format string) (render.Artifact, error) {
	id := strings.TrimSpace(c.Param("id"))

	view, err := s.orderSvc.View(c.Request.Context(), id)
	if err != nil {
		return render.Artifact{}, err
	}

	tmpl, err := s.templateSvc.Get(c.Request.Context())
	if err != nil {
		return render.Artifact{}, err
	}

	doc := s.assembler.AssembleOrder(view, tmpl.RenderView())
	artifact, err := renderer.Render(c.Request.Context(), doc)
	if err != nil {
		return render.Artifact{}, err
	}

	_, err = s.exportSvc.Record(c.Request.Context(), exportdomain.RecordRequest{
		Kind:     exportdomain.KindOrder,
		RefID:    id,
		Format:   format,
		Filename: artifact.Filename,
	})
	if err != nil {
		return render.Artifact{}, err
	}

	return artifact, nil
}

// OrderShareLink returns the prefilled share text and WhatsApp URL for
// an order. The embedded link points at the PDF download endpoint.
func (s *Server) OrderShareLink(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	view, err := s.orderSvc.View(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	tmpl, err := s.templateSvc.Get(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	link := fmt.Sprintf("%s/api/orders/%s/document/pdf", strings.TrimRight(s.cfg.PublicBaseURL, "/"), id)
	message := render.ShareMessage(view, tmpl.RenderView(), link)

	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"message":      message,
		"whatsapp_url": render.WhatsAppURL(message),
	}})
}

func isOrderValidationError(err error) bool {
	switch err {
	case orderdomain.ErrInvalidSalesRef,
		orderdomain.ErrInvalidStatus,
		orderdomain.ErrInvalidQuantity,
		orderdomain.ErrInvalidID:
		return true
	default:
		return false
	}
}
