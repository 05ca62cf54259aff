package server

import (
	"context"
	"net/http"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/jaipurwood/prodsheet/internal/config"
	"github.com/jaipurwood/prodsheet/internal/dashboard"
	dashboarddomain "github.com/jaipurwood/prodsheet/internal/dashboard/domain"
	"github.com/jaipurwood/prodsheet/internal/export"
	exportdomain "github.com/jaipurwood/prodsheet/internal/export/domain"
	"github.com/jaipurwood/prodsheet/internal/factory"
	factorydomain "github.com/jaipurwood/prodsheet/internal/factory/domain"
	"github.com/jaipurwood/prodsheet/internal/material"
	materialdomain "github.com/jaipurwood/prodsheet/internal/material/domain"
	"github.com/jaipurwood/prodsheet/internal/order"
	orderdomain "github.com/jaipurwood/prodsheet/internal/order/domain"
	"github.com/jaipurwood/prodsheet/internal/product"
	productdomain "github.com/jaipurwood/prodsheet/internal/product/domain"
	"github.com/jaipurwood/prodsheet/internal/quotation"
	quotationdomain "github.com/jaipurwood/prodsheet/internal/quotation/domain"
	"github.com/jaipurwood/prodsheet/internal/sheet"
	"github.com/jaipurwood/prodsheet/internal/sheet/render"
	"github.com/jaipurwood/prodsheet/internal/sheettemplate"
	templatedomain "github.com/jaipurwood/prodsheet/internal/sheettemplate/domain"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("http.server",
	product.Module,
	material.Module,
	factory.Module,
	order.Module,
	quotation.Module,
	export.Module,
	sheettemplate.Module,
	dashboard.Module,
	sheet.Module,
	fx.Provide(NewHTTPMetrics),
	fx.Provide(NewEngine),
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(metrics *HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(RequestLogger())
	r.Use(metrics.Middleware())
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

type Server struct {
	engine *gin.Engine
	cfg    config.Config
	db     *gorm.DB
	genID  *snowflake.Node

	productSvc   productdomain.Service
	materialSvc  materialdomain.Service
	factorySvc   factorydomain.Service
	orderSvc     orderdomain.Service
	quotationSvc quotationdomain.Service
	exportSvc    exportdomain.Service
	templateSvc  templatedomain.Service
	dashboardSvc dashboarddomain.Service

	assembler *sheet.Assembler
	htmlRend  *render.HTMLRenderer
	pdfRend   *render.PDFRenderer
}

type ServerParams struct {
	fx.In

	Gin   *gin.Engine
	Cfg   config.Config
	DB    *gorm.DB
	GenID *snowflake.Node

	ProductSvc   productdomain.Service
	MaterialSvc  materialdomain.Service
	FactorySvc   factorydomain.Service
	OrderSvc     orderdomain.Service
	QuotationSvc quotationdomain.Service
	ExportSvc    exportdomain.Service
	TemplateSvc  templatedomain.Service
	DashboardSvc dashboarddomain.Service

	Assembler *sheet.Assembler
	HTMLRend  *render.HTMLRenderer
	PDFRend   *render.PDFRenderer
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:       p.Gin,
		cfg:          p.Cfg,
		db:           p.DB,
		genID:        p.GenID,
		productSvc:   p.ProductSvc,
		materialSvc:  p.MaterialSvc,
		factorySvc:   p.FactorySvc,
		orderSvc:     p.OrderSvc,
		quotationSvc: p.QuotationSvc,
		exportSvc:    p.ExportSvc,
		templateSvc:  p.TemplateSvc,
		dashboardSvc: p.DashboardSvc,
		assembler:    p.Assembler,
		htmlRend:     p.HTMLRend,
		pdfRend:      p.PDFRend,
	}

	svc.registerAPIRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")

	// -------- Dashboard --------
	api.GET("/dashboard", s.GetDashboardStats)

	// -------- Products --------
	api.GET("/products", s.ListProducts)
	api.POST("/products", s.CreateProduct)
	api.GET("/products/:id", s.GetProductByID)
	api.PUT("/products/:id", s.UpdateProduct)
	api.DELETE("/products/:id", s.DeleteProduct)

	// -------- Materials --------
	api.GET("/materials", s.ListMaterials)
	api.POST("/materials", s.CreateMaterial)
	api.PUT("/materials/:id", s.UpdateMaterial)
	api.DELETE("/materials/:id", s.DeleteMaterial)

	// -------- Factories --------
	api.GET("/factories", s.ListFactories)
	api.POST("/factories", s.CreateFactory)
	api.DELETE("/factories/:id", s.DeleteFactory)
	api.GET("/categories", s.ListCategories)

	// -------- Orders --------
	api.GET("/orders", s.ListOrders)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrderByID)
	api.PUT("/orders/:id", s.UpdateOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)
	api.GET("/orders/:id/document", s.OrderDocument)
	api.GET("/orders/:id/document/pdf", s.OrderDocumentPDF)
	api.GET("/orders/:id/share", s.OrderShareLink)

	// -------- Quotations --------
	api.GET("/quotations", s.ListQuotations)
	api.POST("/quotations", s.CreateQuotation)
	api.GET("/quotations/:id", s.GetQuotationByID)
	api.PUT("/quotations/:id", s.UpdateQuotation)
	api.DELETE("/quotations/:id", s.DeleteQuotation)
	api.POST("/quotations/:id/items", s.AddQuotationItem)
	api.PUT("/quotations/:id/items/:itemId", s.UpdateQuotationItem)
	api.DELETE("/quotations/:id/items/:itemId", s.RemoveQuotationItem)
	api.GET("/quotations/:id/document", s.QuotationDocument)
	api.GET("/quotations/:id/document/pdf", s.QuotationDocumentPDF)

	// -------- Exports --------
	api.GET("/exports", s.ListExports)

	// -------- Template settings --------
	api.GET("/template", s.GetTemplateSettings)
	api.PUT("/template", s.UpdateTemplateSettings)
	api.POST("/template/reset", s.ResetTemplateSettings)
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}
