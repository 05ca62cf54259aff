package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/jaipurwood/prodsheet/internal/product/domain"
	sheetdomain "github.com/jaipurwood/prodsheet/internal/sheet/domain"
	"github.com/jaipurwood/prodsheet/pkg/db"
	"github.com/jaipurwood/prodsheet/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("product.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (domain.Product, error) {
	code := strings.TrimSpace(req.ProductCode)
	if code == "" {
		return domain.Product{}, domain.ErrInvalidCode
	}
	if req.HeightCM < 0 || req.DepthCM < 0 || req.WidthCM < 0 {
		return domain.Product{}, domain.ErrInvalidDimension
	}

	now := time.Now().UTC()
	product := domain.Product{
		ID:          s.genID.Generate(),
		ProductCode: code,
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
		Images:      sheetdomain.EncodeImageList(req.Images),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Insert(ctx, s.db, &product); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Product{}, domain.ErrDuplicateCode
		}
		return domain.Product{}, err
	}

	s.log.Info("product created", zap.String("product_code", product.ProductCode))
	return product, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (domain.Product, error) {
	id, err := s.parseID(req.ID)
	if err != nil {
		return domain.Product{}, err
	}

	product, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Product{}, err
	}
	if product == nil {
		return domain.Product{}, domain.ErrNotFound
	}

	if req.Description != nil {
		product.Description = strings.TrimSpace(*req.Description)
	}
	if req.Category != nil {
		product.Category = strings.TrimSpace(*req.Category)
	}
	if req.HeightCM != nil {
		product.HeightCM = *req.HeightCM
	}
	if req.DepthCM != nil {
		product.DepthCM = *req.DepthCM
	}
	if req.WidthCM != nil {
		product.WidthCM = *req.WidthCM
	}
	if req.FOBUSD != nil {
		product.FOBUSD = *req.FOBUSD
	}
	if req.FOBGBP != nil {
		product.FOBGBP = *req.FOBGBP
	}
	if req.Warehouse1 != nil {
		product.Warehouse1 = *req.Warehouse1
	}
	if req.Warehouse2 != nil {
		product.Warehouse2 = *req.Warehouse2
	}
	if req.ImageURL != nil {
		product.ImageURL = strings.TrimSpace(*req.ImageURL)
	}
	if req.Images != nil {
		product.Images = sheetdomain.EncodeImageList(*req.Images)
	}
	if product.HeightCM < 0 || product.DepthCM < 0 || product.WidthCM < 0 {
		return domain.Product{}, domain.ErrInvalidDimension
	}
	product.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, s.db, product); err != nil {
		return domain.Product{}, err
	}
	return *product, nil
}

func (s *Service) Delete(ctx context.Context, rawID string) error {
	id, err := s.parseID(rawID)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, s.db, id)
}

func (s *Service) Get(ctx context.Context, rawID string) (domain.Product, error) {
	id, err := s.parseID(rawID)
	if err != nil {
		return domain.Product{}, err
	}

	product, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Product{}, err
	}
	if product == nil {
		return domain.Product{}, domain.ErrNotFound
	}
	return *product, nil
}

func (s *Service) GetByCode(ctx context.Context, code string) (domain.Product, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return domain.Product{}, domain.ErrInvalidCode
	}

	product, err := s.repo.FindByCode(ctx, s.db, code)
	if err != nil {
		return domain.Product{}, err
	}
	if product == nil {
		return domain.Product{}, domain.ErrNotFound
	}
	return *product, nil
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) (domain.ListResponse, error) {
	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 50
	}

	items, err := s.repo.List(ctx, s.db, domain.ListFilter{
		Category: strings.TrimSpace(req.Category),
		Search:   strings.TrimSpace(req.Search),
	}, pagination.Pagination{
		PageToken: req.PageToken,
		PageSize:  pageSize,
	})
	if err != nil {
		return domain.ListResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(items, pageSize, func(product *domain.Product) string {
		token, err := pagination.EncodeCursor(pagination.Cursor{
			ID:        product.ID.String(),
			CreatedAt: product.CreatedAt.Format(time.RFC3339),
		})
		if err != nil {
			return ""
		}
		return token
	})
	if pageInfo != nil && pageInfo.HasMore && len(items) > pageSize {
		items = items[:pageSize]
	}

	products := make([]domain.Product, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		products = append(products, *item)
	}

	resp := domain.ListResponse{Products: products}
	if pageInfo != nil {
		resp.PageInfo = *pageInfo
	}
	return resp, nil
}

func (s *Service) parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
