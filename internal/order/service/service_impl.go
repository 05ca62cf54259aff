package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	"github.com/jaipurwood/prodsheet/internal/order/domain"
	productdomain "github.com/jaipurwood/prodsheet/internal/product/domain"
	sheetdomain "github.com/jaipurwood/prodsheet/internal/sheet/domain"
	"github.com/jaipurwood/prodsheet/internal/sheet/measure"
	"github.com/jaipurwood/prodsheet/pkg/db"
	"github.com/jaipurwood/prodsheet/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	GenID    *snowflake.Node
	Repo     domain.Repository
	Products productdomain.Service
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	genID    *snowflake.Node
	repo     domain.Repository
	products productdomain.Service
}

func New(p Params) domain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("order.service"),
		genID:    p.GenID,
		repo:     p.Repo,
		products: p.Products,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (domain.Order, error) {
	salesRef := strings.TrimSpace(req.SalesOrderRef)
	if salesRef == "" {
		return domain.Order{}, domain.ErrInvalidSalesRef
	}

	status, err := normalizeStatus(req.Status)
	if err != nil {
		return domain.Order{}, err
	}

	now := time.Now().UTC()
	order := domain.Order{
		ID:                s.genID.Generate(),
		SalesOrderRef:     salesRef,
		BuyerPORef:        strings.TrimSpace(req.BuyerPORef),
		BuyerName:         strings.TrimSpace(req.BuyerName),
		EntryDate:         strings.TrimSpace(req.EntryDate),
		FactoryInformDate: strings.TrimSpace(req.FactoryInformDate),
		Factory:           strings.TrimSpace(req.Factory),
		Status:            status,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	order.Items = s.buildItems(ctx, order.ID, req.Items)

	if err := s.repo.Insert(ctx, s.db, &order); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Order{}, domain.ErrDuplicateRef
		}
		return domain.Order{}, err
	}

	s.log.Info("order created",
		zap.String("sales_order_ref", order.SalesOrderRef),
		zap.Int("items", len(order.Items)),
	)
	return order, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (domain.Order, error) {
	id, err := s.parseID(req.ID)
	if err != nil {
		return domain.Order{}, err
	}

	order, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Order{}, err
	}
	if order == nil {
		return domain.Order{}, domain.ErrNotFound
	}

	if req.SalesOrderRef != nil {
		salesRef := strings.TrimSpace(*req.SalesOrderRef)
		if salesRef == "" {
			return domain.Order{}, domain.ErrInvalidSalesRef
		}
		order.SalesOrderRef = salesRef
	}
	if req.BuyerPORef != nil {
		order.BuyerPORef = strings.TrimSpace(*req.BuyerPORef)
	}
	if req.BuyerName != nil {
		order.BuyerName = strings.TrimSpace(*req.BuyerName)
	}
	if req.EntryDate != nil {
		order.EntryDate = strings.TrimSpace(*req.EntryDate)
	}
	if req.FactoryInformDate != nil {
		order.FactoryInformDate = strings.TrimSpace(*req.FactoryInformDate)
	}
	if req.Factory != nil {
		order.Factory = strings.TrimSpace(*req.Factory)
	}
	if req.Status != nil {
		status, err := normalizeStatus(*req.Status)
		if err != nil {
			return domain.Order{}, err
		}
		order.Status = status
	}
	order.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, s.db, order); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Order{}, domain.ErrDuplicateRef
		}
		return domain.Order{}, err
	}

	if req.Items != nil {
		items := s.buildItems(ctx, order.ID, *req.Items)
		if err := s.repo.ReplaceItems(ctx, s.db, order.ID, items); err != nil {
			return domain.Order{}, err
		}
		order.Items = items
	}

	return *order, nil
}

func (s *Service) Delete(ctx context.Context, rawID string) error {
	id, err := s.parseID(rawID)
	if err != nil {
		return err
	}

	order, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	return s.repo.Delete(ctx, s.db, id)
}

func (s *Service) Get(ctx context.Context, rawID string) (domain.Order, error) {
	id, err := s.parseID(rawID)
	if err != nil {
		return domain.Order{}, err
	}

	order, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Order{}, err
	}
	if order == nil {
		return domain.Order{}, domain.ErrNotFound
	}
	return *order, nil
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) (domain.ListResponse, error) {
	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 50
	}

	items, err := s.repo.List(ctx, s.db, domain.ListFilter{
		Status: strings.TrimSpace(req.Status),
		Buyer:  strings.TrimSpace(req.Buyer),
	}, pagination.Pagination{
		PageToken: req.PageToken,
		PageSize:  pageSize,
	})
	if err != nil {
		return domain.ListResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(items, pageSize, func(order *domain.Order) string {
		token, err := pagination.EncodeCursor(pagination.Cursor{
			ID:        order.ID.String(),
			CreatedAt: order.CreatedAt.Format(time.RFC3339),
		})
		if err != nil {
			return ""
		}
		return token
	})
	if pageInfo != nil && pageInfo.HasMore && len(items) > pageSize {
		items = items[:pageSize]
	}

	orders := make([]domain.Order, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		orders = append(orders, *item)
	}

	resp := domain.ListResponse{Orders: orders}
	if pageInfo != nil {
		resp.PageInfo = *pageInfo
	}
	return resp, nil
}

func (s *Service) View(ctx context.Context, rawID string) (sheetdomain.Order, error) {
	order, err := s.Get(ctx, rawID)
	if err != nil {
		return sheetdomain.Order{}, err
	}
	return order.RenderView(), nil
}

// buildItems normalizes submitted lines: stable ids, quantity floor,
// derived CBM, and catalog autofill for lines that reference a product
// without carrying its details.
func (s *Service) buildItems(ctx context.Context, orderID snowflake.ID, inputs []domain.ItemInput) []domain.OrderItem {
	items := make([]domain.OrderItem, 0, len(inputs))
	for pos, input := range inputs {
		item := domain.OrderItem{
			ID:                s.genID.Generate(),
			OrderID:           orderID,
			ItemID:            strings.TrimSpace(input.ID),
			ProductCode:       strings.TrimSpace(input.ProductCode),
			Description:       strings.TrimSpace(input.Description),
			Category:          strings.TrimSpace(input.Category),
			HeightCM:          input.HeightCM,
			DepthCM:           input.DepthCM,
			WidthCM:           input.WidthCM,
			CBM:               input.CBM,
			CBMAuto:           input.CBMAuto,
			Quantity:          input.Quantity,
			InHouseProduction: input.InHouseProduction,
			MachineHall:       strings.TrimSpace(input.MachineHall),
			LeatherCode:       strings.TrimSpace(input.LeatherCode),
			LeatherImage:      input.LeatherImage,
			FinishCode:        strings.TrimSpace(input.FinishCode),
			FinishImage:       input.FinishImage,
			ColorNotes:        strings.TrimSpace(input.ColorNotes),
			LegColor:          strings.TrimSpace(input.LegColor),
			WoodFinish:        strings.TrimSpace(input.WoodFinish),
			Notes:             input.Notes,
			ProductImage:      strings.TrimSpace(input.ProductImage),
			Images:            sheetdomain.EncodeImageList(input.Images),
			ReferenceImages:   sheetdomain.EncodeImageList(input.ReferenceImages),
			Position:          pos,
		}

		if item.ItemID == "" {
			item.ItemID = uuid.NewString()
		}
		if item.Quantity < 1 {
			item.Quantity = 1
		}
		if item.CBMAuto {
			item.CBM = measure.CBM(item.HeightCM, item.DepthCM, item.WidthCM)
		}

		s.autofillFromCatalog(ctx, &item)
		promoteFirstImage(&item)
		items = append(items, item)
	}
	return items
}

// autofillFromCatalog copies catalog details onto a line that names a
// product but was submitted without them. Best effort: an absent
// catalog entry leaves the line as submitted.
func (s *Service) autofillFromCatalog(ctx context.Context, item *domain.OrderItem) {
	if item.ProductCode == "" {
		return
	}
	bare := item.Description == "" && item.HeightCM == 0 && item.DepthCM == 0 && item.WidthCM == 0
	if !bare {
		return
	}

	product, err := s.products.GetByCode(ctx, item.ProductCode)
	if err != nil {
		if !errors.Is(err, productdomain.ErrNotFound) {
			s.log.Warn("catalog autofill failed",
				zap.String("product_code", item.ProductCode),
				zap.Error(err),
			)
		}
		return
	}

	item.Description = product.Description
	if item.Category == "" {
		item.Category = product.Category
	}
	item.HeightCM = product.HeightCM
	item.DepthCM = product.DepthCM
	item.WidthCM = product.WidthCM
	if item.CBMAuto {
		item.CBM = measure.CBM(item.HeightCM, item.DepthCM, item.WidthCM)
	}
	if item.ProductImage == "" {
		item.ProductImage = product.ImageURL
	}
	if len(item.Images) == 0 && len(product.Images) > 0 {
		item.Images = append([]byte(nil), product.Images...)
	}
}

// promoteFirstImage lifts the first auxiliary image into the primary
// slot when a line has uploads but no primary image yet.
func promoteFirstImage(item *domain.OrderItem) {
	if item.ProductImage != "" {
		return
	}
	images := sheetdomain.DecodeImageList(item.Images)
	if len(images) == 0 {
		return
	}
	item.ProductImage = images[0]
	item.Images = sheetdomain.EncodeImageList(images[1:])
}

func normalizeStatus(raw string) (string, error) {
	status := strings.TrimSpace(raw)
	if status == "" {
		return domain.StatusDraft, nil
	}
	switch status {
	case domain.StatusDraft,
		domain.StatusSubmitted,
		domain.StatusInProduction,
		domain.StatusDone:
		return status, nil
	default:
		return "", domain.ErrInvalidStatus
	}
}

func (s *Service) parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
