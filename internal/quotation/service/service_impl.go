package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	productdomain "github.com/jaipurwood/prodsheet/internal/product/domain"
	"github.com/jaipurwood/prodsheet/internal/quotation/domain"
	"github.com/jaipurwood/prodsheet/internal/sheet"
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
		log:      p.Log.Named("quotation.service"),
		genID:    p.GenID,
		repo:     p.Repo,
		products: p.Products,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (domain.Quotation, error) {
	reference := strings.TrimSpace(req.Reference)
	if reference == "" {
		return domain.Quotation{}, domain.ErrInvalidReference
	}

	date := strings.TrimSpace(req.Date)
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}

	now := time.Now().UTC()
	quotation := domain.Quotation{
		ID:            s.genID.Generate(),
		Reference:     reference,
		CustomerName:  strings.TrimSpace(req.CustomerName),
		CustomerEmail: strings.TrimSpace(req.CustomerEmail),
		Date:          date,
		Notes:         req.Notes,
		Basis:         string(sheetdomain.ParseBasis(req.Basis)),
		Status:        domain.StatusDraft,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Insert(ctx, s.db, &quotation); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Quotation{}, domain.ErrDuplicateRef
		}
		return domain.Quotation{}, err
	}

	s.log.Info("quotation created",
		zap.String("reference", quotation.Reference),
		zap.String("basis", quotation.Basis),
	)
	return quotation, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (domain.Quotation, error) {
	quotation, err := s.find(ctx, req.ID)
	if err != nil {
		return domain.Quotation{}, err
	}

	if req.CustomerName != nil {
		quotation.CustomerName = strings.TrimSpace(*req.CustomerName)
	}
	if req.CustomerEmail != nil {
		quotation.CustomerEmail = strings.TrimSpace(*req.CustomerEmail)
	}
	if req.Date != nil {
		quotation.Date = strings.TrimSpace(*req.Date)
	}
	if req.Notes != nil {
		quotation.Notes = *req.Notes
	}
	if req.Status != nil {
		status, err := normalizeStatus(*req.Status)
		if err != nil {
			return domain.Quotation{}, err
		}
		quotation.Status = status
	}
	quotation.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, s.db, quotation); err != nil {
		return domain.Quotation{}, err
	}
	return *quotation, nil
}

func (s *Service) Delete(ctx context.Context, rawID string) error {
	quotation, err := s.find(ctx, rawID)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, s.db, quotation.ID)
}

func (s *Service) Get(ctx context.Context, rawID string) (domain.Quotation, error) {
	quotation, err := s.find(ctx, rawID)
	if err != nil {
		return domain.Quotation{}, err
	}
	return *quotation, nil
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) (domain.ListResponse, error) {
	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 50
	}

	items, err := s.repo.List(ctx, s.db, pagination.Pagination{
		PageToken: req.PageToken,
		PageSize:  pageSize,
	})
	if err != nil {
		return domain.ListResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(items, pageSize, func(q *domain.Quotation) string {
		token, err := pagination.EncodeCursor(pagination.Cursor{
			ID:        q.ID.String(),
			CreatedAt: q.CreatedAt.Format(time.RFC3339),
		})
		if err != nil {
			return ""
		}
		return token
	})
	if pageInfo != nil && pageInfo.HasMore && len(items) > pageSize {
		items = items[:pageSize]
	}

	quotations := make([]domain.Quotation, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		quotations = append(quotations, *item)
	}

	resp := domain.ListResponse{Quotations: quotations}
	if pageInfo != nil {
		resp.PageInfo = *pageInfo
	}
	return resp, nil
}

// AddItem captures the product's current basis price onto a new line.
// Adding a product already on the quotation is a no-op reported through
// the duplicate flag; quantity is adjusted through UpdateItem instead.
func (s *Service) AddItem(ctx context.Context, req domain.AddItemRequest) (domain.Quotation, bool, error) {
	quotation, err := s.find(ctx, req.QuotationID)
	if err != nil {
		return domain.Quotation{}, false, err
	}

	code := strings.TrimSpace(req.ProductCode)
	if code == "" {
		return domain.Quotation{}, false, productdomain.ErrInvalidCode
	}
	for _, existing := range quotation.Items {
		if existing.ProductCode == code {
			return *quotation, true, nil
		}
	}

	product, err := s.products.GetByCode(ctx, code)
	if err != nil {
		return domain.Quotation{}, false, err
	}

	qty := req.Quantity
	if qty < 1 {
		qty = 1
	}

	basis := sheetdomain.ParseBasis(quotation.Basis)
	unitPrice := basis.UnitPrice(sheetdomain.ProductPrices{
		FOBUSD:     product.FOBUSD,
		FOBGBP:     product.FOBGBP,
		Warehouse1: product.Warehouse1,
		Warehouse2: product.Warehouse2,
	})

	item := domain.QuotationItem{
		ID:          s.genID.Generate(),
		QuotationID: quotation.ID,
		ItemID:      uuid.NewString(),
		ProductCode: product.ProductCode,
		Description: product.Description,
		HeightCM:    product.HeightCM,
		DepthCM:     product.DepthCM,
		WidthCM:     product.WidthCM,
		CBM:         measure.CBM(product.HeightCM, product.DepthCM, product.WidthCM),
		Quantity:    qty,
		UnitPrice:   unitPrice,
		Total:       unitPrice * float64(qty),
		ImageURL:    product.ImageURL,
		Position:    len(quotation.Items),
	}

	if err := s.repo.InsertItem(ctx, s.db, &item); err != nil {
		return domain.Quotation{}, false, err
	}
	quotation.Items = append(quotation.Items, item)

	updated, err := s.persistTotals(ctx, quotation)
	return updated, false, err
}

func (s *Service) UpdateItem(ctx context.Context, req domain.UpdateItemRequest) (domain.Quotation, error) {
	quotation, err := s.find(ctx, req.QuotationID)
	if err != nil {
		return domain.Quotation{}, err
	}

	itemID := strings.TrimSpace(req.ItemID)
	var item *domain.QuotationItem
	for i := range quotation.Items {
		if quotation.Items[i].ItemID == itemID {
			item = &quotation.Items[i]
			break
		}
	}
	if item == nil {
		return domain.Quotation{}, domain.ErrItemNotFound
	}

	if req.Quantity != nil {
		if *req.Quantity < 1 {
			return domain.Quotation{}, domain.ErrInvalidQuantity
		}
		item.Quantity = *req.Quantity
	}
	if req.UnitPrice != nil {
		item.UnitPrice = *req.UnitPrice
	}
	item.Total = item.UnitPrice * float64(item.Quantity)

	if err := s.repo.UpdateItem(ctx, s.db, item); err != nil {
		return domain.Quotation{}, err
	}

	return s.persistTotals(ctx, quotation)
}

func (s *Service) RemoveItem(ctx context.Context, quotationID, itemID string) (domain.Quotation, error) {
	quotation, err := s.find(ctx, quotationID)
	if err != nil {
		return domain.Quotation{}, err
	}

	itemID = strings.TrimSpace(itemID)
	found := false
	remaining := quotation.Items[:0]
	for _, item := range quotation.Items {
		if item.ItemID == itemID {
			found = true
			continue
		}
		remaining = append(remaining, item)
	}
	if !found {
		return domain.Quotation{}, domain.ErrItemNotFound
	}

	if err := s.repo.DeleteItem(ctx, s.db, quotation.ID, itemID); err != nil {
		return domain.Quotation{}, err
	}
	quotation.Items = remaining

	return s.persistTotals(ctx, quotation)
}

// persistTotals recomputes the quantity-weighted aggregates and stores
// them on the quotation row.
func (s *Service) persistTotals(ctx context.Context, quotation *domain.Quotation) (domain.Quotation, error) {
	view := quotation.RenderView()
	totals := sheet.AggregateQuotation(view.Items)

	quotation.TotalItems = totals.Items
	quotation.TotalCBM = totals.CBM
	quotation.TotalValue = totals.Value
	quotation.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, s.db, quotation); err != nil {
		return domain.Quotation{}, err
	}
	return *quotation, nil
}

func normalizeStatus(raw string) (string, error) {
	status := strings.ToLower(strings.TrimSpace(raw))
	if status == "" {
		return domain.StatusDraft, nil
	}
	switch status {
	case domain.StatusDraft, domain.StatusSent:
		return status, nil
	default:
		return "", domain.ErrInvalidStatus
	}
}

func (s *Service) find(ctx context.Context, rawID string) (*domain.Quotation, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(rawID))
	if err != nil || id == 0 {
		return nil, domain.ErrInvalidID
	}

	quotation, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if quotation == nil {
		return nil, domain.ErrNotFound
	}
	return quotation, nil
}
