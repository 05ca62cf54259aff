package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	productdomain "github.com/jaipurwood/prodsheet/internal/product/domain"
	productrepo "github.com/jaipurwood/prodsheet/internal/product/repository"
	productservice "github.com/jaipurwood/prodsheet/internal/product/service"
	"github.com/jaipurwood/prodsheet/internal/quotation/domain"
	quotationrepo "github.com/jaipurwood/prodsheet/internal/quotation/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupQuotationService(t *testing.T) (domain.Service, productdomain.Service) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&productdomain.Product{}, &domain.Quotation{}, &domain.QuotationItem{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("new node: %v", err)
	}

	products := productservice.New(productservice.Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  productrepo.Provide(),
	})
	quotations := New(Params{
		DB:       db,
		Log:      zap.NewNop(),
		GenID:    node,
		Repo:     quotationrepo.Provide(),
		Products: products,
	})
	return quotations, products
}

func seedChair(t *testing.T, products productdomain.Service) productdomain.Product {
	t.Helper()
	product, err := products.Create(context.Background(), productdomain.CreateRequest{
		ProductCode: "CH-01",
		Description: "Club chair",
		HeightCM:    80,
		DepthCM:     70,
		WidthCM:     60,
		FOBUSD:      100,
		FOBGBP:      85,
		Warehouse1:  80,
		Warehouse2:  90,
	})
	if err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return product
}

func TestCreateQuotationNormalizesBasis(t *testing.T) {
	quotations, _ := setupQuotationService(t)

	q, err := quotations.Create(context.Background(), domain.CreateRequest{
		Reference: "QT-2001",
		Basis:     "something-unknown",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if q.Basis != "FOB_USD" {
		t.Fatalf("expected unknown basis to default to FOB_USD, got %q", q.Basis)
	}
	if q.Status != domain.StatusDraft {
		t.Fatalf("expected draft status, got %q", q.Status)
	}
}

func TestUpdateQuotationStatus(t *testing.T) {
	quotations, _ := setupQuotationService(t)
	ctx := context.Background()

	q, err := quotations.Create(ctx, domain.CreateRequest{Reference: "QT-2007"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	sent := "Sent"
	q, err = quotations.Update(ctx, domain.UpdateRequest{ID: q.ID.String(), Status: &sent})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if q.Status != domain.StatusSent {
		t.Fatalf("expected sent status, got %q", q.Status)
	}

	bogus := "approved"
	_, err = quotations.Update(ctx, domain.UpdateRequest{ID: q.ID.String(), Status: &bogus})
	if err != domain.ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestCreateQuotationRequiresReference(t *testing.T) {
	quotations, _ := setupQuotationService(t)

	_, err := quotations.Create(context.Background(), domain.CreateRequest{Reference: " "})
	if err != domain.ErrInvalidReference {
		t.Fatalf("expected ErrInvalidReference, got %v", err)
	}
}

func TestAddItemCapturesBasisPrice(t *testing.T) {
	quotations, products := setupQuotationService(t)
	ctx := context.Background()
	seedChair(t, products)

	q, err := quotations.Create(ctx, domain.CreateRequest{
		Reference: "QT-2002",
		Basis:     "WH_700",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	q, duplicate, err := quotations.AddItem(ctx, domain.AddItemRequest{
		QuotationID: q.ID.String(),
		ProductCode: "CH-01",
		Quantity:    2,
	})
	if err != nil {
		t.Fatalf("add item: %v", err)
	}
	if duplicate {
		t.Fatal("expected first add not to report a duplicate")
	}

	if len(q.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(q.Items))
	}
	item := q.Items[0]
	if item.UnitPrice != 80 {
		t.Fatalf("expected warehouse 700 price 80, got %v", item.UnitPrice)
	}
	if item.Total != 160 {
		t.Fatalf("expected line total 160, got %v", item.Total)
	}
	if item.CBM != 0.336 {
		t.Fatalf("expected cbm from catalog dimensions, got %v", item.CBM)
	}
	if q.TotalItems != 2 || q.TotalValue != 160 {
		t.Fatalf("expected totals 2 items / 160 value, got %d / %v", q.TotalItems, q.TotalValue)
	}
}

func TestAddItemDuplicateCodeIsNoOp(t *testing.T) {
	quotations, products := setupQuotationService(t)
	ctx := context.Background()
	seedChair(t, products)

	q, err := quotations.Create(ctx, domain.CreateRequest{Reference: "QT-2003"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	q, duplicate, err := quotations.AddItem(ctx, domain.AddItemRequest{QuotationID: q.ID.String(), ProductCode: "CH-01", Quantity: 1})
	if err != nil {
		t.Fatalf("first add: %v", err)
	}
	if duplicate {
		t.Fatal("expected first add not to report a duplicate")
	}
	q, duplicate, err = quotations.AddItem(ctx, domain.AddItemRequest{QuotationID: q.ID.String(), ProductCode: "CH-01", Quantity: 5})
	if err != nil {
		t.Fatalf("second add: %v", err)
	}
	if !duplicate {
		t.Fatal("expected second add to report a duplicate")
	}

	if len(q.Items) != 1 {
		t.Fatalf("expected duplicate add to be a no-op, got %d items", len(q.Items))
	}
	if q.Items[0].Quantity != 1 {
		t.Fatalf("expected original quantity kept, got %d", q.Items[0].Quantity)
	}
}

func TestAddItemPriceSurvivesCatalogEdit(t *testing.T) {
	quotations, products := setupQuotationService(t)
	ctx := context.Background()
	product := seedChair(t, products)

	q, err := quotations.Create(ctx, domain.CreateRequest{Reference: "QT-2004", Basis: "FOB_USD"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	q, _, err = quotations.AddItem(ctx, domain.AddItemRequest{QuotationID: q.ID.String(), ProductCode: "CH-01", Quantity: 1})
	if err != nil {
		t.Fatalf("add item: %v", err)
	}

	newPrice := 250.0
	if _, err := products.Update(ctx, productdomain.UpdateRequest{ID: product.ID.String(), FOBUSD: &newPrice}); err != nil {
		t.Fatalf("reprice product: %v", err)
	}

	fetched, err := quotations.Get(ctx, q.ID.String())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if fetched.Items[0].UnitPrice != 100 {
		t.Fatalf("expected captured price 100 after catalog edit, got %v", fetched.Items[0].UnitPrice)
	}
}

func TestUpdateItemRecomputesTotals(t *testing.T) {
	quotations, products := setupQuotationService(t)
	ctx := context.Background()
	seedChair(t, products)

	q, err := quotations.Create(ctx, domain.CreateRequest{Reference: "QT-2005"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	q, _, err = quotations.AddItem(ctx, domain.AddItemRequest{QuotationID: q.ID.String(), ProductCode: "CH-01", Quantity: 1})
	if err != nil {
		t.Fatalf("add item: %v", err)
	}

	qty := 4
	q, err = quotations.UpdateItem(ctx, domain.UpdateItemRequest{
		QuotationID: q.ID.String(),
		ItemID:      q.Items[0].ItemID,
		Quantity:    &qty,
	})
	if err != nil {
		t.Fatalf("update item: %v", err)
	}

	if q.Items[0].Total != 400 {
		t.Fatalf("expected line total 400, got %v", q.Items[0].Total)
	}
	if q.TotalItems != 4 || q.TotalValue != 400 {
		t.Fatalf("expected totals 4 / 400, got %d / %v", q.TotalItems, q.TotalValue)
	}

	zero := 0
	_, err = quotations.UpdateItem(ctx, domain.UpdateItemRequest{
		QuotationID: q.ID.String(),
		ItemID:      q.Items[0].ItemID,
		Quantity:    &zero,
	})
	if err != domain.ErrInvalidQuantity {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
}

func TestRemoveItem(t *testing.T) {
	quotations, products := setupQuotationService(t)
	ctx := context.Background()
	seedChair(t, products)

	q, err := quotations.Create(ctx, domain.CreateRequest{Reference: "QT-2006"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	q, _, err = quotations.AddItem(ctx, domain.AddItemRequest{QuotationID: q.ID.String(), ProductCode: "CH-01", Quantity: 1})
	if err != nil {
		t.Fatalf("add item: %v", err)
	}

	q, err = quotations.RemoveItem(ctx, q.ID.String(), q.Items[0].ItemID)
	if err != nil {
		t.Fatalf("remove item: %v", err)
	}
	if len(q.Items) != 0 {
		t.Fatalf("expected empty items, got %d", len(q.Items))
	}
	if q.TotalItems != 0 || q.TotalValue != 0 {
		t.Fatalf("expected zeroed totals, got %d / %v", q.TotalItems, q.TotalValue)
	}

	_, err = quotations.RemoveItem(ctx, q.ID.String(), "missing-item")
	if err != domain.ErrItemNotFound {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}
