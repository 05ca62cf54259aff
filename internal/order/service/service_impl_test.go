package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/jaipurwood/prodsheet/internal/order/domain"
	orderrepo "github.com/jaipurwood/prodsheet/internal/order/repository"
	productdomain "github.com/jaipurwood/prodsheet/internal/product/domain"
	productrepo "github.com/jaipurwood/prodsheet/internal/product/repository"
	productservice "github.com/jaipurwood/prodsheet/internal/product/service"
	sheetdomain "github.com/jaipurwood/prodsheet/internal/sheet/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupOrderService(t *testing.T) (domain.Service, productdomain.Service) {
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

	if err := db.AutoMigrate(&productdomain.Product{}, &domain.Order{}, &domain.OrderItem{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	node := mustNode(t)
	products := productservice.New(productservice.Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  productrepo.Provide(),
	})
	orders := New(Params{
		DB:       db,
		Log:      zap.NewNop(),
		GenID:    node,
		Repo:     orderrepo.Provide(),
		Products: products,
	})
	return orders, products
}

func mustNode(t *testing.T) *snowflake.Node {
	t.Helper()
	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("new node: %v", err)
	}
	return node
}

func TestCreateOrderRequiresSalesRef(t *testing.T) {
	orders, _ := setupOrderService(t)

	_, err := orders.Create(context.Background(), domain.CreateRequest{SalesOrderRef: "  "})
	if err != domain.ErrInvalidSalesRef {
		t.Fatalf("expected ErrInvalidSalesRef, got %v", err)
	}
}

func TestCreateOrderDefaults(t *testing.T) {
	orders, _ := setupOrderService(t)

	order, err := orders.Create(context.Background(), domain.CreateRequest{
		SalesOrderRef: "SO-1001",
		BuyerName:     "Oak & Co",
		Items: []domain.ItemInput{
			{
				ProductCode: "CH-01",
				Description: "Club chair",
				HeightCM:    20,
				DepthCM:     30,
				WidthCM:     10,
				CBMAuto:     true,
			},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if order.Status != domain.StatusDraft {
		t.Fatalf("expected draft status, got %q", order.Status)
	}
	if len(order.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(order.Items))
	}

	item := order.Items[0]
	if item.ItemID == "" {
		t.Fatal("expected generated item id")
	}
	if item.Quantity != 1 {
		t.Fatalf("expected quantity floor of 1, got %d", item.Quantity)
	}
	if item.CBM != 0.006 {
		t.Fatalf("expected recomputed cbm 0.006, got %v", item.CBM)
	}
}

func TestCreateOrderAutofillFromCatalog(t *testing.T) {
	orders, products := setupOrderService(t)
	ctx := context.Background()

	_, err := products.Create(ctx, productdomain.CreateRequest{
		ProductCode: "CH-01",
		Description: "Club chair",
		Category:    "chair",
		HeightCM:    80,
		DepthCM:     70,
		WidthCM:     60,
		ImageURL:    "https://cdn.example.com/ch-01.jpg",
		Images:      []string{"https://cdn.example.com/ch-01-side.jpg", "https://cdn.example.com/ch-01-back.jpg"},
	})
	if err != nil {
		t.Fatalf("seed product: %v", err)
	}

	order, err := orders.Create(ctx, domain.CreateRequest{
		SalesOrderRef: "SO-1002",
		Items: []domain.ItemInput{
			{ProductCode: "CH-01", Quantity: 2, CBMAuto: true},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	item := order.Items[0]
	if item.Description != "Club chair" {
		t.Fatalf("expected description from catalog, got %q", item.Description)
	}
	if item.HeightCM != 80 || item.DepthCM != 70 || item.WidthCM != 60 {
		t.Fatalf("expected catalog dimensions, got %v/%v/%v", item.HeightCM, item.DepthCM, item.WidthCM)
	}
	if item.CBM != 0.336 {
		t.Fatalf("expected cbm from catalog dimensions, got %v", item.CBM)
	}
	if item.ProductImage != "https://cdn.example.com/ch-01.jpg" {
		t.Fatalf("expected catalog image, got %q", item.ProductImage)
	}
	aux := sheetdomain.DecodeImageList(item.Images)
	if len(aux) != 2 || aux[0] != "https://cdn.example.com/ch-01-side.jpg" {
		t.Fatalf("expected catalog image list carried onto line, got %v", aux)
	}
}

func TestCreateOrderPromotesFirstUpload(t *testing.T) {
	orders, _ := setupOrderService(t)

	order, err := orders.Create(context.Background(), domain.CreateRequest{
		SalesOrderRef: "SO-1007",
		Items: []domain.ItemInput{
			{
				ProductCode: "CH-02",
				Description: "Wing chair",
				Images: []string{
					"https://cdn.example.com/upload-1.jpg",
					"https://cdn.example.com/upload-2.jpg",
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	item := order.Items[0]
	if item.ProductImage != "https://cdn.example.com/upload-1.jpg" {
		t.Fatalf("expected first upload promoted to primary, got %q", item.ProductImage)
	}
	aux := sheetdomain.DecodeImageList(item.Images)
	if len(aux) != 1 || aux[0] != "https://cdn.example.com/upload-2.jpg" {
		t.Fatalf("expected remaining uploads in auxiliary list, got %v", aux)
	}
}

func TestCreateOrderDuplicateRef(t *testing.T) {
	orders, _ := setupOrderService(t)
	ctx := context.Background()

	if _, err := orders.Create(ctx, domain.CreateRequest{SalesOrderRef: "SO-1003"}); err != nil {
		t.Fatalf("first create: %v", err)
	}

	_, err := orders.Create(ctx, domain.CreateRequest{SalesOrderRef: "SO-1003"})
	if err != domain.ErrDuplicateRef {
		t.Fatalf("expected ErrDuplicateRef, got %v", err)
	}
}

func TestUpdateOrderReplacesItems(t *testing.T) {
	orders, _ := setupOrderService(t)
	ctx := context.Background()

	order, err := orders.Create(ctx, domain.CreateRequest{
		SalesOrderRef: "SO-1004",
		Items: []domain.ItemInput{
			{ProductCode: "CH-01", Description: "Club chair"},
			{ProductCode: "TB-02", Description: "Dining table"},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	buyer := "Maple Ltd"
	items := []domain.ItemInput{
		{ProductCode: "BD-03", Description: "King bed", Quantity: 3},
	}
	updated, err := orders.Update(ctx, domain.UpdateRequest{
		ID:        order.ID.String(),
		BuyerName: &buyer,
		Items:     &items,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.BuyerName != "Maple Ltd" {
		t.Fatalf("expected updated buyer, got %q", updated.BuyerName)
	}
	if len(updated.Items) != 1 {
		t.Fatalf("expected items replaced, got %d", len(updated.Items))
	}
	if updated.Items[0].ProductCode != "BD-03" || updated.Items[0].Quantity != 3 {
		t.Fatalf("unexpected replacement item: %+v", updated.Items[0])
	}

	fetched, err := orders.Get(ctx, order.ID.String())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(fetched.Items) != 1 {
		t.Fatalf("expected persisted replacement, got %d items", len(fetched.Items))
	}
}

func TestUpdateOrderRejectsUnknownStatus(t *testing.T) {
	orders, _ := setupOrderService(t)
	ctx := context.Background()

	order, err := orders.Create(ctx, domain.CreateRequest{SalesOrderRef: "SO-1005"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	status := "Shipped"
	_, err = orders.Update(ctx, domain.UpdateRequest{ID: order.ID.String(), Status: &status})
	if err != domain.ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestUpdateOrderAcceptsKnownStatuses(t *testing.T) {
	orders, _ := setupOrderService(t)
	ctx := context.Background()

	order, err := orders.Create(ctx, domain.CreateRequest{SalesOrderRef: "SO-1008"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	for _, status := range []string{
		domain.StatusDraft,
		domain.StatusSubmitted,
		domain.StatusInProduction,
		domain.StatusDone,
	} {
		status := status
		updated, err := orders.Update(ctx, domain.UpdateRequest{ID: order.ID.String(), Status: &status})
		if err != nil {
			t.Fatalf("status %q rejected: %v", status, err)
		}
		if updated.Status != status {
			t.Fatalf("expected status %q, got %q", status, updated.Status)
		}
	}
}

func TestOrderViewMapsItems(t *testing.T) {
	orders, _ := setupOrderService(t)
	ctx := context.Background()

	order, err := orders.Create(ctx, domain.CreateRequest{
		SalesOrderRef: "SO-1006",
		BuyerName:     "Oak & Co",
		Items: []domain.ItemInput{
			{
				ProductCode:  "CH-01",
				Description:  "Club chair",
				HeightCM:     20,
				DepthCM:      30,
				WidthCM:      10,
				CBMAuto:      true,
				LegColor:     "Walnut",
				ProductImage: "https://cdn.example.com/main.jpg",
				Images:       []string{"https://cdn.example.com/a.jpg"},
			},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	view, err := orders.View(ctx, order.ID.String())
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	if view.SalesOrderRef != "SO-1006" || view.BuyerName != "Oak & Co" {
		t.Fatalf("unexpected header: %+v", view)
	}
	if len(view.Items) != 1 {
		t.Fatalf("expected 1 view item, got %d", len(view.Items))
	}
	if view.Items[0].LegColor != "Walnut" {
		t.Fatalf("expected leg color carried into view, got %q", view.Items[0].LegColor)
	}
	if len(view.Items[0].Images) != 1 {
		t.Fatalf("expected additional image carried into view, got %d", len(view.Items[0].Images))
	}
}

func TestGetOrderInvalidID(t *testing.T) {
	orders, _ := setupOrderService(t)

	_, err := orders.Get(context.Background(), "not-a-snowflake")
	if err != domain.ErrInvalidID {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}
