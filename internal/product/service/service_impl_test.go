package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/jaipurwood/prodsheet/internal/product/domain"
	productrepo "github.com/jaipurwood/prodsheet/internal/product/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupProductService(t *testing.T) domain.Service {
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

	if err := db.AutoMigrate(&domain.Product{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("new node: %v", err)
	}

	return New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  productrepo.Provide(),
	})
}

func TestCreateProductValidation(t *testing.T) {
	products := setupProductService(t)
	ctx := context.Background()

	_, err := products.Create(ctx, domain.CreateRequest{ProductCode: "  "})
	if err != domain.ErrInvalidCode {
		t.Fatalf("expected ErrInvalidCode, got %v", err)
	}

	_, err = products.Create(ctx, domain.CreateRequest{ProductCode: "CH-01", HeightCM: -1})
	if err != domain.ErrInvalidDimension {
		t.Fatalf("expected ErrInvalidDimension, got %v", err)
	}
}

func TestCreateProductDuplicateCode(t *testing.T) {
	products := setupProductService(t)
	ctx := context.Background()

	if _, err := products.Create(ctx, domain.CreateRequest{ProductCode: "CH-01"}); err != nil {
		t.Fatalf("first create: %v", err)
	}

	_, err := products.Create(ctx, domain.CreateRequest{ProductCode: "CH-01"})
	if err != domain.ErrDuplicateCode {
		t.Fatalf("expected ErrDuplicateCode, got %v", err)
	}
}

func TestGetProductByCode(t *testing.T) {
	products := setupProductService(t)
	ctx := context.Background()

	created, err := products.Create(ctx, domain.CreateRequest{
		ProductCode: "TB-02",
		Description: "Dining table",
		FOBUSD:      420,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	found, err := products.GetByCode(ctx, "TB-02")
	if err != nil {
		t.Fatalf("get by code: %v", err)
	}
	if found.ID != created.ID || found.FOBUSD != 420 {
		t.Fatalf("unexpected product: %+v", found)
	}

	_, err = products.GetByCode(ctx, "missing")
	if err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateProductPartialFields(t *testing.T) {
	products := setupProductService(t)
	ctx := context.Background()

	created, err := products.Create(ctx, domain.CreateRequest{
		ProductCode: "CH-01",
		Description: "Club chair",
		HeightCM:    80,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	desc := "Club chair walnut"
	updated, err := products.Update(ctx, domain.UpdateRequest{ID: created.ID.String(), Description: &desc})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Description != desc {
		t.Fatalf("expected new description, got %q", updated.Description)
	}
	if updated.HeightCM != 80 {
		t.Fatalf("expected untouched height, got %v", updated.HeightCM)
	}
}

func TestListProductsByCategory(t *testing.T) {
	products := setupProductService(t)
	ctx := context.Background()

	for i, cat := range []string{"chair", "chair", "table"} {
		_, err := products.Create(ctx, domain.CreateRequest{
			ProductCode: fmt.Sprintf("P-%02d", i),
			Category:    cat,
		})
		if err != nil {
			t.Fatalf("seed product %d: %v", i, err)
		}
	}

	resp, err := products.List(ctx, domain.ListRequest{Category: "chair"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(resp.Products) != 2 {
		t.Fatalf("expected 2 chairs, got %d", len(resp.Products))
	}
}
