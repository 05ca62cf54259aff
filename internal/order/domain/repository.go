package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/jaipurwood/prodsheet/pkg/db/pagination"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, order *Order) error
	Update(ctx context.Context, db *gorm.DB, order *Order) error
	ReplaceItems(ctx context.Context, db *gorm.DB, orderID snowflake.ID, items []OrderItem) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Order, error)
	FindBySalesRef(ctx context.Context, db *gorm.DB, ref string) (*Order, error)
	List(ctx context.Context, db *gorm.DB, filter ListFilter, page pagination.Pagination) ([]*Order, error)
	CountByStatus(ctx context.Context, db *gorm.DB) (map[string]int64, error)
}

type ListFilter struct {
	Status string
	Buyer  string
}
