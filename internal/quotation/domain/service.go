package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/jaipurwood/prodsheet/pkg/db/pagination"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, quotation *Quotation) error
	Update(ctx context.Context, db *gorm.DB, quotation *Quotation) error
	InsertItem(ctx context.Context, db *gorm.DB, item *QuotationItem) error
	UpdateItem(ctx context.Context, db *gorm.DB, item *QuotationItem) error
	DeleteItem(ctx context.Context, db *gorm.DB, quotationID snowflake.ID, itemID string) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Quotation, error)
	List(ctx context.Context, db *gorm.DB, page pagination.Pagination) ([]*Quotation, error)
}

type CreateRequest struct {
	Reference     string
	CustomerName  string
	CustomerEmail string
	Date          string
	Notes         string
	Basis         string
}

type UpdateRequest struct {
	ID            string
	CustomerName  *string
	CustomerEmail *string
	Date          *string
	Notes         *string
	Status        *string
}

// AddItemRequest adds a catalog product to a quotation. The unit price
// is resolved from the quotation's basis at this moment and captured.
type AddItemRequest struct {
	QuotationID string
	ProductCode string
	Quantity    int
}

type UpdateItemRequest struct {
	QuotationID string
	ItemID      string
	Quantity    *int
	UnitPrice   *float64
}

type ListRequest struct {
	PageToken string
	PageSize  int
}

type ListResponse struct {
	pagination.PageInfo
	Quotations []Quotation `json:"quotations"`
}

type Service interface {
	Create(context.Context, CreateRequest) (Quotation, error)
	Update(context.Context, UpdateRequest) (Quotation, error)
	Delete(context.Context, string) error
	Get(context.Context, string) (Quotation, error)
	List(context.Context, ListRequest) (ListResponse, error)
	AddItem(context.Context, AddItemRequest) (Quotation, bool, error)
	UpdateItem(context.Context, UpdateItemRequest) (Quotation, error)
	RemoveItem(ctx context.Context, quotationID, itemID string) (Quotation, error)
}

var (
	ErrInvalidReference = errors.New("invalid_reference")
	ErrDuplicateRef     = errors.New("duplicate_reference")
	ErrInvalidID        = errors.New("invalid_id")
	ErrInvalidStatus    = errors.New("invalid_status")
	ErrInvalidQuantity  = errors.New("invalid_quantity")
	ErrItemNotFound     = errors.New("item_not_found")
	ErrNotFound         = errors.New("not_found")
)
