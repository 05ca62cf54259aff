package domain

import (
	"context"
	"errors"

	"github.com/jaipurwood/prodsheet/pkg/db/pagination"
)

type CreateRequest struct {
	ProductCode string
	Description string
	Category    string
	HeightCM    float64
	DepthCM     float64
	WidthCM     float64
	FOBUSD      float64
	FOBGBP      float64
	Warehouse1  float64
	Warehouse2  float64
	ImageURL    string
	Images      []string
}

type UpdateRequest struct {
	ID          string
	Description *string
	Category    *string
	HeightCM    *float64
	DepthCM     *float64
	WidthCM     *float64
	FOBUSD      *float64
	FOBGBP      *float64
	Warehouse1  *float64
	Warehouse2  *float64
	ImageURL    *string
	Images      *[]string
}

type ListRequest struct {
	Category  string
	Search    string
	PageToken string
	PageSize  int
}

type ListResponse struct {
	pagination.PageInfo
	Products []Product `json:"products"`
}

type Service interface {
	Create(context.Context, CreateRequest) (Product, error)
	Update(context.Context, UpdateRequest) (Product, error)
	Delete(context.Context, string) error
	Get(context.Context, string) (Product, error)
	GetByCode(context.Context, string) (Product, error)
	List(context.Context, ListRequest) (ListResponse, error)
}

var (
	ErrInvalidCode      = errors.New("invalid_product_code")
	ErrInvalidDimension = errors.New("invalid_dimension")
	ErrInvalidID        = errors.New("invalid_id")
	ErrDuplicateCode    = errors.New("duplicate_product_code")
	ErrNotFound         = errors.New("not_found")
)
